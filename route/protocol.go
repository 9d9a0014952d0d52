package route

//go:generate mockgen -destination=mock/protocol.go -package=mock github.com/gjermundgaraba/libbridge/route Protocol,ProtocolResolver,Route,Signer

import (
	"context"
	"math/big"
	"time"

	"github.com/gjermundgaraba/libbridge/chains/network"
)

// Protocol is the handle to the cross-chain messaging network.
// It is constructed once by the caller and may be shared between quoting sessions.
type Protocol interface {
	GetChain(name string) (network.Chain, error)
	// Resolver returns a resolver restricted to the given route kinds.
	Resolver(kinds []RouteKind) ProtocolResolver
}

type ProtocolResolver interface {
	// SupportedDestinationTokens lists the tokens on dst that token on src can be bridged to.
	SupportedDestinationTokens(ctx context.Context, token network.TokenID, src network.Chain, dst network.Chain) ([]network.TokenID, error)
	// FindRoutes returns one route per kind that can serve req, in no particular order.
	FindRoutes(ctx context.Context, req *TransferRequest) ([]Route, error)
}

// Route is one concrete bridging path bound to a single TransferRequest shape.
type Route interface {
	Kind() RouteKind
	// Validate checks the amount and options against protocol constraints.
	// A rejection is reported as Validation{Valid: false}, not as an error.
	Validate(ctx context.Context, req *TransferRequest, params Params) (Validation, error)
	Quote(ctx context.Context, req *TransferRequest, params ValidatedParams) (Quote, error)
	// Initiate submits the transfer through signer and returns the origin chain transactions.
	Initiate(ctx context.Context, req *TransferRequest, signer Signer, quote Quote, to network.ChainAddress) (InitiateResult, error)
}

// Signer is what a route needs to get transactions onto the source chain.
type Signer interface {
	Chain() string
	Address() string
	// SignAndSend submits txs in order and returns their ids.
	SignAndSend(ctx context.Context, txs []network.Tx) ([]string, error)
}

type TransferOptions struct {
	// SlippageTolerancePercent is passed through to the protocol, e.g. "1".
	SlippageTolerancePercent string
	// Timeout bounds how long the protocol may take to deliver before the transfer is refunded.
	Timeout time.Duration
}

type Params struct {
	Amount  *big.Int
	Options TransferOptions
}

// ValidatedParams can only be obtained from a successful Validate.
type ValidatedParams struct {
	Amount  *big.Int
	Options TransferOptions
}

type Validation struct {
	Valid  bool
	Reason string
	Params ValidatedParams
}

func Valid(params Params) Validation {
	return Validation{
		Valid: true,
		Params: ValidatedParams{
			Amount:  new(big.Int).Set(params.Amount),
			Options: params.Options,
		},
	}
}

func Invalid(reason string) Validation {
	return Validation{Valid: false, Reason: reason}
}

type InitiateResult struct {
	// OriginTxs are the source chain transactions in submission order. The last one defines the transfer.
	OriginTxs []string
	// TxID is used when the protocol reports a single identifier instead of a list.
	TxID string
}

// TransferTxID returns the transaction that defines the transfer.
func (r InitiateResult) TransferTxID() string {
	if len(r.OriginTxs) > 0 {
		return r.OriginTxs[len(r.OriginTxs)-1]
	}
	return r.TxID
}
