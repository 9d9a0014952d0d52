package skipgo

import (
	"context"
	"math/big"
	"time"

	skipapi "github.com/gjermundgaraba/libbridge/apis/skip-api"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultQuoteValidity            = 60 * time.Second
	DefaultSlippageTolerancePercent = "1"
)

type Options struct {
	// SmartRelayChains lists the destination chains a relayer delivers to. Automatic routes need one.
	SmartRelayChains []string
	// MinAutomaticAmounts rejects relayed transfers of a token that are too small to cover the relay fee.
	MinAutomaticAmounts map[network.TokenID]*big.Int
	QuoteValidity      time.Duration
	// SlippageTolerancePercent is used when a transfer does not set its own.
	SlippageTolerancePercent string
}

var _ route.Protocol = &Protocol{}

// Protocol resolves and executes transfers through the Skip Go API.
// It holds no per-session state and can be shared between quoting sessions.
type Protocol struct {
	logger  *zap.Logger
	client  *skipapi.Client
	network *network.Network
	opts    Options
}

func New(logger *zap.Logger, client *skipapi.Client, net *network.Network, opts Options) *Protocol {
	if opts.QuoteValidity <= 0 {
		opts.QuoteValidity = DefaultQuoteValidity
	}
	if opts.SlippageTolerancePercent == "" {
		opts.SlippageTolerancePercent = DefaultSlippageTolerancePercent
	}

	return &Protocol{
		logger:  logger,
		client:  client,
		network: net,
		opts:    opts,
	}
}

// GetChain implements route.Protocol.
func (p *Protocol) GetChain(name string) (network.Chain, error) {
	chain, err := p.network.GetChain(name)
	if err != nil {
		return nil, errors.Wrap(err, "chain is not configured")
	}
	return chain, nil
}

// Resolver implements route.Protocol.
func (p *Protocol) Resolver(kinds []route.RouteKind) route.ProtocolResolver {
	return &resolver{
		protocol: p,
		kinds:    append([]route.RouteKind(nil), kinds...),
	}
}

func (p *Protocol) smartRelay(chain network.Chain) bool {
	for _, name := range p.opts.SmartRelayChains {
		if name == chain.GetName() {
			return true
		}
	}
	return false
}

type resolver struct {
	protocol *Protocol
	kinds    []route.RouteKind
}

var _ route.ProtocolResolver = &resolver{}

// SupportedDestinationTokens implements route.ProtocolResolver.
func (r *resolver) SupportedDestinationTokens(ctx context.Context, tokenID network.TokenID, src network.Chain, dst network.Chain) ([]network.TokenID, error) {
	token, err := src.GetToken(tokenID)
	if err != nil {
		return nil, err
	}

	resp, err := r.protocol.client.AssetsFromSource(ctx, skipapi.AssetsFromSourceRequest{
		SourceAssetDenom:   token.Denom,
		SourceAssetChainID: src.GetChainID(),
		AllowMultiTx:       true,
	})
	if err != nil {
		return nil, err
	}

	assets, ok := resp.DestAssets[dst.GetChainID()]
	if !ok {
		return nil, nil
	}

	seen := make(map[network.TokenID]bool)
	var ids []network.TokenID
	for _, asset := range assets.Assets {
		id := network.NewTokenID(dst.GetName(), asset.Denom)
		if configured, ok := network.FindTokenByDenom(dst.Tokens(), asset.Denom); ok {
			id = configured.ID
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	return ids, nil
}

// FindRoutes implements route.ProtocolResolver.
func (r *resolver) FindRoutes(_ context.Context, req *route.TransferRequest) ([]route.Route, error) {
	var routes []route.Route
	for _, kind := range r.kinds {
		if !r.supports(kind, req) {
			continue
		}
		routes = append(routes, &skipRoute{kind: kind, protocol: r.protocol})
	}

	return routes, nil
}

func (r *resolver) supports(kind route.RouteKind, req *route.TransferRequest) bool {
	if !kind.IsValid() {
		return false
	}
	if kind.IsFast() && !req.SourceToken().FastTransfer {
		return false
	}
	if kind.IsAutomatic() && !r.protocol.smartRelay(req.DestinationChain()) {
		return false
	}
	return true
}
