package skipgo

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"time"

	skipapi "github.com/gjermundgaraba/libbridge/apis/skip-api"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// quoteDetails is what Initiate needs back from Quote to request the exact same route.
type quoteDetails struct {
	route   *skipapi.RouteResponse
	options route.TransferOptions
}

type skipRoute struct {
	kind     route.RouteKind
	protocol *Protocol
}

var _ route.Route = &skipRoute{}

// Kind implements route.Route.
func (r *skipRoute) Kind() route.RouteKind {
	return r.kind
}

// Validate implements route.Route.
func (r *skipRoute) Validate(_ context.Context, req *route.TransferRequest, params route.Params) (route.Validation, error) {
	if req == nil {
		return route.Validation{}, errors.New("missing transfer request")
	}
	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return route.Invalid("amount must be positive"), nil
	}

	minAmount := r.protocol.opts.MinAutomaticAmounts[req.SourceToken().ID]
	if r.kind.IsAutomatic() && minAmount != nil && params.Amount.Cmp(minAmount) < 0 {
		return route.Invalid(fmt.Sprintf("amount is below the relayer minimum of %s %s",
			route.FormatAmount(minAmount, req.SourceToken().Decimals), req.SourceToken().Symbol)), nil
	}

	if params.Options.SlippageTolerancePercent != "" {
		slippage, err := strconv.ParseFloat(params.Options.SlippageTolerancePercent, 64)
		if err != nil || slippage < 0 || slippage > 100 {
			return route.Invalid(fmt.Sprintf("invalid slippage tolerance %q", params.Options.SlippageTolerancePercent)), nil
		}
	}
	if params.Options.Timeout < 0 {
		return route.Invalid("timeout must not be negative"), nil
	}

	return route.Valid(params), nil
}

// Quote implements route.Route.
func (r *skipRoute) Quote(ctx context.Context, req *route.TransferRequest, params route.ValidatedParams) (route.Quote, error) {
	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return route.Quote{}, errors.New("amount must be positive")
	}

	src := req.SourceChain()
	dst := req.DestinationChain()
	issuedAt := time.Now()

	resp, err := r.protocol.client.Route(ctx, skipapi.RouteRequest{
		SourceAssetDenom:   req.SourceToken().Denom,
		SourceAssetChainID: src.GetChainID(),
		DestAssetDenom:     req.DestinationToken().Denom,
		DestAssetChainID:   dst.GetChainID(),
		AllowMultiTx:       true,
		SmartRelay:         r.kind.IsAutomatic(),
		GoFast:             r.kind.IsFast(),
		AmountIn:           params.Amount.String(),
	})
	if err != nil {
		return route.Quote{}, err
	}

	if r.kind.IsFast() && !usesGoFast(resp) {
		return route.Quote{}, errors.New("no fast transfer path available for this amount")
	}

	amountOut := resp.EstimatedAmountOut
	if amountOut == "" {
		amountOut = resp.AmountOut
	}
	destinationAmount, ok := new(big.Int).SetString(amountOut, 10)
	if !ok {
		return route.Quote{}, errors.Errorf("invalid amount out in route response: %q", amountOut)
	}

	destinationToken := req.DestinationToken()
	if resp.DestAssetChainID != "" && resp.DestAssetChainID != dst.GetChainID() {
		chain, err := r.protocol.network.GetChainByID(resp.DestAssetChainID)
		if err != nil {
			return route.Quote{}, errors.Wrap(err, "route ends on an unknown chain")
		}
		destinationToken.ID.Chain = chain.GetName()
	}

	quote := route.Quote{
		Route:             r.kind,
		Success:           true,
		SourceAmount:      new(big.Int).Set(params.Amount),
		DestinationAmount: destinationAmount,
		SourceToken:       req.SourceToken(),
		DestinationToken:  destinationToken,
		ETA:               time.Duration(resp.EstimatedRouteDurationSeconds) * time.Second,
		IssuedAt:          issuedAt,
		ExpiresAt:         issuedAt.Add(r.protocol.opts.QuoteValidity),
		Details: &quoteDetails{
			route:   resp,
			options: params.Options,
		},
	}

	if r.kind.IsAutomatic() {
		fee, expiresAt, err := relayFee(resp, src, req.SourceToken())
		if err != nil {
			return route.Quote{}, err
		}
		if fee.Token.Denom == req.SourceToken().Denom && fee.Amount.Cmp(params.Amount) >= 0 {
			return route.Quote{}, errors.Errorf("relay fee %s exceeds the transfer amount", fee.Amount)
		}
		quote.RelayFee = fee
		if !expiresAt.IsZero() && expiresAt.Before(quote.ExpiresAt) {
			quote.ExpiresAt = expiresAt
		}
	}

	r.protocol.logger.Debug("Quoted route",
		zap.String("route", r.kind.String()),
		zap.String("amount_in", resp.AmountIn),
		zap.String("amount_out", amountOut),
		zap.Int64("eta_seconds", resp.EstimatedRouteDurationSeconds),
	)

	return quote, nil
}

// Initiate implements route.Route.
func (r *skipRoute) Initiate(ctx context.Context, req *route.TransferRequest, signer route.Signer, quote route.Quote, to network.ChainAddress) (route.InitiateResult, error) {
	details, ok := quote.Details.(*quoteDetails)
	if !ok || details == nil || details.route == nil {
		return route.InitiateResult{}, errors.New("quote was not issued by this route")
	}
	resp := details.route

	addresses, err := r.addressList(resp, req, signer, to)
	if err != nil {
		return route.InitiateResult{}, err
	}

	slippage := details.options.SlippageTolerancePercent
	if slippage == "" {
		slippage = r.protocol.opts.SlippageTolerancePercent
	}
	var timeout string
	if details.options.Timeout > 0 {
		timeout = strconv.FormatInt(int64(details.options.Timeout/time.Second), 10)
	}

	msgs, err := r.protocol.client.Msgs(ctx, skipapi.MsgsRequest{
		SourceAssetDenom:         resp.SourceAssetDenom,
		SourceAssetChainID:       resp.SourceAssetChainID,
		DestAssetDenom:           resp.DestAssetDenom,
		DestAssetChainID:         resp.DestAssetChainID,
		AmountIn:                 resp.AmountIn,
		AmountOut:                resp.AmountOut,
		AddressList:              addresses,
		Operations:               resp.Operations,
		EstimatedAmountOut:       resp.EstimatedAmountOut,
		SlippageTolerancePercent: slippage,
		TimeoutSeconds:           timeout,
	})
	if err != nil {
		return route.InitiateResult{}, err
	}

	txs, err := convertTxs(msgs.Txs, req.SourceChain().GetChainID(), r.kind)
	if err != nil {
		return route.InitiateResult{}, err
	}

	r.protocol.logger.Info("Submitting transfer",
		zap.String("route", r.kind.String()),
		zap.String("signer", signer.Address()),
		zap.Int("txs", len(txs)),
	)

	txIDs, err := signer.SignAndSend(ctx, txs)
	if err != nil {
		return route.InitiateResult{}, errors.Wrap(err, "failed to submit transfer transactions")
	}

	return route.InitiateResult{OriginTxs: txIDs}, nil
}

// addressList fills in one address per chain the route touches.
// Intermediate chains are not supported since the process only holds keys for the source chain.
func (r *skipRoute) addressList(resp *skipapi.RouteResponse, req *route.TransferRequest, signer route.Signer, to network.ChainAddress) ([]string, error) {
	chainIDs := resp.RequiredChainAddresses
	if len(chainIDs) == 0 {
		chainIDs = resp.ChainIds
	}

	srcID := req.SourceChain().GetChainID()
	dstID := req.DestinationChain().GetChainID()
	// The quote may place the receiver on a chain other than the requested one.
	toID := dstID
	if to.Chain != "" && to.Chain != req.DestinationChain().GetName() {
		toChain, err := r.protocol.network.GetChain(to.Chain)
		if err != nil {
			return nil, errors.Wrapf(err, "destination chain %s is not configured", to.Chain)
		}
		toID = toChain.GetChainID()
	}

	addresses := make([]string, len(chainIDs))
	for i, chainID := range chainIDs {
		switch chainID {
		case srcID:
			addresses[i] = signer.Address()
		case dstID, toID:
			addresses[i] = to.Native
		default:
			return nil, errors.Errorf("route requires an address on intermediate chain %s", chainID)
		}
	}

	return addresses, nil
}

func usesGoFast(resp *skipapi.RouteResponse) bool {
	for _, op := range resp.Operations {
		if op.GoFastTransfer != nil {
			return true
		}
	}
	return false
}

// relayFee sums the relayer fee quotes of a route. The earliest quote expiration bounds the route quote.
func relayFee(resp *skipapi.RouteResponse, src network.Chain, sourceToken network.Token) (*route.Fee, time.Time, error) {
	total := new(big.Int)
	var denom string
	var expiresAt time.Time

	for _, op := range resp.Operations {
		feeQuote := op.SmartRelayFeeQuote()
		if feeQuote == nil {
			continue
		}
		amount, ok := new(big.Int).SetString(feeQuote.FeeAmount, 10)
		if !ok {
			return nil, time.Time{}, errors.Errorf("invalid relay fee amount: %q", feeQuote.FeeAmount)
		}
		if denom != "" && denom != feeQuote.FeeDenom {
			return nil, time.Time{}, errors.Errorf("relay fees in multiple denoms: %s, %s", denom, feeQuote.FeeDenom)
		}
		denom = feeQuote.FeeDenom
		total.Add(total, amount)
		if !feeQuote.Expiration.IsZero() && (expiresAt.IsZero() || feeQuote.Expiration.Before(expiresAt)) {
			expiresAt = feeQuote.Expiration
		}
	}

	if denom == "" {
		for _, fee := range resp.EstimatedFees {
			if fee.FeeType != skipapi.FeeTypeSmartRelay {
				continue
			}
			amount, ok := new(big.Int).SetString(fee.Amount, 10)
			if !ok {
				return nil, time.Time{}, errors.Errorf("invalid estimated relay fee: %q", fee.Amount)
			}
			denom = fee.OriginAsset.Denom
			total.Add(total, amount)
		}
	}

	if denom == "" {
		denom = sourceToken.Denom
	}

	token, ok := network.FindTokenByDenom(src.Tokens(), denom)
	if !ok {
		token = network.Token{
			ID:       network.NewTokenID(src.GetName(), denom),
			Symbol:   denom,
			Decimals: sourceToken.Decimals,
			Denom:    denom,
		}
	}

	return &route.Fee{Token: token, Amount: total}, expiresAt, nil
}
