package route

import (
	"context"
	"math/big"
	"time"

	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const opInitiate = "initiate transfer"

const (
	StepValidate = "validate"
	StepQuote    = "quote"
	StepInitiate = "initiate"
)

// TransferParams is everything needed to execute one transfer.
// Route must come from the same resolution as Request.
type TransferParams struct {
	Route   Route
	Request *TransferRequest
	Signer  Signer
	Amount  *big.Int
	Options TransferOptions
}

type Executor struct {
	logger     *zap.Logger
	trackerURL string
	now        func() time.Time
}

func NewExecutor(logger *zap.Logger, trackerURL string) *Executor {
	return &Executor{
		logger:     logger,
		trackerURL: trackerURL,
		now:        time.Now,
	}
}

// InitiateTransfer re-validates and re-quotes the selected route, then submits the transfer.
// Partial submissions are not rolled back; a failed initiate reports the transactions already sent in Error.Submitted.
func (e *Executor) InitiateTransfer(ctx context.Context, params TransferParams) (*TransferReceipt, error) {
	if params.Route == nil || params.Request == nil || params.Signer == nil {
		return nil, newError(KindConfiguration, opInitiate, errors.New("route, request and signer are required"))
	}

	kind := params.Route.Kind()
	req := params.Request
	if params.Signer.Chain() != req.SourceChain().GetName() {
		return nil, newError(KindConfiguration, opInitiate, errors.Errorf("signer is bound to %s, transfer starts on %s", params.Signer.Chain(), req.SourceChain().GetName())).withRoute(kind)
	}

	validation, err := params.Route.Validate(ctx, req, Params{Amount: params.Amount, Options: params.Options})
	if err != nil {
		return nil, newError(KindTransferFailed, opInitiate, err).withRoute(kind).withStep(StepValidate)
	}
	if !validation.Valid {
		return nil, newError(KindTransferFailed, opInitiate, rejection(validation)).withRoute(kind).withStep(StepValidate)
	}

	quote, err := params.Route.Quote(ctx, req, validation.Params)
	if err != nil {
		return nil, newError(KindQuoteFailed, opInitiate, err).withRoute(kind).withStep(StepQuote)
	}
	quote.Route = kind
	quote.Success = true

	to := network.ChainAddress{
		Chain:   quote.DestinationToken.ID.Chain,
		Address: req.Receiver().Address,
		Native:  req.Receiver().Native,
	}
	if to.Chain == "" {
		to.Chain = req.Receiver().Chain
	}

	e.logger.Info("Initiating transfer",
		zap.String("route", kind.String()),
		zap.String("from", req.Sender().Native),
		zap.String("to", to.Native),
		zap.String("destination-chain", to.Chain),
		zap.String("amount", validation.Params.Amount.String()),
	)

	result, err := params.Route.Initiate(ctx, req, params.Signer, quote, to)
	if err != nil {
		transferErr := newError(KindTransferFailed, opInitiate, err).withRoute(kind).withStep(StepInitiate)
		var submissionErr *network.SubmissionError
		if errors.As(err, &submissionErr) {
			transferErr.Submitted = append([]string(nil), submissionErr.Completed...)
		}
		return nil, transferErr
	}

	txID := result.TransferTxID()
	if txID == "" {
		return nil, newError(KindTransferFailed, opInitiate, errors.New("no transaction id returned")).withRoute(kind).withStep(StepInitiate)
	}

	e.logger.Info("Transfer submitted", zap.String("route", kind.String()), zap.String("tx", txID), zap.Strings("origin-txs", result.OriginTxs))

	return &TransferReceipt{
		Route:            kind,
		SourceChain:      req.SourceChain().GetName(),
		DestinationChain: to.Chain,
		TxID:             txID,
		OriginTxs:        append([]string(nil), result.OriginTxs...),
		Quote:            quote,
		TrackingURL:      BuildTrackingURL(e.trackerURL, txID),
		SubmittedAt:      e.now(),
	}, nil
}
