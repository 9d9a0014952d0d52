package route

import (
	"context"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const opQuote = "quote"

type QuoteAggregator struct {
	logger *zap.Logger
}

func NewQuoteAggregator(logger *zap.Logger) *QuoteAggregator {
	return &QuoteAggregator{logger: logger}
}

// QuoteAll validates and quotes every route concurrently.
// The result has one slot per route, in the same order. A route that fails validation or quoting
// gets a failed quote in its slot and never affects the other routes.
func (a *QuoteAggregator) QuoteAll(ctx context.Context, routes []Route, req *TransferRequest, amount *big.Int, opts TransferOptions) []Quote {
	quotes := make([]Quote, len(routes))

	var eg errgroup.Group
	for i, r := range routes {
		eg.Go(func() error {
			quotes[i] = a.quoteOne(ctx, r, req, Params{Amount: amount, Options: opts})
			return nil
		})
	}
	_ = eg.Wait()

	succeeded := 0
	for _, q := range quotes {
		if q.Success {
			succeeded++
		}
	}
	a.logger.Info("Quoted routes", zap.Int("routes", len(routes)), zap.Int("succeeded", succeeded))

	return quotes
}

func (a *QuoteAggregator) quoteOne(ctx context.Context, r Route, req *TransferRequest, params Params) (quote Quote) {
	kind := r.Kind()
	defer func() {
		if p := recover(); p != nil {
			quote = failedQuote(kind, newError(KindQuoteFailed, opQuote, fmt.Errorf("panic: %v", p)).withRoute(kind))
		}
		if !quote.Success {
			a.logger.Warn("Route not viable", zap.String("route", kind.String()), zap.Error(quote.Err))
		}
	}()

	validation, err := r.Validate(ctx, req, params)
	if err != nil {
		return failedQuote(kind, newError(KindValidationFailed, opQuote, errors.Wrap(err, "validate")).withRoute(kind))
	}
	if !validation.Valid {
		return failedQuote(kind, newError(KindValidationFailed, opQuote, rejection(validation)).withRoute(kind))
	}

	quote, err = r.Quote(ctx, req, validation.Params)
	if err != nil {
		return failedQuote(kind, newError(KindQuoteFailed, opQuote, err).withRoute(kind))
	}

	quote.Route = kind
	quote.Success = true
	quote.Err = nil
	return quote
}

// Successful filters routes and quotes down to the pairs that quoted successfully, keeping them aligned.
func Successful(routes []Route, quotes []Quote) ([]Route, []Quote) {
	var okRoutes []Route
	var okQuotes []Quote
	for i := range routes {
		if i < len(quotes) && quotes[i].Success {
			okRoutes = append(okRoutes, routes[i])
			okQuotes = append(okQuotes, quotes[i])
		}
	}
	return okRoutes, okQuotes
}

func rejection(v Validation) error {
	if v.Reason == "" {
		return errors.New("route rejected the transfer parameters")
	}
	return errors.New(v.Reason)
}
