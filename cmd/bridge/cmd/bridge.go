package cmd

import (
	"context"
	"math/big"
	"time"

	skipapi "github.com/gjermundgaraba/libbridge/apis/skip-api"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/protocol/skipgo"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// bridge wires the configured network and routing backend into the route components.
type bridge struct {
	network    *network.Network
	resolver   *route.Resolver
	aggregator *route.QuoteAggregator
	executor   *route.Executor
	validity   time.Duration
}

func newBridge(ctx context.Context) (*bridge, error) {
	net, err := cfg.ToNetwork(ctx, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build network")
	}

	opts, err := cfg.ProtocolOptions()
	if err != nil {
		return nil, err
	}

	client := skipapi.NewClient(logger, cfg.SkipAPIURL)
	protocol := skipgo.New(logger, client, net, opts)

	return &bridge{
		network:    net,
		resolver:   route.NewResolver(logger, protocol, route.DefaultCatalog),
		aggregator: route.NewQuoteAggregator(logger),
		executor:   route.NewExecutor(logger, cfg.TrackerURL),
		validity:   opts.QuoteValidity,
	}, nil
}

// quote resolves the request and quotes every route for the human readable amount.
func (b *bridge) quote(ctx context.Context, req route.RouteRequest, amount string, opts route.TransferOptions) (route.QuoteSession, *big.Int, error) {
	resolution, err := b.resolver.ResolveRoutes(ctx, req)
	if err != nil {
		return route.QuoteSession{}, nil, err
	}

	session := route.NewQuoteSession(resolution)
	baseAmount, err := route.ParseAmount(amount, session.Request().SourceToken().Decimals)
	if err != nil {
		return route.QuoteSession{}, nil, err
	}

	quotes := b.aggregator.QuoteAll(ctx, session.Routes(), session.Request(), baseAmount, opts)
	for i, q := range quotes {
		if !q.Success {
			logger.Warn("Route unavailable", zap.String("route", session.Routes()[i].Kind().String()), zap.String("reason", q.ErrorMessage()))
		}
	}

	session, err = session.WithQuotes(quotes, time.Now())
	if err != nil {
		return route.QuoteSession{}, nil, err
	}
	if len(session.Options()) == 0 {
		return route.QuoteSession{}, nil, errors.New("none of the routes could be quoted")
	}

	return session, baseAmount, nil
}
