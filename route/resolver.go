package route

import (
	"context"
	"strings"

	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const opResolve = "resolve routes"

// Resolution is the output of a resolve: the routes in catalog priority order and the request they serve.
type Resolution struct {
	Routes  []Route
	Request *TransferRequest
}

// Resolver enumerates the routes available for a transfer. It holds no per-session state.
type Resolver struct {
	logger   *zap.Logger
	protocol Protocol
	catalog  Catalog
}

func NewResolver(logger *zap.Logger, protocol Protocol, catalog Catalog) *Resolver {
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}
	return &Resolver{
		logger:   logger,
		protocol: protocol,
		catalog:  catalog,
	}
}

func (r *Resolver) Catalog() Catalog {
	return r.catalog.Kinds()
}

// ResolveRoutes discovers every route that can serve the request.
// Sender and receiver are parsed exactly once here, before any route sees the request.
func (r *Resolver) ResolveRoutes(ctx context.Context, in RouteRequest) (Resolution, error) {
	srcChain, err := r.protocol.GetChain(in.SourceChain)
	if err != nil {
		return Resolution{}, newError(KindConfiguration, opResolve, errors.Wrapf(err, "source chain %s", in.SourceChain))
	}
	dstChain, err := r.protocol.GetChain(in.DestinationChain)
	if err != nil {
		return Resolution{}, newError(KindConfiguration, opResolve, errors.Wrapf(err, "destination chain %s", in.DestinationChain))
	}

	srcToken, err := srcChain.GetToken(network.NewTokenID(srcChain.GetName(), in.Token))
	if err != nil {
		return Resolution{}, newError(KindConfiguration, opResolve, errors.Wrapf(err, "token %s on %s", in.Token, srcChain.GetName()))
	}

	resolver := r.protocol.Resolver(r.catalog.Kinds())

	dstTokenIDs, err := resolver.SupportedDestinationTokens(ctx, srcToken.ID, srcChain, dstChain)
	if err != nil {
		return Resolution{}, newError(KindNetwork, opResolve, errors.Wrap(err, "failed to query supported destination tokens"))
	}
	if len(dstTokenIDs) == 0 {
		return Resolution{}, newError(KindNoDestinationToken, opResolve, errors.Errorf("%s cannot be bridged from %s to %s", srcToken.Symbol, srcChain.GetName(), dstChain.GetName()))
	}

	dstToken, err := pickDestinationToken(dstChain, srcToken, dstTokenIDs, in.DestinationToken)
	if err != nil {
		return Resolution{}, err
	}

	sender, err := network.ParseChainAddress(srcChain, in.Sender)
	if err != nil {
		return Resolution{}, newError(KindInvalidAddress, opResolve, errors.Wrap(err, "sender"))
	}
	receiver, err := network.ParseChainAddress(dstChain, in.Receiver)
	if err != nil {
		return Resolution{}, newError(KindInvalidAddress, opResolve, errors.Wrap(err, "receiver"))
	}

	req := NewTransferRequest(srcChain, dstChain, srcToken, dstToken, sender, receiver)

	found, err := resolver.FindRoutes(ctx, req)
	if err != nil {
		return Resolution{}, newError(KindNetwork, opResolve, errors.Wrap(err, "failed to find routes"))
	}

	routes := r.catalog.Order(found)
	if len(routes) == 0 {
		return Resolution{}, newError(KindNoRoutesFound, opResolve, errors.Errorf("no route supports %s from %s to %s", srcToken.Symbol, srcChain.GetName(), dstChain.GetName()))
	}

	kinds := make([]string, len(routes))
	for i, route := range routes {
		kinds[i] = route.Kind().String()
	}
	r.logger.Info("Resolved routes",
		zap.String("source-chain", srcChain.GetName()),
		zap.String("destination-chain", dstChain.GetName()),
		zap.String("token", srcToken.Symbol),
		zap.String("destination-token", dstToken.ID.String()),
		zap.Strings("routes", kinds),
	)

	return Resolution{Routes: routes, Request: req}, nil
}

// pickDestinationToken returns the requested destination token if it is reachable, otherwise the first reachable one.
// Tokens unknown to the destination chain config keep the protocol denom and inherit the source decimals.
func pickDestinationToken(dstChain network.Chain, srcToken network.Token, reachable []network.TokenID, requested string) (network.Token, error) {
	id := reachable[0]
	if requested != "" {
		wanted := network.NewTokenID(dstChain.GetName(), requested)
		found := false
		for _, candidate := range reachable {
			if strings.EqualFold(candidate.Address, wanted.Address) {
				id = candidate
				found = true
				break
			}
		}
		if !found {
			return network.Token{}, newError(KindNoDestinationToken, opResolve, errors.Errorf("%s is not reachable on %s", requested, dstChain.GetName()))
		}
	}

	token, err := dstChain.GetToken(id)
	if err != nil {
		return network.Token{
			ID:       id,
			Symbol:   srcToken.Symbol,
			Decimals: srcToken.Decimals,
			Denom:    id.Address,
		}, nil
	}

	return token, nil
}
