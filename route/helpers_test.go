package route_test

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/gjermundgaraba/libbridge/chains/network"
	networkmock "github.com/gjermundgaraba/libbridge/chains/network/mock"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/gjermundgaraba/libbridge/route/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	usdcEthereum = network.Token{ID: network.NewTokenID("ethereum", "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), Symbol: "USDC", Decimals: 6, Denom: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", FastTransfer: true}
	usdcArbitrum = network.Token{ID: network.NewTokenID("arbitrum", "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"), Symbol: "USDC", Decimals: 6, Denom: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", FastTransfer: true}
)

// newTestChain returns a chain mock that knows the given tokens and rejects addresses starting with "bad".
func newTestChain(ctrl *gomock.Controller, name string, tokens ...network.Token) *networkmock.MockChain {
	chain := networkmock.NewMockChain(ctrl)
	chain.EXPECT().GetName().Return(name).AnyTimes()
	chain.EXPECT().GetChainID().Return(name + "-1").AnyTimes()
	chain.EXPECT().Tokens().Return(tokens).AnyTimes()
	chain.EXPECT().GetToken(gomock.Any()).DoAndReturn(func(id network.TokenID) (network.Token, error) {
		token, ok := network.FindToken(tokens, id)
		if !ok {
			return network.Token{}, errors.Errorf("token %s not found", id)
		}
		return token, nil
	}).AnyTimes()
	chain.EXPECT().ParseAddress(gomock.Any()).DoAndReturn(func(address string) (network.UniversalAddress, error) {
		if address == "" || strings.HasPrefix(address, "bad") {
			return network.UniversalAddress{}, errors.Errorf("malformed address %q", address)
		}
		return network.NewUniversalAddress([]byte(address))
	}).AnyTimes()
	return chain
}

func newTestRequest(t *testing.T, ctrl *gomock.Controller) *route.TransferRequest {
	t.Helper()

	src := newTestChain(ctrl, "ethereum", usdcEthereum)
	dst := newTestChain(ctrl, "arbitrum", usdcArbitrum)
	sender, err := network.ParseChainAddress(src, "0xsender")
	require.NoError(t, err)
	receiver, err := network.ParseChainAddress(dst, "0xreceiver")
	require.NoError(t, err)

	return route.NewTransferRequest(src, dst, usdcEthereum, usdcArbitrum, sender, receiver)
}

func newKindRoute(ctrl *gomock.Controller, kind route.RouteKind) *mock.MockRoute {
	r := mock.NewMockRoute(ctrl)
	r.EXPECT().Kind().Return(kind).AnyTimes()
	return r
}

func testQuote(kind route.RouteKind, fee int64, eta time.Duration) route.Quote {
	q := route.Quote{
		Route:             kind,
		Success:           true,
		SourceToken:       usdcEthereum,
		DestinationToken:  usdcArbitrum,
		SourceAmount:      big.NewInt(10_000_000),
		DestinationAmount: big.NewInt(10_000_000 - fee),
		ETA:               eta,
	}
	if fee > 0 {
		q.RelayFee = &route.Fee{Token: usdcEthereum, Amount: big.NewInt(fee)}
	}
	return q
}
