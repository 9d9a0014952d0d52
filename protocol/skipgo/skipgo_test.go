package skipgo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	skipapi "github.com/gjermundgaraba/libbridge/apis/skip-api"
	"github.com/gjermundgaraba/libbridge/chains/ethereum"
	"github.com/gjermundgaraba/libbridge/chains/network"
	networkmock "github.com/gjermundgaraba/libbridge/chains/network/mock"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/gjermundgaraba/libbridge/route/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	usdcEthereumContract = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	usdcArbitrumContract = "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"
	eurekaEntryContract  = "0xfc2d0487a0ae42ae7329a80dc269916a9184cf7c"
	senderAddress        = "0x1111111111111111111111111111111111111111"
	receiverAddress      = "0x2222222222222222222222222222222222222222"
)

var (
	usdcEthereum = network.Token{ID: network.NewTokenID("ethereum", usdcEthereumContract), Symbol: "USDC", Decimals: 6, Denom: usdcEthereumContract, FastTransfer: true}
	usdcArbitrum = network.Token{ID: network.NewTokenID("arbitrum", usdcArbitrumContract), Symbol: "USDC", Decimals: 6, Denom: usdcArbitrumContract, FastTransfer: true}
	wbtcEthereum = network.Token{ID: network.NewTokenID("ethereum", "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"), Symbol: "WBTC", Decimals: 8, Denom: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"}
)

// fakeSkip serves canned responses for the three Skip Go endpoints and records what it was asked.
type fakeSkip struct {
	mu sync.Mutex

	assets string
	route  string
	msgs   string
	status int

	routeReqs []skipapi.RouteRequest
	msgsBody  []byte
}

func newFakeSkip(t *testing.T) (*fakeSkip, *skipapi.Client) {
	t.Helper()

	fake := &fakeSkip{status: http.StatusOK}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.mu.Lock()
		defer fake.mu.Unlock()

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		if fake.status != http.StatusOK {
			w.WriteHeader(fake.status)
			_, _ = w.Write([]byte(`{"message":"unavailable"}`))
			return
		}

		switch r.URL.Path {
		case "/v2/fungible/assets_from_source":
			_, _ = w.Write([]byte(fake.assets))
		case "/v2/fungible/route":
			var req skipapi.RouteRequest
			require.NoError(t, json.Unmarshal(body, &req))
			fake.routeReqs = append(fake.routeReqs, req)
			_, _ = w.Write([]byte(fake.route))
		case "/v2/fungible/msgs":
			fake.msgsBody = body
			_, _ = w.Write([]byte(fake.msgs))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	return fake, skipapi.NewClient(zap.NewNop(), server.URL)
}

func newTestChain(ctrl *gomock.Controller, name string, chainID string, tokens ...network.Token) *networkmock.MockChain {
	chain := networkmock.NewMockChain(ctrl)
	chain.EXPECT().GetName().Return(name).AnyTimes()
	chain.EXPECT().GetChainID().Return(chainID).AnyTimes()
	chain.EXPECT().Tokens().Return(tokens).AnyTimes()
	chain.EXPECT().GetToken(gomock.Any()).DoAndReturn(func(id network.TokenID) (network.Token, error) {
		token, ok := network.FindToken(tokens, id)
		if !ok {
			return network.Token{}, errors.Errorf("token %s not found", id)
		}
		return token, nil
	}).AnyTimes()
	chain.EXPECT().ParseAddress(gomock.Any()).DoAndReturn(func(address string) (network.UniversalAddress, error) {
		return ethereum.ParseAddress(address)
	}).AnyTimes()
	return chain
}

type testEnv struct {
	fake     *fakeSkip
	protocol *Protocol
	request  *route.TransferRequest
}

func newTestEnv(t *testing.T, ctrl *gomock.Controller, opts Options, extra ...network.Chain) testEnv {
	t.Helper()

	fake, client := newFakeSkip(t)
	src := newTestChain(ctrl, "ethereum", "1", usdcEthereum, wbtcEthereum)
	dst := newTestChain(ctrl, "arbitrum", "42161", usdcArbitrum)
	net, err := network.BuildNetwork(zap.NewNop(), append([]network.Chain{src, dst}, extra...))
	require.NoError(t, err)

	sender, err := network.ParseChainAddress(src, senderAddress)
	require.NoError(t, err)
	receiver, err := network.ParseChainAddress(dst, receiverAddress)
	require.NoError(t, err)

	return testEnv{
		fake:     fake,
		protocol: New(zap.NewNop(), client, net, opts),
		request:  route.NewTransferRequest(src, dst, usdcEthereum, usdcArbitrum, sender, receiver),
	}
}

func eurekaRouteResponse(feeAmount string, expiration time.Time) string {
	return fmt.Sprintf(`{
		"amount_in": "10000000",
		"amount_out": "9950000",
		"estimated_amount_out": "9950000",
		"chain_ids": ["1", "42161"],
		"required_chain_addresses": ["1", "42161"],
		"source_asset_chain_id": "1",
		"source_asset_denom": %q,
		"dest_asset_chain_id": "42161",
		"dest_asset_denom": %q,
		"estimated_route_duration_seconds": 900,
		"operations": [%s],
		"txs_required": 1
	}`, usdcEthereumContract, usdcArbitrumContract, eurekaOperation(feeAmount, expiration))
}

func eurekaOperation(feeAmount string, expiration time.Time) string {
	return fmt.Sprintf(`{
		"tx_index": 0,
		"amount_in": "10000000",
		"amount_out": "9950000",
		"eureka_transfer": {
			"from_chain_id": "1",
			"to_chain_id": "42161",
			"entry_contract_address": %q,
			"denom_in": %q,
			"denom_out": %q,
			"bridge_id": "EUREKA",
			"smart_relay": true,
			"smart_relay_fee_quote": {
				"fee_amount": %q,
				"fee_denom": %q,
				"relayer_address": "0x3333333333333333333333333333333333333333",
				"fee_payment_address": "0x4444444444444444444444444444444444444444",
				"expiration": %q
			}
		}
	}`, eurekaEntryContract, usdcEthereumContract, usdcArbitrumContract, feeAmount, usdcEthereumContract, expiration.UTC().Format(time.RFC3339Nano))
}

const goFastRouteResponse = `{
	"amount_in": "10000000",
	"amount_out": "9990000",
	"estimated_amount_out": "9990000",
	"required_chain_addresses": ["1", "42161"],
	"source_asset_chain_id": "1",
	"dest_asset_chain_id": "42161",
	"estimated_route_duration_seconds": 30,
	"operations": [{"tx_index": 0, "amount_in": "10000000", "amount_out": "9990000", "go_fast_transfer": {"from_chain_id": "1", "to_chain_id": "42161", "bridge_id": "GO_FAST"}}]
}`

func TestSupportedDestinationTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{})
	env.fake.assets = fmt.Sprintf(`{"dest_assets": {
		"42161": {"assets": [{"denom": %q}, {"denom": "0xdeadbeef"}, {"denom": %q}]},
		"osmosis-1": {"assets": [{"denom": "ibc/ABC"}]}
	}}`, strings.ToLower(usdcArbitrumContract), usdcArbitrumContract)

	resolver := env.protocol.Resolver(route.DefaultCatalog.Kinds())
	ids, err := resolver.SupportedDestinationTokens(context.Background(), usdcEthereum.ID, env.request.SourceChain(), env.request.DestinationChain())
	require.NoError(t, err)
	require.Equal(t, []network.TokenID{usdcArbitrum.ID, network.NewTokenID("arbitrum", "0xdeadbeef")}, ids)
}

func TestSupportedDestinationTokensUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{})
	env.fake.assets = `{"dest_assets": {"osmosis-1": {"assets": [{"denom": "ibc/ABC"}]}}}`

	resolver := env.protocol.Resolver(route.DefaultCatalog.Kinds())
	ids, err := resolver.SupportedDestinationTokens(context.Background(), usdcEthereum.ID, env.request.SourceChain(), env.request.DestinationChain())
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestFindRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	kindsOf := func(routes []route.Route) []route.RouteKind {
		kinds := make([]route.RouteKind, len(routes))
		for i, r := range routes {
			kinds[i] = r.Kind()
		}
		return kinds
	}

	t.Run("relayed destination supports every kind", func(t *testing.T) {
		env := newTestEnv(t, ctrl, Options{SmartRelayChains: []string{"arbitrum"}})
		routes, err := env.protocol.Resolver(route.DefaultCatalog.Kinds()).FindRoutes(context.Background(), env.request)
		require.NoError(t, err)
		require.ElementsMatch(t, route.DefaultCatalog.Kinds(), kindsOf(routes))
	})

	t.Run("no relayer leaves manual kinds", func(t *testing.T) {
		env := newTestEnv(t, ctrl, Options{})
		routes, err := env.protocol.Resolver(route.DefaultCatalog.Kinds()).FindRoutes(context.Background(), env.request)
		require.NoError(t, err)
		require.ElementsMatch(t, []route.RouteKind{route.ManualFast, route.ManualGeneric}, kindsOf(routes))
	})

	t.Run("fast kinds need a fast transfer token", func(t *testing.T) {
		env := newTestEnv(t, ctrl, Options{SmartRelayChains: []string{"arbitrum"}})
		req := route.NewTransferRequest(env.request.SourceChain(), env.request.DestinationChain(), wbtcEthereum, usdcArbitrum, env.request.Sender(), env.request.Receiver())
		routes, err := env.protocol.Resolver(route.DefaultCatalog.Kinds()).FindRoutes(context.Background(), req)
		require.NoError(t, err)
		require.ElementsMatch(t, []route.RouteKind{route.AutomaticGeneric, route.ManualGeneric}, kindsOf(routes))
	})

	t.Run("restricted to the requested kinds", func(t *testing.T) {
		env := newTestEnv(t, ctrl, Options{SmartRelayChains: []string{"arbitrum"}})
		routes, err := env.protocol.Resolver([]route.RouteKind{route.ManualGeneric}).FindRoutes(context.Background(), env.request)
		require.NoError(t, err)
		require.Equal(t, []route.RouteKind{route.ManualGeneric}, kindsOf(routes))
	})
}

func TestValidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{MinAutomaticAmounts: map[network.TokenID]*big.Int{usdcEthereum.ID: big.NewInt(1_000_000)}})

	automatic := &skipRoute{kind: route.AutomaticGeneric, protocol: env.protocol}
	manual := &skipRoute{kind: route.ManualGeneric, protocol: env.protocol}

	tests := []struct {
		name   string
		route  *skipRoute
		params route.Params
		valid  bool
		reason string
	}{
		{name: "valid", route: automatic, params: route.Params{Amount: big.NewInt(5_000_000)}, valid: true},
		{name: "zero amount", route: manual, params: route.Params{Amount: big.NewInt(0)}, reason: "amount must be positive"},
		{name: "missing amount", route: manual, params: route.Params{}, reason: "amount must be positive"},
		{name: "below relayer minimum", route: automatic, params: route.Params{Amount: big.NewInt(500_000)}, reason: "below the relayer minimum of 1 USDC"},
		{name: "manual has no minimum", route: manual, params: route.Params{Amount: big.NewInt(500_000)}, valid: true},
		{name: "bad slippage", route: manual, params: route.Params{Amount: big.NewInt(500_000), Options: route.TransferOptions{SlippageTolerancePercent: "lots"}}, reason: "invalid slippage tolerance"},
		{name: "negative timeout", route: manual, params: route.Params{Amount: big.NewInt(500_000), Options: route.TransferOptions{Timeout: -time.Second}}, reason: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.route.Validate(context.Background(), env.request, tt.params)
			require.NoError(t, err)
			require.Equal(t, tt.valid, v.Valid)
			if tt.valid {
				require.Equal(t, 0, v.Params.Amount.Cmp(tt.params.Amount))
			} else {
				require.Contains(t, v.Reason, tt.reason)
			}
		})
	}
}

func TestQuoteAutomatic(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{SmartRelayChains: []string{"arbitrum"}})
	expiration := time.Now().Add(30 * time.Second)
	env.fake.route = eurekaRouteResponse("50000", expiration)

	r := &skipRoute{kind: route.AutomaticGeneric, protocol: env.protocol}
	quote, err := r.Quote(context.Background(), env.request, route.ValidatedParams{Amount: big.NewInt(10_000_000)})
	require.NoError(t, err)

	require.True(t, quote.Success)
	require.Equal(t, route.AutomaticGeneric, quote.Route)
	require.Equal(t, "9950000", quote.DestinationAmount.String())
	require.Equal(t, 15*time.Minute, quote.ETA)
	require.NotNil(t, quote.RelayFee)
	require.Equal(t, "50000", quote.RelayFee.Amount.String())
	require.Equal(t, "USDC", quote.RelayFee.Token.Symbol)
	require.WithinDuration(t, expiration, quote.ExpiresAt, time.Millisecond)
	require.Equal(t, "arbitrum", quote.DestinationToken.ID.Chain)

	require.Len(t, env.fake.routeReqs, 1)
	sent := env.fake.routeReqs[0]
	require.True(t, sent.SmartRelay)
	require.False(t, sent.GoFast)
	require.Equal(t, "10000000", sent.AmountIn)
	require.Equal(t, "1", sent.SourceAssetChainID)
	require.Equal(t, "42161", sent.DestAssetChainID)
}

func TestQuoteManualFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{QuoteValidity: time.Minute})
	env.fake.route = goFastRouteResponse

	r := &skipRoute{kind: route.ManualFast, protocol: env.protocol}
	quote, err := r.Quote(context.Background(), env.request, route.ValidatedParams{Amount: big.NewInt(10_000_000)})
	require.NoError(t, err)

	require.Nil(t, quote.RelayFee)
	require.Equal(t, 30*time.Second, quote.ETA)
	require.Equal(t, time.Minute, quote.ExpiresAt.Sub(quote.IssuedAt))
	require.True(t, env.fake.routeReqs[0].GoFast)
	require.False(t, env.fake.routeReqs[0].SmartRelay)
}

func TestQuoteFastWithoutFastPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{})
	env.fake.route = eurekaRouteResponse("0", time.Now().Add(time.Minute))

	r := &skipRoute{kind: route.ManualFast, protocol: env.protocol}
	_, err := r.Quote(context.Background(), env.request, route.ValidatedParams{Amount: big.NewInt(10_000_000)})
	require.ErrorContains(t, err, "no fast transfer path")
}

func TestQuoteRelayFeeExceedsAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{SmartRelayChains: []string{"arbitrum"}})
	env.fake.route = eurekaRouteResponse("20000000", time.Now().Add(time.Minute))

	r := &skipRoute{kind: route.AutomaticGeneric, protocol: env.protocol}
	_, err := r.Quote(context.Background(), env.request, route.ValidatedParams{Amount: big.NewInt(10_000_000)})
	require.ErrorContains(t, err, "exceeds the transfer amount")
}

func TestQuoteServiceUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{})
	env.fake.status = http.StatusServiceUnavailable

	r := &skipRoute{kind: route.ManualGeneric, protocol: env.protocol}
	_, err := r.Quote(context.Background(), env.request, route.ValidatedParams{Amount: big.NewInt(10_000_000)})
	require.Error(t, err)
	require.True(t, route.IsRetryable(err))
}

func TestInitiate(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{SmartRelayChains: []string{"arbitrum"}})
	expiration := time.Now().Add(time.Minute)
	env.fake.route = eurekaRouteResponse("50000", expiration)
	env.fake.msgs = fmt.Sprintf(`{"txs": [{"evm_tx": {
		"chain_id": "1",
		"to": %q,
		"value": "0",
		"data": "0xdeadbeef",
		"required_erc20_approvals": [{"token_contract": %q, "spender": %q, "amount": "10000000"}],
		"signer_address": %q
	}, "operations_indices": [0]}]}`, eurekaEntryContract, usdcEthereumContract, eurekaEntryContract, senderAddress)

	r := &skipRoute{kind: route.AutomaticGeneric, protocol: env.protocol}
	quote, err := r.Quote(context.Background(), env.request, route.ValidatedParams{
		Amount:  big.NewInt(10_000_000),
		Options: route.TransferOptions{Timeout: 10 * time.Minute},
	})
	require.NoError(t, err)

	signer := mock.NewMockSigner(ctrl)
	signer.EXPECT().Address().Return(senderAddress).AnyTimes()
	signer.EXPECT().SignAndSend(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txs []network.Tx) ([]string, error) {
		require.Len(t, txs, 2)

		approval, ok := txs[0].(*ethereum.Tx)
		require.True(t, ok)
		require.True(t, strings.EqualFold(usdcEthereumContract, approval.To.Hex()))

		transfer, ok := txs[1].(*ethereum.Tx)
		require.True(t, ok)
		require.True(t, strings.EqualFold(eurekaEntryContract, transfer.To.Hex()))
		require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, transfer.Data)

		return []string{"0xapprove", "0xtransfer"}, nil
	})

	result, err := r.Initiate(context.Background(), env.request, signer, quote, env.request.Receiver())
	require.NoError(t, err)
	require.Equal(t, []string{"0xapprove", "0xtransfer"}, result.OriginTxs)
	require.Equal(t, "0xtransfer", result.TransferTxID())

	var sent struct {
		AddressList              []string          `json:"address_list"`
		Operations               []json.RawMessage `json:"operations"`
		SlippageTolerancePercent string            `json:"slippage_tolerance_percent"`
		TimeoutSeconds           string            `json:"timeout_seconds"`
	}
	require.NoError(t, json.Unmarshal(env.fake.msgsBody, &sent))
	require.Equal(t, []string{senderAddress, receiverAddress}, sent.AddressList)
	require.Equal(t, DefaultSlippageTolerancePercent, sent.SlippageTolerancePercent)
	require.Equal(t, "600", sent.TimeoutSeconds)
	require.Len(t, sent.Operations, 1)
	require.JSONEq(t, eurekaOperation("50000", expiration), string(sent.Operations[0]))
}

func TestInitiateSubmissionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{})
	env.fake.route = goFastRouteResponse
	env.fake.msgs = fmt.Sprintf(`{"txs": [{"evm_tx": {"chain_id": "1", "to": %q, "value": "0", "data": "0x"}}]}`, eurekaEntryContract)

	r := &skipRoute{kind: route.ManualFast, protocol: env.protocol}
	quote, err := r.Quote(context.Background(), env.request, route.ValidatedParams{Amount: big.NewInt(10_000_000)})
	require.NoError(t, err)

	submissionErr := &network.SubmissionError{Index: 0, Total: 1, Description: "manual-fast transfer", Err: errors.New("rejected")}
	signer := mock.NewMockSigner(ctrl)
	signer.EXPECT().Address().Return(senderAddress).AnyTimes()
	signer.EXPECT().SignAndSend(gomock.Any(), gomock.Len(1)).Return(nil, submissionErr)

	_, err = r.Initiate(context.Background(), env.request, signer, quote, env.request.Receiver())
	var target *network.SubmissionError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "rejected", target.Err.Error())
}

func TestInitiateIntermediateChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{})
	env.fake.route = strings.Replace(goFastRouteResponse, `["1", "42161"]`, `["1", "osmosis-1", "42161"]`, 1)

	r := &skipRoute{kind: route.ManualFast, protocol: env.protocol}
	quote, err := r.Quote(context.Background(), env.request, route.ValidatedParams{Amount: big.NewInt(10_000_000)})
	require.NoError(t, err)

	signer := mock.NewMockSigner(ctrl)
	signer.EXPECT().Address().Return(senderAddress).AnyTimes()

	_, err = r.Initiate(context.Background(), env.request, signer, quote, env.request.Receiver())
	require.ErrorContains(t, err, "intermediate chain osmosis-1")
}

func TestInitiateRemappedDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{}, newTestChain(ctrl, "arbitrum-one", "arb-1"))
	env.fake.route = strings.NewReplacer(
		`"required_chain_addresses": ["1", "42161"]`, `"required_chain_addresses": ["1", "arb-1"]`,
		`"dest_asset_chain_id": "42161"`, `"dest_asset_chain_id": "arb-1"`,
	).Replace(goFastRouteResponse)
	env.fake.msgs = fmt.Sprintf(`{"txs": [{"evm_tx": {"chain_id": "1", "to": %q, "value": "0", "data": "0x"}}]}`, eurekaEntryContract)

	r := &skipRoute{kind: route.ManualFast, protocol: env.protocol}
	quote, err := r.Quote(context.Background(), env.request, route.ValidatedParams{Amount: big.NewInt(10_000_000)})
	require.NoError(t, err)
	require.Equal(t, "arbitrum-one", quote.DestinationToken.ID.Chain)

	signer := mock.NewMockSigner(ctrl)
	signer.EXPECT().Address().Return(senderAddress).AnyTimes()
	signer.EXPECT().SignAndSend(gomock.Any(), gomock.Len(1)).Return([]string{"0xtransfer"}, nil)

	to := network.ChainAddress{
		Chain:   quote.DestinationToken.ID.Chain,
		Address: env.request.Receiver().Address,
		Native:  env.request.Receiver().Native,
	}
	result, err := r.Initiate(context.Background(), env.request, signer, quote, to)
	require.NoError(t, err)
	require.Equal(t, []string{"0xtransfer"}, result.OriginTxs)

	var sent struct {
		AddressList []string `json:"address_list"`
	}
	require.NoError(t, json.Unmarshal(env.fake.msgsBody, &sent))
	require.Equal(t, []string{senderAddress, receiverAddress}, sent.AddressList)
}

func TestInitiateForeignQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, Options{})

	r := &skipRoute{kind: route.ManualGeneric, protocol: env.protocol}
	_, err := r.Initiate(context.Background(), env.request, mock.NewMockSigner(ctrl), route.Quote{Route: route.ManualGeneric, Success: true}, env.request.Receiver())
	require.ErrorContains(t, err, "not issued by this route")
}

func TestConvertTxs(t *testing.T) {
	t.Run("cosmos", func(t *testing.T) {
		txs, err := convertTxs([]skipapi.Tx{{CosmosTx: &skipapi.CosmosTx{
			ChainID: "cosmoshub-4",
			Msgs:    []skipapi.CosmosTxMsg{{MsgTypeURL: "/ibc.applications.transfer.v1.MsgTransfer", Msg: `{}`}},
		}}}, "cosmoshub-4", route.ManualGeneric)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		require.Equal(t, "cosmoshub-4", txs[0].ChainID())
		require.Equal(t, "manual-generic transfer", txs[0].Description())
	})

	t.Run("wrong chain", func(t *testing.T) {
		_, err := convertTxs([]skipapi.Tx{{EvmTx: &skipapi.EvmTx{ChainID: "10", To: eurekaEntryContract}}}, "1", route.ManualGeneric)
		require.ErrorContains(t, err, "only the source chain 1 can be signed")
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := convertTxs([]skipapi.Tx{{}}, "1", route.ManualGeneric)
		require.ErrorContains(t, err, "unsupported transaction type")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := convertTxs(nil, "1", route.ManualGeneric)
		require.Error(t, err)
	})

	t.Run("bad svm tx", func(t *testing.T) {
		_, err := convertTxs([]skipapi.Tx{{SvmTx: &skipapi.SvmTx{ChainID: "solana", Tx: "not base64!"}}}, "solana", route.ManualGeneric)
		require.Error(t, err)
	})
}
