package route_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/gjermundgaraba/libbridge/route/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testTrackerURL = "https://explorer.example.com/tx/"

func newTestSigner(ctrl *gomock.Controller, chain string) *mock.MockSigner {
	signer := mock.NewMockSigner(ctrl)
	signer.EXPECT().Chain().Return(chain).AnyTimes()
	signer.EXPECT().Address().Return("0xsender").AnyTimes()
	return signer
}

func TestInitiateTransfer(t *testing.T) {
	ctx := context.Background()
	amount := big.NewInt(10_000_000)

	t.Run("receipt uses the last origin transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)
		signer := newTestSigner(ctrl, "ethereum")

		fresh := testQuote(route.ManualFast, 0, 15*time.Minute)
		fresh.DestinationToken.ID.Chain = "arbitrum-one"

		r := newKindRoute(ctrl, route.ManualFast)
		gomock.InOrder(
			r.EXPECT().Validate(gomock.Any(), req, route.Params{Amount: amount}).Return(route.Valid(route.Params{Amount: amount}), nil),
			r.EXPECT().Quote(gomock.Any(), req, gomock.Any()).Return(fresh, nil),
			r.EXPECT().Initiate(gomock.Any(), req, signer, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *route.TransferRequest, s route.Signer, q route.Quote, to network.ChainAddress) (route.InitiateResult, error) {
					require.Equal(t, "arbitrum-one", to.Chain)
					require.Equal(t, req.Receiver().Address, to.Address)
					require.True(t, q.Success)
					txs, err := s.SignAndSend(ctx, []network.Tx{testTx("approve"), testTx("transfer")})
					require.NoError(t, err)
					return route.InitiateResult{OriginTxs: txs}, nil
				}),
		)
		signer.EXPECT().SignAndSend(gomock.Any(), gomock.Len(2)).Return([]string{"0xapprove", "0xtransfer"}, nil)

		receipt, err := route.NewExecutor(zap.NewNop(), testTrackerURL).InitiateTransfer(ctx, route.TransferParams{
			Route:   r,
			Request: req,
			Signer:  signer,
			Amount:  amount,
		})
		require.NoError(t, err)
		require.Equal(t, "0xtransfer", receipt.TxID)
		require.Equal(t, []string{"0xapprove", "0xtransfer"}, receipt.OriginTxs)
		require.Equal(t, route.ManualFast, receipt.Route)
		require.Equal(t, "ethereum", receipt.SourceChain)
		require.Equal(t, "arbitrum-one", receipt.DestinationChain)
		require.Equal(t, testTrackerURL+"0xtransfer", receipt.TrackingURL)
		require.False(t, receipt.SubmittedAt.IsZero())
	})

	t.Run("single tx id fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)

		r := newKindRoute(ctrl, route.ManualGeneric)
		expectQuote(r, testQuote(route.ManualGeneric, 0, 24*time.Hour), nil)
		r.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(route.InitiateResult{TxID: "0xonly"}, nil)

		receipt, err := route.NewExecutor(zap.NewNop(), "").InitiateTransfer(ctx, route.TransferParams{
			Route: r, Request: req, Signer: newTestSigner(ctrl, "ethereum"), Amount: amount,
		})
		require.NoError(t, err)
		require.Equal(t, "0xonly", receipt.TxID)
		require.Empty(t, receipt.TrackingURL)
	})

	t.Run("validation rejection is a transfer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)

		r := newKindRoute(ctrl, route.AutomaticFast)
		r.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).Return(route.Invalid("amount too small"), nil)
		r.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		r.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := route.NewExecutor(zap.NewNop(), testTrackerURL).InitiateTransfer(ctx, route.TransferParams{
			Route: r, Request: req, Signer: newTestSigner(ctrl, "ethereum"), Amount: amount,
		})
		require.ErrorIs(t, err, route.ErrTransferFailed)
		require.Contains(t, err.Error(), "amount too small")

		var routeErr *route.Error
		require.True(t, errors.As(err, &routeErr))
		require.Equal(t, route.StepValidate, routeErr.Step)
		require.Equal(t, route.AutomaticFast, routeErr.Route)
	})

	t.Run("re-quote failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)

		r := newKindRoute(ctrl, route.AutomaticFast)
		expectQuote(r, route.Quote{}, errors.New("quote expired"))
		r.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := route.NewExecutor(zap.NewNop(), testTrackerURL).InitiateTransfer(ctx, route.TransferParams{
			Route: r, Request: req, Signer: newTestSigner(ctrl, "ethereum"), Amount: amount,
		})
		require.ErrorIs(t, err, route.ErrQuoteFailed)
	})

	t.Run("partial submission reports what was sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)

		r := newKindRoute(ctrl, route.AutomaticFast)
		expectQuote(r, testQuote(route.AutomaticFast, 250_000, 15*time.Minute), nil)
		r.EXPECT().Initiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(route.InitiateResult{}, errors.Wrap(&network.SubmissionError{
				Index:       1,
				Total:       2,
				Completed:   []string{"0xapprove"},
				Description: "transfer",
				Err:         errors.New("user rejected the request"),
			}, "failed to submit transfer"))

		_, err := route.NewExecutor(zap.NewNop(), testTrackerURL).InitiateTransfer(ctx, route.TransferParams{
			Route: r, Request: req, Signer: newTestSigner(ctrl, "ethereum"), Amount: amount,
		})
		require.ErrorIs(t, err, route.ErrTransferFailed)

		var routeErr *route.Error
		require.True(t, errors.As(err, &routeErr))
		require.Equal(t, route.StepInitiate, routeErr.Step)
		require.Equal(t, []string{"0xapprove"}, routeErr.Submitted)
		require.Contains(t, err.Error(), "1 of 2 completed")
	})

	t.Run("signer on the wrong chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)

		r := newKindRoute(ctrl, route.ManualFast)
		r.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := route.NewExecutor(zap.NewNop(), testTrackerURL).InitiateTransfer(ctx, route.TransferParams{
			Route: r, Request: req, Signer: newTestSigner(ctrl, "solana"), Amount: amount,
		})
		require.ErrorIs(t, err, route.ErrConfiguration)
	})
}

type testTx string

func (tx testTx) ChainID() string {
	return "ethereum-1"
}

func (tx testTx) Description() string {
	return string(tx)
}
