package route_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/gjermundgaraba/libbridge/route"
	"github.com/gjermundgaraba/libbridge/route/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func expectQuote(r *mock.MockRoute, quote route.Quote, quoteErr error) {
	r.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *route.TransferRequest, params route.Params) (route.Validation, error) {
			return route.Valid(params), nil
		})
	r.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(quote, quoteErr)
}

func TestQuoteAll(t *testing.T) {
	ctx := context.Background()
	amount := big.NewInt(10_000_000)

	t.Run("one failing quote keeps its slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)

		kinds := []route.RouteKind{route.AutomaticFast, route.ManualFast, route.AutomaticGeneric, route.ManualGeneric}
		routes := make([]route.Route, len(kinds))
		for i, kind := range kinds {
			r := newKindRoute(ctrl, kind)
			if kind == route.AutomaticGeneric {
				expectQuote(r, route.Quote{}, errors.New("relayer unavailable"))
			} else {
				expectQuote(r, testQuote(kind, 0, 15*time.Minute), nil)
			}
			routes[i] = r
		}

		quotes := route.NewQuoteAggregator(zap.NewNop()).QuoteAll(ctx, routes, req, amount, route.TransferOptions{})
		require.Len(t, quotes, 4)
		for i, q := range quotes {
			require.Equal(t, kinds[i], q.Route)
		}
		require.True(t, quotes[0].Success)
		require.True(t, quotes[1].Success)
		require.False(t, quotes[2].Success)
		require.ErrorIs(t, quotes[2].Err, route.ErrQuoteFailed)
		require.Contains(t, quotes[2].ErrorMessage(), "relayer unavailable")
		require.True(t, quotes[3].Success)

		okRoutes, okQuotes := route.Successful(routes, quotes)
		require.Len(t, okRoutes, 3)
		require.Len(t, okQuotes, 3)
		require.Len(t, route.Present(okRoutes, okQuotes), 3)
		require.Equal(t, []route.RouteKind{route.AutomaticFast, route.ManualFast, route.ManualGeneric}, kindsOf(okRoutes))
	})

	t.Run("invalid amount excludes the route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)

		rejecting := newKindRoute(ctrl, route.AutomaticFast)
		rejecting.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).Return(route.Invalid("amount below relay minimum"), nil)
		rejecting.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		accepting := newKindRoute(ctrl, route.ManualFast)
		expectQuote(accepting, testQuote(route.ManualFast, 0, 15*time.Minute), nil)

		quotes := route.NewQuoteAggregator(zap.NewNop()).QuoteAll(ctx, []route.Route{rejecting, accepting}, req, amount, route.TransferOptions{})
		require.Len(t, quotes, 2)
		require.False(t, quotes[0].Success)
		require.ErrorIs(t, quotes[0].Err, route.ErrValidationFailed)
		require.Contains(t, quotes[0].ErrorMessage(), "amount below relay minimum")
		require.True(t, quotes[1].Success)
	})

	t.Run("panicking route is isolated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)

		panicking := newKindRoute(ctrl, route.AutomaticFast)
		panicking.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, *route.TransferRequest, route.Params) (route.Validation, error) {
				panic("nil pointer")
			})
		healthy := newKindRoute(ctrl, route.ManualFast)
		expectQuote(healthy, testQuote(route.ManualFast, 0, time.Minute), nil)

		quotes := route.NewQuoteAggregator(zap.NewNop()).QuoteAll(ctx, []route.Route{panicking, healthy}, req, amount, route.TransferOptions{})
		require.False(t, quotes[0].Success)
		require.ErrorIs(t, quotes[0].Err, route.ErrQuoteFailed)
		require.True(t, quotes[1].Success)
	})

	t.Run("quotes run concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := newTestRequest(t, ctrl)

		const n = 4
		started := make(chan struct{}, n)
		release := make(chan struct{})

		routes := make([]route.Route, n)
		for i := range routes {
			r := newKindRoute(ctrl, route.DefaultCatalog[i])
			r.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *route.TransferRequest, params route.Params) (route.Validation, error) {
					started <- struct{}{}
					<-release
					return route.Valid(params), nil
				})
			r.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(testQuote(route.DefaultCatalog[i], 0, time.Minute), nil)
			routes[i] = r
		}

		done := make(chan []route.Quote)
		go func() {
			done <- route.NewQuoteAggregator(zap.NewNop()).QuoteAll(ctx, routes, req, amount, route.TransferOptions{})
		}()

		for i := 0; i < n; i++ {
			select {
			case <-started:
			case <-time.After(5 * time.Second):
				t.Fatal("routes were not quoted concurrently")
			}
		}
		close(release)

		quotes := <-done
		require.Len(t, quotes, n)
		for _, q := range quotes {
			require.True(t, q.Success)
		}
	})

	t.Run("no routes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := route.NewQuoteAggregator(zap.NewNop()).QuoteAll(ctx, nil, newTestRequest(t, ctrl), amount, route.TransferOptions{})
		require.Empty(t, quotes)
	})
}
