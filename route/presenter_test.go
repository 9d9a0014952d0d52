package route_test

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/gjermundgaraba/libbridge/route"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFormatETA(t *testing.T) {
	tests := []struct {
		millis int64
		want   string
	}{
		{0, "0 seconds"},
		{999, "0 seconds"},
		{1000, "1 second"},
		{59_000, "59 seconds"},
		{60_000, "1 minute"},
		{90_000, "1 minute"},
		{120_000, "2 minutes"},
		{15 * 60_000, "15 minutes"},
		{3_600_000, "1 hour"},
		{7_199_999, "1 hour"},
		{86_400_000, "1 day"},
		{2 * 86_400_000, "2 days"},
		{-5, "0 seconds"},
		{10_000_000_000_000, "115740 days"},
		{math.MaxInt64, "106751991167 days"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, route.FormatETA(tt.millis), "millis=%d", tt.millis)
	}
}

func TestFormatFee(t *testing.T) {
	require.Equal(t, "Free", route.FormatFee(nil))
	require.Equal(t, "Free", route.FormatFee(&route.Fee{Token: usdcEthereum, Amount: big.NewInt(0)}))
	require.Equal(t, "Free", route.FormatFee(&route.Fee{Token: usdcEthereum}))
	require.Equal(t, "0.25 USDC", route.FormatFee(&route.Fee{Token: usdcEthereum, Amount: big.NewInt(250_000)}))
}

func TestPresent(t *testing.T) {
	ctrl := gomock.NewController(t)

	routes := []route.Route{
		newKindRoute(ctrl, route.AutomaticFast),
		newKindRoute(ctrl, route.ManualFast),
		newKindRoute(ctrl, route.RouteKind(99)),
	}
	quotes := []route.Quote{
		testQuote(route.AutomaticFast, 250_000, 15*time.Minute),
		testQuote(route.ManualFast, 0, 15*time.Minute),
		testQuote(route.RouteKind(99), 0, 3*24*time.Hour),
	}

	options := route.Present(routes, quotes)
	require.Len(t, options, 3)

	require.Equal(t, "Automatic Fast Transfer", options[0].Name)
	require.True(t, options[0].Automatic)
	require.False(t, options[0].RequiresClaim())
	require.Equal(t, "0.25 USDC", options[0].Fee)
	require.InDelta(t, 0.25, options[0].FeeValue, 1e-9)
	require.Equal(t, "15 minutes", options[0].ETA)
	require.Equal(t, "9.75 USDC", options[0].Receive)

	require.Equal(t, "Manual Fast Transfer", options[1].Name)
	require.False(t, options[1].Automatic)
	require.True(t, options[1].RequiresClaim())
	require.Equal(t, "Free", options[1].Fee)
	require.Zero(t, options[1].FeeValue)
	require.Equal(t, options[0].ETA, options[1].ETA)

	require.Equal(t, "RouteKind(99)", options[2].Name)
	require.NotEmpty(t, options[2].Description)
	require.Equal(t, "3 days", options[2].ETA)

	require.Equal(t, options, route.Present(routes, quotes))
}

func TestSortOptions(t *testing.T) {
	options := []route.RouteOption{
		{Index: 0, FeeValue: 0, ETAMillis: 600_000},
		{Index: 1, FeeValue: 5, ETAMillis: 61_000},
		{Index: 2, FeeValue: 2, ETAMillis: 89_000},
		{Index: 3, FeeValue: 2, ETAMillis: 61_000},
	}

	byFee := route.ByFee(options)
	require.Equal(t, []int{0, 2, 3, 1}, indices(byFee))

	// 61s and 89s both format as "1 minute" but must still sort apart.
	bySpeed := route.BySpeed(options)
	require.Equal(t, []int{1, 3, 2, 0}, indices(bySpeed))

	require.Equal(t, []int{0, 1, 2, 3}, indices(options))

	t.Run("fees 0, 5, 2", func(t *testing.T) {
		sorted := route.ByFee([]route.RouteOption{{Index: 0, FeeValue: 0}, {Index: 1, FeeValue: 5}, {Index: 2, FeeValue: 2}})
		require.Equal(t, []int{0, 2, 1}, indices(sorted))
	})
}

func indices(options []route.RouteOption) []int {
	out := make([]int, len(options))
	for i, o := range options {
		out[i] = o.Index
	}
	return out
}
