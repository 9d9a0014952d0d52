package route

import (
	"fmt"
	"sort"
)

// RouteOption is the display projection of one quoted route.
type RouteOption struct {
	// Index is the position of the route in the slice passed to Present.
	Index       int
	Kind        RouteKind
	Name        string
	Description string
	Fee         string
	FeeValue    float64
	Receive     string
	ETA         string
	ETAMillis   int64
	Automatic   bool
}

// RequiresClaim reports whether the receiver has to claim the transfer on the destination chain.
func (o RouteOption) RequiresClaim() bool {
	return !o.Automatic
}

type routeDisplay struct {
	name        string
	description string
}

var routeDisplays = map[RouteKind]routeDisplay{
	AutomaticFast: {
		name:        "Automatic Fast Transfer",
		description: "Fast bridge with a relayer delivering on the destination chain. A relay fee is charged.",
	},
	ManualFast: {
		name:        "Manual Fast Transfer",
		description: "Fast bridge without a relayer. You claim the tokens on the destination chain yourself.",
	},
	AutomaticGeneric: {
		name:        "Automatic Token Bridge",
		description: "General purpose token bridge with a relayer delivering on the destination chain.",
	},
	ManualGeneric: {
		name:        "Manual Token Bridge",
		description: "General purpose token bridge without a relayer. Free, but delivery can take days and must be claimed.",
	},
}

const genericRouteDescription = "Bridge transfer"

// Present zips routes with their quotes. Both slices must have the same length.
func Present(routes []Route, quotes []Quote) []RouteOption {
	options := make([]RouteOption, 0, len(routes))
	for i, r := range routes {
		options = append(options, presentOne(i, r.Kind(), quotes[i]))
	}
	return options
}

func presentOne(index int, kind RouteKind, quote Quote) RouteOption {
	display, ok := routeDisplays[kind]
	if !ok {
		display = routeDisplay{name: kind.String(), description: genericRouteDescription}
	}

	feeValue := 0.0
	if !quote.RelayFee.IsZero() {
		feeValue = amountValue(quote.RelayFee.Amount, quote.RelayFee.Token.Decimals)
	}

	receive := ""
	if quote.DestinationAmount != nil {
		receive = fmt.Sprintf("%s %s", FormatAmount(quote.DestinationAmount, quote.DestinationToken.Decimals), quote.DestinationToken.Symbol)
	}

	return RouteOption{
		Index:       index,
		Kind:        kind,
		Name:        display.name,
		Description: display.description,
		Fee:         FormatFee(quote.RelayFee),
		FeeValue:    feeValue,
		Receive:     receive,
		ETA:         FormatETA(quote.ETAMillis()),
		ETAMillis:   quote.ETAMillis(),
		Automatic:   kind.IsAutomatic(),
	}
}

// FormatFee renders a relay fee, or "Free" when there is none.
func FormatFee(fee *Fee) string {
	if fee.IsZero() {
		return "Free"
	}
	return fmt.Sprintf("%s %s", FormatAmount(fee.Amount, fee.Token.Decimals), fee.Token.Symbol)
}

var etaUnits = []struct {
	millis int64
	name   string
}{
	{24 * 60 * 60 * 1000, "day"},
	{60 * 60 * 1000, "hour"},
	{60 * 1000, "minute"},
	{1000, "second"},
}

// FormatETA renders a millisecond duration using only its largest whole unit, e.g. 90000 -> "1 minute".
func FormatETA(millis int64) string {
	for _, unit := range etaUnits {
		if n := millis / unit.millis; n >= 1 {
			return pluralize(n, unit.name)
		}
	}
	return pluralize(0, "second")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// ByFee returns a copy of options sorted by ascending fee. Equal fees keep their order.
func ByFee(options []RouteOption) []RouteOption {
	sorted := append([]RouteOption(nil), options...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FeeValue < sorted[j].FeeValue
	})
	return sorted
}

// BySpeed returns a copy of options sorted by ascending ETA in milliseconds. Equal ETAs keep their order.
func BySpeed(options []RouteOption) []RouteOption {
	sorted := append([]RouteOption(nil), options...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ETAMillis < sorted[j].ETAMillis
	})
	return sorted
}
