package route

import (
	"time"

	"github.com/pkg/errors"
)

type SortOrder int

const (
	SortNone SortOrder = iota
	SortFee
	SortSpeed
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", "none":
		return SortNone, nil
	case "fee":
		return SortFee, nil
	case "speed":
		return SortSpeed, nil
	default:
		return SortNone, errors.Errorf("unknown sort order %q, expected fee or speed", s)
	}
}

// QuoteSession is the state of one quoting session. Every transition returns a new session,
// so routes, quotes, options and the selection can never drift out of alignment.
type QuoteSession struct {
	request  *TransferRequest
	routes   []Route
	quotes   []Quote
	options  []RouteOption
	selected int
	quotedAt time.Time
}

// NewQuoteSession starts a session from a resolution. Nothing is selectable until quotes are attached.
func NewQuoteSession(res Resolution) QuoteSession {
	return QuoteSession{
		request:  res.Request,
		routes:   append([]Route(nil), res.Routes...),
		selected: -1,
	}
}

func (s QuoteSession) Request() *TransferRequest {
	return s.request
}

// Routes returns every resolved route, viable or not.
func (s QuoteSession) Routes() []Route {
	return append([]Route(nil), s.routes...)
}

// Quotes returns one quote per resolved route, aligned with Routes.
func (s QuoteSession) Quotes() []Quote {
	return append([]Quote(nil), s.quotes...)
}

// Options returns the selectable options in their current display order.
func (s QuoteSession) Options() []RouteOption {
	return append([]RouteOption(nil), s.options...)
}

func (s QuoteSession) QuotedAt() time.Time {
	return s.quotedAt
}

// WithQuotes attaches aggregation results and rebuilds the options from the successful routes.
// The first option becomes selected.
func (s QuoteSession) WithQuotes(quotes []Quote, now time.Time) (QuoteSession, error) {
	if len(quotes) != len(s.routes) {
		return s, errors.Errorf("got %d quotes for %d routes", len(quotes), len(s.routes))
	}

	next := QuoteSession{
		request:  s.request,
		routes:   s.routes,
		quotes:   append([]Quote(nil), quotes...),
		selected: -1,
		quotedAt: now,
	}

	for i, r := range s.routes {
		if quotes[i].Success {
			next.options = append(next.options, presentOne(i, r.Kind(), quotes[i]))
		}
	}
	if len(next.options) > 0 {
		next.selected = next.options[0].Index
	}

	return next, nil
}

// Select marks the option at position i of Options as selected.
func (s QuoteSession) Select(i int) (QuoteSession, error) {
	if i < 0 || i >= len(s.options) {
		return s, errors.Errorf("option %d out of range, %d options available", i, len(s.options))
	}
	next := s
	next.selected = s.options[i].Index
	return next, nil
}

// SelectKind selects the option for the given route kind.
func (s QuoteSession) SelectKind(kind RouteKind) (QuoteSession, error) {
	for i, option := range s.options {
		if option.Kind == kind {
			return s.Select(i)
		}
	}
	return s, errors.Errorf("no quoted route of kind %s", kind)
}

// SortedBy reorders the options. The selected route stays selected.
func (s QuoteSession) SortedBy(order SortOrder) QuoteSession {
	next := s
	switch order {
	case SortFee:
		next.options = ByFee(s.options)
	case SortSpeed:
		next.options = BySpeed(s.options)
	default:
		next.options = append([]RouteOption(nil), s.options...)
	}
	return next
}

// Selected returns the selected option, if any.
func (s QuoteSession) Selected() (RouteOption, bool) {
	for _, option := range s.options {
		if option.Index == s.selected {
			return option, true
		}
	}
	return RouteOption{}, false
}

// SelectedRoute returns the selected route together with its quote.
func (s QuoteSession) SelectedRoute() (Route, Quote, bool) {
	if s.selected < 0 || s.selected >= len(s.routes) {
		return nil, Quote{}, false
	}
	return s.routes[s.selected], s.quotes[s.selected], true
}

// Stale reports whether the quotes are older than validity, or any selected quote has expired.
func (s QuoteSession) Stale(now time.Time, validity time.Duration) bool {
	if s.quotedAt.IsZero() {
		return true
	}
	if validity > 0 && now.Sub(s.quotedAt) >= validity {
		return true
	}
	if _, quote, ok := s.SelectedRoute(); ok && quote.Expired(now) {
		return true
	}
	return false
}
