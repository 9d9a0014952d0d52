package route

import (
	"math/big"
	"time"

	"github.com/gjermundgaraba/libbridge/chains/network"
)

// Quote is the priced and timed outcome of quoting one route.
// Failed quotes keep their slot in aggregation results with Success false and Err set.
type Quote struct {
	Route   RouteKind
	Success bool
	Err     error

	SourceAmount      *big.Int
	DestinationAmount *big.Int
	SourceToken       network.Token
	// DestinationToken is the token as resolved by the protocol. Its chain may differ in name from the requested one.
	DestinationToken network.Token
	// RelayFee is nil for manual routes.
	RelayFee *Fee
	ETA      time.Duration

	IssuedAt  time.Time
	ExpiresAt time.Time

	// Details carries protocol specific data the route needs again in Initiate.
	Details any
}

type Fee struct {
	Token  network.Token
	Amount *big.Int
}

func (f *Fee) IsZero() bool {
	return f == nil || f.Amount == nil || f.Amount.Sign() == 0
}

// ETAMillis returns the estimated time to completion in milliseconds.
func (q Quote) ETAMillis() int64 {
	return q.ETA.Milliseconds()
}

// Expired reports whether the quote can no longer be used for a transfer at now.
// A quote without an expiry never expires on its own.
func (q Quote) Expired(now time.Time) bool {
	if q.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(q.ExpiresAt)
}

// ErrorMessage returns the failure description of an unsuccessful quote.
func (q Quote) ErrorMessage() string {
	if q.Err == nil {
		return ""
	}
	return q.Err.Error()
}

func failedQuote(kind RouteKind, err error) Quote {
	return Quote{
		Route:   kind,
		Success: false,
		Err:     err,
	}
}
