package route

import (
	"strings"
	"time"
)

// TransferReceipt records a submitted transfer.
type TransferReceipt struct {
	Route            RouteKind
	SourceChain      string
	DestinationChain string
	// TxID is the transaction that defines the transfer.
	TxID string
	// OriginTxs holds every source chain transaction in submission order, approvals first.
	OriginTxs   []string
	Quote       Quote
	TrackingURL string
	SubmittedAt time.Time
}

// BuildTrackingURL appends txID to the tracker base url.
func BuildTrackingURL(base string, txID string) string {
	if base == "" || txID == "" {
		return ""
	}
	if !strings.HasSuffix(base, "/") && !strings.HasSuffix(base, "=") {
		base += "/"
	}
	return base + txID
}
