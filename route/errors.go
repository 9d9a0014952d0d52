package route

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	KindConfiguration ErrorKind = iota + 1
	KindNoDestinationToken
	KindNoRoutesFound
	KindInvalidAddress
	KindValidationFailed
	KindQuoteFailed
	KindTransferFailed
	KindNetwork
)

var (
	// ErrConfiguration is returned when protocol initialization or a chain/token lookup fails.
	ErrConfiguration = errors.New("configuration error")
	// ErrNoDestinationToken is returned when the source token cannot reach the destination chain at all.
	ErrNoDestinationToken = errors.New("no destination token")
	// ErrNoRoutesFound is returned when no registered route kind supports the request.
	ErrNoRoutesFound = errors.New("no routes found")
	// ErrInvalidAddress is returned when a sender or receiver address cannot be parsed.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrValidationFailed is returned when a route rejects the proposed amount or options.
	ErrValidationFailed = errors.New("validation failed")
	// ErrQuoteFailed is returned when a route could not be priced.
	ErrQuoteFailed = errors.New("quote failed")
	// ErrTransferFailed is returned when a submission step failed or the wallet rejected a transaction.
	ErrTransferFailed = errors.New("transfer failed")
	// ErrNetwork marks failures of the protocol service itself. These are safe to retry.
	ErrNetwork = errors.New("network error")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindConfiguration:
		return ErrConfiguration
	case KindNoDestinationToken:
		return ErrNoDestinationToken
	case KindNoRoutesFound:
		return ErrNoRoutesFound
	case KindInvalidAddress:
		return ErrInvalidAddress
	case KindValidationFailed:
		return ErrValidationFailed
	case KindQuoteFailed:
		return ErrQuoteFailed
	case KindTransferFailed:
		return ErrTransferFailed
	case KindNetwork:
		return ErrNetwork
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if sentinel := k.sentinel(); sentinel != nil {
		return sentinel.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the typed failure surfaced at every component boundary.
type Error struct {
	Kind ErrorKind
	// Op is the public operation that failed, e.g. "resolve", "quote" or "initiate".
	Op string
	// Route is set when the failure is specific to one route.
	Route RouteKind
	// Step names the transfer step that failed.
	Step string
	// Submitted lists transactions that reached the chain before the failure.
	Submitted []string
	Err       error
}

var _ error = &Error{}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.Route.IsValid() {
		sb.WriteString(" [")
		sb.WriteString(e.Route.String())
		sb.WriteString("]")
	}
	if e.Step != "" {
		sb.WriteString(" at step ")
		sb.WriteString(e.Step)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Kind.String())
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	if len(e.Submitted) > 0 {
		sb.WriteString(fmt.Sprintf(" (submitted: %s)", strings.Join(e.Submitted, ", ")))
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) withRoute(kind RouteKind) *Error {
	e.Route = kind
	return e
}

func (e *Error) withStep(step string) *Error {
	e.Step = step
	return e
}

// IsRetryable reports whether err is a transient network or timeout failure that the caller may retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNetwork) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}

// IsNotSupported reports whether err means the requested transfer has no path at all.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNoDestinationToken) || errors.Is(err, ErrNoRoutesFound)
}
