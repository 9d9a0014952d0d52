package network

import (
	"fmt"
)

// SubmissionError reports a transaction sequence that stopped part way through.
// Completed holds the ids of the transactions that were broadcast before the failure.
type SubmissionError struct {
	Index       int
	Total       int
	Completed   []string
	Description string
	Err         error
}

var _ error = &SubmissionError{}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("transaction %d of %d (%s) failed, %d of %d completed: %v", e.Index+1, e.Total, e.Description, len(e.Completed), e.Total, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
