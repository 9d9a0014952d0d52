package utils

import (
	"context"
	"fmt"
	"time"
)

// WaitForCondition periodically executes the given function fn based on the provided pollingInterval.
// The function fn should return true of the desired condition is met. If the function never returns true within the timeoutAfter
// period, the parent context is cancelled, or fn returns an error, the condition will not have been met.
func WaitForCondition(parent context.Context, timeoutAfter, pollingInterval time.Duration, fn func() (bool, error)) error {
	ctx, cancel := context.WithTimeout(parent, timeoutAfter)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			if parent.Err() != nil {
				return fmt.Errorf("stopped waiting for condition: %w", parent.Err())
			}
			return fmt.Errorf("failed waiting for condition after %f seconds", timeoutAfter.Seconds())
		case <-time.After(pollingInterval):
			reachedCondition, err := fn()
			if err != nil {
				return fmt.Errorf("error occurred while waiting for condition: %w", err)
			}

			if reachedCondition {
				return nil
			}
		}
	}
}
