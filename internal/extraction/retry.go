package extraction

import (
	"context"
	"fmt"
	"time"
)

// backoffSchedule doubles from one second: 1s, 2s, 4s...
func backoffSchedule(retries int) []time.Duration {
	backoffs := make([]time.Duration, 0, retries)
	for i := 0; i < retries; i++ {
		backoffs = append(backoffs, time.Second<<i)
	}
	return backoffs
}

// retryWithBackoff runs fn once plus once per backoff entry, sleeping the
// entry between attempts. It stops early when fn succeeds or ctx ends.
func retryWithBackoff(ctx context.Context, backoffs []time.Duration, fn func() error) error {
	attempts := len(backoffs) + 1

	var lastErr error
	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if i == len(backoffs) {
			break
		}
		timer := time.NewTimer(backoffs[i])
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry aborted: %w", lastErr)
		case <-timer.C:
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
