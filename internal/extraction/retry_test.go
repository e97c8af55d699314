package extraction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryWithBackoff(t *testing.T) {
	callCount := 0
	err := retryWithBackoff(context.Background(), []time.Duration{time.Millisecond, time.Millisecond}, func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestRetryWithBackoff_Exhausted(t *testing.T) {
	callCount := 0
	err := retryWithBackoff(context.Background(), []time.Duration{time.Millisecond}, func() error {
		callCount++
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed after 2 attempts")
	assert.Equal(t, 2, callCount)
}

func TestRetryWithBackoff_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	callCount := 0
	err := retryWithBackoff(ctx, []time.Duration{time.Hour}, func() error {
		callCount++
		cancel()
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "retry aborted")
	assert.Equal(t, 1, callCount)
}

func TestBackoffSchedule(t *testing.T) {
	assert.Empty(t, backoffSchedule(0))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, backoffSchedule(3))
}
