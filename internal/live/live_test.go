package live_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"atelie-backend/internal/live"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DeliversInitialAndOnChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	list := func(ctx context.Context) ([]int, error) {
		n := calls.Add(1)
		return []int{int(n)}, nil
	}

	delivered := make(chan []int, 10)
	changes := make(chan struct{}, 1)

	done := make(chan struct{})
	go func() {
		live.Run(ctx, changes, list, func(items []int) { delivered <- items }, nil)
		close(done)
	}()

	assert.Equal(t, []int{1}, <-delivered)

	live.Notify(changes)
	assert.Equal(t, []int{2}, <-delivered)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRun_ReportsErrorsAndKeepsGoing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	list := func(ctx context.Context) ([]string, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("network down")
		}
		return []string{"ok"}, nil
	}

	var mu sync.Mutex
	var reported []error
	delivered := make(chan []string, 1)
	changes := make(chan struct{}, 1)

	go live.Run(ctx, changes, list, func(items []string) { delivered <- items }, func(err error) {
		mu.Lock()
		reported = append(reported, err)
		mu.Unlock()
	})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(reported) == 1
	}, time.Second, 5*time.Millisecond)

	live.Notify(changes)
	assert.Equal(t, []string{"ok"}, <-delivered)
}

func TestRun_StopsWhenChangesClosed(t *testing.T) {
	changes := make(chan struct{})
	close(changes)

	done := make(chan struct{})
	go func() {
		live.Run(context.Background(), changes, func(ctx context.Context) ([]int, error) { return nil, nil }, func([]int) {}, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after changes closed")
	}
}

func TestTicker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticks := live.Ticker(ctx, 5*time.Millisecond)

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("no tick")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ticks:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestNotify_DoesNotBlock(t *testing.T) {
	ch := make(chan struct{}, 1)
	live.Notify(ch)
	live.Notify(ch)
	assert.Len(t, ch, 1)
}

func TestMerge_ForwardsAndClosesWithSources(t *testing.T) {
	a := make(chan struct{})
	trigger := live.NewTrigger()
	merged := live.Merge(context.Background(), a, trigger)

	trigger.Fire()
	select {
	case <-merged:
	case <-time.After(time.Second):
		t.Fatal("trigger signal not forwarded")
	}

	close(a)
	close(trigger)
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-merged:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
