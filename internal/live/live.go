// Package live turns change notifications into full collection snapshots.
package live

import (
	"context"
	"sync"
	"time"
)

// Lister loads the whole collection in display order.
type Lister[T any] func(ctx context.Context) ([]T, error)

// Run delivers an initial snapshot and then a fresh one after every signal on
// changes. Signals that arrive while a reload is running collapse into one
// reload. Run returns when ctx is done or changes is closed; a failed load is
// reported through onErr and the previous snapshot stays in place.
func Run[T any](ctx context.Context, changes <-chan struct{}, list Lister[T], deliver func([]T), onErr func(error)) {
	load := func() {
		items, err := list(ctx)
		if err != nil {
			if ctx.Err() == nil && onErr != nil {
				onErr(err)
			}
			return
		}
		deliver(items)
	}

	load()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			drain(changes)
			load()
		}
	}
}

func drain(changes <-chan struct{}) {
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// Ticker signals every interval until ctx is done. It backs stores that have
// no push notifications.
func Ticker(ctx context.Context, interval time.Duration) <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				Notify(out)
			}
		}
	}()
	return out
}

// Notify sends a signal without blocking. A pending signal already covers it.
func Notify(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Merge forwards signals from every source into one channel. The result
// closes when ctx is done or when every source has closed.
func Merge(ctx context.Context, sources ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{}, 1)
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src <-chan struct{}) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case _, ok := <-src:
					if !ok {
						return
					}
					Notify(out)
				}
			}
		}(src)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Trigger is a manual change source. Writers fire it so their own change
// shows up without waiting for the next notification or poll.
type Trigger chan struct{}

func NewTrigger() Trigger {
	return make(Trigger, 1)
}

func (t Trigger) Fire() {
	Notify(t)
}
