package supabase

import (
	"context"
	"fmt"
	"time"

	"atelie-backend/internal/live"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// ChannelFor is the NOTIFY channel the table trigger publishes on.
func ChannelFor(table string) string {
	return table + "_changes"
}

// RealtimeClient turns Postgres NOTIFY events into change signals.
type RealtimeClient struct {
	databaseURL string
	logger      *zap.Logger
}

func NewRealtimeClient(databaseURL string, logger *zap.Logger) *RealtimeClient {
	return &RealtimeClient{
		databaseURL: databaseURL,
		logger:      logger.Named("realtime"),
	}
}

// Changes signals on every notification for the table and after every
// reconnect, since notifications sent while disconnected are lost. The
// channel closes when ctx is done.
func (r *RealtimeClient) Changes(ctx context.Context, table string) (<-chan struct{}, error) {
	channel := ChannelFor(table)
	logger := r.logger.With(zap.String("channel", channel))

	listener := pq.NewListener(r.databaseURL, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
			logger.Warn("listener connection problem", zap.Error(err))
		case pq.ListenerEventReconnected:
			logger.Info("listener reconnected")
		}
	})
	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", channel, err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer listener.Close()

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case n := <-listener.Notify:
				if n != nil {
					logger.Debug("change notification", zap.String("payload", n.Extra))
				}
				live.Notify(out)
			case <-ticker.C:
				if err := listener.Ping(); err != nil {
					logger.Warn("listener ping failed", zap.Error(err))
				}
			}
		}
	}()

	logger.Info("listening for changes")
	return out, nil
}
