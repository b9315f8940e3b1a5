package ticker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mhartmann/tellersim/internal/types"
	"github.com/mhartmann/tellersim/internal/websocket"
	"github.com/rs/zerolog"
)

// Stats is the subset of the session manager the ticker reads.
type Stats interface {
	SessionCount() int
	TotalRecords() int
}

// Ticker periodically broadcasts an overview message to the hub
type Ticker struct {
	hub      *websocket.Hub
	stats    Stats
	interval time.Duration
	logger   zerolog.Logger
}

// NewTicker creates a new Ticker
func NewTicker(hub *websocket.Hub, stats Stats, interval time.Duration, logger zerolog.Logger) *Ticker {
	return &Ticker{
		hub:      hub,
		stats:    stats,
		interval: interval,
		logger:   logger,
	}
}

// Start begins broadcasting overview updates
func (t *Ticker) Start(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Info().Dur("interval", t.interval).Msg("ticker started")

	for {
		select {
		case <-ctx.Done():
			t.logger.Info().Msg("ticker stopped")
			return

		case now := <-ticker.C:
			message := types.OverviewMessage{
				Type:         "overview",
				Timestamp:    now,
				ServerTime:   now.Unix(),
				SessionCount: t.stats.SessionCount(),
				RecordCount:  t.stats.TotalRecords(),
				ClientCount:  t.hub.ClientCount(),
			}

			data, err := json.Marshal(message)
			if err != nil {
				t.logger.Error().Err(err).Msg("failed to marshal overview message")
				continue
			}

			t.hub.Broadcast(data)
			t.logger.Debug().
				Int("sessions", message.SessionCount).
				Int("records", message.RecordCount).
				Int("clients", message.ClientCount).
				Msg("broadcasted overview")
		}
	}
}
