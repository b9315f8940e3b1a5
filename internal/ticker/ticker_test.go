package ticker

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mhartmann/tellersim/internal/websocket"
	"github.com/rs/zerolog"
)

// fakeStats provides fixed overview numbers.
type fakeStats struct {
	sessions int
	records  int
}

func (s *fakeStats) SessionCount() int { return s.sessions }
func (s *fakeStats) TotalRecords() int { return s.records }

func TestNewTicker(t *testing.T) {
	logger := zerolog.New(&bytes.Buffer{})
	hub := websocket.NewHub(logger)
	stats := &fakeStats{sessions: 2, records: 7}
	ticker := NewTicker(hub, stats, 1*time.Second, logger)

	if ticker == nil {
		t.Fatal("expected ticker to be created")
	}

	if ticker.hub != hub {
		t.Error("ticker hub not set correctly")
	}

	if ticker.interval != 1*time.Second {
		t.Errorf("expected interval 1s, got %v", ticker.interval)
	}
}

func TestTickerStart(t *testing.T) {
	logger := zerolog.New(&bytes.Buffer{})
	hub := websocket.NewHub(logger)
	go hub.Run()

	ticker := NewTicker(hub, &fakeStats{}, 100*time.Millisecond, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan bool)
	go func() {
		ticker.Start(ctx)
		done <- true
	}()

	<-ctx.Done()

	select {
	case <-done:
		// Ticker stopped as expected
	case <-time.After(1 * time.Second):
		t.Error("ticker did not stop after context cancel")
	}
}

func TestTickerBroadcastsOverview(t *testing.T) {
	logger := zerolog.New(&bytes.Buffer{})
	hub := websocket.NewHub(logger)
	go hub.Run()

	stats := &fakeStats{sessions: 3, records: 12}
	ticker := NewTicker(hub, stats, 50*time.Millisecond, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan bool)
	go func() {
		ticker.Start(ctx)
		done <- true
	}()

	<-done

	// Verify the hub is still operational after ticker ran
	if hub.ClientCount() < 0 {
		t.Error("expected non-negative client count")
	}
}

func TestTickerStopsOnContextCancel(t *testing.T) {
	logger := zerolog.New(&bytes.Buffer{})
	hub := websocket.NewHub(logger)
	go hub.Run()

	ticker := NewTicker(hub, &fakeStats{}, 100*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		ticker.Start(ctx)
		done <- true
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case <-done:
		// Success - ticker stopped
	case <-time.After(1 * time.Second):
		t.Error("ticker did not stop within timeout after context cancel")
	}
}
