package session

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mhartmann/tellersim/internal/types"
	"github.com/rs/zerolog"
)

// Broadcaster is the subset of the websocket hub used by the manager.
type Broadcaster interface {
	Broadcast(message []byte)
}

// Manager owns all active session ledgers and pushes a fresh snapshot to
// dashboard clients after every successful append.
type Manager struct {
	sessions map[string]*Ledger
	hub      Broadcaster
	mu       sync.RWMutex
	logger   zerolog.Logger
}

// NewManager creates a session manager. The hub may be nil (no
// broadcasting), which tests rely on.
func NewManager(hub Broadcaster, logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Ledger),
		hub:      hub,
		logger:   logger.With().Str("component", "session").Logger(),
	}
}

// Create starts a new empty session and returns its ledger.
func (m *Manager) Create(label string) *Ledger {
	ledger := NewLedger(uuid.New().String(), label)

	m.mu.Lock()
	m.sessions[ledger.ID()] = ledger
	m.mu.Unlock()

	m.logger.Info().
		Str("session_id", ledger.ID()).
		Str("label", label).
		Msg("session created")

	return ledger
}

// Get returns the ledger for a session ID, or nil if unknown.
func (m *Manager) Get(id string) *Ledger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// List returns summaries for all sessions, newest first.
func (m *Manager) List() []types.SessionInfo {
	m.mu.RLock()
	infos := make([]types.SessionInfo, 0, len(m.sessions))
	for _, ledger := range m.sessions {
		infos = append(infos, ledger.Info())
	}
	m.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].CreatedAt.After(infos[j].CreatedAt) })
	return infos
}

// Delete removes a session entirely. Returns false if it did not exist.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	m.logger.Info().Str("session_id", id).Msg("session deleted")
	return true
}

// SessionCount returns the number of active sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// TotalRecords returns the record count summed over all sessions.
func (m *Manager) TotalRecords() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, ledger := range m.sessions {
		total += ledger.RecordCount()
	}
	return total
}

// BroadcastSnapshot pushes a session's current snapshot to all connected
// dashboard clients.
func (m *Manager) BroadcastSnapshot(ledger *Ledger) {
	if m.hub == nil {
		return
	}

	snapshot := ledger.Snapshot()
	data, err := json.Marshal(snapshot)
	if err != nil {
		m.logger.Error().Err(err).Str("session_id", ledger.ID()).Msg("failed to marshal snapshot")
		return
	}

	m.hub.Broadcast(data)
	m.logger.Debug().
		Str("session_id", ledger.ID()).
		Int("rows", len(snapshot.Rows)).
		Msg("snapshot broadcast")
}
