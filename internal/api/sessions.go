package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mhartmann/tellersim/internal/metrics"
	"github.com/mhartmann/tellersim/internal/session"
	"github.com/mhartmann/tellersim/internal/types"
	"github.com/rs/zerolog"
)

// SessionHandler serves the session lifecycle and derived-result
// endpoints. Input validation lives here: the simulation engine only
// ever sees well-formed records.
type SessionHandler struct {
	manager *session.Manager
	roster  []types.Teller
	logger  zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(manager *session.Manager, roster []types.Teller, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		manager: manager,
		roster:  roster,
		logger:  logger.With().Str("component", "api").Logger(),
	}
}

// createSessionRequest is the body for POST /api/sessions
type createSessionRequest struct {
	Label string `json:"label"`
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.Body != nil {
		// An empty body is fine; the label is optional.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	ledger := h.manager.Create(req.Label)
	writeJSON(w, http.StatusCreated, ledger.Info())
}

// ListSessions handles GET /api/sessions
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.List())
}

// GetSession handles GET /api/sessions/{sessionID}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	ledger := h.lookup(w, r)
	if ledger == nil {
		return
	}
	writeJSON(w, http.StatusOK, h.snapshot(ledger))
}

// ResetSession handles POST /api/sessions/{sessionID}/reset
func (h *SessionHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	ledger := h.lookup(w, r)
	if ledger == nil {
		return
	}

	cleared := ledger.Reset()
	h.logger.Info().
		Str("session_id", ledger.ID()).
		Int("cleared", cleared).
		Msg("session reset")

	h.manager.BroadcastSnapshot(ledger)
	writeJSON(w, http.StatusOK, map[string]int{"cleared": cleared})
}

// DeleteSession handles DELETE /api/sessions/{sessionID}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if !h.manager.Delete(id) {
		http.Error(w, `{"error":"session not found"}`, http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTellers handles GET /api/tellers; the form layer populates its
// teller selector from this fixed set.
func (h *SessionHandler) ListTellers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.roster)
}

// lookup resolves the session from the URL, writing a 404 on miss.
func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) *session.Ledger {
	id := chi.URLParam(r, "sessionID")
	ledger := h.manager.Get(id)
	if ledger == nil {
		http.Error(w, `{"error":"session not found"}`, http.StatusNotFound)
	}
	return ledger
}

// snapshot rebuilds a session's derived view and records the recompute.
func (h *SessionHandler) snapshot(ledger *session.Ledger) types.SessionSnapshot {
	start := time.Now()
	snap := ledger.Snapshot()
	metrics.Get().RecordRecompute(time.Since(start))
	return snap
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
