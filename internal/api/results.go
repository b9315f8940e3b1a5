package api

import (
	"net/http"
)

// GetSimulation handles GET /api/sessions/{sessionID}/simulation and
// returns the derived timeline table only.
func (h *SessionHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	ledger := h.lookup(w, r)
	if ledger == nil {
		return
	}

	snap := h.snapshot(ledger)
	writeJSON(w, http.StatusOK, snap.Rows)
}

// GetMetrics handles GET /api/sessions/{sessionID}/metrics and returns
// the aggregate performance metrics only.
func (h *SessionHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ledger := h.lookup(w, r)
	if ledger == nil {
		return
	}

	snap := h.snapshot(ledger)
	writeJSON(w, http.StatusOK, snap.Metrics)
}

// GetTellerStats handles GET /api/sessions/{sessionID}/tellers and
// returns the running per-teller service averages.
func (h *SessionHandler) GetTellerStats(w http.ResponseWriter, r *http.Request) {
	ledger := h.lookup(w, r)
	if ledger == nil {
		return
	}

	writeJSON(w, http.StatusOK, ledger.TellerStats())
}
