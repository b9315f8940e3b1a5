package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mhartmann/tellersim/internal/metrics"
	"github.com/mhartmann/tellersim/internal/types"
)

// AppendRecord handles POST /api/sessions/{sessionID}/records. A
// malformed submission is rejected here with a 400 and never becomes a
// ServiceRecord; the engine can therefore assume well-formed input.
func (h *SessionHandler) AppendRecord(w http.ResponseWriter, r *http.Request) {
	ledger := h.lookup(w, r)
	if ledger == nil {
		return
	}

	m := metrics.Get()

	var req types.AppendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		m.RecordRejection()
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	name, teller, serviceMinutes, gapSecs, err := h.validate(req)
	if err != nil {
		m.RecordRejection()
		h.logger.Debug().Err(err).Str("session_id", ledger.ID()).Msg("record rejected")
		http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
		return
	}

	rec := ledger.AppendRecord(name, teller, serviceMinutes, gapSecs)
	m.RecordAppend()

	h.logger.Info().
		Str("session_id", ledger.ID()).
		Int("record_id", rec.ID).
		Str("customer", rec.CustomerName).
		Str("teller", string(rec.TellerID)).
		Float64("service_min", rec.ServiceMinutes).
		Float64("gap_secs", rec.ArrivalGapSecs).
		Msg("record appended")

	// Every append pushes a freshly recomputed table to the dashboards.
	h.manager.BroadcastSnapshot(ledger)

	writeJSON(w, http.StatusCreated, types.AppendResponse{
		Record:      rec,
		RecordCount: ledger.RecordCount(),
	})
}

// validate enforces the input-capture contract: non-empty customer name,
// positive integer service minutes, non-negative integer gap seconds and
// a teller drawn from the roster.
func (h *SessionHandler) validate(req types.AppendRequest) (string, types.TellerID, float64, float64, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return "", "", 0, 0, fmt.Errorf("customer name must not be empty")
	}

	serviceMinutes, err := strconv.Atoi(strings.TrimSpace(req.ServiceMinutes))
	if err != nil {
		return "", "", 0, 0, fmt.Errorf("service duration must be a whole number of minutes")
	}
	if serviceMinutes <= 0 {
		return "", "", 0, 0, fmt.Errorf("service duration must be positive")
	}

	gapSecs := 0
	if gap := strings.TrimSpace(req.ArrivalGapSecs); gap != "" {
		gapSecs, err = strconv.Atoi(gap)
		if err != nil {
			return "", "", 0, 0, fmt.Errorf("arrival gap must be a whole number of seconds")
		}
		if gapSecs < 0 {
			return "", "", 0, 0, fmt.Errorf("arrival gap must not be negative")
		}
	}

	teller := types.TellerID(req.TellerID)
	if !h.rosterHas(teller) {
		return "", "", 0, 0, fmt.Errorf("unknown teller %q", req.TellerID)
	}

	return name, teller, float64(serviceMinutes), float64(gapSecs), nil
}

func (h *SessionHandler) rosterHas(id types.TellerID) bool {
	for _, teller := range h.roster {
		if teller.ID == id {
			return true
		}
	}
	return false
}
