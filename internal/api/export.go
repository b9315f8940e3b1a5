package api

import (
	"fmt"
	"net/http"

	"github.com/mhartmann/tellersim/internal/export"
	"github.com/mhartmann/tellersim/internal/metrics"
)

// ExportCSV handles GET /api/sessions/{sessionID}/export.csv and
// serializes the current simulation table as a spreadsheet download.
func (h *SessionHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ledger := h.lookup(w, r)
	if ledger == nil {
		return
	}

	snap := h.snapshot(ledger)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="tellersim-%s.csv"`, ledger.ID()))

	if err := export.WriteCSV(w, snap.Rows); err != nil {
		h.logger.Error().Err(err).Str("session_id", ledger.ID()).Msg("csv export failed")
		return
	}

	metrics.Get().RecordExport()
	h.logger.Info().
		Str("session_id", ledger.ID()).
		Int("rows", len(snap.Rows)).
		Msg("simulation table exported")
}
