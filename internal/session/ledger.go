package session

import (
	"sort"
	"sync"
	"time"

	"github.com/mhartmann/tellersim/internal/simulation"
	"github.com/mhartmann/tellersim/internal/types"
)

// tellerTally accumulates the running per-teller service average during
// input capture.
type tellerTally struct {
	count int
	total float64
}

// Ledger owns one session's append-only record list. Records are never
// edited or removed individually; the derived table and metrics are
// recomputed from the full list on every read.
type Ledger struct {
	id        string
	label     string
	createdAt time.Time

	records []types.ServiceRecord
	tallies map[types.TellerID]*tellerTally

	mu  sync.RWMutex
	now func() time.Time // injectable for tests
}

// NewLedger creates an empty session ledger.
func NewLedger(id, label string) *Ledger {
	return &Ledger{
		id:        id,
		label:     label,
		createdAt: time.Now(),
		records:   make([]types.ServiceRecord, 0),
		tallies:   make(map[types.TellerID]*tellerTally),
		now:       time.Now,
	}
}

// ID returns the session identifier.
func (l *Ledger) ID() string { return l.id }

// AppendRecord creates and appends a new record. The sequence ID and the
// arrival instant are assigned here and fixed for the record's lifetime:
// the first record arrives "now", every later one at the previous
// record's arrival plus the gap. Existing arrivals are never recomputed.
func (l *Ledger) AppendRecord(name string, teller types.TellerID, serviceMinutes, gapSecs float64) types.ServiceRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	arrival := l.now()
	if n := len(l.records); n > 0 {
		arrival = l.records[n-1].ArrivalInstant.Add(time.Duration(gapSecs * float64(time.Second)))
	}

	rec := types.ServiceRecord{
		ID:             len(l.records) + 1,
		CustomerName:   name,
		TellerID:       teller,
		ServiceMinutes: serviceMinutes,
		ArrivalGapSecs: gapSecs,
		ArrivalInstant: arrival,
	}
	l.records = append(l.records, rec)

	tally := l.tallies[teller]
	if tally == nil {
		tally = &tellerTally{}
		l.tallies[teller] = tally
	}
	tally.count++
	tally.total += serviceMinutes

	return rec
}

// Records returns a copy of the record list.
func (l *Ledger) Records() []types.ServiceRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]types.ServiceRecord, len(l.records))
	copy(out, l.records)
	return out
}

// RecordCount returns the number of appended records.
func (l *Ledger) RecordCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Info returns the session listing summary.
func (l *Ledger) Info() types.SessionInfo {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return types.SessionInfo{
		SessionID:   l.id,
		Label:       l.label,
		CreatedAt:   l.createdAt,
		RecordCount: len(l.records),
	}
}

// Snapshot rebuilds the full derived view: simulation rows, aggregate
// metrics and per-teller stats, all from scratch over the current list.
func (l *Ledger) Snapshot() types.SessionSnapshot {
	l.mu.RLock()
	records := make([]types.ServiceRecord, len(l.records))
	copy(records, l.records)
	label := l.label
	stats := l.tellerStatsLocked()
	l.mu.RUnlock()

	rows := simulation.BuildTimeline(records)
	return types.SessionSnapshot{
		Type:        "snapshot",
		SessionID:   l.id,
		Label:       label,
		Timestamp:   time.Now(),
		Rows:        rows,
		Metrics:     simulation.ComputeMetrics(rows),
		TellerStats: stats,
	}
}

// TellerStats returns the running per-teller service averages.
func (l *Ledger) TellerStats() []types.TellerStats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tellerStatsLocked()
}

func (l *Ledger) tellerStatsLocked() []types.TellerStats {
	stats := make([]types.TellerStats, 0, len(l.tallies))
	for id, tally := range l.tallies {
		stats = append(stats, types.TellerStats{
			TellerID:              id,
			Customers:             tally.count,
			AverageServiceMinutes: tally.total / float64(tally.count),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].TellerID < stats[j].TellerID })
	return stats
}

// Reset clears all records and tallies, returning the number of records
// discarded.
func (l *Ledger) Reset() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := len(l.records)
	l.records = l.records[:0]
	l.tallies = make(map[types.TellerID]*tellerTally)
	return count
}
