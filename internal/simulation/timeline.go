package simulation

import (
	"github.com/mhartmann/tellersim/internal/types"
)

// BuildTimeline derives the simulation table for an ordered record list.
// It is a pure function: the same input always yields the same rows, in
// the same order, one per record.
//
// The rows are processed against a single shared completion clock in
// strict insertion order. The teller field is carried through for
// reporting but does not partition the timeline; two tellers never run
// in parallel here (see DESIGN.md for the rationale).
func BuildTimeline(records []types.ServiceRecord) []types.SimulationRow {
	rows := make([]types.SimulationRow, 0, len(records))

	// Minutes since midnight at which the counter is next free.
	currentTime := 0.0

	for _, rec := range records {
		arrival := ArrivalMinutes(rec.ArrivalInstant)

		start := currentTime
		if arrival > start {
			start = arrival
		}
		end := start + rec.ServiceMinutes

		wait := start - arrival
		if wait < 0 {
			wait = 0
		}

		rows = append(rows, types.SimulationRow{
			ServiceRecord:  rec,
			ArrivalMinutes: arrival,
			StartMinutes:   start,
			EndMinutes:     end,
			WaitingMinutes: wait,
			ServiceTime:    rec.ServiceMinutes,
			ArrivalClock:   FormatClock(arrival),
			StartClock:     FormatClock(start),
			EndClock:       FormatClock(end),
		})

		currentTime = end
	}

	return rows
}
