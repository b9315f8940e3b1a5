package simulation

import (
	"github.com/mhartmann/tellersim/internal/types"
)

// ComputeMetrics aggregates a simulation table into summary scalars.
// It never errors: every division is guarded and an empty table yields
// an all-zero result.
func ComputeMetrics(rows []types.SimulationRow) types.PerformanceMetrics {
	m := types.PerformanceMetrics{CustomerCount: len(rows)}
	if len(rows) == 0 {
		return m
	}

	for _, row := range rows {
		m.TotalWaitingMinutes += row.WaitingMinutes
		m.TotalServiceMinutes += row.ServiceTime
	}

	n := float64(len(rows))
	m.AverageWaitingMinutes = m.TotalWaitingMinutes / n
	m.AverageServiceMinutes = m.TotalServiceMinutes / n
	m.TotalTimeSpentMinutes = m.TotalWaitingMinutes + m.TotalServiceMinutes

	// Interarrival gaps exist only between consecutive arrivals, so a
	// single-row table has none and the average stays zero.
	if len(rows) > 1 {
		var totalGapSecs float64
		for i := 1; i < len(rows); i++ {
			totalGapSecs += rows[i].ArrivalInstant.Sub(rows[i-1].ArrivalInstant).Seconds()
		}
		m.AverageInterarrivalSecs = totalGapSecs / float64(len(rows)-1)
	}

	if m.TotalTimeSpentMinutes > 0 {
		m.TellerUtilization = m.TotalServiceMinutes / m.TotalTimeSpentMinutes
	}

	return m
}
