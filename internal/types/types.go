package types

import "time"

// TellerID identifies a counter position. The valid set is fixed per
// deployment and comes from the teller roster (see internal/config).
type TellerID string

const (
	TellerCounter1 TellerID = "counter_1"
	TellerCounter2 TellerID = "counter_2"
)

// Teller describes one roster entry.
type Teller struct {
	ID   TellerID `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`
}

// DefaultRoster is used when no roster file is configured.
var DefaultRoster = []Teller{
	{ID: TellerCounter1, Name: "Counter 1"},
	{ID: TellerCounter2, Name: "Counter 2"},
}

// ServiceRecord is one customer's raw input. Records are immutable once
// appended to a session; IDs are 1-based in insertion order.
type ServiceRecord struct {
	ID             int       `json:"id"`
	CustomerName   string    `json:"customerName"`
	TellerID       TellerID  `json:"tellerId"`
	ServiceMinutes float64   `json:"serviceMinutes"` // positive, minutes
	ArrivalGapSecs float64   `json:"arrivalGapSecs"` // non-negative, seconds since previous arrival
	ArrivalInstant time.Time `json:"arrivalInstant"` // fixed at append time, never recomputed
}

// SimulationRow is a ServiceRecord augmented with the derived timeline
// fields. Minute values are minutes since midnight; the HH:MM strings
// are rendered with seconds truncated, not rounded.
type SimulationRow struct {
	ServiceRecord

	ArrivalMinutes float64 `json:"arrivalMinutes"`
	StartMinutes   float64 `json:"startMinutes"`
	EndMinutes     float64 `json:"endMinutes"`
	WaitingMinutes float64 `json:"waitingMinutes"`
	ServiceTime    float64 `json:"serviceTime"`

	ArrivalClock string `json:"arrivalClock"`
	StartClock   string `json:"startClock"`
	EndClock     string `json:"endClock"`
}

// PerformanceMetrics are the aggregate scalars over a simulation table.
// All divisions are zero-guarded; an empty table yields all zeros.
type PerformanceMetrics struct {
	CustomerCount           int     `json:"customerCount"`
	TotalWaitingMinutes     float64 `json:"totalWaitingMinutes"`
	TotalServiceMinutes     float64 `json:"totalServiceMinutes"`
	AverageWaitingMinutes   float64 `json:"averageWaitingMinutes"`
	AverageServiceMinutes   float64 `json:"averageServiceMinutes"`
	AverageInterarrivalSecs float64 `json:"averageInterarrivalSecs"`
	TotalTimeSpentMinutes   float64 `json:"totalTimeSpentMinutes"`

	// TellerUtilization is customer-time weighted: service time over
	// service plus waiting time. It is not a wall-clock busy/idle ratio.
	TellerUtilization float64 `json:"tellerUtilization"`
}

// TellerStats is the running per-teller service-duration average kept by
// the session layer during input capture. It is a display convenience,
// not an engine input.
type TellerStats struct {
	TellerID              TellerID `json:"tellerId"`
	Customers             int      `json:"customers"`
	AverageServiceMinutes float64  `json:"averageServiceMinutes"`
}

// SessionInfo summarizes a session for listings.
type SessionInfo struct {
	SessionID   string    `json:"sessionId"`
	Label       string    `json:"label,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	RecordCount int       `json:"recordCount"`
}

// SessionSnapshot is the full derived view of one session: the raw
// records, the recomputed simulation table, the aggregate metrics and
// the per-teller stats. It is rebuilt from scratch on every read.
type SessionSnapshot struct {
	Type        string             `json:"type"` // always "snapshot"
	SessionID   string             `json:"sessionId"`
	Label       string             `json:"label,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
	Rows        []SimulationRow    `json:"rows"`
	Metrics     PerformanceMetrics `json:"metrics"`
	TellerStats []TellerStats      `json:"tellerStats"`
}
