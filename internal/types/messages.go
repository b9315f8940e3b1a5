package types

import "time"

// OverviewMessage is broadcast periodically to all dashboard clients.
type OverviewMessage struct {
	Type         string    `json:"type"` // always "overview"
	Timestamp    time.Time `json:"timestamp"`
	ServerTime   int64     `json:"serverTime"`
	SessionCount int       `json:"sessionCount"`
	RecordCount  int       `json:"recordCount"`
	ClientCount  int       `json:"clientCount"`
}

// AppendRequest is the input-capture payload for a new customer record.
// Duration and gap arrive as strings because the form layer submits raw
// field values; validation happens in the API handler, never the engine.
type AppendRequest struct {
	CustomerName   string `json:"customerName"`
	TellerID       string `json:"tellerId"`
	ServiceMinutes string `json:"serviceMinutes"`
	ArrivalGapSecs string `json:"arrivalGapSecs"`
}

// AppendResponse acknowledges a successful append.
type AppendResponse struct {
	Record      ServiceRecord `json:"record"`
	RecordCount int           `json:"recordCount"`
}
