package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Metrics holds all application metrics
type Metrics struct {
	mu sync.RWMutex

	// Record intake metrics
	RecordsAppendedTotal int64
	RecordsRejectedTotal int64

	// Recompute metrics
	RecomputesTotal       int64
	lastRecomputeDuration time.Duration

	// Export metrics
	ExportsTotal int64

	// WebSocket metrics
	WebSocketConnectionsTotal    int64
	WebSocketDisconnectionsTotal int64
	WebSocketMessagesTotal       int64
	WebSocketErrorsTotal         int64
	activeConnections            int64

	// HTTP metrics
	httpRequestsTotal map[string]map[int]int64 // endpoint -> status -> count

	// Timing
	startTime time.Time
}

// Global metrics instance
var instance *Metrics
var once sync.Once

// Get returns the singleton metrics instance
func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			httpRequestsTotal: make(map[string]map[int]int64),
			startTime:         time.Now(),
		}
	})
	return instance
}

// RecordAppend increments the appended-records counter
func (m *Metrics) RecordAppend() {
	m.mu.Lock()
	m.RecordsAppendedTotal++
	m.mu.Unlock()
}

// RecordRejection increments the rejected-submission counter
func (m *Metrics) RecordRejection() {
	m.mu.Lock()
	m.RecordsRejectedTotal++
	m.mu.Unlock()
}

// RecordRecompute records one full table recompute
func (m *Metrics) RecordRecompute(duration time.Duration) {
	m.mu.Lock()
	m.RecomputesTotal++
	m.lastRecomputeDuration = duration
	m.mu.Unlock()
}

// RecordExport increments the export counter
func (m *Metrics) RecordExport() {
	m.mu.Lock()
	m.ExportsTotal++
	m.mu.Unlock()
}

// RecordWebSocketConnect increments connection counters
func (m *Metrics) RecordWebSocketConnect() {
	m.mu.Lock()
	m.WebSocketConnectionsTotal++
	m.activeConnections++
	m.mu.Unlock()
}

// RecordWebSocketDisconnect increments disconnection counter
func (m *Metrics) RecordWebSocketDisconnect() {
	m.mu.Lock()
	m.WebSocketDisconnectionsTotal++
	m.activeConnections--
	m.mu.Unlock()
}

// RecordWebSocketMessage increments message counter
func (m *Metrics) RecordWebSocketMessage() {
	m.mu.Lock()
	m.WebSocketMessagesTotal++
	m.mu.Unlock()
}

// RecordWebSocketError increments WebSocket error counter
func (m *Metrics) RecordWebSocketError() {
	m.mu.Lock()
	m.WebSocketErrorsTotal++
	m.mu.Unlock()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(endpoint string, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.httpRequestsTotal[endpoint] == nil {
		m.httpRequestsTotal[endpoint] = make(map[int]int64)
	}
	m.httpRequestsTotal[endpoint][statusCode]++
}

// GetActiveConnections returns current WebSocket connections
func (m *Metrics) GetActiveConnections() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeConnections
}

// Handler returns an HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.RLock()
		defer m.mu.RUnlock()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		// Helper to write metric
		write := func(name string, value interface{}, labels ...string) {
			labelStr := ""
			if len(labels) > 0 {
				labelStr = "{"
				for i := 0; i < len(labels); i += 2 {
					if i > 0 {
						labelStr += ","
					}
					labelStr += labels[i] + "=\"" + labels[i+1] + "\""
				}
				labelStr += "}"
			}

			switch v := value.(type) {
			case int:
				w.Write([]byte(name + labelStr + " " + strconv.Itoa(v) + "\n"))
			case int64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatInt(v, 10) + "\n"))
			case float64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatFloat(v, 'f', 6, 64) + "\n"))
			}
		}

		// System metrics
		write("tellersim_uptime_seconds", time.Since(m.startTime).Seconds())

		// Record intake metrics
		write("tellersim_records_appended_total", m.RecordsAppendedTotal)
		write("tellersim_records_rejected_total", m.RecordsRejectedTotal)

		// Recompute metrics
		write("tellersim_recomputes_total", m.RecomputesTotal)
		write("tellersim_recompute_duration_seconds", m.lastRecomputeDuration.Seconds())

		// Export metrics
		write("tellersim_exports_total", m.ExportsTotal)

		// WebSocket metrics
		write("tellersim_websocket_connections_total", m.WebSocketConnectionsTotal)
		write("tellersim_websocket_disconnections_total", m.WebSocketDisconnectionsTotal)
		write("tellersim_websocket_active_connections", m.activeConnections)
		write("tellersim_websocket_messages_total", m.WebSocketMessagesTotal)
		write("tellersim_websocket_errors_total", m.WebSocketErrorsTotal)

		// HTTP metrics
		for endpoint, statusCodes := range m.httpRequestsTotal {
			for status, count := range statusCodes {
				write("tellersim_http_requests_total", count, "endpoint", endpoint, "status", strconv.Itoa(status))
			}
		}
	}
}
