package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	totalLatency time.Duration
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Requests       map[string]int64 `json:"requests"`
	Errors         map[string]int64 `json:"errors"`
	AvgLatencyMsec float64          `json:"avg_latency_ms"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, strconv.Itoa(status))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.totalLatency += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := pathKey(path, method, code)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Requests: map[string]int64{},
		Errors:   map[string]int64{},
	}
	if m == nil {
		return snap
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for k, v := range m.requestCount {
		snap.Requests[k] = v
		total += v
	}
	for k, v := range m.errorCount {
		snap.Errors[k] = v
	}
	if total > 0 {
		snap.AvgLatencyMsec = float64(m.totalLatency.Milliseconds()) / float64(total)
	}
	return snap
}

func pathKey(path, method, suffix string) string {
	return path + "|" + method + "|" + suffix
}
