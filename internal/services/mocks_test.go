package services

import (
	"sync"
	"time"
)

// MockMetricsRecorder is an inline mock for MetricsRecorderInterface that
// records calls for assertions
type MockMetricsRecorder struct {
	mu       sync.Mutex
	Counters map[string]int
	Timings  map[string]int
	Gauges   map[string]float64
}

func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{
		Counters: map[string]int{},
		Timings:  map[string]int{},
		Gauges:   map[string]float64{},
	}
}

func (m *MockMetricsRecorder) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Counters[name]++
}

func (m *MockMetricsRecorder) RecordProcessingTime(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Timings[name]++
}

func (m *MockMetricsRecorder) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gauges[name] = value
}
