// Package metrics is a small in-process registry of counters and gauges. Lazy sort sessions
// publish their work counters into it.
package metrics

import (
	"sort"
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

// Metric represents a single metric
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue represents the value of a metric
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics
type Registry struct {
	metrics map[string]Metric
	values  map[string][]MetricValue
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string][]MetricValue),
	}
}

// Register declares a metric. Registering an existing name replaces its definition and keeps
// its values.
func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}

// RecordCounter appends an increment to a registered counter. Unknown names and names of
// other types are ignored.
func (r *Registry) RecordCounter(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Counter {
		r.values[name] = append(r.values[name], MetricValue{
			Value:     value,
			Timestamp: time.Now(),
			Labels:    labels,
		})
	}
}

// RecordGauge replaces the value of a registered gauge.
func (r *Registry) RecordGauge(name string, value float64, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Gauge {
		r.values[name] = []MetricValue{{
			Value:     value,
			Timestamp: time.Now(),
			Labels:    labels,
		}}
	}
}

// Total returns the sum of all values recorded for name.
func (r *Registry) Total(name string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, v := range r.values[name] {
		total += v.Value
	}
	return total
}

// Names returns the registered metric names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the definition of a registered metric.
func (r *Registry) Describe(name string) (Metric, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.metrics[name]
	return m, ok
}

func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue)
	for name, values := range r.values {
		result[name] = append([]MetricValue{}, values...)
	}
	return result
}
