package lazysort

import "github.com/scale-rs/lazysort-linear-mem/metrics"

// Stats counts the work a session has done. Counting is part of every comparison and swap
// and does not allocate.
type Stats struct {
	Partitions  int // Partition steps run
	Comparisons int // Calls to the less function
	Swaps       int // Element swaps in the buffer
	Fallbacks   int // Ranges heap-sorted because the work stack was full
	PeakDepth   int // Highest work stack occupancy
	Capacity    int // Work stack capacity
}

// Metric names published by Stats.Publish.
const (
	MetricPartitions  = "lazysort_partitions_total"
	MetricComparisons = "lazysort_comparisons_total"
	MetricSwaps       = "lazysort_swaps_total"
	MetricFallbacks   = "lazysort_fallbacks_total"
	MetricPeakDepth   = "lazysort_stack_peak_depth"
	MetricCapacity    = "lazysort_stack_capacity"
)

// Publish records the counters into r, registering the metrics on first use.
func (st Stats) Publish(r *metrics.Registry, labels map[string]string) {
	counters := []struct {
		name, desc string
		value      int
	}{
		{MetricPartitions, "Partition steps run by lazy sort sessions", st.Partitions},
		{MetricComparisons, "Comparisons made by lazy sort sessions", st.Comparisons},
		{MetricSwaps, "Element swaps made by lazy sort sessions", st.Swaps},
		{MetricFallbacks, "Ranges heap-sorted because the work stack was full", st.Fallbacks},
	}
	for _, c := range counters {
		if _, ok := r.Describe(c.name); !ok {
			r.Register(metrics.Metric{Name: c.name, Type: metrics.Counter, Description: c.desc})
		}
		r.RecordCounter(c.name, float64(c.value), labels)
	}

	gauges := []struct {
		name, desc string
		value      int
	}{
		{MetricPeakDepth, "Highest work stack occupancy of the last published session", st.PeakDepth},
		{MetricCapacity, "Work stack capacity of the last published session", st.Capacity},
	}
	for _, g := range gauges {
		if _, ok := r.Describe(g.name); !ok {
			r.Register(metrics.Metric{Name: g.name, Type: metrics.Gauge, Description: g.desc})
		}
		r.RecordGauge(g.name, float64(g.value), labels)
	}
}
