package lazysort

import (
	"fmt"
	"math/bits"

	"github.com/scale-rs/lazysort-linear-mem/monitoring"
	"github.com/scale-rs/lazysort-linear-mem/workstack"
)

// CapacityMode selects how the work stack is sized from the buffer length.
type CapacityMode int

const (
	// CapacityLog sizes the stack to 2*bits.Len(n)+2. When a partition step cannot keep both
	// sub-ranges pending, the far one is heap-sorted in place at once. That sorts positions no
	// pull has asked for yet, so laziness is not guaranteed once Stats.Fallbacks is nonzero.
	// Use CapacityLinear when every step must stay lazy.
	CapacityLog CapacityMode = iota
	// CapacityLinear sizes the stack to n/2, the most disjoint ranges of two or more elements
	// a buffer of n elements can hold. No step ever needs the heap-sort fallback.
	CapacityLinear
	// CapacityGrowable starts at the CapacityLog size and grows the stack when it is full.
	// Pulls may allocate in this mode.
	CapacityGrowable
)

func (m CapacityMode) String() string {
	switch m {
	case CapacityLog:
		return "log"
	case CapacityLinear:
		return "linear"
	case CapacityGrowable:
		return "growable"
	default:
		return "unknown"
	}
}

// PivotRule selects the pivot of each partition step.
type PivotRule int

const (
	// PivotMedianOfThree takes the median of the first, middle and last elements.
	PivotMedianOfThree PivotRule = iota
	// PivotNinther takes Tukey's ninther on ranges of nintherThreshold or more elements and
	// the median of three below that.
	PivotNinther
	// PivotLast takes the last element.
	PivotLast
	// PivotRandom takes a uniformly random element. The generator is seeded with WithSeed so
	// runs are reproducible.
	PivotRandom
)

func (p PivotRule) String() string {
	switch p {
	case PivotMedianOfThree:
		return "median3"
	case PivotNinther:
		return "ninther"
	case PivotLast:
		return "last"
	case PivotRandom:
		return "random"
	default:
		return "unknown"
	}
}

// options defines all configuration options for a session.
type options struct {
	capacity int // Explicit stack capacity; 0 derives it from mode
	mode     CapacityMode
	pivot    PivotRule
	seed     uint64 // Seed for PivotRandom
	logger   monitoring.Logger
}

// Option is a function that configures the session options.
type Option func(*options)

// WithCapacity sets an explicit work stack capacity instead of deriving one from the buffer
// length. It must be at least 2.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithCapacityMode sets how the work stack is sized.
func WithCapacityMode(mode CapacityMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithPivot sets the pivot rule.
func WithPivot(pivot PivotRule) Option {
	return func(o *options) {
		o.pivot = pivot
	}
}

// WithSeed seeds the generator used by PivotRandom.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger sets the logger for session lifecycle events.
func WithLogger(logger monitoring.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: 0,
		mode:     CapacityLog,
		pivot:    PivotMedianOfThree,
		seed:     1,
		logger:   monitoring.Nop(),
	}
}

func (o *options) validate() error {
	if o.capacity != 0 && o.capacity < workstack.MinCapacity {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, o.capacity)
	}
	if o.mode < CapacityLog || o.mode > CapacityGrowable {
		return fmt.Errorf("%w: %d", ErrInvalidMode, o.mode)
	}
	if o.pivot < PivotMedianOfThree || o.pivot > PivotRandom {
		return fmt.Errorf("%w: %d", ErrInvalidPivot, o.pivot)
	}
	if o.logger == nil {
		o.logger = monitoring.Nop()
	}
	return nil
}

// stackCapacity returns the work stack capacity for a buffer of n elements.
func (o *options) stackCapacity(n int) int {
	if o.capacity > 0 {
		return o.capacity
	}
	if o.mode == CapacityLinear {
		return linearCapacity(n)
	}
	return 2*bits.Len(uint(n)) + 2
}

func linearCapacity(n int) int {
	return max(workstack.MinCapacity, n/2)
}
