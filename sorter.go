package lazysort

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/scale-rs/lazysort-linear-mem/monitoring"
	"github.com/scale-rs/lazysort-linear-mem/workstack"
)

// seedMix decorrelates the two PCG seed words derived from one user seed.
const seedMix = 0x9e3779b97f4a7c15

// Sorter is a lazy sort session over a caller-owned buffer. It resolves sorted positions
// only when they are pulled, from the smallest end with Next or the largest end with
// NextBack.
//
// The buffer is reordered in place and must not be touched by anything else while the
// session is in use. Whenever a session is abandoned the buffer still holds a permutation
// of its original elements. A Sorter is not safe for concurrent use.
type Sorter[E any] struct {
	buf   []E
	less  func(a, b E) bool
	stack *workstack.Stack
	opts  options
	pcg   *rand.PCG // Reseeded by bind so every session replays the same pivots.
	rng   *rand.Rand
	log   monitoring.Logger
	check checker[E]
	stats Stats

	// [head, tail) are the positions not yet emitted.
	head int
	tail int

	closed bool
}

// New creates a session over buf ordered by less, which must be a strict weak order. The
// work stack is allocated here and the whole buffer becomes the first pending range.
func New[E any](buf []E, less func(a, b E) bool, opts ...Option) (*Sorter[E], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	// Apply default options
	o := defaultOptions()

	// Apply user options
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	var (
		stack *workstack.Stack
		err   error
	)
	capacity := o.stackCapacity(len(buf))
	if o.mode == CapacityGrowable {
		stack, err = workstack.NewGrowable(capacity)
	} else {
		stack, err = workstack.New(capacity)
	}
	if err != nil {
		return nil, fmt.Errorf("lazysort: creating work stack: %w", err)
	}

	s := &Sorter[E]{
		less:  less,
		stack: stack,
		opts:  o,
		log:   o.logger,
	}
	if o.pivot == PivotRandom {
		s.pcg = rand.NewPCG(o.seed, o.seed^seedMix)
		s.rng = rand.New(s.pcg)
	}
	s.bind(buf)

	if s.log.Enabled(monitoring.DEBUG) {
		s.log.Log(monitoring.DEBUG, "session_opened", "lazy sort session opened", map[string]any{
			"length":   len(buf),
			"capacity": stack.Cap(),
			"mode":     o.mode.String(),
			"pivot":    o.pivot.String(),
		})
	}

	return s, nil
}

func (s *Sorter[E]) bind(buf []E) {
	s.buf = buf
	s.head = 0
	s.tail = len(buf)
	s.closed = false
	s.stats = Stats{}
	if s.pcg != nil {
		s.pcg.Seed(s.opts.seed, s.opts.seed^seedMix)
	}
	s.stack.Reset()
	if len(buf) > 1 {
		s.stack.PushBack(workstack.Range{Lo: 0, Hi: len(buf)})
	}
	s.check = newChecker(buf, s.less)
}

// Reset starts a new session over buf, reusing the work stack without allocating. In
// CapacityLinear mode without an explicit capacity it fails with ErrCapacityTooSmall if the
// stack cannot hold the worst case for len(buf).
func (s *Sorter[E]) Reset(buf []E) error {
	if s.opts.mode == CapacityLinear && s.opts.capacity == 0 && s.stack.Cap() < linearCapacity(len(buf)) {
		return fmt.Errorf("%w: need %d, have %d", ErrCapacityTooSmall, linearCapacity(len(buf)), s.stack.Cap())
	}
	s.bind(buf)
	return nil
}

// Next returns the smallest element not yet emitted. It returns false once every element
// has been emitted or the session was closed.
func (s *Sorter[E]) Next() (E, bool) {
	i, ok := s.resolveFront()
	if !ok {
		var zero E
		return zero, false
	}
	s.head++
	s.check.emitFront(s.buf[i])
	return s.buf[i], true
}

// NextPtr is like Next but returns a pointer to the element's final slot in the buffer, or
// nil when exhausted.
func (s *Sorter[E]) NextPtr() *E {
	i, ok := s.resolveFront()
	if !ok {
		return nil
	}
	s.head++
	s.check.emitFront(s.buf[i])
	return &s.buf[i]
}

// Peek returns the element the next call to Next would return, without emitting it.
func (s *Sorter[E]) Peek() (E, bool) {
	i, ok := s.resolveFront()
	if !ok {
		var zero E
		return zero, false
	}
	return s.buf[i], true
}

// NextBack returns the largest element not yet emitted.
func (s *Sorter[E]) NextBack() (E, bool) {
	i, ok := s.resolveBack()
	if !ok {
		var zero E
		return zero, false
	}
	s.tail--
	s.check.emitBack(s.buf[i])
	return s.buf[i], true
}

// NextBackPtr is like NextBack but returns a pointer into the buffer.
func (s *Sorter[E]) NextBackPtr() *E {
	i, ok := s.resolveBack()
	if !ok {
		return nil
	}
	s.tail--
	s.check.emitBack(s.buf[i])
	return &s.buf[i]
}

// PeekBack returns the element the next call to NextBack would return.
func (s *Sorter[E]) PeekBack() (E, bool) {
	i, ok := s.resolveBack()
	if !ok {
		var zero E
		return zero, false
	}
	return s.buf[i], true
}

// All yields the remaining elements in ascending order, emitting them as it goes.
func (s *Sorter[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward yields the remaining elements in descending order, emitting them as it goes.
func (s *Sorter[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := s.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of elements not yet emitted.
func (s *Sorter[E]) Len() int {
	if s.closed {
		return 0
	}
	return s.tail - s.head
}

// Resolved returns the number of elements emitted from either end.
func (s *Sorter[E]) Resolved() int {
	return s.head + len(s.buf) - s.tail
}

// Stats returns the work done since the session was created or last reset.
func (s *Sorter[E]) Stats() Stats {
	st := s.stats
	st.PeakDepth = max(st.PeakDepth, s.stack.Peak())
	st.Capacity = s.stack.Cap()
	return st
}

// Close abandons the session. Pending ranges are discarded without further partitioning,
// so the unemitted part of the buffer is left in an unspecified order. Every later pull
// reports exhaustion.
func (s *Sorter[E]) Close() {
	if s.closed {
		return
	}
	s.stats = s.Stats()
	pending := s.stack.Len()
	s.stack.Reset()
	s.closed = true

	if s.log.Enabled(monitoring.INFO) {
		s.log.Log(monitoring.INFO, "session_closed", "lazy sort session closed", map[string]any{
			"length":        len(s.buf),
			"resolved":      s.Resolved(),
			"pending":       pending,
			"partitions":    s.stats.Partitions,
			"comparisons":   s.stats.Comparisons,
			"swaps":         s.stats.Swaps,
			"fallbacks":     s.stats.Fallbacks,
			"peak_depth":    s.stats.PeakDepth,
			"capacity":      s.stats.Capacity,
			"capacity_mode": s.opts.mode.String(),
		})
	}
}

// resolveFront partitions pending ranges until position head is final and returns it.
func (s *Sorter[E]) resolveFront() (int, bool) {
	if s.closed || s.head >= s.tail {
		return 0, false
	}
	for {
		r, ok := s.stack.Front()
		if !ok || r.Lo > s.head {
			return s.head, true
		}
		s.stack.PopFront()

		lt, gt := s.partition(r)
		near := workstack.Range{Lo: r.Lo, Hi: lt}
		far := workstack.Range{Lo: gt, Hi: r.Hi}

		if s.keepFar(near, far) {
			s.stack.PushFront(far)
		}
		if near.Len() > 1 {
			s.stack.PushFront(near)
		}
		s.check.stepped(s.stack, s.head, s.tail)
	}
}

// resolveBack partitions pending ranges until position tail-1 is final and returns it.
func (s *Sorter[E]) resolveBack() (int, bool) {
	if s.closed || s.head >= s.tail {
		return 0, false
	}
	for {
		r, ok := s.stack.Back()
		if !ok || r.Hi < s.tail {
			return s.tail - 1, true
		}
		s.stack.PopBack()

		lt, gt := s.partition(r)
		near := workstack.Range{Lo: gt, Hi: r.Hi}
		far := workstack.Range{Lo: r.Lo, Hi: lt}

		if s.keepFar(near, far) {
			s.stack.PushBack(far)
		}
		if near.Len() > 1 {
			s.stack.PushBack(near)
		}
		s.check.stepped(s.stack, s.head, s.tail)
	}
}

// keepFar reports whether the far side of a partition step should stay pending. near is the
// side holding the position being resolved. When the stack cannot hold both sides the far
// side is sorted in place instead.
func (s *Sorter[E]) keepFar(near, far workstack.Range) bool {
	if far.Len() < 2 {
		return false
	}
	if near.Len() > 1 && s.stack.Free() < 2 && !s.stack.Growable() {
		s.stats.Fallbacks++
		s.heapSort(far)
		return false
	}
	return true
}
