package workstack

import (
	"iter"

	"github.com/pkg/errors"
)

// MinCapacity is the smallest capacity a Stack accepts.
const MinCapacity = 2

var (
	ErrInvalidCapacity  = errors.New("workstack: capacity must be at least 2")
	ErrCapacityExceeded = errors.New("workstack: capacity exceeded")
	ErrEmpty            = errors.New("workstack: pop from empty stack")
)

// Range is the half-open index range [Lo, Hi).
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Contains reports whether i lies within the range.
func (r Range) Contains(i int) bool {
	return r.Lo <= i && i < r.Hi
}

// Stack is a ring buffer of ranges with push and pop at both ends.
type Stack struct {
	ring     []Range
	head     int // ring index of the front element
	n        int
	peak     int
	growable bool
}

// New returns a Stack that never holds more than capacity ranges.
func New(capacity int) (*Stack, error) {
	if capacity < MinCapacity {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return &Stack{ring: make([]Range, capacity)}, nil
}

// NewGrowable returns a Stack that starts with the given capacity and doubles it whenever
// a push would overflow.
func NewGrowable(capacity int) (*Stack, error) {
	s, err := New(capacity)
	if err != nil {
		return nil, err
	}
	s.growable = true
	return s, nil
}

// Len returns the number of pending ranges.
func (s *Stack) Len() int {
	return s.n
}

// Cap returns the current capacity.
func (s *Stack) Cap() int {
	return len(s.ring)
}

// Free returns how many more ranges can be pushed without overflowing.
func (s *Stack) Free() int {
	return len(s.ring) - s.n
}

// Peak returns the highest occupancy seen since creation or the last Reset.
func (s *Stack) Peak() int {
	return s.peak
}

// Growable reports whether the Stack grows instead of panicking on overflow.
func (s *Stack) Growable() bool {
	return s.growable
}

// Reset discards every pending range. The ring is kept.
func (s *Stack) Reset() {
	s.head = 0
	s.n = 0
	s.peak = 0
}

// PushFront adds r before the current front.
func (s *Stack) PushFront(r Range) {
	s.reserve()
	s.head = s.index(-1)
	s.ring[s.head] = r
	s.pushed()
}

// PushBack adds r after the current back.
func (s *Stack) PushBack(r Range) {
	s.reserve()
	s.ring[s.index(s.n)] = r
	s.pushed()
}

// PopFront removes and returns the front range. It panics on an empty Stack.
func (s *Stack) PopFront() Range {
	if s.n == 0 {
		panic(errors.WithStack(ErrEmpty))
	}
	r := s.ring[s.head]
	s.head = s.index(1)
	s.n--
	return r
}

// PopBack removes and returns the back range. It panics on an empty Stack.
func (s *Stack) PopBack() Range {
	if s.n == 0 {
		panic(errors.WithStack(ErrEmpty))
	}
	s.n--
	return s.ring[s.index(s.n)]
}

// Front returns the front range without removing it.
func (s *Stack) Front() (Range, bool) {
	if s.n == 0 {
		return Range{}, false
	}
	return s.ring[s.head], true
}

// Back returns the back range without removing it.
func (s *Stack) Back() (Range, bool) {
	if s.n == 0 {
		return Range{}, false
	}
	return s.ring[s.index(s.n-1)], true
}

// All yields the pending ranges from front to back.
func (s *Stack) All() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.ring[s.index(i)]) {
				return
			}
		}
	}
}

// index maps the logical offset off from the front to a ring index. off may be -1.
func (s *Stack) index(off int) int {
	i := s.head + off
	switch {
	case i < 0:
		i += len(s.ring)
	case i >= len(s.ring):
		i -= len(s.ring)
	}
	return i
}

func (s *Stack) reserve() {
	if s.n < len(s.ring) {
		return
	}
	if !s.growable {
		panic(errors.Wrapf(ErrCapacityExceeded, "push onto full stack of %d", len(s.ring)))
	}
	ring := make([]Range, 2*len(s.ring))
	for i := 0; i < s.n; i++ {
		ring[i] = s.ring[s.index(i)]
	}
	s.ring = ring
	s.head = 0
}

func (s *Stack) pushed() {
	s.n++
	if s.n > s.peak {
		s.peak = s.n
	}
}
