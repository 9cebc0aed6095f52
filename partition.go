package lazysort

import "github.com/scale-rs/lazysort-linear-mem/workstack"

// nintherThreshold is the smallest range PivotNinther samples nine elements from.
const nintherThreshold = 50

// partition reorders buf[r.Lo:r.Hi) around a pivot into three blocks and returns their
// boundaries:
//   - buf[r.Lo:lt) < pivot
//   - buf[lt:gt) == pivot
//   - buf[gt:r.Hi) > pivot
//
// The pivot is moved to r.Lo before the scan so the middle block is never empty and lt < gt.
// r must hold at least two elements.
func (s *Sorter[E]) partition(r workstack.Range) (lt, gt int) {
	s.stats.Partitions++
	s.swap(r.Lo, s.choosePivot(r))

	// Scratch slot: written here, read only by this loop.
	pivot := s.buf[r.Lo]

	lt, gt = r.Lo, r.Hi
	for i := r.Lo + 1; i < gt; {
		switch {
		case s.cmp(s.buf[i], pivot):
			s.swap(lt, i)
			lt++
			i++
		case s.cmp(pivot, s.buf[i]):
			gt--
			s.swap(i, gt)
		default:
			i++
		}
	}

	s.check.partitioned(s.buf, r, lt, gt)
	return lt, gt
}

// choosePivot returns the index of the pivot for r according to the configured rule.
func (s *Sorter[E]) choosePivot(r workstack.Range) int {
	n := r.Len()
	switch s.opts.pivot {
	case PivotLast:
		return r.Hi - 1
	case PivotRandom:
		return r.Lo + s.rng.IntN(n)
	case PivotNinther:
		if n >= nintherThreshold {
			a, b, c := r.Lo+n/4, r.Lo+n/2, r.Lo+3*n/4
			return s.median(
				s.median(a-1, a, a+1),
				s.median(b-1, b, b+1),
				s.median(c-1, c, c+1),
			)
		}
	}
	if n < 3 {
		return r.Lo
	}
	return s.median(r.Lo, r.Lo+n/2, r.Hi-1)
}

// median returns whichever of the indices a, b, c holds the median value.
func (s *Sorter[E]) median(a, b, c int) int {
	if s.cmp(s.buf[b], s.buf[a]) {
		a, b = b, a
	}
	if s.cmp(s.buf[c], s.buf[b]) {
		if s.cmp(s.buf[c], s.buf[a]) {
			return a
		}
		return c
	}
	return b
}

// heapSort sorts buf[r.Lo:r.Hi) in place. It is the fallback for ranges the work stack has
// no room to keep pending.
func (s *Sorter[E]) heapSort(r workstack.Range) {
	lo, n := r.Lo, r.Len()

	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(lo, i, n)
	}
	for i := n - 1; i > 0; i-- {
		s.swap(lo, lo+i)
		s.siftDown(lo, 0, i)
	}

	s.check.sorted(s.buf, r)
}

func (s *Sorter[E]) siftDown(lo, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := left + 1

		if left < n && s.cmp(s.buf[lo+largest], s.buf[lo+left]) {
			largest = left
		}
		if right < n && s.cmp(s.buf[lo+largest], s.buf[lo+right]) {
			largest = right
		}
		if largest == i {
			return
		}

		s.swap(lo+i, lo+largest)
		i = largest
	}
}

func (s *Sorter[E]) cmp(a, b E) bool {
	s.stats.Comparisons++
	return s.less(a, b)
}

func (s *Sorter[E]) swap(i, j int) {
	if i == j {
		return
	}
	s.stats.Swaps++
	s.buf[i], s.buf[j] = s.buf[j], s.buf[i]
}
