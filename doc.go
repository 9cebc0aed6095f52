// Package lazysort implements a delayed quicksort: a session that yields a buffer's
// elements in sorted order while partitioning only as much of the buffer as the pulls so far
// require.
//
// A session borrows a caller-owned slice and a less function. Nothing is sorted up front.
// Each call to Next partitions the pending range that covers the smallest not-yet-emitted
// position, and keeps doing so until that position is final. Ranges that only cover later
// positions are left untouched until a pull needs them. NextBack does the same from the
// largest end, so a session can be consumed from both ends.
//
// All storage is allocated by New: pending ranges live in a fixed-capacity work stack
// (package workstack) and elements are only ever swapped in place. Pulling elements does not
// allocate, except in CapacityGrowable mode or in builds with the lazysortcheck tag.
//
// Basic usage:
//
//	data := []int{5, 3, 8, 1, 9, 2}
//
//	s, err := lazysort.New(data, func(a, b int) bool { return a < b })
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Take the three smallest values; the rest of data stays unsorted.
//	for i := 0; i < 3; i++ {
//	    v, _ := s.Next()
//	    fmt.Println(v) // 1, 2, 3
//	}
//
//	// Or drain what is left with range-over-func.
//	for v := range s.All() {
//	    fmt.Println(v) // 5, 8, 9
//	}
//
// Partitioning:
// Each step moves the pivot to the start of the range and splits the range three ways
// (less than, equal to, greater than the pivot). The equal block is final immediately, so
// runs of equal elements cost one pass. The pivot rule is deterministic by default
// (PivotMedianOfThree). PivotRandom is seeded with WithSeed.
//
// Work stack capacity:
// CapacityLog (the default) sizes the stack to about 2*log2(n). If a step produces two
// sub-ranges and only one slot is free, the sub-range away from the requested position is
// heap-sorted in place instead of being kept pending, so the bound always holds. That work
// is not lazy: once Stats.Fallbacks is nonzero, positions no pull asked for may have been
// sorted. CapacityLinear sizes the stack for the
// worst case and never falls back. CapacityGrowable lets the stack grow and allocate.
//
// Checked builds:
// Building with -tags lazysortcheck makes every step assert its invariants: partition
// post-conditions, ordering and bounds of pending ranges, order of emitted elements, and
// that every emitted element came from the input. Violations panic with errors wrapping
// ErrPartitionViolation, ErrRangeInvariant, ErrOrderViolation or ErrNotPermutation. The
// default build compiles these checks away.
//
// The less function must be a strict weak order. With one that is not, the output order is
// unspecified but the buffer still holds a permutation of its elements.
package lazysort
