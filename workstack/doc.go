// Package workstack implements the fixed-capacity, double-ended stack of index ranges that
// drives a lazy quicksort session.
//
// A Stack holds half-open ranges [Lo, Hi) of a buffer that still need partitioning. The
// ranges are kept in position order: the front is the lowest pending range and the back is
// the highest. A caller consuming the sorted order from the smallest element works on the
// front, and a caller consuming from the largest element works on the back. The two ends
// behave like two LIFOs growing toward each other inside one pre-allocated ring.
//
// The capacity is fixed when the Stack is created and pushing beyond it is a contract
// violation: the push panics with an error wrapping ErrCapacityExceeded instead of
// reallocating. A growable Stack, created with NewGrowable, doubles its ring instead. Use it
// only when allocation during use is acceptable.
//
// Basic usage:
//
//	s, err := workstack.New(8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s.PushFront(workstack.Range{Lo: 0, Hi: 100})
//	r := s.PopFront()
//	// ... partition r into [r.Lo, lt) and [gt, r.Hi)
//	s.PushFront(workstack.Range{Lo: gt, Hi: r.Hi})
//	s.PushFront(workstack.Range{Lo: r.Lo, Hi: lt})
//
// The minimum capacity is MinCapacity, enough for the two sub-ranges of one partition step.
package workstack
