package lazysort

import "golang.org/x/exp/constraints"

// Less orders values of an ordered type ascending. NaNs sort before every other value, so
// float inputs still get a total order.
func Less[E constraints.Ordered](a, b E) bool {
	return (isNaN(a) && !isNaN(b)) || a < b
}

// Greater orders values of an ordered type descending, with NaNs last.
func Greater[E constraints.Ordered](a, b E) bool {
	return Less(b, a)
}

func isNaN[E constraints.Ordered](x E) bool {
	return x != x
}

// NewOrdered creates a session over buf ordered by Less.
func NewOrdered[E constraints.Ordered](buf []E, opts ...Option) (*Sorter[E], error) {
	return New(buf, Less[E], opts...)
}
