//go:build lazysortcheck

package lazysort

import (
	"fmt"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/btree"
	"github.com/scale-rs/lazysort-linear-mem/workstack"
)

// Checked reports whether the package was built with the lazysortcheck tag.
const Checked = true

// tally counts the not-yet-emitted input elements equivalent to v.
type tally[E any] struct {
	v E
	n int
}

// checker asserts the session invariants after every step. It allocates freely.
type checker[E any] struct {
	less    func(a, b E) bool
	pending *btree.BTreeG[*tally[E]]

	front, back       E
	hasFront, hasBack bool
}

func newChecker[E any](buf []E, less func(a, b E) bool) checker[E] {
	pending := btree.NewG[*tally[E]](2, func(a, b *tally[E]) bool {
		return less(a.v, b.v)
	})
	for _, v := range buf {
		if t, ok := pending.Get(&tally[E]{v: v}); ok {
			t.n++
			continue
		}
		pending.ReplaceOrInsert(&tally[E]{v: v, n: 1})
	}
	return checker[E]{less: less, pending: pending}
}

func (c *checker[E]) partitioned(buf []E, r workstack.Range, lt, gt int) {
	if lt < r.Lo || lt >= gt || gt > r.Hi {
		violation(ErrPartitionViolation, "bounds lt=%d gt=%d outside %+v", lt, gt, r)
	}
	pivot := buf[lt]
	for i := r.Lo; i < r.Hi; i++ {
		var ok bool
		switch {
		case i < lt:
			ok = c.less(buf[i], pivot)
		case i < gt:
			ok = !c.less(buf[i], pivot) && !c.less(pivot, buf[i])
		default:
			ok = c.less(pivot, buf[i])
		}
		if !ok {
			violation(ErrPartitionViolation, "index %d of %+v (lt=%d gt=%d):\n%s",
				i, r, lt, gt, spew.Sdump(buf[r.Lo:r.Hi]))
		}
	}
}

func (c *checker[E]) sorted(buf []E, r workstack.Range) {
	for i := r.Lo + 1; i < r.Hi; i++ {
		if c.less(buf[i], buf[i-1]) {
			violation(ErrPartitionViolation, "heap sort left %+v unsorted at %d:\n%s",
				r, i, spew.Sdump(buf[r.Lo:r.Hi]))
		}
	}
}

func (c *checker[E]) stepped(st *workstack.Stack, head, tail int) {
	if st.Len() > st.Cap() {
		violation(ErrRangeInvariant, "occupancy %d over capacity %d", st.Len(), st.Cap())
	}
	prev := head
	for r := range st.All() {
		if r.Len() < 2 || r.Lo < prev || r.Hi > tail {
			violation(ErrRangeInvariant, "range %+v in window [%d, %d):\n%s",
				r, head, tail, spew.Sdump(slices.Collect(st.All())))
		}
		prev = r.Hi
	}
}

func (c *checker[E]) emitFront(v E) {
	if c.hasFront && c.less(v, c.front) {
		violation(ErrOrderViolation, "%s emitted after %s", spew.Sprint(v), spew.Sprint(c.front))
	}
	if c.hasBack && c.less(c.back, v) {
		violation(ErrOrderViolation, "%s emitted from the front after %s from the back",
			spew.Sprint(v), spew.Sprint(c.back))
	}
	c.front, c.hasFront = v, true
	c.take(v)
}

func (c *checker[E]) emitBack(v E) {
	if c.hasBack && c.less(c.back, v) {
		violation(ErrOrderViolation, "%s emitted after %s", spew.Sprint(v), spew.Sprint(c.back))
	}
	if c.hasFront && c.less(v, c.front) {
		violation(ErrOrderViolation, "%s emitted from the back after %s from the front",
			spew.Sprint(v), spew.Sprint(c.front))
	}
	c.back, c.hasBack = v, true
	c.take(v)
}

func (c *checker[E]) take(v E) {
	t, ok := c.pending.Get(&tally[E]{v: v})
	if !ok {
		violation(ErrNotPermutation, "%s", spew.Sdump(v))
	}
	t.n--
	if t.n == 0 {
		c.pending.Delete(t)
	}
}

func violation(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
