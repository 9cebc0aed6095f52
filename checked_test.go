//go:build lazysortcheck

package lazysort

import (
	"errors"
	"fmt"
	"testing"

	"github.com/scale-rs/lazysort-linear-mem/workstack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

// recoverErr runs fn and returns the error it panicked with, if any.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("%v", r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

func TestChecked_ValidSessionsPass(t *testing.T) {
	require.True(t, Checked)

	buf := make([]int, 500)
	for i := range buf {
		buf[i] = (i * 37) % 61
	}
	s, err := New(buf, intLess, WithCapacity(3))
	require.NoError(t, err)

	err = recoverErr(func() {
		for i := 0; s.Len() > 0; i++ {
			if i%2 == 0 {
				s.Next()
			} else {
				s.NextBack()
			}
		}
	})
	assert.NoError(t, err)
}

func TestChecked_BrokenComparator(t *testing.T) {
	// Not irreflexive, so the three blocks cannot be formed consistently.
	broken := func(a, b int) bool { return a <= b }

	s, err := New([]int{3, 1, 2, 3, 1, 2, 5, 4}, broken)
	require.NoError(t, err)

	err = recoverErr(func() {
		for s.Len() > 0 {
			s.Next()
		}
	})
	require.Error(t, err)
	assert.True(t,
		errors.Is(err, ErrPartitionViolation) || errors.Is(err, ErrOrderViolation),
		"unexpected error: %v", err)
}

func TestChecker_Emit(t *testing.T) {
	t.Run("unknown element", func(t *testing.T) {
		c := newChecker([]int{1, 2}, intLess)
		err := recoverErr(func() { c.emitFront(3) })
		assert.ErrorIs(t, err, ErrNotPermutation)
	})

	t.Run("element emitted twice", func(t *testing.T) {
		c := newChecker([]int{1, 2}, intLess)
		err := recoverErr(func() {
			c.emitFront(1)
			c.emitFront(1)
		})
		assert.ErrorIs(t, err, ErrNotPermutation)
	})

	t.Run("front out of order", func(t *testing.T) {
		c := newChecker([]int{1, 2}, intLess)
		err := recoverErr(func() {
			c.emitFront(2)
			c.emitFront(1)
		})
		assert.ErrorIs(t, err, ErrOrderViolation)
	})

	t.Run("front passes back", func(t *testing.T) {
		c := newChecker([]int{1, 2, 3}, intLess)
		err := recoverErr(func() {
			c.emitBack(2)
			c.emitFront(3)
		})
		assert.ErrorIs(t, err, ErrOrderViolation)
	})

	t.Run("duplicates", func(t *testing.T) {
		c := newChecker([]int{4, 4, 4}, intLess)
		err := recoverErr(func() {
			c.emitFront(4)
			c.emitBack(4)
			c.emitFront(4)
		})
		assert.NoError(t, err)
	})
}

func TestChecker_Partitioned(t *testing.T) {
	c := newChecker([]int{}, intLess)
	r := workstack.Range{Lo: 0, Hi: 5}

	assert.NoError(t, recoverErr(func() { c.partitioned([]int{1, 0, 2, 2, 9}, r, 2, 4) }))

	err := recoverErr(func() { c.partitioned([]int{1, 3, 2, 2, 9}, r, 2, 4) })
	assert.ErrorIs(t, err, ErrPartitionViolation)

	err = recoverErr(func() { c.partitioned([]int{1, 0, 2, 2, 9}, r, 2, 2) })
	assert.ErrorIs(t, err, ErrPartitionViolation)
}

func TestChecker_Stepped(t *testing.T) {
	c := newChecker([]int{}, intLess)
	st, err := workstack.New(4)
	require.NoError(t, err)

	st.PushBack(workstack.Range{Lo: 0, Hi: 3})
	st.PushBack(workstack.Range{Lo: 4, Hi: 8})
	assert.NoError(t, recoverErr(func() { c.stepped(st, 0, 8) }))

	st.PushBack(workstack.Range{Lo: 6, Hi: 9})
	err = recoverErr(func() { c.stepped(st, 0, 9) })
	assert.ErrorIs(t, err, ErrRangeInvariant, "overlapping ranges")
}
