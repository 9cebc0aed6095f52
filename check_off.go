//go:build !lazysortcheck

package lazysort

import "github.com/scale-rs/lazysort-linear-mem/workstack"

// Checked reports whether the package was built with the lazysortcheck tag.
const Checked = false

// checker compiles to nothing without the lazysortcheck tag.
type checker[E any] struct{}

func newChecker[E any](_ []E, _ func(a, b E) bool) checker[E] {
	return checker[E]{}
}

func (*checker[E]) partitioned(_ []E, _ workstack.Range, _, _ int) {}

func (*checker[E]) sorted(_ []E, _ workstack.Range) {}

func (*checker[E]) stepped(_ *workstack.Stack, _, _ int) {}

func (*checker[E]) emitFront(_ E) {}

func (*checker[E]) emitBack(_ E) {}
