// Package loser Taken from talk: https://github.com/bboreham/go-loser/blob/iter/tree.go.
// Thank you Bryan
package loser

import (
	"iter"
)

// Sequence is anything that yields its elements in ascending order. A lazy sort session is
// a Sequence.
type Sequence[E any] interface {
	All() iter.Seq[E]
}

// Func adapts a plain iterator to a Sequence.
type Func[E any] iter.Seq[E]

func (f Func[E]) All() iter.Seq[E] {
	return iter.Seq[E](f)
}

// New builds a tree merging sequences by less. Exhausted inputs drop out of the tournament,
// so no sentinel maximum value is needed.
func New[E any](sequences []Sequence[E], less func(E, E) bool) *Tree[E] {
	t := Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		less:      less,
	}
	return &t
}

// Merge yields the elements of all seqs in ascending order.
func Merge[E any](less func(E, E) bool, seqs ...iter.Seq[E]) iter.Seq[E] {
	sequences := make([]Sequence[E], len(seqs))
	for i, s := range seqs {
		sequences[i] = Func[E](s)
	}
	return New(sequences, less).All()
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store M leaf nodes in positions M...2M-1, and M-1 internal nodes in positions 1..M-1.
// Node 0 is a special node, containing the winner of the contest.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []Sequence[E]
	less      func(E, E) bool
}

type node[E any] struct {
	index int              // Leaf position of the loser for internal nodes, of the winner for node 0.
	value E                // Current head of the sequence, only meaningful for leaves.
	done  bool             // Leaf sequence is exhausted.
	next  func() (E, bool) // Only populated for leaf nodes.
}

func (t *Tree[E]) moveNext(index int) {
	n := &t.nodes[index]
	if v, ok := n.next(); ok {
		n.value = v
		return
	}
	var zero E
	n.value = zero
	n.done = true
}

// beats reports whether leaf a should be emitted before leaf b.
func (t *Tree[E]) beats(a, b int) bool {
	la, lb := &t.nodes[a], &t.nodes[b]
	if la.done || lb.done {
		return !la.done
	}
	return t.less(la.value, lb.value)
}

// All yields the merged elements. Each call restarts every input sequence.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		m := len(t.sequences)
		for i, s := range t.sequences {
			next, stop := iter.Pull(s.All())
			t.nodes[i+m] = node[E]{index: i + m, next: next}
			//nolint:gocritic // is not a leak.
			defer stop()
			t.moveNext(i + m) // Call next() on each item to get the first value.
		}
		t.nodes[0].index = t.playGame(1)
		for {
			w := t.nodes[0].index
			if t.nodes[w].done || !yield(t.nodes[w].value) {
				return
			}
			t.moveNext(w)
			t.replayGames(w)
		}
	}
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.beats(right, left) {
		loser, winner = left, right
	} else {
		loser, winner = right, left
	}
	nodes[pos].index = loser
	return winner
}

// Starting at pos, which is a winner, re-consider all values up to the root.
func (t *Tree[E]) replayGames(pos int) {
	nodes := t.nodes
	for n := parent(pos); n != 0; n = parent(n) {
		node := &nodes[n]
		if t.beats(node.index, pos) {
			// Record pos as the loser here, and the old loser is the new winner.
			node.index, pos = pos, node.index
		}
	}
	// pos is now the winner; store it in node 0.
	nodes[0].index = pos
}

func parent(i int) int { return i >> 1 }
