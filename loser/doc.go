// Package loser implements a tournament tree (also known as a loser tree) for merging
// several sorted sequences. This implementation is based on the work by Bryan Boreham
// (https://github.com/bboreham/go-loser).
//
// Each lazy sort session yields its elements in ascending order, so a tree over several
// sessions produces the global order while every session only sorts as much of its own
// buffer as the merge actually consumes.
//
// Basic usage:
//
//	a, _ := lazysort.NewOrdered(shardA)
//	b, _ := lazysort.NewOrdered(shardB)
//
//	tree := loser.New(
//	    []loser.Sequence[int]{a, b},
//	    func(a, b int) bool { return a < b },
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v)
//	}
//
// Plain iterators are merged with Merge.
//
// Implementation Details:
// The loser tree is implemented as a binary tree laid out in an array where:
//   - For node N, its children are at positions 2N and 2N+1
//   - Leaf nodes are stored in positions M to 2M-1 (where M is the number of sequences)
//   - Internal nodes are stored in positions 1 to M-1
//   - Node 0 is special, containing the current winner
//
// Internal nodes record which leaf lost the game played there. Exhausted leaves lose every
// game, and the merge ends when the overall winner is exhausted.
package loser
