package lazysort_test

import (
	"math/rand/v2"
	"slices"
)

func intLess(a, b int) bool {
	return a < b
}

func randomInts(n int, seed uint64) []int {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(n*4 + 1)
	}
	return out
}

// patterns are the input shapes every property is checked against.
func patterns(n int) map[string][]int {
	sorted := make([]int, n)
	reversed := make([]int, n)
	equal := make([]int, n)
	fewUnique := make([]int, n)
	organPipe := make([]int, n)
	sawtooth := make([]int, n)
	for i := 0; i < n; i++ {
		sorted[i] = i
		reversed[i] = n - i
		equal[i] = 4
		fewUnique[i] = (i * 7919) % 3
		organPipe[i] = min(i, n-i)
		sawtooth[i] = i % 17
	}
	return map[string][]int{
		"random":     randomInts(n, uint64(n)+3),
		"sorted":     sorted,
		"reversed":   reversed,
		"all equal":  equal,
		"few unique": fewUnique,
		"organ pipe": organPipe,
		"sawtooth":   sawtooth,
	}
}

func sortedCopy(in []int) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}

// countingLess wraps intLess and counts its calls.
type countingLess struct {
	calls int
}

func (c *countingLess) less(a, b int) bool {
	c.calls++
	return a < b
}
