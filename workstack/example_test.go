package workstack_test

import (
	"fmt"

	"github.com/scale-rs/lazysort-linear-mem/workstack"
)

// ExampleStack shows ranges kept in position order while both ends are worked on.
func ExampleStack() {
	s, err := workstack.New(4)
	if err != nil {
		fmt.Printf("Failed to create stack: %v\n", err)
		return
	}

	// A partition of [0, 10) around index 4 leaves two pending sides.
	s.PushFront(workstack.Range{Lo: 5, Hi: 10})
	s.PushFront(workstack.Range{Lo: 0, Hi: 4})

	for r := range s.All() {
		fmt.Printf("[%d, %d)\n", r.Lo, r.Hi)
	}

	fmt.Println("lowest:", s.PopFront())
	fmt.Println("highest:", s.PopBack())

	// Output:
	// [0, 4)
	// [5, 10)
	// lowest: {0 4}
	// highest: {5 10}
}
