package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/pqueue"
)

// ExampleQueue shows insert, decrease-key and ordered extraction.
func ExampleQueue() {
	q := pqueue.New[string, int]()
	q.Update("B", 5)
	q.Update("C", 3)
	q.Update("B", 1) // lowers B in place
	q.Update("C", 9) // not an improvement, ignored

	for q.Len() > 0 {
		k, p, _ := q.PopMin()
		fmt.Printf("%s=%d\n", k, p)
	}
	// Output:
	// B=1
	// C=3
}
