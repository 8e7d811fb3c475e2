package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/dfs"
	"github.com/katalvlaran/statespace/transport"
)

// ExampleSearch shows that depth-first search takes the tram whenever it can:
// the last declared successor is explored first.
func ExampleSearch() {
	p, _ := transport.New(10)

	sol, err := dfs.Search[int, int](p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("totalCost:", sol.Cost)
	for _, t := range sol.Path {
		fmt.Printf("%s: %d -> %d (%d)\n", t.Action, t.From, t.To, t.Cost)
	}
	// Output:
	// totalCost: 8
	// tram: 1 -> 2 (2)
	// tram: 2 -> 4 (2)
	// tram: 4 -> 8 (2)
	// walk: 8 -> 9 (1)
	// walk: 9 -> 10 (1)
}
