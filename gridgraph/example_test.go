// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/advent/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: LowestRisk
////////////////////////////////////////////////////////////////////////////////

// ExampleLowestRisk finds the cheapest walk from the top-left to the
// bottom-right corner. Entering a cell costs its digit; the start is free.
//
//	1 1 6
//	1 3 8
//	2 1 3
//
// Cheapest route: down, down, right, right = 1 + 2 + 1 + 3 = 7.
func ExampleLowestRisk() {
	g, _ := gridgraph.ParseDigits("116\n138\n213\n")

	cost, found, err := gridgraph.LowestRisk(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(found, cost)
	// Output: true 7
}

////////////////////////////////////////////////////////////////////////////////
// Example: Tile
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Tile expands a single 8 into a 3×3 block; each tile step adds
// one and 9 wraps back to 1.
func ExampleGrid_Tile() {
	g, _ := gridgraph.NewGrid([][]int{{8}})
	big, _ := g.Tile(3)
	fmt.Print(big)
	// Output:
	// 891
	// 912
	// 123
}
