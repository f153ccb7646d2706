package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

// ExampleGraph demonstrates basic creation, insertion, and queries.
func ExampleGraph() {
	g, _ := core.NewGraph(3)

	_ = g.AddEdge(0, 1, -2)
	_ = g.AddEdge(1, 2, 3)
	_ = g.AddEdge(2, 0, 2)

	nbs, _ := g.Neighbors(1)
	fmt.Println("vertices:", g.VertexCount(), "edges:", g.EdgeCount())
	fmt.Println("out of 1:", nbs)

	err := g.AddEdge(0, 5, 1)
	fmt.Println("invalid:", errors.Is(err, core.ErrInvalidVertex))

	// Output:
	// vertices: 3 edges: 3
	// out of 1: [1→2(3)]
	// invalid: true
}
