// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/dijkstra"
)

// ExampleDijkstra demonstrates path reconstruction on a small directed graph.
// Complexity: O((V+E) log V).
func ExampleDijkstra() {
	// 0→1(2), 0→2(1), 2→1(1), 1→3(3), 2→3(5)
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 3, 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The shortest path to 3 is 0→1→3 with total cost 2+3 = 5.
	fmt.Printf("dist[3]=%d, prev[3]=%d\n", dist[3], prev[3])
	// Output: dist[3]=5, prev[3]=1
}

// ExampleDijkstra_thresholds demonstrates InfEdgeThreshold: edges with
// weight ≥ threshold are treated as impassable.
func ExampleDijkstra_thresholds() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(0, 2, 10)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[2]=%d\n", dist[2])
	// Output: dist[2]=6
}
