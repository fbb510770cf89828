// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/dijkstra"
)

// ExampleDijkstra demonstrates distances and path reconstruction on a small road network.
// Complexity: O((V+E) log V).
func ExampleDijkstra() {
	// 1) Build an undirected, weighted graph.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("depot", "A", 1)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("depot", "B", 5)

	// 2) Run Dijkstra from the depot.
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("depot"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) B is cheaper through A than over the direct edge.
	fmt.Printf("dist[B]=%.0f\n", res.Dist["B"])
	path, _ := res.PathTo("B")
	cur := "depot"
	for _, e := range path {
		next := e.Other(cur)
		fmt.Printf("%s -> %s (%.0f)\n", cur, next, e.Weight)
		cur = next
	}

	// Output:
	// dist[B]=2
	// depot -> A (1)
	// A -> B (1)
}
