package core_test

import (
	"fmt"

	"github.com/vkomarov/wayfind/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, unweighted graph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C):
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "A", 0)

	// 3) Inspect vertices and edges; Vertices() is already sorted:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges:
	g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B, vertices: [A C]
	// Edge A→B exists? false
}

// ExampleGraph_edgeData shows the merged attribute view an algorithm reads:
// named attributes plus the "weight" key.
func ExampleGraph_edgeData() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	g.AddEdge("A", "B", 4, core.WithEdgeAttrs(map[string]float64{"toll": 1.5}))

	data, _ := g.EdgeData("A", "B")
	fmt.Printf("weight=%v toll=%v\n", data[core.WeightAttr], data["toll"])

	// The reverse orientation does not resolve on a directed edge.
	_, err := g.EdgeData("B", "A")
	fmt.Println("reverse:", err)

	// Output:
	// weight=4 toll=1.5
	// reverse: core: edge not found: B→A
}

// ExampleGraph_neighborIDs shows the deterministic sorted neighbor view.
func ExampleGraph_neighborIDs() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	g.AddEdge("hub", "delta", 1)
	g.AddEdge("hub", "alpha", 1)
	g.AddEdge("hub", "charlie", 1)
	g.AddEdge("alpha", "hub", 1) // incoming, not a neighbor of hub

	ids, _ := g.NeighborIDs("hub")
	fmt.Println(ids)

	// Output:
	// [alpha charlie delta]
}
