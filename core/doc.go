// Package core provides the fundamental graph primitives used throughout
// wayfind: Vertex, Edge, and the thread-safe Graph container.
//
// Overview:
//
//   - Graphs are built with NewGraph plus functional options:
//     WithDirected, WithWeighted, WithMultiEdges, WithLoops, WithMixedEdges.
//   - Edges carry a real-valued Weight and an optional map of named numeric
//     attributes (WithEdgeAttrs). EdgeData merges both into the attribute view
//     that weight-by-attribute algorithms consume; the weight is always
//     exposed under the "weight" key.
//   - All read APIs return deterministically ordered results (edge IDs and
//     vertex IDs sorted ascending), so algorithms layered on top are
//     reproducible run to run.
//   - Two RWMutexes (vertices vs. edges+adjacency) keep concurrent readers
//     cheap; mutation is safe across goroutines.
//
// Negative weights are permitted at this layer. Individual algorithms decide
// whether they are meaningful: the astar package accepts them by design,
// since its history-sensitive weight functions may produce negative
// incremental costs.
//
// Typical usage:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("A", "B", 2.5)
//	g.AddEdge("B", "C", 1, core.WithEdgeAttrs(map[string]float64{"toll": 3}))
//
//	data, _ := g.EdgeData("B", "C") // map[toll:3 weight:1]
package core
