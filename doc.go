// Package wayfind is a small Go library for single-pair shortest-path search
// on weighted graphs, built around one generalization of A*: the cost of an
// edge may depend on the edge traversed immediately before it.
//
// That history-sensitive weighting supports domains where cost is relative
// rather than purely additive — e.g. the cost of a step expressed as a ratio
// of successive edge weights, turn penalties that depend on the incoming
// road segment, or gear-change costs in route planning.
//
// The repository is organized in two packages plus a thin CLI:
//
//	core/        — the concrete Graph, Vertex, Edge types: thread-safe
//	               construction, adjacency queries, and per-edge attribute maps
//	astar/       — the search itself: Path and PathLength, pluggable
//	               heuristics, and the two-edge-window weight functions
//	cmd/wayfind/ — a command-line front end that loads a YAML graph
//	               description and routes between two vertices
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("A", "B", 2)
//	g.AddEdge("B", "C", 3)
//
//	path, err := astar.Path(g, "A", "C")
//	// path == []string{"A", "B", "C"}
//
// The astar package accepts any graph implementing its four-method Graph
// interface; core.Graph is the batteries-included implementation.
package wayfind
