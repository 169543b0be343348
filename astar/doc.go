// Package astar provides single-pair shortest-path search using the A*
// ("A-star") algorithm, generalized with history-sensitive edge weighting:
// the cost of traversing an edge may depend on the edge traversed
// immediately before it.
//
// Overview:
//
//   - Path computes one optimal vertex sequence from source to target;
//     PathLength computes its total cost by replaying the path through the
//     weight function.
//   - A weight specification is either an explicit WeightFunc — a pure
//     function of (graph, previous arc or nil, current arc) — or the name of
//     a numeric edge attribute, resolved through the Graph collaborator's
//     EdgeData.
//   - An optional HeuristicFunc biases exploration toward the target. With
//     no heuristic (or the zero function) the search behaves exactly like
//     Dijkstra, and when the weight function ignores its previous-arc
//     argument the results coincide with classic edge-weighted A*.
//
// When to use history-sensitive weights:
//
//   - Relative costs: the cost of a step as a ratio of successive edge
//     weights (momentum, gearing, exchange rates).
//   - Turn or transition penalties that depend on the incoming segment, not
//     just the outgoing one.
//
// Numeric semantics:
//
//   - Costs are float64 and may be negative; the engine neither detects nor
//     rejects negative-cost configurations. With negative increments the
//     heuristic is not admissible in the classical sense, so optimality is
//     the caller's responsibility — in practice, use the zero heuristic.
//
// Determinism:
//
//   - Repeated calls with identical inputs return identical paths and
//     lengths. Priority ties break on insertion order through a per-search
//     sequence counter, and the collaborator's NeighborIDs ordering fixes
//     expansion order, so no vertex-ID comparison is ever involved.
//
// Concurrency and resources:
//
//   - One call runs synchronously to completion and owns its frontier and
//     tables exclusively; searches on the same graph may run concurrently as
//     long as the graph is not mutated meanwhile. No timeouts or
//     cancellation: an infinite graph with no path to target will not
//     terminate (finite reachable-component assumption).
//
// Error handling (sentinel errors):
//
//   - ErrVertexNotFound: source or target absent; checked before the search.
//   - ErrNoPath: frontier exhausted without reaching the target.
//   - ErrMultigraphWeight: attribute mode on a multigraph; checked during
//     weight resolution, before the search.
//   - ErrMissingAttr: an edge lacks the configured weight attribute;
//     surfaces mid-search from the attribute lookup.
//   - Errors from a caller-supplied WeightFunc or from the Graph collaborator
//     propagate to the caller unchanged, never recovered or retried. There is
//     no partial-result mode.
//
// API reference:
//
//	func Path(g Graph, source, target string, opts ...Option) ([]string, error)
//	func PathLength(g Graph, source, target string, opts ...Option) (float64, error)
//
//	Options:
//	  • WithHeuristic(h HeuristicFunc)  — remaining-cost estimate (default zero).
//	  • WithWeightFunc(w WeightFunc)    — explicit two-edge-window cost function.
//	  • WithWeightAttr(key string)      — attribute mode under the given key
//	                                      (default "weight").
//
// See also:
//
//   - core.Graph: the concrete collaborator satisfying the Graph interface.
package astar
