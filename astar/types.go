// Package astar defines the core types and configuration options for the
// history-sensitive A* shortest-path search.
//
// The central departure from plain edge-weighted search is the weight
// contract: a WeightFunc sees a two-edge window — the arc being traversed
// and the arc traversed immediately before it (nil on the first step).
// Cost may therefore be relative (ratios, turn penalties) rather than a fixed
// per-edge number, and negative incremental costs are permitted.
//
// Errors (sentinel):
//
//	– ErrEmptyVertexID    if source or target ID is empty.
//	– ErrNilGraph         if the provided graph is nil.
//	– ErrVertexNotFound   if source or target does not exist in the graph.
//	– ErrNoPath           if the frontier empties before the target is reached.
//	– ErrMultigraphWeight if attribute weight mode is used on a multigraph.
//	– ErrMissingAttr      if an edge lacks the configured weight attribute.
//	– ErrBadWeightAttr    if WithWeightAttr is given an empty key.
package astar

import "errors"

// DefaultWeightAttr is the edge attribute consulted when neither
// WithWeightFunc nor WithWeightAttr is supplied.
const DefaultWeightAttr = "weight"

// Sentinel errors returned by Path and PathLength.
var (
	// ErrEmptyVertexID indicates that the provided source or target ID is empty.
	ErrEmptyVertexID = errors.New("astar: vertex ID is empty")

	// ErrNilGraph indicates that a nil Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrVertexNotFound indicates that source or target does not exist in the
	// graph. Detected eagerly, before the search begins.
	ErrVertexNotFound = errors.New("astar: vertex not found in graph")

	// ErrNoPath indicates that the frontier was exhausted without ever
	// reaching the target. Retrying with identical inputs is deterministic
	// and would reproduce the same failure.
	ErrNoPath = errors.New("astar: no path between source and target")

	// ErrMultigraphWeight indicates that attribute-based weight resolution was
	// requested on a graph permitting parallel edges, where the attribute of
	// "the" edge joining a vertex pair is ambiguous. Supply a WeightFunc to
	// search multigraphs.
	ErrMultigraphWeight = errors.New("astar: attribute weight mode not supported on multigraphs")

	// ErrMissingAttr indicates that an edge encountered during the search has
	// no attribute under the configured weight key. Callers relying on a
	// default weight must ensure every edge carries the attribute.
	ErrMissingAttr = errors.New("astar: edge attribute not found")

	// ErrBadWeightAttr indicates that WithWeightAttr was given an empty key.
	ErrBadWeightAttr = errors.New("astar: weight attribute key must be non-empty")
)

// Arc is an ordered vertex pair: one directed traversal step.
// For undirected graphs each traversed edge is still presented as an ordered
// pair for the duration of that step.
type Arc struct {
	From string // tail vertex ID
	To   string // head vertex ID
}

// WeightFunc computes the cost of traversing cur, given the arc traversed
// immediately before it. prev is nil when cur is the first arc of the path
// being evaluated. Costs are real numbers; negative values are legal.
//
// A WeightFunc must be pure with respect to a single search: the engine may
// evaluate it in any expansion order and replays it when recomputing a path
// length. Errors abort the search and propagate to the caller unchanged.
type WeightFunc func(g Graph, prev *Arc, cur Arc) (float64, error)

// HeuristicFunc estimates the remaining cost from node to target. It must be
// non-negative and, for the classical optimality guarantee, admissible (never
// overestimating). The engine computes it at most once per node per search.
type HeuristicFunc func(node, target string) float64

// Graph is the collaborator contract the search consumes. *core.Graph
// satisfies it; any graph store exposing these four queries can be searched.
type Graph interface {
	// HasVertex reports whether the vertex exists.
	HasVertex(id string) bool

	// NeighborIDs returns the unique IDs reachable from id via one directed
	// step. Deterministic ordering makes the search deterministic.
	NeighborIDs(id string) ([]string, error)

	// EdgeData returns the attribute map of the edge joining the ordered
	// pair, or an error if no such edge exists.
	EdgeData(from, to string) (map[string]float64, error)

	// Multigraph reports whether parallel edges between the same endpoints
	// are permitted; attribute weight mode rejects such graphs.
	Multigraph() bool
}

// Options configures the behavior of a single search call.
//
// Heuristic  – remaining-cost estimate; nil means the constant zero function,
//
//	reducing A* to uniform-cost (Dijkstra) behavior.
//
// Weight     – explicit two-edge-window cost function; nil selects attribute
//
//	mode using WeightAttr.
//
// WeightAttr – edge attribute key for attribute mode. Defaults to "weight".
type Options struct {
	Heuristic  HeuristicFunc // estimate of remaining distance to target
	Weight     WeightFunc    // explicit cost function, overrides WeightAttr
	WeightAttr string        // attribute key for attribute-based weighting
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithHeuristic sets the remaining-cost estimate used to bias exploration
// order. Passing nil restores the default zero heuristic.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithWeightFunc supplies an explicit cost function. It takes precedence over
// any attribute key, and is the only weight mode valid on multigraphs.
func WithWeightFunc(w WeightFunc) Option {
	return func(o *Options) {
		o.Weight = w
	}
}

// WithWeightAttr selects attribute-based weighting: the cost of each arc is
// read from the named attribute of its edge data; path history is ignored.
// Must pass a non-empty key; applying the option with an empty key panics
// with ErrBadWeightAttr.
func WithWeightAttr(key string) Option {
	return func(o *Options) {
		if key == "" {
			// Panic to signal invalid configuration early, as option
			// constructors do throughout this library.
			panic(ErrBadWeightAttr.Error())
		}
		o.WeightAttr = key
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
// zero heuristic, attribute weight mode under DefaultWeightAttr.
func DefaultOptions() Options {
	return Options{
		Heuristic:  nil,
		Weight:     nil,
		WeightAttr: DefaultWeightAttr,
	}
}
