// Package astar: weight specification resolution.
//
// A weight specification is either an explicit WeightFunc or the name of an
// edge attribute. resolveWeight normalizes both into the uniform WeightFunc
// signature consumed by the search engine and the length recomputation.

package astar

import "fmt"

// resolveWeight produces the cost function for a search.
//
// Resolution rules:
//
//   - An explicit WeightFunc (WithWeightFunc) is returned unchanged.
//   - Otherwise attribute mode applies: the returned function reads the
//     configured attribute from the current arc's edge data and ignores the
//     previous arc entirely. A missing attribute surfaces as ErrMissingAttr
//     at lookup time — no default weight is assumed.
//   - Attribute mode on a multigraph fails with ErrMultigraphWeight, since
//     "the" attribute of a vertex pair is ambiguous across parallel edges.
func resolveWeight(g Graph, cfg Options) (WeightFunc, error) {
	// 1) Callable specification: pass through untouched.
	if cfg.Weight != nil {
		return cfg.Weight, nil
	}

	// 2) Attribute mode requires unambiguous edge lookup per vertex pair.
	if g.Multigraph() {
		return nil, ErrMultigraphWeight
	}

	// 3) Build the attribute-lookup closure over the configured key.
	key := cfg.WeightAttr
	if key == "" {
		key = DefaultWeightAttr
	}

	return func(g Graph, _ *Arc, cur Arc) (float64, error) {
		data, err := g.EdgeData(cur.From, cur.To)
		if err != nil {
			// Collaborator failure (no such edge, etc.): propagate as-is.
			return 0, err
		}
		w, ok := data[key]
		if !ok {
			return 0, fmt.Errorf("%w: %q on edge %s→%s", ErrMissingAttr, key, cur.From, cur.To)
		}

		return w, nil
	}, nil
}
