// Package astar implements A* single-pair shortest-path search with
// history-sensitive edge weighting.
//
// The engine keeps the classical A* structure — a priority frontier ordered
// by accumulated cost plus heuristic, a best-known-cost table, and a
// back-pointer map — with one twist required by the two-edge-window weight
// contract: every frontier entry carries the full path explored so far, so
// the previous arc is available when expanding a node that has not been
// finalized yet (the back-pointer map only covers finalized nodes).
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap operations plus one weight evaluation per
//     relaxation; path copies add O(L) per push for path length L.
//   - Space: O(V + E) for the tables and frontier, plus the carried paths.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved costs push duplicate frontier entries and
//     stale ones are skipped on pop, as in the dijkstra-style heap pattern.
//   - Ties in priority break on insertion order via a per-search sequence
//     counter, never on vertex IDs, so output is deterministic without
//     requiring vertices to be ordered.
//   - Negative incremental costs are accepted and not detected: with
//     history-sensitive weights they are a feature, and correctness under
//     them is the caller's responsibility via heuristic choice (typically
//     zero).
package astar

import (
	"container/heap"
	"fmt"
)

// Path returns the vertices of a shortest path from source to target,
// inclusive of both endpoints, using the A* algorithm. When ties exist among
// optimal paths, exactly one is returned, chosen deterministically.
//
// Options customization:
//
//   - WithHeuristic(h): bias exploration with a remaining-cost estimate;
//     default is the constant zero (Dijkstra behavior).
//   - WithWeightFunc(w): explicit two-edge-window cost function.
//   - WithWeightAttr(key): read costs from the named edge attribute
//     (default "weight"); invalid on multigraphs.
//
// Preconditions and validation (in order):
//  1. source and target must be non-empty (ErrEmptyVertexID).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain both source and target (ErrVertexNotFound).
//  4. Attribute weight mode requires a non-multigraph (ErrMultigraphWeight).
//
// Fails with ErrNoPath if target is unreachable from source. Errors returned
// by the weight function or the graph collaborator abort the search and
// propagate unchanged.
func Path(g Graph, source, target string, opts ...Option) ([]string, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the call and resolve the weight specification.
	weight, err := validate(g, source, target, cfg)
	if err != nil {
		return nil, err
	}

	// 3) Run the search.
	return findPath(g, source, target, heuristicOrZero(cfg), weight)
}

// PathLength returns the total cost of the path Path would return,
// recomputed by replaying the path's arcs through the resolved weight
// function in order, with a leading "no previous arc" sentinel.
//
// The recomputation is deliberate rather than a convenience: with a
// history-sensitive weight function, per-arc costs are only well defined in
// path order, and replaying keeps this entry point decoupled from search
// internals. Same failure modes as Path.
func PathLength(g Graph, source, target string, opts ...Option) (float64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the call and resolve the weight specification once, so the
	//    search and the replay share one cost function.
	weight, err := validate(g, source, target, cfg)
	if err != nil {
		return 0, err
	}

	// 3) Find the path.
	path, err := findPath(g, source, target, heuristicOrZero(cfg), weight)
	if err != nil {
		return 0, err
	}

	// 4) Replay the path as arcs with a nil leading previous arc, summing the
	//    weight of each consecutive (previous, current) pair.
	var total float64
	var prev *Arc
	for i := 1; i < len(path); i++ {
		cur := Arc{From: path[i-1], To: path[i]}
		step, werr := weight(g, prev, cur)
		if werr != nil {
			return 0, werr
		}
		total += step
		prevArc := cur
		prev = &prevArc
	}

	return total, nil
}

// validate performs the eager pre-search checks shared by Path and
// PathLength, and resolves the weight specification.
func validate(g Graph, source, target string, cfg Options) (WeightFunc, error) {
	if source == "" || target == "" {
		return nil, ErrEmptyVertexID
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: source %q or target %q", ErrVertexNotFound, source, target)
	}

	return resolveWeight(g, cfg)
}

// heuristicOrZero returns the configured heuristic, or the constant zero
// estimate that reduces the search to uniform-cost behavior.
func heuristicOrZero(cfg Options) HeuristicFunc {
	if cfg.Heuristic != nil {
		return cfg.Heuristic
	}

	return func(string, string) float64 { return 0 }
}

// enqueuedEntry records the best known accumulated cost for a vertex together
// with its heuristic value, which is computed at most once per search.
type enqueuedEntry struct {
	cost float64 // best known accumulated cost from source
	h    float64 // cached heuristic estimate to target
}

// frontierItem is one candidate in the priority frontier.
//
// seq breaks priority ties deterministically: it is strictly increasing
// across all pushes of one search, so earlier insertions win and vertex IDs
// never need to be compared.
//
// path carries the explored path that produced this entry. The back-pointer
// table only holds finalized vertices, so the previous arc of a
// not-yet-finalized candidate must travel with the entry itself.
type frontierItem struct {
	priority float64  // accumulated cost + heuristic
	seq      uint64   // insertion sequence number
	node     string   // candidate vertex
	cost     float64  // accumulated cost from source
	parent   string   // vertex this entry was expanded from ("" for the seed)
	path     []string // explored path so far, source..node inclusive
}

// frontier is a min-heap of *frontierItem ordered by (priority, seq).
// Lazy decrease-key: improved entries are pushed alongside stale ones, which
// are discarded on pop.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority ascending, then insertion sequence ascending.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

// runner holds the mutable state for a single search execution. All of it is
// created fresh per call and discarded on return; nothing is shared across
// concurrent searches.
type runner struct {
	g         Graph
	source    string
	target    string
	heuristic HeuristicFunc
	weight    WeightFunc

	seq      uint64                   // insertion sequence counter
	pq       frontier                 // priority frontier
	enqueued map[string]enqueuedEntry // vertex → (best cost, cached heuristic)
	explored map[string]string        // vertex → finalized parent ("" for source)
}

// findPath runs the search with an already-resolved heuristic and weight.
func findPath(g Graph, source, target string, h HeuristicFunc, w WeightFunc) ([]string, error) {
	r := &runner{
		g:         g,
		source:    source,
		target:    target,
		heuristic: h,
		weight:    w,
		pq:        make(frontier, 0),
		enqueued:  make(map[string]enqueuedEntry),
		explored:  make(map[string]string),
	}
	r.init()

	return r.process()
}

// init seeds the frontier with the source entry: priority 0, cost 0, no
// parent, path [source].
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{
		priority: 0,
		seq:      r.seq,
		node:     r.source,
		cost:     0,
		parent:   "",
		path:     []string{r.source},
	})
}

// process is the main loop. Each iteration pops the minimum-priority entry,
// finalizes it unless stale, and relaxes its outgoing arcs, until the target
// is popped (Found) or the frontier empties (Exhausted).
func (r *runner) process() ([]string, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (priority, seq) entry.
		item := heap.Pop(&r.pq).(*frontierItem)
		cur, dist := item.node, item.cost

		// 2) Target popped: the path through item.parent is optimal under an
		//    admissible heuristic. Reconstruct and return.
		if cur == r.target {
			return r.reconstruct(cur, item.parent), nil
		}

		// 3) Already-finalized vertices reappear via lazy decrease-key.
		if parent, done := r.explored[cur]; done {
			// The source's parent marker is ""; a stale re-entry of the
			// source must not overwrite it, nor be treated as a revisit.
			if parent == "" {
				continue
			}
			// Skip entries enqueued before a strictly better path was found.
			if qcost := r.enqueued[cur].cost; qcost < dist {
				continue
			}
		}

		// 4) Finalize: record the parent that produced this entry.
		r.explored[cur] = item.parent

		// 5) Relax all arcs out of cur.
		if err := r.relax(item); err != nil {
			return nil, err
		}
	}

	// Frontier exhausted without popping the target.
	return nil, fmt.Errorf("%w: %q not reachable from %q", ErrNoPath, r.target, r.source)
}

// relax expands the finalized frontier entry: for each neighbor it evaluates
// the weight of the current arc in the context of the entry's previous arc,
// and pushes improved candidates.
func (r *runner) relax(item *frontierItem) error {
	neighbors, err := r.g.NeighborIDs(item.node)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %q: %w", item.node, err)
	}

	// The previous arc is the second-to-last step of the carried path, or nil
	// when this entry is the seed (no history yet).
	var prev *Arc
	if n := len(item.path); n >= 2 {
		prev = &Arc{From: item.path[n-2], To: item.node}
	}

	for _, nb := range neighbors {
		cur := Arc{From: item.node, To: nb}

		// Evaluate the two-edge-window cost of stepping to nb.
		step, werr := r.weight(r.g, prev, cur)
		if werr != nil {
			return werr
		}
		ncost := item.cost + step

		// If a path to nb at most this costly is already enqueued, a cheaper
		// or equal route was found before; do not push.
		var h float64
		if entry, ok := r.enqueued[nb]; ok {
			if entry.cost <= ncost {
				continue
			}
			h = entry.h // heuristic computed once per vertex per search
		} else {
			h = r.heuristic(nb, r.target)
		}
		r.enqueued[nb] = enqueuedEntry{cost: ncost, h: h}

		// Push with a fresh sequence number and the extended path.
		path := make([]string, len(item.path)+1)
		copy(path, item.path)
		path[len(item.path)] = nb

		r.seq++
		heap.Push(&r.pq, &frontierItem{
			priority: ncost + h,
			seq:      r.seq,
			node:     nb,
			cost:     ncost,
			parent:   item.node,
			path:     path,
		})
	}

	return nil
}

// reconstruct walks finalized parents from the target's parent back to the
// source (whose parent marker is ""), then reverses the collected sequence.
// Terminates because parents are recorded once, at finalization, and always
// point at an earlier-finalized vertex.
func (r *runner) reconstruct(target, parent string) []string {
	path := []string{target}
	for node := parent; node != ""; node = r.explored[node] {
		path = append(path, node)
	}
	// Reverse in place: collected target..source, want source..target.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
