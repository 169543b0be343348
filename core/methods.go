// Package core: high-performance Graph method implementations
//
// This file provides thread-safe, O(1) (amortized) operations for
// vertex and edge management on the Graph type defined in types.go.
// We leverage separate RWMutex locks for vertices (muVert) and
// edges+adjacency (muEdgeAdj) to minimize contention.
// Adjacency is stored as a nested map: adjacencyList[from][to][edgeID] = struct{}{},
// allowing constant-time existence, insertion, and deletion of edges.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	// Acquire write lock on vertices only
	g.muVert.Lock()
	defer g.muVert.Unlock()

	// Check if vertex already present
	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	// Insert new Vertex struct with empty Metadata map
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Initialize adjacencyList entry for this vertex (lazy map-of-maps)
	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	// Acquire read lock on vertices
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if vertex does not exist.
// Complexity: O(E) worst case (scan of incident edges).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	// Lock vertices and edges+adjacency to prevent races
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Verify vertex presence
	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	// Remove all edges where id is either endpoint
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeEdgeFromAdj(g, eid, e)
			delete(g.edges, eid)
		}
	}

	// Remove vertex itself
	delete(g.vertices, id)
	// Cleanup empty adjacency entries
	cleanupAdjacency(g)

	return nil
}

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// options, returning its unique Edge.ID. Missing endpoints are created
// implicitly. Handles parallel edges, loops, and weights per configuration.
// For undirected edges (Directed=false) adjacency is mirrored both ways.
// Per-edge directedness overrides (WithEdgeDirected) are only honored when the
// graph was constructed with WithMixedEdges; attribute options are always
// allowed.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Weight constraint
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	// 3) Loop constraint
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// 4) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 5) Lock everything around edges & adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 6) Multi-edge existence check
	if !g.allowMulti {
		if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 7) Generate a new atomic Edge.ID
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))

	// 8) Construct the Edge with the global default directedness
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	// 9) Apply any per-edge overrides (directedness, attributes)
	for _, opt := range opts {
		opt(e)
	}
	// 10) A directedness override departing from the default requires mixed-mode.
	if e.Directed != g.directed && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	// 11) Store in the global map
	g.edges[eid] = e

	// 12) Insert into nested adjacencyList[from][to][eid]
	g.ensureAdjMap(from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// 13) If this edge is undirected, mirror it for the reverse adjacency
	//     (loops skip the mirror)
	if !e.Directed && from != to {
		g.ensureAdjMap(to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror) from the graph,
// updating both the global map and the nested adjacency maps.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	// Lock edges+adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	// Fetch edge
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)         // delete from global edges map
	removeEdgeFromAdj(g, eid, e) // remove from adjacencyList (both directions if mirrored)
	cleanupAdjacency(g)          // prune empty nested maps

	return nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// For undirected edges the mirrored adjacency makes both orientations match.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	// Check nested map existence and non-emptiness
	if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge points at the live catalog entry; treat it as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeData returns the attribute map associated with the edge joining the
// ordered pair (from, to): a fresh map containing the edge's named attributes
// plus the "weight" key carrying Edge.Weight. The edge's Weight field always
// wins over an attribute stored under the same key.
//
// For undirected edges the mirrored adjacency makes both orientations
// resolve; a directed edge resolves only in its own direction. When multiple
// parallel edges join the pair (multigraph), the one with the
// lexicographically smallest Edge.ID is chosen for determinism — algorithms
// that consider this ambiguity an error must reject multigraphs up front.
//
// Returns ErrEmptyVertexID for empty endpoints and ErrEdgeNotFound if no edge
// joins the pair.
// Complexity: O(p) where p is the number of parallel edges between the pair.
func (g *Graph) EdgeData(from, to string) (map[string]float64, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	inner, ok := g.adjacencyList[from][to]
	if !ok || len(inner) == 0 {
		return nil, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	// Pick the smallest edge ID for a deterministic answer on multigraphs.
	var chosen *Edge
	for eid := range inner {
		e := g.edges[eid]
		// Directed edges appear in the mirror bucket only when undirected,
		// so any entry here is traversable from→to by construction.
		if chosen == nil || e.ID < chosen.ID {
			chosen = e
		}
	}

	data := make(map[string]float64, len(chosen.Attrs)+1)
	for k, v := range chosen.Attrs {
		data[k] = v
	}
	data[WeightAttr] = chosen.Weight

	return data, nil
}

// Neighbors returns all edges incident to vertex 'id'.
// For directed edges, returns outgoing only; for undirected, both directions.
// Result is a slice of *Edge pointers, sorted by Edge.ID for determinism.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Ensure vertex exists
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	// Lock edges+adjacency for reading
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	// Iterate all "to" maps for this vertex
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			// For directed, include only if e.From == id
			if e.Directed && e.From != id {
				continue
			}
			// Append pointer directly: no copying
			out = append(out, e)
		}
	}
	// Sort by ID to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique IDs of all vertices adjacent to id,
// honoring directed, undirected, and per-edge overrides.
// Output is sorted lexicographically for deterministic iteration.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList exposes a flattened map from vertex to incident edge IDs.
// Each slice is sorted for deterministic per-vertex enumeration.
// Complexity: O(V + E)
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		var buf []string
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				buf = append(buf, eid)
			}
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Weighted reports whether the graph treats edge weights as meaningful.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges default to directed.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are
// permitted. Algorithms whose edge-attribute lookup would be ambiguous on
// parallel edges gate on this flag.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Internal helper methods:
////////////////////

// ensureAdjID makes adjacencyList[id] non-nil.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		// Create outer map for "from" key
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap ensures adjacencyList[from][to] is initialized.
func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeEdgeFromAdj deletes eid from both directions if needed.
// Must be called under muEdgeAdj write lock.
func removeEdgeFromAdj(g *Graph, eid string, e *Edge) {
	// from -> to
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	// mirror when undirected
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, eid)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency removes empty nested maps.
// Must be called under muEdgeAdj write lock.
func cleanupAdjacency(g *Graph) {
	for u, m := range g.adjacencyList {
		for v, em := range m {
			if len(em) == 0 {
				delete(m, v)
			}
		}
		if len(m) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
