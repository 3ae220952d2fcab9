package digraph

import "sort"

// sortedInsert inserts v into the strictly ascending slice s if absent,
// returning the updated slice. O(log n) search, O(n) shift.
func sortedInsert(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// sortedRemove deletes v from the strictly ascending slice s if present,
// returning the updated slice. O(log n) search, O(n) shift.
func sortedRemove(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i >= len(s) || s[i] != v {
		return s
	}
	return append(s[:i], s[i+1:]...)
}

// sortedContains reports whether the ascending slice s holds v.
func sortedContains(s []int, v int) bool {
	i := sort.SearchInts(s, v)
	return i < len(s) && s[i] == v
}

// sortedDifference returns a ascending with every element of b removed,
// assuming both a and b are ascending. Linear in len(a)+len(b).
func sortedDifference(a, b []int) []int {
	if len(b) == 0 {
		return a
	}
	out := a[:0:0]
	i, j := 0, 0
	for i < len(a) {
		if j < len(b) && a[i] == b[j] {
			i++
			j++
			continue
		}
		if j < len(b) && b[j] < a[i] {
			j++
			continue
		}
		out = append(out, a[i])
		i++
	}
	return out
}

// AddArc inserts the arc (u,v), idempotent. Self-loops are permitted.
//
// Complexity: O(log deg) for the binary search, O(deg) for the shift.
func (g *Graph) AddArc(u, v int) {
	g.adj[u] = sortedInsert(g.adj[u], v)
	g.revAdj[v] = sortedInsert(g.revAdj[v], u)
}

// HasArc reports whether the arc (u,v) is present.
func (g *Graph) HasArc(u, v int) bool {
	return sortedContains(g.adj[u], v)
}

// IsTwoCycle reports whether u and v form an undirected edge (both arcs
// present).
func (g *Graph) IsTwoCycle(u, v int) bool {
	return g.HasArc(u, v) && g.HasArc(v, u)
}

// IsSelfLoop reports whether v has an arc to itself.
func (g *Graph) IsSelfLoop(v int) bool {
	return g.HasArc(v, v)
}

// RemoveVertex deletes v: every arc incident to v is removed, and v is
// marked deleted. Panics (precondition violation) if v is already
// deleted — see ErrAlreadyDeleted.
//
// Complexity: O(deg(v) · log deg).
func (g *Graph) RemoveVertex(v int) {
	if g.deleted[v] {
		panic(ErrAlreadyDeleted)
	}
	for _, w := range g.adj[v] {
		if w != v {
			g.revAdj[w] = sortedRemove(g.revAdj[w], v)
		}
	}
	for _, w := range g.revAdj[v] {
		if w != v {
			g.adj[w] = sortedRemove(g.adj[w], v)
		}
	}
	g.adj[v] = nil
	g.revAdj[v] = nil
	g.deleted[v] = true
	g.active--
}

// RemoveVertices deletes every vertex in set, batching the adjacency-list
// updates: each affected neighbor list is updated once via a sorted-set
// difference rather than one removal per incident arc. Preferred over
// repeated RemoveVertex when |set| is large.
//
// Complexity: O(sum of degrees of affected vertices).
func (g *Graph) RemoveVertices(set []int) {
	if len(set) == 0 {
		return
	}
	victims := append([]int(nil), set...)
	sort.Ints(victims)

	affectedOut := map[int]struct{}{}
	affectedIn := map[int]struct{}{}
	for _, v := range victims {
		if g.deleted[v] {
			panic(ErrAlreadyDeleted)
		}
		for _, w := range g.revAdj[v] {
			affectedOut[w] = struct{}{}
		}
		for _, w := range g.adj[v] {
			affectedIn[w] = struct{}{}
		}
	}
	for w := range affectedOut {
		if !sortedContains(victims, w) {
			g.adj[w] = sortedDifference(g.adj[w], victims)
		}
	}
	for w := range affectedIn {
		if !sortedContains(victims, w) {
			g.revAdj[w] = sortedDifference(g.revAdj[w], victims)
		}
	}
	for _, v := range victims {
		g.adj[v] = nil
		g.revAdj[v] = nil
		g.deleted[v] = true
		g.active--
	}
}

// RemoveUndirectedEdges deletes both arcs of every star pair described by
// pairs, where pairs[i] = (v, partners of v forming a 2-cycle with v).
func (g *Graph) RemoveUndirectedEdges(pairs []Star) {
	for _, s := range pairs {
		for _, u := range s.Partners {
			g.adj[s.Vertex] = sortedRemove(g.adj[s.Vertex], u)
			g.revAdj[u] = sortedRemove(g.revAdj[u], s.Vertex)
			g.adj[u] = sortedRemove(g.adj[u], s.Vertex)
			g.revAdj[s.Vertex] = sortedRemove(g.revAdj[s.Vertex], u)
		}
	}
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		n:         g.n,
		adj:       make([][]int, g.n),
		revAdj:    make([][]int, g.n),
		deleted:   append([]bool(nil), g.deleted...),
		forbidden: append([]bool(nil), g.forbidden...),
		active:    g.active,
	}
	for v := 0; v < g.n; v++ {
		if len(g.adj[v]) > 0 {
			out.adj[v] = append([]int(nil), g.adj[v]...)
		}
		if len(g.revAdj[v]) > 0 {
			out.revAdj[v] = append([]int(nil), g.revAdj[v]...)
		}
	}
	return out
}

// InducedSubgraph returns a clone of g restricted to the vertices in
// keep (ascending), with every other vertex's adjacency intersected
// against keep. Vertex ids are preserved (not renumbered) so the caller
// can trace results back to the original graph. Forbidden flags are not
// carried over: the result starts with no vertex forbidden.
func (g *Graph) InducedSubgraph(keep []int) *Graph {
	out := New(g.n)
	keepSet := make([]bool, g.n)
	for _, v := range keep {
		keepSet[v] = true
	}
	for v := 0; v < g.n; v++ {
		if g.deleted[v] || !keepSet[v] {
			out.deleted[v] = true
			out.active--
			continue
		}
		for _, w := range g.adj[v] {
			if keepSet[w] {
				out.adj[v] = append(out.adj[v], w)
			}
		}
		for _, w := range g.revAdj[v] {
			if keepSet[w] {
				out.revAdj[v] = append(out.revAdj[v], w)
			}
		}
	}
	return out
}

// Compress returns a fresh Graph containing only the non-deleted
// vertices of g, renumbered 0..k-1 in ascending order of their original
// id, along with the mapping new id -> original id.
func (g *Graph) Compress() (compressed *Graph, newToOld []int) {
	newToOld = g.ActiveVertices()
	oldToNew := make(map[int]int, len(newToOld))
	for newID, oldID := range newToOld {
		oldToNew[oldID] = newID
	}

	out := New(len(newToOld))
	for newID, oldID := range newToOld {
		for _, oldNbr := range g.adj[oldID] {
			if newNbr, ok := oldToNew[oldNbr]; ok {
				out.adj[newID] = append(out.adj[newID], newNbr)
			}
		}
		for _, oldNbr := range g.revAdj[oldID] {
			if newNbr, ok := oldToNew[oldNbr]; ok {
				out.revAdj[newID] = append(out.revAdj[newID], newNbr)
			}
		}
	}
	return out, newToOld
}
