package digraph

// Star describes a vertex and every partner it forms a 2-cycle (PIE
// edge) with: Vertex -> Partners[i] and Partners[i] -> Vertex are both
// present.
type Star struct {
	Vertex   int
	Partners []int
}

// Stars returns every vertex with at least one 2-cycle partner,
// ascending by Vertex. Each Partners list is ascending (adj is
// ascending, so scanning it in order preserves the order).
//
// Complexity: O(sum(deg(v)) · log deg) — for each out-neighbor we binary
// search the reverse direction.
func (g *Graph) Stars() []Star {
	var out []Star
	for v := 0; v < g.n; v++ {
		if g.deleted[v] {
			continue
		}
		var partners []int
		for _, u := range g.adj[v] {
			if u != v && g.HasArc(u, v) {
				partners = append(partners, u)
			}
		}
		if len(partners) > 0 {
			out = append(out, Star{Vertex: v, Partners: partners})
		}
	}
	return out
}
