package reduction

import (
	"sort"

	"github.com/katalvlaran/dfvs/digraph"
)

// removeSCCSingletons deletes every vertex that forms its own
// strongly-connected component without a self-loop: such a vertex can
// never lie on a cycle. Forbidden vertices (pending ILP constraint
// endpoints, see digraph.Graph.SetForbidden) are left in place: they
// still need to exist as selectable columns even once their own arcs
// no longer put them on any cycle. Returns the number of vertices
// removed.
func removeSCCSingletons(g *digraph.Graph) int {
	removed := 0
	for {
		sccs := g.SCCs()
		var victims []int
		for _, scc := range sccs {
			if len(scc) == 1 && !g.IsSelfLoop(scc[0]) && !g.Forbidden(scc[0]) {
				victims = append(victims, scc[0])
			}
		}
		if len(victims) == 0 {
			return removed
		}
		g.RemoveVertices(victims)
		removed += len(victims)
	}
}

// removeEmptyVertices deletes every non-forbidden vertex with no
// incident arcs at all (see removeSCCSingletons for why forbidden
// vertices are exempt). Returns the number of vertices removed.
func removeEmptyVertices(g *digraph.Graph) int {
	var victims []int
	for _, v := range g.ActiveVertices() {
		if g.OutDegree(v) == 0 && g.InDegree(v) == 0 && !g.Forbidden(v) {
			victims = append(victims, v)
		}
	}
	if len(victims) == 0 {
		return 0
	}
	g.RemoveVertices(victims)
	return len(victims)
}

// contractDegreeOne repeatedly contracts vertices with exactly one
// out-neighbor or exactly one in-neighbor (excluding self-loops and
// forbidden vertices): rerouting their neighbors directly to/from the
// sole target before deleting the vertex. Returns the number of
// vertices contracted.
func contractDegreeOne(g *digraph.Graph) int {
	contracted := 0
	progress := true
	for progress {
		progress = false
		for _, v := range g.ActiveVertices() {
			if g.Forbidden(v) {
				continue
			}
			if g.IsSelfLoop(v) {
				continue
			}
			if g.OutDegree(v) == 1 {
				target := g.OutNeighbors(v)[0]
				if target != v {
					contractOut(g, v, target)
					contracted++
					progress = true
					continue
				}
			}
			if g.InDegree(v) == 1 {
				source := g.InNeighbors(v)[0]
				if source != v {
					contractIn(g, v, source)
					contracted++
					progress = true
				}
			}
		}
	}
	return contracted
}

// contractOut reroutes every in-neighbor of v directly to target, then
// deletes v. Used when v has a single out-neighbor. An in-neighbor that
// is target itself gets a self-loop, keeping the 2-cycle through v.
func contractOut(g *digraph.Graph, v, target int) {
	sources := append([]int(nil), g.InNeighbors(v)...)
	for _, s := range sources {
		if s != v {
			g.AddArc(s, target)
		}
	}
	g.RemoveVertex(v)
}

// contractIn reroutes source directly to every out-neighbor of v, then
// deletes v. Used when v has a single in-neighbor. An out-neighbor that
// is source itself gets a self-loop, keeping the 2-cycle through v.
func contractIn(g *digraph.Graph, v, source int) {
	targets := append([]int(nil), g.OutNeighbors(v)...)
	for _, t := range targets {
		if t != v {
			g.AddArc(source, t)
		}
	}
	g.RemoveVertex(v)
}

// forceSelfLoops finds every vertex with a self-loop, forces it into
// the DFVS, and removes it. Returns the forced vertices in ascending
// discovery order.
func forceSelfLoops(g *digraph.Graph) []int {
	var forced []int
	for _, v := range g.ActiveVertices() {
		if g.IsSelfLoop(v) {
			forced = append(forced, v)
		}
	}
	if len(forced) > 0 {
		g.RemoveVertices(forced)
	}
	return forced
}

// forceTwins groups active vertices by their closed out-neighborhood
// (adj[v] U {v}) and forces every member of a class of size >= 2,
// except when witness is true, in which case one member per class is
// kept as a witness and not forced (the conservative reading of the
// twin-reduction open question).
func forceTwins(g *digraph.Graph, witness bool) []int {
	classes := map[string][]int{}
	order := []string{}
	for _, v := range g.ActiveVertices() {
		closed := append([]int(nil), g.OutNeighbors(v)...)
		closed = append(closed, v)
		sort.Ints(closed)
		key := closedKey(closed)
		if _, ok := classes[key]; !ok {
			order = append(order, key)
		}
		classes[key] = append(classes[key], v)
	}

	var forced []int
	for _, key := range order {
		members := classes[key]
		if len(members) < 2 {
			continue
		}
		sort.Ints(members)
		n := len(members)
		if witness {
			n--
		}
		forced = append(forced, members[:n]...)
	}
	if len(forced) > 0 {
		g.RemoveVertices(forced)
	}
	return forced
}

func closedKey(sorted []int) string {
	// Build a delimiter-separated key; ids are small dense integers so a
	// simple textual join is cheap and collision-free.
	buf := make([]byte, 0, len(sorted)*5)
	for i, v := range sorted {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendInt(buf, v)
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// forceStarDomination forces every vertex v whose star partner set
// exceeds remainingBudget: there is no room left to include all of
// v's 2-cycle partners instead of v itself. Marks forced vertices'
// endpoints forbidden is not needed here (forcing removes them
// outright). Returns the forced vertices.
func forceStarDomination(g *digraph.Graph, remainingBudget int) []int {
	var forced []int
	for _, s := range g.Stars() {
		if len(s.Partners) > remainingBudget {
			forced = append(forced, s.Vertex)
		}
	}
	if len(forced) > 0 {
		sort.Ints(forced)
		g.RemoveVertices(forced)
	}
	return forced
}

// forceFunnels forces every vertex v with out-degree 2 whose both
// out-targets are also in-neighbors of v (a degree-bounded dominance
// argument: v sits on a short cycle through each target, and removing
// either target alone cannot beat removing v).
func forceFunnels(g *digraph.Graph) []int {
	var forced []int
	for _, v := range g.ActiveVertices() {
		out := g.OutNeighbors(v)
		if len(out) != 2 {
			continue
		}
		allBack := true
		for _, t := range out {
			if t == v || !g.HasArc(t, v) {
				allBack = false
				break
			}
		}
		if allBack {
			forced = append(forced, v)
		}
	}
	if len(forced) > 0 {
		g.RemoveVertices(forced)
	}
	return forced
}
