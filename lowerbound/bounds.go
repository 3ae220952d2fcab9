package lowerbound

import (
	"github.com/katalvlaran/dfvs/constraint"
	"github.com/katalvlaran/dfvs/digraph"
)

// VCLowerBound computes the VC-LP bound: one 0..1 variable per vertex,
// constraint x_u + x_v >= 1 for every undirected edge (2-cycle/star
// pair) in g. Meaningful only when g's cycles are dominated by its
// 2-cycles (a pure-undirected residue).
func VCLowerBound(g *digraph.Graph) int {
	var constraints []constraint.Constraint
	seen := map[[2]int]bool{}
	for _, s := range g.Stars() {
		for _, p := range s.Partners {
			key := [2]int{s.Vertex, p}
			if s.Vertex > p {
				key = [2]int{p, s.Vertex}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			constraints = append(constraints, constraint.AtLeastOne([]int{s.Vertex, p}))
		}
	}
	return solveRelaxation(g.N(), constraints)
}

// CycleLowerBound greedily accumulates up to maxCycles cycles from g as
// constraints (each cycle's variables sum >= 1), then solves
// the relaxation. Cycles are found on a scratch clone: after recording
// a cycle, its first vertex is removed from the clone so the same
// cycle is never rediscovered, guaranteeing progress. Each cycle is the
// first one FindCycleWithFVS's DFS meets, not necessarily a short one.
func CycleLowerBound(g *digraph.Graph, maxCycles int) int {
	work := g.Clone()
	var constraints []constraint.Constraint

	for i := 0; i < maxCycles; i++ {
		cyc := work.FindCycleWithFVS(nil)
		if cyc == nil {
			break
		}
		constraints = append(constraints, constraint.AtLeastOne(cyc))
		work.RemoveVertex(cyc[0])
	}
	return solveRelaxation(g.N(), constraints)
}

// EdgeCycleCoverLowerBound builds a family of cycles that collectively
// covers every arc of g (an edge-cycle cover) and uses those cycles as
// constraints, then solves the relaxation over them.
func EdgeCycleCoverLowerBound(g *digraph.Graph) int {
	return solveRelaxation(g.N(), EdgeCycleCoverConstraints(g))
}

// EdgeCycleCoverConstraints builds the same edge-cycle cover as
// EdgeCycleCoverLowerBound but returns the raw constraints, letting
// the exact ILP builder (package ilpsolve) seed its initial
// constraint set from them rather than recomputing the cover itself.
// For each arc not yet covered, a shortest cycle through it is found
// via BFS back to its tail; arcs on that cycle are marked covered.
// Arcs that lie on no cycle (acyclic bridges) are left uncovered —
// they contribute no constraint, correctly.
func EdgeCycleCoverConstraints(g *digraph.Graph) []constraint.Constraint {
	covered := map[[2]int]bool{}
	var constraints []constraint.Constraint

	for _, u := range g.ActiveVertices() {
		for _, v := range g.OutNeighbors(u) {
			if covered[[2]int{u, v}] {
				continue
			}
			cyc := shortestCycleThroughArc(g, u, v)
			if cyc == nil {
				covered[[2]int{u, v}] = true // no cycle uses this arc
				continue
			}
			constraints = append(constraints, constraint.AtLeastOne(cyc))
			for i := 0; i < len(cyc); i++ {
				a, b := cyc[i], cyc[(i+1)%len(cyc)]
				covered[[2]int{a, b}] = true
			}
		}
	}
	return constraints
}

// shortestCycleThroughArc returns the shortest cycle containing arc
// (u,v) by BFS from v back to u, or nil if no path back exists.
func shortestCycleThroughArc(g *digraph.Graph, u, v int) []int {
	if u == v {
		return []int{u}
	}
	parent := make(map[int]int, g.N())
	parent[v] = -1
	queue := []int{v}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == u {
			var path []int
			for x := cur; x != -1; x = parent[x] {
				path = append(path, x)
			}
			reverse(path)
			return path
		}
		for _, w := range g.OutNeighbors(cur) {
			if _, ok := parent[w]; !ok {
				parent[w] = cur
				queue = append(queue, w)
			}
		}
	}
	return nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
