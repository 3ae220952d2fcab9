package digraph

// tarjanFrame is one level of the explicit work-stack Tarjan's
// algorithm uses here instead of recursion, so SCC decomposition never
// blows the call stack on graphs with long chains.
type tarjanFrame struct {
	v   int
	nxt int
}

// tarjanState holds the bookkeeping Tarjan's algorithm needs across the
// whole decomposition.
type tarjanState struct {
	index   []int
	lowlink []int
	onStack []bool
	stack   []int // the "SCC accumulation" stack, distinct from the work-stack
	counter int
	sccs    [][]int
}

const unindexed = -1

// SCCs decomposes the non-deleted vertices of g into strongly connected
// components via an iterative Tarjan's algorithm (explicit work-stack of
// (vertex, next-edge-index) frames, per the substrate's no-recursion
// requirement). Singleton components without a self-loop are not part
// of any cycle.
//
// Complexity: O(V+E).
func (g *Graph) SCCs() [][]int {
	st := &tarjanState{
		index:   make([]int, g.n),
		lowlink: make([]int, g.n),
		onStack: make([]bool, g.n),
	}
	for i := range st.index {
		st.index[i] = unindexed
	}

	for v := 0; v < g.n; v++ {
		if g.deleted[v] || st.index[v] != unindexed {
			continue
		}
		g.strongConnect(v, st)
	}
	return st.sccs
}

func (g *Graph) strongConnect(root int, st *tarjanState) {
	work := []tarjanFrame{{v: root, nxt: 0}}
	st.index[root] = st.counter
	st.lowlink[root] = st.counter
	st.counter++
	st.stack = append(st.stack, root)
	st.onStack[root] = true

	for len(work) > 0 {
		top := &work[len(work)-1]
		adj := g.adj[top.v]

		if top.nxt < len(adj) {
			w := adj[top.nxt]
			top.nxt++
			switch {
			case st.index[w] == unindexed:
				st.index[w] = st.counter
				st.lowlink[w] = st.counter
				st.counter++
				st.stack = append(st.stack, w)
				st.onStack[w] = true
				work = append(work, tarjanFrame{v: w, nxt: 0})
			case st.onStack[w]:
				if st.index[w] < st.lowlink[top.v] {
					st.lowlink[top.v] = st.index[w]
				}
			}
			continue
		}

		// All out-edges of top.v explored: pop and propagate lowlink to
		// the caller, then emit an SCC if top.v is its own root.
		v := top.v
		work = work[:len(work)-1]
		if len(work) > 0 {
			parent := &work[len(work)-1]
			if st.lowlink[v] < st.lowlink[parent.v] {
				st.lowlink[parent.v] = st.lowlink[v]
			}
		}
		if st.lowlink[v] == st.index[v] {
			var scc []int
			for {
				n := len(st.stack) - 1
				w := st.stack[n]
				st.stack = st.stack[:n]
				st.onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			st.sccs = append(st.sccs, scc)
		}
	}
}

// NonTrivialSCCs returns only the SCCs that can participate in a cycle:
// every SCC of size >= 2, plus singleton SCCs that are self-loops.
func (g *Graph) NonTrivialSCCs() [][]int {
	sccs := g.SCCs()
	out := make([][]int, 0, len(sccs))
	for _, scc := range sccs {
		if len(scc) >= 2 || (len(scc) == 1 && g.IsSelfLoop(scc[0])) {
			out = append(out, scc)
		}
	}
	return out
}
