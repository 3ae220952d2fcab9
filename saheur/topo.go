package saheur

import (
	"math"
	"time"

	"github.com/katalvlaran/dfvs/digraph"
	"github.com/katalvlaran/dfvs/rangeset"
)

// deadlineCheckMask bounds how often a running loop calls time.Now: once
// every 4096 moves, amortizing the cost of wall-clock polling over a
// batch of moves instead of paying it on every single one.
const deadlineCheckMask = 4095

// TopoConfig bundles the annealing schedule for Topo. Zero value is
// invalid; use DefaultTopoConfig.
type TopoConfig struct {
	InitialTemp   float64   // starting temperature T0
	Alpha         float64   // geometric cooling factor, 0 < Alpha < 1
	SweepsPerTemp int       // inner-loop moves per temperature level, conventionally 5*|V|
	MaxIdleSweeps int       // outer loop stops after this many consecutive non-improving sweeps
	Seed          int64     // RNG seed; 0 selects the deterministic default
	Deadline      time.Time // zero value means no time budget
}

// DefaultTopoConfig returns the schedule used when a caller doesn't
// override it: T0=0.6, alpha=0.99, inner loop 5*n moves, 50 consecutive
// failure sweeps to terminate, seed 0, no deadline.
func DefaultTopoConfig(n int) TopoConfig {
	return TopoConfig{
		InitialTemp:   0.6,
		Alpha:         0.99,
		SweepsPerTemp: 5 * n,
		MaxIdleSweeps: 50,
		Seed:          0,
	}
}

// topoState holds a partial linear ordering of g's active vertices.
// pos[v] == -1 means v is unplaced, i.e. a member of the current DFVS
// candidate. order holds the placed vertices in ascending position.
// unplaced mirrors the unplaced vertices as a RangeSet so the hot
// annealing loop can sample and test membership in O(1) rather than
// rescanning every active vertex each move.
type topoState struct {
	g        *digraph.Graph
	pos      []int
	order    []int
	unplaced *rangeset.RangeSet
}

// newTopoState starts every active vertex unplaced (the initial DFVS
// candidate is the whole vertex set) and greedily inserts each one into
// the order via tryPlace, evicting whatever conflicts. This seeds a
// reasonable starting order instead of ever claiming a cyclic graph
// needs no FVS.
func newTopoState(g *digraph.Graph) *topoState {
	st := &topoState{
		g:        g,
		pos:      make([]int, g.N()),
		unplaced: rangeset.New(g.N()),
	}
	for i := range st.pos {
		st.pos[i] = -1
	}
	for _, v := range g.ActiveVertices() {
		st.unplaced.Insert(v)
	}
	for _, v := range g.ActiveVertices() {
		st.tryPlace(v, st.minTarget(v))
	}
	return st
}

// place inserts v at position idx in the order, shifting later entries
// right by one and updating pos for every shifted vertex.
func (st *topoState) place(v, idx int) {
	st.order = append(st.order, 0)
	copy(st.order[idx+1:], st.order[idx:len(st.order)-1])
	st.order[idx] = v
	for i := idx; i < len(st.order); i++ {
		st.pos[st.order[i]] = i
	}
	st.unplaced.Remove(v)
}

// evict removes v from the order, leaving it unplaced (pos[v] = -1).
func (st *topoState) evict(v int) {
	idx := st.pos[v]
	st.order = append(st.order[:idx], st.order[idx+1:]...)
	st.pos[v] = -1
	for i := idx; i < len(st.order); i++ {
		st.pos[st.order[i]] = i
	}
	st.unplaced.Insert(v)
}

// dfvs returns the current DFVS candidate: every unplaced active
// vertex, in whatever order the backing RangeSet holds them.
func (st *topoState) dfvs() []int {
	return append([]int(nil), st.unplaced.Members()...)
}

// minTarget returns the insertion index that places v immediately
// before its earliest placed out-neighbor (v must precede all
// out-neighbors in a valid topological order); if none are placed, v
// goes at the front.
func (st *topoState) minTarget(v int) int {
	best := len(st.order)
	for _, w := range st.g.OutNeighbors(v) {
		if p := st.pos[w]; p != -1 && p < best {
			best = p
		}
	}
	return best
}

// maxTarget returns the insertion index that places v immediately
// after its latest placed in-neighbor; if none are placed, v goes at
// the back.
func (st *topoState) maxTarget(v int) int {
	best := -1
	for _, w := range st.g.InNeighbors(v) {
		if p := st.pos[w]; p != -1 && p > best {
			best = p
		}
	}
	return best + 1
}

// tryPlace attempts to place v at target, evicting any placed vertex
// that would still conflict with v once inserted there, and returns
// the number of vertices evicted (v's net contribution to the DFVS
// shrinks by evicted-1: v itself leaves the candidate, evicted others
// join it).
func (st *topoState) tryPlace(v, target int) int {
	// Re-derive target against the live order: conflicting placed
	// out-neighbors before target, or in-neighbors at-or-after target,
	// must be evicted first since inserting v there would otherwise
	// violate them.
	var toEvict []int
	shift := 0
	for _, w := range st.g.OutNeighbors(v) {
		if p := st.pos[w]; p != -1 && p < target {
			toEvict = append(toEvict, w)
			shift++
		}
	}
	for _, w := range st.g.InNeighbors(v) {
		if p := st.pos[w]; p != -1 && p >= target {
			toEvict = append(toEvict, w)
		}
	}
	for _, w := range toEvict {
		st.evict(w)
	}
	// Each evicted out-neighbor sat before target, so target moves left
	// by one per eviction to stay at the same point of the order.
	target -= shift
	// Re-clamp target to the shrunk order length.
	if target > len(st.order) {
		target = len(st.order)
	}
	st.place(v, target)
	return len(toEvict)
}

// RunTopo anneals SA-topo over g and returns the best DFVS candidate
// found. g is not mutated.
func RunTopo(g *digraph.Graph, cfg TopoConfig) []int {
	active := g.ActiveVertices()
	if len(active) == 0 {
		return nil
	}

	st := newTopoState(g)
	rng := rngFromSeed(cfg.Seed)

	best := st.dfvs()
	bestLen := len(best)

	temp := cfg.InitialTemp
	idleSweeps := 0
	hasDeadline := !cfg.Deadline.IsZero()
	steps := 0

	for idleSweeps < cfg.MaxIdleSweeps {
		improved := false
		for i := 0; i < cfg.SweepsPerTemp; i++ {
			steps++
			if hasDeadline && steps&deadlineCheckMask == 0 && time.Now().After(cfg.Deadline) {
				return best
			}
			if st.unplaced.Len() == 0 {
				return nil
			}
			v := st.unplaced.At(rng.Intn(st.unplaced.Len()))

			var target int
			if rng.Intn(2) == 0 {
				target = st.minTarget(v)
			} else {
				target = st.maxTarget(v)
			}

			beforeDFVS := st.unplaced.Len()
			evicted := st.tryPlace(v, target)
			afterDFVS := beforeDFVS - 1 + evicted
			delta := afterDFVS - beforeDFVS

			accept := delta <= 0
			if !accept {
				p := math.Exp(-float64(delta) / temp)
				accept = rng.Float64() < p
			}
			if !accept {
				// Undo: evict v again. The neighbors it displaced stay
				// unplaced; they are not put back into the order.
				st.rollbackPlacement(v, target)
			}

			if st.unplaced.Len() < bestLen {
				best = st.dfvs()
				bestLen = len(best)
				improved = true
			}
		}
		temp *= cfg.Alpha
		if improved {
			idleSweeps = 0
		} else {
			idleSweeps++
		}
	}

	return best
}

// rollbackPlacement undoes a just-applied placement of v at target by
// evicting v again. The vertices v's placement displaced remain
// unplaced (back in the DFVS candidate), which is always a feasible
// state; the next sweep simply re-evaluates them as ordinary unplaced
// vertices.
func (st *topoState) rollbackPlacement(v, _ int) {
	if st.pos[v] != -1 {
		st.evict(v)
	}
}
