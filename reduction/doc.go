// Package reduction implements the kernelization engine: a catalog of
// sound reduction rules applied to a digraph.Graph in a fixed priority
// loop until a full pass makes no change, shrinking the instance while
// recording the vertices forced into every minimum DFVS.
//
// Two entry points coexist, mirroring the two reduction interfaces the
// solver pipeline needs:
//
//   - Reduce applies every rule, including the parameterized star
//     domination rule, and reports infeasibility when the forced set
//     provably exceeds a supplied upper bound. Used inside the exact
//     solver.
//   - HeuristicReduce applies only the rules that are safe without any
//     upper bound (self-loops, sink/source/empty vertices, in/out-1
//     contraction, SCC singletons, the funnel rule) plus twin
//     reduction, and never reports infeasibility.
//
// See rules.go for the individual rule implementations and config.go
// for the Config knobs that resolve the twin-reduction open question.
package reduction
