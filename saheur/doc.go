// Package saheur implements the heuristic solver's two simulated
// annealing encodings:
//
//   - Topo (SA-topo): anneals over a partial linear ordering of
//     vertices; unplaced vertices constitute the current DFVS
//     candidate.
//   - HittingSet (SA-hs): anneals over a 0/1 assignment to a fixed set
//     of hitting-set variables and constraints, repairing any
//     constraint broken by a flip with a greedy set-cover step.
//
// Both use a deterministic math/rand stream (see rng.go); the default
// seed 0 selects a fixed internal seed so runs reproduce exactly, per
// the solver's reproducibility requirement. Both also accept an optional wall-clock
// Deadline, checked sparsely (every 4096 moves) so the overhead of
// time.Now stays negligible against the hot annealing loop.
//
// Both encodings track their "movable" set (unplaced vertices for
// Topo, on-variables for HittingSet) with a rangeset.RangeSet rather
// than rescanning a slice each move: the inner loop samples a random
// member and tests/updates membership in O(1), independent of how
// large the underlying vertex or variable space is.
package saheur
