// Package lowerbound computes LP-relaxed hitting-set lower bounds on
// the minimum DFVS of a digraph.Graph, via three interchangeable
// constraint sources: the undirected-edge (2-cycle) formulation, a
// greedy DFS-found cycle accumulation, and an edge-cycle cover. All three
// solve the same relaxed covering LP (continuous 0 <= x <= 1, minimize
// sum x) using gonum's simplex solver and return floor(LP).
package lowerbound
