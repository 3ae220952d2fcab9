// Package digraph implements the mutable directed-graph substrate the
// DFVS solver pipeline runs on: a dense integer vertex space with
// sorted adjacency lists, vertex deletion, cycle detection and
// recovery, strongly-connected-component decomposition, id-preserving
// induced subgraphs, and compression.
//
// Vertices are dense ids in [0,N); N is fixed at construction and
// vertices are never renumbered in place. Compress produces a fresh
// Graph with a mapping back to original ids.
//
// See types.go for the Graph type and its read-only accessors,
// mutate.go for arc/vertex mutation and cloning, cycle.go for
// iterative cycle detection and recovery, scc.go for strongly
// connected component decomposition, and stars.go for 2-cycle
// (undirected edge) discovery.
package digraph
