// Package ilpsolve computes an exact minimum Directed Feedback Vertex
// Set for a single (typically strongly connected) graph via a
// hitting-set ILP over lazily generated cycle constraints:
//
//  1. Extract undirected edges (2-cycles) as 2-constraints, forbid
//     their endpoints from further reduction removal, strip the
//     undirected arcs, and run safe reductions to a fixed point.
//  2. If every remaining constraint is a pair, hand the residual
//     vertex-cover problem to an external oracle (package vcoracle);
//     accept its answer if it leaves the graph acyclic.
//  3. Otherwise build a 0/1 ILP (one variable per remaining vertex,
//     the residual constraints plus an edge-cycle-cover seed and a
//     heuristic-derived bound), solve it, and iteratively add any
//     cycle the solution still misses until none remain.
package ilpsolve
