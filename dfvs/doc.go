// Package dfvs drives the end-to-end computation of a Directed
// Feedback Vertex Set for an already parsed graph: reduce, decompose into strongly
// connected components, solve each non-trivial component exactly (or
// heuristically, for the bounded-runtime entry point), and concatenate
// the results with whatever reduction already forced.
package dfvs
