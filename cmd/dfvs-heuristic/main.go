// Command dfvs-heuristic reads a graph from stdin in the DIMACS-ish
// wire format and writes a bounded-runtime (near-minimum) Directed
// Feedback Vertex Set to stdout, one 1-indexed vertex per line.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/dfvs/dfvs"
	"github.com/katalvlaran/dfvs/dimacs"
	"github.com/katalvlaran/dfvs/saheur"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	g, err := dimacs.Parse(os.Stdin)
	if err != nil {
		logger.Error("parse failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("parsed graph", slog.Int("vertices", g.N()))

	start := time.Now()
	topo := saheur.DefaultTopoConfig(g.N())
	got := dfvs.SolveHeuristic(g, dfvs.DefaultConfig(), topo)
	logger.Info("heuristic solve complete",
		slog.Int("fvs_size", len(got)),
		slog.Duration("elapsed", time.Since(start)))

	if err := dimacs.Write(os.Stdout, got); err != nil {
		logger.Error("write failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
