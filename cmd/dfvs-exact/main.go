// Command dfvs-exact reads a graph from stdin in the DIMACS-ish wire
// format and writes an exact minimum Directed Feedback Vertex Set to
// stdout, one 1-indexed vertex per line.
//
// An external vertex-cover oracle can be wired in via environment
// variables (DFVS_VC_ORACLE, DFVS_VC_ORACLE_ARGS, DFVS_VC_ORACLE_TIMEOUT)
// since the entry point itself takes no arguments.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/dfvs/dfvs"
	"github.com/katalvlaran/dfvs/dimacs"
	"github.com/katalvlaran/dfvs/ilpsolve"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	g, err := dimacs.Parse(os.Stdin)
	if err != nil {
		logger.Error("parse failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("parsed graph", slog.Int("vertices", g.N()))

	cfg := dfvs.DefaultConfig()
	cfg.Exact.Oracle = oracleFromEnv()
	if cfg.Exact.Oracle.Name != "" {
		logger.Info("vertex-cover oracle configured", slog.String("name", cfg.Exact.Oracle.Name))
	}

	start := time.Now()
	got, err := dfvs.Solve(context.Background(), g, cfg)
	if err != nil {
		logger.Error("exact solve failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("exact solve complete",
		slog.Int("fvs_size", len(got)),
		slog.Duration("elapsed", time.Since(start)))

	if err := dimacs.Write(os.Stdout, got); err != nil {
		logger.Error("write failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func oracleFromEnv() ilpsolve.VCOracle {
	name := os.Getenv("DFVS_VC_ORACLE")
	if name == "" {
		return ilpsolve.VCOracle{}
	}
	var args []string
	if raw := os.Getenv("DFVS_VC_ORACLE_ARGS"); raw != "" {
		args = strings.Fields(raw)
	}
	timeout := 5 * time.Second
	if raw := os.Getenv("DFVS_VC_ORACLE_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		}
	}
	return ilpsolve.VCOracle{Name: name, Args: args, Timeout: timeout}
}
