package ilpsolve

import (
	"context"
	"time"

	"github.com/katalvlaran/dfvs/reduction"
	"github.com/katalvlaran/dfvs/saheur"
)

// VCOracle configures the external vertex-cover subprocess this
// solver consults when a residual instance is a pure vertex-cover
// problem. Name=="" disables the oracle entirely, skipping straight
// to the ILP path.
type VCOracle struct {
	Name    string
	Args    []string
	Timeout time.Duration
}

// Config bundles every tunable this package needs: which reduction
// rules run on the residual graph, the VC oracle's invocation, and the
// seed of the SA-hitting-set run used to derive the ILP's warm-start
// bound. Only WarmStart.Seed is read; the schedule itself is always
// saheur.DefaultHSConfig scaled to the model's variable count.
type Config struct {
	Reduction reduction.Config
	Oracle    VCOracle
	WarmStart saheur.HSConfig
	Tolerance float64 // integrality snap threshold, default 0.9995 if zero
}

// DefaultConfig returns the conservative defaults: twin witness kept,
// the funnel rule left off (not proven optimum-preserving), no oracle
// configured (caller must opt in), and seed 0 for the SA-hs warm start.
func DefaultConfig() Config {
	return Config{
		Reduction: reduction.Config{TwinWitness: true, EnableFunnel: false},
		WarmStart: saheur.DefaultHSConfig(0),
		Tolerance: 0.9995,
	}
}

func (c Config) tolerance() float64 {
	if c.Tolerance == 0 {
		return 0.9995
	}
	return c.Tolerance
}

// backgroundIfNil substitutes context.Background when ctx is nil, the
// convention the VC oracle handoff uses so callers that don't care
// about cancellation can pass nil.
func backgroundIfNil(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
