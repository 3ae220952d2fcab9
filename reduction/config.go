package reduction

// Config tunes which reduction rules are applied and how the twin
// reduction ambiguity is resolved.
type Config struct {
	// TwinWitness controls twin reduction: when true (default), a class
	// of k >= 2 vertices sharing a closed out-neighborhood forces only
	// k-1 of them, keeping one witness — the conservative reading. When
	// false, all k are forced, for comparison against that behavior.
	TwinWitness bool

	// EnableFunnel enables the supplemental funnel rule, in both Reduce
	// and HeuristicReduce: a vertex with out-degree 2 whose both
	// out-targets are also in-neighbors is forced.
	EnableFunnel bool
}

// DefaultConfig is the conservative configuration: twin reduction keeps
// one witness per class, and the funnel rule is enabled.
func DefaultConfig() Config {
	return Config{
		TwinWitness:  true,
		EnableFunnel: true,
	}
}
