package solver

// Config aggregates every tunable named by the module's external solve
// interface, following the Config-with-DefaultConfig idiom of
// backtrack.Config.
type Config struct {
	UseCrossAnalysis      bool
	UseAdvancedHeuristics bool
	UseParallel           bool
	UseBacktracking       bool
	BacktrackingDepth     int
	BacktrackingMaxStates int
	UseNakedSingles       bool
	UseHiddenSingles      bool
	Verbose               bool
	MaxIterations         int
}

// DefaultConfig enables every deduction technique with the reference
// implementation's tuned limits.
func DefaultConfig() Config {
	return Config{
		UseCrossAnalysis:      true,
		UseAdvancedHeuristics: true,
		UseParallel:           true,
		UseBacktracking:       true,
		BacktrackingDepth:     50,
		BacktrackingMaxStates: 100000,
		UseNakedSingles:       true,
		UseHiddenSingles:      true,
		MaxIterations:         1000,
	}
}
