package config

// MaxSearchDepth bounds the configurable search depth.
const MaxSearchDepth = 8

// EvaluatorKind selects the static evaluation.
type EvaluatorKind int

const (
	PositionalEval EvaluatorKind = iota
	MaterialEval
)

// SearchConfig holds settings for the move search.
type SearchConfig struct {
	// Depth is the fixed search depth in plies
	Depth int

	// Workers searches root moves in parallel when greater than 1
	Workers int

	// Seed feeds the random fallback choice
	Seed int64

	// Evaluator selects the static evaluation
	Evaluator EvaluatorKind
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   3,
		Workers: 1,
		Seed:    1,
	}
}
