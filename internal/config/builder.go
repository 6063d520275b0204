package config

import (
	"io"

	"github.com/lgbarn/gochess/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithMode sets the game mode.
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Game.Mode = mode
	return b
}

// WithAIColour sets the side the engine plays.
func (b *ConfigBuilder) WithAIColour(colour chess.Colour) *ConfigBuilder {
	b.cfg.Game.AIColour = colour
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWorkers sets the number of search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithSeed sets the search's random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithEvaluator selects the static evaluation.
func (b *ConfigBuilder) WithEvaluator(kind EvaluatorKind) *ConfigBuilder {
	b.cfg.Search.Evaluator = kind
	return b
}

// WithPGNFile sets the PGN export path.
func (b *ConfigBuilder) WithPGNFile(path string) *ConfigBuilder {
	b.cfg.Output.PGNFile = path
	return b
}

// WithJSONFile sets the snapshot export path.
func (b *ConfigBuilder) WithJSONFile(path string) *ConfigBuilder {
	b.cfg.Output.JSONFile = path
	return b
}

// WithDOTFile sets the search graph export path.
func (b *ConfigBuilder) WithDOTFile(path string) *ConfigBuilder {
	b.cfg.Output.DOTFile = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
