package config

import (
	"io"
	"time"
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

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithStrategy sets the search strategy.
func (b *ConfigBuilder) WithStrategy(name string) *ConfigBuilder {
	b.cfg.Search.Strategy = name
	return b
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithTimeBudget enables iterative deepening with the given budget.
func (b *ConfigBuilder) WithTimeBudget(budget time.Duration) *ConfigBuilder {
	b.cfg.Search.TimeBudget = budget
	return b
}

// WithWorkers sets the number of root search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithCacheSize sets the evaluation cache capacity.
func (b *ConfigBuilder) WithCacheSize(size int) *ConfigBuilder {
	b.cfg.Search.CacheSize = size
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else {
		b.cfg.Output.Format = Text
	}
	return b
}

// WithBoard enables printing the board grid.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithSelfPlay enables self-play for up to plies half-moves.
func (b *ConfigBuilder) WithSelfPlay(plies int) *ConfigBuilder {
	b.cfg.Play.Plies = plies
	return b
}

// WithRepetitionLimit sets the repetition count that draws a game.
func (b *ConfigBuilder) WithRepetitionLimit(limit int) *ConfigBuilder {
	b.cfg.Play.RepetitionLimit = limit
	return b
}

// WithPerft enables perft divide, optionally verified.
func (b *ConfigBuilder) WithPerft(depth int, verify bool) *ConfigBuilder {
	b.cfg.Tools.PerftDepth = depth
	b.cfg.Tools.Verify = verify
	return b
}

// WithBench enables the search benchmark.
func (b *ConfigBuilder) WithBench(runs int) *ConfigBuilder {
	b.cfg.Tools.BenchRuns = runs
	return b
}

// WithDotFile writes the search tree to path.
func (b *ConfigBuilder) WithDotFile(path string) *ConfigBuilder {
	b.cfg.Tools.DotFile = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
