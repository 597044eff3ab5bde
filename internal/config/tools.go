package config

import (
	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-engine-go/internal/search"
)

// ToolsConfig holds settings for the diagnostic modes.
type ToolsConfig struct {
	// PerftDepth runs perft divide when positive
	PerftDepth int

	// Verify compares perft counts against the reference generator
	Verify bool

	// BenchRuns runs the search benchmark when positive
	BenchRuns int

	// DotFile receives the search tree in Graphviz format
	DotFile string
}

// NewToolsConfig creates a ToolsConfig with default values.
func NewToolsConfig() *ToolsConfig {
	return &ToolsConfig{}
}

// Validate checks the tool settings.
func (c ToolsConfig) Validate() error {
	var result *multierror.Error
	if c.PerftDepth < 0 {
		result = multierror.Append(result, invalid("perft depth %d must not be negative", c.PerftDepth))
	}
	if c.Verify && c.PerftDepth == 0 {
		result = multierror.Append(result, invalid("verify requires a perft depth"))
	}
	if c.BenchRuns < 0 {
		result = multierror.Append(result, invalid("bench runs %d must not be negative", c.BenchRuns))
	}
	return result.ErrorOrNil()
}

// ValidateTree checks that a tree dump at depth is small enough.
func (c ToolsConfig) ValidateTree(depth int) error {
	if c.DotFile != "" && depth > search.MaxTreeDOTDepth {
		return invalid("tree dump depth %d exceeds %d", depth, search.MaxTreeDOTDepth)
	}
	return nil
}
