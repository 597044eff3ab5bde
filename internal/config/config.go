// Package config provides configuration for the chess engine CLI.
package config

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity is 0 for nothing, 1 for one line per search, 2 for
	// iterative deepening progress.
	Verbosity int

	// FEN is the starting position; empty means the standard start.
	FEN string

	Search SearchConfig
	Output OutputConfig
	Play   PlayConfig
	Tools  ToolsConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  0,
		Search:     *NewSearchConfig(),
		Output:     *NewOutputConfig(),
		Play:       *NewPlayConfig(),
		Tools:      *NewToolsConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every group and returns all problems at once. Each
// problem wraps errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Verbosity < 0 || c.Verbosity > 2 {
		result = multierror.Append(result, invalid("verbosity %d must be between 0 and 2", c.Verbosity))
	}
	for _, err := range []error{
		c.Search.Validate(),
		c.Output.Validate(),
		c.Play.Validate(),
		c.Tools.Validate(),
		c.Tools.ValidateTree(c.Search.Depth),
	} {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
