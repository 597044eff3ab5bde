package config

import "fmt"

// OutputFormat selects how results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // human-readable lines
	JSON                     // one JSON document
)

// String returns the format name.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON output
	Format OutputFormat

	// ShowBoard prints the board grid after each search or move
	ShowBoard bool

	// ShowFEN prints the FEN of positions
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:  Text,
		ShowFEN: true,
	}
}

// Validate checks the output settings.
func (c OutputConfig) Validate() error {
	if c.Format != Text && c.Format != JSON {
		return invalid("unknown output format %v", c.Format)
	}
	return nil
}
