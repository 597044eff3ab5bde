package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// SearchConfig holds settings for move search.
type SearchConfig struct {
	// Strategy is one of search.Names()
	Strategy string

	// Depth is the search depth in plies, or the maximum depth when
	// TimeBudget is set
	Depth int

	// TimeBudget enables iterative deepening when positive
	TimeBudget time.Duration

	// Workers above one searches root moves in parallel
	Workers int

	// CacheSize enables the evaluation cache when positive
	CacheSize int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Strategy: search.DefaultName,
		Depth:    3,
		Workers:  1,
	}
}

// Validate checks the search settings.
func (c SearchConfig) Validate() error {
	var result *multierror.Error
	if !isStrategy(c.Strategy) {
		result = multierror.Append(result, invalid("unknown strategy %q (want one of %s)",
			c.Strategy, strings.Join(search.Names(), ", ")))
	}
	if c.Depth < 1 || c.Depth > search.MaxIterativeDepth {
		result = multierror.Append(result, invalid("depth %d must be between 1 and %d", c.Depth, search.MaxIterativeDepth))
	}
	if c.TimeBudget < 0 {
		result = multierror.Append(result, invalid("time budget %v must not be negative", c.TimeBudget))
	}
	if c.Workers < 1 {
		result = multierror.Append(result, invalid("workers %d must be at least 1", c.Workers))
	}
	if c.CacheSize < 0 {
		result = multierror.Append(result, invalid("cache size %d must not be negative", c.CacheSize))
	}
	return result.ErrorOrNil()
}

func isStrategy(name string) bool {
	for _, n := range search.Names() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrap(errors.ErrInvalidConfig, fmt.Sprintf(format, args...))
}
