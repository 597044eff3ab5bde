package config

import "github.com/hashicorp/go-multierror"

// PlayConfig holds settings for engine self-play.
type PlayConfig struct {
	// Plies is the maximum number of half-moves to play; 0 disables
	// self-play
	Plies int

	// RepetitionLimit is the occurrence count that draws a game
	RepetitionLimit int

	// Event and Site are written to the game record
	Event string
	Site  string
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Plies:           0,
		RepetitionLimit: 3,
		Event:           "Engine self-play",
		Site:            "?",
	}
}

// Validate checks the self-play settings.
func (c PlayConfig) Validate() error {
	var result *multierror.Error
	if c.Plies < 0 {
		result = multierror.Append(result, invalid("plies %d must not be negative", c.Plies))
	}
	if c.RepetitionLimit < 2 {
		result = multierror.Append(result, invalid("repetition limit %d must be at least 2", c.RepetitionLimit))
	}
	return result.ErrorOrNil()
}
