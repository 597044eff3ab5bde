// Package hashing provides Zobrist keys for boards, threefold-repetition
// detection and a bounded evaluation cache.
package hashing

import (
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// RepetitionDetector counts how often each position occurs in a game.
type RepetitionDetector struct {
	// counts maps Zobrist keys to occurrence counts
	counts map[uint64]int
	// limit is the occurrence count that ends the game
	limit int
	// positions is the number of positions added
	positions int
}

// DefaultRepetitionLimit is the threefold-repetition rule.
const DefaultRepetitionLimit = 3

// NewRepetitionDetector creates a detector that reports repetition once a
// position has occurred limit times. A limit below 2 selects
// DefaultRepetitionLimit.
func NewRepetitionDetector(limit int) *RepetitionDetector {
	if limit < 2 {
		limit = DefaultRepetitionLimit
	}
	return &RepetitionDetector{
		counts: make(map[uint64]int),
		limit:  limit,
	}
}

// Add records b and returns how many times its position has now occurred.
func (d *RepetitionDetector) Add(b *engine.Board) int {
	if b == nil {
		return 0
	}
	key := GenerateZobristHash(b)
	d.counts[key]++
	d.positions++
	return d.counts[key]
}

// Count returns how many times the position of b has been added.
func (d *RepetitionDetector) Count(b *engine.Board) int {
	return d.counts[GenerateZobristHash(b)]
}

// IsRepetition reports whether the position of b has reached the limit.
func (d *RepetitionDetector) IsRepetition(b *engine.Board) bool {
	return d.Count(b) >= d.limit
}

// Limit returns the occurrence count that ends a game.
func (d *RepetitionDetector) Limit() int {
	return d.limit
}

// Positions returns the number of positions added.
func (d *RepetitionDetector) Positions() int {
	return d.positions
}

// UniqueCount returns the number of distinct positions added.
func (d *RepetitionDetector) UniqueCount() int {
	return len(d.counts)
}

// Reset clears all recorded positions.
func (d *RepetitionDetector) Reset() {
	d.counts = make(map[uint64]int)
	d.positions = 0
}
