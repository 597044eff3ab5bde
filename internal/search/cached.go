package search

import (
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// CachedEvaluator memoises another evaluator by Zobrist key and depth.
type CachedEvaluator struct {
	inner Evaluator
	cache *hashing.EvalCache
}

// NewCachedEvaluator wraps inner with a cache of at most capacity entries.
// A capacity of 0 means unlimited.
func NewCachedEvaluator(inner Evaluator, capacity int) *CachedEvaluator {
	return &CachedEvaluator{inner: inner, cache: hashing.NewEvalCache(capacity)}
}

// Evaluate implements Evaluator.
func (c *CachedEvaluator) Evaluate(b *engine.Board, depth int) float64 {
	key := hashing.GenerateZobristHash(b)
	if score, ok := c.cache.Get(key, depth); ok {
		return score
	}
	score := c.inner.Evaluate(b, depth)
	c.cache.Put(key, depth, score)
	return score
}

// Cache exposes the underlying cache for statistics.
func (c *CachedEvaluator) Cache() *hashing.EvalCache {
	return c.cache
}
