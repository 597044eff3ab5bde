package main

import (
	"context"
	"log"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// runner holds the strategy and evaluator built from a configuration.
type runner struct {
	cfg       *config.Config
	logger    *log.Logger
	opts      []search.Option
	evaluator search.Evaluator
	cache     *search.CachedEvaluator
	strategy  search.Strategy
}

// newRunner builds the configured strategy. A cache wraps the standard
// evaluator and more than one worker wraps the strategy in a parallel root
// search.
func newRunner(cfg *config.Config) (*runner, error) {
	r := &runner{
		cfg:       cfg,
		logger:    log.New(cfg.LogFile, "", 0),
		evaluator: search.NewStandardEvaluator(),
	}
	if cfg.Search.CacheSize > 0 {
		r.cache = search.NewCachedEvaluator(r.evaluator, cfg.Search.CacheSize)
		r.evaluator = r.cache
	}
	r.opts = []search.Option{
		search.WithEvaluator(r.evaluator),
		search.WithLogger(r.logger, cfg.Verbosity),
	}

	s, err := search.New(cfg.Search.Strategy, r.opts...)
	if err != nil {
		return nil, err
	}
	r.strategy = s
	if cfg.Search.Workers > 1 {
		r.strategy = search.NewParallel(s, cfg.Search.Workers, r.opts...)
	}
	return r, nil
}

func (r *runner) logf(level int, format string, args ...interface{}) {
	if r.cfg.Verbosity >= level {
		r.logger.Printf(format, args...)
	}
}

// search runs one search from b: iterative deepening under a time budget,
// otherwise a fixed-depth search. Both stop when ctx ends.
func (r *runner) search(ctx context.Context, b *engine.Board) (search.Result, error) {
	depth := r.cfg.Search.Depth
	if r.cfg.Search.TimeBudget > 0 {
		return search.IterativeDeepening(ctx, r.strategy, b, depth, r.cfg.Search.TimeBudget, r.opts...)
	}
	return r.strategy.SearchContext(ctx, b, depth)
}

// best writes the best move for b.
func (r *runner) best(ctx context.Context, b *engine.Board) error {
	r.logf(1, "%s, depth %d, %s", r.strategy, r.cfg.Search.Depth, budgetLabel(r.cfg.Search.TimeBudget))
	res, err := r.search(ctx, b)
	if err != nil {
		return err
	}
	r.logCache()
	return output.OutputResult(b, res, r.cfg)
}

// logCache reports evaluation cache usage.
func (r *runner) logCache() {
	if r.cache == nil {
		return
	}
	hits, misses := r.cache.Cache().Stats()
	r.logf(1, "cache: %d entries, %d hits, %d misses", r.cache.Cache().Len(), hits, misses)
}
