package search

import (
	"context"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Iterative deepening limits.
const (
	MaxIterativeDepth = 49
	DefaultTimeBudget = 2500 * time.Millisecond
)

// IterativeDeepening searches b at depth 1, 2, ... up to maxDepth and
// returns the deepest completed result. A new depth is only started while
// the budget has not elapsed, so the total time may exceed the budget by one
// iteration. Ending ctx abandons the running iteration. maxDepth below one
// means MaxIterativeDepth and a zero budget means no time limit. The error
// is ctx.Err() when not even depth 1 completed.
func IterativeDeepening(ctx context.Context, s Strategy, b *engine.Board, maxDepth int, budget time.Duration, opts ...Option) (Result, error) {
	o := newOptions(opts)
	if maxDepth < 1 {
		maxDepth = MaxIterativeDepth
	}

	start := time.Now()
	var best Result
	var total Stats
	for depth := 1; depth <= maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			if depth == 1 {
				return Result{Move: engine.NullMove}, err
			}
			break
		}
		if budget > 0 && depth > 1 && time.Since(start) >= budget {
			break
		}

		r, err := s.SearchContext(ctx, b, depth)
		total.Add(r.Stats)
		if err != nil {
			if depth == 1 {
				return Result{Move: engine.NullMove, Stats: total}, err
			}
			o.logf(2, "depth %d: %v", depth, err)
			break
		}
		best = r
		o.logf(2, "depth %d: %s", depth, r)

		if !r.Found() {
			break
		}
	}

	best.Stats = total
	best.Elapsed = time.Since(start)
	return best, nil
}
