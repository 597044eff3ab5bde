package search

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Parallel scores each completing root move on its own worker with a
// full-window search by the inner strategy. The first move with the best
// score in generation order wins, so the choice matches a sequential
// minimax search.
type Parallel struct {
	options
	inner   TreeSearcher
	workers int
}

// NewParallel creates a parallel root search over inner. workers below one
// means a single worker.
func NewParallel(inner TreeSearcher, workers int, opts ...Option) *Parallel {
	if workers < 1 {
		workers = 1
	}
	return &Parallel{options: newOptions(opts), inner: inner, workers: workers}
}

// String implements fmt.Stringer.
func (p *Parallel) String() string {
	return fmt.Sprintf("Parallel(%s, %d workers)", p.inner, p.workers)
}

// Execute implements Strategy.
func (p *Parallel) Execute(b *engine.Board, depth int) engine.Move {
	return p.Search(b, depth).Move
}

// Search implements Strategy.
func (p *Parallel) Search(b *engine.Board, depth int) Result {
	r, _ := p.SearchContext(context.Background(), b, depth)
	return r
}

// Value implements TreeSearcher.
func (p *Parallel) Value(b *engine.Board, depth int) (float64, Stats) {
	return p.inner.Value(b, depth)
}

// ValueContext implements TreeSearcher.
func (p *Parallel) ValueContext(ctx context.Context, b *engine.Board, depth int) (float64, Stats, error) {
	return p.inner.ValueContext(ctx, b, depth)
}

// SearchContext implements Strategy. When ctx ends, root moves not yet
// started are skipped, running ones stop, and ctx.Err() is returned with a
// null move.
func (p *Parallel) SearchContext(ctx context.Context, b *engine.Board, depth int) (Result, error) {
	depth = clampDepth(depth)
	p.logf(1, "%s thinking with depth %d (%s)", b.CurrentPlayer(), depth, p)
	start := time.Now()

	player := b.CurrentPlayer()
	var items []worker.WorkItem
	for _, m := range player.LegalMoves() {
		if t := player.MakeMove(m); t.Status.IsDone() {
			items = append(items, worker.WorkItem{Index: len(items), Board: t.Board, Move: m, Depth: depth - 1})
		}
	}

	r := Result{Move: engine.NullMove, Depth: depth, Stats: Stats{Nodes: 1}}
	if len(items) == 0 {
		r.Score, _ = p.inner.Value(b, depth)
		r.Elapsed = time.Since(start)
		return r, nil
	}

	score := func(item worker.WorkItem) worker.ProcessResult { return p.scoreItem(ctx, item) }
	results, err := worker.Run(ctx, items, score, worker.WithWorkers(p.workers))
	if err != nil {
		r.Elapsed = time.Since(start)
		return r, err
	}

	white := player.Colour().IsWhite()
	for i, res := range results {
		r.Stats.Add(Stats{Nodes: res.Nodes, Cutoffs: res.Cutoffs})
		if i == 0 || (white && res.Score > r.Score) || (!white && res.Score < r.Score) {
			r.Move, r.Score = res.Move, res.Score
		}
	}
	r.Elapsed = time.Since(start)
	p.logf(1, "%s chose %s", player, r)
	return r, nil
}

func (p *Parallel) scoreItem(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	v, stats, err := p.inner.ValueContext(ctx, item.Board, item.Depth)
	return worker.ProcessResult{
		Index:   item.Index,
		Move:    item.Move,
		Score:   v,
		Nodes:   stats.Nodes,
		Cutoffs: stats.Cutoffs,
		Err:     err,
	}
}
