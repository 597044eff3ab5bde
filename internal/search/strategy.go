// Package search picks moves by walking the game tree below a board. Every
// strategy explores only moves that complete, scores leaves with an
// Evaluator and treats White as the maximizing side.
package search

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Strategy names accepted by New.
const (
	MiniMaxName    = "minimax"
	AlphaBetaName  = "alphabeta"
	OrderedName    = "ordered"
	DefaultName    = OrderedName
	unboundedScore = math.MaxFloat64
)

// Strategy chooses a move for the side to move.
type Strategy interface {
	// Execute returns the best move found searching depth plies, or
	// engine.NullMove when no move completes.
	Execute(b *engine.Board, depth int) engine.Move
	// Search is Execute plus the score and search statistics.
	Search(b *engine.Board, depth int) Result
	// SearchContext is Search that stops once ctx ends. An interrupted
	// search returns the null move and ctx.Err().
	SearchContext(ctx context.Context, b *engine.Board, depth int) (Result, error)
	fmt.Stringer
}

// TreeSearcher is a Strategy that can also score a position without
// choosing a move. For d >= 1, Value(b, d) equals the score Search(b, d)
// reports.
type TreeSearcher interface {
	Strategy
	Value(b *engine.Board, depth int) (float64, Stats)
	// ValueContext is Value that stops once ctx ends, returning ctx.Err().
	ValueContext(ctx context.Context, b *engine.Board, depth int) (float64, Stats, error)
}

// Stats counts the work done by one search.
type Stats struct {
	Nodes   int // boards visited, the root included
	Cutoffs int // sibling lists abandoned by pruning
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Cutoffs += other.Cutoffs
}

// cancelCheckInterval is how many boards a search visits between looks at
// its context.
const cancelCheckInterval = 256

// walk is the state of one search: its counters and its context.
type walk struct {
	Stats
	ctx context.Context
	err error
}

func newWalk(ctx context.Context) *walk {
	return &walk{ctx: ctx, err: ctx.Err()}
}

// visit counts a board and reports whether the search may go on.
func (w *walk) visit() bool {
	w.Nodes++
	if w.err == nil && w.Nodes%cancelCheckInterval == 0 {
		w.err = w.ctx.Err()
	}
	return w.err == nil
}

func (w *walk) stopped() bool { return w.err != nil }

// Result describes a finished search.
type Result struct {
	Move    engine.Move
	Score   float64
	Depth   int
	Stats   Stats
	Elapsed time.Duration
}

// Found reports whether the search produced a playable move.
func (r Result) Found() bool {
	return !r.Move.IsNull()
}

// String formats the result for log lines.
func (r Result) String() string {
	if !r.Found() {
		return fmt.Sprintf("no move (score %.2f, depth %d)", r.Score, r.Depth)
	}
	return fmt.Sprintf("%s (score %.2f, depth %d, %d nodes, %d cutoffs, %v)",
		r.Move, r.Score, r.Depth, r.Stats.Nodes, r.Stats.Cutoffs, r.Elapsed.Round(time.Microsecond))
}

// Option configures a strategy.
type Option func(*options)

type options struct {
	evaluator Evaluator
	logger    *log.Logger
	verbosity int
}

// WithEvaluator replaces the StandardEvaluator.
func WithEvaluator(e Evaluator) Option {
	return func(o *options) {
		if e != nil {
			o.evaluator = e
		}
	}
}

// WithLogger sends progress lines to logger. verbosity 1 logs one line
// before and after each search; 2 also logs iterative deepening steps.
func WithLogger(logger *log.Logger, verbosity int) Option {
	return func(o *options) {
		o.logger = logger
		o.verbosity = verbosity
	}
}

func newOptions(opts []Option) options {
	o := options{evaluator: NewStandardEvaluator()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) logf(level int, format string, args ...interface{}) {
	if o.logger != nil && o.verbosity >= level {
		o.logger.Printf(format, args...)
	}
}

// New returns the strategy registered under name.
func New(name string, opts ...Option) (TreeSearcher, error) {
	switch strings.ToLower(name) {
	case MiniMaxName:
		return NewMiniMax(opts...), nil
	case AlphaBetaName:
		return NewAlphaBeta(opts...), nil
	case OrderedName, "":
		return NewOrderedAlphaBeta(opts...), nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown strategy %q", name)
}

// Names lists the strategies New accepts.
func Names() []string {
	return []string{MiniMaxName, AlphaBetaName, OrderedName}
}

// clampDepth treats any depth below one as a one-ply search.
func clampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	return depth
}

// isTerminal reports whether recursion stops at b.
func isTerminal(b *engine.Board, depth int) bool {
	if depth <= 0 {
		return true
	}
	player := b.CurrentPlayer()
	return player.InCheckmate() || player.InStalemate()
}

// childValue scores the board reached by a root move. highest and lowest
// are the best scores seen so far for White and Black.
type childValue func(child *engine.Board, depth int, highest, lowest float64) float64

// searchRoot tries each move in order and keeps the first move reaching the
// best score for the side to move. With no completing move it returns the
// null move and the evaluation of b itself.
func searchRoot(b *engine.Board, depth int, moves []engine.Move, eval Evaluator, w *walk, value childValue) (engine.Move, float64) {
	if !w.visit() {
		return engine.NullMove, 0
	}
	player := b.CurrentPlayer()
	white := player.Colour().IsWhite()

	best := engine.NullMove
	highest, lowest := -unboundedScore, unboundedScore
	for _, m := range moves {
		t := player.MakeMove(m)
		if !t.Status.IsDone() {
			continue
		}
		v := value(t.Board, depth-1, highest, lowest)
		if w.stopped() {
			return engine.NullMove, 0
		}
		if white && v > highest {
			highest, best = v, m
		} else if !white && v < lowest {
			lowest, best = v, m
		}
	}

	switch {
	case best.IsNull():
		return best, eval.Evaluate(b, depth)
	case white:
		return best, highest
	default:
		return best, lowest
	}
}

// run wraps a root search with timing, logging and cancellation.
func run(ctx context.Context, o options, name string, b *engine.Board, depth int, root func(depth int, w *walk) (engine.Move, float64)) (Result, error) {
	depth = clampDepth(depth)
	o.logf(1, "%s thinking with depth %d (%s)", b.CurrentPlayer(), depth, name)

	start := time.Now()
	w := newWalk(ctx)
	move, score := root(depth, w)
	r := Result{Move: move, Score: score, Depth: depth, Stats: w.Stats, Elapsed: time.Since(start)}
	if w.stopped() {
		o.logf(1, "%s stopped after %d nodes: %v", b.CurrentPlayer(), r.Stats.Nodes, w.err)
		return Result{Move: engine.NullMove, Depth: depth, Stats: r.Stats, Elapsed: r.Elapsed}, w.err
	}

	o.logf(1, "%s chose %s", b.CurrentPlayer(), r)
	return r, nil
}
