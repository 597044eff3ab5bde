package search

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// AlphaBeta is minimax with fail-soft alpha-beta pruning. It returns the
// same score as MiniMax while visiting fewer boards.
type AlphaBeta struct {
	options
	name string

	// rootOrder and innerOrder reorder move lists before they are searched.
	// nil keeps generation order.
	rootOrder  func(b *engine.Board, moves []engine.Move) []engine.Move
	innerOrder func(moves []engine.Move) []engine.Move
}

// NewAlphaBeta creates an alpha-beta strategy that searches moves in
// generation order.
func NewAlphaBeta(opts ...Option) *AlphaBeta {
	return &AlphaBeta{options: newOptions(opts), name: "AlphaBeta"}
}

// String implements fmt.Stringer.
func (a *AlphaBeta) String() string { return a.name }

// Execute implements Strategy.
func (a *AlphaBeta) Execute(b *engine.Board, depth int) engine.Move {
	return a.Search(b, depth).Move
}

// Search implements Strategy. The root narrows the window with the best
// scores found so far: White's children are searched with alpha set to
// White's best and Black's with beta set to Black's best.
func (a *AlphaBeta) Search(b *engine.Board, depth int) Result {
	r, _ := a.SearchContext(context.Background(), b, depth)
	return r
}

// SearchContext implements Strategy.
func (a *AlphaBeta) SearchContext(ctx context.Context, b *engine.Board, depth int) (Result, error) {
	return run(ctx, a.options, a.name, b, depth, func(depth int, w *walk) (engine.Move, float64) {
		moves := b.CurrentPlayer().LegalMoves()
		if a.rootOrder != nil {
			moves = a.rootOrder(b, moves)
		}
		return searchRoot(b, depth, moves, a.evaluator, w,
			func(child *engine.Board, depth int, highest, lowest float64) float64 {
				return a.alphaBeta(child, depth, highest, lowest, w)
			})
	})
}

// Value implements TreeSearcher with a full window.
func (a *AlphaBeta) Value(b *engine.Board, depth int) (float64, Stats) {
	v, stats, _ := a.ValueContext(context.Background(), b, depth)
	return v, stats
}

// ValueContext implements TreeSearcher with a full window.
func (a *AlphaBeta) ValueContext(ctx context.Context, b *engine.Board, depth int) (float64, Stats, error) {
	w := newWalk(ctx)
	v := a.alphaBeta(b, depth, -unboundedScore, unboundedScore, w)
	return v, w.Stats, w.err
}

func (a *AlphaBeta) alphaBeta(b *engine.Board, depth int, alpha, beta float64, w *walk) float64 {
	if !w.visit() {
		return 0
	}
	if isTerminal(b, depth) {
		return a.evaluator.Evaluate(b, depth)
	}

	player := b.CurrentPlayer()
	moves := player.LegalMoves()
	if a.innerOrder != nil {
		moves = a.innerOrder(moves)
	}

	if player.Colour().IsWhite() {
		highest := -unboundedScore
		for _, m := range moves {
			t := player.MakeMove(m)
			if !t.Status.IsDone() {
				continue
			}
			v := a.alphaBeta(t.Board, depth-1, alpha, beta, w)
			if w.stopped() {
				return 0
			}
			if v > highest {
				highest = v
			}
			if highest >= beta {
				w.Cutoffs++
				break
			}
			if highest > alpha {
				alpha = highest
			}
		}
		return highest
	}

	lowest := unboundedScore
	for _, m := range moves {
		t := player.MakeMove(m)
		if !t.Status.IsDone() {
			continue
		}
		v := a.alphaBeta(t.Board, depth-1, alpha, beta, w)
		if w.stopped() {
			return 0
		}
		if v < lowest {
			lowest = v
		}
		if lowest <= alpha {
			w.Cutoffs++
			break
		}
		if lowest < beta {
			beta = lowest
		}
	}
	return lowest
}
