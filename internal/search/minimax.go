package search

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MiniMax searches the full tree without pruning.
type MiniMax struct {
	options
}

// NewMiniMax creates a minimax strategy.
func NewMiniMax(opts ...Option) *MiniMax {
	return &MiniMax{options: newOptions(opts)}
}

// String implements fmt.Stringer.
func (m *MiniMax) String() string { return "MiniMax" }

// Execute implements Strategy.
func (m *MiniMax) Execute(b *engine.Board, depth int) engine.Move {
	return m.Search(b, depth).Move
}

// Search implements Strategy.
func (m *MiniMax) Search(b *engine.Board, depth int) Result {
	r, _ := m.SearchContext(context.Background(), b, depth)
	return r
}

// SearchContext implements Strategy.
func (m *MiniMax) SearchContext(ctx context.Context, b *engine.Board, depth int) (Result, error) {
	return run(ctx, m.options, m.String(), b, depth, func(depth int, w *walk) (engine.Move, float64) {
		return searchRoot(b, depth, b.CurrentPlayer().LegalMoves(), m.evaluator, w,
			func(child *engine.Board, depth int, _, _ float64) float64 {
				return m.minimax(child, depth, w)
			})
	})
}

// Value implements TreeSearcher.
func (m *MiniMax) Value(b *engine.Board, depth int) (float64, Stats) {
	v, stats, _ := m.ValueContext(context.Background(), b, depth)
	return v, stats
}

// ValueContext implements TreeSearcher.
func (m *MiniMax) ValueContext(ctx context.Context, b *engine.Board, depth int) (float64, Stats, error) {
	w := newWalk(ctx)
	v := m.minimax(b, depth, w)
	return v, w.Stats, w.err
}

func (m *MiniMax) minimax(b *engine.Board, depth int, w *walk) float64 {
	if b.ToMove().IsWhite() {
		return m.max(b, depth, w)
	}
	return m.min(b, depth, w)
}

func (m *MiniMax) min(b *engine.Board, depth int, w *walk) float64 {
	if !w.visit() {
		return 0
	}
	if isTerminal(b, depth) {
		return m.evaluator.Evaluate(b, depth)
	}
	player := b.CurrentPlayer()
	lowest := unboundedScore
	for _, move := range player.LegalMoves() {
		t := player.MakeMove(move)
		if !t.Status.IsDone() {
			continue
		}
		v := m.max(t.Board, depth-1, w)
		if w.stopped() {
			return 0
		}
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}

func (m *MiniMax) max(b *engine.Board, depth int, w *walk) float64 {
	if !w.visit() {
		return 0
	}
	if isTerminal(b, depth) {
		return m.evaluator.Evaluate(b, depth)
	}
	player := b.CurrentPlayer()
	highest := -unboundedScore
	for _, move := range player.LegalMoves() {
		t := player.MakeMove(move)
		if !t.Status.IsDone() {
			continue
		}
		v := m.min(t.Board, depth-1, w)
		if w.stopped() {
			return 0
		}
		if v > highest {
			highest = v
		}
	}
	return highest
}
