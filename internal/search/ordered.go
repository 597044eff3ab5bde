package search

import (
	"cmp"
	"slices"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// OrderedAlphaBeta is AlphaBeta with move ordering. Root moves are sorted
// completing moves first, then promotions, checks and captures, then by the
// evaluation of the resulting board. Inner nodes only put captures first.
type OrderedAlphaBeta struct {
	AlphaBeta
}

// NewOrderedAlphaBeta creates an ordered alpha-beta strategy.
func NewOrderedAlphaBeta(opts ...Option) *OrderedAlphaBeta {
	o := &OrderedAlphaBeta{AlphaBeta: AlphaBeta{options: newOptions(opts), name: "OrderedAlphaBeta"}}
	o.rootOrder = o.orderRoot
	o.innerOrder = orderCaptures
	return o
}

// orderCaptures returns moves with captures first, otherwise in
// generation order.
func orderCaptures(moves []engine.Move) []engine.Move {
	sorted := slices.Clone(moves)
	slices.SortStableFunc(sorted, func(x, y engine.Move) int {
		return preferTrue(x.IsCapture(), y.IsCapture())
	})
	return sorted
}

type rootCandidate struct {
	move      engine.Move
	done      bool
	promotion bool
	check     bool
	capture   bool
	score     float64
}

func (o *OrderedAlphaBeta) orderRoot(b *engine.Board, moves []engine.Move) []engine.Move {
	player := b.CurrentPlayer()
	candidates := make([]rootCandidate, len(moves))
	for i, m := range moves {
		c := rootCandidate{move: m}
		if t := player.MakeMove(m); t.Status.IsDone() {
			c.done = true
			c.promotion = m.IsPromotion()
			c.check = t.Board.CurrentPlayer().InCheck()
			c.capture = m.IsCapture()
			c.score = o.evaluator.Evaluate(t.Board, 0)
		}
		candidates[i] = c
	}

	white := player.Colour().IsWhite()
	slices.SortStableFunc(candidates, func(x, y rootCandidate) int {
		return compareRoot(x, y, white)
	})

	sorted := make([]engine.Move, len(candidates))
	for i, c := range candidates {
		sorted[i] = c.move
	}
	return sorted
}

func compareRoot(x, y rootCandidate, white bool) int {
	if c := preferTrue(x.done, y.done); c != 0 || !x.done {
		return c
	}
	if c := preferTrue(x.promotion, y.promotion); c != 0 {
		return c
	}
	if c := preferTrue(x.check, y.check); c != 0 {
		return c
	}
	if c := preferTrue(x.capture, y.capture); c != 0 {
		return c
	}
	if white {
		return cmp.Compare(y.score, x.score)
	}
	return cmp.Compare(x.score, y.score)
}

// preferTrue orders true before false.
func preferTrue(x, y bool) int {
	switch {
	case x == y:
		return 0
	case x:
		return -1
	default:
		return 1
	}
}
