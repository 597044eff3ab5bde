package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const (
	whiteMateInOneFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"
	blackMateInOneFEN = "r5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1"
	stalemateFEN      = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	midgameFEN        = "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"
	endgameFEN        = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

func board(t testing.TB, fen string) *engine.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	require.NoError(t, err)
	return b
}

// foolsMate returns the position after 1.f3 e5 2.g4 Qh4#.
func foolsMate(t testing.TB) *engine.Board {
	t.Helper()
	b := engine.StartingPosition()
	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := engine.CreateMoveUCI(b, text)
		require.NoError(t, err)
		tr := b.CurrentPlayer().MakeMove(m)
		require.True(t, tr.Status.IsDone(), "move %s", text)
		b = tr.Board
	}
	return b
}

func allStrategies() []TreeSearcher {
	return []TreeSearcher{NewMiniMax(), NewAlphaBeta(), NewOrderedAlphaBeta(), NewParallel(NewAlphaBeta(), 4)}
}
