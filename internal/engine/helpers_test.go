package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}

func mustFEN(t testing.TB, fen string) *Board {
	t.Helper()
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
	}
	return b
}

func mustMove(t testing.TB, b *Board, uci string) Move {
	t.Helper()
	m, err := CreateMoveUCI(b, uci)
	if err != nil {
		t.Fatalf("CreateMoveUCI(%q) error = %v", uci, err)
	}
	return m
}

// play makes each move in turn and fails unless every one completes.
func play(t testing.TB, b *Board, moves ...string) *Board {
	t.Helper()
	for _, uci := range moves {
		transition := b.CurrentPlayer().MakeMove(mustMove(t, b, uci))
		if !transition.Status.IsDone() {
			t.Fatalf("MakeMove(%s) status = %v, want DONE", uci, transition.Status)
		}
		b = transition.Board
	}
	return b
}

func movesFrom(moves []Move, origin chess.Square) []Move {
	var out []Move
	for _, m := range moves {
		if m.Origin() == origin {
			out = append(out, m)
		}
	}
	return out
}

func countKind(moves []Move, kind MoveKind) int {
	n := 0
	for _, m := range moves {
		if m.Kind() == kind {
			n++
		}
	}
	return n
}
