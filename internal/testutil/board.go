package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Positions used across package tests.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	EndgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	MateInOneFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"
)

// MustBoard parses fen and fails the test if it is invalid.
func MustBoard(t testing.TB, fen string) *engine.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
	}
	return b
}

// PlayMoves plays the given long-algebraic moves from b and returns the final
// board. The test fails if any move does not complete.
func PlayMoves(t testing.TB, b *engine.Board, moves ...string) *engine.Board {
	t.Helper()
	for _, text := range moves {
		m, err := engine.CreateMoveUCI(b, text)
		if err != nil {
			t.Fatalf("CreateMoveUCI(%q) error = %v\n%s", text, err, b)
		}
		transition := b.CurrentPlayer().MakeMove(m)
		if !transition.Status.IsDone() {
			t.Fatalf("MakeMove(%s) status = %v, want DONE\n%s", text, transition.Status, b)
		}
		b = transition.Board
	}
	return b
}

// UCIStrings returns the long-algebraic form of moves, sorted.
func UCIStrings(moves []engine.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	sort.Strings(out)
	return out
}
