package hashing

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	board1 := engine.StartingPosition()
	board2 := testutil.MustBoard(t, engine.InitialFEN)

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{
			"pawn moved",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		},
		{
			"side to move",
			"4k3/8/8/8/8/8/8/4K2R w - - 0 1",
			"4k3/8/8/8/8/8/8/4K2R b - - 0 1",
		},
		{
			"castling availability",
			"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
			"4k3/8/8/8/8/8/8/4K2R w - - 0 1",
		},
		{
			"en passant file",
			"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq - 0 3",
		},
		{
			"piece colour",
			"4k3/8/8/8/8/8/8/3QK3 w - - 0 1",
			"4k3/8/8/8/8/8/8/3qK3 w - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ha := GenerateZobristHash(testutil.MustBoard(t, tt.a))
			hb := GenerateZobristHash(testutil.MustBoard(t, tt.b))
			if ha == hb {
				t.Errorf("Different positions produced the same hash %x", ha)
			}
		})
	}
}

func TestZobristHashTransposition(t *testing.T) {
	start := engine.StartingPosition()
	viaKnights := testutil.PlayMoves(t, start, "g1f3", "g8f6", "f3g1", "f6g8")

	if GenerateZobristHash(start) != GenerateZobristHash(viaKnights) {
		t.Error("knight shuffle should return to the starting hash")
	}

	a := testutil.PlayMoves(t, start, "e2e3", "e7e6", "d2d3")
	b := testutil.PlayMoves(t, start, "d2d3", "e7e6", "e2e3")
	if GenerateZobristHash(a) != GenerateZobristHash(b) {
		t.Error("move-order transposition should hash equal")
	}
}

func TestZobristHashKingShuffleLosesCastling(t *testing.T) {
	start := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	back := testutil.PlayMoves(t, start, "e1f1", "e8f8", "f1e1", "f8e8")

	if engine.CastlingRights(back) != "" {
		t.Fatalf("CastlingRights() = %q, want none", engine.CastlingRights(back))
	}
	if GenerateZobristHash(start) == GenerateZobristHash(back) {
		t.Error("same placement without castling rights should hash differently")
	}
}

func TestRepetitionDetector(t *testing.T) {
	detector := NewRepetitionDetector(0)
	if detector.Limit() != DefaultRepetitionLimit {
		t.Fatalf("Limit() = %d, want %d", detector.Limit(), DefaultRepetitionLimit)
	}

	b := engine.StartingPosition()
	if got := detector.Add(b); got != 1 {
		t.Errorf("Add(start) = %d, want 1", got)
	}

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for round := 2; round <= 3; round++ {
		for _, m := range shuffle {
			b = testutil.PlayMoves(t, b, m)
			detector.Add(b)
		}
		if got := detector.Count(b); got != round {
			t.Errorf("Count(start) after round %d = %d, want %d", round, got, round)
		}
	}

	if !detector.IsRepetition(b) {
		t.Error("starting position seen three times should be a repetition")
	}
	if detector.Positions() != 9 {
		t.Errorf("Positions() = %d, want 9", detector.Positions())
	}
	if detector.UniqueCount() != 4 {
		t.Errorf("UniqueCount() = %d, want 4", detector.UniqueCount())
	}

	detector.Reset()
	if detector.UniqueCount() != 0 || detector.Positions() != 0 {
		t.Error("Reset() should clear all positions")
	}
	if detector.IsRepetition(b) {
		t.Error("no repetition expected after Reset()")
	}
}

func TestRepetitionDetector_CustomLimit(t *testing.T) {
	detector := NewRepetitionDetector(2)
	b := engine.StartingPosition()
	detector.Add(b)
	if detector.IsRepetition(b) {
		t.Error("one occurrence is not a repetition")
	}
	detector.Add(b)
	if !detector.IsRepetition(b) {
		t.Error("two occurrences should reach a limit of 2")
	}
	if got := detector.Add(nil); got != 0 {
		t.Errorf("Add(nil) = %d, want 0", got)
	}
}
