package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

func TestMustBoard(t *testing.T) {
	for _, fen := range []string{engine.InitialFEN, KiwipeteFEN, EndgameFEN, MateInOneFEN} {
		b := MustBoard(t, fen)
		AssertEqual(t, engine.BoardToFEN(b), fen)
	}
}

func TestPlayMoves(t *testing.T) {
	b := PlayMoves(t, engine.StartingPosition(), "e2e4", "e7e5", "g1f3")
	AssertEqual(t, engine.BoardToFEN(b), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1")
}

func TestUCIStrings(t *testing.T) {
	b := MustBoard(t, "k7/4P3/8/8/8/8/8/K7 w - - 0 1")
	var promotions []engine.Move
	for _, m := range b.CurrentPlayer().LegalMoves() {
		if m.IsPromotion() {
			promotions = append(promotions, m)
		}
	}
	AssertEqual(t, UCIStrings(promotions), []string{"e7e8b", "e7e8n", "e7e8q", "e7e8r"})
}
