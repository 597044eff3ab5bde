package engine_test

import (
	"math/rand"
	"sort"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// referenceMoves lists the legal moves of fen according to notnil/chess.
func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("notnil.FEN(%q) error = %v", fen, err)
	}
	game := notnil.NewGame(opt)
	var out []string
	for _, m := range game.ValidMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func compareWithReference(t *testing.T, b *engine.Board) {
	t.Helper()
	fen := engine.BoardToFEN(b)
	got := testutil.UCIStrings(b.CurrentPlayer().LegalMovesNoCheck())
	want := referenceMoves(t, fen)
	if len(got) == 0 && len(want) == 0 {
		return
	}
	testutil.AssertEqual(t, got, want)
	if t.Failed() {
		t.Logf("position: %s\n%s", fen, b)
	}
}

func TestLegalMoves_MatchReference(t *testing.T) {
	positions := map[string]string{
		"initial":     engine.InitialFEN,
		"kiwipete":    testutil.KiwipeteFEN,
		"endgame":     testutil.EndgameFEN,
		"mate in one": testutil.MateInOneFEN,
		"promotions":  "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		"en passant":  "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"ep pin":      "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1",
		"middlegame":  "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}

	for name, fen := range positions {
		t.Run(name, func(t *testing.T) {
			compareWithReference(t, testutil.MustBoard(t, fen))
		})
	}
}

func TestRandomGames_MatchReference(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping random playouts in short mode")
	}

	rng := rand.New(rand.NewSource(20))
	for game := 0; game < 6; game++ {
		b := engine.StartingPosition()
		for ply := 0; ply < 60; ply++ {
			compareWithReference(t, b)
			if t.Failed() {
				t.Fatalf("game %d diverged at ply %d", game, ply)
			}
			moves := b.CurrentPlayer().LegalMovesNoCheck()
			if len(moves) == 0 {
				break
			}
			b = b.CurrentPlayer().MakeMove(moves[rng.Intn(len(moves))]).Board
		}
	}
}

func TestPlayMoves_Scholar(t *testing.T) {
	b := testutil.PlayMoves(t, engine.StartingPosition(),
		"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")

	testutil.AssertTrue(t, engine.IsCheckmate(b), "scholar's mate")
	testutil.AssertEqual(t, engine.GameOutcome(b), engine.Checkmate)
	testutil.AssertEqual(t, len(b.CurrentPlayer().LegalMovesNoCheck()), 0)
}
