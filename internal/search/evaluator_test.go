package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

func TestStandardEvaluator_Symmetric(t *testing.T) {
	e := NewStandardEvaluator()
	assert.InDelta(t, 0, e.Evaluate(engine.StartingPosition(), 0), 1e-9)
	assert.InDelta(t, 0, e.Evaluate(engine.StartingPosition(), 3), 1e-9)
}

func TestStandardEvaluator_Stalemate(t *testing.T) {
	assert.Equal(t, 0.0, NewStandardEvaluator().Evaluate(board(t, stalemateFEN), 2))
}

func TestStandardEvaluator_Checkmate(t *testing.T) {
	b := foolsMate(t)
	e := NewStandardEvaluator()

	assert.InDelta(t, CheckmateBonus*3, checkmate(b.BlackPlayer(), 2), 1e-9)
	assert.Equal(t, 0.0, checkmate(b.WhitePlayer(), 2))
	assert.InDelta(t, CheckBonus, check(b.BlackPlayer()), 1e-9)

	shallow, deep := e.Evaluate(b, 0), e.Evaluate(b, 2)
	assert.Less(t, deep, -700.0)
	assert.Less(t, deep, shallow, "mate with more depth left scores higher for the mating side")
}

func TestStandardEvaluator_MaterialAdvantage(t *testing.T) {
	score := NewStandardEvaluator().Evaluate(board(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1"), 0)
	assert.Greater(t, score, 8.0)
}

func TestEvaluationTerms(t *testing.T) {
	piece := func(kind chess.PieceType, colour chess.Colour, square string) chess.Piece {
		return chess.NewPiece(colour, kind, chess.MustParseSquare(square))
	}

	t.Run("development", func(t *testing.T) {
		tests := []struct {
			name  string
			piece chess.Piece
			want  float64
		}{
			{"centralised knight", piece(chess.Knight, chess.White, "d4"), 3 * DevelopmentBonus},
			{"knight at home", piece(chess.Knight, chess.White, "b1"), DevelopmentBonus},
			{"bishop on the rim", piece(chess.Bishop, chess.Black, "a5"), 2 * DevelopmentBonus},
			{"bishop on second rank", piece(chess.Bishop, chess.White, "c2"), 2 * DevelopmentBonus},
			{"rook ignored", piece(chess.Rook, chess.White, "d4"), 0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.InDelta(t, tt.want, development([]chess.Piece{tt.piece}), 1e-9)
			})
		}
	})

	t.Run("pawn space", func(t *testing.T) {
		white := []chess.Piece{piece(chess.Pawn, chess.White, "e4"), piece(chess.Pawn, chess.White, "a3")}
		black := []chess.Piece{piece(chess.Pawn, chess.Black, "e5"), piece(chess.Pawn, chess.Black, "h7")}
		assert.InDelta(t, 5*PawnSpaceBonus, pawnSpace(chess.White, white), 1e-9)
		assert.InDelta(t, 4*PawnSpaceBonus, pawnSpace(chess.Black, black), 1e-9)
	})

	t.Run("pawn structure", func(t *testing.T) {
		pawns := []chess.Piece{
			piece(chess.Pawn, chess.White, "a2"),
			piece(chess.Pawn, chess.White, "b2"),
			piece(chess.Pawn, chess.White, "b3"),
			piece(chess.Pawn, chess.White, "c2"),
			piece(chess.Pawn, chess.White, "h2"),
		}
		// a*b + b*c = 1*2 + 2*1
		assert.InDelta(t, 4*PawnStructureBonus, pawnStructure(pawns), 1e-9)
	})

	t.Run("mobility ignores the queen", func(t *testing.T) {
		b := board(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
		// King: d2, e2, f2, f1.
		assert.InDelta(t, 4/chess.King.Value()*MobilityBonus, mobility(b.WhitePlayer().LegalMoves()), 1e-9)
	})

	t.Run("material counts kings", func(t *testing.T) {
		b := engine.StartingPosition()
		want := 8*1.0 + 2*3.1 + 2*3.2 + 2*5.0 + 9.0 + 255.0
		assert.InDelta(t, want, material(b.WhitePieces()), 1e-9)
	})
}

func TestCachedEvaluator(t *testing.T) {
	inner := NewStandardEvaluator()
	cached := NewCachedEvaluator(inner, 0)
	b := board(t, midgameFEN)

	first := cached.Evaluate(b, 1)
	second := cached.Evaluate(b, 1)
	assert.InDelta(t, inner.Evaluate(b, 1), first, 1e-9)
	assert.Equal(t, first, second)

	hits, misses := cached.Cache().Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, 1, cached.Cache().Len())
}

func TestCachedEvaluator_SearchAgrees(t *testing.T) {
	b := board(t, midgameFEN)
	plain := NewAlphaBeta().Search(b, 2)
	cached := NewAlphaBeta(WithEvaluator(NewCachedEvaluator(NewStandardEvaluator(), 0))).Search(b, 2)
	assert.InDelta(t, plain.Score, cached.Score, 1e-9)
}
