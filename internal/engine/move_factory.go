package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// CreateMove returns the first legal move on b from origin to dest, or
// NullMove when there is none. For a promotion square the first match is the
// queen promotion; callers wanting another piece re-wrap it with
// NewPromotion before calling Player.MakeMove.
func CreateMove(b *Board, origin, dest chess.Square) Move {
	for _, m := range b.AllLegalMoves() {
		if m.Origin() == origin && m.Destination() == dest {
			return m
		}
	}
	return NullMove
}

// CreateMoveUCI looks up a move given in long algebraic form ("g1f3",
// "e7e8n"). Unknown moves return NullMove and an error matching
// errors.ErrIllegalMove.
func CreateMoveUCI(b *Board, text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NullMove, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text}
	}
	origin, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return NullMove, &errors.MoveError{Err: err, Move: text}
	}
	dest, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return NullMove, &errors.MoveError{Err: err, Move: text}
	}

	m := CreateMove(b, origin, dest)
	if m.IsNull() {
		return NullMove, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text}
	}
	if len(text) == 5 {
		kind := chess.PieceTypeFromLetter(text[4])
		if !m.IsPromotion() || kind == chess.NoPieceType || kind == chess.Pawn || kind == chess.King {
			return NullMove, &errors.MoveError{
				Err:  fmt.Errorf("bad promotion piece %q: %w", text[4], errors.ErrIllegalMove),
				Move: text,
			}
		}
		m = NewPromotion(m, kind)
	} else if m.IsPromotion() {
		return NullMove, &errors.MoveError{
			Err:  fmt.Errorf("promotion piece required: %w", errors.ErrIllegalMove),
			Move: text,
		}
	}
	return m, nil
}
