package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Execute builds the board that results from playing m. The source board is
// left untouched. The side that moves is the colour of the moved piece, and
// the returned board has the other side to move.
//
// Executing NullMove returns an error matching errors.ErrNullMove.
func (m Move) Execute() (*Board, error) {
	if m.kind == NullMoveKind {
		return nil, errors.Fatal(errors.ErrNullMove)
	}
	if m.board == nil {
		return nil, errors.Fatal(errors.Wrapf(errors.ErrInvalidBoard, "move %s has no board", m))
	}
	if m.kind == Promotion {
		return m.executePromotion()
	}

	mover := m.piece.Colour
	b := NewBuilder().SetMoveMaker(mover.Opposite())
	for _, p := range m.board.Pieces(mover) {
		if p == m.piece || (m.IsCastle() && p == m.rook) {
			continue
		}
		b.SetPiece(p)
	}
	for _, p := range m.board.Pieces(mover.Opposite()) {
		if m.kind == EnPassant && p == m.captured {
			continue
		}
		b.SetPiece(p)
	}

	landed := m.landedPiece()
	b.SetPiece(landed)

	switch m.kind {
	case KingsideCastle, QueensideCastle:
		b.SetPiece(m.rook.MovedTo(m.rookDest))
	case DoublePawnPush:
		b.SetEnPassantPawn(landed, 1)
	}
	return b.Build()
}

// executePromotion plays the wrapped pawn move and then swaps the pawn on the
// last rank for the chosen piece.
func (m Move) executePromotion() (*Board, error) {
	afterPawn, err := m.PawnMove().Execute()
	if err != nil {
		return nil, err
	}

	pawn := m.piece.MovedTo(m.dest)
	b := NewBuilder().SetMoveMaker(afterPawn.ToMove())
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range afterPawn.Pieces(colour) {
			if p == pawn {
				continue
			}
			b.SetPiece(p)
		}
	}
	b.SetPiece(m.landedPiece())
	return b.Build()
}
