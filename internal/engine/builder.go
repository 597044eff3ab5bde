package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Builder accumulates a sparse piece placement and produces a Board.
type Builder struct {
	pieces         map[chess.Square]chess.Piece
	toMove         chess.Colour
	enPassantPawn  chess.Piece
	enPassantRange int
}

// NewBuilder creates an empty Builder with White to move.
func NewBuilder() *Builder {
	return &Builder{
		pieces: make(map[chess.Square]chess.Piece, 32),
		toMove: chess.White,
	}
}

// SetPiece places p on its square, replacing whatever was there.
func (b *Builder) SetPiece(p chess.Piece) *Builder {
	b.pieces[p.Square] = p
	return b
}

// RemovePiece clears sq.
func (b *Builder) RemovePiece(sq chess.Square) *Builder {
	delete(b.pieces, sq)
	return b
}

// SetMoveMaker sets the side to move.
func (b *Builder) SetMoveMaker(colour chess.Colour) *Builder {
	b.toMove = colour
	return b
}

// SetEnPassantPawn records the pawn that just made a double push and how many
// ranks behind it can be captured into.
func (b *Builder) SetEnPassantPawn(pawn chess.Piece, rng int) *Builder {
	b.enPassantPawn = pawn
	b.enPassantRange = rng
	return b
}

// Build validates the placement and returns the Board. Every problem found is
// reported; a missing king yields an error matching errors.ErrNoKing.
func (b *Builder) Build() (*Board, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	board := &Board{
		toMove:         b.toMove,
		enPassantPawn:  b.enPassantPawn,
		enPassantRange: b.enPassantRange,
	}
	for i := range board.tiles {
		sq := chess.Square(i)
		p := b.pieces[sq]
		board.tiles[i] = newTile(sq, p)
		if p.IsZero() {
			continue
		}
		if p.Colour == chess.White {
			board.whitePieces = append(board.whitePieces, p)
		} else {
			board.blackPieces = append(board.blackPieces, p)
		}
	}

	whiteMoves := board.candidateMoves(board.whitePieces)
	blackMoves := board.candidateMoves(board.blackPieces)
	board.whitePlayer = newPlayer(board, chess.White, whiteMoves, blackMoves)
	board.blackPlayer = newPlayer(board, chess.Black, blackMoves, whiteMoves)
	return board, nil
}

// MustBuild is like Build but panics if the placement is invalid.
func (b *Builder) MustBuild() *Board {
	board, err := b.Build()
	if err != nil {
		panic(errors.Fatal(err))
	}
	return board
}

// validate checks the placement for off-board pieces, king counts and a
// consistent en-passant pawn.
func (b *Builder) validate() error {
	var result *multierror.Error
	kings := map[chess.Colour]int{}

	for sq, p := range b.pieces {
		if !sq.IsValid() {
			result = multierror.Append(result, &errors.BoardError{
				Err:    errors.ErrInvalidBoard,
				Square: fmt.Sprintf("%d", int(sq)),
			})
			continue
		}
		if p.Type <= chess.NoPieceType || p.Type >= chess.NumPieceTypes {
			result = multierror.Append(result, &errors.BoardError{
				Err:    fmt.Errorf("unknown piece type %d: %w", int(p.Type), errors.ErrInvalidBoard),
				Square: sq.String(),
			})
			continue
		}
		if p.Type == chess.King {
			kings[p.Colour]++
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		switch n := kings[colour]; {
		case n == 0:
			result = multierror.Append(result, fmt.Errorf("%s: %w", colour, errors.ErrNoKing))
		case n > 1:
			result = multierror.Append(result, fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidBoard))
		}
	}

	if !b.enPassantPawn.IsZero() {
		if p, ok := b.pieces[b.enPassantPawn.Square]; !ok || p != b.enPassantPawn || p.Type != chess.Pawn {
			result = multierror.Append(result, &errors.BoardError{
				Err:    fmt.Errorf("en-passant pawn not on board: %w", errors.ErrInvalidBoard),
				Square: b.enPassantPawn.Square.String(),
			})
		}
	}

	return result.ErrorOrNil()
}
