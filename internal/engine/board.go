// Package engine provides chess move generation, legality checking and
// immutable board snapshots.
package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Board is an immutable position: 64 tiles, the side to move and the
// en-passant state. Boards are created through a Builder or by executing a
// Move; nothing mutates a Board once it is built, so a Board may be shared
// freely between goroutines.
type Board struct {
	tiles       [chess.NumSquares]*Tile
	whitePieces []chess.Piece
	blackPieces []chess.Piece
	toMove      chess.Colour

	enPassantPawn  chess.Piece
	enPassantRange int

	whitePlayer *Player
	blackPlayer *Player
}

// StartingPosition returns the standard initial position with White to move.
func StartingPosition() *Board {
	b := NewBuilder()
	back := [...]chess.PieceType{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for file, kind := range back {
		b.SetPiece(chess.NewPiece(chess.Black, kind, chess.SquareAt(0, file)))
		b.SetPiece(chess.NewPiece(chess.Black, chess.Pawn, chess.SquareAt(1, file)))
		b.SetPiece(chess.NewPiece(chess.White, chess.Pawn, chess.SquareAt(6, file)))
		b.SetPiece(chess.NewPiece(chess.White, kind, chess.SquareAt(7, file)))
	}
	return b.SetMoveMaker(chess.White).MustBuild()
}

// Tile returns the tile at sq.
func (b *Board) Tile(sq chess.Square) *Tile {
	return b.tiles[sq]
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, bool) {
	t := b.tiles[sq]
	return t.piece, t.occupied
}

// IsOccupied reports whether sq holds a piece.
func (b *Board) IsOccupied(sq chess.Square) bool {
	return b.tiles[sq].occupied
}

// Pieces returns the pieces of the given colour in square order.
// The slice is shared with the board and must not be modified.
func (b *Board) Pieces(colour chess.Colour) []chess.Piece {
	if colour == chess.White {
		return b.whitePieces
	}
	return b.blackPieces
}

// WhitePieces returns White's pieces in square order.
func (b *Board) WhitePieces() []chess.Piece {
	return b.whitePieces
}

// BlackPieces returns Black's pieces in square order.
func (b *Board) BlackPieces() []chess.Piece {
	return b.blackPieces
}

// ToMove returns the colour of the side to move.
func (b *Board) ToMove() chess.Colour {
	return b.toMove
}

// Player returns the player of the given colour.
func (b *Board) Player(colour chess.Colour) *Player {
	if colour == chess.White {
		return b.whitePlayer
	}
	return b.blackPlayer
}

// WhitePlayer returns the White player.
func (b *Board) WhitePlayer() *Player {
	return b.whitePlayer
}

// BlackPlayer returns the Black player.
func (b *Board) BlackPlayer() *Player {
	return b.blackPlayer
}

// CurrentPlayer returns the player whose turn it is.
func (b *Board) CurrentPlayer() *Player {
	return b.Player(b.toMove)
}

// EnPassantPawn returns the pawn that may be captured en passant, if any.
func (b *Board) EnPassantPawn() (chess.Piece, bool) {
	return b.enPassantPawn, !b.enPassantPawn.IsZero()
}

// EnPassantRange returns the number of ranks behind the en-passant pawn that
// remain capturable. It is 1 after an ordinary double push.
func (b *Board) EnPassantRange() int {
	return b.enPassantRange
}

// AllLegalMoves returns the current player's legal moves followed by the
// opponent's.
func (b *Board) AllLegalMoves() []Move {
	current := b.CurrentPlayer().LegalMoves()
	other := b.CurrentPlayer().Opponent().LegalMoves()
	moves := make([]Move, 0, len(current)+len(other))
	moves = append(moves, current...)
	return append(moves, other...)
}

// String renders the board as eight rows of tiles, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for i, t := range b.tiles {
		sb.WriteString(t.String())
		if (i+1)%chess.BoardFiles == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// candidateMoves collects the geometric moves of every piece in pieces.
func (b *Board) candidateMoves(pieces []chess.Piece) []Move {
	moves := make([]Move, 0, 48)
	for _, p := range pieces {
		moves = appendCandidateMoves(moves, b, p)
	}
	return moves
}
