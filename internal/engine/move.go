package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// MoveKind identifies the variant of a Move.
type MoveKind int

const (
	NullMoveKind MoveKind = iota
	Quiet
	Capture
	DoublePawnPush
	EnPassant
	Promotion
	KingsideCastle
	QueensideCastle
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	names := []string{"Null", "Quiet", "Capture", "DoublePawnPush", "EnPassant", "Promotion", "KingsideCastle", "QueensideCastle"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is one of the eight move variants. It remembers the board it was
// generated on so that it can execute itself; that board takes no part in
// equality.
type Move struct {
	board    *Board
	kind     MoveKind
	piece    chess.Piece
	dest     chess.Square
	captured chess.Piece

	// castling
	rook     chess.Piece
	rookDest chess.Square

	// promotion; captured is set when the wrapped pawn move was a capture
	promoteTo chess.PieceType
}

// NullMove is returned when a move lookup finds nothing. Executing it fails.
var NullMove = Move{kind: NullMoveKind, dest: chess.NoSquare, rookDest: chess.NoSquare}

// NewQuietMove returns a non-capturing single-step or sliding move. Pawn
// single pushes are quiet moves too.
func NewQuietMove(b *Board, piece chess.Piece, dest chess.Square) Move {
	return Move{board: b, kind: Quiet, piece: piece, dest: dest, rookDest: chess.NoSquare}
}

// NewCapture returns a move of piece onto dest taking captured.
func NewCapture(b *Board, piece chess.Piece, dest chess.Square, captured chess.Piece) Move {
	return Move{board: b, kind: Capture, piece: piece, dest: dest, captured: captured, rookDest: chess.NoSquare}
}

// NewDoublePawnPush returns a two-rank pawn advance from its starting rank.
func NewDoublePawnPush(b *Board, pawn chess.Piece, dest chess.Square) Move {
	return Move{board: b, kind: DoublePawnPush, piece: pawn, dest: dest, rookDest: chess.NoSquare}
}

// NewEnPassant returns an en-passant capture of captured, which stands beside
// pawn rather than on dest.
func NewEnPassant(b *Board, pawn chess.Piece, dest chess.Square, captured chess.Piece) Move {
	return Move{board: b, kind: EnPassant, piece: pawn, dest: dest, captured: captured, rookDest: chess.NoSquare}
}

// NewPromotion wraps a pawn move that reaches the last rank with the piece
// type it turns into. Wrapping an existing promotion replaces its choice.
func NewPromotion(pawnMove Move, kind chess.PieceType) Move {
	m := pawnMove
	m.kind = Promotion
	m.promoteTo = kind
	return m
}

// NewKingsideCastle returns the short castle of king with rook.
func NewKingsideCastle(b *Board, king chess.Piece, dest chess.Square, rook chess.Piece, rookDest chess.Square) Move {
	return Move{board: b, kind: KingsideCastle, piece: king, dest: dest, rook: rook, rookDest: rookDest}
}

// NewQueensideCastle returns the long castle of king with rook.
func NewQueensideCastle(b *Board, king chess.Piece, dest chess.Square, rook chess.Piece, rookDest chess.Square) Move {
	return Move{board: b, kind: QueensideCastle, piece: king, dest: dest, rook: rook, rookDest: rookDest}
}

// Kind returns the move variant.
func (m Move) Kind() MoveKind { return m.kind }

// Board returns the board the move was generated on.
func (m Move) Board() *Board { return m.board }

// MovedPiece returns the piece that moves, in its pre-move form.
func (m Move) MovedPiece() chess.Piece { return m.piece }

// Origin returns the square the moved piece starts from.
func (m Move) Origin() chess.Square {
	if m.kind == NullMoveKind {
		return chess.NoSquare
	}
	return m.piece.Square
}

// Destination returns the square the moved piece lands on.
func (m Move) Destination() chess.Square { return m.dest }

// CapturedPiece returns the captured piece; the zero Piece for non-captures.
func (m Move) CapturedPiece() chess.Piece { return m.captured }

// Rook returns the castling rook and its destination.
func (m Move) Rook() (chess.Piece, chess.Square) { return m.rook, m.rookDest }

// PromotionType returns the piece type a promotion produces.
func (m Move) PromotionType() chess.PieceType { return m.promoteTo }

// PromotionPiece returns the piece that appears on the destination square
// after a promotion.
func (m Move) PromotionPiece() chess.Piece {
	if m.kind != Promotion {
		return chess.Piece{}
	}
	return m.piece.MovedTo(m.dest).Promoted(m.promoteTo)
}

// PawnMove returns the pawn move a promotion wraps, or m itself otherwise.
func (m Move) PawnMove() Move {
	if m.kind != Promotion {
		return m
	}
	inner := m
	inner.promoteTo = chess.NoPieceType
	if m.captured.IsZero() {
		inner.kind = Quiet
	} else {
		inner.kind = Capture
	}
	return inner
}

// IsNull reports whether m is the null-move sentinel.
func (m Move) IsNull() bool { return m.kind == NullMoveKind }

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool { return !m.captured.IsZero() }

// IsPawnMove reports whether a pawn moves.
func (m Move) IsPawnMove() bool {
	return m.kind != NullMoveKind && m.piece.Type == chess.Pawn
}

// IsCastle reports whether the move is a castle.
func (m Move) IsCastle() bool {
	return m.kind == KingsideCastle || m.kind == QueensideCastle
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.kind == Promotion }

// IsCheck reports whether playing the move puts the opponent in check. Moves
// that do not complete are never checks.
func (m Move) IsCheck() bool {
	if m.board == nil || m.kind == NullMoveKind {
		return false
	}
	t := m.board.Player(m.piece.Colour).MakeMove(m)
	if !t.Status.IsDone() {
		return false
	}
	return t.Board.Player(m.piece.Colour.Opposite()).InCheck()
}

// Equal reports whether two moves are interchangeable: same variant, piece,
// destination and variant payload, regardless of which board produced them.
func (m Move) Equal(other Move) bool {
	m.board, other.board = nil, nil
	return m == other
}

// landedPiece returns the moved piece in its post-move form.
func (m Move) landedPiece() chess.Piece {
	landed := m.piece.MovedTo(m.dest)
	if m.kind == Promotion {
		landed = landed.Promoted(m.promoteTo)
	}
	return landed
}
