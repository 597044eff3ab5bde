// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// IsWhite reports whether c is White.
func (c Colour) IsWhite() bool {
	return c == White
}

// Direction returns the rank step of a pawn advance: -1 for White, +1 for Black.
// White starts on the high ranks and moves toward rank 0.
func (c Colour) Direction() int {
	if c == White {
		return -1
	}
	return 1
}

// PromotionRank returns the rank on which a pawn of this colour promotes.
func (c Colour) PromotionRank() int {
	if c == White {
		return 0
	}
	return BoardRanks - 1
}

// PawnRank returns the rank pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return BoardRanks - 2
	}
	return 1
}

// BackRank returns the rank the major pieces of this colour start on.
func (c Colour) BackRank() int {
	if c == White {
		return BoardRanks - 1
	}
	return 0
}

// IsPromotionSquare reports whether a pawn of this colour promotes on sq.
func (c Colour) IsPromotionSquare(sq Square) bool {
	return sq.Rank() == c.PromotionRank()
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// PromotionTypes lists the promotion choices in the order moves are generated.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

var pieceValues = [NumPieceTypes]float64{0, 1, 3.1, 3.2, 5, 9, 255}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the material value of the piece type.
func (p PieceType) Value() float64 {
	if p < 0 || p >= NumPieceTypes {
		return 0
	}
	return pieceValues[p]
}

// IsSlider reports whether the piece moves along rays.
func (p PieceType) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// PieceTypeFromLetter converts a piece letter of either case to a type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is an immutable chess piece. Two pieces are equal (==) when their
// colour, type, square and first-move flag all match.
type Piece struct {
	Colour    Colour
	Type      PieceType
	Square    Square
	FirstMove bool
}

// NewPiece returns a piece that has not moved yet.
func NewPiece(colour Colour, kind PieceType, sq Square) Piece {
	return Piece{Colour: colour, Type: kind, Square: sq, FirstMove: true}
}

// MovedTo returns the piece relocated to sq with its first-move flag cleared.
func (p Piece) MovedTo(sq Square) Piece {
	return Piece{Colour: p.Colour, Type: p.Type, Square: sq}
}

// Promoted returns a piece of the given type replacing p on its square.
func (p Piece) Promoted(kind PieceType) Piece {
	return Piece{Colour: p.Colour, Type: kind, Square: p.Square}
}

// Value returns the material value of the piece.
func (p Piece) Value() float64 {
	return p.Type.Value()
}

// IsZero reports whether p is the zero Piece (no piece).
func (p Piece) IsZero() bool {
	return p.Type == NoPieceType
}

// Letter returns the piece letter, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns the letter and square, e.g. "Ng1" or "pe7".
func (p Piece) String() string {
	if p.IsZero() {
		return "-"
	}
	return string(p.Letter()) + p.Square.String()
}
