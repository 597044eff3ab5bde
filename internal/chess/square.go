package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Board dimensions.
const (
	BoardRanks = 8
	BoardFiles = 8
	NumSquares = BoardRanks * BoardFiles
)

// Square is a linear board index in [0,64). Index 0 is a8 and 63 is h1:
// rank 0 is the top of the board as White sees it.
type Square int

// NoSquare marks the absence of a square.
const NoSquare Square = -1

var (
	fileNames = [BoardFiles]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}
	rankNames = [BoardRanks]byte{'8', '7', '6', '5', '4', '3', '2', '1'}
)

// SquareAt returns the square on the given rank and file.
func SquareAt(rank, file int) Square {
	return Square(rank*BoardFiles + file)
}

// Offset returns the linear offset of a (rank, file) displacement.
func Offset(ranks, files int) int {
	return ranks*BoardFiles + files
}

// Rank returns the rank index of the square (0 = top).
func (s Square) Rank() int {
	return int(s) / BoardFiles
}

// File returns the file index of the square (0 = a-file).
func (s Square) File() int {
	f := int(s) % BoardFiles
	if f < 0 {
		f += BoardFiles
	}
	return f
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s >= 0 && s < NumSquares
}

// Add returns the square displaced by offset. The result may be off the board.
func (s Square) Add(offset int) Square {
	return s + Square(offset)
}

// WrapsFile reports whether stepping offset from s jumps more than maxFiles
// files, which means the step crossed the left or right board edge.
func (s Square) WrapsFile(maxFiles, offset int) bool {
	return abs(s.File()-s.Add(offset).File()) > maxFiles
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{fileNames[s.File()], rankNames[s.Rank()]})
}

// FileName returns the file letter of the square.
func (s Square) FileName() byte {
	return fileNames[s.File()]
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.Rank()+s.File())%2 == 0
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return SquareAt(int('8'-rank), int(file-'a')), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
