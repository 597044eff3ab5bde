package engine

// Outcome classifies a position for the side to move.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	InsufficientMaterial
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	}
	return "ongoing"
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(b *Board) bool {
	return b.CurrentPlayer().InCheckmate()
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(b *Board) bool {
	return b.CurrentPlayer().InStalemate()
}

// IsEndGame reports whether the side to move is checkmated or stalemated.
func IsEndGame(b *Board) bool {
	return !b.CurrentPlayer().HasEscapeMoves()
}

// GameOutcome classifies b. Checkmate and stalemate take precedence over
// insufficient material.
func GameOutcome(b *Board) Outcome {
	switch {
	case IsCheckmate(b):
		return Checkmate
	case IsStalemate(b):
		return Stalemate
	case HasInsufficientMaterial(b):
		return InsufficientMaterial
	}
	return Ongoing
}
