package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// AttacksOn returns the moves in moves whose destination is sq.
func AttacksOn(sq chess.Square, moves []Move) []Move {
	var attacks []Move
	for _, m := range moves {
		if m.dest == sq {
			attacks = append(attacks, m)
		}
	}
	return attacks
}

// isAttacked reports whether any move in moves lands on sq.
func isAttacked(sq chess.Square, moves []Move) bool {
	return len(AttacksOn(sq, moves)) > 0
}

// isPawnThreatened reports whether a pawn of colour by attacks the empty
// square sq diagonally. Such threats produce no candidate move until a piece
// stands on sq.
func isPawnThreatened(b *Board, sq chess.Square, by chess.Colour) bool {
	for _, diagonal := range pawnCaptures {
		offset := by.Direction() * diagonal
		from := sq.Add(-offset)
		if !from.IsValid() || from.WrapsFile(1, offset) {
			continue
		}
		if p, ok := b.PieceAt(from); ok && p.Type == chess.Pawn && p.Colour == by {
			return true
		}
	}
	return false
}
