package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// appendSlideMoves walks each vector until the board edge or the first
// occupied square. An enemy piece ends the ray with a capture; an own piece
// ends it without one.
func appendSlideMoves(moves []Move, b *Board, piece chess.Piece, vectors []int) []Move {
	for _, vector := range vectors {
		sq := piece.Square
		for {
			if sq.WrapsFile(1, vector) {
				break
			}
			sq = sq.Add(vector)
			if !sq.IsValid() {
				break
			}
			target, occupied := b.PieceAt(sq)
			if !occupied {
				moves = append(moves, NewQuietMove(b, piece, sq))
				continue
			}
			if target.Colour != piece.Colour {
				moves = append(moves, NewCapture(b, piece, sq, target))
			}
			break
		}
	}
	return moves
}

// rayClear reports whether every square strictly between from and to along
// vector is empty. to must lie on the ray.
func rayClear(b *Board, from, to chess.Square, vector int) bool {
	for sq := from.Add(vector); sq != to; sq = sq.Add(vector) {
		if !sq.IsValid() || b.IsOccupied(sq) {
			return false
		}
	}
	return true
}
