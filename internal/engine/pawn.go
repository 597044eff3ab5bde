package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Pawn offsets relative to the pawn's direction of travel.
var (
	pawnPush       = chess.Offset(1, 0)
	pawnDoublePush = chess.Offset(2, 0)
	pawnCaptures   = [2]int{chess.Offset(1, 1), chess.Offset(1, -1)}
)

// appendPawnMoves generates pushes, captures, en-passant captures and double
// pushes. Moves reaching the promotion rank expand into one promotion per
// piece type.
func appendPawnMoves(moves []Move, b *Board, pawn chess.Piece) []Move {
	dir := pawn.Colour.Direction()

	if push := dir * pawnPush; canStep(pawn.Square, push) {
		dest := pawn.Square.Add(push)
		if !b.IsOccupied(dest) {
			moves = appendMaybePromotion(moves, NewQuietMove(b, pawn, dest))
		}
	}

	for _, diagonal := range pawnCaptures {
		offset := dir * diagonal
		if !canStep(pawn.Square, offset) {
			continue
		}
		dest := pawn.Square.Add(offset)
		if target, occupied := b.PieceAt(dest); occupied {
			if target.Colour != pawn.Colour {
				moves = appendMaybePromotion(moves, NewCapture(b, pawn, dest, target))
			}
			continue
		}
		if victim, ok := enPassantVictim(b, pawn, dest); ok {
			moves = append(moves, NewEnPassant(b, pawn, dest, victim))
		}
	}

	if double := dir * pawnDoublePush; pawn.FirstMove && pawn.Square.Rank() == pawn.Colour.PawnRank() && canStep(pawn.Square, double) {
		dest := pawn.Square.Add(double)
		if !b.IsOccupied(dest) && !b.IsOccupied(pawn.Square.Add(dir*pawnPush)) {
			moves = append(moves, NewDoublePawnPush(b, pawn, dest))
		}
	}
	return moves
}

// canStep reports whether offset from sq stays on the board without
// crossing a side edge.
func canStep(sq chess.Square, offset int) bool {
	return sq.Add(offset).IsValid() && !sq.WrapsFile(1, offset)
}

// appendMaybePromotion appends m, or its four promotions when m reaches the
// promotion rank.
func appendMaybePromotion(moves []Move, m Move) []Move {
	if !m.piece.Colour.IsPromotionSquare(m.dest) {
		return append(moves, m)
	}
	for _, kind := range chess.PromotionTypes {
		moves = append(moves, NewPromotion(m, kind))
	}
	return moves
}

// enPassantVictim returns the opposing en-passant pawn if pawn may capture
// it by moving to the empty square dest. The capturable squares are those
// behind the en-passant pawn, up to the board's en-passant range.
func enPassantVictim(b *Board, pawn chess.Piece, dest chess.Square) (chess.Piece, bool) {
	victim, ok := b.EnPassantPawn()
	if !ok || victim.Colour == pawn.Colour {
		return chess.Piece{}, false
	}
	sq := victim.Square
	for i := 1; i <= b.EnPassantRange(); i++ {
		sq = sq.Add(pawn.Colour.Direction() * chess.BoardFiles)
		if sq == dest {
			return victim, true
		}
	}
	return chess.Piece{}, false
}
