package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// castleRoute describes one castling option for one colour.
type castleRoute struct {
	kingside bool
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	// squares the king crosses or lands on; none may be attacked
	kingPath []chess.Square
}

var castleRoutes = map[chess.Colour][2]castleRoute{
	chess.White: {
		{kingside: true, kingFrom: 60, kingTo: 62, rookFrom: 63, rookTo: 61, kingPath: []chess.Square{61, 62}},
		{kingside: false, kingFrom: 60, kingTo: 58, rookFrom: 56, rookTo: 59, kingPath: []chess.Square{59, 58}},
	},
	chess.Black: {
		{kingside: true, kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5, kingPath: []chess.Square{5, 6}},
		{kingside: false, kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3, kingPath: []chess.Square{3, 2}},
	},
}

// castlingMoves computes the castles available to the player whose king is
// king. The king and rook must both be unmoved, the squares between them
// empty, the king not in check, and no square on the king's path attacked.
func castlingMoves(b *Board, king chess.Piece, inCheck bool, opponentMoves []Move) []Move {
	if !king.FirstMove || inCheck {
		return nil
	}

	var moves []Move
	for _, route := range castleRoutes[king.Colour] {
		if king.Square != route.kingFrom {
			continue
		}
		rook, ok := b.PieceAt(route.rookFrom)
		if !ok || rook.Type != chess.Rook || rook.Colour != king.Colour || !rook.FirstMove {
			continue
		}
		vector := 1
		if !route.kingside {
			vector = -1
		}
		if !rayClear(b, route.kingFrom, route.rookFrom, vector) {
			continue
		}
		if routeAttacked(b, route, king.Colour.Opposite(), opponentMoves) {
			continue
		}
		if route.kingside {
			moves = append(moves, NewKingsideCastle(b, king, route.kingTo, rook, route.rookTo))
		} else {
			moves = append(moves, NewQueensideCastle(b, king, route.kingTo, rook, route.rookTo))
		}
	}
	return moves
}

// routeAttacked reports whether the opponent attacks any square on the
// king's path, counting pawn diagonals that are not yet captures.
func routeAttacked(b *Board, route castleRoute, opponent chess.Colour, opponentMoves []Move) bool {
	for _, sq := range route.kingPath {
		if isAttacked(sq, opponentMoves) || isPawnThreatened(b, sq, opponent) {
			return true
		}
	}
	return false
}
