package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

var (
	knightOffsets = []int{
		chess.Offset(2, 1), chess.Offset(1, 2), chess.Offset(-2, 1), chess.Offset(-1, 2),
		chess.Offset(2, -1), chess.Offset(1, -2), chess.Offset(-2, -1), chess.Offset(-1, -2),
	}
	kingOffsets = []int{
		chess.Offset(-1, -1), chess.Offset(-1, 0), chess.Offset(-1, 1), chess.Offset(0, -1),
		chess.Offset(0, 1), chess.Offset(1, -1), chess.Offset(1, 0), chess.Offset(1, 1),
	}
	bishopVectors = []int{
		chess.Offset(1, 1), chess.Offset(-1, 1), chess.Offset(1, -1), chess.Offset(-1, -1),
	}
	rookVectors = []int{
		chess.Offset(1, 0), chess.Offset(0, 1), chess.Offset(-1, 0), chess.Offset(0, -1),
	}
	slideVectors = map[chess.PieceType][]int{
		chess.Bishop: bishopVectors,
		chess.Rook:   rookVectors,
		chess.Queen:  append(append([]int{}, bishopVectors...), rookVectors...),
	}
)

// CandidateMoves returns the geometric moves of piece on b. The moves are
// not checked for leaving the own king attacked, and castling is not
// included; see Player.
func CandidateMoves(b *Board, piece chess.Piece) []Move {
	return appendCandidateMoves(nil, b, piece)
}

// appendCandidateMoves dispatches on the piece type.
func appendCandidateMoves(moves []Move, b *Board, piece chess.Piece) []Move {
	if piece.Type.IsSlider() {
		return appendSlideMoves(moves, b, piece, slideVectors[piece.Type])
	}
	switch piece.Type {
	case chess.Pawn:
		return appendPawnMoves(moves, b, piece)
	case chess.Knight:
		return appendJumpMoves(moves, b, piece, knightOffsets, 2)
	case chess.King:
		return appendJumpMoves(moves, b, piece, kingOffsets, 1)
	}
	return moves
}

// appendJumpMoves generates single-step moves to each offset. maxFiles bounds
// the file distance an offset may cover without wrapping around the board.
func appendJumpMoves(moves []Move, b *Board, piece chess.Piece, offsets []int, maxFiles int) []Move {
	for _, offset := range offsets {
		dest := piece.Square.Add(offset)
		if !dest.IsValid() || piece.Square.WrapsFile(maxFiles, offset) {
			continue
		}
		target, occupied := b.PieceAt(dest)
		switch {
		case !occupied:
			moves = append(moves, NewQuietMove(b, piece, dest))
		case target.Colour != piece.Colour:
			moves = append(moves, NewCapture(b, piece, dest, target))
		}
	}
	return moves
}
