package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Zobrist keys for pieces, castling, en passant and side to move.
var (
	zobristPiece     [2][chess.NumPieceTypes][chess.NumSquares]uint64
	zobristCastle    [16]uint64 // indexed by castling availability bits
	zobristEnPassant [chess.BoardFiles]uint64
	zobristSide      uint64 // XORed in when Black is to move
)

func init() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for colour := range zobristPiece {
		for kind := range zobristPiece[colour] {
			for sq := range zobristPiece[colour][kind] {
				zobristPiece[colour][kind][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// GenerateZobristHash computes the Zobrist key of b from its piece
// placement, side to move, castling availability and en-passant file. Two
// boards with equal keys generate the same moves and evaluate the same.
func GenerateZobristHash(b *engine.Board) uint64 {
	var key uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range b.Pieces(colour) {
			key ^= zobristPiece[p.Colour][p.Type][p.Square]
		}
	}
	if b.ToMove() == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[castlingBits(b)]
	if target := engine.EnPassantTarget(b); target.IsValid() {
		key ^= zobristEnPassant[target.File()]
	}
	return key
}

// castlingBits packs the castling field into four bits: K, Q, k, q.
func castlingBits(b *engine.Board) int {
	bits := 0
	for _, c := range engine.CastlingRights(b) {
		switch c {
		case 'K':
			bits |= 1
		case 'Q':
			bits |= 2
		case 'k':
			bits |= 4
		case 'q':
			bits |= 8
		}
	}
	return bits
}
