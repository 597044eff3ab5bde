package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(b *Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range b.Pieces(colour) {
			switch p.Type {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}
			if colour == chess.White {
				whitePieces = append(whitePieces, p.Type)
				if p.Type == chess.Bishop {
					whiteBishopOnLight = p.Square.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, p.Type)
				if p.Type == chess.Bishop {
					blackBishopOnLight = p.Square.IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return isMinor(blackPieces[0])
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return isMinor(whitePieces[0])
	}

	// K+B vs K+B with both bishops on the same colour squares
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

func isMinor(kind chess.PieceType) bool {
	return kind == chess.Bishop || kind == chess.Knight
}

// MaterialBalance returns White's material minus Black's, kings excluded.
func MaterialBalance(b *Board) float64 {
	var total float64
	for _, p := range b.WhitePieces() {
		if p.Type != chess.King {
			total += p.Value()
		}
	}
	for _, p := range b.BlackPieces() {
		if p.Type != chess.King {
			total -= p.Value()
		}
	}
	return total
}
