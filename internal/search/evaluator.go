package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Evaluator scores a position from White's point of view. depth is the
// number of plies still left to search when the position was reached.
// Implementations must be safe for concurrent use.
type Evaluator interface {
	Evaluate(b *engine.Board, depth int) float64
}

// Weights of the standard evaluation terms.
const (
	MobilityBonus      = 0.12
	CheckBonus         = 0.20
	CheckmateBonus     = 255.0
	PawnSpaceBonus     = 0.07
	DevelopmentBonus   = 0.17
	PawnStructureBonus = 0.09
)

// StandardEvaluator sums material, mobility, pawn advancement, minor piece
// development, pawn chains and check bonuses for each side and returns
// White's total minus Black's. A stalemate scores zero.
type StandardEvaluator struct{}

// NewStandardEvaluator returns the default evaluator.
func NewStandardEvaluator() StandardEvaluator {
	return StandardEvaluator{}
}

// Evaluate implements Evaluator.
func (StandardEvaluator) Evaluate(b *engine.Board, depth int) float64 {
	if b.CurrentPlayer().InStalemate() {
		return 0
	}
	return scorePlayer(b.WhitePlayer(), depth) - scorePlayer(b.BlackPlayer(), depth)
}

func scorePlayer(p *engine.Player, depth int) float64 {
	pieces := p.Pieces()
	return material(pieces) +
		mobility(p.LegalMoves()) +
		pawnSpace(p.Colour(), pieces) +
		development(pieces) +
		pawnStructure(pieces) +
		check(p) +
		checkmate(p, depth)
}

func material(pieces []chess.Piece) float64 {
	total := 0.0
	for _, piece := range pieces {
		total += piece.Type.Value()
	}
	return total
}

// mobility rewards moves by cheap pieces. Queen moves are ignored.
func mobility(moves []engine.Move) float64 {
	total := 0.0
	for _, m := range moves {
		kind := m.MovedPiece().Type
		if kind == chess.Queen {
			continue
		}
		total += 1 / kind.Value()
	}
	return total * MobilityBonus
}

// pawnSpace rewards each pawn by the ranks it has advanced from its own
// back rank.
func pawnSpace(colour chess.Colour, pieces []chess.Piece) float64 {
	total := 0.0
	for _, piece := range pieces {
		if piece.Type != chess.Pawn {
			continue
		}
		rank := piece.Square.Rank()
		if colour.IsWhite() {
			total += float64(chess.BoardRanks-1-rank) * PawnSpaceBonus
		} else {
			total += float64(rank) * PawnSpaceBonus
		}
	}
	return total
}

func development(pieces []chess.Piece) float64 {
	total := 0.0
	for _, piece := range pieces {
		if piece.Type != chess.Knight && piece.Type != chess.Bishop {
			continue
		}
		rank, file := piece.Square.Rank(), piece.Square.File()
		if rank > 0 && rank < chess.BoardRanks-1 {
			total += DevelopmentBonus
		}
		if rank > 1 && rank < chess.BoardRanks-2 {
			total += DevelopmentBonus
		}
		if file > 0 && file < chess.BoardFiles-1 {
			total += DevelopmentBonus
		}
	}
	return total
}

// pawnStructure multiplies the pawn counts of neighbouring files.
func pawnStructure(pieces []chess.Piece) float64 {
	var counts [chess.BoardFiles]int
	for _, piece := range pieces {
		if piece.Type == chess.Pawn {
			counts[piece.Square.File()]++
		}
	}
	total := 0
	for f := 0; f < chess.BoardFiles-1; f++ {
		total += counts[f] * counts[f+1]
	}
	return float64(total) * PawnStructureBonus
}

func check(p *engine.Player) float64 {
	if p.Opponent().InCheck() {
		return CheckBonus
	}
	return 0
}

// checkmate grows with the depth left so that shallower mates score higher.
func checkmate(p *engine.Player, depth int) float64 {
	if p.Opponent().InCheckmate() {
		return CheckmateBonus * float64(depth+1)
	}
	return 0
}
