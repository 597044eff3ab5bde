package engine

import (
	"fmt"
	"slices"
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// MoveStatus is the outcome of Player.MakeMove.
type MoveStatus int

const (
	Done MoveStatus = iota
	Illegal
	LeavesInCheck
)

// String returns the status name.
func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "DONE"
	case Illegal:
		return "ILLEGAL"
	case LeavesInCheck:
		return "LEAVES_IN_CHECK"
	}
	return "UNKNOWN"
}

// IsDone reports whether the move was played.
func (s MoveStatus) IsDone() bool {
	return s == Done
}

// MoveTransition records an attempted move. Board is the resulting position
// when Status is Done and the unchanged source board otherwise.
type MoveTransition struct {
	Board  *Board
	Move   Move
	Status MoveStatus
}

// Player is one side's view of a Board: its legal moves including castling
// and whether its king is in check.
type Player struct {
	board      *Board
	colour     chess.Colour
	king       chess.Piece
	legalMoves []Move
	inCheck    bool

	escapeOnce sync.Once
	hasEscape  bool
}

// newPlayer derives a player from its own and its opponent's candidate
// moves. The board must contain a king of this colour.
func newPlayer(b *Board, colour chess.Colour, own, opponent []Move) *Player {
	p := &Player{board: b, colour: colour, king: findKing(b, colour)}
	p.inCheck = isAttacked(p.king.Square, opponent)

	castles := castlingMoves(b, p.king, p.inCheck, opponent)
	p.legalMoves = append(own[:len(own):len(own)], castles...)
	return p
}

// findKing returns the king of the given colour.
func findKing(b *Board, colour chess.Colour) chess.Piece {
	for _, p := range b.Pieces(colour) {
		if p.Type == chess.King {
			return p
		}
	}
	return chess.Piece{}
}

// Colour returns the player's colour.
func (p *Player) Colour() chess.Colour { return p.colour }

// Board returns the board the player belongs to.
func (p *Player) Board() *Board { return p.board }

// King returns the player's king.
func (p *Player) King() chess.Piece { return p.king }

// Pieces returns the player's pieces.
func (p *Player) Pieces() []chess.Piece { return p.board.Pieces(p.colour) }

// Opponent returns the other player on the same board.
func (p *Player) Opponent() *Player { return p.board.Player(p.colour.Opposite()) }

// LegalMoves returns every candidate move including castling. Moves that
// would leave the king attacked are still present; MakeMove rejects them.
func (p *Player) LegalMoves() []Move { return p.legalMoves }

// LegalMovesNoCheck returns the legal moves that MakeMove completes.
func (p *Player) LegalMovesNoCheck() []Move {
	var moves []Move
	for _, m := range p.legalMoves {
		if p.MakeMove(m).Status.IsDone() {
			moves = append(moves, m)
		}
	}
	return moves
}

// IsMoveLegal reports whether m is one of the player's legal moves.
func (p *Player) IsMoveLegal(m Move) bool {
	return slices.ContainsFunc(p.legalMoves, m.Equal)
}

// InCheck reports whether an opposing candidate move lands on the king.
func (p *Player) InCheck() bool { return p.inCheck }

// InCheckmate reports whether the player is in check with no completing move.
func (p *Player) InCheckmate() bool {
	return p.inCheck && !p.HasEscapeMoves()
}

// InStalemate reports whether the player is not in check but has no
// completing move.
func (p *Player) InStalemate() bool {
	return !p.inCheck && !p.HasEscapeMoves()
}

// HasEscapeMoves reports whether at least one legal move completes. The
// answer is computed once per player.
func (p *Player) HasEscapeMoves() bool {
	p.escapeOnce.Do(func() {
		for _, m := range p.legalMoves {
			if p.MakeMove(m).Status.IsDone() {
				p.hasEscape = true
				return
			}
		}
	})
	return p.hasEscape
}

// MakeMove attempts m. A move outside the legal set is Illegal; a move that
// leaves the player's own king attacked is LeavesInCheck; anything else is
// Done and carries the resulting board. Capturing a king is never legal; it
// only arises on a board whose other side is already in check.
func (p *Player) MakeMove(m Move) MoveTransition {
	if m.captured.Type == chess.King || !p.IsMoveLegal(m) {
		return MoveTransition{Board: p.board, Move: m, Status: Illegal}
	}
	next, err := m.Execute()
	if err != nil {
		// A legal move always yields a board with both kings present.
		panic(fmt.Errorf("executing legal move %s: %w", m, err))
	}
	if next.Player(p.colour).InCheck() {
		return MoveTransition{Board: p.board, Move: m, Status: LeavesInCheck}
	}
	return MoveTransition{Board: next, Move: m, Status: Done}
}

// String returns "White player" or "Black player".
func (p *Player) String() string {
	return p.colour.String() + " player"
}
