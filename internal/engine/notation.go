package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// String renders the move for display: "Nf3", "Nxf3", "e4", "exd5",
// "exd6 e.p.", "e8=Q", "O-O" and "O-O-O".
func (m Move) String() string {
	switch m.kind {
	case NullMoveKind:
		return "--"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	case Promotion:
		return m.PawnMove().String() + "=" + string(m.promoteTo.Letter())
	case EnPassant:
		return pawnCaptureString(m) + " e.p."
	}

	if m.piece.Type == chess.Pawn {
		if m.IsCapture() {
			return pawnCaptureString(m)
		}
		return m.dest.String()
	}

	var sb strings.Builder
	sb.WriteByte(m.piece.Type.Letter())
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.dest.String())
	return sb.String()
}

func pawnCaptureString(m Move) string {
	return string(m.piece.Square.FileName()) + "x" + m.dest.String()
}

// UCI renders the move in long algebraic form, e.g. "e2e4", "e1g1" or
// "e7e8q". The null move is "0000".
func (m Move) UCI() string {
	if m.kind == NullMoveKind {
		return "0000"
	}
	s := m.piece.Square.String() + m.dest.String()
	if m.kind == Promotion {
		s += strings.ToLower(string(m.promoteTo.Letter()))
	}
	return s
}
