package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// homeSquares lists where each non-pawn piece type starts, per colour.
// A piece found on one of its home squares is treated as unmoved.
var homeSquares = map[chess.PieceType][]int{
	chess.Knight: {1, 6},
	chess.Bishop: {2, 5},
	chess.Queen:  {3},
}

// castlingRights records which castling letters a FEN string granted.
type castlingRights struct {
	whiteKing, whiteQueen, blackKing, blackQueen bool
}

func (c castlingRights) any(colour chess.Colour) bool {
	if colour == chess.White {
		return c.whiteKing || c.whiteQueen
	}
	return c.blackKing || c.blackQueen
}

// rook reports whether the rook on sq keeps a castling right.
func (c castlingRights) rook(colour chess.Colour, sq chess.Square) bool {
	switch {
	case colour == chess.White && sq == 63:
		return c.whiteKing
	case colour == chess.White && sq == 56:
		return c.whiteQueen
	case colour == chess.Black && sq == 7:
		return c.blackKing
	case colour == chess.Black && sq == 0:
		return c.blackQueen
	}
	return false
}

// NewBoardFromFEN creates a board from a FEN string. The clock fields are
// accepted but not tracked. First-move flags are derived: pawns on their
// starting rank, kings and rooks from the castling field, and other pieces
// on their home squares count as unmoved.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	var result *multierror.Error
	placement, err := parsePiecePositions(parts[0])
	if err != nil {
		result = multierror.Append(result, err)
	}
	toMove, err := parseSideToMove(parts)
	if err != nil {
		result = multierror.Append(result, err)
	}
	rights, err := parseCastlingRights(parts)
	if err != nil {
		result = multierror.Append(result, err)
	}
	epTarget, err := parseEnPassant(parts)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, &errors.BoardError{Err: err, FEN: fen}
	}

	builder := NewBuilder().SetMoveMaker(toMove)
	for _, p := range placement {
		p.FirstMove = isUnmoved(p, rights)
		builder.SetPiece(p)
	}
	if epTarget != chess.NoSquare {
		pawnColour := toMove.Opposite()
		sq := epTarget.Add(pawnColour.Direction() * chess.BoardFiles)
		for _, p := range placement {
			if p.Square == sq && p.Type == chess.Pawn && p.Colour == pawnColour {
				p.FirstMove = isUnmoved(p, rights)
				builder.SetEnPassantPawn(p, 1)
			}
		}
	}

	board, err := builder.Build()
	if err != nil {
		return nil, &errors.BoardError{Err: fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err), FEN: fen}
	}
	if board.Player(toMove.Opposite()).InCheck() {
		return nil, &errors.BoardError{
			Err: fmt.Errorf("%s to move but %s is in check: %w", toMove, toMove.Opposite(), errors.ErrInvalidFEN),
			FEN: fen,
		}
	}
	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
func MustBoardFromFEN(fen string) *Board {
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// isUnmoved derives the first-move flag of a piece read from FEN.
func isUnmoved(p chess.Piece, rights castlingRights) bool {
	switch p.Type {
	case chess.Pawn:
		return p.Square.Rank() == p.Colour.PawnRank()
	case chess.King:
		return p.Square == chess.SquareAt(p.Colour.BackRank(), 4) && rights.any(p.Colour)
	case chess.Rook:
		return rights.rook(p.Colour, p.Square)
	}
	if p.Square.Rank() != p.Colour.BackRank() {
		return false
	}
	for _, file := range homeSquares[p.Type] {
		if p.Square.File() == file {
			return true
		}
	}
	return false
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) ([]chess.Piece, error) {
	var pieces []chess.Piece
	var result *multierror.Error
	rank, file := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardFiles {
				result = multierror.Append(result, fmt.Errorf("rank %d has %d files: %w", chess.BoardRanks-rank, file, errors.ErrInvalidFEN))
			}
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind := chess.PieceTypeFromLetter(byte(c))
			if kind == chess.NoPieceType || c > unicode.MaxASCII {
				result = multierror.Append(result, fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN))
				file++
				continue
			}
			if file >= chess.BoardFiles || rank >= chess.BoardRanks {
				result = multierror.Append(result, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN))
				file++
				continue
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			pieces = append(pieces, chess.Piece{Colour: colour, Type: kind, Square: chess.SquareAt(rank, file)})
			file++
		}
	}
	if rank != chess.BoardRanks-1 || file != chess.BoardFiles {
		result = multierror.Append(result, fmt.Errorf("placement %q does not cover 8 ranks of 8 files: %w", positions, errors.ErrInvalidFEN))
	}
	return pieces, result.ErrorOrNil()
}

// parseSideToMove parses the side to move field. It defaults to White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (castlingRights, error) {
	var rights castlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.whiteKing = true
		case 'Q':
			rights.whiteQueen = true
		case 'k':
			rights.blackKing = true
		case 'q':
			rights.blackQueen = true
		default:
			return rights, fmt.Errorf("invalid castling right %q: %w", c, errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(parts []string) (chess.Square, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return chess.NoSquare, fmt.Errorf("en passant target: %w: %w", errors.ErrInvalidFEN, err)
	}
	return sq, nil
}

// BoardToFEN converts a board to a FEN string. Castling rights are derived
// from the first-move flags of kings and corner rooks. The clocks are not
// tracked and are always written as "0 1".
func BoardToFEN(b *Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, b)
	sb.WriteByte(' ')
	if b.ToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(CastlingRights(b))
	sb.WriteByte(' ')
	if target := EnPassantTarget(b); target != chess.NoSquare {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, b *Board) {
	for rank := 0; rank < chess.BoardRanks; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardFiles; file++ {
			p, ok := b.PieceAt(chess.SquareAt(rank, file))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardRanks-1 {
			sb.WriteByte('/')
		}
	}
}

// CastlingRights returns the FEN castling field for b, e.g. "KQkq" or "-".
func CastlingRights(b *Board) string {
	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := b.Player(colour).King()
		if !king.FirstMove {
			continue
		}
		for _, route := range castleRoutes[colour] {
			if king.Square != route.kingFrom {
				continue
			}
			rook, ok := b.PieceAt(route.rookFrom)
			if !ok || rook.Type != chess.Rook || rook.Colour != colour || !rook.FirstMove {
				continue
			}
			letter := byte('Q')
			if route.kingside {
				letter = 'K'
			}
			if colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// EnPassantTarget returns the square behind the en-passant pawn, or NoSquare.
func EnPassantTarget(b *Board) chess.Square {
	pawn, ok := b.EnPassantPawn()
	if !ok {
		return chess.NoSquare
	}
	return pawn.Square.Add(-pawn.Colour.Direction() * chess.BoardFiles)
}
