package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Tile is a single square of a Board, either empty or holding one piece.
type Tile struct {
	square   chess.Square
	piece    chess.Piece
	occupied bool
}

// emptyTiles holds one shared empty tile per square. It is built once and
// never written afterwards.
var emptyTiles = func() [chess.NumSquares]*Tile {
	var tiles [chess.NumSquares]*Tile
	for i := range tiles {
		tiles[i] = &Tile{square: chess.Square(i)}
	}
	return tiles
}()

// EmptyTile returns the shared empty tile for sq.
func EmptyTile(sq chess.Square) *Tile {
	return emptyTiles[sq]
}

// newTile returns the shared empty tile when piece is zero, otherwise a fresh
// occupied tile.
func newTile(sq chess.Square, piece chess.Piece) *Tile {
	if piece.IsZero() {
		return emptyTiles[sq]
	}
	return &Tile{square: sq, piece: piece, occupied: true}
}

// Square returns the tile's coordinate.
func (t *Tile) Square() chess.Square {
	return t.square
}

// IsOccupied reports whether a piece stands on the tile.
func (t *Tile) IsOccupied() bool {
	return t.occupied
}

// Piece returns the piece on the tile; the zero Piece when empty.
func (t *Tile) Piece() chess.Piece {
	return t.piece
}

// String renders the tile as "[ ]" when empty or "[N]"/"[n]" when occupied.
func (t *Tile) String() string {
	if !t.occupied {
		return "[ ]"
	}
	return "[" + string(t.piece.Letter()) + "]"
}
