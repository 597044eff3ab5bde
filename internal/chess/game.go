package chess

import "time"

// Game results as written in the Result tag.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// MoveRecord is one half-move of a played game together with the search
// statistics that produced it.
type MoveRecord struct {
	SAN     string        // display form, e.g. "Nf3" or "e8=Q"
	UCI     string        // long algebraic form, e.g. "g1f3"
	Score   float64       // evaluation reported by the search
	Nodes   int           // positions visited
	Depth   int           // completed search depth
	Elapsed time.Duration // search time
}

// Game represents a played game with tags and moves.
type Game struct {
	// Tags for this game (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// The move list of the game.
	Moves []MoveRecord
}

// NewGame creates a new empty game with an unfinished result.
func NewGame() *Game {
	g := &Game{Tags: make(map[string]string)}
	g.SetTag(ResultTag.String(), Unfinished)
	return g
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	g.ensureTags()
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// ensureTags initializes the Tags map if it is nil.
func (g *Game) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// White returns the White player name.
func (g *Game) White() string {
	return g.GetTag("White")
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.GetTag("Black")
}

// Result returns the game result.
func (g *Game) Result() string {
	return g.GetTag("Result")
}

// FEN returns the FEN string if present.
func (g *Game) FEN() string {
	return g.GetTag("FEN")
}

// PlyCount returns the number of half-moves in the game.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// LastMove returns the last move in the game.
func (g *Game) LastMove() (MoveRecord, bool) {
	if len(g.Moves) == 0 {
		return MoveRecord{}, false
	}
	return g.Moves[len(g.Moves)-1], true
}

// AppendMove adds a move to the end of the game.
func (g *Game) AppendMove(m MoveRecord) {
	g.Moves = append(g.Moves, m)
}

// TotalNodes sums the nodes searched over every move.
func (g *Game) TotalNodes() int {
	total := 0
	for _, m := range g.Moves {
		total += m.Nodes
	}
	return total
}
