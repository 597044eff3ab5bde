// Package output renders search results, perft counts and self-play game
// records as text or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/perft"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// DefaultLineLength is the movetext wrap width of game records.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game record: one "Name: value" line per tag, a blank
// line, the numbered movetext ending in the result, and the final position
// when the configuration asks for it.
func OutputGame(game *chess.Game, cfg *config.Config) error {
	w := cfg.OutputFile

	outputTags(game, w)
	fmt.Fprintln(w)
	outputMoves(game, w)

	if cfg.Output.ShowFEN || cfg.Output.ShowBoard {
		final, err := replayGame(game)
		if err != nil {
			return err
		}
		if cfg.Output.ShowBoard {
			fmt.Fprint(w, final)
		}
		if cfg.Output.ShowFEN {
			fmt.Fprintf(w, "Final: %s\n", engine.BoardToFEN(final))
		}
	}

	// Blank line between games
	fmt.Fprintln(w)
	return nil
}

// outputTags writes the seven-tag roster, "?" when unset, then the rest.
func outputTags(game *chess.Game, w io.Writer) {
	tags := copyTags(game.Tags)
	for _, name := range chess.OrderedTagNames(tags) {
		fmt.Fprintf(w, "%s: %s\n", name, tags[name])
	}
}

// outputMoves writes the movetext wrapped at DefaultLineLength.
func outputMoves(game *chess.Game, w io.Writer) {
	ow := NewOutputWriter(w, DefaultLineLength)

	moveNum, isWhite := startingMove(game.FEN())
	for i, move := range game.Moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(move.SAN)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	ow.Write(gameResult(game))
	ow.NewLine()
}

// startingMove reads the move number and side to move from a FEN. An empty
// or short FEN means move 1 with White to play.
func startingMove(fen string) (int, bool) {
	fields := strings.Fields(fen)
	moveNum, isWhite := 1, true
	if len(fields) > 1 && fields[1] == "b" {
		isWhite = false
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			moveNum = n
		}
	}
	return moveNum, isWhite
}

// gameResult returns the Result tag, or "*" when it is missing.
func gameResult(game *chess.Game) string {
	if result := game.Result(); result != "" {
		return result
	}
	return chess.Unfinished
}

// initialBoard returns the board a game starts from.
func initialBoard(game *chess.Game) (*engine.Board, error) {
	if fen := game.FEN(); fen != "" {
		return engine.NewBoardFromFEN(fen)
	}
	return engine.StartingPosition(), nil
}

// replayGame plays every recorded move from the initial board and returns
// the final position.
func replayGame(game *chess.Game) (*engine.Board, error) {
	board, err := initialBoard(game)
	if err != nil {
		return nil, err
	}
	for i, rec := range game.Moves {
		m, err := engine.CreateMoveUCI(board, rec.UCI)
		if err != nil {
			return nil, errors.Wrapf(err, "replaying ply %d", i+1)
		}
		t := board.CurrentPlayer().MakeMove(m)
		if !t.Status.IsDone() {
			return nil, &errors.MoveError{Err: errors.ErrIllegalMove, Move: rec.UCI, Ply: i + 1}
		}
		board = t.Board
	}
	return board, nil
}

// OutputResult writes the outcome of one search from b.
func OutputResult(b *engine.Board, r search.Result, cfg *config.Config) error {
	if cfg.Output.Format == config.JSON {
		return encodeJSON(cfg.OutputFile, ResultToJSON(b, r, cfg))
	}

	w := cfg.OutputFile
	if cfg.Output.ShowBoard {
		fmt.Fprint(w, b)
	}
	if cfg.Output.ShowFEN {
		fmt.Fprintf(w, "fen:      %s\n", engine.BoardToFEN(b))
	}
	if r.Found() {
		fmt.Fprintf(w, "bestmove: %s (%s)\n", r.Move, r.Move.UCI())
	} else {
		fmt.Fprintf(w, "bestmove: none (%s)\n", engine.GameOutcome(b))
	}
	fmt.Fprintf(w, "score:    %.2f\n", r.Score)
	fmt.Fprintf(w, "depth:    %d\n", r.Depth)
	fmt.Fprintf(w, "nodes:    %d\n", r.Stats.Nodes)
	fmt.Fprintf(w, "cutoffs:  %d\n", r.Stats.Cutoffs)
	fmt.Fprintf(w, "time:     %v\n", r.Elapsed.Round(time.Microsecond))
	return nil
}

// PerftReport is a divide at one depth, optionally checked against a
// reference move generator.
type PerftReport struct {
	FEN        string
	Depth      int
	Entries    []perft.Entry
	Verified   bool
	Mismatches []perft.Mismatch
	Elapsed    time.Duration
}

// Nodes returns the leaf count over every root move.
func (r PerftReport) Nodes() uint64 {
	return perft.Total(r.Entries)
}

// OutputPerft writes a divide, its total and the verification outcome.
func OutputPerft(r PerftReport, cfg *config.Config) error {
	if cfg.Output.Format == config.JSON {
		return encodeJSON(cfg.OutputFile, PerftToJSON(r))
	}

	w := cfg.OutputFile
	if cfg.Output.ShowFEN {
		fmt.Fprintf(w, "fen: %s\n", r.FEN)
	}
	for _, e := range r.Entries {
		fmt.Fprintln(w, e)
	}
	fmt.Fprintf(w, "\nperft(%d) = %d in %v\n", r.Depth, r.Nodes(), r.Elapsed.Round(time.Millisecond))

	if !r.Verified {
		return nil
	}
	if len(r.Mismatches) == 0 {
		fmt.Fprintln(w, "verified: matches reference")
		return nil
	}
	fmt.Fprintf(w, "verified: %d mismatching moves\n", len(r.Mismatches))
	for _, m := range r.Mismatches {
		fmt.Fprintf(w, "  %s\n", m)
	}
	return nil
}

// OutputBench writes a benchmark summary.
func OutputBench(r search.BenchResult, cfg *config.Config) error {
	if cfg.Output.Format == config.JSON {
		return encodeJSON(cfg.OutputFile, BenchToJSON(r))
	}
	_, err := fmt.Fprintln(cfg.OutputFile, r)
	return err
}
