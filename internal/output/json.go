package output

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result,omitempty"`
	PlyCount   int               `json:"plyCount,omitempty"`
	TotalNodes int               `json:"totalNodes,omitempty"`
	FinalFEN   string            `json:"finalFEN,omitempty"`
	InitialFEN string            `json:"initialFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int     `json:"moveNumber,omitempty"`
	Color      string  `json:"color"` // "white" or "black"
	SAN        string  `json:"san"`
	UCI        string  `json:"uci,omitempty"`
	Score      float64 `json:"score"`
	Nodes      int     `json:"nodes,omitempty"`
	Depth      int     `json:"depth,omitempty"`
	ElapsedMS  float64 `json:"elapsedMs,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// JSONResult is one search outcome.
type JSONResult struct {
	FEN        string  `json:"fen,omitempty"`
	SideToMove string  `json:"sideToMove"`
	Move       string  `json:"move,omitempty"`
	UCI        string  `json:"uci,omitempty"`
	Outcome    string  `json:"outcome,omitempty"`
	Score      float64 `json:"score"`
	Depth      int     `json:"depth"`
	Nodes      int     `json:"nodes"`
	Cutoffs    int     `json:"cutoffs"`
	ElapsedMS  float64 `json:"elapsedMs"`
}

// JSONPerft is a divide with its total.
type JSONPerft struct {
	FEN        string            `json:"fen,omitempty"`
	Depth      int               `json:"depth"`
	Nodes      uint64            `json:"nodes"`
	Moves      map[string]uint64 `json:"moves"`
	Verified   bool              `json:"verified,omitempty"`
	Mismatches []JSONMismatch    `json:"mismatches,omitempty"`
	ElapsedMS  float64           `json:"elapsedMs"`
}

// JSONMismatch is one root move whose count differs from the reference.
type JSONMismatch struct {
	Move string `json:"move"`
	Got  uint64 `json:"got"`
	Want uint64 `json:"want"`
}

// JSONBench is a benchmark summary.
type JSONBench struct {
	Strategy       string  `json:"strategy"`
	Depth          int     `json:"depth"`
	Positions      int     `json:"positions"`
	Runs           int     `json:"runs"`
	MeanMS         float64 `json:"meanMs"`
	StdDevMS       float64 `json:"stdDevMs"`
	Nodes          int     `json:"nodes"`
	Cutoffs        int     `json:"cutoffs"`
	NodesPerSecond float64 `json:"nodesPerSecond"`
}

// OutputGameJSON outputs a single game in JSON format.
func OutputGameJSON(game *chess.Game, cfg *config.Config) error {
	jsonGame, err := GameToJSON(game, cfg)
	if err != nil {
		return err
	}
	return encodeJSON(cfg.OutputFile, jsonGame)
}

// GameToJSON converts a game to JSON format. The final position is
// replayed from the recorded moves when FEN output is enabled.
func GameToJSON(game *chess.Game, cfg *config.Config) (*JSONGame, error) {
	jg := &JSONGame{
		Tags:       copyTags(game.Tags),
		Result:     gameResult(game),
		PlyCount:   game.PlyCount(),
		TotalNodes: game.TotalNodes(),
		InitialFEN: game.FEN(),
	}

	moveNum, isWhite := startingMove(game.FEN())
	for _, move := range game.Moves {
		jm := JSONMove{
			MoveNumber: moveNum,
			Color:      "black",
			SAN:        move.SAN,
			UCI:        move.UCI,
			Score:      move.Score,
			Nodes:      move.Nodes,
			Depth:      move.Depth,
			ElapsedMS:  millis(move.Elapsed),
		}
		if isWhite {
			jm.Color = "white"
		} else {
			moveNum++
		}
		isWhite = !isWhite
		jg.Moves = append(jg.Moves, jm)
	}

	if cfg.Output.ShowFEN {
		final, err := replayGame(game)
		if err != nil {
			return nil, err
		}
		jg.FinalFEN = engine.BoardToFEN(final)
	}
	return jg, nil
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(chess.SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range chess.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

// ResultToJSON converts a search result from b.
func ResultToJSON(b *engine.Board, r search.Result, cfg *config.Config) *JSONResult {
	jr := &JSONResult{
		SideToMove: strings.ToLower(b.ToMove().String()),
		Score:      r.Score,
		Depth:      r.Depth,
		Nodes:      r.Stats.Nodes,
		Cutoffs:    r.Stats.Cutoffs,
		ElapsedMS:  millis(r.Elapsed),
	}
	if cfg.Output.ShowFEN {
		jr.FEN = engine.BoardToFEN(b)
	}
	if r.Found() {
		jr.Move = r.Move.String()
		jr.UCI = r.Move.UCI()
	} else {
		jr.Outcome = engine.GameOutcome(b).String()
	}
	return jr
}

// PerftToJSON converts a perft report.
func PerftToJSON(r PerftReport) *JSONPerft {
	jp := &JSONPerft{
		FEN:       r.FEN,
		Depth:     r.Depth,
		Nodes:     r.Nodes(),
		Moves:     make(map[string]uint64, len(r.Entries)),
		Verified:  r.Verified,
		ElapsedMS: millis(r.Elapsed),
	}
	for _, e := range r.Entries {
		jp.Moves[e.Move] = e.Nodes
	}
	for _, m := range r.Mismatches {
		jp.Mismatches = append(jp.Mismatches, JSONMismatch{Move: m.Move, Got: m.Got, Want: m.Want})
	}
	return jp
}

// BenchToJSON converts a benchmark summary.
func BenchToJSON(r search.BenchResult) *JSONBench {
	return &JSONBench{
		Strategy:       r.Strategy,
		Depth:          r.Depth,
		Positions:      r.Positions,
		Runs:           r.Runs,
		MeanMS:         millis(r.Mean),
		StdDevMS:       millis(r.StdDev),
		Nodes:          r.Nodes,
		Cutoffs:        r.Cutoffs,
		NodesPerSecond: r.NodesPerSecond(),
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
