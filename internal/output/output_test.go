package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/perft"
	"github.com/lgbarn/chess-engine-go/internal/search"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

const foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e4", "e5", "2.", "Nf3", "Nc6"} {
		ow.Write(s)
	}
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "1. e4 e5\n2. Nf3 Nc6\n")
}

func TestOutputWriter_DefaultLength(t *testing.T) {
	ow := NewOutputWriter(&bytes.Buffer{}, 0)
	testutil.AssertEqual(t, ow.maxLineLength, DefaultLineLength)
}

func TestOutputWriter_WriteNoSpace(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 80)
	ow.Write("(")
	ow.WriteNoSpace("e4")
	ow.WriteNoSpace(")")
	testutil.AssertEqual(t, buf.String(), "(e4)")
}

func TestStartingMove(t *testing.T) {
	tests := []struct {
		fen     string
		wantNum int
		white   bool
	}{
		{"", 1, true},
		{engine.InitialFEN, 1, true},
		{"6k1/5ppp/8/8/8/8/5PPP/R5K1 b - - 0 7", 7, false},
		{"6k1/5ppp/8/8/8/8/5PPP/R5K1 b - -", 1, false},
		{"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 x", 1, true},
	}
	for _, tt := range tests {
		num, white := startingMove(tt.fen)
		if num != tt.wantNum || white != tt.white {
			t.Errorf("startingMove(%q) = %d, %v; want %d, %v", tt.fen, num, white, tt.wantNum, tt.white)
		}
	}
}

func TestOutputResult_Text(t *testing.T) {
	b := testutil.MustBoard(t, testutil.MateInOneFEN)
	r := search.NewMiniMax().Search(b, 1)

	var buf bytes.Buffer
	cfg := testConfig(&buf)
	if err := OutputResult(b, r, cfg); err != nil {
		t.Fatalf("OutputResult() error = %v", err)
	}

	output := buf.String()
	testutil.AssertContains(t, output, "fen:      "+engine.BoardToFEN(b)+"\n")
	testutil.AssertContains(t, output, "bestmove: Ra8 (a1a8)\n")
	testutil.AssertContains(t, output, "depth:    1\n")
	testutil.AssertContains(t, output, "time:")
}

func TestOutputResult_NoMove(t *testing.T) {
	b := testutil.MustBoard(t, foolsMateFEN)
	r := search.NewAlphaBeta().Search(b, 2)

	var buf bytes.Buffer
	if err := OutputResult(b, r, testConfig(&buf)); err != nil {
		t.Fatalf("OutputResult() error = %v", err)
	}
	testutil.AssertContains(t, buf.String(), "bestmove: none (checkmate)\n")
}

func TestOutputResult_JSON(t *testing.T) {
	b := testutil.MustBoard(t, testutil.MateInOneFEN)
	r := search.NewOrderedAlphaBeta().Search(b, 2)

	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.Output.Format = config.JSON
	cfg.Output.ShowFEN = false
	if err := OutputResult(b, r, cfg); err != nil {
		t.Fatalf("OutputResult() error = %v", err)
	}

	var got JSONResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, got.Move, "Ra8")
	testutil.AssertEqual(t, got.UCI, "a1a8")
	testutil.AssertEqual(t, got.SideToMove, "white")
	testutil.AssertEqual(t, got.Depth, 2)
	testutil.AssertEqual(t, got.Nodes, r.Stats.Nodes)
	testutil.AssertEqual(t, got.FEN, "")
	testutil.AssertEqual(t, got.Outcome, "")
}

func TestOutputResult_JSONNoMove(t *testing.T) {
	b := testutil.MustBoard(t, foolsMateFEN)
	got := ResultToJSON(b, search.NewMiniMax().Search(b, 1), config.NewConfig())
	testutil.AssertEqual(t, got.Move, "")
	testutil.AssertEqual(t, got.Outcome, "checkmate")
	testutil.AssertEqual(t, got.FEN, engine.BoardToFEN(b))
}

func testReport() PerftReport {
	return PerftReport{
		FEN:     engine.InitialFEN,
		Depth:   2,
		Entries: []perft.Entry{{Move: "a2a3", Nodes: 20}, {Move: "b2b3", Nodes: 20}},
		Elapsed: 3 * time.Millisecond,
	}
}

func TestOutputPerft_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputPerft(testReport(), testConfig(&buf)); err != nil {
		t.Fatalf("OutputPerft() error = %v", err)
	}

	output := buf.String()
	testutil.AssertContains(t, output, "a2a3: 20\nb2b3: 20\n")
	testutil.AssertContains(t, output, "perft(2) = 40 in 3ms\n")
	testutil.AssertFalse(t, strings.Contains(output, "verified"), "unverified report")
}

func TestOutputPerft_Verified(t *testing.T) {
	tests := []struct {
		name       string
		mismatches []perft.Mismatch
		want       string
	}{
		{"match", nil, "verified: matches reference\n"},
		{"mismatch", []perft.Mismatch{{Move: "b2b3", Got: 20, Want: 21}}, "verified: 1 mismatching moves\n  b2b3: got 20, want 21\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testReport()
			r.Verified = true
			r.Mismatches = tt.mismatches

			var buf bytes.Buffer
			if err := OutputPerft(r, testConfig(&buf)); err != nil {
				t.Fatalf("OutputPerft() error = %v", err)
			}
			testutil.AssertContains(t, buf.String(), tt.want)
		})
	}
}

func TestOutputPerft_JSON(t *testing.T) {
	r := testReport()
	r.Verified = true
	r.Mismatches = []perft.Mismatch{{Move: "b2b3", Got: 20, Want: 21}}

	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.Output.Format = config.JSON
	if err := OutputPerft(r, cfg); err != nil {
		t.Fatalf("OutputPerft() error = %v", err)
	}

	var got JSONPerft
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, got.Nodes, uint64(40))
	testutil.AssertEqual(t, got.Moves, map[string]uint64{"a2a3": 20, "b2b3": 20})
	testutil.AssertEqual(t, got.Mismatches, []JSONMismatch{{Move: "b2b3", Got: 20, Want: 21}})
	testutil.AssertEqual(t, got.ElapsedMS, 3.0)
}

func TestOutputBench(t *testing.T) {
	r := search.BenchResult{
		Strategy: "AlphaBeta", Depth: 3, Positions: 2, Runs: 4,
		Mean: 500 * time.Millisecond, StdDev: 20 * time.Millisecond, Nodes: 1000, Cutoffs: 40,
	}

	var buf bytes.Buffer
	cfg := testConfig(&buf)
	if err := OutputBench(r, cfg); err != nil {
		t.Fatalf("OutputBench() error = %v", err)
	}
	testutil.AssertEqual(t, buf.String(), r.String()+"\n")

	buf.Reset()
	cfg.Output.Format = config.JSON
	if err := OutputBench(r, cfg); err != nil {
		t.Fatalf("OutputBench() error = %v", err)
	}
	var got JSONBench
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := JSONBench{
		Strategy: "AlphaBeta", Depth: 3, Positions: 2, Runs: 4,
		MeanMS: 500, StdDevMS: 20, Nodes: 1000, Cutoffs: 40, NodesPerSecond: 2000,
	}
	testutil.AssertEqual(t, got, want)
}
