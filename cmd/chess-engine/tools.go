package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/perft"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// benchFENs is the position set searched by -bench without -fen.
var benchFENs = []string{
	engine.InitialFEN,
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

// perft writes a divide of b and optionally checks it against the
// reference generator.
func (r *runner) perft(ctx context.Context, b *engine.Board) error {
	depth := r.cfg.Tools.PerftDepth
	start := time.Now()
	entries, err := perft.Divide(ctx, b, depth, r.cfg.Search.Workers)
	if err != nil {
		return err
	}

	report := output.PerftReport{
		FEN:     engine.BoardToFEN(b),
		Depth:   depth,
		Entries: entries,
		Elapsed: time.Since(start),
	}
	if r.cfg.Tools.Verify {
		want, err := perft.ReferenceDivide(report.FEN, depth)
		if err != nil {
			return err
		}
		report.Verified = true
		report.Mismatches = perft.Compare(entries, want)
	}

	if err := output.OutputPerft(report, r.cfg); err != nil {
		return err
	}
	if len(report.Mismatches) > 0 {
		return errors.Wrapf(errors.ErrPerftMismatch, "%d of %d root moves", len(report.Mismatches), len(entries))
	}
	return nil
}

// bench times repeated searches of b, or of benchFENs when no position was
// given.
func (r *runner) bench(b *engine.Board) error {
	boards := []*engine.Board{b}
	if r.cfg.FEN == "" {
		boards = boards[:0]
		for _, fen := range benchFENs {
			boards = append(boards, engine.MustBoardFromFEN(fen))
		}
	}
	r.logf(1, "bench: %s, depth %d, %d positions, %d runs", r.strategy, r.cfg.Search.Depth, len(boards), r.cfg.Tools.BenchRuns)
	res := search.Bench(r.strategy, boards, r.cfg.Search.Depth, r.cfg.Tools.BenchRuns)
	r.logCache()
	return output.OutputBench(res, r.cfg)
}

// dot writes the search tree below b to the configured file.
func (r *runner) dot(b *engine.Board) error {
	graph, err := search.TreeDOT(b, r.cfg.Search.Depth, r.evaluator)
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.cfg.Tools.DotFile, []byte(graph), 0644); err != nil { //nolint:gosec // G306: user-requested output file
		return errors.Wrapf(err, "writing %s", r.cfg.Tools.DotFile)
	}
	r.logf(1, "wrote %d bytes of DOT to %s", len(graph), r.cfg.Tools.DotFile)
	_, err = fmt.Fprintf(r.cfg.OutputFile, "search tree written to %s\n", r.cfg.Tools.DotFile)
	return err
}
