// chess-engine searches chess positions for the best move, plays the engine
// against itself, and runs perft, benchmark and search-tree diagnostics.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg)
	stop()
	closeFile(cfg.OutputFile)
	closeFile(cfg.LogFile)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run validates cfg, loads the position and executes the selected mode.
func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	board, err := loadBoard(cfg)
	if err != nil {
		return err
	}

	r, err := newRunner(cfg)
	if err != nil {
		return err
	}

	switch {
	case cfg.Tools.PerftDepth > 0:
		return r.perft(ctx, board)
	case cfg.Tools.BenchRuns > 0:
		return r.bench(board)
	case cfg.Tools.DotFile != "":
		return r.dot(board)
	case cfg.Play.Plies > 0:
		return r.play(ctx, board)
	default:
		return r.best(ctx, board)
	}
}

// loadBoard returns the configured starting position.
func loadBoard(cfg *config.Config) (*engine.Board, error) {
	if cfg.FEN == "" {
		return engine.StartingPosition(), nil
	}
	return engine.NewBoardFromFEN(cfg.FEN)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// closeFile closes w when it is a file other than the standard streams.
func closeFile(w io.Writer) {
	if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Searches a chess position for the best move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (first match wins):\n")
	fmt.Fprintf(os.Stderr, "  -perft N   leaf counts per root move\n")
	fmt.Fprintf(os.Stderr, "  -bench N   repeated timed searches\n")
	fmt.Fprintf(os.Stderr, "  -dot FILE  search tree as Graphviz DOT (depth <= 4)\n")
	fmt.Fprintf(os.Stderr, "  -play N    self-play game of up to N plies\n")
	fmt.Fprintf(os.Stderr, "  (default)  best move for the position\n")
}
