// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

var (
	// Position
	fenFlag = flag.String("fen", "", "Starting position in FEN (default: standard start)")

	// Search options
	depthFlag    = flag.Int("depth", 3, "Search depth in plies (maximum depth with -time)")
	strategyFlag = flag.String("strategy", search.DefaultName, "Search strategy: minimax, alphabeta, ordered")
	timeBudget   = flag.Duration("time", 0, "Iterative deepening time budget, e.g. 2.5s (0 = fixed depth)")
	workers      = flag.Int("workers", 1, "Number of workers for parallel root search and perft")
	cacheSize    = flag.Int("cache", 0, "Evaluation cache entries (0 = no cache)")

	// Modes
	playPlies   = flag.Int("play", 0, "Play the engine against itself for up to N plies")
	repetitions = flag.Int("repetition", 3, "Occurrences of a position that draw a self-play game")
	perftDepth  = flag.Int("perft", 0, "Count leaf positions to depth N per root move")
	verifyPerft = flag.Bool("verify", false, "Compare perft counts with the reference move generator")
	benchRuns   = flag.Int("bench", 0, "Time N repeated searches over the position (or a built-in set)")
	dotFile     = flag.String("dot", "", "Write the search tree to this file in Graphviz format")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	showBoard  = flag.Bool("board", false, "Print the board grid")
	noFEN      = flag.Bool("nofen", false, "Don't print FEN strings")

	// Logging
	verbosity = flag.Int("v", 0, "Verbosity: 0 silent, 1 one line per search, 2 iterative deepening progress")
	logFile   = flag.String("log", "", "Write diagnostics to log file (default: stderr)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.FEN = *fenFlag
	cfg.Verbosity = *verbosity
	applySearchFlags(cfg)
	applyModeFlags(cfg)
	applyOutputFlags(cfg)
}

// applySearchFlags configures the search.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Strategy = *strategyFlag
	cfg.Search.Depth = *depthFlag
	cfg.Search.TimeBudget = *timeBudget
	cfg.Search.Workers = *workers
	cfg.Search.CacheSize = *cacheSize

	// With a budget and no explicit depth the clock decides how deep to go.
	if *timeBudget > 0 && !isFlagSet("depth") {
		cfg.Search.Depth = search.MaxIterativeDepth
	}
}

// applyModeFlags configures self-play and the diagnostic tools.
func applyModeFlags(cfg *config.Config) {
	cfg.Play.Plies = *playPlies
	cfg.Play.RepetitionLimit = *repetitions
	cfg.Tools.PerftDepth = *perftDepth
	cfg.Tools.Verify = *verifyPerft
	cfg.Tools.BenchRuns = *benchRuns
	cfg.Tools.DotFile = *dotFile
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowFEN = !*noFEN
}

// isFlagSet reports whether name was given on the command line.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// budgetLabel formats a time budget for log lines.
func budgetLabel(d time.Duration) string {
	if d <= 0 {
		return "fixed depth"
	}
	return d.String() + " budget"
}
