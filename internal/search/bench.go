package search

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// BenchResult summarises repeated searches over a set of positions.
type BenchResult struct {
	Strategy  string
	Depth     int
	Positions int
	Runs      int
	Mean      time.Duration // per run over all positions
	StdDev    time.Duration
	Nodes     int // per run
	Cutoffs   int // per run
}

// NodesPerSecond returns the search speed implied by the mean run time.
func (r BenchResult) NodesPerSecond() float64 {
	if r.Mean <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Mean.Seconds()
}

// String formats the summary as one line.
func (r BenchResult) String() string {
	return fmt.Sprintf("%s depth %d: %d positions x %d runs, mean %v, stddev %v, %d nodes, %.0f nodes/s",
		r.Strategy, r.Depth, r.Positions, r.Runs, r.Mean, r.StdDev, r.Nodes, r.NodesPerSecond())
}

// Bench searches every board at depth, repeat times, and reports the mean
// and standard deviation of the run times. Node counts are taken from the
// last run; searches are deterministic so every run visits the same boards.
func Bench(s Strategy, boards []*engine.Board, depth, repeat int) BenchResult {
	if repeat < 1 {
		repeat = 1
	}
	res := BenchResult{Strategy: s.String(), Depth: clampDepth(depth), Positions: len(boards), Runs: repeat}

	seconds := make([]float64, repeat)
	for i := range seconds {
		var stats Stats
		start := time.Now()
		for _, b := range boards {
			stats.Add(s.Search(b, depth).Stats)
		}
		seconds[i] = time.Since(start).Seconds()
		res.Nodes, res.Cutoffs = stats.Nodes, stats.Cutoffs
	}

	mean, std := stat.MeanStdDev(seconds, nil)
	if repeat == 1 {
		std = 0
	}
	res.Mean = time.Duration(mean * float64(time.Second))
	res.StdDev = time.Duration(std * float64(time.Second))
	return res
}
