// Package perft counts the leaf positions of the move tree. Comparing the
// counts with a reference move generator validates legality end to end.
package perft

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Perft returns the number of positions reached after depth plies of
// completing moves. Depth 0 counts b itself.
func Perft(b *engine.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	player := b.CurrentPlayer()
	var nodes uint64
	for _, m := range player.LegalMoves() {
		t := player.MakeMove(m)
		if !t.Status.IsDone() {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += Perft(t.Board, depth-1)
		}
	}
	return nodes
}

// Entry is the leaf count below one root move.
type Entry struct {
	Move  string // long algebraic, e.g. "e2e4"
	Nodes uint64
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %d", e.Move, e.Nodes)
}

// Divide runs Perft below every completing root move on a worker pool and
// returns the counts sorted by move.
func Divide(ctx context.Context, b *engine.Board, depth, workers int) ([]Entry, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d must be at least 1", depth)
	}

	player := b.CurrentPlayer()
	var items []worker.WorkItem
	for _, m := range player.LegalMoves() {
		if t := player.MakeMove(m); t.Status.IsDone() {
			items = append(items, worker.WorkItem{Index: len(items), Board: t.Board, Move: m, Depth: depth - 1})
		}
	}

	results, err := worker.Run(ctx, items, countItem, worker.WithWorkers(workers))
	if err != nil {
		return nil, errors.Wrap(err, "perft divide")
	}

	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = Entry{Move: r.Move.UCI(), Nodes: uint64(r.Nodes)}
	}
	sortEntries(entries)
	return entries, nil
}

func countItem(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: int(Perft(item.Board, item.Depth)),
	}
}

// Total sums the counts of entries.
func Total(entries []Entry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })
}

// Mismatch is a root move whose count differs between two divides. A move
// missing on one side has a zero count there.
type Mismatch struct {
	Move      string
	Got, Want uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d, want %d", m.Move, m.Got, m.Want)
}

// Compare lists the moves whose counts differ, sorted by move.
func Compare(got, want []Entry) []Mismatch {
	counts := make(map[string][2]uint64)
	for _, e := range got {
		c := counts[e.Move]
		c[0] = e.Nodes
		counts[e.Move] = c
	}
	for _, e := range want {
		c := counts[e.Move]
		c[1] = e.Nodes
		counts[e.Move] = c
	}

	var mismatches []Mismatch
	for move, c := range counts {
		if c[0] != c[1] {
			mismatches = append(mismatches, Mismatch{Move: move, Got: c[0], Want: c[1]})
		}
	}
	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].Move < mismatches[j].Move })
	return mismatches
}
