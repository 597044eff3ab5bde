package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// A depth-4 search of the starting position takes seconds, so each of these
// only passes if the search notices its context ending.
const slowDepth = 4

func TestSearchContext_StopsRunningSearch(t *testing.T) {
	strategies := []TreeSearcher{NewMiniMax(), NewAlphaBeta(), NewOrderedAlphaBeta(), NewParallel(NewMiniMax(), 1)}
	for _, s := range strategies {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			start := time.Now()
			r, err := s.SearchContext(ctx, engine.StartingPosition(), slowDepth)
			require.Error(t, err)
			assert.True(t, errors.Is(err, context.DeadlineExceeded), "err = %v", err)
			assert.False(t, r.Found())
			assert.Less(t, time.Since(start).Seconds(), 2.0)
		})
	}
}

func TestSearchContext_Completes(t *testing.T) {
	b := board(t, whiteMateInOneFEN)
	for _, s := range allStrategies() {
		r, err := s.SearchContext(context.Background(), b, 2)
		require.NoError(t, err, s.String())
		assert.Equal(t, "a1a8", r.Move.UCI(), s.String())
		assert.Equal(t, s.Search(b, 2).Score, r.Score, s.String())
	}
}

func TestValueContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range allStrategies() {
		_, stats, err := s.ValueContext(ctx, engine.StartingPosition(), slowDepth)
		assert.True(t, errors.Is(err, context.Canceled), "%s: err = %v", s, err)
		assert.LessOrEqual(t, stats.Nodes, 1, s.String())
	}
}

func TestIterativeDeepening_StopsRunningIteration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	r, err := IterativeDeepening(ctx, NewMiniMax(), engine.StartingPosition(), slowDepth+1, 0)
	require.NoError(t, err)
	assert.True(t, r.Found(), "keeps the last completed depth")
	assert.Less(t, r.Depth, slowDepth)
	assert.Less(t, time.Since(start).Seconds(), 2.0)
}
