package main

import (
	"context"
	"strconv"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/output"
)

// Termination reasons written to self-play records.
const (
	terminationCheckmate    = "checkmate"
	terminationStalemate    = "stalemate"
	terminationInsufficient = "insufficient material"
	terminationRepetition   = "repetition"
	terminationPlyLimit     = "ply limit"
	terminationInterrupted  = "interrupted"
)

// play runs a self-play game from b and writes its record.
func (r *runner) play(ctx context.Context, b *engine.Board) error {
	game, err := r.selfPlay(ctx, b)
	if err != nil {
		return err
	}

	w := output.NewGameWriter(r.cfg.OutputFile, r.cfg)
	if err := w.WriteGame(game); err != nil {
		return err
	}
	return w.Close()
}

// selfPlay lets the strategy play both sides for up to Play.Plies plies.
// The game ends early on checkmate, stalemate, insufficient material or
// repetition, and is abandoned unfinished when ctx ends.
func (r *runner) selfPlay(ctx context.Context, b *engine.Board) (*chess.Game, error) {
	game := r.newGame()
	repetitions := hashing.NewRepetitionDetector(r.cfg.Play.RepetitionLimit)
	repetitions.Add(b)

	interrupted := false
	for ply := 1; ply <= r.cfg.Play.Plies; ply++ {
		if engine.GameOutcome(b) != engine.Ongoing || repetitions.IsRepetition(b) {
			break
		}

		res, err := r.search(ctx, b)
		if err != nil {
			if ctx.Err() != nil {
				interrupted = true
				break
			}
			return nil, err
		}
		if !res.Found() {
			break
		}

		t := b.CurrentPlayer().MakeMove(res.Move)
		if !t.Status.IsDone() {
			return nil, errors.Fatal(&errors.MoveError{Err: errors.ErrIllegalMove, Move: res.Move.UCI(), Ply: ply})
		}
		game.AppendMove(chess.MoveRecord{
			SAN:     res.Move.String(),
			UCI:     res.Move.UCI(),
			Score:   res.Score,
			Nodes:   res.Stats.Nodes,
			Depth:   res.Depth,
			Elapsed: res.Elapsed,
		})
		r.logf(1, "ply %d: %s", ply, res)

		b = t.Board
		repetitions.Add(b)
	}

	result, termination := finalResult(b, repetitions)
	if interrupted {
		result, termination = chess.Unfinished, terminationInterrupted
	}
	game.SetTag(chess.ResultTag.String(), result)
	game.SetTag(chess.TerminationTag.String(), termination)
	game.SetTag(chess.PlyCountTag.String(), strconv.Itoa(game.PlyCount()))
	r.logCache()
	return game, nil
}

// newGame creates a record with the roster tags filled in.
func (r *runner) newGame() *chess.Game {
	game := chess.NewGame()
	game.SetTag(chess.EventTag.String(), r.cfg.Play.Event)
	game.SetTag(chess.SiteTag.String(), r.cfg.Play.Site)
	game.SetTag(chess.DateTag.String(), time.Now().Format("2006.01.02"))
	game.SetTag(chess.RoundTag.String(), "-")
	game.SetTag(chess.WhiteTag.String(), r.strategy.String())
	game.SetTag(chess.BlackTag.String(), r.strategy.String())
	game.SetTag(chess.AnnotatorTag.String(), "depth "+strconv.Itoa(r.cfg.Search.Depth)+", "+budgetLabel(r.cfg.Search.TimeBudget))
	if r.cfg.FEN != "" {
		game.SetTag(chess.SetupTag.String(), "1")
		game.SetTag(chess.FENTag.String(), r.cfg.FEN)
	}
	return game
}

// finalResult classifies the last position of a game. A mated side to move
// loses; stalemate, insufficient material and repetition are draws.
func finalResult(b *engine.Board, repetitions *hashing.RepetitionDetector) (result, termination string) {
	switch engine.GameOutcome(b) {
	case engine.Checkmate:
		if b.ToMove().IsWhite() {
			return chess.BlackWins, terminationCheckmate
		}
		return chess.WhiteWins, terminationCheckmate
	case engine.Stalemate:
		return chess.Draw, terminationStalemate
	case engine.InsufficientMaterial:
		return chess.Draw, terminationInsufficient
	}
	if repetitions.IsRepetition(b) {
		return chess.Draw, terminationRepetition
	}
	return chess.Unfinished, terminationPlyLimit
}
