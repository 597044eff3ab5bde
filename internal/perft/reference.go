package perft

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Reference counts leaf positions with the dragontoothmg move generator.
func Reference(fen string, depth int) (nodes uint64, err error) {
	b, err := referenceBoard(fen)
	if err != nil {
		return 0, err
	}
	defer recoverReference(&err)
	return referencePerft(&b, depth), nil
}

// ReferenceDivide is Divide computed by dragontoothmg.
func ReferenceDivide(fen string, depth int) (entries []Entry, err error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d must be at least 1", depth)
	}
	b, err := referenceBoard(fen)
	if err != nil {
		return nil, err
	}
	defer recoverReference(&err)

	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		entries = append(entries, Entry{Move: m.String(), Nodes: referencePerft(&b, depth-1)})
		unapply()
	}
	sortEntries(entries)
	return entries, nil
}

// referenceBoard validates fen with the engine and hands dragontoothmg the
// normalised six-field form it expects.
func referenceBoard(fen string) (dragontoothmg.Board, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return dragontoothmg.Board{}, err
	}
	return dragontoothmg.ParseFen(engine.BoardToFEN(board)), nil
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func recoverReference(err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrap(fmt.Errorf("%v", r), "reference move generator")
	}
}
