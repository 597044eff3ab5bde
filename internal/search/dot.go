package search

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MaxTreeDOTDepth bounds TreeDOT; the full tree grows too fast to draw
// beyond it.
const MaxTreeDOTDepth = 4

const treeGraphName = "search"

// TreeDOT renders the full minimax tree below b as a Graphviz digraph. Each
// node is labelled with the move leading to it and its minimax score; the
// edge to the best child is drawn in red.
func TreeDOT(b *engine.Board, depth int, eval Evaluator) (string, error) {
	depth = clampDepth(depth)
	if depth > MaxTreeDOTDepth {
		return "", errors.Wrapf(errors.ErrInvalidConfig, "tree depth %d exceeds %d", depth, MaxTreeDOTDepth)
	}
	if eval == nil {
		eval = NewStandardEvaluator()
	}

	g := gographviz.NewGraph()
	if err := g.SetName(treeGraphName); err != nil {
		return "", errors.Wrap(err, "naming graph")
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.Wrap(err, "setting graph direction")
	}

	w := &treeWriter{graph: g, eval: eval}
	if _, _, err := w.node(b, depth, b.CurrentPlayer().String()); err != nil {
		return "", err
	}
	return g.String(), nil
}

type treeWriter struct {
	graph *gographviz.Graph
	eval  Evaluator
	next  int
}

type treeEdge struct {
	child string
	score float64
}

func (w *treeWriter) node(b *engine.Board, depth int, label string) (string, float64, error) {
	name := fmt.Sprintf("n%d", w.next)
	w.next++

	var score float64
	var children []treeEdge
	best := -1
	if isTerminal(b, depth) {
		score = w.eval.Evaluate(b, depth)
	} else {
		player := b.CurrentPlayer()
		white := player.Colour().IsWhite()
		score = unboundedScore
		if white {
			score = -unboundedScore
		}
		for _, m := range player.LegalMoves() {
			t := player.MakeMove(m)
			if !t.Status.IsDone() {
				continue
			}
			child, v, err := w.node(t.Board, depth-1, m.String())
			if err != nil {
				return "", 0, err
			}
			children = append(children, treeEdge{child: child, score: v})
			if (white && v > score) || (!white && v < score) {
				score, best = v, len(children)-1
			}
		}
	}

	attrs := map[string]string{"label": strconv.Quote(fmt.Sprintf("%s\n%.2f", label, score))}
	if err := w.graph.AddNode(treeGraphName, name, attrs); err != nil {
		return "", 0, errors.Wrapf(err, "adding node %s", name)
	}
	for i, c := range children {
		edgeAttrs := map[string]string{}
		if i == best {
			edgeAttrs["color"] = "red"
		}
		if err := w.graph.AddEdge(name, c.child, true, edgeAttrs); err != nil {
			return "", 0, errors.Wrapf(err, "adding edge %s -> %s", name, c.child)
		}
	}
	return name, score, nil
}
