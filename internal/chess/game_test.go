package chess

import (
	"reflect"
	"testing"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.Result() != Unfinished {
		t.Errorf("Result() = %q, want %q", g.Result(), Unfinished)
	}
	if g.PlyCount() != 0 {
		t.Errorf("PlyCount() = %d, want 0", g.PlyCount())
	}
	if _, ok := g.LastMove(); ok {
		t.Error("LastMove() on an empty game should report false")
	}
}

func TestGame_Tags(t *testing.T) {
	var g Game
	g.SetTag("White", "engine")
	g.SetTag(BlackTag.String(), "engine")
	g.SetTag("Termination", "checkmate")

	if !g.HasTag("White") || g.White() != "engine" || g.Black() != "engine" {
		t.Errorf("tags = %v", g.Tags)
	}
	if g.HasTag("Event") {
		t.Error("HasTag(Event) = true on a game without it")
	}

	got := OrderedTagNames(g.Tags)
	want := []string{"White", "Black", "Termination"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OrderedTagNames() = %v, want %v", got, want)
	}
}

func TestGame_Moves(t *testing.T) {
	g := NewGame()
	g.AppendMove(MoveRecord{SAN: "e4", UCI: "e2e4", Nodes: 20})
	g.AppendMove(MoveRecord{SAN: "e5", UCI: "e7e5", Nodes: 30})

	if g.PlyCount() != 2 {
		t.Errorf("PlyCount() = %d, want 2", g.PlyCount())
	}
	last, ok := g.LastMove()
	if !ok || last.UCI != "e7e5" {
		t.Errorf("LastMove() = %v, %v", last, ok)
	}
	if g.TotalNodes() != 50 {
		t.Errorf("TotalNodes() = %d, want 50", g.TotalNodes())
	}
}

func TestTagNames(t *testing.T) {
	for tag := TagName(0); tag < NumberOfTags; tag++ {
		name := tag.String()
		if name == "" {
			t.Errorf("TagName(%d) has no string", int(tag))
			continue
		}
		if StringToTagName[name] != tag {
			t.Errorf("StringToTagName[%q] = %v, want %v", name, StringToTagName[name], tag)
		}
	}
	if !IsSevenTagRosterTag("Result") || IsSevenTagRosterTag("FEN") {
		t.Error("IsSevenTagRosterTag() misclassified a tag")
	}
}
