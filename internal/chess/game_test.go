package chess

import "testing"

func TestGameTags(t *testing.T) {
	g := &Game{Tags: []TagPair{
		{"Event", "Croatia"},
		{"White", "Gardijan"},
		{"white", "lowercase"},
		{"White", "Second"},
	}}

	if got := g.White(); got != "Gardijan" {
		t.Errorf("White() = %q; want first occurrence %q", got, "Gardijan")
	}
	if got := g.Black(); got != "" {
		t.Errorf("Black() = %q; want empty", got)
	}
	if _, ok := g.Tag("Round"); ok {
		t.Error("Tag(Round) reported present")
	}
	if v, ok := g.Tag("white"); !ok || v != "lowercase" {
		t.Errorf("Tag(white) = (%q, %v); tag names are case-sensitive", v, ok)
	}
	if len(g.Tags) != 4 {
		t.Errorf("duplicate tags dropped: len = %d", len(g.Tags))
	}
}

func TestMissingRosterTags(t *testing.T) {
	g := &Game{Tags: []TagPair{{"Event", "x"}, {"Result", "*"}}}
	got := MissingRosterTags(g)
	want := []string{"Site", "Date", "Round", "White", "Black"}
	if len(got) != len(want) {
		t.Fatalf("MissingRosterTags() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MissingRosterTags()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
	if got := MissingRosterTags(&Game{Tags: []TagPair{{"Event", "x"}, {"Site", "x"}, {"Date", "x"},
		{"Round", "x"}, {"White", "x"}, {"Black", "x"}, {"Result", "x"}}}); len(got) != 0 {
		t.Errorf("MissingRosterTags() = %v; want none", got)
	}
}

func TestTermination(t *testing.T) {
	for _, term := range []GameTermination{WhiteWins, BlackWins, DrawnGame, Unknown} {
		got, ok := ParseTermination(term.String())
		if !ok || got != term {
			t.Errorf("ParseTermination(%q) = (%v, %v)", term.String(), got, ok)
		}
	}
	if _, ok := ParseTermination("2-0"); ok {
		t.Error("ParseTermination(2-0) should fail")
	}
}

func TestGamePlyCount(t *testing.T) {
	g := &Game{}
	if n := g.PlyCount(); n != 0 {
		t.Errorf("PlyCount() on empty game = %d", n)
	}
	g.Moves = []GameMove{
		NewMove(Pawn, NewSquare(FileE, Rank4)).Unmarked().Numbered(WhiteNumber(1)),
		NewMove(Pawn, NewSquare(FileE, Rank5)).Unmarked().Numbered(nil),
	}
	if n := g.PlyCount(); n != 2 {
		t.Errorf("PlyCount() = %d; want 2", n)
	}
}
