package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMoveBuilders(t *testing.T) {
	a2 := NewSquare(FileA, Rank2)
	b1 := NewSquare(FileB, Rank1)
	h8 := NewSquare(FileH, Rank8)

	tests := []struct {
		name string
		got  Move
		want Move
	}{
		{
			name: "new",
			got:  NewMove(Queen, a2),
			want: Move{Kind: BasicMove, Piece: Queen, To: a2, From: UnknownSquare},
		},
		{
			name: "from",
			got:  NewMove(Queen, a2).WithFrom(b1),
			want: Move{Kind: BasicMove, Piece: Queen, To: a2, From: b1},
		},
		{
			name: "capture",
			got:  NewMove(Knight, a2).Capture(),
			want: Move{Kind: BasicMove, Piece: Knight, To: a2, From: UnknownSquare, IsCapture: true},
		},
		{
			name: "promotion",
			got:  NewMove(Pawn, h8).WithPromotion(Queen),
			want: Move{Kind: BasicMove, Piece: Pawn, To: h8, From: UnknownSquare, PromotedTo: Queen},
		},
		{
			name: "castle ignores builders",
			got:  KingsideCastle.WithFrom(b1).Capture().WithPromotion(Queen),
			want: KingsideCastle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildersDoNotMutate(t *testing.T) {
	base := NewMove(Rook, NewSquare(FileD, Rank4))
	_ = base.Capture().WithPromotion(Queen).WithFrom(RankSquare(Rank1))
	if base.IsCapture || base.PromotedTo != NoPiece || base.From != UnknownSquare {
		t.Errorf("builder mutated receiver: %+v", base)
	}

	gm := base.Unmarked().Numbered(nil)
	_ = gm.WithNAG(3).WithComment("x")
	if gm.NAG != nil || gm.Comment != nil {
		t.Errorf("GameMove builder mutated receiver: %+v", gm)
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{NewMove(Pawn, NewSquare(FileE, Rank4)), "e4"},
		{NewMove(Knight, NewSquare(FileF, Rank3)).WithFrom(FileSquare(FileG)), "Ngf3"},
		{NewMove(Rook, NewSquare(FileH, Rank4)).WithFrom(RankSquare(Rank2)), "R2h4"},
		{NewMove(Queen, NewSquare(FileD, Rank4)).WithFrom(NewSquare(FileA, Rank1)), "Qa1d4"},
		{NewMove(Pawn, NewSquare(FileD, Rank5)).WithFrom(FileSquare(FileE)).Capture(), "exd5"},
		{NewMove(Pawn, NewSquare(FileH, Rank8)).WithPromotion(Queen), "h8=Q"},
		{KingsideCastle, "O-O"},
		{QueensideCastle, "O-O-O"},
	}

	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestMarkedMove(t *testing.T) {
	a3 := NewSquare(FileA, Rank3)

	got := NewMove(Pawn, a3).Unmarked().Annotated(Brilliant)
	want := MarkedMove{Move: NewMove(Pawn, a3), Annotation: Brilliant}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Annotated mismatch (-want +got):\n%s", diff)
	}

	if s := QueensideCastle.Checkmate().String(); s != "O-O-O#" {
		t.Errorf("String() = %q; want %q", s, "O-O-O#")
	}
	if s := NewMove(Bishop, NewSquare(FileB, Rank2)).Check().Annotated(Dubious).String(); s != "Bb2+?!" {
		t.Errorf("String() = %q; want %q", s, "Bb2+?!")
	}
}

func TestNumbered(t *testing.T) {
	mm := NewMove(Queen, NewSquare(FileA, Rank2)).Unmarked()

	tests := []struct {
		name   string
		number *MoveNumber
	}{
		{"white", WhiteNumber(1)},
		{"black", BlackNumber(7)},
		{"none", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mm.Numbered(tt.number)
			want := GameMove{Number: tt.number, Move: mm}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveNumberString(t *testing.T) {
	if got := WhiteNumber(12).String(); got != "12." {
		t.Errorf("White(12) = %q", got)
	}
	if got := BlackNumber(12).String(); got != "12..." {
		t.Errorf("Black(12) = %q", got)
	}
	if got := NAG(14).String(); got != "$14" {
		t.Errorf("NAG(14) = %q", got)
	}
}

func TestGameMoveBuilders(t *testing.T) {
	mm := NewMove(Queen, NewSquare(FileA, Rank2)).Unmarked()
	alt := NewMove(Queen, NewSquare(FileA, Rank1)).Unmarked().Numbered(WhiteNumber(1))

	got := mm.Numbered(WhiteNumber(1)).
		WithNAG(1).
		WithComment("Comment").
		WithVariations(MoveSequence{Moves: []GameMove{alt}})

	nag := NAG(1)
	comment := "Comment"
	want := GameMove{
		Number:     WhiteNumber(1),
		Move:       mm,
		NAG:        &nag,
		Comment:    &comment,
		Variations: []MoveSequence{{Moves: []GameMove{alt}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !got.HasVariations() {
		t.Error("HasVariations() = false")
	}
}

func TestDepth(t *testing.T) {
	leaf := NewMove(King, NewSquare(FileH, Rank2)).Unmarked().Numbered(WhiteNumber(4))
	mid := NewMove(Bishop, NewSquare(FileB, Rank5)).Unmarked().Numbered(WhiteNumber(4)).
		WithVariations(MoveSequence{Moves: []GameMove{leaf}})
	top := NewMove(Bishop, NewSquare(FileC, Rank4)).Unmarked().Numbered(WhiteNumber(4)).
		WithVariations(MoveSequence{Moves: []GameMove{mid}})

	if d := leaf.Depth(); d != 0 {
		t.Errorf("leaf depth = %d; want 0", d)
	}
	if d := top.Depth(); d != 2 {
		t.Errorf("top depth = %d; want 2", d)
	}
	g := &Game{Moves: []GameMove{top}}
	if d := g.Depth(); d != 2 {
		t.Errorf("game depth = %d; want 2", d)
	}
}
