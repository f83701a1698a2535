package chess

import "testing"

func TestSquareEncoding(t *testing.T) {
	tests := []struct {
		name     string
		sq       Square
		wantFile File
		fileOK   bool
		wantRank Rank
		rankOK   bool
		str      string
	}{
		{"known c3", NewSquare(FileC, Rank3), FileC, true, Rank3, true, "c3"},
		{"file only", FileSquare(FileE), FileE, true, NoRank, false, "e"},
		{"rank only", RankSquare(Rank6), NoFile, false, Rank6, true, "6"},
		{"unknown", UnknownSquare, NoFile, false, NoRank, false, ""},
		{"corner h8", NewSquare(FileH, Rank8), FileH, true, Rank8, true, "h8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, fok := tt.sq.File()
			if f != tt.wantFile || fok != tt.fileOK {
				t.Errorf("File() = (%v, %v); want (%v, %v)", f, fok, tt.wantFile, tt.fileOK)
			}
			r, rok := tt.sq.Rank()
			if r != tt.wantRank || rok != tt.rankOK {
				t.Errorf("Rank() = (%v, %v); want (%v, %v)", r, rok, tt.wantRank, tt.rankOK)
			}
			if got := tt.sq.String(); got != tt.str {
				t.Errorf("String() = %q; want %q", got, tt.str)
			}
		})
	}
}

func TestSquareValuesAreDistinct(t *testing.T) {
	seen := make(map[Square]bool)
	for f := FileA; f <= NoFile; f++ {
		for r := Rank1; r <= NoRank; r++ {
			sq := NewSquare(f, r)
			if seen[sq] {
				t.Fatalf("duplicate encoding for file %d rank %d", f, r)
			}
			seen[sq] = true
		}
	}
	if len(seen) != 81 {
		t.Errorf("distinct squares = %d; want 81", len(seen))
	}
	if !seen[UnknownSquare] {
		t.Error("UnknownSquare not produced by NewSquare(NoFile, NoRank)")
	}
}

func TestSquareKnownness(t *testing.T) {
	if !NewSquare(FileA, Rank1).IsKnown() {
		t.Error("a1 should be fully known")
	}
	if FileSquare(FileA).IsKnown() {
		t.Error("file-only square should not be fully known")
	}
	if !UnknownSquare.IsUnknown() {
		t.Error("UnknownSquare.IsUnknown() = false")
	}
	if RankSquare(Rank2).IsUnknown() {
		t.Error("rank-only square should not be fully unknown")
	}
}

func TestNewSquareClampsInvalidAxes(t *testing.T) {
	if got := NewSquare(File(12), Rank(30)); got != UnknownSquare {
		t.Errorf("NewSquare(12, 30) = %d; want UnknownSquare", got)
	}
}

func TestPieceLetters(t *testing.T) {
	for _, p := range []Piece{Pawn, Knight, Bishop, Rook, Queen, King} {
		got, ok := PieceFromLetter(p.Letter())
		if !ok || got != p {
			t.Errorf("PieceFromLetter(%c) = (%v, %v); want (%v, true)", p.Letter(), got, ok, p)
		}
	}
	if _, ok := PieceFromLetter('X'); ok {
		t.Error("PieceFromLetter('X') should fail")
	}
	if got := Knight.String(); got != "Knight" {
		t.Errorf("Knight.String() = %q", got)
	}
}

func TestColourString(t *testing.T) {
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("colours = %q, %q", White, Black)
	}
}
