// Package chess provides the typed values produced by the PGN notation parser.
package chess

// Colour represents the side a move number belongs to.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// File represents a board file (column), a to h.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	NoFile // Unknown file in a partially specified square
)

// Rank represents a board rank (row), 1 to 8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	NoRank // Unknown rank in a partially specified square
)

// IsValid reports whether f names one of the eight files.
func (f File) IsValid() bool { return f < NoFile }

// IsValid reports whether r names one of the eight ranks.
func (r Rank) IsValid() bool { return r < NoRank }

// Letter returns the file letter, or '?' for NoFile.
func (f File) Letter() byte {
	if !f.IsValid() {
		return '?'
	}
	return 'a' + byte(f)
}

// Digit returns the rank digit, or '?' for NoRank.
func (r Rank) Digit() byte {
	if !r.IsValid() {
		return '?'
	}
	return '1' + byte(r)
}

func (f File) String() string { return string(f.Letter()) }

func (r Rank) String() string { return string(r.Digit()) }

// Square is a board coordinate whose file, rank or both may be unknown.
// It is encoded as 9*file + rank, where 8 on either axis means unknown,
// giving 81 distinct values.
type Square uint8

const axisValues = 9

// UnknownSquare is the square with neither file nor rank known.
const UnknownSquare = Square(axisValues*uint8(NoFile) + uint8(NoRank))

// NewSquare returns the fully known square at file f and rank r.
// Out of range coordinates are treated as unknown.
func NewSquare(f File, r Rank) Square {
	if !f.IsValid() {
		f = NoFile
	}
	if !r.IsValid() {
		r = NoRank
	}
	return Square(axisValues*uint8(f) + uint8(r))
}

// FileSquare returns a square where only the file is known.
func FileSquare(f File) Square { return NewSquare(f, NoRank) }

// RankSquare returns a square where only the rank is known.
func RankSquare(r Rank) Square { return NewSquare(NoFile, r) }

// File returns the square's file and whether it is known.
func (s Square) File() (File, bool) {
	f := File(uint8(s) / axisValues)
	return f, f.IsValid()
}

// Rank returns the square's rank and whether it is known.
func (s Square) Rank() (Rank, bool) {
	r := Rank(uint8(s) % axisValues)
	return r, r.IsValid()
}

// IsKnown reports whether both file and rank are known.
func (s Square) IsKnown() bool {
	_, fok := s.File()
	_, rok := s.Rank()
	return fok && rok
}

// IsUnknown reports whether neither file nor rank is known.
func (s Square) IsUnknown() bool { return s == UnknownSquare }

// String returns the known parts of the square: "f1", "g", "1" or "".
func (s Square) String() string {
	var b []byte
	if f, ok := s.File(); ok {
		b = append(b, f.Letter())
	}
	if r, ok := s.Rank(); ok {
		b = append(b, r.Digit())
	}
	return string(b)
}

// Piece represents a chess piece type.
type Piece int

const (
	NoPiece Piece = iota // Absent piece, e.g. no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter used for a piece in movetext.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter maps a movetext piece letter to a Piece.
func PieceFromLetter(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return NoPiece, false
}
