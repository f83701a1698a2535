package chess

import (
	"strconv"
	"strings"
)

// MoveKind distinguishes ordinary moves from the two castling moves.
type MoveKind int

const (
	BasicMove MoveKind = iota
	CastleKingside
	CastleQueenside
)

// Move is a single move as written in movetext. For castling moves only
// Kind is meaningful.
type Move struct {
	Kind MoveKind

	// The piece being moved. Pawn when no piece letter was written.
	Piece Piece

	// Destination square, always fully known for a BasicMove.
	To Square

	// Origin square as far as the disambiguation text specified it.
	// UnknownSquare when no disambiguation was present.
	From Square

	IsCapture bool

	// Promotion piece, or NoPiece.
	PromotedTo Piece
}

// Castling moves.
var (
	KingsideCastle  = Move{Kind: CastleKingside, From: UnknownSquare, To: UnknownSquare}
	QueensideCastle = Move{Kind: CastleQueenside, From: UnknownSquare, To: UnknownSquare}
)

// NewMove creates a basic move of piece to square to with no origin hint.
func NewMove(piece Piece, to Square) Move {
	return Move{
		Kind:  BasicMove,
		Piece: piece,
		To:    to,
		From:  UnknownSquare,
	}
}

// WithFrom returns a copy of m with the origin square set.
func (m Move) WithFrom(from Square) Move {
	if m.Kind != BasicMove {
		return m
	}
	m.From = from
	return m
}

// Capture returns a copy of m marked as a capture.
func (m Move) Capture() Move {
	if m.Kind != BasicMove {
		return m
	}
	m.IsCapture = true
	return m
}

// WithPromotion returns a copy of m promoting to piece.
func (m Move) WithPromotion(piece Piece) Move {
	if m.Kind != BasicMove {
		return m
	}
	m.PromotedTo = piece
	return m
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == CastleKingside || m.Kind == CastleQueenside
}

// Promotion returns the promotion piece and whether the move promotes.
func (m Move) Promotion() (Piece, bool) {
	return m.PromotedTo, m.PromotedTo != NoPiece
}

// String returns the move in algebraic notation without check marks.
// Pawn letters are omitted.
func (m Move) String() string {
	switch m.Kind {
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	}
	var b strings.Builder
	if m.Piece != Pawn && m.Piece != NoPiece {
		b.WriteByte(m.Piece.Letter())
	}
	b.WriteString(m.From.String())
	if m.IsCapture {
		b.WriteByte('x')
	}
	b.WriteString(m.To.String())
	if p, ok := m.Promotion(); ok {
		b.WriteByte('=')
		b.WriteByte(p.Letter())
	}
	return b.String()
}

// Unmarked wraps m in a MarkedMove with no check flags or annotation.
func (m Move) Unmarked() MarkedMove {
	return MarkedMove{Move: m}
}

// Check wraps m in a MarkedMove flagged as check.
func (m Move) Check() MarkedMove {
	return MarkedMove{Move: m, IsCheck: true}
}

// Checkmate wraps m in a MarkedMove flagged as checkmate.
func (m Move) Checkmate() MarkedMove {
	return MarkedMove{Move: m, IsCheckmate: true}
}

// AnnotationSymbol is a move assessment written with ! and ? marks.
type AnnotationSymbol int

const (
	NoAnnotation AnnotationSymbol = iota
	Blunder
	Mistake
	Dubious
	Interesting
	Good
	Brilliant
)

var annotationText = [...]string{
	NoAnnotation: "",
	Blunder:      "??",
	Mistake:      "?",
	Dubious:      "?!",
	Interesting:  "!?",
	Good:         "!",
	Brilliant:    "!!",
}

// String returns the movetext form of the symbol.
func (a AnnotationSymbol) String() string {
	if a >= 0 && int(a) < len(annotationText) {
		return annotationText[a]
	}
	return ""
}

// MarkedMove is a move together with its check marks and annotation.
type MarkedMove struct {
	Move        Move
	IsCheck     bool
	IsCheckmate bool
	Annotation  AnnotationSymbol
}

// Annotated returns a copy of mm carrying the given annotation symbol.
func (mm MarkedMove) Annotated(symbol AnnotationSymbol) MarkedMove {
	mm.Annotation = symbol
	return mm
}

// Numbered turns mm into a GameMove with the given optional move number.
func (mm MarkedMove) Numbered(number *MoveNumber) GameMove {
	return GameMove{
		Number: number,
		Move:   mm,
	}
}

// String returns the move followed by its check marks and annotation.
func (mm MarkedMove) String() string {
	s := mm.Move.String()
	if mm.IsCheck {
		s += "+"
	}
	if mm.IsCheckmate {
		s += "#"
	}
	return s + mm.Annotation.String()
}

// MoveNumber is a numbered move indicator, "12." for White or "12..." for Black.
type MoveNumber struct {
	Number uint32
	Colour Colour
}

// WhiteNumber returns a pointer to the White move number n.
func WhiteNumber(n uint32) *MoveNumber {
	return &MoveNumber{Number: n, Colour: White}
}

// BlackNumber returns a pointer to the Black move number n.
func BlackNumber(n uint32) *MoveNumber {
	return &MoveNumber{Number: n, Colour: Black}
}

// String returns the movetext form of the move number.
func (n MoveNumber) String() string {
	s := strconv.FormatUint(uint64(n.Number), 10)
	if n.Colour == Black {
		return s + "..."
	}
	return s + "."
}

// NAG represents a Numeric Annotation Glyph such as $1.
type NAG uint32

// String returns the movetext form of the glyph.
func (n NAG) String() string {
	return "$" + strconv.FormatUint(uint64(n), 10)
}

// GameMove is one node of the move tree: a move and the alternative
// lines branching from it.
type GameMove struct {
	Number     *MoveNumber
	Move       MarkedMove
	NAG        *NAG
	Comment    *string
	Variations []MoveSequence
}

// WithNAG returns a copy of gm carrying the given glyph.
func (gm GameMove) WithNAG(value NAG) GameMove {
	gm.NAG = &value
	return gm
}

// WithComment returns a copy of gm carrying the given comment.
func (gm GameMove) WithComment(text string) GameMove {
	gm.Comment = &text
	return gm
}

// WithVariations returns a copy of gm with its variations replaced.
func (gm GameMove) WithVariations(variations ...MoveSequence) GameMove {
	gm.Variations = variations
	return gm
}

// HasVariations returns true if this move has any variations.
func (gm GameMove) HasVariations() bool {
	return len(gm.Variations) > 0
}

// Depth returns the deepest level of variation nesting below this move.
func (gm GameMove) Depth() int {
	depth := 0
	for _, v := range gm.Variations {
		if d := v.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// MoveSequence is a line of moves with an optional leading comment. It is
// used for the main line and for each variation.
type MoveSequence struct {
	Comment *string
	Moves   []GameMove
}

// Depth returns the deepest level of variation nesting within the sequence.
func (ms MoveSequence) Depth() int {
	depth := 0
	for _, m := range ms.Moves {
		if d := m.Depth(); d > depth {
			depth = d
		}
	}
	return depth
}
