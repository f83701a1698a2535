package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
)

// Character classes.

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune("_+#=:", r)
}

func notLineEnd(r rune) bool { return r != '\r' && r != '\n' }

func notBlockEnd(r rune) bool { return r != '}' }

// skipSpace drops any leading whitespace.
func skipSpace(s string) string {
	_, rest := scanWhile(s, unicode.IsSpace)
	return rest
}

func optionalWhitespace(input string) (string, string, error) {
	ws, rest := scanWhile(input, unicode.IsSpace)
	return ws, rest, nil
}

func whitespace(input string) (string, string, error) {
	return scanWhileNonEmpty(input, unicode.IsSpace)
}

// integer parses the maximal leading run of ASCII digits.
func integer(input string) (uint32, string, error) {
	digits, rest, err := scanWhileNonEmpty(input, isDigit)
	if err != nil {
		return 0, input, err
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, input, errNoMatch
	}
	return uint32(n), rest, nil
}

func symbol(input string) (string, string, error) {
	return scanWhileNonEmpty(input, isSymbolChar)
}

// stringChar reads one character of a quoted string body. Only \" and \\
// are escapes; anything else except a bare quote is taken literally.
func stringChar(input string) (string, string, error) {
	switch {
	case strings.HasPrefix(input, `\"`):
		return `"`, input[2:], nil
	case strings.HasPrefix(input, `\\`):
		return `\`, input[2:], nil
	case strings.HasPrefix(input, `"`):
		return "", input, errNoMatch
	}
	_, rest, err := readOneChar(input)
	if err != nil {
		return "", input, err
	}
	return input[:len(input)-len(rest)], rest, nil
}

func quotedString(input string) (string, string, error) {
	rest, ok := strings.CutPrefix(input, `"`)
	if !ok {
		return "", input, errNoMatch
	}
	var b strings.Builder
	for {
		s, next, err := stringChar(rest)
		if err != nil {
			break
		}
		b.WriteString(s)
		rest = next
	}
	if rest, ok = strings.CutPrefix(rest, `"`); !ok {
		return "", input, errNoMatch
	}
	return b.String(), rest, nil
}

// Tags.

func tagPair(input string) (chess.TagPair, string, error) {
	rest, ok := strings.CutPrefix(input, "[")
	if !ok {
		return chess.TagPair{}, input, errNoMatch
	}
	rest = skipSpace(rest)

	name, rest, err := symbol(rest)
	if err != nil {
		return chess.TagPair{}, input, errNoMatch
	}
	if _, rest, err = whitespace(rest); err != nil {
		return chess.TagPair{}, input, errNoMatch
	}
	value, rest, err := quotedString(rest)
	if err != nil {
		return chess.TagPair{}, input, errNoMatch
	}
	rest = skipSpace(rest)

	if rest, ok = strings.CutPrefix(rest, "]"); !ok {
		return chess.TagPair{}, input, errNoMatch
	}
	return chess.TagPair{Name: name, Value: value}, rest, nil
}

var tagSection = many(terminated[chess.TagPair, string](tagPair, optionalWhitespace))

var termination = alt(
	is("1-0", chess.WhiteWins),
	is("0-1", chess.BlackWins),
	is("1/2-1/2", chess.DrawnGame),
	is("*", chess.Unknown),
)

// Moves.

// moveNumber parses "12." as White(12) and "12..." as Black(12).
func moveNumber(input string) (chess.MoveNumber, string, error) {
	n, rest, err := integer(input)
	if err != nil {
		return chess.MoveNumber{}, input, err
	}
	rest, ok := strings.CutPrefix(rest, ".")
	if !ok {
		return chess.MoveNumber{}, input, errNoMatch
	}
	if rest, ok = strings.CutPrefix(rest, ".."); ok {
		return chess.MoveNumber{Number: n, Colour: chess.Black}, rest, nil
	}
	return chess.MoveNumber{Number: n, Colour: chess.White}, rest, nil
}

var fileLetter = alt(
	is("a", chess.FileA),
	is("b", chess.FileB),
	is("c", chess.FileC),
	is("d", chess.FileD),
	is("e", chess.FileE),
	is("f", chess.FileF),
	is("g", chess.FileG),
	is("h", chess.FileH),
)

var rankDigit = alt(
	is("1", chess.Rank1),
	is("2", chess.Rank2),
	is("3", chess.Rank3),
	is("4", chess.Rank4),
	is("5", chess.Rank5),
	is("6", chess.Rank6),
	is("7", chess.Rank7),
	is("8", chess.Rank8),
)

// pieceLetter parses one of PNBRQK. Pawns are rarely written with a letter;
// the default is applied by basicMove.
func pieceLetter(input string) (chess.Piece, string, error) {
	if input == "" {
		return chess.NoPiece, input, errNoMatch
	}
	p, ok := chess.PieceFromLetter(input[0])
	if !ok {
		return chess.NoPiece, input, errNoMatch
	}
	return p, input[1:], nil
}

func square(input string) (chess.Square, string, error) {
	f, rest, err := fileLetter(input)
	if err != nil {
		return chess.UnknownSquare, input, err
	}
	r, rest, err := rankDigit(rest)
	if err != nil {
		return chess.UnknownSquare, input, err
	}
	return chess.NewSquare(f, r), rest, nil
}

var originHint = alt(
	rule[chess.Square](square),
	convert(fileLetter, chess.FileSquare),
	convert(rankDigit, chess.RankSquare),
)

var captureOrFileNext = followedBy(alt(literal("x"), convert(fileLetter, chess.File.String)))

// moveDisambiguation parses the origin hint of a move. The hint is only
// taken when a capture mark or another file follows; otherwise the text is
// the destination square itself.
func moveDisambiguation(input string) (chess.Square, string, error) {
	from, rest, err := originHint(input)
	if err != nil {
		return chess.UnknownSquare, input, err
	}
	if _, _, err := captureOrFileNext(rest); err != nil {
		return chess.UnknownSquare, input, err
	}
	return from, rest, nil
}

var (
	optionalPiece = maybe(rule[chess.Piece](pieceLetter))
	optionalHint  = maybe(rule[chess.Square](moveDisambiguation))
	captureMark   = present(literal("x"))
	promotion     = maybe(preceded(literal("="), rule[chess.Piece](pieceLetter)))
)

func basicMove(input string) (chess.Move, string, error) {
	piece, rest, _ := optionalPiece(input)
	from, rest, _ := optionalHint(rest)
	capture, rest, _ := captureMark(rest)

	to, rest, err := square(rest)
	if err != nil {
		return chess.Move{}, input, err
	}
	promoted, rest, _ := promotion(rest)

	m := chess.NewMove(chess.Pawn, to)
	if piece != nil {
		m.Piece = *piece
	}
	if from != nil {
		m = m.WithFrom(*from)
	}
	if capture {
		m = m.Capture()
	}
	if promoted != nil {
		m = m.WithPromotion(*promoted)
	}
	return m, rest, nil
}

// Two-character symbols come first since "?" and "!" prefix them.
var annotationSymbol = alt(
	is("??", chess.Blunder),
	is("?!", chess.Dubious),
	is("!?", chess.Interesting),
	is("!!", chess.Brilliant),
	is("?", chess.Mistake),
	is("!", chess.Good),
)

// "O-O-O" must be tried before its prefix "O-O".
var moveBody = alt(
	rule[chess.Move](basicMove),
	is("O-O-O", chess.QueensideCastle),
	is("O-O", chess.KingsideCastle),
)

var (
	checkMark          = present(literal("+"))
	checkmateMark      = present(literal("#"))
	optionalAnnotation = maybe(annotationSymbol)
)

func markedMove(input string) (chess.MarkedMove, string, error) {
	m, rest, err := moveBody(input)
	if err != nil {
		return chess.MarkedMove{}, input, err
	}
	check, rest, _ := checkMark(rest)
	mate, rest, _ := checkmateMark(rest)
	ann, rest, _ := optionalAnnotation(rest)

	mm := chess.MarkedMove{Move: m, IsCheck: check, IsCheckmate: mate}
	if ann != nil {
		mm.Annotation = *ann
	}
	return mm, rest, nil
}

func nag(input string) (chess.NAG, string, error) {
	rest, ok := strings.CutPrefix(input, "$")
	if !ok {
		return 0, input, errNoMatch
	}
	n, rest, err := integer(rest)
	if err != nil {
		return 0, input, err
	}
	return chess.NAG(n), rest, nil
}

// Comments.

var lineEnd = alt(literal("\r\n"), literal("\r"), literal("\n"))

// inlineComment reads ";" up to the end of the line and consumes the line
// terminator. A comment that runs to the end of input is also accepted.
func inlineComment(input string) (string, string, error) {
	rest, ok := strings.CutPrefix(input, ";")
	if !ok {
		return "", input, errNoMatch
	}
	text, rest := scanWhile(rest, notLineEnd)
	if rest == "" {
		return text, rest, nil
	}
	if _, rest, err := lineEnd(rest); err == nil {
		return text, rest, nil
	}
	return "", input, errNoMatch
}

func blockComment(input string) (string, string, error) {
	rest, ok := strings.CutPrefix(input, "{")
	if !ok {
		return "", input, errNoMatch
	}
	text, rest := scanWhile(rest, notBlockEnd)
	if rest, ok = strings.CutPrefix(rest, "}"); !ok {
		return "", input, errNoMatch
	}
	return text, rest, nil
}

var comment = alt(rule[string](inlineComment), rule[string](blockComment))

// Movetext. variation, gameMove and moveSequence are mutually recursive, so
// they are plain functions rather than package-level rule values.

// variation parses a parenthesised alternative line.
func variation(input string) (chess.MoveSequence, string, error) {
	rest, ok := strings.CutPrefix(input, "(")
	if !ok {
		return chess.MoveSequence{}, input, errNoMatch
	}
	seq, rest, _ := moveSequence(skipSpace(rest))
	if rest, ok = strings.CutPrefix(rest, ")"); !ok {
		return chess.MoveSequence{}, input, errNoMatch
	}
	return seq, skipSpace(rest), nil
}

func gameMove(input string) (chess.GameMove, string, error) {
	var gm chess.GameMove
	rest := input

	if n, next, err := moveNumber(rest); err == nil {
		gm.Number = &n
		rest = skipSpace(next)
	}

	mm, rest, err := markedMove(rest)
	if err != nil {
		return chess.GameMove{}, input, err
	}
	gm.Move = mm
	rest = skipSpace(rest)

	if n, next, err := nag(rest); err == nil {
		gm.NAG = &n
		rest = skipSpace(next)
	}
	if c, next, err := comment(rest); err == nil {
		gm.Comment = &c
		rest = skipSpace(next)
	}

	gm.Variations, rest, _ = many[chess.MoveSequence](variation)(rest)
	return gm, rest, nil
}

// moveSequence parses an optional leading comment and zero or more moves.
// It always succeeds.
func moveSequence(input string) (chess.MoveSequence, string, error) {
	var seq chess.MoveSequence
	rest := input

	if c, next, err := comment(rest); err == nil {
		seq.Comment = &c
		rest = skipSpace(next)
	}

	seq.Moves, rest, _ = many(terminated[chess.GameMove, string](gameMove, optionalWhitespace))(rest)
	return seq, rest, nil
}

// game parses tags, movetext and the termination token, then any trailing
// whitespace.
func game(input string) (*chess.Game, string, error) {
	tags, rest, _ := tagSection(input)
	seq, rest, _ := moveSequence(rest)

	term, rest, err := termination(rest)
	if err != nil {
		return nil, input, err
	}
	return &chess.Game{
		Tags:        tags,
		Comment:     seq.Comment,
		Moves:       seq.Moves,
		Termination: term,
	}, skipSpace(rest), nil
}
