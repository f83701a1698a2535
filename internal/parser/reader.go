// Package parser turns PGN-like notation into chess.Game values.
//
// The grammar is a set of small ordered-choice rules over an immutable
// string cursor. A rule that does not match returns its input unchanged,
// so trying the next alternative is simply calling it on the same string.
// Reader drives the top-level game rule over a multi-game text and skips
// malformed games by scanning to the next termination token.
package parser

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
)

// Skipped describes a region of input the reader dropped because no game
// could be parsed from it.
type Skipped struct {
	Offset int    // Byte offset of the region in the input
	Line   int    // 1-based line of the region start
	Text   string // The dropped text, up to and including the termination token
}

// Reader parses multi-game input. A Reader is safe for concurrent use as
// long as its skip handler is.
type Reader struct {
	logger *zap.Logger
	onSkip func(Skipped)
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used to report skipped games.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSkipHandler registers fn to be called for every skipped region.
func WithSkipHandler(fn func(Skipped)) Option {
	return func(r *Reader) {
		r.onSkip = fn
	}
}

// NewReader creates a Reader. Without options it logs nowhere.
func NewReader(opts ...Option) *Reader {
	r := &Reader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadGames parses every game in input, in order. Games whose text cannot be
// parsed are dropped and reading resumes after the next termination token.
// Malformed input never produces an error; an input with no parseable game
// yields an empty result.
func ReadGames(input string) []*chess.Game {
	return NewReader().ReadGames(input)
}

// ReadGames parses every game in input, in order. See the package-level
// ReadGames for the recovery behaviour.
func (r *Reader) ReadGames(input string) []*chess.Game {
	var games []*chess.Game

	rest := skipSpace(input)
	for rest != "" {
		g, next, err := game(rest)
		if err == nil {
			games = append(games, g)
			rest = skipSpace(next)
			continue
		}

		end := nextTermination(rest)
		if end < 0 {
			r.skip(input, rest, rest)
			break
		}
		r.skip(input, rest, rest[:end])
		rest = skipSpace(rest[end:])
	}

	return games
}

// ReadAllGames reads all of src and parses the games in it.
func (r *Reader) ReadAllGames(src io.Reader) ([]*chess.Game, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, pgnerrors.Wrap(err, "read input")
	}
	return r.ReadGames(string(data)), nil
}

func (r *Reader) skip(input, at, text string) {
	offset := len(input) - len(at)
	line, _ := position(input[:offset])
	s := Skipped{
		Offset: offset,
		Line:   line,
		Text:   text,
	}
	r.logger.Debug("pgn_game_skipped",
		zap.Int("offset", s.Offset),
		zap.Int("line", s.Line),
		zap.Int("length", len(s.Text)),
	)
	if r.onSkip != nil {
		r.onSkip(s)
	}
}

var terminationTokens = [...]string{"1-0", "0-1", "1/2-1/2", "*"}

// nextTermination finds the next termination token in s that starts a
// token and is not directly followed by '"' or '}', and returns the index
// just past it, or -1. The quote and brace checks keep result strings in
// tag values and comments such as {won 1-0} from matching; other
// occurrences inside comments still match.
func nextTermination(s string) int {
	for i := 0; i < len(s); i++ {
		if i > 0 && !startsToken(s[:i]) {
			continue
		}
		for _, tok := range terminationTokens {
			if !strings.HasPrefix(s[i:], tok) {
				continue
			}
			end := i + len(tok)
			if end < len(s) && (s[end] == '"' || s[end] == '}') {
				continue
			}
			return end
		}
	}
	return -1
}

// startsToken reports whether a token may begin right after before.
func startsToken(before string) bool {
	r, _ := utf8.DecodeLastRuneInString(before)
	return unicode.IsSpace(r) || r == ')' || r == ']' || r == '}'
}

// ParseGame parses input as exactly one game. Unlike ReadGames it reports
// failure: the returned *errors.ParseError locates where parsing stopped.
func ParseGame(input string) (*chess.Game, error) {
	start := skipSpace(input)
	if start == "" {
		return nil, pgnerrors.ErrNoGame
	}

	g, rest, err := game(start)
	if err != nil {
		return nil, parseErrorAt(input, stoppedAt(start))
	}
	if rest != "" {
		return nil, parseErrorAt(input, rest)
	}
	return g, nil
}

// stoppedAt returns the input left where the game rule gave up: after the
// tags and the longest move sequence, where a termination was expected.
func stoppedAt(input string) string {
	_, rest, _ := tagSection(input)
	_, rest, _ = moveSequence(rest)
	return rest
}

const snippetLen = 12

// position returns the 1-based line reached at the end of consumed and the
// byte index where that line starts. "\r\n", "\r" and "\n" each end a line.
func position(consumed string) (line, lineStart int) {
	line = 1
	for i := 0; i < len(consumed); i++ {
		switch consumed[i] {
		case '\r':
			if i+1 < len(consumed) && consumed[i+1] == '\n' {
				i++
			}
		case '\n':
		default:
			continue
		}
		line++
		lineStart = i + 1
	}
	return line, lineStart
}

func parseErrorAt(input, rest string) *pgnerrors.ParseError {
	offset := len(input) - len(rest)
	consumed := input[:offset]

	line, lineStart := position(consumed)
	column := utf8.RuneCountInString(consumed[lineStart:]) + 1

	got, _ := scanWhile(rest, notLineEnd)
	if utf8.RuneCountInString(got) > snippetLen {
		got = string([]rune(got)[:snippetLen])
	}

	return &pgnerrors.ParseError{
		Err:    pgnerrors.ErrParseFailure,
		Line:   line,
		Column: column,
		Got:    got,
	}
}
