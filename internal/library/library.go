// Package library pages through a directory of stored .pgn files.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
	"github.com/lgbarn/pgn-notation-go/internal/parser"
)

// Entry is one stored file. The player and event fields are empty until
// Describe fills them from the file's first game.
type Entry struct {
	Path    string
	White   string
	Black   string
	Event   string
	Round   string
	Missing []string // Seven-tag-roster names the first game lacks
}

// Name returns the file name without its directory.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

func files(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.pgn"))
	if err != nil {
		return nil, pgnerrors.Wrapf(err, "list %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}

// List returns the entries at positions from through to, inclusive, of the
// sorted .pgn files in dir. Positions past the end are ignored. A missing
// directory holds no files.
func List(dir string, from, to int) ([]Entry, error) {
	if from < 0 || from > to {
		return nil, fmt.Errorf("%w: from %d, to %d", pgnerrors.ErrInvalidRange, from, to)
	}
	paths, err := files(dir)
	if err != nil {
		return nil, err
	}
	if from >= len(paths) {
		return []Entry{}, nil
	}
	end := to + 1
	if end > len(paths) {
		end = len(paths)
	}

	entries := make([]Entry, 0, end-from)
	for _, p := range paths[from:end] {
		entries = append(entries, Entry{Path: p})
	}
	return entries, nil
}

// Count returns the number of .pgn files in dir.
func Count(dir string) (int, error) {
	paths, err := files(dir)
	return len(paths), err
}

// Describe reads the entry's file and returns a copy of e carrying the
// players, event and round of its first parseable game, and the roster tags
// that game is missing.
func Describe(e Entry, r *parser.Reader) (Entry, error) {
	f, err := os.Open(e.Path)
	if err != nil {
		return e, pgnerrors.Wrap(err, "open game file")
	}
	defer f.Close()

	games, err := r.ReadAllGames(f)
	if err != nil {
		return e, err
	}
	if len(games) == 0 {
		return e, fmt.Errorf("%s: %w", e.Path, pgnerrors.ErrNoGame)
	}

	g := games[0]
	e.White = g.GetTag(chess.TagWhite)
	e.Black = g.GetTag(chess.TagBlack)
	e.Event = g.GetTag(chess.TagEvent)
	e.Round = g.GetTag(chess.TagRound)
	e.Missing = chess.MissingRosterTags(g)
	return e, nil
}
