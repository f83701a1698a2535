package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
	"github.com/lgbarn/pgn-notation-go/internal/parser"
)

// MustParseGame parses text as exactly one game and fails the test
// otherwise.
func MustParseGame(t testing.TB, text string) *chess.Game {
	t.Helper()
	g, err := parser.ParseGame(text)
	if err != nil {
		t.Fatalf("failed to parse test game: %v\n%s", err, text)
	}
	return g
}

// MustReadGames reads every game in text and fails the test unless there
// are exactly n.
func MustReadGames(t testing.TB, text string, n int) []*chess.Game {
	t.Helper()
	games := parser.ReadGames(text)
	if len(games) != n {
		t.Fatalf("read %d games; want %d\n%s", len(games), n, text)
	}
	return games
}

// WriteFiles creates a temporary directory holding the named files and
// returns its path.
func WriteFiles(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
