// Package testutil provides shared test helpers for code that consumes
// parsed games.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
)

// AssertGameEqual reports the structural difference between two games.
func AssertGameEqual(t testing.TB, want, got *chess.Game) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("game mismatch (-want +got):\n%s", diff)
	}
}

// MainLine returns the movetext of each main-line move of g.
func MainLine(g *chess.Game) []string {
	moves := make([]string, 0, len(g.Moves))
	for _, gm := range g.Moves {
		moves = append(moves, gm.Move.String())
	}
	return moves
}

// AssertMainLine checks the main line of g against the expected moves,
// written as in movetext without numbers, e.g. "e4", "Nf3+", "O-O".
func AssertMainLine(t testing.TB, g *chess.Game, want ...string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	if diff := cmp.Diff(want, MainLine(g)); diff != "" {
		t.Errorf("main line mismatch (-want +got):\n%s", diff)
	}
}
