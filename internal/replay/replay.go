// Package replay plays the main line of a parsed game on a rules engine,
// one ply at a time, yielding the position after each move.
package replay

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
)

// Step is the state after one ply.
type Step struct {
	Ply     int    // 1-based
	SAN     string // The move as written, with marks and annotation
	UCI     string
	From    string
	To      string
	FEN     string // Position after the move
	Comment string
	Final   bool // Last main-line move
}

// Replay steps through a game's main line. It is not safe for concurrent use.
type Replay struct {
	source *chess.Game
	start  []func(*nchess.Game)
	engine *nchess.Game
	ply    int
}

// New prepares a replay of g from its FEN tag, or from the standard
// starting position when there is none.
func New(g *chess.Game) (*Replay, error) {
	r := &Replay{source: g}
	if fen := strings.TrimSpace(g.FEN()); fen != "" {
		opt, err := nchess.FEN(fen)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", pgnerrors.ErrInvalidFEN, fen, err)
		}
		r.start = append(r.start, opt)
	}
	r.Reset()
	return r, nil
}

// Reset returns to the starting position.
func (r *Replay) Reset() {
	r.engine = nchess.NewGame(r.start...)
	r.ply = 0
}

// Ply returns the number of moves played so far.
func (r *Replay) Ply() int { return r.ply }

// Done reports whether every main-line move has been played.
func (r *Replay) Done() bool { return r.ply >= len(r.source.Moves) }

// FEN returns the current position.
func (r *Replay) FEN() string { return r.engine.FEN() }

// Next plays the next main-line move. It returns a *errors.GameError
// wrapping ErrIllegalMove if the engine cannot play it, and false once the
// main line is exhausted.
func (r *Replay) Next() (Step, bool, error) {
	if r.Done() {
		return Step{}, false, nil
	}
	gm := r.source.Moves[r.ply]

	pos := r.engine.Position()
	mv, err := resolve(pos, gm.Move.Move)
	if err == nil {
		err = r.engine.Move(mv, nil)
	}
	if err != nil {
		return Step{}, true, &pgnerrors.GameError{
			Err:      fmt.Errorf("%w: %v", pgnerrors.ErrIllegalMove, err),
			PlyNum:   r.ply + 1,
			MoveText: gm.Move.String(),
		}
	}
	r.ply++

	step := Step{
		Ply:   r.ply,
		SAN:   gm.Move.String(),
		UCI:   nchess.UCINotation{}.Encode(pos, mv),
		From:  mv.S1().String(),
		To:    mv.S2().String(),
		FEN:   r.engine.FEN(),
		Final: r.Done(),
	}
	if gm.Comment != nil {
		step.Comment = *gm.Comment
	}
	return step, true, nil
}

// Undo takes back the last move by replaying up to the ply before it. It
// reports false at the start position.
func (r *Replay) Undo() (bool, error) {
	if r.ply == 0 {
		return false, nil
	}
	target := r.ply - 1
	r.Reset()
	for r.ply < target {
		if _, _, err := r.Next(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Play replays the whole main line of g.
func Play(g *chess.Game) ([]Step, error) {
	r, err := New(g)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(g.Moves))
	for {
		step, ok, err := r.Next()
		if err != nil {
			return steps, err
		}
		if !ok {
			return steps, nil
		}
		steps = append(steps, step)
	}
}

// resolve finds the engine move for m. Notation is decoded as SAN; an
// origin hint the engine considers redundant is dropped and retried.
func resolve(pos *nchess.Position, m chess.Move) (*nchess.Move, error) {
	notation := nchess.AlgebraicNotation{}
	mv, err := notation.Decode(pos, m.String())
	if err == nil {
		return mv, nil
	}
	if m.Kind == chess.BasicMove && m.From.IsKnown() {
		if mv, retryErr := notation.Decode(pos, m.WithFrom(chess.UnknownSquare).String()); retryErr == nil {
			return mv, nil
		}
	}
	return nil, err
}
