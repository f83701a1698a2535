package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
	"github.com/lgbarn/pgn-notation-go/internal/config"
	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
	"github.com/lgbarn/pgn-notation-go/internal/library"
	"github.com/lgbarn/pgn-notation-go/internal/output"
	"github.com/lgbarn/pgn-notation-go/internal/parser"
	"github.com/lgbarn/pgn-notation-go/internal/replay"
	"github.com/lgbarn/pgn-notation-go/internal/worker"
)

const stdinName = "<stdin>"

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse game files and write them back out",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: pgn, json or yaml",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"j"},
				Usage:   "Number of files parsed concurrently",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Require each input to hold exactly one well-formed game",
			},
		},
		Action: runParse,
	}
}

func runParse(c *cli.Context) error {
	e := getEnv(c)
	out := e.cfg.Output
	if c.IsSet("format") {
		f, err := config.ParseFormat(c.String("format"))
		if err != nil {
			return err
		}
		out.Format = f
	}
	workers := e.cfg.Parse.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	docs, err := readDocuments(c.Args().Slice(), c.App.Reader)
	if err != nil {
		return err
	}

	var (
		games    []*chess.Game
		failures []error
	)
	if c.Bool("strict") {
		games, err = parseStrict(docs)
		if err != nil {
			return err
		}
	} else {
		r := parser.NewReader(parser.WithLogger(e.logger))
		batches := r.ReadBatch(docs,
			worker.WithWorkers(workers),
			worker.WithBufferSize(e.cfg.Parse.BufferSize),
		)
		for _, b := range batches {
			if b.Err != nil {
				e.logger.Error("pgn_file_failed", zap.String("file", b.Name), zap.Error(b.Err))
				failures = append(failures, b.Err)
				continue
			}
			e.logger.Info("pgn_file_parsed",
				zap.String("file", b.Name),
				zap.Int("games", len(b.Games)),
				zap.Int("skipped", len(b.Skipped)),
			)
			games = append(games, b.Games...)
		}
	}

	if len(games) == 0 {
		e.logger.Warn("pgn_no_games", zap.Int("files", len(docs)))
	}

	w, err := output.NewWriter(c.App.Writer, &out)
	if err != nil {
		return err
	}
	for _, g := range games {
		if err := w.WriteGame(g); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return errors.Join(failures...)
}

func parseStrict(docs []parser.Document) ([]*chess.Game, error) {
	games := make([]*chess.Game, 0, len(docs))
	for _, d := range docs {
		body, err := d.Load()
		if err != nil {
			return nil, err
		}
		g, err := parser.ParseGame(body)
		if err != nil {
			var pe *pgnerrors.ParseError
			if errors.As(err, &pe) {
				pe.File = d.Name
				return nil, pe
			}
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		games = append(games, g)
	}
	return games, nil
}

// readDocuments names the files to parse, or reads stdin when there are
// none. Files are read later by the parsing workers.
func readDocuments(paths []string, stdin io.Reader) ([]parser.Document, error) {
	if len(paths) == 0 {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, pgnerrors.Wrap(err, "read stdin")
		}
		return []parser.Document{{Name: stdinName, Text: string(data)}}, nil
	}

	docs := make([]parser.Document, 0, len(paths))
	for _, p := range paths {
		docs = append(docs, parser.Document{Name: p, Path: p})
	}
	return docs, nil
}

// newTable returns a table rendering to w. Footers keep their case.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List stored game files with their players",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Library directory (defaults to library.dir)",
			},
			&cli.IntFlag{
				Name:  "from",
				Usage: "First position to list, counting from 0",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  "to",
				Usage: "Last position to list, inclusive",
				Value: 9,
			},
		},
		Action: runList,
	}
}

func runList(c *cli.Context) error {
	e := getEnv(c)
	dir := e.cfg.Library.Dir
	if c.IsSet("dir") {
		dir = c.String("dir")
	}

	from := c.Int("from")
	entries, err := library.List(dir, from, c.Int("to"))
	if err != nil {
		return err
	}
	total, err := library.Count(dir)
	if err != nil {
		return err
	}

	r := parser.NewReader(parser.WithLogger(e.logger))
	t := newTable(c.App.Writer)
	t.AppendHeader(table.Row{"#", "File", "White", "Black", "Event", "Round", "Missing"})
	for i, entry := range entries {
		described, err := library.Describe(entry, r)
		if err != nil {
			e.logger.Warn("pgn_describe_failed", zap.String("file", entry.Path), zap.Error(err))
			described = entry
		}
		t.AppendRow(table.Row{
			from + i,
			described.Name(),
			described.White,
			described.Black,
			described.Event,
			described.Round,
			strings.Join(described.Missing, ", "),
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d of %d", len(entries), total)})
	t.Render()
	return nil
}

func replayCommand() *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "Replay a game's main line and show each position",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "game",
				Aliases: []string{"g"},
				Usage:   "Game to replay, counting from 1",
				Value:   1,
			},
		},
		Action: runReplay,
	}
}

func runReplay(c *cli.Context) error {
	e := getEnv(c)
	if c.NArg() != 1 {
		return errors.New("replay takes exactly one FILE")
	}
	path := c.Args().First()

	f, err := os.Open(path)
	if err != nil {
		return pgnerrors.Wrap(err, "open game file")
	}
	defer f.Close()

	games, err := parser.NewReader(parser.WithLogger(e.logger)).ReadAllGames(f)
	if err != nil {
		return err
	}
	n := c.Int("game")
	if n < 1 || n > len(games) {
		return fmt.Errorf("%s: game %d of %d: %w", path, n, len(games), pgnerrors.ErrNoGame)
	}
	g := games[n-1]

	steps, playErr := replay.Play(g)

	t := newTable(c.App.Writer)
	t.AppendHeader(table.Row{"Ply", "Move", "UCI", "FEN", "Comment"})
	for _, s := range steps {
		t.AppendRow(table.Row{strconv.Itoa(s.Ply), s.SAN, s.UCI, s.FEN, s.Comment})
	}
	t.AppendFooter(table.Row{"", g.Termination.String()})
	t.Render()

	if playErr != nil {
		var ge *pgnerrors.GameError
		if errors.As(playErr, &ge) {
			ge.File = path
			ge.GameNum = n
		}
		return playErr
	}
	return nil
}
