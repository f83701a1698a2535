package parser

import (
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
	"github.com/lgbarn/pgn-notation-go/internal/worker"
)

// Document is a named text holding zero or more games. A Document with a
// Path is read from that file when it is parsed; otherwise Text is used.
type Document struct {
	Name string
	Path string
	Text string
}

// Load returns the document's text.
func (d Document) Load() (string, error) {
	return loadText(d.Path, d.Text)
}

func loadText(path, text string) (string, error) {
	if path == "" {
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", pgnerrors.Wrapf(err, "read %s", path)
	}
	return string(data), nil
}

// Batch is the parse outcome of one Document. Err is set, and Games empty,
// when the document could not be read.
type Batch struct {
	Name    string
	Games   []*chess.Game
	Skipped []Skipped
	Err     error
}

// ReadBatch parses every document on a pool of workers and returns the
// results in document order. Each document is read independently, so a
// malformed game in one never affects another, and a file that cannot be
// read only sets that Batch's Err. The skip handler, if set, may be called
// from several goroutines at once.
func (r *Reader) ReadBatch(docs []Document, opts ...worker.Option) []Batch {
	out := make([]Batch, len(docs))
	if len(docs) == 0 {
		return out
	}

	skipped := make([][]Skipped, len(docs))
	pool := worker.New(func(job worker.Job) worker.Result {
		text, err := loadText(job.Path, job.Text)
		if err != nil {
			return worker.Result{Index: job.Index, Name: job.Name, Err: err}
		}

		var seen []Skipped
		local := &Reader{
			logger: r.logger.With(zap.String("document", job.Name)),
			onSkip: func(s Skipped) {
				seen = append(seen, s)
				if r.onSkip != nil {
					r.onSkip(s)
				}
			},
		}
		games := local.ReadGames(text)
		skipped[job.Index] = seen
		return worker.Result{Index: job.Index, Name: job.Name, Games: games, Skipped: len(seen)}
	}, opts...)

	pool.Start()
	go func() {
		for i, d := range docs {
			pool.Submit(worker.Job{Index: i, Name: d.Name, Path: d.Path, Text: d.Text})
		}
		pool.Close()
	}()

	for res := range pool.Results() {
		out[res.Index] = Batch{
			Name:    res.Name,
			Games:   res.Games,
			Skipped: skipped[res.Index],
			Err:     res.Err,
		}
	}
	return out
}
