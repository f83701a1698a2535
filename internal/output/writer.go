package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
	"github.com/lgbarn/pgn-notation-go/internal/config"
	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PGN, JSON, YAML).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *chess.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) (GameWriter, error) {
	switch cfg.Format {
	case config.FormatPGN, "":
		return NewPGNWriter(w, cfg), nil
	case config.FormatJSON:
		return NewJSONWriter(w, cfg), nil
	case config.FormatYAML:
		return NewYAMLWriter(w, cfg), nil
	}
	return nil, fmt.Errorf("%w: unknown output format %q", pgnerrors.ErrInvalidConfig, cfg.Format)
}

// PGNWriter writes games in PGN format, separated by blank lines.
type PGNWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.OutputConfig) *PGNWriter {
	return &PGNWriter{w: w, cfg: cfg}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(game *chess.Game) error {
	_, err := io.WriteString(pw.w, formatGame(game, pw.cfg)+"\n")
	return err
}

// Flush is a no-op; PGN is written immediately.
func (pw *PGNWriter) Flush() error { return nil }

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error { return nil }

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*GameDoc `json:"games"`
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as one object on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	cfg   *config.OutputConfig
	games []*GameDoc
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(game *chess.Game) error {
	jw.games = append(jw.games, GameToDoc(game, jw.cfg))
	return nil
}

// Flush writes all buffered games as a JSON object with a games array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// YAMLWriter writes each game as its own YAML document.
type YAMLWriter struct {
	enc *yaml.Encoder
	cfg *config.OutputConfig
}

// NewYAMLWriter creates a new YAML writer.
func NewYAMLWriter(w io.Writer, cfg *config.OutputConfig) *YAMLWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLWriter{enc: enc, cfg: cfg}
}

// WriteGame encodes a game as the next YAML document.
func (yw *YAMLWriter) WriteGame(game *chess.Game) error {
	return yw.enc.Encode(GameToDoc(game, yw.cfg))
}

// Flush is a no-op; documents are written as they are encoded.
func (yw *YAMLWriter) Flush() error { return nil }

// Close finishes the YAML stream.
func (yw *YAMLWriter) Close() error {
	return yw.enc.Close()
}
