// Package output writes parsed games as PGN text or as JSON and YAML
// documents.
package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-notation-go/internal/chess"
	"github.com/lgbarn/pgn-notation-go/internal/config"
)

// lineWriter joins movetext tokens with single spaces and wraps lines
// between tokens. Attached closing parentheses may overrun the limit.
type lineWriter struct {
	b          *strings.Builder
	lineLength int
	maxLength  int // 0 disables wrapping
	needsSpace bool
}

func newLineWriter(b *strings.Builder, maxLength int) *lineWriter {
	return &lineWriter{b: b, maxLength: maxLength}
}

// Write writes a token, preceded by a space or a line break if needed.
func (o *lineWriter) Write(s string) {
	if o.needsSpace && s != "" {
		if o.maxLength > 0 && o.lineLength+1+len(s) > o.maxLength {
			o.NewLine()
		} else {
			o.b.WriteByte(' ')
			o.lineLength++
		}
	}
	o.WriteNoSpace(s)
}

// WriteNoSpace writes s directly after the previous token.
func (o *lineWriter) WriteNoSpace(s string) {
	o.b.WriteString(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// Open writes an opening parenthesis that the next token attaches to.
func (o *lineWriter) Open() {
	o.Write("(")
	o.needsSpace = false
}

// NewLine ends the current line.
func (o *lineWriter) NewLine() {
	o.b.WriteByte('\n')
	o.lineLength = 0
	o.needsSpace = false
}

// FormatGame renders g as PGN with every comment, glyph and variation kept.
// Parsing the result yields a game equal to g.
func FormatGame(g *chess.Game) string {
	return formatGame(g, config.NewOutputConfig())
}

func formatGame(g *chess.Game, cfg *config.OutputConfig) string {
	var b strings.Builder

	for _, tag := range g.Tags {
		fmt.Fprintf(&b, "[%s \"%s\"]\n", tag.Name, escapeTagValue(tag.Value))
	}
	if len(g.Tags) > 0 {
		b.WriteByte('\n')
	}

	ow := newLineWriter(&b, int(cfg.MaxLineLength))
	writeSequence(ow, g.MainLine(), cfg)
	ow.Write(g.Termination.String())
	ow.NewLine()

	return b.String()
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

func writeSequence(ow *lineWriter, seq chess.MoveSequence, cfg *config.OutputConfig) {
	if seq.Comment != nil && cfg.KeepComments {
		writeComment(ow, *seq.Comment)
	}
	for _, gm := range seq.Moves {
		writeMove(ow, gm, cfg)
	}
}

func writeMove(ow *lineWriter, gm chess.GameMove, cfg *config.OutputConfig) {
	if gm.Number != nil {
		ow.Write(gm.Number.String())
	}
	ow.Write(gm.Move.String())

	if gm.NAG != nil && cfg.KeepNAGs {
		ow.Write(gm.NAG.String())
	}
	if gm.Comment != nil && cfg.KeepComments {
		writeComment(ow, *gm.Comment)
	}
	if !cfg.KeepVariations || !gm.HasVariations() {
		return
	}
	for _, v := range gm.Variations {
		ow.Open()
		writeSequence(ow, v, cfg)
		ow.WriteNoSpace(")")
	}
}

// writeComment writes a brace comment, or a rest-of-line comment when the
// text contains a closing brace.
func writeComment(ow *lineWriter, text string) {
	if strings.Contains(text, "}") {
		ow.Write(";" + text)
		ow.NewLine()
		return
	}
	ow.Write("{" + text + "}")
}
