package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/pgn-notation-go/internal/config"
	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
	"github.com/lgbarn/pgn-notation-go/internal/parser"
	"github.com/lgbarn/pgn-notation-go/internal/testutil"
)

const miniature = `[Event "Croatia"]
[White "Gardijan"]
[Black "Sulc"]

1. e4 c5 2. c4 Nc6 3. Ne2 Ne5 4. d4 (4. Ng3) 4... Qa5+ 5. Bd2 $4 {oops} (5. Nec3) 5... Nd3# 0-1`

func TestFormatGame(t *testing.T) {
	g := testutil.MustParseGame(t, miniature)

	want := `[Event "Croatia"]
[White "Gardijan"]
[Black "Sulc"]

1. e4 c5 2. c4 Nc6 3. Ne2 Ne5 4. d4 (4. Ng3) 4... Qa5+ 5. Bd2 $4 {oops} (5. Nec3)
5... Nd3# 0-1
`
	if diff := cmp.Diff(want, FormatGame(g)); diff != "" {
		t.Errorf("FormatGame mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatGameRoundTrip(t *testing.T) {
	inputs := []string{
		miniature,
		"*",
		"{only a comment} 1/2-1/2",
		`[Annotator "A \"quoted\" \\ name"] 1. e4 *`,
		"1. e4 ;inline comment with } brace\n e5 1-0",
		"1. e4 e5 2. Nf3 (2. f4 exf4 (2... d5) 3. Nf3) (2. Nc3) Nc6 *",
		"1. exd8=Q+! Rxd8?? 2. O-O-O# $19 1-0",
		"1. Ngf3 R1a2 Qh4xe1 ( ) *",
		"12... Kh8 13. a3 *",
	}
	for _, in := range inputs {
		g := testutil.MustParseGame(t, in)
		text := FormatGame(g)
		again, err := parser.ParseGame(text)
		if err != nil {
			t.Errorf("re-parsing %q: %v\n%s", in, err, text)
			continue
		}
		testutil.AssertGameEqual(t, g, again)
		if FormatGame(again) != text {
			t.Errorf("formatting %q is not stable", in)
		}
	}
}

func TestFormatGameWraps(t *testing.T) {
	g := testutil.MustParseGame(t, "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7 6. Re1 b5 7. Bb3 d6 8. c3 O-O 9. h3 Nb8 10. d4 Nbd7 *")
	for _, line := range strings.Split(FormatGame(g), "\n") {
		if len(line) > 80 {
			t.Errorf("line longer than 80: %q", line)
		}
	}

	cfg := config.NewOutputConfig()
	cfg.MaxLineLength = 0
	if got := strings.Count(formatGame(g, cfg), "\n"); got != 1 {
		t.Errorf("unwrapped output has %d newlines; want 1", got)
	}
}

func TestFormatGameDropsAnnotations(t *testing.T) {
	g := testutil.MustParseGame(t, "{intro} 1. e4 $1 {good} (1. d4) e5 *")
	cfg := config.NewOutputConfig()
	cfg.KeepComments = false
	cfg.KeepNAGs = false
	cfg.KeepVariations = false

	if got, want := formatGame(g, cfg), "1. e4 e5 *\n"; got != want {
		t.Errorf("formatGame = %q; want %q", got, want)
	}
}

func TestPGNWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPGNWriter(&buf, config.NewOutputConfig())

	for _, g := range parser.ReadGames("1. e4 * 1. d4 1-0") {
		if err := w.WriteGame(g); err != nil {
			t.Fatalf("WriteGame: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got, want := buf.String(), "1. e4 *\n\n1. d4 1-0\n\n"; got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
	if got := parser.ReadGames(buf.String()); len(got) != 2 {
		t.Errorf("re-read %d games; want 2", len(got))
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, &config.OutputConfig{Format: config.FormatJSON, KeepComments: true, KeepNAGs: true, KeepVariations: true})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.WriteGame(testutil.MustParseGame(t, miniature)); err != nil {
		t.Fatalf("WriteGame: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("JSON writer should buffer until Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Games) != 1 {
		t.Fatalf("games = %d; want 1", len(out.Games))
	}

	doc := out.Games[0]
	if doc.Result != "0-1" || doc.PlyCount != 10 {
		t.Errorf("result %q, plies %d; want 0-1, 10", doc.Result, doc.PlyCount)
	}
	bd2 := doc.Moves[8]
	four := uint32(4)
	oops := "oops"
	want := MoveDoc{
		Number:  "5.",
		SAN:     "Bd2",
		Piece:   "Bishop",
		To:      "d2",
		NAG:     &four,
		Comment: &oops,
		Variations: []SequenceDoc{{Moves: []MoveDoc{
			{Number: "5.", SAN: "Nec3", Piece: "Knight", From: "e", To: "c3"},
		}}},
	}
	if diff := cmp.Diff(want, bd2); diff != "" {
		t.Errorf("Bd2 mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewYAMLWriter(&buf, config.NewOutputConfig())
	for _, g := range parser.ReadGames("1. O-O-O# 1-0 [Event \"x\"] 1... h1=N *") {
		if err := w.WriteGame(g); err != nil {
			t.Fatalf("WriteGame: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dec := yaml.NewDecoder(&buf)
	var docs []GameDoc
	for {
		var doc GameDoc
		if err := dec.Decode(&doc); err != nil {
			break
		}
		docs = append(docs, doc)
	}
	if len(docs) != 2 {
		t.Fatalf("decoded %d documents; want 2", len(docs))
	}
	if got := docs[0].Moves[0]; got.Castle != "queenside" || !got.Checkmate {
		t.Errorf("first move = %+v; want queenside castle with mate", got)
	}
	if got := docs[1].Moves[0]; got.Promotion != "Knight" || got.Number != "1..." {
		t.Errorf("second game move = %+v; want knight promotion numbered 1...", got)
	}
	if diff := cmp.Diff([]TagDoc{{Name: "Event", Value: "x"}}, docs[1].Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWriterUnknownFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, &config.OutputConfig{Format: "xml"})
	if !errors.Is(err, pgnerrors.ErrInvalidConfig) {
		t.Errorf("err = %v; want ErrInvalidConfig", err)
	}
}
