package output

import (
	"github.com/lgbarn/pgn-notation-go/internal/chess"
	"github.com/lgbarn/pgn-notation-go/internal/config"
)

// GameDoc is the JSON and YAML form of a game.
type GameDoc struct {
	Tags     []TagDoc  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Comment  *string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	Moves    []MoveDoc `json:"moves,omitempty" yaml:"moves,omitempty"`
	Result   string    `json:"result" yaml:"result"`
	PlyCount int       `json:"plyCount" yaml:"plyCount"`
}

// TagDoc is one tag pair. Tags stay a list since names may repeat.
type TagDoc struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// MoveDoc is one move with its annotations and variations.
type MoveDoc struct {
	Number     string        `json:"number,omitempty" yaml:"number,omitempty"` // "12." or "12..."
	SAN        string        `json:"san" yaml:"san"`
	Piece      string        `json:"piece,omitempty" yaml:"piece,omitempty"`
	Castle     string        `json:"castle,omitempty" yaml:"castle,omitempty"` // kingside or queenside
	From       string        `json:"from,omitempty" yaml:"from,omitempty"`     // may be a lone file or rank
	To         string        `json:"to,omitempty" yaml:"to,omitempty"`
	Capture    bool          `json:"capture,omitempty" yaml:"capture,omitempty"`
	Promotion  string        `json:"promotion,omitempty" yaml:"promotion,omitempty"`
	Check      bool          `json:"check,omitempty" yaml:"check,omitempty"`
	Checkmate  bool          `json:"checkmate,omitempty" yaml:"checkmate,omitempty"`
	Annotation string        `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	NAG        *uint32       `json:"nag,omitempty" yaml:"nag,omitempty"`
	Comment    *string       `json:"comment,omitempty" yaml:"comment,omitempty"`
	Variations []SequenceDoc `json:"variations,omitempty" yaml:"variations,omitempty"`
}

// SequenceDoc is a variation.
type SequenceDoc struct {
	Comment *string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	Moves   []MoveDoc `json:"moves" yaml:"moves"`
}

// GameToDoc converts g, dropping what cfg says not to keep.
func GameToDoc(g *chess.Game, cfg *config.OutputConfig) *GameDoc {
	doc := &GameDoc{
		Result:   g.Termination.String(),
		PlyCount: g.PlyCount(),
	}
	for _, t := range g.Tags {
		doc.Tags = append(doc.Tags, TagDoc{Name: t.Name, Value: t.Value})
	}
	main := sequenceToDoc(g.MainLine(), cfg)
	doc.Comment = main.Comment
	doc.Moves = main.Moves
	return doc
}

func sequenceToDoc(seq chess.MoveSequence, cfg *config.OutputConfig) SequenceDoc {
	doc := SequenceDoc{Moves: make([]MoveDoc, 0, len(seq.Moves))}
	if cfg.KeepComments {
		doc.Comment = seq.Comment
	}
	for _, gm := range seq.Moves {
		doc.Moves = append(doc.Moves, moveToDoc(gm, cfg))
	}
	return doc
}

func moveToDoc(gm chess.GameMove, cfg *config.OutputConfig) MoveDoc {
	mm := gm.Move
	m := mm.Move
	doc := MoveDoc{
		SAN:        mm.String(),
		Check:      mm.IsCheck,
		Checkmate:  mm.IsCheckmate,
		Annotation: mm.Annotation.String(),
	}
	if gm.Number != nil {
		doc.Number = gm.Number.String()
	}

	if m.IsCastle() {
		doc.Castle = "kingside"
		if m.Kind == chess.CastleQueenside {
			doc.Castle = "queenside"
		}
	} else {
		doc.Piece = m.Piece.String()
		doc.From = m.From.String()
		doc.To = m.To.String()
		doc.Capture = m.IsCapture
		if p, ok := m.Promotion(); ok {
			doc.Promotion = p.String()
		}
	}

	if gm.NAG != nil && cfg.KeepNAGs {
		n := uint32(*gm.NAG)
		doc.NAG = &n
	}
	if cfg.KeepComments {
		doc.Comment = gm.Comment
	}
	if cfg.KeepVariations && gm.HasVariations() {
		doc.Variations = make([]SequenceDoc, 0, len(gm.Variations))
		for _, v := range gm.Variations {
			doc.Variations = append(doc.Variations, sequenceToDoc(v, cfg))
		}
	}
	return doc
}
