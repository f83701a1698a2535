package config

import (
	"fmt"
	"strings"

	pgnerrors "github.com/lgbarn/pgn-notation-go/internal/errors"
)

// Format is a serialization format for parsed games.
type Format string

const (
	FormatPGN  Format = "pgn"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatPGN, FormatJSON, FormatYAML}

// ParseFormat maps a format name, case-insensitively, to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown output format %q", pgnerrors.ErrInvalidConfig, s)
}

// OutputConfig holds settings related to writing games.
type OutputConfig struct {
	// Format selects the writer.
	Format Format `mapstructure:"format"`

	// MaxLineLength wraps PGN movetext; 0 disables wrapping.
	MaxLineLength uint `mapstructure:"max_line_length"`

	// KeepComments controls whether comments are kept in output
	KeepComments bool `mapstructure:"keep_comments"`

	// KeepNAGs controls whether Numeric Annotation Glyphs are kept
	KeepNAGs bool `mapstructure:"keep_nags"`

	// KeepVariations controls whether variations are kept
	KeepVariations bool `mapstructure:"keep_variations"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:         FormatPGN,
		MaxLineLength:  80,
		KeepComments:   true,
		KeepNAGs:       true,
		KeepVariations: true,
	}
}
