package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how a position is printed.
type OutputFormat int

const (
	Text OutputFormat = iota // Board diagram
	JSON                     // JSON document
	FEN                      // FEN string only
	SVG                      // SVG board image
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case FEN:
		return "fen"
	case SVG:
		return "svg"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// ParseOutputFormat parses a format name as used on the command line.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	case "fen":
		return FEN, nil
	case "svg":
		return SVG, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the position format
	Format OutputFormat

	// ShowMoves lists the legal moves of the side to move
	ShowMoves bool

	// ShowHistory lists the moves played so far
	ShowHistory bool

	// Labels prints file letters and rank digits around the diagram
	Labels bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Text,
		ShowHistory: true,
		Labels:      true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < Text || o.Format > SVG {
		return fmt.Errorf("output format %v: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
