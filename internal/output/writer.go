package output

import (
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PerftReport is the result of one perft run.
type PerftReport struct {
	Depth   int
	Nodes   uint64
	Divide  []engine.DivideResult
	Elapsed time.Duration
}

// PositionWriter is the interface for writing results to output.
// Each output format has its own implementation.
type PositionWriter interface {
	// WritePosition writes a position with the side to move.
	WritePosition(board *chess.Board, toMove chess.Colour) error

	// WritePerft writes perft node counts.
	WritePerft(report PerftReport) error

	// Close flushes any buffered output.
	// For batch writers (like JSON), this writes the pending document.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	switch cfg.Output.Format {
	case config.JSON:
		return NewJSONWriter(w, cfg)
	case config.FEN:
		return NewFENWriter(w, cfg)
	case config.SVG:
		return NewSVGWriter(w, cfg)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes diagrams and plain-text reports.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes the diagram followed by FEN, status and move lists.
func (tw *TextWriter) WritePosition(board *chess.Board, toMove chess.Colour) error {
	if err := WriteDiagram(tw.w, board, tw.cfg.Output.Labels); err != nil {
		return err
	}

	status := engine.Status(board, toMove)
	fmt.Fprintf(tw.w, "FEN: %s\n", engine.BoardToFEN(board, toMove))
	fmt.Fprintf(tw.w, "%s to move: %s\n", toMove, status)

	if tw.cfg.Output.ShowHistory && board.Len() > 0 {
		fmt.Fprintf(tw.w, "Moves: %s\n", MoveList(board.Moves()))
	}
	if tw.cfg.Output.ShowMoves {
		legal := engine.LegalMoves(board, toMove)
		_, err := fmt.Fprintf(tw.w, "Legal moves (%d): %s\n", len(legal), MoveList(legal))
		return err
	}
	return nil
}

// WritePerft writes one line per root move when divided, then the total.
func (tw *TextWriter) WritePerft(report PerftReport) error {
	for _, r := range report.Divide {
		fmt.Fprintf(tw.w, "%s: %d\n", r.Move, r.Nodes)
	}
	if report.Elapsed > 0 {
		_, err := fmt.Fprintf(tw.w, "perft %d: %d nodes in %v\n", report.Depth, report.Nodes, report.Elapsed.Round(time.Millisecond))
		return err
	}
	_, err := fmt.Fprintf(tw.w, "perft %d: %d nodes\n", report.Depth, report.Nodes)
	return err
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one FEN line per position.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer, _ *config.Config) *FENWriter {
	return &FENWriter{w: w}
}

// WritePosition writes the FEN of the position.
func (fw *FENWriter) WritePosition(board *chess.Board, toMove chess.Colour) error {
	_, err := fmt.Fprintln(fw.w, engine.BoardToFEN(board, toMove))
	return err
}

// WritePerft writes the total node count.
func (fw *FENWriter) WritePerft(report PerftReport) error {
	_, err := fmt.Fprintf(fw.w, "%d\n", report.Nodes)
	return err
}

// Close is a no-op.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter collects positions and perft reports and writes them as one
// JSON document on Close.
type JSONWriter struct {
	w   io.Writer
	cfg *config.Config
	doc JSONOutput
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WritePosition buffers a position for JSON output.
func (jw *JSONWriter) WritePosition(board *chess.Board, toMove chess.Colour) error {
	jw.doc.Positions = append(jw.doc.Positions, PositionToJSON(board, toMove, jw.cfg))
	return nil
}

// WritePerft buffers a perft report for JSON output.
func (jw *JSONWriter) WritePerft(report PerftReport) error {
	jw.doc.Perft = append(jw.doc.Perft, PerftToJSON(report))
	return nil
}

// Close writes the buffered document and clears it.
func (jw *JSONWriter) Close() error {
	if len(jw.doc.Positions) == 0 && len(jw.doc.Perft) == 0 {
		return nil
	}
	err := WriteJSON(jw.w, &jw.doc)
	jw.doc = JSONOutput{}
	return err
}
