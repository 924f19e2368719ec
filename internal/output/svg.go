package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// SVG geometry in user units.
const (
	squareSize = 45
	labelSize  = 20
)

const (
	lightFill    = "fill:#f0d9b5"
	darkFill     = "fill:#b58863"
	lastMoveFill = "fill:#cdd26a;fill-opacity:0.8"
	checkFill    = "fill:#e06060;fill-opacity:0.9"
	pieceStyle   = "font-size:36px;text-anchor:middle;dominant-baseline:central;font-family:serif"
	labelStyle   = "font-size:12px;text-anchor:middle;dominant-baseline:central;font-family:sans-serif;fill:#404040"
)

// glyphs[colour][kind] is the Unicode chess symbol for the piece.
var glyphs = [2][7]string{
	{"", "♙", "♘", "♗", "♖", "♕", "♔"},
	{"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// WriteSVG draws board as an SVG document with rank 8 at the top. The last
// move's squares are shaded and a king in check is marked for toMove.
func WriteSVG(w io.Writer, board *chess.Board, toMove chess.Colour, labels bool) error {
	return writeSVG(w, board, toMove, labels, "")
}

func writeSVG(w io.Writer, board *chess.Board, toMove chess.Colour, labels bool, desc string) error {
	offset := 0
	if labels {
		offset = labelSize
	}
	size := offset + chess.BoardSize*squareSize

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(size, size+offset)
	canvas.Title(engine.BoardToFEN(board, toMove))
	if desc != "" {
		canvas.Desc(desc)
	}

	var highlights []chess.Coordinates
	if last, ok := board.LastMove(); ok {
		highlights = append(highlights, last.Move.From(), last.Move.To())
	}
	var checked []chess.Coordinates
	if engine.IsInCheck(board, toMove) {
		checked = board.Find(chess.King, toMove)
	}

	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			x, y := squareOrigin(file, rank, offset)
			sq := chess.MustCoordinates(file, rank)

			canvas.Rect(x, y, squareSize, squareSize, squareFill(file, rank))
			switch {
			case containsSquare(checked, sq):
				canvas.Rect(x, y, squareSize, squareSize, checkFill)
			case containsSquare(highlights, sq):
				canvas.Rect(x, y, squareSize, squareSize, lastMoveFill)
			}

			if p := board.GetAt(file, rank); !p.IsEmpty() {
				canvas.Text(x+squareSize/2, y+squareSize/2, glyphs[p.Colour][p.Kind], pieceStyle)
			}
		}
	}

	if labels {
		writeSVGLabels(canvas, offset)
	}
	canvas.End()
	return bw.Flush()
}

func writeSVGLabels(canvas *svg.SVG, offset int) {
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		_, y := squareOrigin(chess.FirstFile, rank, offset)
		canvas.Text(offset/2, y+squareSize/2, fmt.Sprintf("%d", rank), labelStyle)
	}
	bottom := offset + chess.BoardSize*squareSize + offset/2
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		x, _ := squareOrigin(file, chess.FirstRank, offset)
		canvas.Text(x+squareSize/2, bottom, string(rune(chess.FileBase+file-1)), labelStyle)
	}
}

// squareOrigin returns the top-left corner of a square.
func squareOrigin(file, rank, offset int) (int, int) {
	return offset + (file-1)*squareSize, offset + (chess.LastRank-rank)*squareSize
}

// squareFill colours a1 dark.
func squareFill(file, rank int) string {
	if (file+rank)%2 == 0 {
		return darkFill
	}
	return lightFill
}

func containsSquare(squares []chess.Coordinates, sq chess.Coordinates) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// SVGWriter draws the last position written as an SVG document on Close.
// Perft totals are recorded in the document description.
type SVGWriter struct {
	w       io.Writer
	cfg     *config.Config
	board   *chess.Board
	toMove  chess.Colour
	reports []PerftReport
}

// NewSVGWriter creates a new SVG writer.
func NewSVGWriter(w io.Writer, cfg *config.Config) *SVGWriter {
	return &SVGWriter{w: w, cfg: cfg}
}

// WritePosition keeps a copy of the position for Close.
func (sw *SVGWriter) WritePosition(board *chess.Board, toMove chess.Colour) error {
	sw.board = board.Copy()
	sw.toMove = toMove
	return nil
}

// WritePerft buffers a perft report.
func (sw *SVGWriter) WritePerft(report PerftReport) error {
	sw.reports = append(sw.reports, report)
	return nil
}

// Close draws the buffered position, if any.
func (sw *SVGWriter) Close() error {
	if sw.board == nil {
		return nil
	}
	var desc []string
	for _, r := range sw.reports {
		desc = append(desc, fmt.Sprintf("perft %d: %d nodes", r.Depth, r.Nodes))
	}
	err := writeSVG(sw.w, sw.board, sw.toMove, sw.cfg.Output.Labels, strings.Join(desc, "; "))
	sw.board = nil
	sw.reports = nil
	return err
}
