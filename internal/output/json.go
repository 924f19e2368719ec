package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN        string     `json:"fen"`
	ToMove     string     `json:"toMove"`
	Status     string     `json:"status"`
	Checkers   []string   `json:"checkers,omitempty"`
	History    []JSONMove `json:"history,omitempty"`
	Captured   []string   `json:"captured,omitempty"`
	LegalMoves []string   `json:"legalMoves,omitempty"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONPerft holds perft counts in JSON format.
type JSONPerft struct {
	Depth     int          `json:"depth"`
	Nodes     uint64       `json:"nodes"`
	ElapsedMS int64        `json:"elapsedMs,omitempty"`
	Divide    []JSONDivide `json:"divide,omitempty"`
}

// JSONDivide is the node count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONOutput is the document written by JSONWriter.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions,omitempty"`
	Perft     []*JSONPerft    `json:"perft,omitempty"`
}

// PositionToJSON converts a position to JSON format.
func PositionToJSON(board *chess.Board, toMove chess.Colour, cfg *config.Config) *JSONPosition {
	jp := &JSONPosition{
		FEN:    engine.BoardToFEN(board, toMove),
		ToMove: colourName(toMove),
		Status: engine.Status(board, toMove).String(),
	}

	for _, sq := range engine.Checkers(board, toMove) {
		jp.Checkers = append(jp.Checkers, sq.String())
	}

	if cfg.Output.ShowHistory {
		jp.History = convertHistory(board.History())
		for _, p := range board.Captured() {
			jp.Captured = append(jp.Captured, p.ID())
		}
	}

	if cfg.Output.ShowMoves {
		for _, m := range engine.LegalMoves(board, toMove) {
			jp.LegalMoves = append(jp.LegalMoves, m.String())
		}
	}

	return jp
}

// PerftToJSON converts a perft report to JSON format.
func PerftToJSON(report PerftReport) *JSONPerft {
	jp := &JSONPerft{
		Depth:     report.Depth,
		Nodes:     report.Nodes,
		ElapsedMS: report.Elapsed.Milliseconds(),
	}
	for _, r := range report.Divide {
		jp.Divide = append(jp.Divide, JSONDivide{Move: r.Move.String(), Nodes: r.Nodes})
	}
	return jp
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// convertHistory converts history entries to JSON moves, numbering plies
// from 1.
func convertHistory(history []chess.HistoryEntry) []JSONMove {
	result := make([]JSONMove, 0, len(history))
	for i, h := range history {
		jm := JSONMove{
			Ply:   i + 1,
			Color: colourName(h.Piece.Colour),
			UCI:   h.Move.String(),
			From:  h.Move.From().String(),
			To:    h.Move.To().String(),
			Piece: pieceTypeName(h.Piece.Kind),
		}
		if !h.Captured.IsEmpty() {
			jm.Captured = pieceTypeName(h.Captured.Kind)
		}
		if promo, ok := h.Move.Promotion(); ok {
			jm.Promotion = pieceTypeName(promo.Kind)
		}
		result = append(result, jm)
	}
	return result
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
