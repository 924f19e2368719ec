package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func sq(t *testing.T, name string) chess.Coordinates {
	t.Helper()
	c, err := chess.Square(name)
	if err != nil {
		t.Fatalf("Square(%q): %v", name, err)
	}
	return c
}

func boardFromFEN(t *testing.T, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board, toMove
}

func play(t *testing.T, board *chess.Board, colour chess.Colour, moves ...string) chess.Colour {
	t.Helper()
	for _, text := range moves {
		m, err := chess.ParseMove(text, colour)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		if !Legal(board, m) {
			t.Fatalf("move %s is not legal for %v", text, colour)
		}
		board.Move(m)
		colour = colour.Opponent()
	}
	return colour
}

// moveStrings renders moves in sorted coordinate notation for comparison.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func destinations(moves []chess.Move) map[string]bool {
	out := make(map[string]bool, len(moves))
	for _, m := range moves {
		out[m.To().String()] = true
	}
	return out
}
