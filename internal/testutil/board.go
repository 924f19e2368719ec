package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustBoard builds a board from a FEN string and returns it with the side
// to move. It calls t.Fatal if the FEN does not parse.
func MustBoard(t testing.TB, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("bad FEN %q: %v", fen, err)
	}
	return board, toMove
}

// MustSquare parses an algebraic square name such as "e4".
func MustSquare(t testing.TB, name string) chess.Coordinates {
	t.Helper()
	sq, err := chess.Square(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// MustMove parses coordinate move text such as "e2e4" or "e7e8q".
func MustMove(t testing.TB, text string, colour chess.Colour) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text, colour)
	if err != nil {
		t.Fatalf("bad move %q: %v", text, err)
	}
	return m
}

// PlayMoves plays moves alternately starting with colour, failing the test
// on the first illegal one, and returns the side to move afterwards.
func PlayMoves(t testing.TB, board *chess.Board, colour chess.Colour, moves ...string) chess.Colour {
	t.Helper()
	for i, text := range moves {
		m := MustMove(t, text, colour)
		if !engine.Legal(board, m) {
			t.Fatalf("ply %d: %s is not legal for %v", i+1, text, colour)
		}
		if engine.NeedsPromotion(board, m) && !m.IsPromotion() {
			m = promoteToQueen(t, m, colour)
		}
		board.Move(m)
		colour = colour.Opponent()
	}
	return colour
}

func promoteToQueen(t testing.TB, m chess.Move, colour chess.Colour) chess.Move {
	t.Helper()
	promo, err := chess.NewPromotionMove(m, chess.NewPiece(colour, chess.Queen))
	if err != nil {
		t.Fatalf("promote %s: %v", m, err)
	}
	return promo
}

// MoveStrings renders moves in coordinate notation, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}
