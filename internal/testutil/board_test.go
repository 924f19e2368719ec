package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func TestMustBoard(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		toMove chess.Colour
		count  int
	}{
		{"initial", engine.InitialFEN, chess.White, 32},
		{"kings only", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", chess.Black, 2},
		{"empty", "8/8/8/8/8/8/8/8", chess.White, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove := MustBoard(t, tt.fen)
			AssertEqual(t, toMove, tt.toMove)
			AssertEqual(t, board.Count(), tt.count)
		})
	}
}

func TestMustMove(t *testing.T) {
	m := MustMove(t, "e2e4", chess.White)
	AssertEqual(t, m.String(), "e2e4")
	AssertEqual(t, m.From(), MustSquare(t, "e2"))

	promo := MustMove(t, "a2a1n", chess.Black)
	piece, ok := promo.Promotion()
	AssertTrue(t, ok, "a2a1n should carry a promotion")
	AssertEqual(t, piece, chess.B(chess.Knight))
}

func TestPlayMoves(t *testing.T) {
	board := chess.NewInitialBoard()
	toMove := PlayMoves(t, board, chess.White, "e2e4", "e7e5", "g1f3")

	AssertEqual(t, toMove, chess.Black)
	AssertEqual(t, board.Len(), 3)
	AssertEqual(t, MoveStrings(board.Moves()), []string{"e2e4", "e7e5", "g1f3"})
	AssertEqual(t, board.Get(MustSquare(t, "f3")), chess.W(chess.Knight))
}

func TestPlayMoves_AutoQueen(t *testing.T) {
	board, toMove := MustBoard(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	PlayMoves(t, board, toMove, "b7b8")
	AssertEqual(t, board.Get(MustSquare(t, "b8")), chess.W(chess.Queen))

	board, toMove = MustBoard(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	PlayMoves(t, board, toMove, "b7b8r")
	AssertEqual(t, board.Get(MustSquare(t, "b8")), chess.W(chess.Rook))
}

func TestMoveStrings(t *testing.T) {
	moves := []chess.Move{
		MustMove(t, "g1f3", chess.White),
		MustMove(t, "b1c3", chess.White),
	}
	AssertEqual(t, MoveStrings(moves), []string{"b1c3", "g1f3"})
	AssertEqual(t, MoveStrings(nil), []string{})
}
