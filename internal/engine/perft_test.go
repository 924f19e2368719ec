package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 0", InitialFEN, 0, 1},
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"endgame depth 1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"endgame depth 2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"promotion depth 1", "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1", 1, 9},
		{"checkmate", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.depth > 2 {
				t.Skip("skipping deep perft in short mode")
			}
			board, colour := boardFromFEN(t, tt.fen)
			before := board.Copy()

			if got := Perft(board, colour, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d; want %d", tt.depth, got, tt.want)
			}
			if !board.Equal(before) || board.Len() != 0 {
				t.Error("Perft did not restore the board")
			}
		})
	}
}

func TestDivide(t *testing.T) {
	board := chess.NewInitialBoard()

	for _, workers := range []int{0, 1, 4} {
		results, total := Divide(board, chess.White, 2, workers)
		if total != 400 {
			t.Errorf("Divide(workers=%d) total = %d; want 400", workers, total)
		}
		if len(results) != 20 {
			t.Fatalf("Divide(workers=%d) = %d root moves; want 20", workers, len(results))
		}

		roots := AllTrueValidMoves(board, chess.White)
		var sum uint64
		for i, r := range results {
			if r.Move != roots[i] {
				t.Errorf("result %d move = %s; want %s", i, r.Move, roots[i])
			}
			if r.Nodes != 20 {
				t.Errorf("%s nodes = %d; want 20", r.Move, r.Nodes)
			}
			sum += r.Nodes
		}
		if sum != total {
			t.Errorf("sum of nodes = %d; total = %d", sum, total)
		}
	}

	if board.Len() != 0 || !board.Equal(chess.NewInitialBoard()) {
		t.Error("Divide modified the input board")
	}
}

func TestDivideMatchesPerft(t *testing.T) {
	board, colour := boardFromFEN(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	_, total := Divide(board, colour, 2, 2)
	if want := Perft(board, colour, 2); total != want {
		t.Errorf("Divide total = %d; Perft = %d", total, want)
	}
}

func TestDivideDepthZero(t *testing.T) {
	results, total := Divide(chess.NewInitialBoard(), chess.White, 0, 1)
	if results != nil || total != 1 {
		t.Errorf("Divide(0) = %v, %d; want nil, 1", results, total)
	}
}

func TestPromotionKinds(t *testing.T) {
	kinds := PromotionKinds()
	want := []chess.Kind{chess.Queen, chess.Knight, chess.Rook, chess.Bishop}
	if len(kinds) != len(want) {
		t.Fatalf("PromotionKinds() = %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("PromotionKinds()[%d] = %v; want %v", i, kinds[i], want[i])
		}
	}
	kinds[0] = chess.Pawn
	if PromotionKinds()[0] != chess.Queen {
		t.Error("PromotionKinds returned shared slice")
	}
}

func TestNeedsPromotion(t *testing.T) {
	board, _ := boardFromFEN(t, "4k3/1P6/8/8/8/8/1p6/R3K3 w - - 0 1")
	tests := []struct {
		move string
		want bool
	}{
		{"b7b8", true},
		{"b2b1", true},
		{"b2a1", true},
		{"a1a8", false},
		{"e1d1", false},
	}
	for _, tt := range tests {
		m := mustParse(t, tt.move, chess.White)
		if got := NeedsPromotion(board, m); got != tt.want {
			t.Errorf("NeedsPromotion(%s) = %v; want %v", tt.move, got, tt.want)
		}
	}
}

func TestLegalMoves(t *testing.T) {
	board, colour := boardFromFEN(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	got := LegalMoves(board, colour)
	if len(got) != 9 {
		t.Errorf("LegalMoves() = %v; want 9 moves", moveStrings(got))
	}
	if n := len(LegalMoves(chess.NewInitialBoard(), chess.Black)); n != 20 {
		t.Errorf("LegalMoves(initial, Black) = %d moves; want 20", n)
	}
}

// mapCache is a minimal NodeCache keyed by placement, side and depth.
type mapCache struct {
	nodes map[string]uint64
	hits  int
}

func (c *mapCache) key(board *chess.Board, toMove chess.Colour, depth int) string {
	return Placement(board) + " " + toMove.String() + " " + string(rune('0'+depth))
}

func (c *mapCache) Lookup(board *chess.Board, toMove chess.Colour, depth int) (uint64, bool) {
	n, ok := c.nodes[c.key(board, toMove, depth)]
	if ok {
		c.hits++
	}
	return n, ok
}

func (c *mapCache) Store(board *chess.Board, toMove chess.Colour, depth int, nodes uint64) {
	c.nodes[c.key(board, toMove, depth)] = nodes
}

func TestPerftWithCache(t *testing.T) {
	cache := &mapCache{nodes: make(map[string]uint64)}
	board := chess.NewInitialBoard()

	if got := PerftWithCache(board, chess.White, 3, cache); got != 8902 {
		t.Errorf("PerftWithCache(3) = %d; want 8902", got)
	}
	if got := PerftWithCache(board, chess.White, 3, cache); got != 8902 {
		t.Errorf("second PerftWithCache(3) = %d; want 8902", got)
	}
	if cache.hits == 0 {
		t.Error("second run did not hit the cache")
	}
	if board.Len() != 0 {
		t.Error("PerftWithCache did not restore the board")
	}
}
