package engine

import (
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// promotionKinds lists the pieces a pawn may become, in dialog order.
var promotionKinds = []chess.Kind{chess.Queen, chess.Knight, chess.Rook, chess.Bishop}

// PromotionKinds returns the kinds a pawn may promote to.
func PromotionKinds() []chess.Kind {
	return append([]chess.Kind(nil), promotionKinds...)
}

// NeedsPromotion reports whether m moves a pawn onto its last rank.
func NeedsPromotion(board *chess.Board, m chess.Move) bool {
	piece := board.Get(m.From())
	return piece.Kind == chess.Pawn && m.QualifiesForPromotion(piece.Colour)
}

// expandPromotions replaces each pawn move onto the last rank by its four
// promotion variants.
func expandPromotions(board *chess.Board, moves []chess.Move) []chess.Move {
	out := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if !NeedsPromotion(board, m) {
			out = append(out, m)
			continue
		}
		colour := board.Get(m.From()).Colour
		for _, kind := range promotionKinds {
			promo, err := chess.NewPromotionMove(m, chess.NewPiece(colour, kind))
			if err != nil {
				continue
			}
			out = append(out, promo)
		}
	}
	return out
}

// NodeCache stores perft counts by position and remaining depth.
type NodeCache interface {
	Lookup(board *chess.Board, toMove chess.Colour, depth int) (uint64, bool)
	Store(board *chess.Board, toMove chess.Colour, depth int, nodes uint64)
}

// Perft counts the leaf nodes of the fully-legal move tree of the given depth
// with colour to move. The board is restored before returning.
func Perft(board *chess.Board, colour chess.Colour, depth int) uint64 {
	return PerftWithCache(board, colour, depth, nil)
}

// PerftWithCache is Perft consulting cache for subtrees of depth 2 or more.
// A nil cache disables caching.
func PerftWithCache(board *chess.Board, colour chess.Colour, depth int, cache NodeCache) uint64 {
	if depth <= 0 {
		return 1
	}

	if depth == 1 {
		return uint64(len(LegalMoves(board, colour)))
	}

	if cache != nil {
		if nodes, ok := cache.Lookup(board, colour, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range LegalMoves(board, colour) {
		board.Move(m)
		nodes += PerftWithCache(board, colour.Opponent(), depth-1, cache)
		board.Undo()
	}

	if cache != nil {
		cache.Store(board, colour, depth, nodes)
	}
	return nodes
}

// DivideResult is the node count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft separately below every root move, spreading the subtrees
// over workers goroutines (GOMAXPROCS when workers < 1). Each subtree gets
// its own copy of board. Results are in move generation order.
func Divide(board *chess.Board, colour chess.Colour, depth, workers int) ([]DivideResult, uint64) {
	return DivideWithCache(board, colour, depth, workers, nil)
}

// DivideWithCache is Divide with every worker sharing cache, which must then
// be safe for concurrent use.
func DivideWithCache(board *chess.Board, colour chess.Colour, depth, workers int, cache NodeCache) ([]DivideResult, uint64) {
	if depth <= 0 {
		return nil, 1
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	moves := LegalMoves(board, colour)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		sub := board.Copy()
		sub.Move(m)
		items[i] = worker.WorkItem{
			Index:  i,
			Move:   m,
			Board:  sub,
			ToMove: colour.Opponent(),
			Depth:  depth - 1,
		}
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: PerftWithCache(item.Board, item.ToMove, item.Depth, cache),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(items)+1))

	results := make([]DivideResult, 0, len(items))
	var total uint64
	for _, r := range pool.Run(items) {
		results = append(results, DivideResult{Move: r.Move, Nodes: r.Nodes})
		total += r.Nodes
	}
	return results, total
}

// LegalMoves returns every fully-legal move of colour with promotions
// expanded, the move list a caller can play without further choices.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return expandPromotions(board, AllTrueValidMoves(board, colour))
}
