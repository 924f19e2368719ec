// Package engine provides chess move generation and legality checks.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// offset is a relative (file, rank) displacement.
type offset struct {
	df, dr int
}

var (
	knightOffsets = []offset{{2, 1}, {1, 2}, {-2, 1}, {-1, 2}, {-2, -1}, {-1, -2}, {2, -1}, {1, -2}}
	kingOffsets   = []offset{{1, 1}, {-1, -1}, {-1, 1}, {1, -1}, {0, 1}, {0, -1}, {1, 0}, {-1, 0}}

	diagonalDirs = []offset{{1, 1}, {-1, -1}, {-1, 1}, {1, -1}}
	straightDirs = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

	bishopOffsets = rays(diagonalDirs)
	rookOffsets   = rays(straightDirs)
	queenOffsets  = append(append([]offset(nil), rookOffsets...), bishopOffsets...)
)

// rays expands each direction to distances 1..7.
func rays(dirs []offset) []offset {
	out := make([]offset, 0, len(dirs)*(chess.BoardSize-1))
	for _, d := range dirs {
		for dist := 1; dist < chess.BoardSize; dist++ {
			out = append(out, offset{d.df * dist, d.dr * dist})
		}
	}
	return out
}

// pieceOffsets returns the relative candidate squares of a non-pawn kind.
// Pawns have their own generator, see pawnCandidates.
func pieceOffsets(kind chess.Kind) []offset {
	switch kind {
	case chess.Knight:
		return knightOffsets
	case chess.Bishop:
		return bishopOffsets
	case chess.Rook:
		return rookOffsets
	case chess.Queen:
		return queenOffsets
	case chess.King:
		return kingOffsets
	}
	return nil
}

// needsLineOfSight reports whether kind's candidates must have a clear path.
func needsLineOfSight(kind chess.Kind) bool {
	return kind != chess.Knight
}

// toMoves turns offsets from a square into moves, dropping any whose
// destination is off the board.
func toMoves(from chess.Coordinates, offsets []offset) []chess.Move {
	moves := make([]chess.Move, 0, len(offsets))
	for _, o := range offsets {
		to, err := from.Offset(o.df, o.dr)
		if err != nil {
			continue // off the board
		}
		moves = append(moves, chess.MoveBetween(from, to))
	}
	return moves
}
