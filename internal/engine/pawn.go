package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnCandidates generates pseudo-legal pawn moves from a square.
// Forward steps need an empty destination and a clear path; diagonal steps
// are only candidates when an enemy piece stands there.
func pawnCandidates(board *chess.Board, from chess.Coordinates, colour chess.Colour) []chess.Move {
	dir := colour.Forward()

	forward := []offset{{0, dir}}
	if from.Rank() == colour.PawnRank() {
		forward = append(forward, offset{0, 2 * dir})
	}

	moves := toMoves(from, forward)
	moves = filterEmptyDestination(board, moves) // no forward capture
	moves = filterLineOfSight(board, moves)

	for _, capture := range toMoves(from, []offset{{-1, dir}, {1, dir}}) {
		target := board.Get(capture.To())
		if !target.IsEmpty() && target.Colour != colour {
			moves = append(moves, capture)
		}
	}

	return moves
}

// filterEmptyDestination keeps moves whose destination is unoccupied.
func filterEmptyDestination(board *chess.Board, moves []chess.Move) []chess.Move {
	kept := moves[:0]
	for _, m := range moves {
		if board.IsEmpty(m.To()) {
			kept = append(kept, m)
		}
	}
	return kept
}
