package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ValidMoves returns the pseudo-legal moves of the piece on from: geometry,
// board bounds, line of sight and own-colour occupancy are respected, but
// the mover's king may be left in check. An empty square has no moves.
func ValidMoves(board *chess.Board, from chess.Coordinates) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}

	if piece.Kind == chess.Pawn {
		return filterOwnColour(board, piece.Colour, pawnCandidates(board, from, piece.Colour))
	}

	moves := toMoves(from, pieceOffsets(piece.Kind))
	if needsLineOfSight(piece.Kind) {
		moves = filterLineOfSight(board, moves)
	}
	return filterOwnColour(board, piece.Colour, moves)
}

// TrueValidMoves returns the fully-legal moves of the piece on from: the
// pseudo-legal moves that do not leave the mover's own king attacked.
func TrueValidMoves(board *chess.Board, from chess.Coordinates) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	return filterCheckSafe(board, piece.Colour, ValidMoves(board, from))
}

// AllTrueValidMoves returns every fully-legal move of colour, grouped by
// source square in file-major order.
func AllTrueValidMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(colour) {
		moves = append(moves, TrueValidMoves(board, from)...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Occupied(colour) {
		if len(TrueValidMoves(board, from)) > 0 {
			return true
		}
	}
	return false
}

// Legal reports whether m, ignoring any promotion piece, is one of the
// fully-legal moves of the piece on its source square.
func Legal(board *chess.Board, m chess.Move) bool {
	for _, candidate := range TrueValidMoves(board, m.From()) {
		if candidate.SameSquares(m) {
			return true
		}
	}
	return false
}

// filterOwnColour drops moves onto a square held by colour.
func filterOwnColour(board *chess.Board, colour chess.Colour, moves []chess.Move) []chess.Move {
	kept := moves[:0]
	for _, m := range moves {
		target := board.Get(m.To())
		if target.IsEmpty() || target.Colour != colour {
			kept = append(kept, m)
		}
	}
	return kept
}

// filterCheckSafe plays each move on a scratch copy of board and keeps it
// only if colour is not in check afterwards. IsInCheck works on pseudo-legal
// moves only, so this never recurses.
func filterCheckSafe(board *chess.Board, colour chess.Colour, moves []chess.Move) []chess.Move {
	if len(moves) == 0 {
		return moves
	}

	scratch := board.Copy()
	kept := moves[:0]
	for _, m := range moves {
		scratch.Move(m)
		inCheck := IsInCheck(scratch, colour)
		scratch.Undo()
		if !inCheck {
			kept = append(kept, m)
		}
	}
	return kept
}
