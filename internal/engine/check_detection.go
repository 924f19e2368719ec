package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if any opposing piece has a pseudo-legal move onto
// a square holding colour's king. A side without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	for _, king := range board.Find(chess.King, colour) {
		if IsSquareAttacked(board, king, colour.Opponent()) {
			return true
		}
	}
	return false
}

// IsSquareAttacked returns true if some piece of byColour has a pseudo-legal
// move landing on sq. Pawn diagonals only count when sq holds a piece of the
// other colour, as that is the only time a pawn may move there.
func IsSquareAttacked(board *chess.Board, sq chess.Coordinates, byColour chess.Colour) bool {
	for _, from := range board.Occupied(byColour) {
		for _, m := range ValidMoves(board, from) {
			if m.To() == sq {
				return true
			}
		}
	}
	return false
}

// Checkers returns the squares of the pieces giving check to colour.
func Checkers(board *chess.Board, colour chess.Colour) []chess.Coordinates {
	kings := board.Find(chess.King, colour)
	if len(kings) == 0 {
		return nil
	}

	var checkers []chess.Coordinates
	for _, from := range board.Occupied(colour.Opponent()) {
		for _, m := range ValidMoves(board, from) {
			if containsSquare(kings, m.To()) {
				checkers = append(checkers, from)
				break
			}
		}
	}
	return checkers
}

func containsSquare(squares []chess.Coordinates, sq chess.Coordinates) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
