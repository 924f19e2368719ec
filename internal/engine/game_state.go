package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GameStatus summarises the position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsOver reports whether no further moves can be played.
func (s GameStatus) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckMate returns true if colour is in check and has no legal move.
func IsCheckMate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStaleMate returns true if colour is not in check and has no legal move.
func IsStaleMate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Status classifies the position for colour.
func Status(board *chess.Board, colour chess.Colour) GameStatus {
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	}
	return Ongoing
}
