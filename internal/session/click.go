package session

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// ClickAction says what a click did.
type ClickAction int

const (
	Cleared          ClickAction = iota // selection removed
	Selected                            // own piece selected
	Moved                               // move played
	PromotionPending                    // waiting for Promote
)

// String returns the string representation of an action.
func (a ClickAction) String() string {
	switch a {
	case Selected:
		return "selected"
	case Moved:
		return "moved"
	case PromotionPending:
		return "promotion pending"
	default:
		return "cleared"
	}
}

// ClickResult describes the outcome of Session.Click.
type ClickResult struct {
	Action ClickAction
	Square chess.Coordinates

	// Targets holds the legal moves of a newly selected piece.
	Targets []chess.Move

	// Move is the move played or parked for promotion.
	Move chess.Move

	// Status is the game status after the click.
	Status engine.GameStatus
}
