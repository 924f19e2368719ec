package server

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// CreateRequest is the body of POST /api/games.
type CreateRequest struct {
	FEN string `json:"fen"`
}

// MoveRequest is the body of POST /api/games/:id/moves.
type MoveRequest struct {
	Move string `json:"move"`
}

// ClickRequest is the body of POST /api/games/:id/click.
type ClickRequest struct {
	Square string `json:"square"`
}

// PromotionRequest is the body of POST /api/games/:id/promotion. Piece is
// a letter: q, n, r or b.
type PromotionRequest struct {
	Piece string `json:"piece"`
}

// GameResponse is a session's state.
type GameResponse struct {
	ID string `json:"id"`
	output.JSONPosition
	Selected         string   `json:"selected,omitempty"`
	Targets          []string `json:"targets,omitempty"`
	PendingPromotion string   `json:"pendingPromotion,omitempty"`
}

// ClickResponse reports what a click did and the resulting state.
type ClickResponse struct {
	Action string       `json:"action"`
	Square string       `json:"square"`
	Move   string       `json:"move,omitempty"`
	Game   GameResponse `json:"game"`
}

// MovesResponse lists legal moves, of one square or the whole side.
type MovesResponse struct {
	Square string   `json:"square,omitempty"`
	Moves  []string `json:"moves"`
}

func gameResponse(s *session.Session, view *config.Config) GameResponse {
	resp := GameResponse{
		ID:           s.ID().String(),
		JSONPosition: *output.PositionToJSON(s.Board(), s.ToMove(), view),
	}
	if sq, targets, ok := s.Selection(); ok {
		resp.Selected = sq.String()
		resp.Targets = moveStrings(targets)
	}
	if m, ok := s.PendingPromotion(); ok {
		resp.PendingPromotion = m.String()
	}
	return resp
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
