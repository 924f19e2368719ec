package server

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// createGame handles POST /api/games. An empty body starts from the
// initial position.
func (s *Server) createGame(c *fiber.Ctx) error {
	var req CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	if limit := s.cfg.Server.MaxSessions; limit > 0 && s.manager.Len() >= limit {
		return fiber.NewError(fiber.StatusServiceUnavailable,
			fmt.Sprintf("session limit of %d reached", limit))
	}

	var game *session.Session
	if req.FEN == "" {
		game = s.manager.Create()
	} else {
		var err error
		if game, err = s.manager.CreateFromFEN(req.FEN); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return c.Status(fiber.StatusCreated).JSON(gameResponse(game, s.view))
}

// getGame handles GET /api/games/:id.
func (s *Server) getGame(c *fiber.Ctx) error {
	return s.withSession(c, func(game *session.Session) error {
		return c.JSON(gameResponse(game, s.view))
	})
}

// deleteGame handles DELETE /api/games/:id.
func (s *Server) deleteGame(c *fiber.Ctx) error {
	game, err := s.manager.Lookup(c.Params("id"))
	if err != nil {
		return err
	}
	s.manager.Remove(game.ID())
	return c.SendStatus(fiber.StatusNoContent)
}

// legalMoves handles GET /api/games/:id/moves. With ?square=e2 only that
// square's moves are listed; the selection is not changed.
func (s *Server) legalMoves(c *fiber.Ctx) error {
	return s.withSession(c, func(game *session.Session) error {
		name := c.Query("square")
		if name == "" {
			return c.JSON(MovesResponse{Moves: moveStrings(game.LegalMoves())})
		}

		sq, err := chess.Square(name)
		if err != nil {
			return err
		}
		var moves []chess.Move
		if piece := game.Board().Get(sq); !piece.IsEmpty() && piece.Colour == game.ToMove() && !game.Status().IsOver() {
			moves = engine.TrueValidMoves(game.Board(), sq)
		}
		return c.JSON(MovesResponse{Square: sq.String(), Moves: moveStrings(moves)})
	})
}

// playMove handles POST /api/games/:id/moves.
func (s *Server) playMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return s.withSession(c, func(game *session.Session) error {
		if err := game.PlayText(req.Move); err != nil {
			return err
		}
		return c.JSON(gameResponse(game, s.view))
	})
}

// undoMove handles POST /api/games/:id/undo.
func (s *Server) undoMove(c *fiber.Ctx) error {
	return s.withSession(c, func(game *session.Session) error {
		if _, err := game.Undo(); err != nil {
			return err
		}
		return c.JSON(gameResponse(game, s.view))
	})
}

// click handles POST /api/games/:id/click.
func (s *Server) click(c *fiber.Ctx) error {
	var req ClickRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	sq, err := chess.Square(req.Square)
	if err != nil {
		return err
	}

	return s.withSession(c, func(game *session.Session) error {
		result, err := game.Click(sq)
		if err != nil {
			return err
		}
		resp := ClickResponse{
			Action: result.Action.String(),
			Square: result.Square.String(),
			Game:   gameResponse(game, s.view),
		}
		if result.Action == session.Moved || result.Action == session.PromotionPending {
			resp.Move = result.Move.String()
		}
		return c.JSON(resp)
	})
}

// promote handles POST /api/games/:id/promotion.
func (s *Server) promote(c *fiber.Ctx) error {
	var req PromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if len(req.Piece) != 1 {
		return fmt.Errorf("piece %q: %w", req.Piece, errors.ErrInvalidPromotion)
	}

	return s.withSession(c, func(game *session.Session) error {
		if _, err := game.Promote(chess.KindFromLetter(req.Piece[0])); err != nil {
			return err
		}
		return c.JSON(gameResponse(game, s.view))
	})
}

// cancelPromotion handles DELETE /api/games/:id/promotion.
func (s *Server) cancelPromotion(c *fiber.Ctx) error {
	return s.withSession(c, func(game *session.Session) error {
		game.CancelPromotion()
		return c.JSON(gameResponse(game, s.view))
	})
}

// boardSVG handles GET /api/games/:id/board.svg.
func (s *Server) boardSVG(c *fiber.Ctx) error {
	return s.withSession(c, func(game *session.Session) error {
		var buf bytes.Buffer
		if err := output.WriteSVG(&buf, game.Board(), game.ToMove(), s.cfg.Output.Labels); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "image/svg+xml")
		return c.Send(buf.Bytes())
	})
}

// perftCount handles GET /api/perft?fen=...&depth=N. Counts are cached
// across requests.
func (s *Server) perftCount(c *fiber.Ctx) error {
	depth, err := strconv.Atoi(c.Query("depth", "1"))
	if err != nil || depth < 1 || depth > config.MaxServerPerftDepth {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("depth must be 1-%d", config.MaxServerPerftDepth))
	}

	fen := c.Query("fen", engine.InitialFEN)
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}

	start := time.Now()
	divide, nodes := engine.DivideWithCache(board, toMove, depth, s.cfg.Perft.Workers, s.perft)
	report := output.PerftReport{Depth: depth, Nodes: nodes, Divide: divide, Elapsed: time.Since(start)}

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "perft %d: %d nodes, cache %d positions\n", depth, nodes, s.perft.Len())
	}
	return c.JSON(output.PerftToJSON(report))
}
