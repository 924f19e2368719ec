// Package server exposes game sessions over an HTTP JSON API.
package server

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// Server routes HTTP requests to sessions held by a session.Manager.
type Server struct {
	cfg     *config.Config
	view    *config.Config // cfg with history and legal moves always shown
	manager *session.Manager
	app     *fiber.App
	perft   *hashing.ThreadSafePerftCache
	mu      sync.Mutex // guards every session handed out by manager
}

// New builds a server and registers its routes.
func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	view := *cfg
	view.Output.ShowHistory = true
	view.Output.ShowMoves = true

	s := &Server{
		cfg:     cfg,
		view:    &view,
		manager: session.NewManager(cfg),
		perft:   hashing.NewThreadSafePerftCache(cfg.Perft.CacheSize),
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "chess-rules",
		DisableStartupMessage: cfg.Verbosity == 0,
		ErrorHandler:          s.handleError,
	})
	s.routes()
	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Manager returns the session registry.
func (s *Server) Manager() *session.Manager {
	return s.manager
}

// Listen serves on cfg.Server.Addr until Shutdown is called.
func (s *Server) Listen() error {
	if s.cfg.Verbosity > 0 {
		fmt.Fprintf(s.cfg.LogFile, "listening on %s\n", s.cfg.Server.Addr)
	}
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the listener and waits for open requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) routes() {
	s.app.Use(s.logRequest)

	api := s.app.Group("/api")
	api.Get("/perft", s.perftCount)

	games := api.Group("/games")
	games.Post("/", s.createGame)
	games.Get("/:id", s.getGame)
	games.Delete("/:id", s.deleteGame)
	games.Get("/:id/moves", s.legalMoves)
	games.Post("/:id/moves", s.playMove)
	games.Post("/:id/undo", s.undoMove)
	games.Post("/:id/click", s.click)
	games.Post("/:id/promotion", s.promote)
	games.Delete("/:id/promotion", s.cancelPromotion)
	games.Get("/:id/board.svg", s.boardSVG)
}

// logRequest writes one line per request at verbosity 2.
func (s *Server) logRequest(c *fiber.Ctx) error {
	err := c.Next()
	if err != nil {
		err = s.handleError(c, err)
	}
	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "%s %s %d\n", c.Method(), c.Path(), c.Response().StatusCode())
	}
	return err
}

// handleError maps game errors to HTTP status codes.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case stderrors.As(err, &fe):
		return fe.Code
	case stderrors.Is(err, errors.ErrSessionNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrInvalidFEN),
		stderrors.Is(err, errors.ErrInvalidMoveText),
		stderrors.Is(err, errors.ErrOutOfBounds),
		stderrors.Is(err, errors.ErrInvalidPromotion):
		return fiber.StatusBadRequest
	case stderrors.Is(err, errors.ErrIllegalMove),
		stderrors.Is(err, errors.ErrNotYourTurn),
		stderrors.Is(err, errors.ErrPromotionRequired),
		stderrors.Is(err, errors.ErrGameOver),
		stderrors.Is(err, errors.ErrNoSelection),
		stderrors.Is(err, errors.ErrNothingToUndo):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// withSession runs fn on the session named by the :id parameter while
// holding the server lock.
func (s *Server) withSession(c *fiber.Ctx, fn func(*session.Session) error) error {
	game, err := s.manager.Lookup(c.Params("id"))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(game)
}
