// Package session drives one game through the select, destination and
// promotion protocol an interactive board uses, and keeps a registry of
// live games.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Session is a single game: the board, whose turn it is, the current
// selection and any promotion waiting for a piece choice.
// A Session is not safe for concurrent use.
type Session struct {
	id     uuid.UUID
	cfg    *config.Config
	board  *chess.Board
	toMove chess.Colour
	status engine.GameStatus

	selected chess.Coordinates
	targets  []chess.Move

	pending    chess.Move
	hasPending bool
}

// New creates a session at the standard starting position. A nil cfg means
// the defaults of config.NewConfig.
func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	s := &Session{
		id:     uuid.New(),
		cfg:    cfg,
		board:  chess.NewInitialBoard(),
		toMove: chess.White,
	}
	s.status = engine.Status(s.board, s.toMove)
	return s
}

// NewFromFEN creates a session from a FEN placement and side to move.
func NewFromFEN(cfg *config.Config, fen string) (*Session, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	s := &Session{
		id:     uuid.New(),
		cfg:    cfg,
		board:  board,
		toMove: toMove,
	}
	s.status = engine.Status(board, toMove)
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board { return s.board.Copy() }

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Colour { return s.toMove }

// Status returns the state of the game for the side to move.
func (s *Session) Status() engine.GameStatus { return s.status }

// FEN returns the FEN of the current position.
func (s *Session) FEN() string { return engine.BoardToFEN(s.board, s.toMove) }

// History returns the moves played so far.
func (s *Session) History() []chess.HistoryEntry { return s.board.History() }

// LegalMoves returns every legal move of the side to move, with promotion
// choices expanded.
func (s *Session) LegalMoves() []chess.Move {
	if s.status.IsOver() {
		return nil
	}
	return engine.LegalMoves(s.board, s.toMove)
}

// Selection returns the selected square and its legal moves.
func (s *Session) Selection() (chess.Coordinates, []chess.Move, bool) {
	if !s.selected.Valid() {
		return chess.Coordinates{}, nil, false
	}
	return s.selected, append([]chess.Move(nil), s.targets...), true
}

// PendingPromotion returns the move waiting for a promotion piece.
func (s *Session) PendingPromotion() (chess.Move, bool) {
	return s.pending, s.hasPending
}

// Select makes sq the selected square if it holds a piece of the side to
// move and returns its legal moves. Any other square clears the selection
// and returns nil.
func (s *Session) Select(sq chess.Coordinates) ([]chess.Move, error) {
	if s.status.IsOver() {
		return nil, s.wrap(errors.ErrGameOver, "")
	}
	if s.hasPending {
		return nil, s.wrap(errors.ErrPromotionRequired, s.pending.String())
	}

	piece := s.board.Get(sq)
	if piece.IsEmpty() || piece.Colour != s.toMove {
		s.clearSelection()
		return nil, nil
	}

	s.selected = sq
	s.targets = engine.TrueValidMoves(s.board, sq)
	return append([]chess.Move(nil), s.targets...), nil
}

// Click handles a click on sq. With a selection whose legal moves include
// sq the move is played, or parked for a promotion choice; otherwise sq is
// selected.
func (s *Session) Click(sq chess.Coordinates) (ClickResult, error) {
	if s.status.IsOver() {
		return ClickResult{}, s.wrap(errors.ErrGameOver, "")
	}
	if s.hasPending {
		return ClickResult{}, s.wrap(errors.ErrPromotionRequired, s.pending.String())
	}

	if s.selected.Valid() {
		for _, m := range s.targets {
			if m.To() != sq {
				continue
			}
			if engine.NeedsPromotion(s.board, m) {
				s.pending = m
				s.hasPending = true
				return ClickResult{
					Action: PromotionPending,
					Square: sq,
					Move:   m,
					Status: s.status,
				}, nil
			}
			if err := s.Play(m); err != nil {
				return ClickResult{}, err
			}
			return ClickResult{Action: Moved, Square: sq, Move: m, Status: s.status}, nil
		}
	}

	targets, err := s.Select(sq)
	if err != nil {
		return ClickResult{}, err
	}
	if !s.selected.Valid() {
		return ClickResult{Action: Cleared, Square: sq, Status: s.status}, nil
	}
	return ClickResult{Action: Selected, Square: sq, Targets: targets, Status: s.status}, nil
}

// PromotionChoices returns the pieces a pawn of colour may become, in the
// order Queen, Knight, Rook, Bishop.
func PromotionChoices(colour chess.Colour) []chess.Piece {
	kinds := engine.PromotionKinds()
	pieces := make([]chess.Piece, len(kinds))
	for i, k := range kinds {
		pieces[i] = chess.NewPiece(colour, k)
	}
	return pieces
}

// Promote completes the pending promotion with a piece of the given kind.
func (s *Session) Promote(kind chess.Kind) (chess.Move, error) {
	if !s.hasPending {
		return chess.Move{}, s.wrap(errors.ErrNoSelection, "")
	}
	if !isPromotionKind(kind) {
		return chess.Move{}, s.wrap(fmt.Errorf("cannot promote to %v: %w", kind, errors.ErrInvalidPromotion), s.pending.String())
	}

	m, err := chess.NewPromotionMove(s.pending, chess.NewPiece(s.toMove, kind))
	if err != nil {
		return chess.Move{}, s.wrap(err, s.pending.String())
	}

	if err := s.Play(m); err != nil {
		return chess.Move{}, err
	}
	return m, nil
}

// CancelPromotion drops the pending promotion and the selection.
func (s *Session) CancelPromotion() {
	s.pending = chess.Move{}
	s.hasPending = false
	s.clearSelection()
}

// Play validates and applies m for the side to move, hands the turn over and
// recomputes the game status. While a promotion is pending only that move,
// with a piece, is accepted.
func (s *Session) Play(m chess.Move) error {
	if err := s.validate(m); err != nil {
		return s.wrap(err, m.String())
	}

	mover := s.toMove
	s.board.Move(m)
	s.toMove = mover.Opponent()
	s.clearSelection()
	s.pending = chess.Move{}
	s.hasPending = false
	s.status = engine.Status(s.board, s.toMove)

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "%s ply %d: %v %s, %v to move: %s\n",
			s.shortID(), s.board.Len(), mover, m, s.toMove, s.status)
	}
	if s.status.IsOver() && s.cfg.Verbosity > 0 {
		fmt.Fprintf(s.cfg.LogFile, "%s: %s after %d plies\n", s.shortID(), s.status, s.board.Len())
	}
	return nil
}

// PlayText parses coordinate move text for the side to move and plays it.
func (s *Session) PlayText(text string) error {
	m, err := chess.ParseMove(text, s.toMove)
	if err != nil {
		return s.wrap(err, text)
	}
	return s.Play(m)
}

// Undo takes back the last ply and returns the turn to its mover.
func (s *Session) Undo() (chess.Move, error) {
	m, ok := s.board.Undo()
	if !ok {
		return chess.Move{}, s.wrap(errors.ErrNothingToUndo, "")
	}

	s.toMove = s.toMove.Opponent()
	s.CancelPromotion()
	s.status = engine.Status(s.board, s.toMove)

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "%s undo %s, %v to move\n", s.shortID(), m, s.toMove)
	}
	return m, nil
}

func (s *Session) validate(m chess.Move) error {
	if s.status.IsOver() {
		return errors.ErrGameOver
	}
	if s.hasPending && !m.SameSquares(s.pending) {
		return fmt.Errorf("%s is waiting for a piece: %w", s.pending, errors.ErrPromotionRequired)
	}

	piece := s.board.Get(m.From())
	if piece.IsEmpty() {
		return fmt.Errorf("no piece on %s: %w", m.From(), errors.ErrIllegalMove)
	}
	if piece.Colour != s.toMove {
		return errors.ErrNotYourTurn
	}
	if !engine.Legal(s.board, m) {
		return errors.ErrIllegalMove
	}

	promo, isPromo := m.Promotion()
	needs := engine.NeedsPromotion(s.board, m)
	switch {
	case needs && !isPromo:
		return errors.ErrPromotionRequired
	case !needs && isPromo:
		return fmt.Errorf("%v cannot promote: %w", piece, errors.ErrInvalidPromotion)
	case isPromo && !isPromotionKind(promo.Kind):
		return fmt.Errorf("cannot promote to %v: %w", promo, errors.ErrInvalidPromotion)
	}
	return nil
}

func (s *Session) clearSelection() {
	s.selected = chess.Coordinates{}
	s.targets = nil
}

// wrap attaches the session and the ply about to be played.
func (s *Session) wrap(err error, moveText string) error {
	return &errors.GameError{
		Err:      err,
		Session:  s.id.String(),
		PlyNum:   s.board.Len() + 1,
		MoveText: moveText,
	}
}

func (s *Session) shortID() string {
	return s.id.String()[:8]
}

func isPromotionKind(kind chess.Kind) bool {
	for _, k := range engine.PromotionKinds() {
		if k == kind {
			return true
		}
	}
	return false
}
