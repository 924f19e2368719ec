package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is an immutable from/to pair. A promotion move additionally carries
// the piece the pawn becomes; see NewPromotionMove.
type Move struct {
	from      Coordinates
	to        Coordinates
	promotion Piece
}

// NewMove bounds-checks all four values and returns the move.
func NewMove(fromFile, fromRank, toFile, toRank int) (Move, error) {
	from, err := NewCoordinates(fromFile, fromRank)
	if err != nil {
		return Move{}, err
	}
	to, err := NewCoordinates(toFile, toRank)
	if err != nil {
		return Move{}, err
	}
	return Move{from: from, to: to}, nil
}

// MoveBetween creates a move between two already validated squares.
func MoveBetween(from, to Coordinates) Move {
	return Move{from: from, to: to}
}

// NewPromotionMove attaches a promotion piece to move. It fails with
// ErrInvalidPromotion unless the move lands on the last rank for the
// colour of piece.
func NewPromotionMove(move Move, piece Piece) (Move, error) {
	if piece.IsEmpty() || !move.QualifiesForPromotion(piece.Colour) {
		return Move{}, fmt.Errorf("%s to %s: %w", move.Plain(), piece, errors.ErrInvalidPromotion)
	}
	move.promotion = piece
	return move, nil
}

// From returns the source square.
func (m Move) From() Coordinates {
	return m.from
}

// To returns the destination square.
func (m Move) To() Coordinates {
	return m.to
}

// FromFile returns the source file.
func (m Move) FromFile() int { return m.from.File() }

// FromRank returns the source rank.
func (m Move) FromRank() int { return m.from.Rank() }

// ToFile returns the destination file.
func (m Move) ToFile() int { return m.to.File() }

// ToRank returns the destination rank.
func (m Move) ToRank() int { return m.to.Rank() }

// QualifiesForPromotion reports whether the move lands on the promotion
// rank of colour. Whether a pawn is actually moving is up to the caller.
func (m Move) QualifiesForPromotion(colour Colour) bool {
	return m.to.Rank() == colour.PromotionRank()
}

// Promotion returns the promotion piece, if any.
func (m Move) Promotion() (Piece, bool) {
	return m.promotion, !m.promotion.IsEmpty()
}

// IsPromotion returns true if this move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return !m.promotion.IsEmpty()
}

// Plain returns the move without its promotion piece.
func (m Move) Plain() Move {
	return Move{from: m.from, to: m.to}
}

// SameSquares reports whether m and other connect the same two squares,
// ignoring any promotion piece.
func (m Move) SameSquares(other Move) bool {
	return m.from == other.from && m.to == other.to
}

// String renders the move in coordinate notation, e.g. "e2e4".
// Promotions append the lowercase piece letter, e.g. "e7e8q".
func (m Move) String() string {
	s := m.from.String() + m.to.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.promotion.Kind.Letter()))
	}
	return s
}

// ParseMove parses coordinate notation ("e2e4", "e7e8q") as written by
// Move.String. The promotion piece, if any, is given colour.
func ParseMove(text string, colour Colour) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Input:    text,
			Expected: "4 or 5 characters",
		}
	}

	from, err := Square(text[0:2])
	if err != nil {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMoveText, Input: text, Column: 1, Got: err.Error()}
	}
	to, err := Square(text[2:4])
	if err != nil {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMoveText, Input: text, Column: 3, Got: err.Error()}
	}
	move := MoveBetween(from, to)

	if len(text) == 5 {
		kind := KindFromLetter(text[4])
		switch kind {
		case Queen, Rook, Bishop, Knight:
		default:
			return Move{}, &errors.ParseError{
				Err:      errors.ErrInvalidMoveText,
				Input:    text,
				Column:   5,
				Expected: "promotion piece q, r, b or n",
				Got:      fmt.Sprintf("%q", text[4]),
			}
		}
		return NewPromotionMove(move, NewPiece(colour, kind))
	}

	return move, nil
}
