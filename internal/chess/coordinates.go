package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Coordinates identifies a square by file (1 = a) and rank (1..8).
// The zero value is not a valid square; use NewCoordinates or Square.
type Coordinates struct {
	file int8
	rank int8
}

// NewCoordinates validates file and rank and returns the square.
func NewCoordinates(file, rank int) (Coordinates, error) {
	if !InBounds(file) || !InBounds(rank) {
		return Coordinates{}, fmt.Errorf("file %d, rank %d: %w", file, rank, errors.ErrOutOfBounds)
	}
	return Coordinates{file: int8(file), rank: int8(rank)}, nil
}

// MustCoordinates is NewCoordinates for constant squares; it panics on
// out-of-range input.
func MustCoordinates(file, rank int) Coordinates {
	c, err := NewCoordinates(file, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Square parses an algebraic square name such as "e4".
func Square(name string) (Coordinates, error) {
	if len(name) != 2 {
		return Coordinates{}, &errors.ParseError{
			Err:      errors.ErrOutOfBounds,
			Input:    name,
			Expected: "square name",
		}
	}
	c, err := NewCoordinates(int(name[0]-FileBase)+1, int(name[1]-RankBase)+1)
	if err != nil {
		return Coordinates{}, &errors.ParseError{Err: err, Input: name}
	}
	return c, nil
}

// File returns the file, 1 (a) to 8 (h).
func (c Coordinates) File() int {
	return int(c.file)
}

// Rank returns the rank, 1 to 8.
func (c Coordinates) Rank() int {
	return int(c.rank)
}

// Valid reports whether c was produced by a successful constructor.
func (c Coordinates) Valid() bool {
	return InBounds(int(c.file)) && InBounds(int(c.rank))
}

// Offset returns the square df files and dr ranks away, failing with
// ErrOutOfBounds when that leaves the board.
func (c Coordinates) Offset(df, dr int) (Coordinates, error) {
	return NewCoordinates(int(c.file)+df, int(c.rank)+dr)
}

// String returns the algebraic square name, e.g. "e4".
func (c Coordinates) String() string {
	if !c.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + c.file - 1), byte(RankBase + c.rank - 1)})
}

// index returns the [file][rank] array index of the square.
func (c Coordinates) index() (int, int) {
	return int(c.file) - 1, int(c.rank) - 1
}
