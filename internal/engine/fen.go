package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. Only the placement and side-to-move fields are used; the
// castling, en passant and clock fields are accepted and ignored. A missing
// side-to-move field means White.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// MustBoardFromFEN is NewBoardFromFEN for known-good positions; it panics
// on error.
func MustBoardFromFEN(fen string) *chess.Board {
	board, _, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.LastRank
	file := chess.FirstFile

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if file != chess.LastFile+1 {
				return placementError(positions, i, "8 files per rank", fmt.Sprintf("%d", file-1))
			}
			rank--
			file = chess.FirstFile
			if rank < chess.FirstRank {
				return placementError(positions, i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.LastFile+1 {
				return placementError(positions, i, "8 files per rank", "more")
			}
		default:
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return placementError(positions, i, "piece letter or digit", fmt.Sprintf("%q", c))
			}
			sq, err := chess.NewCoordinates(file, rank)
			if err != nil {
				return placementError(positions, i, "8 files per rank", "more")
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}

			board.Set(sq, chess.NewPiece(colour, kind))
			file++
		}
	}

	if rank != chess.FirstRank || file != chess.LastFile+1 {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Expected: "8 complete ranks",
		}
	}
	return nil
}

func placementError(positions string, i int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    positions,
		Column:   i + 1,
		Expected: expected,
		Got:      got,
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board to a FEN string. Castling and en passant are
// not tracked and are always written as "-".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	fmt.Fprintf(&sb, " - - 0 %d", board.Len()/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			piece := board.GetAt(file, rank)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// Placement returns only the piece placement field of the board's FEN.
func Placement(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}
