// Package output renders positions, move lists and perft counts.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WriteDiagram writes an 8x8 text board with rank 8 at the top. White
// pieces are uppercase, black lowercase and empty squares '.'. With labels
// each row starts with its rank digit and a file-letter row follows.
func WriteDiagram(w io.Writer, board *chess.Board, labels bool) error {
	bw := bufio.NewWriter(w)
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		if labels {
			fmt.Fprintf(bw, "%d ", rank)
		}
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			if file > chess.FirstFile {
				bw.WriteByte(' ')
			}
			bw.WriteByte(board.GetAt(file, rank).Letter())
		}
		bw.WriteByte('\n')
	}
	if labels {
		bw.WriteString("  a b c d e f g h\n")
	}
	return bw.Flush()
}

// Diagram returns the diagram of board as a string.
func Diagram(board *chess.Board, labels bool) string {
	var sb strings.Builder
	WriteDiagram(&sb, board, labels) //nolint:errcheck // strings.Builder does not fail
	return sb.String()
}

// MoveList joins moves in coordinate notation separated by spaces.
func MoveList(moves []chess.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
