package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isPathClear reports whether every square strictly between the endpoints
// of m is empty. Moves that are neither straight nor diagonal, and moves of
// distance one, have no intermediate squares and are always clear.
func isPathClear(board *chess.Board, m chess.Move) bool {
	fileDiff := m.ToFile() - m.FromFile()
	rankDiff := m.ToRank() - m.FromRank()

	if fileDiff != 0 && rankDiff != 0 && abs(fileDiff) != abs(rankDiff) {
		return true
	}

	fileDir := sign(fileDiff)
	rankDir := sign(rankDiff)

	file := m.FromFile() + fileDir
	rank := m.FromRank() + rankDir

	for file != m.ToFile() || rank != m.ToRank() {
		if !board.GetAt(file, rank).IsEmpty() {
			return false
		}
		file += fileDir
		rank += rankDir
	}

	return true
}

// filterLineOfSight drops moves whose path is blocked.
func filterLineOfSight(board *chess.Board, moves []chess.Move) []chess.Move {
	kept := moves[:0]
	for _, m := range moves {
		if isPathClear(board, m) {
			kept = append(kept, m)
		}
	}
	return kept
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
