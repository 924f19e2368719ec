// Package hashing provides position hashing and a perft node cache.
package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	// pieceKeys[colour][kind][square]
	pieceKeys   [2][7][64]uint64
	blackToMove uint64
)

func init() {
	state := uint64(zobristSeed)
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = splitmix64(&state)
			}
		}
	}
	blackToMove = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash computes the Zobrist hash of the occupancy and side
// to move. History does not contribute.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	forEachPiece(board, func(sq int, p chess.Piece) {
		hash ^= pieceKeys[p.Colour][p.Kind][sq]
	})
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap independent checksum of the occupancy, used to
// confirm a Zobrist match.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	forEachPiece(board, func(sq int, p chess.Piece) {
		code := uint32(p.Kind) + 7*uint32(p.Colour)
		hash += code * code * uint32(sq+1)
	})
	return hash
}

func forEachPiece(board *chess.Board, fn func(sq int, p chess.Piece)) {
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
			p := board.GetAt(file, rank)
			if !p.IsEmpty() {
				fn((file-1)*chess.BoardSize+rank-1, p)
			}
		}
	}
}
