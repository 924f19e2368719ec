package chess

// HistoryEntry records one applied move together with the piece that made
// it and whatever it captured (NoPiece if the destination was empty).
type HistoryEntry struct {
	Move     Move
	Piece    Piece
	Captured Piece
}

// Board holds square occupancy and the chronological move history.
// A Board is not safe for concurrent mutation; one game drives it at a time.
type Board struct {
	// squares[file-1][rank-1]
	squares [BoardSize][BoardSize]Piece

	history []HistoryEntry
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Reset()
	return b
}

// backRank lists the pieces of the first rank from the a-file to the h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Reset clears the board and history, then places the standard 32 pieces.
func (b *Board) Reset() {
	b.Clear()
	for f := 0; f < BoardSize; f++ {
		b.squares[f][0] = W(backRank[f])
		b.squares[f][1] = W(Pawn)
		b.squares[f][6] = B(Pawn)
		b.squares[f][7] = B(backRank[f])
	}
}

// Clear removes every piece and the whole history.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]Piece{}
	b.history = b.history[:0]
}

// Get returns the piece at c, NoPiece if the square is empty.
func (b *Board) Get(c Coordinates) Piece {
	if !c.Valid() {
		return NoPiece
	}
	f, r := c.index()
	return b.squares[f][r]
}

// GetAt returns the piece at the given file and rank, NoPiece if the square
// is empty or off the board.
func (b *Board) GetAt(file, rank int) Piece {
	if !InBounds(file) || !InBounds(rank) {
		return NoPiece
	}
	return b.squares[file-1][rank-1]
}

// IsEmpty reports whether nothing stands on c.
func (b *Board) IsEmpty(c Coordinates) bool {
	return b.Get(c).IsEmpty()
}

// Set places piece on c (NoPiece clears it) and returns the previous
// occupant. It does not touch the history; use it for setup.
func (b *Board) Set(c Coordinates, piece Piece) Piece {
	if !c.Valid() {
		return NoPiece
	}
	f, r := c.index()
	old := b.squares[f][r]
	b.squares[f][r] = piece
	return old
}

// Move plays m without any legality checking. A move from an empty square
// is ignored and Move reports false. A promotion move places its promotion
// piece instead of the pawn.
func (b *Board) Move(m Move) bool {
	piece := b.Get(m.From())
	if piece.IsEmpty() {
		return false
	}

	placed := piece
	if promo, ok := m.Promotion(); ok {
		placed = promo
	}

	captured := b.Set(m.To(), placed)
	b.Set(m.From(), NoPiece)

	b.history = append(b.history, HistoryEntry{Move: m, Piece: piece, Captured: captured})
	return true
}

// Undo takes back the last move and returns it. It returns false once the
// history is empty.
func (b *Board) Undo() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}

	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.Set(last.Move.From(), last.Piece)
	b.Set(last.Move.To(), last.Captured)

	return last.Move, true
}

// CopyTo overwrites other with this board's occupancy and history.
// other shares no mutable state with b afterwards.
func (b *Board) CopyTo(other *Board) {
	other.squares = b.squares
	other.history = append(other.history[:0], b.history...)
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	b.CopyTo(newBoard)
	return newBoard
}

// Len returns the number of moves in the history.
func (b *Board) Len() int {
	return len(b.history)
}

// Moves returns the played moves, oldest first.
func (b *Board) Moves() []Move {
	moves := make([]Move, len(b.history))
	for i, h := range b.history {
		moves[i] = h.Move
	}
	return moves
}

// History returns a copy of the history entries, oldest first.
func (b *Board) History() []HistoryEntry {
	return append([]HistoryEntry(nil), b.history...)
}

// Captured returns the pieces captured so far in the order they were taken.
func (b *Board) Captured() []Piece {
	var captured []Piece
	for _, h := range b.history {
		if !h.Captured.IsEmpty() {
			captured = append(captured, h.Captured)
		}
	}
	return captured
}

// LastMove returns the most recent history entry.
func (b *Board) LastMove() (HistoryEntry, bool) {
	if len(b.history) == 0 {
		return HistoryEntry{}, false
	}
	return b.history[len(b.history)-1], true
}

// Find returns every square holding a piece of the given colour and kind,
// in file-major order (a1, a2, ..., h8).
func (b *Board) Find(kind Kind, colour Colour) []Coordinates {
	var found []Coordinates
	for f := 0; f < BoardSize; f++ {
		for r := 0; r < BoardSize; r++ {
			if b.squares[f][r].Is(colour, kind) {
				found = append(found, Coordinates{file: int8(f + 1), rank: int8(r + 1)})
			}
		}
	}
	return found
}

// Occupied returns the squares holding pieces of colour, in file-major order.
func (b *Board) Occupied(colour Colour) []Coordinates {
	var squares []Coordinates
	for f := 0; f < BoardSize; f++ {
		for r := 0; r < BoardSize; r++ {
			p := b.squares[f][r]
			if !p.IsEmpty() && p.Colour == colour {
				squares = append(squares, Coordinates{file: int8(f + 1), rank: int8(r + 1)})
			}
		}
	}
	return squares
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for f := 0; f < BoardSize; f++ {
		for r := 0; r < BoardSize; r++ {
			if !b.squares[f][r].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two boards have identical occupancy. History is
// not compared.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares
}
