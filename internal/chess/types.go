// Package chess provides core chess types and board state.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the opposite colour.
func (c Colour) Opponent() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the rank pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 2
	}
	return 7
}

// PromotionRank returns the rank on which pawns of this colour promote.
func (c Colour) PromotionRank() int {
	if c == White {
		return LastRank
	}
	return FirstRank
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is a coloured chess piece. Pieces are values: two pieces of the same
// kind and colour are interchangeable, and the zero Piece is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// NewPiece creates a piece of the given colour and kind.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// ID returns the short asset identifier of the piece, e.g. "wk" or "bp".
// Empty squares have no identifier.
func (p Piece) ID() string {
	if p.IsEmpty() {
		return ""
	}
	side := byte('w')
	if p.Colour == Black {
		side = 'b'
	}
	return string([]byte{side, p.Kind.Letter() + 'a' - 'A'})
}

// String returns a readable name such as "White Queen".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstFile = 1
	LastFile  = BoardSize
	FirstRank = 1
	LastRank  = BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// InBounds reports whether x is a valid file or rank.
func InBounds(x int) bool {
	return x >= 1 && x <= BoardSize
}
