// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour accepts "white"/"w" and "black"/"b" in any case.
func ParseColour(s string) (Colour, error) {
	switch s {
	case "white", "White", "WHITE", "w", "W":
		return White, nil
	case "black", "Black", "BLACK", "b", "B":
		return Black, nil
	}
	return White, fmt.Errorf("unknown colour %q", s)
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
	NumKinds
)

var (
	kindNames   = [NumKinds]string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	kindLetters = [NumKinds]byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	if k >= 0 && k < NumKinds {
		return kindLetters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a kind.
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
	}
	return NoKind
}

// IsPromotionChoice reports whether a pawn may promote to k.
func (k Kind) IsPromotionChoice() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// Piece is the content of a board cell. The zero value is an empty cell.
type Piece struct {
	Colour   Colour
	Kind     Kind
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty returns true if the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black and '.' for an empty cell.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns the piece letter.
func (p Piece) String() string {
	return string(p.Letter())
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'
)

// Square is a (row, column) pair. Row 0 is rank 8 (Black's back rank),
// row 7 is rank 1; column 0..7 maps to files a..h.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid returns true if both coordinates are on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by (dRow, dCol).
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// Index returns the row-major index 0..63 of the square.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// String returns algebraic notation, e.g. "e2" for (6,4).
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + BoardSize - 1 - s.Row)})
}

// ParseSquare converts algebraic notation ("e2") to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	file := text[0] | 0x20 // lower case
	rank := text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove accepts "e2e4", "e2-e4" or "e2 e4".
func ParseMove(text string) (Move, error) {
	clean := make([]byte, 0, 4)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '-', '\t':
			continue
		}
		clean = append(clean, text[i])
	}
	if len(clean) != 4 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(string(clean[:2]))
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(string(clean[2:]))
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
