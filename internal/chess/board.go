package chess

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/errors"
)

// Board represents a chess board with all state needed for the game.
// A Board is not safe for concurrent use; searches that fan out work on
// clones.
type Board struct {
	// Grid[row][col]; row 0 is rank 8.
	Grid [BoardSize][BoardSize]Piece

	// Who has the next move.
	Turn Colour

	// Set once checkmate, stalemate or a draw is reached.
	GameOver bool

	// The last move played; used for en passant eligibility.
	LastMove    Move
	HasLastMove bool

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// Occurrences of each (layout, side to move) pair.
	PositionHistory map[PositionKey]int

	// Applied moves, oldest first.
	History []MoveRecord

	// FEN of the position History starts from.
	StartFEN string
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		Turn:            White,
		PositionHistory: make(map[PositionKey]int),
	}
}

// SetupInitialPosition sets up the standard chess starting position and
// clears all game state.
func (b *Board) SetupInitialPosition() {
	b.Grid = [BoardSize][BoardSize]Piece{}
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		b.Grid[BackRow(Black)][col] = B(kind)
		b.Grid[PawnHomeRow(Black)][col] = B(Pawn)
		b.Grid[PawnHomeRow(White)][col] = W(Pawn)
		b.Grid[BackRow(White)][col] = W(kind)
	}
	b.Turn = White
	b.GameOver = false
	b.LastMove = Move{}
	b.HasLastMove = false
	b.HalfmoveClock = 0
	b.History = nil
	b.PositionHistory = map[PositionKey]int{b.PositionKey(): 1}
}

// Get returns the piece at the square, or an empty piece off the board.
func (b *Board) Get(s Square) Piece {
	if !s.Valid() {
		return Piece{}
	}
	return b.Grid[s.Row][s.Col]
}

// Set places a piece at the square. Off-board squares are ignored.
func (b *Board) Set(s Square, p Piece) {
	if s.Valid() {
		b.Grid[s.Row][s.Col] = p
	}
}

// Clear empties the square.
func (b *Board) Clear(s Square) {
	b.Set(s, Piece{})
}

// Clone creates a deep copy of the board, history included.
func (b *Board) Clone() *Board {
	nb := &Board{}
	*nb = *b
	nb.PositionHistory = make(map[PositionKey]int, len(b.PositionHistory))
	for k, v := range b.PositionHistory {
		nb.PositionHistory[k] = v
	}
	if b.History != nil {
		nb.History = make([]MoveRecord, len(b.History))
		copy(nb.History, b.History)
	}
	return nb
}

// FindKings returns every square holding a king of the colour.
func (b *Board) FindKings(colour Colour) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Grid[row][col].Is(colour, King) {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// KingSquare returns the square of the colour's king. It fails with
// ErrMissingKing or ErrAmbiguousKing on malformed boards; in the latter
// case the first king in row-major order is still returned.
func (b *Board) KingSquare(colour Colour) (Square, error) {
	kings := b.FindKings(colour)
	switch len(kings) {
	case 0:
		return Square{}, fmt.Errorf("%v king: %w", colour, errors.ErrMissingKing)
	case 1:
		return kings[0], nil
	}
	return kings[0], fmt.Errorf("%v has %d kings: %w", colour, len(kings), errors.ErrAmbiguousKing)
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.Grid[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Ply returns the number of moves applied since StartFEN.
func (b *Board) Ply() int {
	return len(b.History)
}

// PositionKey identifies a (layout, side to move) pair exactly.
type PositionKey struct {
	Cells  [BoardSize * BoardSize]byte
	ToMove Colour
}

// PositionKey returns the key of the current position.
func (b *Board) PositionKey() PositionKey {
	var k PositionKey
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			k.Cells[row*BoardSize+col] = b.Grid[row][col].Letter()
		}
	}
	k.ToMove = b.Turn
	return k
}

// String serialises the key as 64 cell letters, a space and w or b.
func (k PositionKey) String() string {
	side := byte('b')
	if k.ToMove == White {
		side = 'w'
	}
	buf := make([]byte, 0, len(k.Cells)+2)
	buf = append(buf, k.Cells[:]...)
	return string(append(buf, ' ', side))
}

// ParsePositionKey is the inverse of PositionKey.String.
func ParsePositionKey(s string) (PositionKey, error) {
	var k PositionKey
	if len(s) != len(k.Cells)+2 || s[len(k.Cells)] != ' ' {
		return k, fmt.Errorf("position key %q: %w", s, errors.ErrInvalidSnapshot)
	}
	for i := 0; i < len(k.Cells); i++ {
		if s[i] != '.' && KindFromLetter(s[i]) == NoKind {
			return k, fmt.Errorf("position key cell %q: %w", s[i], errors.ErrInvalidSnapshot)
		}
		k.Cells[i] = s[i]
	}
	switch s[len(s)-1] {
	case 'w':
		k.ToMove = White
	case 'b':
		k.ToMove = Black
	default:
		return k, fmt.Errorf("position key side %q: %w", s[len(s)-1], errors.ErrInvalidSnapshot)
	}
	return k, nil
}
