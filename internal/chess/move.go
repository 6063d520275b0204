package chess

// SpecialMove tags moves whose undo needs more than a from/to swap.
type SpecialMove int

const (
	NoSpecial SpecialMove = iota
	EnPassant
	Castling
	Promotion
)

// String returns the string representation of a special-move tag.
func (s SpecialMove) String() string {
	switch s {
	case EnPassant:
		return "en_passant"
	case Castling:
		return "castling"
	case Promotion:
		return "promotion"
	}
	return "none"
}

// MoveRecord holds everything needed to reverse an applied move exactly.
type MoveRecord struct {
	From Square
	To   Square

	// Moved is the piece as it stood on From before the move.
	Moved Piece

	// Captured is Empty when nothing was taken. For en passant the captured
	// pawn stood on CapturedAt, not on To.
	Captured   Piece
	CapturedAt Square

	Special SpecialMove

	// Promoted is the piece placed on To by a promotion.
	Promoted Piece

	// Castling rook relocation and the rook before it moved.
	RookFrom Square
	RookTo   Square
	Rook     Piece

	// State replaced by the move.
	PrevLastMove    Move
	PrevHasLastMove bool
	PrevHalfmove    int

	// Key of the position the move produced.
	Key PositionKey
}

// Move returns the from/to pair of the record.
func (r *MoveRecord) Move() Move {
	return Move{From: r.From, To: r.To}
}

// IsCapture returns true if the move took a piece.
func (r *MoveRecord) IsCapture() bool {
	return !r.Captured.IsEmpty()
}

// UCI returns the move in UCI long algebraic form including the
// promotion letter, e.g. "e7e8q".
func (r *MoveRecord) UCI() string {
	s := r.From.String() + r.To.String()
	if r.Special == Promotion {
		s += string(r.Promoted.Kind.Letter() + ('a' - 'A'))
	}
	return s
}
