package chess

// Offset is a (row, column) displacement.
type Offset struct {
	DRow int
	DCol int
}

// Geometry describes how a piece kind moves on an empty board.
type Geometry struct {
	// Offsets are single steps for leapers or ray directions for sliders.
	Offsets []Offset
	// Sliding kinds repeat each offset until blocked.
	Sliding bool
}

var (
	straightDirections = []Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirections = []Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirections    = append(append([]Offset{}, straightDirections...), diagonalDirections...)
	knightOffsets      = []Offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets        = []Offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Geometry returns the movement geometry of the kind. Pawn geometry
// depends on colour, see PawnOffsets.
func (k Kind) Geometry() Geometry {
	switch k {
	case Knight:
		return Geometry{Offsets: knightOffsets}
	case Bishop:
		return Geometry{Offsets: diagonalDirections, Sliding: true}
	case Rook:
		return Geometry{Offsets: straightDirections, Sliding: true}
	case Queen:
		return Geometry{Offsets: queenDirections, Sliding: true}
	case King:
		return Geometry{Offsets: kingOffsets}
	}
	return Geometry{}
}

// PawnOffsets returns the forward steps (single, double) and the two
// diagonal capture offsets for a pawn of the given colour.
func PawnOffsets(colour Colour) (forward []Offset, captures []Offset) {
	dir := PawnDirection(colour)
	return []Offset{{dir, 0}, {2 * dir, 0}}, []Offset{{dir, -1}, {dir, 1}}
}

// PawnDirection returns the row delta of a pawn step: -1 for White
// (towards row 0), +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnHomeRow returns the row pawns of the colour start on.
func PawnHomeRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// BackRow returns the row the colour's pieces start on.
func BackRow(colour Colour) int {
	if colour == White {
		return 7
	}
	return 0
}

// PromotionRow returns the far rank for pawns of the colour.
func PromotionRow(colour Colour) int {
	return BackRow(colour.Opposite())
}

// Reaches reports whether the kind can move by (dRow, dCol) on an empty
// board. Pawns are not covered; their shape depends on occupancy.
func (k Kind) Reaches(dRow, dCol int) bool {
	if dRow == 0 && dCol == 0 {
		return false
	}
	aRow, aCol := absInt(dRow), absInt(dCol)
	switch k {
	case Knight:
		return aRow*aCol == 2
	case Bishop:
		return aRow == aCol
	case Rook:
		return dRow == 0 || dCol == 0
	case Queen:
		return aRow == aCol || dRow == 0 || dCol == 0
	case King:
		return aRow <= 1 && aCol <= 1
	}
	return false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
