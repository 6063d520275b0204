package engine

import "github.com/lgbarn/gochess/internal/chess"

const (
	kingHomeCol      = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
)

// castlingRook returns the rook's start and end squares for a king move
// of two columns from from to to.
func castlingRook(from, to chess.Square) (rookFrom, rookTo chess.Square) {
	if to.Col > from.Col {
		return chess.Sq(from.Row, kingsideRookCol), chess.Sq(from.Row, to.Col-1)
	}
	return chess.Sq(from.Row, queensideRookCol), chess.Sq(from.Row, to.Col+1)
}

// canCastle checks a two-column king move: king and rook unmoved and in
// place, nothing between them, and no square the king stands on, crosses
// or lands on attacked.
func canCastle(board *chess.Board, from, to chess.Square, king chess.Piece) bool {
	if king.HasMoved || from.Row != to.Row || abs(to.Col-from.Col) != 2 {
		return false
	}
	if from != chess.Sq(chess.BackRow(king.Colour), kingHomeCol) {
		return false
	}

	rookFrom, _ := castlingRook(from, to)
	rook := board.Get(rookFrom)
	if !rook.Is(king.Colour, chess.Rook) || rook.HasMoved {
		return false
	}
	if !isPathClear(board, from, rookFrom) {
		return false
	}

	enemy := king.Colour.Opposite()
	step := sign(to.Col - from.Col)
	for col := from.Col; ; col += step {
		if IsSquareAttacked(board, chess.Sq(from.Row, col), enemy) {
			return false
		}
		if col == to.Col {
			break
		}
	}
	return true
}

// CastlingRights reports which castling moves remain possible in
// principle for the colour (king and rook unmoved and in place), ignoring
// blockers and attacks.
func CastlingRights(board *chess.Board, colour chess.Colour) (kingside, queenside bool) {
	row := chess.BackRow(colour)
	king := board.Get(chess.Sq(row, kingHomeCol))
	if !king.Is(colour, chess.King) || king.HasMoved {
		return false, false
	}
	unmovedRook := func(col int) bool {
		rook := board.Get(chess.Sq(row, col))
		return rook.Is(colour, chess.Rook) && !rook.HasMoved
	}
	return unmovedRook(kingsideRookCol), unmovedRook(queensideRookCol)
}
