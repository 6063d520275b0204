package engine

import "github.com/lgbarn/gochess/internal/chess"

// pawnRule covers pushes, double pushes, captures and en passant.
func pawnRule(board *chess.Board, from, to chess.Square, pawn chess.Piece, m mode) bool {
	dir := chess.PawnDirection(pawn.Colour)
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	if m == attackMode {
		return rowDiff == dir && abs(colDiff) == 1
	}

	target := board.Get(to)
	switch {
	case colDiff == 0 && rowDiff == dir:
		return target.IsEmpty()

	case colDiff == 0 && rowDiff == 2*dir:
		// Double push from the home rank over an empty square
		return from.Row == chess.PawnHomeRow(pawn.Colour) &&
			board.Get(from.Offset(dir, 0)).IsEmpty() &&
			target.IsEmpty()

	case abs(colDiff) == 1 && rowDiff == dir:
		if !target.IsEmpty() {
			return target.Colour != pawn.Colour
		}
		return isEnPassant(board, from, to, pawn)
	}
	return false
}

// isEnPassant reports whether a diagonal pawn move onto the empty square
// to captures en passant: the previous move must have been an enemy pawn
// double push landing beside from, in to's column.
func isEnPassant(board *chess.Board, from, to chess.Square, pawn chess.Piece) bool {
	if !board.HasLastMove || !board.Get(to).IsEmpty() {
		return false
	}
	victimSq := enPassantVictim(from, to)
	if !board.Get(victimSq).Is(pawn.Colour.Opposite(), chess.Pawn) {
		return false
	}
	dir := chess.PawnDirection(pawn.Colour)
	last := board.LastMove
	return last.To == victimSq &&
		last.From == victimSq.Offset(2*dir, 0)
}

// enPassantVictim returns the square of the pawn taken en passant.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// isPromotion reports whether the piece moving to the square promotes.
func isPromotion(piece chess.Piece, to chess.Square) bool {
	return piece.Kind == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour)
}
