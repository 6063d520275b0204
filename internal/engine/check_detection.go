package engine

import "github.com/lgbarn/gochess/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board with no king or several kings for the colour is malformed:
// the problem is logged and the colour is reported as not in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, err := board.KingSquare(colour)
	if err != nil {
		logger.Printf("check detection: %v", err)
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of the given colour could
// move to the square, judged by the same per-kind rules as ordinary moves
// but without check-safety filtering.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Grid[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if canMove(board, chess.Sq(row, col), sq, attackMode) {
				return true
			}
		}
	}
	return false
}

// Attackers returns the squares of the given colour's pieces attacking sq.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	var squares []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Grid[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			from := chess.Sq(row, col)
			if canMove(board, from, sq, attackMode) {
				squares = append(squares, from)
			}
		}
	}
	return squares
}
