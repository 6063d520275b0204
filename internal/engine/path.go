package engine

import "github.com/lgbarn/gochess/internal/chess"

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a row, a column or a diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if !board.Get(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}
	return true
}
