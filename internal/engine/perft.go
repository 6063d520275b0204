package engine

import "github.com/lgbarn/gochess/internal/chess"

// promotionKinds are the pieces a promoting move is expanded into when
// counting leaf nodes.
var promotionKinds = [...]chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Perft counts the leaf nodes of the legal move tree to the given depth
// for the side to move. Each promotion counts once per promotion piece so
// totals match published perft tables. Draw rules are not applied.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range LegalMoves(board, board.Turn) {
		kinds := []chess.Kind{chess.NoKind}
		if isPromotion(board.Get(m.From), m.To) {
			kinds = promotionKinds[:]
		}
		for _, kind := range kinds {
			if depth == 1 {
				nodes++
				continue
			}
			MakeMove(board, m, kind)
			nodes += Perft(board, depth-1)
			_ = UndoMove(board)
		}
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move
// in UCI form.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range LegalMoves(board, board.Turn) {
		kinds := []chess.Kind{chess.NoKind}
		if isPromotion(board.Get(m.From), m.To) {
			kinds = promotionKinds[:]
		}
		for _, kind := range kinds {
			rec := MakeMove(board, m, kind)
			out[rec.UCI()] = Perft(board, depth-1)
			_ = UndoMove(board)
		}
	}
	return out
}
