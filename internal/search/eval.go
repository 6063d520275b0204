package search

import "github.com/lgbarn/gochess/internal/chess"

// Evaluation constants
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
)

// pieceValues is indexed by chess.Kind. Kings carry no material value.
var pieceValues = [chess.NumKinds]int{0, PawnValue, KnightValue, BishopValue, RookValue, QueenValue, 0}

// Evaluator scores a position from White's point of view: positive
// favours White.
type Evaluator interface {
	Evaluate(b *chess.Board) int
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(b *chess.Board) int

// Evaluate calls f.
func (f EvaluatorFunc) Evaluate(b *chess.Board) int {
	return f(b)
}

// MaterialEvaluator counts material only.
type MaterialEvaluator struct{}

// Evaluate returns White's material minus Black's.
func (MaterialEvaluator) Evaluate(b *chess.Board) int {
	score := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Grid[row][col]
			if p.IsEmpty() {
				continue
			}
			if p.Colour == chess.White {
				score += pieceValues[p.Kind]
			} else {
				score -= pieceValues[p.Kind]
			}
		}
	}
	return score
}

// PositionalEvaluator adds piece-square bonuses to material.
type PositionalEvaluator struct{}

// Piece-square tables from White's side, row 0 = rank 8. Black reads them
// mirrored vertically.
var pieceSquare = [chess.NumKinds][chess.BoardSize * chess.BoardSize]int{
	chess.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	chess.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	chess.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	chess.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	chess.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	chess.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// Evaluate returns material plus piece-square bonuses, White minus Black.
func (PositionalEvaluator) Evaluate(b *chess.Board) int {
	score := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Grid[row][col]
			if p.IsEmpty() {
				continue
			}
			if p.Colour == chess.White {
				score += pieceValues[p.Kind] + pieceSquare[p.Kind][row*chess.BoardSize+col]
			} else {
				mirrored := (chess.BoardSize-1-row)*chess.BoardSize + col
				score -= pieceValues[p.Kind] + pieceSquare[p.Kind][mirrored]
			}
		}
	}
	return score
}
