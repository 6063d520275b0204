// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/gochess/internal/chess"
)

// mode selects how strictly a rule judges a candidate move.
type mode int

const (
	// legalMode answers "may this piece move there now", short of the
	// check-safety filter applied by the board layer.
	legalMode mode = iota

	// attackMode answers "does this piece hit that square". Pawns attack
	// diagonally whatever the occupancy, kings never castle and the
	// destination's occupant is ignored. It never consults check
	// detection, so attack queries cannot recurse.
	attackMode
)

// rule validates the shape and occupancy of a move for one piece kind.
type rule func(board *chess.Board, from, to chess.Square, piece chess.Piece, m mode) bool

// rules holds one rule per kind. Filled in init because kingRule reaches
// back into rules through the attack test.
var rules [chess.NumKinds]rule

func init() {
	rules = [chess.NumKinds]rule{
		chess.Pawn:   pawnRule,
		chess.Knight: leaperRule,
		chess.Bishop: sliderRule,
		chess.Rook:   sliderRule,
		chess.Queen:  sliderRule,
		chess.King:   kingRule,
	}
}

// canMove is the single dispatch point from a piece to its movement rule.
func canMove(board *chess.Board, from, to chess.Square, m mode) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	if m == legalMode {
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour == piece.Colour {
			return false
		}
	}
	return rules[piece.Kind](board, from, to, piece, m)
}

// leaperRule covers knights: the shape is all that matters.
func leaperRule(_ *chess.Board, from, to chess.Square, piece chess.Piece, _ mode) bool {
	return piece.Kind.Reaches(to.Row-from.Row, to.Col-from.Col)
}

// sliderRule covers bishops, rooks and queens.
func sliderRule(board *chess.Board, from, to chess.Square, piece chess.Piece, _ mode) bool {
	if !piece.Kind.Reaches(to.Row-from.Row, to.Col-from.Col) {
		return false
	}
	return isPathClear(board, from, to)
}

// kingRule covers single steps and castling.
func kingRule(board *chess.Board, from, to chess.Square, piece chess.Piece, m mode) bool {
	if piece.Kind.Reaches(to.Row-from.Row, to.Col-from.Col) {
		return true
	}
	if m == attackMode {
		return false
	}
	return canCastle(board, from, to, piece)
}

// describeRejection explains why canMove refused a move.
func describeRejection(board *chess.Board, from, to chess.Square) string {
	piece := board.Get(from)
	target := board.Get(to)
	switch {
	case !target.IsEmpty() && target.Colour == piece.Colour:
		return "destination holds own " + target.Kind.String()
	case piece.Kind == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2:
		return "castling not allowed"
	case piece.Kind == chess.Pawn && from.Col != to.Col && target.IsEmpty():
		return "pawn can only move diagonally to capture"
	case piece.Kind != chess.Pawn && piece.Kind.Reaches(to.Row-from.Row, to.Col-from.Col):
		return "path is blocked"
	}
	return piece.Kind.String() + " cannot move that way"
}
