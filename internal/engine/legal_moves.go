package engine

import "github.com/lgbarn/gochess/internal/chess"

// LegalMoves returns every legal move for the colour, ordered row-major by
// source square and then row-major by destination square. Promotions
// appear once per from/to pair.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	forEachLegalMove(board, colour, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	forEachLegalMove(board, colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMovesFrom returns the legal destinations of the piece on from.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	var moves []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if canMove(board, from, to, legalMode) && !leavesKingInCheck(board, from, to) {
				moves = append(moves, chess.Move{From: from, To: to})
			}
		}
	}
	return moves
}

// IsLegal reports whether the colour on from may play from-to now,
// turn order aside.
func IsLegal(board *chess.Board, from, to chess.Square) bool {
	return canMove(board, from, to, legalMode) && !leavesKingInCheck(board, from, to)
}

// forEachLegalMove calls fn for each legal move in enumeration order
// until fn returns false.
func forEachLegalMove(board *chess.Board, colour chess.Colour, fn func(chess.Move) bool) {
	for fromRow := 0; fromRow < chess.BoardSize; fromRow++ {
		for fromCol := 0; fromCol < chess.BoardSize; fromCol++ {
			piece := board.Grid[fromRow][fromCol]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			from := chess.Sq(fromRow, fromCol)
			for toRow := 0; toRow < chess.BoardSize; toRow++ {
				for toCol := 0; toCol < chess.BoardSize; toCol++ {
					to := chess.Sq(toRow, toCol)
					if !canMove(board, from, to, legalMode) || leavesKingInCheck(board, from, to) {
						continue
					}
					if !fn(chess.Move{From: from, To: to}) {
						return
					}
				}
			}
		}
	}
}

// leavesKingInCheck plays from-to on the grid alone, tests the mover's
// king and puts every touched cell back.
func leavesKingInCheck(board *chess.Board, from, to chess.Square) bool {
	mover := board.Get(from)
	s := simulate(board, from, to)
	inCheck := IsInCheck(board, mover.Colour)
	s.restore(board)
	return inCheck
}

type savedCell struct {
	sq    chess.Square
	piece chess.Piece
}

// scratch remembers the cells a simulated move overwrote.
type scratch struct {
	cells [4]savedCell
	n     int
}

func (s *scratch) save(board *chess.Board, sq chess.Square) {
	s.cells[s.n] = savedCell{sq: sq, piece: board.Get(sq)}
	s.n++
}

// restore writes the saved cells back, last saved first.
func (s *scratch) restore(board *chess.Board) {
	for i := s.n - 1; i >= 0; i-- {
		board.Set(s.cells[i].sq, s.cells[i].piece)
	}
}

// simulate moves pieces on the grid without touching turn, clocks or
// history. Castling also moves the rook and en passant removes the
// captured pawn.
func simulate(board *chess.Board, from, to chess.Square) scratch {
	var s scratch
	mover := board.Get(from)
	s.save(board, from)
	s.save(board, to)

	switch {
	case mover.Kind == chess.Pawn && from.Col != to.Col && board.Get(to).IsEmpty():
		victim := enPassantVictim(from, to)
		s.save(board, victim)
		board.Clear(victim)
	case mover.Kind == chess.King && abs(to.Col-from.Col) == 2:
		rookFrom, rookTo := castlingRook(from, to)
		s.save(board, rookFrom)
		s.save(board, rookTo)
		board.Set(rookTo, board.Get(rookFrom))
		board.Clear(rookFrom)
	}

	board.Set(to, mover)
	board.Clear(from)
	return s
}
