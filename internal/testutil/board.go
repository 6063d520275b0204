package testutil

import (
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
)

// MustSquare parses algebraic notation and fails the test on error.
func MustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("MustSquare(%q): %v", text, err)
	}
	return sq
}

// MustMove parses a move such as "e2e4" and fails the test on error.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("MustMove(%q): %v", text, err)
	}
	return m
}

// MustMoves parses a list of moves.
func MustMoves(t testing.TB, texts ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, 0, len(texts))
	for _, text := range texts {
		moves = append(moves, MustMove(t, text))
	}
	return moves
}

// BoardFromDiagram builds a board from eight rows of eight cells, rank 8
// first, using FEN letters and '.' for empty cells. Every piece is marked
// unmoved and the position is recorded once in the history.
func BoardFromDiagram(t testing.TB, turn chess.Colour, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("BoardFromDiagram: %d rows, want %d", len(rows), chess.BoardSize)
	}
	b := chess.NewBoard()
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("BoardFromDiagram: row %d is %q", row, line)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				t.Fatalf("BoardFromDiagram: bad cell %q at row %d", c, row)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			b.Grid[row][col] = chess.NewPiece(colour, kind)
		}
	}
	b.Turn = turn
	b.PositionHistory[b.PositionKey()] = 1
	return b
}

// Diagram renders the grid in the BoardFromDiagram format.
func Diagram(b *chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		line := make([]byte, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			line[col] = b.Grid[row][col].Letter()
		}
		rows[row] = string(line)
	}
	return rows
}
