// Package output renders boards, move lists and search reports, and
// exports finished games as PGN.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Finish ends the current line if anything was written to it.
func (o *OutputWriter) Finish() {
	if o.lineLength > 0 {
		o.NewLine()
	}
}

const files = "  a b c d e f g h"

// RenderBoard writes a text diagram of the board, rank 8 at the top,
// followed by the side to move.
func RenderBoard(w io.Writer, board *chess.Board) {
	fmt.Fprintln(w, files)
	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - row
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d", rank)
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(board.Grid[row][col].Letter())
		}
		fmt.Fprintf(&sb, " %d", rank)
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, files)
	if board.GameOver {
		fmt.Fprintln(w, "Game over")
		return
	}
	fmt.Fprintf(w, "%v to move\n", board.Turn)
}

// BoardString returns the RenderBoard diagram as a string.
func BoardString(board *chess.Board) string {
	var sb strings.Builder
	RenderBoard(&sb, board)
	return sb.String()
}

// WriteMoves writes moves separated by spaces, wrapping long lines.
func WriteMoves(w io.Writer, moves []chess.Move, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.Finish()
}

// WriteHistory writes the board's played moves in UCI form with move
// numbers, e.g. "1. e2e4 e7e5 2. g1f3".
func WriteHistory(w io.Writer, board *chess.Board, maxLineLength int) {
	moves := make([]string, len(board.History))
	for i := range board.History {
		moves[i] = board.History[i].UCI()
	}
	writeNumbered(w, board, moves, maxLineLength)
}

// WriteSANHistory is WriteHistory in standard algebraic notation,
// e.g. "1. e4 e5 2. Nf3".
func WriteSANHistory(w io.Writer, board *chess.Board, maxLineLength int) error {
	moves, err := SANMoves(board)
	if err != nil {
		return err
	}
	writeNumbered(w, board, moves, maxLineLength)
	return nil
}

func writeNumbered(w io.Writer, board *chess.Board, moves []string, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	number, first := engine.StartMove(board)
	white := first == chess.White
	for i, m := range moves {
		switch {
		case white:
			ow.Write(fmt.Sprintf("%d.", number))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", number))
		}
		ow.Write(m)
		if !white {
			number++
		}
		white = !white
	}
	ow.Finish()
}

// quote returns s as a double-quoted DOT string.
func quote(s string) string {
	if strings.ContainsAny(s, "\\\"") {
		s = strings.ReplaceAll(s, "\\", "\\\\")
		s = strings.ReplaceAll(s, "\"", "\\\"")
	}
	return "\"" + s + "\""
}
