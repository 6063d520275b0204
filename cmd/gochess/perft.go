package main

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

// runPerft prints the perft count of board at depth, optionally split by
// root move.
func runPerft(w io.Writer, board *chess.Board, depth int, divide bool) {
	start := time.Now()
	var total uint64
	if divide {
		counts := engine.Divide(board, depth)
		moves := maps.Keys(counts)
		slices.Sort(moves)
		for _, m := range moves {
			fmt.Fprintf(w, "%s: %d\n", m, counts[m])
			total += counts[m]
		}
	} else {
		total = engine.Perft(board, depth)
	}
	fmt.Fprintf(w, "perft(%d) = %d (%v)\n", depth, total, time.Since(start).Round(time.Millisecond))
}
