package search

import (
	"fmt"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
)

// RootScore is the searched value of one root move.
type RootScore struct {
	Move  chess.Move
	Score int
	Nodes uint64
}

// Report describes one ChooseMove call.
type Report struct {
	Colour    chess.Colour
	Depth     int
	Roots     []RootScore // In legal-move enumeration order
	Best      chess.Move
	BestScore int
	Nodes     uint64
	Fallback  bool // Best was picked at random
	Parallel  bool
}

// FormatScore renders a score as centipawns or as a mate distance in
// moves, e.g. "+0.35" or "#2" / "#-1".
func FormatScore(score int) string {
	switch {
	case score >= Infinity:
		return "+inf"
	case score <= -Infinity:
		return "-inf"
	}
	if abs(score) > MateScore-1000 {
		plies := MateScore - abs(score)
		moves := (plies + 1) / 2
		if score < 0 {
			return fmt.Sprintf("#-%d", moves)
		}
		return fmt.Sprintf("#%d", moves)
	}
	sign := "+"
	if score < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d", sign, abs(score)/100, abs(score)%100)
}

// String summarises the report on one line per root move.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v depth %d: best %v (%s), %d nodes", r.Colour, r.Depth, r.Best, FormatScore(r.BestScore), r.Nodes)
	if r.Fallback {
		sb.WriteString(", random fallback")
	}
	for _, root := range r.Roots {
		fmt.Fprintf(&sb, "\n  %v %s %d", root.Move, FormatScore(root.Score), root.Nodes)
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
