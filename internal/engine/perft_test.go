package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/gochess/internal/testutil"
)

func TestPerft_KnownCounts(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"kiwipete depth 1", oracleFENs["Kiwipete"], 1, 48},
		{"kiwipete depth 2", oracleFENs["Kiwipete"], 2, 2039},
		{"endgame depth 3", oracleFENs["Endgame"], 3, 2812},
		{"promotions depth 1", oracleFENs["Promotions"], 1, 6},
		{"promotions depth 2", oracleFENs["Promotions"], 2, 264},
		{"checks depth 1", oracleFENs["Checks"], 1, 44},
		{"checks depth 2", oracleFENs["Checks"], 2, 1486},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			before := board.Clone()
			if got := Perft(board, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}
			testutil.AssertEqual(t, board, before)
		})
	}
}

// dragonPerft counts leaf nodes with an independent bitboard generator.
func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerft_MatchesBitboardGenerator(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft comparison in short mode")
	}
	for name, fen := range oracleFENs {
		t.Run(name, func(t *testing.T) {
			board := mustFEN(t, fen)
			ref := dragontoothmg.ParseFen(fen)
			want := dragonPerft(&ref, 3)
			if got := Perft(board, 3); got != want {
				t.Errorf("Perft(3) = %d, bitboard generator says %d", got, want)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	board := NewInitialBoard()
	div := Divide(board, 2)

	testutil.AssertEqual(t, len(div), 20)
	testutil.AssertEqual(t, div["e2e4"], uint64(20))
	testutil.AssertEqual(t, div["g1f3"], uint64(20))

	var total uint64
	for _, n := range div {
		total += n
	}
	testutil.AssertEqual(t, total, Perft(board, 2))
}

func TestDivide_PromotionsExpand(t *testing.T) {
	board := mustFEN(t, "8/P6k/8/8/8/8/8/4K3 w - - 0 1")
	div := Divide(board, 1)
	for _, uci := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"} {
		testutil.AssertEqual(t, div[uci], uint64(1), uci)
	}
}
