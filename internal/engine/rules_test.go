package engine

import (
	"bytes"
	"log"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/testutil"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "5b2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "5b2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustFEN(t, tt.fen)
			if got := HasInsufficientMaterial(board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestIsLightSquare checks square colours; a1 is dark.
func TestIsLightSquare(t *testing.T) {
	tests := []struct {
		sq   string
		want bool
	}{
		{"a1", false},
		{"a2", true},
		{"h8", false},
		{"h1", true},
		{"e4", true},
		{"d4", false},
	}

	for _, tt := range tests {
		t.Run(tt.sq, func(t *testing.T) {
			if got := isLightSquare(testutil.MustSquare(t, tt.sq)); got != tt.want {
				t.Errorf("isLightSquare(%s) = %v, want %v", tt.sq, got, tt.want)
			}
		})
	}
}

// TestCanMove exercises each kind's rule on a near-empty board.
func TestCanMove(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	tests := []struct {
		name string
		put  chess.Piece
		from string
		to   string
		want bool
	}{
		{"knight L", chess.W(chess.Knight), "d4", "e6", true},
		{"knight straight", chess.W(chess.Knight), "d4", "d6", false},
		{"bishop diagonal", chess.W(chess.Bishop), "d4", "h8", true},
		{"bishop straight", chess.W(chess.Bishop), "d4", "d8", false},
		{"rook file", chess.W(chess.Rook), "d4", "d8", true},
		{"rook diagonal", chess.W(chess.Rook), "d4", "e5", false},
		{"queen diagonal", chess.W(chess.Queen), "d4", "a7", true},
		{"queen knight jump", chess.W(chess.Queen), "d4", "e6", false},
		{"king step", chess.W(chess.King), "d4", "e5", true},
		{"king two steps", chess.W(chess.King), "d4", "f4", false},
		{"same square", chess.W(chess.Queen), "d4", "d4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.Clone()
			b.Set(testutil.MustSquare(t, tt.from), tt.put)
			from, to := testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to)
			if got := canMove(b, from, to, legalMode); got != tt.want {
				t.Errorf("canMove(%v %s-%s) = %v, want %v", tt.put.Kind, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanMove_BlockedPath(t *testing.T) {
	board := NewInitialBoard()
	tests := []struct {
		move string
		want bool
	}{
		{"c1h6", false},
		{"a1a3", false},
		{"d1d3", false},
		{"b1c3", true},
		{"e2e4", true},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			m := testutil.MustMove(t, tt.move)
			if got := canMove(board, m.From, m.To, legalMode); got != tt.want {
				t.Errorf("canMove(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestPawnRule_AttackMode(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	e2 := testutil.MustSquare(t, "e2")

	// Diagonals count as attacks on empty squares; pushes never do
	testutil.AssertTrue(t, canMove(board, e2, testutil.MustSquare(t, "d3"), attackMode))
	testutil.AssertTrue(t, canMove(board, e2, testutil.MustSquare(t, "f3"), attackMode))
	testutil.AssertFalse(t, canMove(board, e2, testutil.MustSquare(t, "e3"), attackMode))
	testutil.AssertFalse(t, canMove(board, e2, testutil.MustSquare(t, "d3"), legalMode))
}

func TestIsPathClear(t *testing.T) {
	empty := chess.NewBoard()
	testutil.AssertTrue(t, isPathClear(empty, chess.Sq(7, 0), chess.Sq(0, 0)))
	testutil.AssertTrue(t, isPathClear(empty, chess.Sq(7, 0), chess.Sq(0, 7)))

	board := NewInitialBoard()
	testutil.AssertFalse(t, isPathClear(board, chess.Sq(7, 0), chess.Sq(0, 0)))
	// Endpoints are not part of the path
	testutil.AssertTrue(t, isPathClear(board, chess.Sq(7, 0), chess.Sq(6, 0)))
}

func TestIsSquareAttacked(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/8/8/2n5/8/R3K3 w - - 0 1")
	tests := []struct {
		sq   string
		by   chess.Colour
		want bool
	}{
		{"a8", chess.White, true},
		{"e1", chess.Black, false},
		{"b1", chess.Black, true},
		{"d1", chess.Black, true},
		{"e2", chess.Black, true},
		{"d7", chess.Black, true},
		{"h1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.sq, func(t *testing.T) {
			got := IsSquareAttacked(board, testutil.MustSquare(t, tt.sq), tt.by)
			if got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.sq, tt.by, got, tt.want)
			}
		})
	}
}

func TestAttackers(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/8/8/3n4/8/R3K2r w - - 0 1")
	got := Attackers(board, testutil.MustSquare(t, "e1"), chess.Black)
	want := []chess.Square{testutil.MustSquare(t, "d3"), testutil.MustSquare(t, "h1")}
	testutil.AssertEqual(t, got, want)
}

func TestIsInCheck_MalformedBoards(t *testing.T) {
	noKing := mustFEN(t, "4k3/8/8/8/8/8/8/r7 w - - 0 1")
	testutil.AssertFalse(t, IsInCheck(noKing, chess.White))

	var logged bytes.Buffer
	SetLogger(log.New(&logged, "", 0))
	defer SetLogger(nil)

	twoKings := mustFEN(t, "4k3/8/8/8/8/8/8/r3K2K w - - 0 1")
	testutil.AssertFalse(t, IsInCheck(twoKings, chess.White), "ambiguous king is not in check")
	testutil.AssertEqual(t, GameStatus(twoKings), Normal)
	testutil.AssertContains(t, logged.String(), "2 kings")
}

func TestKingSquare(t *testing.T) {
	board := mustFEN(t, "8/8/8/3K4/8/8/8/4k3 w - - 0 1")
	sq, err := board.KingSquare(chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq.String(), "d5")

	sq, err = board.KingSquare(chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq.String(), "e1")
}
