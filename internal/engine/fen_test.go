package engine

import (
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(7, 4)) == chess.W(chess.King) &&
					b.Get(chess.Sq(0, 4)) == chess.B(chess.King) &&
					b.Get(chess.Sq(6, 4)) == chess.W(chess.Pawn) &&
					b.Get(chess.Sq(1, 4)) == chess.B(chess.Pawn) &&
					b.Turn == chess.White &&
					!b.HasLastMove
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(4, 4)).Is(chess.White, chess.Pawn) &&
					b.Get(chess.Sq(4, 4)).HasMoved &&
					b.Get(chess.Sq(6, 4)).IsEmpty() &&
					b.Turn == chess.Black &&
					b.HasLastMove &&
					b.LastMove == chess.Move{From: chess.Sq(6, 4), To: chess.Sq(4, 4)}
			},
		},
		{
			name: "black double push sets last move",
			fen:  "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			checkFn: func(b *chess.Board) bool {
				return b.LastMove == chess.Move{From: chess.Sq(1, 4), To: chess.Sq(3, 4)}
			},
		},
		{
			name: "no castling rights marks kings and rooks moved",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w - - 12 40",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(7, 4)).HasMoved &&
					b.Get(chess.Sq(7, 7)).HasMoved &&
					b.Get(chess.Sq(0, 0)).HasMoved &&
					b.HalfmoveClock == 12
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
			checkFn: func(b *chess.Board) bool {
				return !b.Get(chess.Sq(7, 4)).HasMoved &&
					!b.Get(chess.Sq(7, 7)).HasMoved &&
					b.Get(chess.Sq(7, 0)).HasMoved &&
					!b.Get(chess.Sq(0, 0)).HasMoved &&
					b.Get(chess.Sq(0, 7)).HasMoved
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.Turn == chess.White && b.HalfmoveClock == 0 && b.PieceCount() == 2
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) produced unexpected board", tt.fen)
			}
			if got := board.PositionHistory[board.PositionKey()]; got != 1 {
				t.Errorf("position count = %d, want 1", got)
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"long rank", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "8/8/8/8/8/8/8/7X w - - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/8 w Z - 0 1"},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - e4 0 1"},
		{"bad clock", "8/8/8/8/8/8/8/8 w - - x 1"},
		{"bad fullmove", "8/8/8/8/8/8/8/8 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, "NewBoardFromFEN(%q)", tt.fen)
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 3 17",
		"8/5k2/8/8/8/8/5K2/4R3 b - - 7 60",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
			}
			if got := BoardToFEN(board); got != fen {
				t.Errorf("BoardToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestBoardToFEN_AfterMoves(t *testing.T) {
	board := NewInitialBoard()
	for _, text := range []string{"e2e4", "c7c5", "g1f3"} {
		m := testutil.MustMove(t, text)
		if _, err := ApplyMove(board, m.From, m.To, nil); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", text, err)
		}
	}
	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	testutil.AssertEqual(t, BoardToFEN(board), want)
}

func TestFullmoveNumber_BlackStart(t *testing.T) {
	board, err := NewBoardFromFEN("4k3/8/8/8/8/8/4P3/4K3 b - - 0 10")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, FullmoveNumber(board), 10)

	MakeMove(board, testutil.MustMove(t, "e8d8"), chess.NoKind)
	testutil.AssertEqual(t, FullmoveNumber(board), 11)
	MakeMove(board, testutil.MustMove(t, "e2e4"), chess.NoKind)
	testutil.AssertEqual(t, FullmoveNumber(board), 11)
}

func TestStartMove(t *testing.T) {
	tests := []struct {
		fen    string
		number int
		colour chess.Colour
	}{
		{InitialFEN, 1, chess.White},
		{"4k3/8/8/8/8/8/4P3/4K3 b - - 0 10", 10, chess.Black},
		{"4k3/8/8/8/8/8/4P3/4K3 b", 1, chess.Black},
		{"4k3/8/8/8/8/8/4P3/4K3", 1, chess.White},
	}
	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			number, colour := StartMove(board)
			testutil.AssertEqual(t, number, tt.number)
			testutil.AssertEqual(t, colour, tt.colour)
		})
	}
}
