package persist

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/testutil"
)

// specialFEN allows en passant, castling on both sides and a promotion.
const specialFEN = "r3k2r/1P4pp/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1"

func play(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m := testutil.MustMove(t, text)
		_, err := engine.ApplyMove(board, m.From, m.To, engine.FixedPromotion(chess.Queen))
		require.NoError(t, err, "move %s", text)
	}
}

func roundTrip(t *testing.T, board *chess.Board) *chess.Board {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, board))
	restored, err := Load(&buf)
	require.NoError(t, err)
	return restored
}

func TestRoundTrip_Initial(t *testing.T) {
	board := engine.NewInitialBoard()
	restored := roundTrip(t, board)
	testutil.AssertEqual(t, restored, board, cmpopts.EquateEmpty())
}

func TestRoundTrip_SpecialMoves(t *testing.T) {
	board, err := engine.NewBoardFromFEN(specialFEN)
	require.NoError(t, err)
	play(t, board, "e5d6", "e8g8", "b7a8", "h7h6", "e1c1")

	restored := roundTrip(t, board)
	testutil.AssertEqual(t, restored, board, cmpopts.EquateEmpty())
	assert.Equal(t, engine.BoardToFEN(board), engine.BoardToFEN(restored))

	// Undoing on the restored board retraces the original game.
	for board.Ply() > 0 {
		require.NoError(t, engine.UndoMove(board))
		require.NoError(t, engine.UndoMove(restored))
		testutil.AssertEqual(t, restored, board, cmpopts.EquateEmpty(), "after undo to ply %d", board.Ply())
	}
	assert.Equal(t, specialFEN, engine.BoardToFEN(restored))
}

func TestRoundTrip_KeepsGameOver(t *testing.T) {
	board := engine.NewInitialBoard()
	play(t, board, "f2f3", "e7e5", "g2g4", "d8h4")
	require.True(t, board.GameOver)

	restored := roundTrip(t, board)
	assert.True(t, restored.GameOver)
	_, err := engine.ApplyMove(restored, testutil.MustSquare(t, "a2"), testutil.MustSquare(t, "a3"), nil)
	assert.True(t, errors.Is(err, errors.ErrGameOver))

	require.NoError(t, engine.UndoMove(restored))
	assert.False(t, restored.GameOver)
	assert.Equal(t, chess.Black, restored.Turn)
}

func TestRoundTrip_KeepsRepetitionCounts(t *testing.T) {
	board := engine.NewInitialBoard()
	play(t, board, "g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1")

	restored := roundTrip(t, board)
	assert.Equal(t, engine.Normal, engine.GameStatus(restored))

	// The third occurrence of the start position comes from the saved counts.
	play(t, restored, "f6g8")
	assert.Equal(t, engine.DrawRepetition, engine.GameStatus(restored))
	assert.True(t, restored.GameOver)
}

func TestFromBoard(t *testing.T) {
	board := engine.NewInitialBoard()
	play(t, board, "e2e4", "e7e5", "g1f3")

	s := FromBoard(board)
	assert.Equal(t, Version, s.Version)
	assert.Equal(t, "black", s.Turn)
	assert.Equal(t, "g1f3", s.LastMove)
	assert.Equal(t, 1, s.HalfmoveClock)
	assert.Len(t, s.Pieces, 32)
	assert.Len(t, s.History, 3)
	assert.Len(t, s.Positions, 4)

	keys := make([]string, len(s.Positions))
	for i, p := range s.Positions {
		keys[i] = p.Key
	}
	assert.True(t, sort.StringsAreSorted(keys), "position keys should be sorted")

	var moved []string
	for _, p := range s.Pieces {
		if p.Moved {
			moved = append(moved, p.Square+p.Letter)
		}
	}
	assert.ElementsMatch(t, []string{"e4P", "e5p", "f3N"}, moved)
}

func TestSave_Deterministic(t *testing.T) {
	board := engine.NewInitialBoard()
	play(t, board, "d2d4", "d7d5", "c2c4")

	var a, b bytes.Buffer
	require.NoError(t, Save(&a, board))
	require.NoError(t, Save(&b, board.Clone()))
	assert.Equal(t, a.String(), b.String())
	assert.Contains(t, a.String(), `"turn": "black"`)
}

func TestFileRoundTrip(t *testing.T) {
	board := engine.NewInitialBoard()
	play(t, board, "e2e4")
	path := filepath.Join(t.TempDir(), "game.json")

	require.NoError(t, SaveFile(path, board))
	restored, err := LoadFile(path)
	require.NoError(t, err)
	testutil.AssertEqual(t, restored, board, cmpopts.EquateEmpty())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_NotJSON(t *testing.T) {
	_, err := Load(strings.NewReader("not a snapshot"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidSnapshot))
}

func TestBoard_Invalid(t *testing.T) {
	valid := func() *Snapshot {
		return FromBoard(engine.NewInitialBoard())
	}

	tests := []struct {
		name   string
		modify func(*Snapshot)
		want   []string
	}{
		{"version", func(s *Snapshot) { s.Version = 7 }, []string{"version 7"}},
		{"turn", func(s *Snapshot) { s.Turn = "green" }, []string{`turn "green"`}},
		{"clock", func(s *Snapshot) { s.HalfmoveClock = -2 }, []string{"halfmove clock -2"}},
		{"last move", func(s *Snapshot) { s.LastMove = "z9" }, []string{"lastMove"}},
		{"square", func(s *Snapshot) { s.Pieces[0].Square = "i9" }, []string{"pieces[0]"}},
		{"letter", func(s *Snapshot) { s.Pieces[1].Letter = "X" }, []string{`piece "X"`}},
		{"duplicate square", func(s *Snapshot) { s.Pieces[1].Square = s.Pieces[0].Square }, []string{"occupied twice"}},
		{"missing king", func(s *Snapshot) { s.Pieces[4].Letter = "q" }, []string{"Black has 0 kings"}},
		{"position count", func(s *Snapshot) { s.Positions[0].Count = 0 }, []string{"count 0"}},
		{"position key", func(s *Snapshot) { s.Positions[0].Key = "short" }, []string{"positions[0]"}},
		{"missing current position", func(s *Snapshot) { s.Positions = nil }, []string{"current position missing"}},
		{
			"history",
			func(s *Snapshot) {
				s.History = []HistoryRecord{{From: "e2", To: "e4", Moved: Piece{Letter: "P"}, Special: "teleport"}}
			},
			[]string{"history[0].capturedAt", "history[0].special"},
		},
		{
			"several problems",
			func(s *Snapshot) {
				s.Turn = ""
				s.Version = 0
			},
			[]string{"turn", "version 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.modify(s)
			board, err := s.Board()
			require.Error(t, err)
			assert.Nil(t, board)
			assert.True(t, errors.Is(err, errors.ErrInvalidSnapshot), "error %v should wrap ErrInvalidSnapshot", err)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}
