package search

import (
	"bytes"
	"log"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/testutil"
)

func mustFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	require.NoError(t, err)
	return b
}

func TestChooseMove_PrefersCapture(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   string
	}{
		{"white rook takes queen", "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1", chess.White, "d1d5"},
		{"black rook takes queen", "3rk3/8/8/3Q4/8/8/8/4K3 b - - 0 1", chess.Black, "d8d5"},
		{"pawn takes knight", "4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1", chess.White, "e4d5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			s := New(WithEvaluator(MaterialEvaluator{}))

			m, ok := s.ChooseMove(b, tt.colour, 1)

			require.True(t, ok)
			assert.Equal(t, tt.want, m.String())
			assert.False(t, s.LastReport().Fallback)
		})
	}
}

func TestChooseMove_FindsMateInOne(t *testing.T) {
	b := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	s := New(WithDepth(2))

	m, ok := s.BestMove(b)

	require.True(t, ok)
	assert.Equal(t, "a1a8", m.String())
	assert.Equal(t, MateScore-1, s.LastReport().BestScore)
	assert.Equal(t, "#1", FormatScore(s.LastReport().BestScore))
}

func TestChooseMove_NoLegalMoves(t *testing.T) {
	b := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	s := New()

	_, ok := s.ChooseMove(b, chess.White, 3)

	assert.False(t, ok)
	require.NotNil(t, s.LastReport())
	assert.Empty(t, s.LastReport().Roots)
}

func TestChooseMove_RestoresBoard(t *testing.T) {
	b := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := b.Clone()

	_, ok := New().ChooseMove(b, chess.White, 2)
	require.True(t, ok)

	testutil.AssertEqual(t, b, before, cmpopts.EquateEmpty())
}

func TestChooseMove_OtherColourRestoresTurn(t *testing.T) {
	b := engine.NewInitialBoard()

	m, ok := New(WithEvaluator(MaterialEvaluator{})).ChooseMove(b, chess.Black, 1)

	require.True(t, ok)
	assert.Equal(t, chess.White, b.Turn)
	assert.Equal(t, chess.Black, b.Get(m.From).Colour)
}

func TestChooseMove_FirstBestTieBreak(t *testing.T) {
	b := engine.NewInitialBoard()
	s := New(WithEvaluator(MaterialEvaluator{}))

	m, ok := s.ChooseMove(b, chess.White, 1)

	require.True(t, ok)
	assert.Equal(t, "a2a4", m.String(), "all moves score 0, the first enumerated wins")
	assert.False(t, s.LastReport().Fallback)
	assert.Len(t, s.LastReport().Roots, 20)
}

func TestChooseMove_RandomFallback(t *testing.T) {
	hopeless := EvaluatorFunc(func(*chess.Board) int { return -Infinity })
	legal := engine.LegalMoves(engine.NewInitialBoard(), chess.White)

	pick := func(seed int64) chess.Move {
		s := New(WithEvaluator(hopeless), WithSeed(seed))
		m, ok := s.ChooseMove(engine.NewInitialBoard(), chess.White, 1)
		require.True(t, ok)
		assert.True(t, s.LastReport().Fallback)
		return m
	}

	first := pick(42)
	assert.Contains(t, legal, first)
	assert.Equal(t, first, pick(42), "same seed, same choice")
}

func TestChooseMove_ParallelMatchesSequential(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			seq := New(WithDepth(2))
			par := New(WithDepth(2), WithWorkers(4))

			m1, ok1 := seq.BestMove(mustFEN(t, fen))
			m2, ok2 := par.BestMove(mustFEN(t, fen))

			require.True(t, ok1)
			require.True(t, ok2)
			assert.Equal(t, m1, m2)
			assert.Equal(t, seq.LastReport().BestScore, par.LastReport().BestScore)
			assert.True(t, par.LastReport().Parallel)
		})
	}
}

func TestChooseMove_Logs(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithLogger(log.New(&buf, "", 0)), WithEvaluator(MaterialEvaluator{}))

	_, ok := s.ChooseMove(engine.NewInitialBoard(), chess.White, 1)

	require.True(t, ok)
	assert.Contains(t, buf.String(), "chose a2a4")
}

func TestChooseMove_AvoidsStalemateWhenWinning(t *testing.T) {
	// Qf7 stalemates; any other sensible queen move keeps the win alive.
	b := mustFEN(t, "7k/8/5Q2/6K1/8/8/8/8 w - - 0 1")

	m, ok := New(WithEvaluator(MaterialEvaluator{})).ChooseMove(b, chess.White, 1)

	require.True(t, ok)
	assert.NotEqual(t, "f6f7", m.String())
}

func TestOptions(t *testing.T) {
	s := New(WithDepth(0), WithWorkers(0), WithEvaluator(nil), WithLogger(nil))
	assert.Equal(t, DefaultDepth, s.Depth())
	assert.Equal(t, 1, s.workers)
	assert.IsType(t, PositionalEvaluator{}, s.eval)
	assert.Nil(t, s.LastReport())
}
