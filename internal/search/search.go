// Package search chooses moves by minimax with alpha-beta pruning over
// the engine's make/undo primitives.
package search

import (
	"io"
	"log"
	"math/rand"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/worker"
)

const (
	// MateScore is the score of delivering mate at the root. Mates further
	// away score one point less per ply.
	MateScore = 1_000_000

	// Infinity bounds every reachable score. An evaluator returning
	// -Infinity for White (or +Infinity for Black) never improves on the
	// root sentinel.
	Infinity = MateScore * 2

	// DefaultDepth is the search depth used when none is configured.
	DefaultDepth = 3
)

// Searcher picks moves for either side. It is not safe for concurrent
// use; root parallelism runs on board clones inside a single call.
type Searcher struct {
	eval    Evaluator
	depth   int
	rng     *rand.Rand
	logger  *log.Logger
	workers int
	last    *Report
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithEvaluator sets the static evaluation function.
func WithEvaluator(e Evaluator) Option {
	return func(s *Searcher) {
		if e != nil {
			s.eval = e
		}
	}
}

// WithDepth sets the depth used by BestMove.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 1 {
			s.depth = depth
		}
	}
}

// WithSeed seeds the random fallback for reproducible games.
func WithSeed(seed int64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger directs search decisions to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkers searches root moves on n goroutines when n > 1.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// New creates a Searcher. Defaults: PositionalEvaluator, DefaultDepth,
// one worker, seed 1, logs discarded.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		eval:    PositionalEvaluator{},
		depth:   DefaultDepth,
		rng:     rand.New(rand.NewSource(1)),
		logger:  log.New(io.Discard, "", 0),
		workers: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Depth returns the configured search depth.
func (s *Searcher) Depth() int {
	return s.depth
}

// LastReport returns the report of the most recent search, or nil.
func (s *Searcher) LastReport() *Report {
	return s.last
}

// BestMove searches for the side to move at the configured depth.
func (s *Searcher) BestMove(b *chess.Board) (chess.Move, bool) {
	return s.ChooseMove(b, b.Turn, s.depth)
}

// ChooseMove returns the best move for colour found by a depth-limited
// search, or false when colour has no legal move. The board is mutated
// during the search and restored before returning.
func (s *Searcher) ChooseMove(b *chess.Board, colour chess.Colour, depth int) (chess.Move, bool) {
	if depth < 1 {
		depth = 1
	}
	turn := b.Turn
	b.Turn = colour
	defer func() { b.Turn = turn }()

	report := &Report{Colour: colour, Depth: depth}
	s.last = report

	moves := engine.LegalMoves(b, colour)
	if len(moves) == 0 {
		s.logger.Printf("search: %v has no legal move", colour)
		return chess.Move{}, false
	}

	if s.workers > 1 && len(moves) > 1 {
		report.Parallel = true
		report.Roots = s.searchParallel(b, moves, depth)
	} else {
		report.Roots = s.searchSequential(b, moves, depth)
	}

	best, found := pickBest(report.Roots, colour)
	for _, r := range report.Roots {
		report.Nodes += r.Nodes
	}
	if !found {
		best = s.rng.Intn(len(moves))
		report.Fallback = true
	}
	report.Best = report.Roots[best].Move
	report.BestScore = report.Roots[best].Score

	s.logger.Printf("search: %v depth %d chose %v score %d nodes %d fallback %t",
		colour, depth, report.Best, report.BestScore, report.Nodes, report.Fallback)
	return report.Best, true
}

// pickBest returns the index of the first root whose score is strictly
// better than everything before it, starting from the side's worst
// sentinel.
func pickBest(roots []RootScore, colour chess.Colour) (int, bool) {
	best, bestScore := -1, -Infinity
	if colour == chess.Black {
		bestScore = Infinity
	}
	for i, r := range roots {
		if colour == chess.White && r.Score > bestScore ||
			colour == chess.Black && r.Score < bestScore {
			best, bestScore = i, r.Score
		}
	}
	return best, best >= 0
}

// searchSequential scores root moves in order, narrowing the window as
// it goes. Scores of moves that cannot beat the current best are bounds.
func (s *Searcher) searchSequential(b *chess.Board, moves []chess.Move, depth int) []RootScore {
	roots := make([]RootScore, len(moves))
	alpha, beta := -Infinity, Infinity
	for i, m := range moves {
		var nodes uint64
		engine.MakeMove(b, m, chess.Queen)
		score := s.minimax(b, depth-1, 1, alpha, beta, &nodes)
		_ = engine.UndoMove(b)

		roots[i] = RootScore{Move: m, Score: score, Nodes: nodes}
		if b.Turn == chess.White {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
	}
	return roots
}

// searchParallel scores every root move with a full window on its own
// board clone.
func (s *Searcher) searchParallel(b *chess.Board, moves []chess.Move, depth int) []RootScore {
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Board: b.Clone(), Move: m, Index: i}
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		var nodes uint64
		engine.MakeMove(item.Board, item.Move, chess.Queen)
		score := s.minimax(item.Board, depth-1, 1, -Infinity, Infinity, &nodes)
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Score: score, Nodes: nodes}
	}, worker.WithWorkers(s.workers), worker.WithBufferSize(len(items)))

	results := pool.Run(items)
	roots := make([]RootScore, len(results))
	for i, r := range results {
		roots[i] = RootScore{Move: r.Move, Score: r.Score, Nodes: r.Nodes}
	}
	return roots
}

// minimax returns the score of the position from White's point of view.
// White maximises, Black minimises; ply is the distance from the root.
func (s *Searcher) minimax(b *chess.Board, depth, ply, alpha, beta int, nodes *uint64) int {
	*nodes++

	if engine.IsDraw(b) {
		return 0
	}
	if depth <= 0 {
		if !engine.HasLegalMoves(b, b.Turn) {
			return terminalScore(b, ply)
		}
		return s.eval.Evaluate(b)
	}

	moves := engine.LegalMoves(b, b.Turn)
	if len(moves) == 0 {
		return terminalScore(b, ply)
	}

	if b.Turn == chess.White {
		best := -Infinity
		for _, m := range moves {
			engine.MakeMove(b, m, chess.Queen)
			score := s.minimax(b, depth-1, ply+1, alpha, beta, nodes)
			_ = engine.UndoMove(b)

			best = max(best, score)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		engine.MakeMove(b, m, chess.Queen)
		score := s.minimax(b, depth-1, ply+1, alpha, beta, nodes)
		_ = engine.UndoMove(b)

		best = min(best, score)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// terminalScore scores a side to move without legal moves: mate favours
// the other side, closer mates scoring higher; stalemate is level.
func terminalScore(b *chess.Board, ply int) int {
	if !engine.IsInCheck(b, b.Turn) {
		return 0
	}
	if b.Turn == chess.White {
		return -(MateScore - ply)
	}
	return MateScore - ply
}
