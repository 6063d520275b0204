// Package processing replays a board's move history to validate it and
// summarise what happened in the game.
package processing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard  *chess.Board
	FinalStatus engine.Status

	Plies      int
	Captures   int
	Checks     int
	Castles    int
	EnPassants int
	Promotions int

	HasFiftyMoveRule        bool
	HasRepetition           bool
	HasUnderpromotion       bool
	HasInsufficientMaterial bool

	// MaxRepetitions is the highest occurrence count of any position
	MaxRepetitions int
}

// FiftyMoveTriggered returns true if the game triggered the fifty-move rule.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// String summarises the analysis on one line.
func (ga *GameAnalysis) String() string {
	parts := []string{
		fmt.Sprintf("%d plies", ga.Plies),
		fmt.Sprintf("%d captures", ga.Captures),
		fmt.Sprintf("%d checks", ga.Checks),
		fmt.Sprintf("%d castles", ga.Castles),
		fmt.Sprintf("%d promotions", ga.Promotions),
		"status " + ga.FinalStatus.String(),
	}
	if ga.UnderpromotionFound() {
		parts = append(parts, "underpromotion")
	}
	if ga.FiftyMoveTriggered() {
		parts = append(parts, "fifty-move limit reached")
	}
	if ga.RepetitionDetected() {
		parts = append(parts, fmt.Sprintf("position repeated %d times", ga.MaxRepetitions))
	}
	if ga.HasInsufficientMaterial {
		parts = append(parts, "insufficient material")
	}
	return strings.Join(parts, ", ")
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// startBoard returns a fresh board at the board's start position.
func startBoard(board *chess.Board) (*chess.Board, error) {
	if strings.TrimSpace(board.StartFEN) == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(board.StartFEN)
}

// replay plays the history of board on a fresh board, calling visit
// after each move. It stops at the first move that is illegal or does
// not reproduce the recorded position.
func replay(board *chess.Board, visit func(rec *chess.MoveRecord, o engine.Outcome, b *chess.Board)) (*chess.Board, int, error) {
	b, err := startBoard(board)
	if err != nil {
		return nil, 0, err
	}
	for i := range board.History {
		rec := &board.History[i]
		outcome, err := engine.ApplyMove(b, rec.From, rec.To, engine.FixedPromotion(rec.Promoted.Kind))
		if err != nil {
			return b, i + 1, err
		}
		if b.PositionKey() != rec.Key {
			return b, i + 1, fmt.Errorf("move %s does not reach the recorded position", rec.UCI())
		}
		if visit != nil {
			visit(rec, outcome, b)
		}
	}
	return b, 0, nil
}

// AnalyzeGame replays the board's history and analyzes it for various
// features. The board itself is not modified.
func AnalyzeGame(board *chess.Board) (*GameAnalysis, error) {
	analysis := &GameAnalysis{}
	final, ply, err := replay(board, func(rec *chess.MoveRecord, o engine.Outcome, b *chess.Board) {
		analysis.Plies++
		if rec.IsCapture() {
			analysis.Captures++
		}
		switch rec.Special {
		case chess.Castling:
			analysis.Castles++
		case chess.EnPassant:
			analysis.EnPassants++
		case chess.Promotion:
			analysis.Promotions++
			if rec.Promoted.Kind != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
		if o.Kind == engine.OutcomeCheck || o.Kind == engine.OutcomeCheckmate {
			analysis.Checks++
		}

		// 50-move rule (100 half-moves)
		if engine.IsFiftyMoveDraw(b) {
			analysis.HasFiftyMoveRule = true
		}
		if n := b.PositionHistory[rec.Key]; n > analysis.MaxRepetitions {
			analysis.MaxRepetitions = n
		}
	})
	if err != nil {
		if ply > 0 {
			return nil, fmt.Errorf("ply %d: %w", ply, err)
		}
		return nil, err
	}

	analysis.HasRepetition = analysis.MaxRepetitions >= engine.RepetitionLimit
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(final)
	analysis.FinalStatus = engine.GameStatus(final)
	analysis.FinalBoard = final
	return analysis, nil
}

// ValidateGame checks that every recorded move is legal from the start
// position and reproduces the recorded position.
func ValidateGame(board *chess.Board) *ValidationResult {
	_, ply, err := replay(board, nil)
	if err == nil {
		return &ValidationResult{Valid: true}
	}
	return &ValidationResult{
		ErrorPly: ply,
		ErrorMsg: err.Error(),
	}
}
