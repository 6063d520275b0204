package engine

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
)

// MaxPromotionAttempts bounds how often an invalid promotion choice is
// re-requested before the move is rejected.
const MaxPromotionAttempts = 3

// PromotionChooser supplies the piece a pawn promotes to. Interactive
// callers prompt the user; search and tests return a fixed kind.
type PromotionChooser interface {
	ChoosePromotion(colour chess.Colour, at chess.Square) (chess.Kind, error)
}

// PromotionFunc adapts a function to PromotionChooser.
type PromotionFunc func(colour chess.Colour, at chess.Square) (chess.Kind, error)

// ChoosePromotion calls f.
func (f PromotionFunc) ChoosePromotion(colour chess.Colour, at chess.Square) (chess.Kind, error) {
	return f(colour, at)
}

// FixedPromotion always chooses kind.
func FixedPromotion(kind chess.Kind) PromotionChooser {
	return PromotionFunc(func(chess.Colour, chess.Square) (chess.Kind, error) {
		return kind, nil
	})
}

// OutcomeKind classifies the result of ApplyMove.
type OutcomeKind int

const (
	OutcomeRejected OutcomeKind = iota
	OutcomeApplied
	OutcomeCheck
	OutcomeCheckmate
	OutcomeStalemate
	OutcomeDraw
)

// Outcome is the result of ApplyMove.
type Outcome struct {
	Kind OutcomeKind

	// Colour is the side in check for OutcomeCheck and the winner for
	// OutcomeCheckmate.
	Colour chess.Colour

	// Status is the game status after the move (DrawFiftyMove or
	// DrawRepetition for OutcomeDraw).
	Status Status

	// Reason explains a rejection.
	Reason string
}

// String returns a short description of the outcome.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeApplied:
		return "applied"
	case OutcomeCheck:
		return fmt.Sprintf("check (%v)", o.Colour)
	case OutcomeCheckmate:
		return fmt.Sprintf("checkmate (%v wins)", o.Colour)
	case OutcomeStalemate:
		return "stalemate"
	case OutcomeDraw:
		return "draw (" + o.Status.String() + ")"
	}
	return "rejected: " + o.Reason
}

// ApplyMove validates and plays from-to for the side to move. Rejected
// moves leave the board untouched and return an error wrapping
// ErrIllegalMove, ErrGameOver, ErrInvalidSquare or ErrInvalidPromotion.
// chooser is only consulted when a pawn reaches the far rank.
func ApplyMove(board *chess.Board, from, to chess.Square, chooser PromotionChooser) (Outcome, error) {
	reject := func(err error, reason string) (Outcome, error) {
		moveErr := &errors.MoveError{
			Err:    err,
			From:   from.String(),
			To:     to.String(),
			Ply:    board.Ply() + 1,
			Reason: reason,
		}
		logger.Printf("rejected: %v", moveErr)
		return Outcome{Kind: OutcomeRejected, Reason: reason}, moveErr
	}

	if !from.Valid() || !to.Valid() {
		return reject(errors.ErrInvalidSquare, "square off the board")
	}
	if board.GameOver {
		return reject(errors.ErrGameOver, "game has ended")
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return reject(errors.ErrIllegalMove, "no piece at "+from.String())
	}
	if piece.Colour != board.Turn {
		return reject(errors.ErrIllegalMove, fmt.Sprintf("it is %v's turn", board.Turn))
	}
	if !canMove(board, from, to, legalMode) {
		return reject(errors.ErrIllegalMove, describeRejection(board, from, to))
	}
	if leavesKingInCheck(board, from, to) {
		return reject(errors.ErrIllegalMove, "move leaves king in check")
	}

	promotion := chess.NoKind
	if isPromotion(piece, to) {
		kind, err := requestPromotion(chooser, piece.Colour, to)
		if err != nil {
			return reject(err, "no valid promotion piece")
		}
		promotion = kind
	}

	MakeMove(board, chess.Move{From: from, To: to}, promotion)

	status := GameStatus(board)
	if status.IsTerminal() {
		board.GameOver = true
	}
	return outcomeFor(status, piece.Colour), nil
}

// requestPromotion asks chooser for a promotion piece, re-asking after
// invalid answers.
func requestPromotion(chooser PromotionChooser, colour chess.Colour, at chess.Square) (chess.Kind, error) {
	if chooser == nil {
		return chess.NoKind, fmt.Errorf("no promotion chooser: %w", errors.ErrInvalidPromotion)
	}
	var last chess.Kind
	for attempt := 0; attempt < MaxPromotionAttempts; attempt++ {
		kind, err := chooser.ChoosePromotion(colour, at)
		if err != nil {
			return chess.NoKind, errors.Wrap(err, "choosing promotion")
		}
		if kind.IsPromotionChoice() {
			return kind, nil
		}
		last = kind
		logger.Printf("promotion on %v: %v is not a valid choice", at, kind)
	}
	return chess.NoKind, fmt.Errorf("%v after %d attempts: %w", last, MaxPromotionAttempts, errors.ErrInvalidPromotion)
}

func outcomeFor(status Status, mover chess.Colour) Outcome {
	o := Outcome{Status: status}
	switch status {
	case Check:
		o.Kind, o.Colour = OutcomeCheck, mover.Opposite()
	case Checkmate:
		o.Kind, o.Colour = OutcomeCheckmate, mover
	case Stalemate:
		o.Kind = OutcomeStalemate
	case DrawFiftyMove, DrawRepetition:
		o.Kind = OutcomeDraw
	default:
		o.Kind = OutcomeApplied
	}
	return o
}

// MakeMove plays a move already known to be legal and records how to
// undo it. It updates turn, clocks and history but never evaluates the
// game status. A pawn reaching the far rank becomes promotion, or a queen
// when promotion is not a valid choice.
func MakeMove(board *chess.Board, m chess.Move, promotion chess.Kind) chess.MoveRecord {
	mover := board.Get(m.From)
	rec := chess.MoveRecord{
		From:            m.From,
		To:              m.To,
		Moved:           mover,
		Captured:        board.Get(m.To),
		CapturedAt:      m.To,
		PrevLastMove:    board.LastMove,
		PrevHasLastMove: board.HasLastMove,
		PrevHalfmove:    board.HalfmoveClock,
	}

	switch {
	case mover.Kind == chess.Pawn && m.From.Col != m.To.Col && rec.Captured.IsEmpty():
		rec.Special = chess.EnPassant
		rec.CapturedAt = enPassantVictim(m.From, m.To)
		rec.Captured = board.Get(rec.CapturedAt)
		board.Clear(rec.CapturedAt)

	case mover.Kind == chess.King && abs(m.To.Col-m.From.Col) == 2:
		rec.Special = chess.Castling
		rec.RookFrom, rec.RookTo = castlingRook(m.From, m.To)
		rec.Rook = board.Get(rec.RookFrom)
		rook := rec.Rook
		rook.HasMoved = true
		board.Clear(rec.RookFrom)
		board.Set(rec.RookTo, rook)
	}

	placed := mover
	placed.HasMoved = true
	if isPromotion(mover, m.To) {
		if !promotion.IsPromotionChoice() {
			promotion = chess.Queen
		}
		rec.Special = chess.Promotion
		placed = chess.Piece{Colour: mover.Colour, Kind: promotion, HasMoved: true}
		rec.Promoted = placed
	}
	board.Clear(m.From)
	board.Set(m.To, placed)

	if mover.Kind == chess.Pawn || !rec.Captured.IsEmpty() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	board.LastMove = m
	board.HasLastMove = true
	board.Turn = board.Turn.Opposite()

	if board.PositionHistory == nil {
		board.PositionHistory = make(map[chess.PositionKey]int)
	}
	rec.Key = board.PositionKey()
	board.PositionHistory[rec.Key]++
	board.History = append(board.History, rec)
	return rec
}

// UndoMove takes back the last move exactly, including special moves and
// the moved pieces' HasMoved flags, and clears GameOver.
func UndoMove(board *chess.Board) error {
	n := len(board.History)
	if n == 0 {
		return errors.ErrNoHistory
	}
	rec := board.History[n-1]
	board.History = board.History[:n-1]

	if count := board.PositionHistory[rec.Key]; count <= 1 {
		delete(board.PositionHistory, rec.Key)
	} else {
		board.PositionHistory[rec.Key] = count - 1
	}

	board.Clear(rec.To)
	board.Set(rec.From, rec.Moved)
	if !rec.Captured.IsEmpty() {
		board.Set(rec.CapturedAt, rec.Captured)
	}
	if rec.Special == chess.Castling {
		board.Clear(rec.RookTo)
		board.Set(rec.RookFrom, rec.Rook)
	}

	board.LastMove = rec.PrevLastMove
	board.HasLastMove = rec.PrevHasLastMove
	board.HalfmoveClock = rec.PrevHalfmove
	board.Turn = board.Turn.Opposite()
	board.GameOver = false
	return nil
}

// Reset restores the standard starting position.
func Reset(board *chess.Board) {
	board.SetupInitialPosition()
	board.StartFEN = InitialFEN
}
