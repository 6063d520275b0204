package engine

import "github.com/lgbarn/gochess/internal/chess"

// Status is the state of the game for the side to move.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMove:
		return "fifty-move rule"
	case DrawRepetition:
		return "threefold repetition"
	}
	return "normal"
}

// IsTerminal returns true if the status ends the game.
func (s Status) IsTerminal() bool {
	return s != Normal && s != Check
}

// IsDraw returns true for both draw rules.
func (s Status) IsDraw() bool {
	return s == DrawFiftyMove || s == DrawRepetition
}

// GameStatus evaluates the position for the side to move. Draw rules take
// precedence over check and mate.
func GameStatus(board *chess.Board) Status {
	if IsFiftyMoveDraw(board) {
		return DrawFiftyMove
	}
	if IsRepetitionDraw(board) {
		return DrawRepetition
	}

	colour := board.Turn
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)
	switch {
	case inCheck && hasMoves:
		return Check
	case inCheck:
		return Checkmate
	case !hasMoves:
		return Stalemate
	}
	return Normal
}

// IsCheckmate returns true if the colour is in check with no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the colour is not in check but has no
// legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
