// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoHistory indicates an undo with no moves played.
	ErrNoHistory = errors.New("no move to undo")

	// ErrMissingKing indicates a side has no king on the board.
	ErrMissingKing = errors.New("king not found")

	// ErrAmbiguousKing indicates a side has more than one king.
	ErrAmbiguousKing = errors.New("more than one king")

	// ErrInvalidPromotion indicates a promotion choice outside Q, R, B, N.
	ErrInvalidPromotion = errors.New("invalid promotion choice")

	// ErrGameOver indicates a move attempted after the game finished.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSquare indicates coordinates or notation off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSnapshot indicates a saved game that cannot be restored.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// MoveError wraps errors with move context: the squares involved,
// the ply at which the move was attempted and a human readable reason.
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source square in algebraic notation
	To     string // Destination square in algebraic notation
	Ply    int    // Ply number the move would have been (0 if not applicable)
	Reason string // Why the move was refused
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithMessage(err, context)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithMessagef(err, format, args...)
}
