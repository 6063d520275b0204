package engine

import (
	"github.com/lgbarn/gochess/internal/chess"
)

const (
	// FiftyMoveLimit is the halfmove clock value that draws the game.
	FiftyMoveLimit = 100

	// RepetitionLimit is the number of occurrences that draws the game.
	RepetitionLimit = 3
)

// IsFiftyMoveDraw returns true once 50 full moves passed without a pawn
// move or capture.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

// IsRepetitionDraw returns true if any position occurred three times.
func IsRepetitionDraw(board *chess.Board) bool {
	for _, count := range board.PositionHistory {
		if count >= RepetitionLimit {
			return true
		}
	}
	return false
}

// IsDraw returns true if either draw rule applies.
func IsDraw(board *chess.Board) bool {
	return IsFiftyMoveDraw(board) || IsRepetitionDraw(board)
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side. It is informational only and never
// ends the game.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Grid[row][col]
			if piece.IsEmpty() || piece.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a1 (row 7, col 0) is dark.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}
