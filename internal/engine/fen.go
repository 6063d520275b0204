package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	Reset(board)
	return board
}

// NewBoardFromFEN creates a board from a FEN string. Castling rights set
// the HasMoved flags of kings and rooks, the en passant square becomes
// the last move, and the halfmove clock is kept. Missing trailing fields
// default to "w - - 0 1".
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	board.StartFEN = strings.Join(parts, " ")
	board.PositionHistory[board.PositionKey()] = 1
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Pawns off their home row and every king and rook start as moved;
// castling rights clear the flag again.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			piece := chess.NewPiece(colour, kind)
			switch kind {
			case chess.Pawn:
				piece.HasMoved = row != chess.PawnHomeRow(colour)
			case chess.King, chess.Rook:
				piece.HasMoved = true
			}
			board.Grid[row][col] = piece
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.Turn = chess.White
	case "b":
		board.Turn = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var rookCol int
		switch c {
		case 'K':
			colour, rookCol = chess.White, kingsideRookCol
		case 'Q':
			colour, rookCol = chess.White, queensideRookCol
		case 'k':
			colour, rookCol = chess.Black, kingsideRookCol
		case 'q':
			colour, rookCol = chess.Black, queensideRookCol
		default:
			return fmt.Errorf("invalid castling flag %q: %w", c, errors.ErrInvalidFEN)
		}
		row := chess.BackRow(colour)
		kingSq := chess.Sq(row, kingHomeCol)
		rookSq := chess.Sq(row, rookCol)
		if !board.Get(kingSq).Is(colour, chess.King) || !board.Get(rookSq).Is(colour, chess.Rook) {
			// Right without the pieces in place; ignore it
			continue
		}
		board.Grid[kingSq.Row][kingSq.Col].HasMoved = false
		board.Grid[rookSq.Row][rookSq.Col].HasMoved = false
	}
	return nil
}

// parseEnPassant turns the en passant target square into the double
// push that created it.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	var pusher chess.Colour
	switch target.Row {
	case chess.PawnHomeRow(chess.White) - 1:
		pusher = chess.White
	case chess.PawnHomeRow(chess.Black) + 1:
		pusher = chess.Black
	default:
		return fmt.Errorf("en passant square %q on wrong rank: %w", parts[3], errors.ErrInvalidFEN)
	}
	dir := chess.PawnDirection(pusher)
	board.LastMove = chess.Move{
		From: target.Offset(-dir, 0),
		To:   target.Offset(dir, 0),
	}
	board.HasLastMove = true
	return nil
}

// parseClocks parses the halfmove clock; the fullmove number is only
// validated, it is recovered from StartFEN when needed.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err != nil || n < 1 {
			return fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, FullmoveNumber(board))

	return sb.String()
}

// FullmoveNumber derives the current move number from StartFEN and the
// number of moves played since.
func FullmoveNumber(board *chess.Board) int {
	start, first := StartMove(board)
	plies := board.Ply()
	if first == chess.Black {
		plies++
	}
	return start + plies/2
}

// StartMove returns the move number and side to move of StartFEN.
func StartMove(board *chess.Board) (int, chess.Colour) {
	number, colour := 1, chess.White
	parts := strings.Fields(board.StartFEN)
	if len(parts) >= 2 && parts[1] == "b" {
		colour = chess.Black
	}
	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err == nil && n > 0 {
			number = n
		}
	}
	return number, colour
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Grid[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	wk, wq := CastlingRights(board, chess.White)
	bk, bq := CastlingRights(board, chess.Black)
	flags := []struct {
		ok     bool
		letter byte
	}{{wk, 'K'}, {wq, 'Q'}, {bk, 'k'}, {bq, 'q'}}

	hasCastling := false
	for _, f := range flags {
		if f.ok {
			sb.WriteByte(f.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind a pawn that just double pushed.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if sq, ok := EnPassantTarget(board); ok {
		sb.WriteString(sq.String())
		return
	}
	sb.WriteByte('-')
}

// EnPassantTarget returns the square skipped by a double pawn push made
// on the previous move.
func EnPassantTarget(board *chess.Board) (chess.Square, bool) {
	if !board.HasLastMove {
		return chess.Square{}, false
	}
	last := board.LastMove
	if last.From.Col != last.To.Col || abs(last.To.Row-last.From.Row) != 2 {
		return chess.Square{}, false
	}
	if board.Get(last.To).Kind != chess.Pawn {
		return chess.Square{}, false
	}
	return chess.Sq((last.From.Row+last.To.Row)/2, last.To.Col), true
}
