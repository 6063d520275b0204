package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/output"
	"github.com/lgbarn/gochess/internal/persist"
	"github.com/lgbarn/gochess/internal/processing"
	"github.com/lgbarn/gochess/internal/search"
)

const prompt = "%v's move (e.g. e2 e4), 'undo', 'moves', 'save <file>', 'load <file>', 'pgn', 'quit': "

// Session runs one interactive game over a line-based reader and writer.
type Session struct {
	cfg      *config.Config
	board    *chess.Board
	in       *bufio.Scanner
	out      io.Writer
	searcher *search.Searcher
	logger   *log.Logger
	quit     bool
}

// NewSession creates a session playing on board.
func NewSession(cfg *config.Config, board *chess.Board, in io.Reader, out io.Writer) *Session {
	return &Session{
		cfg:      cfg,
		board:    board,
		in:       bufio.NewScanner(in),
		out:      out,
		searcher: newSearcher(cfg),
		logger:   cfg.Logger(),
	}
}

// Board returns the board being played on.
func (s *Session) Board() *chess.Board {
	return s.board
}

// LastReport returns the engine's most recent search report, or nil.
func (s *Session) LastReport() *search.Report {
	return s.searcher.LastReport()
}

// Run plays until the game ends, the user quits or input runs out.
func (s *Session) Run() error {
	s.checkPosition()
	for !s.quit && !s.board.GameOver {
		if s.cfg.Output.ShowBoard {
			output.RenderBoard(s.out, s.board)
		}

		if s.cfg.Game.IsAI(s.board.Turn) {
			if limit := s.cfg.Game.MaxPlies; limit > 0 && s.board.Ply() >= limit {
				fmt.Fprintf(s.out, "Stopping after %d plies.\n", limit)
				return nil
			}
			s.playAI()
			continue
		}

		fmt.Fprintf(s.out, prompt, s.board.Turn)
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		s.handle(line)
	}

	if s.board.GameOver && s.cfg.Output.ShowBoard {
		output.RenderBoard(s.out, s.board)
	}
	return nil
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// handle executes one line of user input.
func (s *Session) handle(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		s.quit = true
	case "undo":
		s.undo()
	case "moves":
		s.listMoves(fields[1:])
	case "history":
		if len(fields) > 1 && strings.EqualFold(fields[1], "san") {
			if err := output.WriteSANHistory(s.out, s.board, 80); err != nil {
				fmt.Fprintf(s.out, "Cannot convert history: %v\n", err)
			}
			return
		}
		output.WriteHistory(s.out, s.board, 80)
	case "analyze":
		analysis, err := processing.AnalyzeGame(s.board)
		if err != nil {
			fmt.Fprintf(s.out, "Cannot analyze game: %v\n", err)
			return
		}
		fmt.Fprintln(s.out, analysis)
	case "fen":
		fmt.Fprintln(s.out, engine.BoardToFEN(s.board))
	case "pgn":
		if err := output.WritePGN(s.out, s.board, s.cfg.Output); err != nil {
			fmt.Fprintf(s.out, "Cannot export PGN: %v\n", err)
		}
	case "save":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "Invalid save command format. Use 'save <filename>'.")
			return
		}
		if err := persist.SaveFile(fields[1], s.board); err != nil {
			fmt.Fprintf(s.out, "Failed to save game: %v\n", err)
			return
		}
		fmt.Fprintf(s.out, "Game saved to %s.\n", fields[1])
	case "load":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "Invalid load command format. Use 'load <filename>'.")
			return
		}
		board, err := persist.LoadFile(fields[1])
		if err != nil {
			fmt.Fprintf(s.out, "Failed to load game: %v\n", err)
			return
		}
		if result := processing.ValidateGame(board); !result.Valid {
			fmt.Fprintf(s.out, "Failed to load game: history invalid at ply %d: %s\n", result.ErrorPly, result.ErrorMsg)
			return
		}
		s.board = board
		fmt.Fprintln(s.out, "Game loaded successfully.")
		s.checkPosition()
	case "help":
		fmt.Fprintln(s.out, "Commands: <from> <to>, undo, moves [square], history [san], analyze, fen, pgn, save <file>, load <file>, quit")
	default:
		s.move(line)
	}
}

// checkPosition ends the game when the current position is already
// decided, as with a set-up or loaded position.
func (s *Session) checkPosition() {
	if s.board.GameOver {
		return
	}
	status := engine.GameStatus(s.board)
	if !status.IsTerminal() {
		return
	}
	s.board.GameOver = true
	switch status {
	case engine.Checkmate:
		fmt.Fprintf(s.out, "Checkmate! %v wins!\n", s.board.Turn.Opposite())
	case engine.Stalemate:
		fmt.Fprintln(s.out, "Stalemate! The game is a draw.")
	default:
		fmt.Fprintf(s.out, "Draw by %v.\n", status)
	}
}

// move parses and plays a human move.
func (s *Session) move(line string) {
	m, err := chess.ParseMove(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input format, please use the format 'e2 e4', 'undo', 'save <filename>', or 'load <filename>'.")
		return
	}
	outcome, err := engine.ApplyMove(s.board, m.From, m.To, s.promptPromotion())
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) && moveErr.Reason != "" {
			fmt.Fprintf(s.out, "Invalid move (%s), try again.\n", moveErr.Reason)
			return
		}
		fmt.Fprintf(s.out, "Invalid move, try again.\n")
		return
	}
	s.report(outcome)
}

// promptPromotion asks the user which piece a pawn becomes.
func (s *Session) promptPromotion() engine.PromotionChooser {
	return engine.PromotionFunc(func(colour chess.Colour, at chess.Square) (chess.Kind, error) {
		fmt.Fprintf(s.out, "Promote %v pawn on %v to (q, r, b, n): ", colour, at)
		line, ok := s.readLine()
		if !ok {
			return chess.NoKind, fmt.Errorf("no promotion choice: %w", errors.ErrInvalidPromotion)
		}
		kind := chess.NoKind
		if len(line) == 1 {
			kind = chess.KindFromLetter(line[0])
		}
		if !kind.IsPromotionChoice() {
			fmt.Fprintln(s.out, "Invalid choice. Please enter q, r, b or n.")
		}
		return kind, nil
	})
}

// playAI lets the engine move for the side to move.
func (s *Session) playAI() {
	colour := s.board.Turn
	fmt.Fprintln(s.out, "AI is thinking...")
	m, ok := s.searcher.ChooseMove(s.board, colour, s.cfg.Search.Depth)
	if !ok {
		// Only reachable when the position was already terminal
		if engine.IsInCheck(s.board, colour) {
			fmt.Fprintf(s.out, "Checkmate! %v wins!\n", colour.Opposite())
		} else {
			fmt.Fprintln(s.out, "Stalemate! The game is a draw.")
		}
		s.board.GameOver = true
		return
	}

	outcome, err := engine.ApplyMove(s.board, m.From, m.To, engine.FixedPromotion(chess.Queen))
	if err != nil {
		fmt.Fprintf(s.out, "AI attempted an invalid move: %v\n", err)
		s.board.GameOver = true
		return
	}
	fmt.Fprintf(s.out, "AI plays %v.\n", m)
	if s.cfg.Verbosity >= 2 {
		fmt.Fprintln(s.out, s.searcher.LastReport())
	}
	s.report(outcome)
}

// report prints what a move did to the game.
func (s *Session) report(o engine.Outcome) {
	switch o.Kind {
	case engine.OutcomeCheck:
		fmt.Fprintf(s.out, "Check! %v is in check%s.\n", o.Colour, s.checkers(o.Colour))
	case engine.OutcomeCheckmate:
		fmt.Fprintf(s.out, "Checkmate! %v wins!\n", o.Colour)
	case engine.OutcomeStalemate:
		fmt.Fprintln(s.out, "Stalemate! The game is a draw.")
	case engine.OutcomeDraw:
		fmt.Fprintf(s.out, "Draw by %v.\n", o.Status)
	}
	s.logger.Printf("ply %d: %v", s.board.Ply(), o)
}

// checkers names the squares giving check to colour.
func (s *Session) checkers(colour chess.Colour) string {
	king, err := s.board.KingSquare(colour)
	if err != nil {
		return ""
	}
	attackers := engine.Attackers(s.board, king, colour.Opposite())
	if len(attackers) == 0 {
		return ""
	}
	names := make([]string, len(attackers))
	for i, sq := range attackers {
		names[i] = sq.String()
	}
	return " from " + strings.Join(names, ", ")
}

// undo takes back the last move. Against the engine it also takes back
// the engine's reply so the human is to move again.
func (s *Session) undo() {
	if err := engine.UndoMove(s.board); err != nil {
		fmt.Fprintln(s.out, "Cannot undo move.")
		return
	}
	if s.cfg.Game.Mode == config.HumanVsAI && s.cfg.Game.IsAI(s.board.Turn) && s.board.Ply() > 0 {
		_ = engine.UndoMove(s.board)
	}
	fmt.Fprintln(s.out, "Move undone.")
}

// listMoves prints the legal moves of the side to move, or of the piece
// on the given square.
func (s *Session) listMoves(args []string) {
	var moves []chess.Move
	if len(args) == 1 {
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "Invalid square %q.\n", args[0])
			return
		}
		moves = engine.LegalMovesFrom(s.board, sq)
	} else {
		moves = engine.LegalMoves(s.board, s.board.Turn)
	}
	if len(moves) == 0 {
		fmt.Fprintln(s.out, "No legal moves.")
		return
	}
	output.WriteMoves(s.out, moves, 80)
}
