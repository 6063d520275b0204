package output

import (
	"fmt"
	"io"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
)

// defaultFENFields fill in the fields a short FEN leaves out.
var defaultFENFields = []string{"", "w", "-", "-", "0", "1"}

// startFEN returns the board's starting position as a six-field FEN.
func startFEN(board *chess.Board) string {
	parts := strings.Fields(board.StartFEN)
	if len(parts) == 0 {
		return engine.InitialFEN
	}
	for len(parts) < len(defaultFENFields) {
		parts = append(parts, defaultFENFields[len(parts)])
	}
	return strings.Join(parts, " ")
}

// ToGame replays the board's move history as a PGN game. The game is
// tagged from cfg; positions not starting from the standard setup carry
// SetUp and FEN tags.
func ToGame(board *chess.Board, cfg *config.OutputConfig) (*nchess.Game, error) {
	fen := startFEN(board)
	var game *nchess.Game
	if fen == engine.InitialFEN {
		game = nchess.NewGame()
	} else {
		opt, err := nchess.FEN(fen)
		if err != nil {
			return nil, fmt.Errorf("start position %q: %v: %w", fen, err, errors.ErrInvalidFEN)
		}
		game = nchess.NewGame(opt)
	}

	if cfg != nil {
		game.AddTagPair("Event", cfg.Event)
		game.AddTagPair("White", cfg.White)
		game.AddTagPair("Black", cfg.Black)
	}
	if fen != engine.InitialFEN {
		game.AddTagPair("SetUp", "1")
		game.AddTagPair("FEN", fen)
	}

	for i := range board.History {
		uci := board.History[i].UCI()
		m, err := nchess.UCINotation{}.Decode(game.Position(), uci)
		if err != nil {
			return nil, errors.Wrapf(err, "ply %d (%s)", i+1, uci)
		}
		if err := game.Move(m); err != nil {
			return nil, errors.Wrapf(err, "ply %d (%s)", i+1, uci)
		}
	}

	if board.GameOver && game.Outcome() == nchess.NoOutcome {
		claimDraw(game, engine.GameStatus(board))
	}
	game.AddTagPair("Result", string(game.Outcome()))
	return game, nil
}

// claimDraw records a draw the board already declared. The PGN side
// keeps its own repetition count, so a claim it refuses is recorded as
// an agreed draw.
func claimDraw(game *nchess.Game, status engine.Status) {
	var method nchess.Method
	switch status {
	case engine.DrawFiftyMove:
		method = nchess.FiftyMoveRule
	case engine.DrawRepetition:
		method = nchess.ThreefoldRepetition
	default:
		return
	}
	if err := game.Draw(method); err != nil {
		_ = game.Draw(nchess.DrawOffer)
	}
}

// WritePGN writes the board's game as PGN.
func WritePGN(w io.Writer, board *chess.Board, cfg *config.OutputConfig) error {
	game, err := ToGame(board, cfg)
	if err != nil {
		return errors.Wrap(err, "exporting PGN")
	}
	_, err = fmt.Fprintln(w, game.String())
	return err
}

// SANMoves returns the played moves in standard algebraic notation.
func SANMoves(board *chess.Board) ([]string, error) {
	game, err := ToGame(board, nil)
	if err != nil {
		return nil, err
	}
	positions := game.Positions()
	moves := game.Moves()
	san := make([]string, len(moves))
	for i, m := range moves {
		san[i] = nchess.AlgebraicNotation{}.Encode(positions[i], m)
	}
	return san, nil
}
