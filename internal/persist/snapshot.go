// Package persist saves and restores complete game state as JSON
// snapshots. A restored board is indistinguishable from the saved one:
// moved flags, clocks, repetition counts and the undo history all survive.
package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
)

// Version is written into every snapshot.
const Version = 1

// Snapshot is the JSON form of a board.
type Snapshot struct {
	Version       int             `json:"version"`
	StartFEN      string          `json:"startFEN,omitempty"`
	Turn          string          `json:"turn"` // "white" or "black"
	GameOver      bool            `json:"gameOver,omitempty"`
	LastMove      string          `json:"lastMove,omitempty"`
	HalfmoveClock int             `json:"halfmoveClock"`
	Pieces        []PlacedPiece   `json:"pieces"`
	Positions     []PositionCount `json:"positions"`
	History       []HistoryRecord `json:"history,omitempty"`
}

// PlacedPiece is a piece on a square.
type PlacedPiece struct {
	Square string `json:"square"`
	Piece
}

// Piece is a FEN letter plus the moved flag.
type Piece struct {
	Letter string `json:"piece"`
	Moved  bool   `json:"moved,omitempty"`
}

// PositionCount is one entry of the repetition table.
type PositionCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// HistoryRecord is the JSON form of chess.MoveRecord.
type HistoryRecord struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Moved      Piece  `json:"moved"`
	Captured   *Piece `json:"captured,omitempty"`
	CapturedAt string `json:"capturedAt"`
	Special    string `json:"special,omitempty"`
	Promoted   *Piece `json:"promoted,omitempty"`
	RookFrom   string `json:"rookFrom,omitempty"`
	RookTo     string `json:"rookTo,omitempty"`
	Rook       *Piece `json:"rook,omitempty"`

	PrevLastMove    string `json:"prevLastMove"`
	PrevHasLastMove bool   `json:"prevHasLastMove,omitempty"`
	PrevHalfmove    int    `json:"prevHalfmove"`

	Key string `json:"key"`
}

// Save writes the board to w as indented JSON.
func Save(w io.Writer, board *chess.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(FromBoard(board)), "writing snapshot")
}

// Load reads a snapshot written by Save.
func Load(r io.Reader) (*chess.Board, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %v: %w", err, errors.ErrInvalidSnapshot)
	}
	return s.Board()
}

// SaveFile writes the board to the named file, replacing it.
func SaveFile(path string, board *chess.Board) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Save(f, board)
}

// LoadFile reads a board from the named file.
func LoadFile(path string) (*chess.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	defer f.Close()
	return Load(f)
}

// FromBoard captures the complete state of board.
func FromBoard(board *chess.Board) *Snapshot {
	s := &Snapshot{
		Version:       Version,
		StartFEN:      board.StartFEN,
		Turn:          colourName(board.Turn),
		GameOver:      board.GameOver,
		HalfmoveClock: board.HalfmoveClock,
	}
	if board.HasLastMove {
		s.LastMove = board.LastMove.String()
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			if p := board.Get(sq); !p.IsEmpty() {
				s.Pieces = append(s.Pieces, PlacedPiece{Square: sq.String(), Piece: pieceOf(p)})
			}
		}
	}

	counts := make(map[string]int, len(board.PositionHistory))
	for k, n := range board.PositionHistory {
		counts[k.String()] = n
	}
	keys := maps.Keys(counts)
	slices.Sort(keys)
	for _, k := range keys {
		s.Positions = append(s.Positions, PositionCount{Key: k, Count: counts[k]})
	}

	for i := range board.History {
		s.History = append(s.History, recordOf(&board.History[i]))
	}
	return s
}

func recordOf(r *chess.MoveRecord) HistoryRecord {
	h := HistoryRecord{
		From:            r.From.String(),
		To:              r.To.String(),
		Moved:           pieceOf(r.Moved),
		CapturedAt:      r.CapturedAt.String(),
		PrevLastMove:    r.PrevLastMove.String(),
		PrevHasLastMove: r.PrevHasLastMove,
		PrevHalfmove:    r.PrevHalfmove,
		Key:             r.Key.String(),
	}
	if r.Special != chess.NoSpecial {
		h.Special = r.Special.String()
	}
	h.Captured = optionalPiece(r.Captured)
	h.Promoted = optionalPiece(r.Promoted)
	if r.Special == chess.Castling {
		h.RookFrom = r.RookFrom.String()
		h.RookTo = r.RookTo.String()
		h.Rook = optionalPiece(r.Rook)
	}
	return h
}

func pieceOf(p chess.Piece) Piece {
	return Piece{Letter: p.String(), Moved: p.HasMoved}
}

func optionalPiece(p chess.Piece) *Piece {
	if p.IsEmpty() {
		return nil
	}
	jp := pieceOf(p)
	return &jp
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
