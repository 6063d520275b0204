package output

import (
	"io"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/persist"
)

// GameWriter is the interface for writing finished games to output.
// Different implementations handle different formats (PGN, JSON snapshot).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(board *chess.Board) error

	// Close closes the writer and releases any resources.
	Close() error
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.Config) *PGNWriter {
	return &PGNWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(board *chess.Board) error {
	var out *config.OutputConfig
	if pw.cfg != nil {
		out = pw.cfg.Output
	}
	return WritePGN(pw.w, board, out)
}

// Close closes the PGN writer. The underlying writer is left open.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games as persist snapshots, one JSON document each.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame writes the game's snapshot.
func (jw *JSONWriter) WriteGame(board *chess.Board) error {
	return persist.Save(jw.w, board)
}

// Close closes the JSON writer. The underlying writer is left open.
func (jw *JSONWriter) Close() error {
	return nil
}
