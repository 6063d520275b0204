package persist

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
)

// decoder accumulates every problem found while restoring a snapshot.
type decoder struct {
	errs *multierror.Error
}

func (d *decoder) fail(format string, args ...interface{}) {
	d.errs = multierror.Append(d.errs, fmt.Errorf(format, args...))
}

func (d *decoder) square(field, text string) chess.Square {
	sq, err := chess.ParseSquare(text)
	if err != nil {
		d.fail("%s: %v", field, err)
	}
	return sq
}

func (d *decoder) move(field, text string) chess.Move {
	m, err := chess.ParseMove(text)
	if err != nil {
		d.fail("%s: %v", field, err)
	}
	return m
}

func (d *decoder) piece(field string, p Piece) chess.Piece {
	if len(p.Letter) != 1 {
		d.fail("%s: piece %q", field, p.Letter)
		return chess.Piece{}
	}
	c := p.Letter[0]
	kind := chess.KindFromLetter(c)
	if kind == chess.NoKind {
		d.fail("%s: piece %q", field, p.Letter)
		return chess.Piece{}
	}
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
	}
	return chess.Piece{Colour: colour, Kind: kind, HasMoved: p.Moved}
}

func (d *decoder) optionalPiece(field string, p *Piece) chess.Piece {
	if p == nil {
		return chess.Piece{}
	}
	return d.piece(field, *p)
}

func (d *decoder) key(field, text string) chess.PositionKey {
	k, err := chess.ParsePositionKey(text)
	if err != nil {
		d.fail("%s: %v", field, err)
	}
	return k
}

// Board restores the snapshot. All problems are reported together in an
// error wrapping ErrInvalidSnapshot.
func (s *Snapshot) Board() (*chess.Board, error) {
	d := &decoder{}
	board := chess.NewBoard()

	if s.Version != Version {
		d.fail("version %d, want %d", s.Version, Version)
	}
	switch s.Turn {
	case "white":
		board.Turn = chess.White
	case "black":
		board.Turn = chess.Black
	default:
		d.fail("turn %q", s.Turn)
	}
	board.GameOver = s.GameOver
	board.StartFEN = s.StartFEN
	if s.LastMove != "" {
		board.LastMove = d.move("lastMove", s.LastMove)
		board.HasLastMove = true
	}
	if s.HalfmoveClock < 0 {
		d.fail("halfmove clock %d", s.HalfmoveClock)
	}
	board.HalfmoveClock = s.HalfmoveClock

	for i, pp := range s.Pieces {
		field := fmt.Sprintf("pieces[%d]", i)
		sq := d.square(field, pp.Square)
		if !board.Get(sq).IsEmpty() {
			d.fail("%s: %s occupied twice", field, pp.Square)
		}
		board.Set(sq, d.piece(field, pp.Piece))
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := len(board.FindKings(colour)); n != 1 {
			d.fail("%v has %d kings", colour, n)
		}
	}

	for i, pc := range s.Positions {
		field := fmt.Sprintf("positions[%d]", i)
		if pc.Count < 1 {
			d.fail("%s: count %d", field, pc.Count)
		}
		board.PositionHistory[d.key(field, pc.Key)] = pc.Count
	}
	if board.PositionHistory[board.PositionKey()] < 1 {
		d.fail("current position missing from repetition table")
	}

	if len(s.History) > 0 {
		board.History = make([]chess.MoveRecord, 0, len(s.History))
	}
	for i, h := range s.History {
		board.History = append(board.History, d.record(fmt.Sprintf("history[%d]", i), h))
	}

	if d.errs.ErrorOrNil() != nil {
		return nil, errors.Wrap(fmt.Errorf("%w: %v", errors.ErrInvalidSnapshot, d.errs), "restoring board")
	}
	return board, nil
}

func (d *decoder) record(field string, h HistoryRecord) chess.MoveRecord {
	r := chess.MoveRecord{
		From:            d.square(field+".from", h.From),
		To:              d.square(field+".to", h.To),
		Moved:           d.piece(field+".moved", h.Moved),
		Captured:        d.optionalPiece(field+".captured", h.Captured),
		CapturedAt:      d.square(field+".capturedAt", h.CapturedAt),
		Promoted:        d.optionalPiece(field+".promoted", h.Promoted),
		PrevLastMove:    d.move(field+".prevLastMove", h.PrevLastMove),
		PrevHasLastMove: h.PrevHasLastMove,
		PrevHalfmove:    h.PrevHalfmove,
		Key:             d.key(field+".key", h.Key),
	}

	switch h.Special {
	case "":
		r.Special = chess.NoSpecial
	case chess.EnPassant.String():
		r.Special = chess.EnPassant
	case chess.Promotion.String():
		r.Special = chess.Promotion
	case chess.Castling.String():
		r.Special = chess.Castling
		r.RookFrom = d.square(field+".rookFrom", h.RookFrom)
		r.RookTo = d.square(field+".rookTo", h.RookTo)
		r.Rook = d.optionalPiece(field+".rook", h.Rook)
	default:
		d.fail("%s.special: %q", field, h.Special)
	}
	return r
}
