package engine

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "", 0)

// SetLogger directs engine diagnostics (malformed boards, rejected moves)
// to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
