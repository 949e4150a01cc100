package sink

import (
	"encoding/hex"
	"fmt"
	"io"
)

// ConsoleSink hex-dumps frames to a writer, one block per frame.
type ConsoleSink struct {
	w io.Writer
	n int
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) Write(frame []byte) error {
	s.n++
	_, err := fmt.Fprintf(s.w, "frame %d (%d bytes)\n%s", s.n, len(frame), hex.Dump(frame))
	return err
}

// Count reports how many frames have been written so far.
func (s *ConsoleSink) Count() int {
	return s.n
}

func (s *ConsoleSink) Close() error {
	return nil
}
