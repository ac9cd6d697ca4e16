// Package stream provides the buffered request reader the transaction
// engine consumes lines through. It adds a pushback buffer on top of plain
// line scanning so a handler can look one line ahead and return it to the
// stream without desynchronizing later transactions.
package stream

import (
	"bufio"
	"io"
)

// Reader yields the request stream one line at a time, trailing terminator
// stripped. Exhaustion is reported through the ok result, never an error:
// the protocol ends on stream exhaustion, not on a sentinel line.
type Reader struct {
	sc       *bufio.Scanner
	pushback []string
}

// NewReader wraps an input stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next line. Pushed-back lines come first. ok is false
// once the underlying stream is exhausted.
func (r *Reader) Next() (line string, ok bool) {
	if len(r.pushback) > 0 {
		line = r.pushback[0]
		r.pushback = r.pushback[1:]
		return line, true
	}
	if r.sc.Scan() {
		return r.sc.Text(), true
	}
	return "", false
}

// PushBack returns a line to the front of the stream so the next call to
// Next yields it again. A line paired with ok=false (the end-of-stream
// sentinel from Next) is dropped.
func (r *Reader) PushBack(line string, ok bool) {
	if !ok {
		return
	}
	r.pushback = append([]string{line}, r.pushback...)
}

// Discard consumes and drops up to n lines, honoring pushback. It is how
// handlers stay stream-aligned when they reject before reading their full
// parameter shape.
func (r *Reader) Discard(n int) {
	for i := 0; i < n; i++ {
		if _, ok := r.Next(); !ok {
			return
		}
	}
}
