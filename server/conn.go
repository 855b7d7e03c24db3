package server

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	ErrConnectionReset = stderrors.New("connection reset by peer")
	ErrMessageTooLarge = stderrors.New("message too large")
)

const readChunk = 4 * 1024

// Reader splits a byte stream into messages using Frame.
type Reader struct {
	r   io.Reader
	buf []byte
	max int
}

// NewReader returns a Reader that fails once a pending message grows past
// max bytes. A max of zero disables the limit.
func NewReader(r io.Reader, max int) *Reader {
	return &Reader{r: r, max: max, buf: make([]byte, 0, readChunk)}
}

// ReadMessage returns the next message with surrounding whitespace removed.
// It returns io.EOF when the stream ends between messages and
// ErrConnectionReset when it ends in the middle of one.
func (r *Reader) ReadMessage() (string, error) {
	for {
		if n, ok := Frame(r.buf); ok {
			message := trim(string(r.buf[:n]))
			r.buf = r.buf[:copy(r.buf, r.buf[n:])]
			if message == "" {
				continue
			}
			return message, nil
		}
		if r.max > 0 && len(r.buf) > r.max {
			return "", fmt.Errorf("%w: more than %d bytes pending", ErrMessageTooLarge, r.max)
		}
		if err := r.fill(); err != nil {
			if err != io.EOF {
				return "", err
			}
			if trim(string(r.buf)) == "" {
				return "", io.EOF
			}
			return "", ErrConnectionReset
		}
	}
}

func (r *Reader) fill() error {
	if cap(r.buf)-len(r.buf) < readChunk {
		grown := make([]byte, len(r.buf), 2*cap(r.buf)+readChunk)
		copy(grown, r.buf)
		r.buf = grown
	}
	n, err := r.r.Read(r.buf[len(r.buf):cap(r.buf)])
	r.buf = r.buf[:len(r.buf)+n]
	if n > 0 {
		return nil
	}
	return err
}

// Pending is the number of buffered bytes not yet returned as a message.
func (r *Reader) Pending() int {
	return len(r.buf)
}

func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r < utf8.RuneSelf && isSpace(byte(r))
	})
}
