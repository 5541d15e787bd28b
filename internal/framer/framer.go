// Package framer implements the chunk driver's byte buffer: it pulls
// bytes from a source until it can hand back a slice that ends on a
// safe record boundary (a line terminator other than a trailing CR
// whose possible LF has not arrived yet), growing on demand for long
// records and long multi-line quoted fields.
//
// It is adapted from the teacher's chunked-parser buffer walk
// (internal/fastparser/chunked.go in the retrieved shape-csv sources):
// the same position/length bookkeeping and CRLF handling, generalized
// into a standalone, source-agnostic component the record scanner
// calls back into when it runs out of buffer mid-field.
package framer

import (
	"errors"
	"fmt"
	"io"
)

// HardLimit is the largest buffer the framer will grow to (2^36 - 1
// bytes), matching the packed token's addressable range.
const HardLimit = 1<<36 - 1

// ErrLineTooLong is returned when a single record would need a buffer
// larger than HardLimit to fit.
var ErrLineTooLong = errors.New("framer: record exceeds maximum chunk size")

// Framer owns a byte buffer that it fills from a source and slides as
// the caller consumes bytes from the front.
type Framer struct {
	src    io.Reader
	buf    []byte
	filled int  // bytes in buf[0:filled] that are valid
	eof    bool // src returned io.EOF
}

// New creates a Framer that reads from src into a buffer starting at
// the given size (rounded to at least 4096 bytes).
func New(src io.Reader, initialSize int) *Framer {
	if initialSize < 4096 {
		initialSize = 4096
	}
	return &Framer{
		src: src,
		buf: make([]byte, initialSize),
	}
}

// Frame returns the currently buffered bytes together with the index
// of the last line terminator within them, pulling more data and
// growing the buffer as needed until a terminator is found or the hard
// limit is hit (ErrLineTooLong). Once the source is exhausted, the
// whole remaining buffer is returned, with a synthetic LF appended if
// the last byte isn't already '\n'; an exhausted, empty buffer yields
// an empty slice and lastNL -1.
//
// The returned slice aliases the Framer's internal buffer; it is only
// valid until the next call to Frame or Consume.
func (f *Framer) Frame() (data []byte, lastNL int, err error) {
	for {
		if f.eof {
			if f.filled == 0 {
				return f.buf[:0], -1, nil
			}
			// Synthesize a trailing LF so every scanner sees a
			// uniform "buffer ends on a newline" invariant.
			if f.buf[f.filled-1] != '\n' {
				f.ensureCapacity(f.filled + 1)
				f.buf[f.filled] = '\n'
				f.filled++
			}
			return f.buf[:f.filled], f.filled - 1, nil
		}
		if idx, ok := f.findTerminator(); ok {
			return f.buf[:f.filled], idx, nil
		}
		if err := f.fill(); err != nil {
			return nil, 0, err
		}
	}
}

// findTerminator scans backward from the end of the filled region for
// LF or CR. A trailing lone CR is ambiguous (could be the first byte
// of a CRLF pair that hasn't arrived yet) unless the source is
// already at EOF, so it is not reported as a safe boundary.
func (f *Framer) findTerminator() (int, bool) {
	for i := f.filled - 1; i >= 0; i-- {
		switch f.buf[i] {
		case '\n':
			return i, true
		case '\r':
			if i == f.filled-1 {
				// Ambiguous: need one more byte to know if this is
				// bare CR or the start of CRLF.
				if f.eof {
					return i, true
				}
				return 0, false
			}
			return i, true
		}
	}
	return 0, false
}

// fill pulls more bytes from the source, growing the buffer first if
// there is no write margin left.
func (f *Framer) fill() error {
	if f.filled == len(f.buf) {
		if err := f.grow(); err != nil {
			return err
		}
	}
	n, err := f.src.Read(f.buf[f.filled:])
	f.filled += n
	if err != nil {
		if err == io.EOF {
			f.eof = true
			return nil
		}
		return err
	}
	if n == 0 {
		// A well-behaved Reader shouldn't return (0, nil) repeatedly,
		// but guard against a spinning loop by treating it as EOF.
		f.eof = true
	}
	return nil
}

// grow doubles the buffer, up to HardLimit.
func (f *Framer) grow() error {
	newSize := len(f.buf) * 2
	if newSize > HardLimit {
		if len(f.buf) >= HardLimit {
			return fmt.Errorf("%w: limit is %d bytes", ErrLineTooLong, HardLimit)
		}
		newSize = HardLimit
	}
	f.ensureCapacity(newSize)
	return nil
}

// ensureCapacity grows the backing array to at least n bytes without
// touching the filled region, copying only if a reallocation is
// actually required.
func (f *Framer) ensureCapacity(n int) {
	if n <= len(f.buf) {
		return
	}
	if n > HardLimit {
		n = HardLimit
	}
	next := make([]byte, n)
	copy(next, f.buf[:f.filled])
	f.buf = next
}

// Consume drops the first n bytes of the buffered region (the record
// or records the driver has already scanned), sliding any remaining
// bytes to the front so write margin is restored without an
// unconditional copy on every call.
func (f *Framer) Consume(n int) {
	if n <= 0 {
		return
	}
	if n >= f.filled {
		f.filled = 0
		return
	}
	copy(f.buf, f.buf[n:f.filled])
	f.filled -= n
}

// Len reports how many bytes are currently buffered.
func (f *Framer) Len() int { return f.filled }

// Pull forces one more read from the source, growing the buffer first
// if there's no write margin. Unlike Frame, it doesn't stop once a
// terminator is already present: callers that hit ErrNeedMoreBytes
// deep inside an already-terminated frame (an unclosed quoted field
// whose content runs past the nearest line terminator) use this to
// keep growing until the actual field boundary shows up or the hard
// limit is reached.
func (f *Framer) Pull() error { return f.fill() }

// Bytes returns the full currently buffered region, unlike Frame
// which also reports where the last known-safe terminator sits. It
// aliases the Framer's internal buffer under the same lifetime rules
// as Frame's return value.
func (f *Framer) Bytes() []byte { return f.buf[:f.filled] }

// AtEOF reports whether the source has already returned io.EOF. Once
// true and Len() is 0, Frame returns an empty slice with lastNL -1;
// callers that frame in a loop check AtEOF() && Len() == 0 after each
// Frame call to know when to stop.
func (f *Framer) AtEOF() bool { return f.eof }
