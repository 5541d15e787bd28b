package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Format identifies a source's compression envelope, detected from
// its first six bytes.
type Format int

const (
	Plain Format = iota
	Gzip
	Zstd
	XZ
)

var magic = []struct {
	format Format
	bytes  []byte
}{
	{XZ, []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}},
	{Zstd, []byte{0x28, 0xB5, 0x2F, 0xFD}},
	{Gzip, []byte{0x1F, 0x8B}},
}

// ErrUnsupportedCompression is returned when the source is detected
// as xz-compressed: xz decoding has no available library collaborator
// in this project's dependency set, so detection stops short of
// decompression rather than shipping a hand-rolled decoder.
var ErrUnsupportedCompression = errors.New("source: xz compression detected but not supported")

// Detect peeks at up to six bytes of r without consuming them and
// returns the matched compression format alongside a Reader that
// still sees those bytes (an *bufio.Reader wrapping r, satisfying the
// "mark/reset via a small buffered adapter" requirement when the
// underlying source doesn't support it natively).
func Detect(r io.Reader) (Format, *bufio.Reader, error) {
	br := bufio.NewReaderSize(r, 4096)
	peek, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return Plain, br, fmt.Errorf("source: peek: %w", err)
	}
	for _, m := range magic {
		if len(peek) >= len(m.bytes) && bytesEqual(peek[:len(m.bytes)], m.bytes) {
			return m.format, br, nil
		}
	}
	return Plain, br, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Decompress wraps r in the codec matching format. The returned
// Reader yields the plain-text UTF-8 byte stream the rest of the
// pipeline assumes.
func Decompress(r io.Reader, format Format) (io.Reader, error) {
	switch format {
	case Plain:
		return r, nil
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case XZ:
		return nil, ErrUnsupportedCompression
	default:
		return nil, fmt.Errorf("source: unknown compression format %d", format)
	}
}
