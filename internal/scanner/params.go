// Package scanner implements the header scanner (C3) and record
// scanner (C4): the byte-level state machines that turn one line of a
// chunk buffer into a row of packed tokens.
//
// The record scanner is the hardest component in the pipeline. It is
// split into two passes per field, both grounded on the teacher's
// position-walking parsers (internal/fastparser/{chunked,zerocopy}.go
// in the retrieved shape-csv sources):
//
//  1. span-finding, a streaming walk that locates a field's byte range
//     honoring quoting, escaped quotes, trimming and delimiters, and
//     that can legitimately run out of buffer mid-field (only a quoted
//     field may span a chunk boundary; framer.Frame guarantees an
//     unquoted line is always fully buffered before scanning starts);
//  2. shape classification, a non-suspending walk over the now-complete
//     field bytes that assigns the INTEGER/FLOAT/BOOL/STRING/MISSING
//     kind per the grammar in spec section 4.4.
package scanner

import "errors"

// ErrNeedMoreBytes is returned by ScanRecord when the only unfinished
// candidate is a quoted field whose closing quote lies past the end
// of the currently buffered data. The caller (the chunk driver) must
// grow/refill the buffer via the framer and retry the scan from the
// same starting position.
var ErrNeedMoreBytes = errors.New("scanner: need more bytes")

// Params freezes the configuration a scan call honors. It never
// changes mid-parse; the chunk driver builds one Params from
// ReaderOptions and reuses it for every chunk.
type Params struct {
	Delim byte
	// Quote is the quote byte. NoQuote disables quoting entirely.
	Quote   byte
	NoQuote bool
	Trim    bool
	// LZString treats leading-zero numerics as strings instead of
	// numbers (e.g. "007" stays a string).
	LZString  bool
	SkipBlank bool
	// Comment, when non-empty, marks a whole-line comment prefix. It
	// never contains a line break (enforced at options validation).
	Comment []byte
}

const asciiSpace = ' '

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool { return b == asciiSpace }
