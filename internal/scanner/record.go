package scanner

import (
	"bytes"

	"github.com/shapestone/shape-dlm/internal/token"
)

// ScanRecord fills one row of a token matrix starting at pos in buf,
// enforcing ncols per the record scanner's column-count policy (spec
// section 4.4): a short record is legal by exactly one missing
// trailing cell, anything shorter or longer is ColumnCountError.
//
// It returns the position just past the record's terminator, whether
// the line was skipped as a comment or blank line (row is left
// untouched in that case), and an error. ErrNeedMoreBytes means the
// caller must grow the buffer via the framer and retry the entire
// call with the same pos.
func ScanRecord(row token.Row, buf []byte, pos int, ncols int, params Params) (newPos int, skipped bool, err error) {
	lineEnd, nl, ok := findLineEnd(buf, pos)
	if !ok {
		return pos, false, ErrNeedMoreBytes
	}
	content := buf[pos:lineEnd]
	if !startsWithQuote(content, params) {
		if len(params.Comment) > 0 && bytes.HasPrefix(content, params.Comment) {
			return nl + 1, true, nil
		}
		if params.SkipBlank && isBlank(content) {
			return nl + 1, true, nil
		}
	}

	p := pos
	col := 0
	for {
		if col >= ncols {
			return pos, false, &ColumnCountError{Got: col + 1, Want: ncols}
		}
		contentStart, field, wasQuoted, hadEscape, next, term, ferr := scanField(buf, p, params)
		if ferr != nil {
			if ibe, ok := ferr.(*InvalidByteError); ok {
				return pos, false, &InvalidByteError{Column: col, Byte: ibe.Byte, Reason: ibe.Reason}
			}
			return pos, false, ferr
		}
		if len(field) > token.MaxLength {
			return pos, false, &FieldTooLongError{Length: len(field)}
		}
		kind := fieldKind(field, wasQuoted, hadEscape, params.LZString)
		row[col] = token.Pack(kind, uint64(contentStart+1), uint64(len(field)))
		col++
		p = next
		if term == termEOL {
			break
		}
	}

	switch {
	case col == ncols:
		// complete record
	case col == ncols-1:
		row[col] = token.Pack(token.Missing, uint64(p+1), 0)
	default:
		return pos, false, &ColumnCountError{Got: col, Want: ncols}
	}
	return p, false, nil
}

// fieldKind derives a token.Kind for a fully-scanned field. A quoted
// field is always String or Missing: quoting is the caller's explicit
// signal that the content is text, even when it looks numeric (a
// quoted "007" is a string, not a leading-zero integer).
func fieldKind(field []byte, wasQuoted, hadEscape, lzstring bool) token.Kind {
	if wasQuoted {
		if len(field) == 0 || isNALiteral(field) {
			return token.Missing
		}
		if hadEscape {
			return token.String | token.Quoted
		}
		return token.String
	}
	return classifyShape(field, lzstring)
}

// findLineEnd returns, for the physical line starting at pos, nl, the
// index of the '\n' terminating it, and lineEnd, where the line's
// content ends (the index of a CR right before that '\n', else nl). ok
// is false if no terminator is present yet (framer.Frame guarantees
// one exists once a full chunk is assembled, so this only fires
// mid-fill).
func findLineEnd(buf []byte, pos int) (lineEnd, nl int, ok bool) {
	idx := bytes.IndexByte(buf[pos:], '\n')
	if idx < 0 {
		return 0, 0, false
	}
	nl = pos + idx
	end := nl
	if end > pos && buf[end-1] == '\r' {
		end--
	}
	return end, nl, true
}

// startsWithQuote reports whether content begins (after optional
// leading trim-space) with the quote byte, so the comment/blank
// pre-check can defer to full field scanning instead of peeking at a
// physical line that might just be the first line of a multi-line
// quoted field.
func startsWithQuote(content []byte, params Params) bool {
	if params.NoQuote {
		return false
	}
	i := 0
	if params.Trim {
		for i < len(content) && isSpace(content[i]) {
			i++
		}
	}
	return i < len(content) && content[i] == params.Quote
}

// isBlank reports whether line holds only spaces and tabs, the same
// whitespace definition preprocess.ConsumeLeading uses for its
// pre-header blank-line skip, so a tab-only line is treated
// consistently regardless of where in the file it falls. It is
// deliberately broader than isSpace, which governs field trimming.
func isBlank(line []byte) bool {
	for _, b := range line {
		if b != asciiSpace && b != '\t' {
			return false
		}
	}
	return true
}
