package scanner

import "unicode/utf8"

const (
	termDelim = iota + 1
	termEOL
)

// scanField locates one field's byte span starting at pos, honoring
// quoting, trimming, and delimiters. It returns the absolute start
// offset and content bytes of the field (the raw span between quotes
// for a quoted field, still containing any doubled quotes), whether
// the field was quoted, whether it contained at least one doubled
// quote, the position just past the field's terminator, and which
// kind of terminator ended it.
//
// If a quoted field's closing quote is not yet in the buffer, it
// returns ErrNeedMoreBytes and the caller must grow the buffer and
// retry the whole record from its original starting position.
func scanField(buf []byte, pos int, params Params) (contentStart int, content []byte, wasQuoted, hadEscape bool, newPos, term int, err error) {
	p := pos
	if params.Trim {
		for p < len(buf) && isSpace(buf[p]) {
			p++
		}
	}

	if !params.NoQuote && p < len(buf) && buf[p] == params.Quote {
		p++ // opening quote
		start := p
		for {
			idx := indexByteFrom(buf, p, params.Quote)
			if idx < 0 {
				return 0, nil, false, false, pos, 0, ErrNeedMoreBytes
			}
			if idx+1 >= len(buf) {
				// Ambiguous: don't yet know if the next byte doubles
				// the quote or closes the field.
				return 0, nil, false, false, pos, 0, ErrNeedMoreBytes
			}
			if buf[idx+1] == params.Quote {
				hadEscape = true
				p = idx + 2
				continue
			}
			contentStart = start
			content = buf[start:idx]
			p = idx + 1
			break
		}
		if params.Trim {
			for p < len(buf) && isSpace(buf[p]) {
				p++
			}
		}
		wasQuoted = true
	} else {
		start := p
		for p < len(buf) {
			c := buf[p]
			if c == params.Delim || c == '\n' || c == '\r' {
				break
			}
			if !params.NoQuote && c == params.Quote {
				return 0, nil, false, false, pos, 0, &InvalidByteError{Byte: c, Reason: "quote in unquoted field"}
			}
			if c >= 0x80 {
				r, size := utf8.DecodeRune(buf[p:])
				if r == utf8.RuneError && size <= 1 {
					return 0, nil, false, false, pos, 0, &InvalidByteError{Byte: c, Reason: "invalid UTF-8 sequence"}
				}
				p += size
				continue
			}
			p++
		}
		end := p
		if params.Trim {
			for end > start && isSpace(buf[end-1]) {
				end--
			}
		}
		contentStart = start
		content = buf[start:end]
	}

	if p >= len(buf) {
		return 0, nil, false, false, pos, 0, ErrNeedMoreBytes
	}
	switch {
	case buf[p] == params.Delim:
		newPos = p + 1
		term = termDelim
	case buf[p] == '\r':
		if p+1 < len(buf) && buf[p+1] == '\n' {
			newPos = p + 2
		} else if p+1 >= len(buf) {
			return 0, nil, false, false, pos, 0, ErrNeedMoreBytes
		} else {
			newPos = p + 1
		}
		term = termEOL
	case buf[p] == '\n':
		newPos = p + 1
		term = termEOL
	default:
		return 0, nil, false, false, pos, 0, &InvalidByteError{Byte: buf[p], Reason: "unexpected byte after quoted field"}
	}
	return contentStart, content, wasQuoted, hadEscape, newPos, term, nil
}

func indexByteFrom(buf []byte, from int, b byte) int {
	for i := from; i < len(buf); i++ {
		if buf[i] == b {
			return i
		}
	}
	return -1
}
