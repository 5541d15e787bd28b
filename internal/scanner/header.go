package scanner

// ScanHeader splits the first line of buf into raw field byte spans
// (each aliasing buf). Unlike ScanRecord it never suspends: a header
// line that isn't fully buffered yet is the chunk driver's problem to
// solve by growing the initial read, not the header scanner's, and an
// unterminated quote anywhere in it is a fatal MultilineHeaderError
// rather than an ErrNeedMoreBytes retry. It performs no type
// classification and no column-count enforcement; every field is a
// plain or quoted string.
func ScanHeader(buf []byte, pos int, params Params) (names [][]byte, newPos int, err error) {
	p := pos
	for {
		contentStart, field, _, hadEscape, next, term, ferr := scanField(buf, p, params)
		if ferr == ErrNeedMoreBytes {
			return nil, pos, &MultilineHeaderError{}
		}
		if ferr != nil {
			return nil, pos, ferr
		}
		if hadEscape {
			field = unescapeQuotes(field, params.Quote)
		} else {
			field = buf[contentStart : contentStart+len(field)]
		}
		names = append(names, field)
		p = next
		if term == termEOL {
			break
		}
	}
	return names, p, nil
}

// unescapeQuotes collapses doubled quote bytes into single ones. It
// always allocates a fresh slice: the header is small and read once,
// so there's no reuse pressure worth a pool here (compare the record
// scanner's value parsers, which do pool their scratch buffers).
func unescapeQuotes(field []byte, quote byte) []byte {
	out := make([]byte, 0, len(field))
	for i := 0; i < len(field); i++ {
		out = append(out, field[i])
		if field[i] == quote && i+1 < len(field) && field[i+1] == quote {
			i++
		}
	}
	return out
}

// SplitPreview is a lightweight helper for the dialect sniffer: it
// counts how many top-level (unquoted) occurrences of sep appear in
// line, used to score candidate delimiters against a sample without
// running the full scanner.
func SplitPreview(line []byte, sep byte, quote byte) int {
	count := 0
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == quote:
			inQuote = !inQuote
		case line[i] == sep && !inQuote:
			count++
		}
	}
	return count
}

// IndexUnquotedNewline reports the index of the first unquoted '\n' in
// buf starting at pos, or -1 if the whole slice is inside an
// unterminated quote (used by callers that need to bound a header
// probe without invoking the full field scanner).
func IndexUnquotedNewline(buf []byte, pos int, quote byte) int {
	inQuote := false
	for i := pos; i < len(buf); i++ {
		switch buf[i] {
		case quote:
			inQuote = !inQuote
		case '\n':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}
