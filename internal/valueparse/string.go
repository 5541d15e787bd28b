package valueparse

import "github.com/shapestone/shape-dlm/internal/scanner"

// ParsePlainString materializes field, which the caller has already
// established is not quoted, as an owned string. It goes through the
// column's string cache first so repeated values in low-cardinality
// text columns share one allocation.
func ParsePlainString(field []byte, cache *StringCache) string {
	if cache != nil {
		if s, ok := cache.Lookup(field); ok {
			return s
		}
	}
	s := string(field)
	if cache != nil {
		cache.Insert(s)
	}
	return s
}

// ParseQuotedString walks field (the raw span between quotes, still
// containing any doubled quote bytes) and collapses each doubled
// quote into one, returning an owned string. hadEscape lets the
// caller skip the walk entirely for the common case of a quoted field
// with no embedded quotes.
func ParseQuotedString(field []byte, quote byte, hadEscape bool, cache *StringCache) string {
	if !hadEscape {
		return ParsePlainString(field, cache)
	}
	buf := scanner.GetScratch()
	defer scanner.PutScratch(buf)
	for i := 0; i < len(field); i++ {
		buf = append(buf, field[i])
		if field[i] == quote && i+1 < len(field) && field[i+1] == quote {
			i++
		}
	}
	return ParsePlainString(buf, cache)
}
