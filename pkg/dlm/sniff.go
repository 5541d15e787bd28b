package dlm

import (
	"bytes"

	"github.com/shapestone/shape-dlm/internal/preprocess"
)

// DialectGuess is an advisory best-effort read of a sample's shape.
// It is never authoritative: a caller-supplied ReaderOptions field
// always wins over anything Sniff guesses. Adapted from the teacher's
// pkg/csv/sniffer.go, restated against the columnar Table pipeline
// instead of the removed AST/schema layer.
type DialectGuess struct {
	Delimiter byte
	HasHeader bool
}

// Sniff inspects a sample of raw bytes (typically the first few KB of
// a source) and guesses its delimiter and whether the first line
// looks like a header rather than a data row.
func Sniff(sample []byte) DialectGuess {
	delim := preprocess.GuessDelimiter(sample)
	return DialectGuess{
		Delimiter: delim,
		HasHeader: looksLikeHeader(sample, delim),
	}
}

// looksLikeHeader compares the first two lines of the sample: if the
// first line's fields are mostly non-numeric while the second line
// has at least one numeric field, the first line is probably a
// header rather than a data row.
func looksLikeHeader(sample []byte, delim byte) bool {
	lines := bytes.SplitN(sample, []byte("\n"), 3)
	if len(lines) < 2 {
		return false
	}
	first := splitFields(lines[0], delim)
	second := splitFields(lines[1], delim)
	if len(first) == 0 {
		return false
	}

	firstNumeric := 0
	for _, f := range first {
		if looksNumeric(f) {
			firstNumeric++
		}
	}
	secondNumeric := 0
	for _, f := range second {
		if looksNumeric(f) {
			secondNumeric++
		}
	}
	return firstNumeric == 0 && secondNumeric > 0
}

func splitFields(line []byte, delim byte) [][]byte {
	line = bytes.TrimRight(line, "\r")
	if len(line) == 0 {
		return nil
	}
	return bytes.Split(line, []byte{delim})
}

func looksNumeric(field []byte) bool {
	field = bytes.TrimSpace(field)
	if len(field) == 0 {
		return false
	}
	i := 0
	if field[0] == '+' || field[0] == '-' {
		i++
	}
	sawDigit := false
	for ; i < len(field); i++ {
		c := field[i]
		if c >= '0' && c <= '9' {
			sawDigit = true
			continue
		}
		if c == '.' {
			continue
		}
		return false
	}
	return sawDigit
}
