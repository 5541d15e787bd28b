// Package preprocess implements the pre-processing pass (C9) that
// runs before the header and the main chunk loop: skipping leading
// lines, blank lines and comments, guessing the delimiter when unset,
// reconciling a header/first-row column-count mismatch, and
// normalizing column names.
package preprocess

import (
	"bytes"
	"unicode"
)

// delimCandidates lists the delimiters the guesser scores, in the
// tie-break order the spec requires.
var delimCandidates = []byte{',', '\t', '|', ';', ':'}

// GuessDelimiter counts occurrences of each candidate delimiter up to
// the first newline in sample and returns the most frequent one,
// breaking ties by delimCandidates' order and defaulting to comma
// when every candidate has a zero count.
func GuessDelimiter(sample []byte) byte {
	end := bytes.IndexByte(sample, '\n')
	if end < 0 {
		end = len(sample)
	}
	line := sample[:end]

	best := byte(',')
	bestCount := -1
	for _, d := range delimCandidates {
		count := bytes.Count(line, []byte{d})
		if count > bestCount {
			bestCount = count
			best = d
		}
	}
	if bestCount <= 0 {
		return ','
	}
	return best
}

// ConsumeLeading skips past leading blank lines and comment lines
// starting at pos in buf, returning the position of the first
// substantive line. ok is false if the scan ran off the end of the
// currently buffered data without finding one, meaning the caller
// must grow the buffer and retry.
func ConsumeLeading(buf []byte, pos int, comment []byte, skipBlank bool) (newPos int, ok bool) {
	p := pos
	for {
		idx := bytes.IndexByte(buf[p:], '\n')
		if idx < 0 {
			return p, false
		}
		end := p + idx
		content := buf[p:end]
		if end > p && content[len(content)-1] == '\r' {
			content = content[:len(content)-1]
		}
		if len(comment) > 0 && bytes.HasPrefix(content, comment) {
			p = end + 1
			continue
		}
		if skipBlank && isBlank(content) {
			p = end + 1
			continue
		}
		return p, true
	}
}

func isBlank(line []byte) bool {
	for _, b := range line {
		if b != ' ' && b != '\t' {
			return false
		}
	}
	return true
}

// ReconcileHeaderCount implements the column-count arithmetic rule:
// if the header names exactly one fewer than the first data row's
// cell count, an anonymous row-name column is prepended
// ("UNNAMED_0"); any other mismatch is the caller's problem to report
// as fatal (it returns ok=false and leaves names untouched).
func ReconcileHeaderCount(names []string, firstRowCount int) (out []string, ok bool) {
	if len(names) == firstRowCount {
		return names, true
	}
	if firstRowCount == len(names)+1 {
		out = make([]string, 0, firstRowCount)
		out = append(out, "UNNAMED_0")
		out = append(out, names...)
		return out, true
	}
	return names, false
}

// FillUnnamed replaces empty header slots with "UNNAMED_{i}", 1-based
// on position within the header.
func FillUnnamed(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if n == "" {
			out[i] = unnamedLabel(i + 1)
		} else {
			out[i] = n
		}
	}
	return out
}

func unnamedLabel(i int) string {
	return "UNNAMED_" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

// reservedKeywords are identifier forms that NormalizeName avoids
// producing bare, since callers commonly hand normalized names to a
// struct-tag or SQL-identifier context.
var reservedKeywords = map[string]bool{
	"type": true, "func": true, "var": true, "const": true,
	"select": true, "from": true, "where": true, "table": true,
}

// NormalizeName rewrites name into a valid identifier: non-identifier
// bytes become underscores, and a leading digit or reserved keyword
// gets an underscore prefix.
func NormalizeName(name string) string {
	if name == "" {
		return "_"
	}
	runes := []rune(name)
	for i, r := range runes {
		if !isIdentByte(r) {
			runes[i] = '_'
		}
	}
	out := string(runes)
	if len(out) > 0 && unicode.IsDigit(rune(out[0])) {
		out = "_" + out
	}
	if reservedKeywords[out] {
		out = "_" + out
	}
	return out
}

func isIdentByte(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
