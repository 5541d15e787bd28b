package scanner

import (
	"strings"

	"github.com/shapestone/shape-dlm/internal/token"
)

// classifyShape walks a complete, already-trimmed field's bytes and
// returns its syntactic kind, following the BEGIN -> ... -> accept
// state progression from spec section 4.4:
//
//	BEGIN -> SIGN? -> ZERO|INTEGER -> DOT|POINT_FLOAT -> EXPONENT... -> FLOAT
//	BEGIN -> SPECIAL_FLOAT (inf/infinity/nan, one lookahead)
//	BEGIN -> BOOL (t/true/f/false, one lookahead)
//	BEGIN -> STRING (anything else)
//
// It never suspends: by the time it runs, the field's bytes are known
// to be entirely present in the buffer (unquoted fields cannot cross a
// chunk boundary; quoted fields have already been fully collected by
// the span finder before classification is attempted).
func classifyShape(field []byte, lzstring bool) token.Kind {
	if len(field) == 0 {
		return token.Missing
	}
	if isNALiteral(field) {
		return token.Missing
	}
	if kind, ok := classifyNumeric(field, lzstring); ok {
		return kind
	}
	if kind, ok := classifySpecialFloat(field); ok {
		return kind
	}
	if kind, ok := classifyBool(field); ok {
		return kind
	}
	return token.String
}

func isNALiteral(field []byte) bool {
	return len(field) == 2 && field[0] == 'N' && field[1] == 'A'
}

// classifyNumeric implements the BEGIN/SIGN/ZERO/INTEGER/DOT/
// POINT_FLOAT/EXPONENT* portion of the state table. ok is false when
// the field doesn't even start like a number (no leading sign, digit,
// or dot), so the caller can fall through to the special-float/bool
// checks.
func classifyNumeric(field []byte, lzstring bool) (token.Kind, bool) {
	i := 0
	n := len(field)

	if i < n && (field[i] == '+' || field[i] == '-') {
		i++
	}
	if i >= n {
		return 0, false
	}
	if !isDigit(field[i]) && field[i] != '.' {
		return 0, false
	}

	digitsStart := i
	for i < n && isDigit(field[i]) {
		i++
	}
	intDigits := i - digitsStart
	leadingZero := intDigits > 1 && field[digitsStart] == '0'

	if intDigits == 0 {
		// No integer digits: only a leading '.' keeps this numeric-shaped.
		if i >= n || field[i] != '.' {
			return 0, false
		}
		return classifyAfterPoint(field, i, true)
	}

	if lzstring && leadingZero {
		return token.String, true
	}

	if i < n && field[i] == '.' {
		return classifyAfterPoint(field, i, false)
	}

	if i < n && (field[i] == 'e' || field[i] == 'E') {
		end, ok := consumeExponent(field, i)
		if !ok || end != n {
			return token.String, true
		}
		return token.Float, true
	}

	if i != n {
		return token.String, true
	}
	// An integer literal is also a valid float, so its kind carries
	// both compatibility bits; classifyAfterPoint and the exponent
	// branches above return Float only, since a non-integer numeral
	// isn't integer-compatible.
	return token.Integer | token.Float, true
}

// classifyAfterPoint consumes fractional digits and an optional
// exponent starting at the '.' found at index dot. requireDigit
// demands at least one fractional digit (used when there were no
// leading integer digits, i.e. a field like ".5").
func classifyAfterPoint(field []byte, dot int, requireDigit bool) (token.Kind, bool) {
	n := len(field)
	i := dot + 1
	fracStart := i
	for i < n && isDigit(field[i]) {
		i++
	}
	if requireDigit && i == fracStart {
		return token.String, true
	}
	if i < n && (field[i] == 'e' || field[i] == 'E') {
		end, ok := consumeExponent(field, i)
		if !ok || end != n {
			return token.String, true
		}
		return token.Float, true
	}
	if i != n {
		return token.String, true
	}
	return token.Float, true
}

// consumeExponent consumes 'e'/'E', an optional sign, and one or more
// digits starting at index e. It returns the index one past the last
// digit and whether at least one digit was found.
func consumeExponent(field []byte, e int) (int, bool) {
	n := len(field)
	i := e + 1
	if i < n && (field[i] == '+' || field[i] == '-') {
		i++
	}
	start := i
	for i < n && isDigit(field[i]) {
		i++
	}
	if i == start {
		return i, false
	}
	return i, true
}

// classifySpecialFloat recognizes inf/infinity/nan, case-insensitive,
// with an optional leading sign, via a single whole-field lookahead
// rather than a byte-by-byte transition per letter.
func classifySpecialFloat(field []byte) (token.Kind, bool) {
	s := field
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return 0, false
	}
	switch strings.ToLower(string(s)) {
	case "inf", "infinity", "nan":
		return token.Float, true
	default:
		return 0, false
	}
}

// classifyBool recognizes t/true/f/false, case-insensitive, via a
// single whole-field lookahead.
func classifyBool(field []byte) (token.Kind, bool) {
	switch strings.ToLower(string(field)) {
	case "t", "true", "f", "false":
		return token.Bool, true
	default:
		return 0, false
	}
}
