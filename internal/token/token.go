// Package token implements the packed field descriptor used by the
// scanner: a single 64-bit value carrying a field's syntactic shape,
// its start offset in the current chunk buffer, and its byte length.
//
// The layout is a deliberate compactness choice (BurntSushi-style
// offset tracking, adapted here to add the shape bits directly into
// the descriptor instead of a side array): 4 bits of kind, 36 bits of
// start, 24 bits of length, packed into a uint64. It bounds a single
// field to 2^24-1 bytes and a chunk to 2^36-1 bytes, but keeps the
// token matrix dense enough to stay cache-friendly at millions of
// cells.
package token

import "fmt"

// Kind is a bitmask describing a field's syntactic shape.
type Kind uint8

const (
	// Integer indicates the field matched the integer grammar.
	Integer Kind = 1 << 0
	// Float indicates the field matched the float grammar.
	Float Kind = 1 << 1
	// Bool indicates the field matched a recognized boolean literal.
	Bool Kind = 1 << 2
	// Quoted indicates the field was quoted and contained at least one
	// doubled quote that must be unescaped before use.
	Quoted Kind = 1 << 3

	// String is the zero value: none of the numeric/bool shapes apply.
	String Kind = 0

	// Missing is the reserved all-ones kind: syntactically empty or the
	// literal NA. A missing token is compatible with any column type.
	Missing Kind = Integer | Float | Bool | Quoted
)

const (
	kindBits   = 4
	startBits  = 36
	lengthBits = 24

	// MaxStart is the largest representable start offset (0 is reserved
	// to mean "no token" so packed zero never collides with a real
	// field at offset 0 length 0).
	MaxStart = 1<<startBits - 1
	// MaxLength is the largest representable field length.
	MaxLength = 1<<lengthBits - 1

	startShift = lengthBits
	kindShift  = lengthBits + startBits

	lengthMask = uint64(1)<<lengthBits - 1
	startMask  = uint64(1)<<startBits - 1
	kindMask   = uint64(1)<<kindBits - 1
)

// Token is a packed (kind, start, length) triple describing one field
// inside the scanner's current chunk buffer.
type Token uint64

// Pack builds a Token from its three components. start is 1-based (0
// is reserved), matching the design's null sentinel; callers scanning
// a real buffer should always pass a start of at least 1.
//
// Pack panics if start or length exceed their packed range: these are
// programmer errors (a caller violated the chunk/field size contract
// that must have been enforced before reaching here), not malformed
// input.
func Pack(kind Kind, start, length uint64) Token {
	if start > MaxStart {
		panic(fmt.Sprintf("token: start %d exceeds max %d", start, MaxStart))
	}
	if length > MaxLength {
		panic(fmt.Sprintf("token: length %d exceeds max %d", length, MaxLength))
	}
	return Token(uint64(kind)<<kindShift | (start&startMask)<<startShift | (length & lengthMask))
}

// Kind returns the field's shape bitmask.
func (t Token) Kind() Kind {
	return Kind(uint64(t) >> kindShift & kindMask)
}

// IsMissing reports whether the token represents a syntactically
// empty field or the literal NA. It is a single comparison so it can
// run once per cell in the hot summarizer/parser loop.
func (t Token) IsMissing() bool {
	return t.Kind() == Missing
}

// Location returns the token's byte range within the buffer it was
// scanned from.
func (t Token) Location() (start, length int) {
	start = int(uint64(t) >> startShift & startMask)
	length = int(uint64(t) & lengthMask)
	return start, length
}

// Row is one fixed-width row of a Matrix, ncols tokens indexed by
// column, reused across chunks. Rows and the token matrix as a whole are only
// valid for the lifetime of the chunk that produced them: value
// parsers must copy anything they want to keep before the next
// framer call reuses the underlying buffer.
type Row []Token

// Matrix holds nrows x ncols tokens for one chunk.
type Matrix struct {
	rows  []Row
	ncols int
}

// NewMatrix allocates a matrix with capacity for rowCapacity rows of
// ncols columns each. Rows beyond the initial capacity are appended
// lazily by Row.
func NewMatrix(rowCapacity, ncols int) *Matrix {
	m := &Matrix{ncols: ncols}
	m.rows = make([]Row, 0, rowCapacity)
	return m
}

// NumCols reports the fixed column count of the matrix.
func (m *Matrix) NumCols() int { return m.ncols }

// NumRows reports how many rows have been written so far.
func (m *Matrix) NumRows() int { return len(m.rows) }

// Row returns the token row at index i, growing the backing slice if
// necessary. The returned row is always ncols long.
func (m *Matrix) Row(i int) Row {
	for len(m.rows) <= i {
		m.rows = append(m.rows, make(Row, m.ncols))
	}
	return m.rows[i]
}

// Reset drops all rows (but keeps their backing arrays) so the matrix
// can be reused for the next chunk without reallocating.
func (m *Matrix) Reset() {
	m.rows = m.rows[:0]
}

// At returns the token at (row, col) among the rows written so
// far. It panics on out-of-range indices, matching the matrix's role
// as an internal, tightly-controlled data structure.
func (m *Matrix) At(row, col int) Token {
	return m.rows[row][col]
}
