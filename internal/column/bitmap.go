// Package column implements the column summarizer (C5), type
// inference and cross-chunk widening (C6), and the typed column
// container that value parsers append into (C7's destination, C8's
// per-chunk allocation target).
package column

import "github.com/shapestone/shape-dlm/internal/token"

// Bitmap is the 6-bit per-column shape summary folded from a chunk's
// token kinds: {IntegerOK, FloatOK, BoolOK, QuotedEver, AllMissing,
// AnyMissing}. AllMissing implies AnyMissing.
type Bitmap struct {
	IntegerOK  bool
	FloatOK    bool
	BoolOK     bool
	QuotedEver bool
	AllMissing bool
	AnyMissing bool

	seenAny bool // internal: has Fold observed at least one token yet
}

// NewBitmap returns a bitmap ready to fold tokens into. It starts
// optimistic (every shape "OK") because Fold ANDs in each non-missing
// token's kind bits; a column with zero non-missing tokens across the
// whole chunk stays IntegerOK/FloatOK/BoolOK true but AllMissing true,
// which Infer treats as missing-only regardless.
func NewBitmap() Bitmap {
	return Bitmap{IntegerOK: true, FloatOK: true, BoolOK: true, AllMissing: true}
}

// Fold accumulates one token's kind into the bitmap.
func (b *Bitmap) Fold(kind token.Kind) {
	if kind == token.Missing {
		b.AnyMissing = true
		return
	}
	b.AllMissing = false
	b.seenAny = true
	if kind&token.Integer == 0 {
		b.IntegerOK = false
	}
	if kind&token.Float == 0 {
		b.FloatOK = false
	}
	if kind&token.Bool == 0 {
		b.BoolOK = false
	}
	if kind&token.Quoted != 0 {
		b.QuotedEver = true
	}
}

// FoldColumn folds every token in one column of a chunk's token
// matrix, for rows [0, nrows).
func FoldColumn(m *token.Matrix, col, nrows int) Bitmap {
	b := NewBitmap()
	for r := 0; r < nrows; r++ {
		b.Fold(m.At(r, col).Kind())
	}
	return b
}
