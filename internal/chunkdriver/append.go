package chunkdriver

import (
	"time"

	"github.com/shapestone/shape-dlm/internal/column"
	"github.com/shapestone/shape-dlm/internal/scanner"
	"github.com/shapestone/shape-dlm/internal/token"
	"github.com/shapestone/shape-dlm/internal/valueparse"
)

// appendChunk folds each column's bitmap into an Inferred type,
// allocates or widens the column's storage against that type, and
// then walks the chunk's token matrix a second time to append the
// actual parsed values. Splitting inference from appending this way
// is what lets a column's storage be allocated once per chunk instead
// of grown value-by-value as the type is discovered.
func appendChunk(cols []*column.Column, names []string, bitmaps []column.Bitmap, matrix *token.Matrix, nrows int, data []byte, params scanner.Params, caches []*valueparse.StringCache, firstChunk bool, rowCapacity int, rowLines []int) (widened int, err error) {
	ncols := len(cols)
	inferred := make([]column.Inferred, ncols)
	for c := 0; c < ncols; c++ {
		want := column.Infer(bitmaps[c])
		if firstChunk || cols[c] == nil {
			inferred[c] = want
			cols[c] = column.New(names[c], want, rowCapacity)
			continue
		}
		have := column.Inferred{Type: cols[c].Type, Optional: cols[c].Optional}
		result, werr := column.Widen(names[c], have, want)
		if werr != nil {
			return 0, werr
		}
		inferred[c] = result
		if result.Type != have.Type {
			widened++
		}
		cols[c].Retype(result)
	}

	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			tok := matrix.At(r, c)
			if tok.IsMissing() {
				cols[c].AppendMissing()
				continue
			}
			if verr := appendValue(cols[c], tok, data, params, caches[c]); verr != nil {
				return 0, &LineError{Line: rowLines[r], Err: &ValueParseError{Column: c, Err: verr}}
			}
		}
	}
	return widened, nil
}

// appendValue parses one token's field bytes according to the
// column's resolved type and appends it. A field can only be missing
// or already compatible with the column's type by construction of
// Infer/Widen, so a parse failure here can only be an integer literal
// too large for int64 (an OverflowError) or, in principle, a
// FLOAT-shaped field strconv rejects; both propagate to the caller
// instead of silently zeroing the cell.
func appendValue(col *column.Column, tok token.Token, data []byte, params scanner.Params, cache *valueparse.StringCache) error {
	field := fieldBytes(data, tok)
	kind := tok.Kind()

	switch col.Type {
	case column.IntegerType:
		v, err := valueparse.ParseInt(field)
		if err != nil {
			return err
		}
		col.AppendInt(v)
	case column.FloatType:
		v, err := valueparse.ParseFloat(field)
		if err != nil {
			return err
		}
		col.AppendFloat(v)
	case column.BoolType:
		col.AppendBool(valueparse.ParseBool(field))
	default:
		col.AppendString(stringValue(field, kind, params, cache))
	}
	return nil
}

func stringValue(field []byte, kind token.Kind, params scanner.Params, cache *valueparse.StringCache) string {
	if kind&token.Quoted != 0 {
		return valueparse.ParseQuotedString(field, params.Quote, true, cache)
	}
	return valueparse.ParsePlainString(field, cache)
}

// fieldBytes recovers a token's raw byte span from the buffer it was
// scanned against. Packed starts are 1-based (0 means "no token"), so
// the stored offset is one past the real index.
func fieldBytes(data []byte, tok token.Token) []byte {
	start, length := tok.Location()
	if start == 0 {
		return nil
	}
	return data[start-1 : start-1+length]
}

// detectDates walks every finished STRING column looking for a
// date/datetime shape consistent across all its values, converting it
// in place when one is found. It runs once at the end instead of
// during the main loop because a column's final type isn't settled
// until the last chunk has been folded in.
func detectDates(cols []*column.Column) {
	for _, col := range cols {
		if col == nil || col.Type != column.StringType {
			continue
		}
		convertDateColumn(col)
	}
}

func convertDateColumn(col *column.Column) {
	n := len(col.Strings)
	if n == 0 {
		return
	}
	allDate, allDatetime := true, true
	var sep byte
	for i, s := range col.Strings {
		if col.Valid != nil && !col.Valid[i] {
			continue
		}
		if s == "" {
			continue
		}
		if allDate && !valueparse.LooksLikeDate(s) {
			allDate = false
		}
		if allDatetime {
			if !valueparse.LooksLikeDatetime(s) {
				allDatetime = false
			} else if sep == 0 {
				sep = valueparse.DatetimeSeparator(s)
			}
		}
		if !allDate && !allDatetime {
			return
		}
	}

	switch {
	case allDate:
		dates := make([]time.Time, n)
		for i, s := range col.Strings {
			if s == "" {
				continue
			}
			d, err := valueparse.ParseDate(s)
			if err != nil {
				return
			}
			dates[i] = d
		}
		col.Type = column.DateType
		col.Dates = dates
		col.Strings = nil
	case allDatetime:
		datetimes := make([]time.Time, n)
		for i, s := range col.Strings {
			if s == "" {
				continue
			}
			dt, err := valueparse.ParseDatetime(s, sep)
			if err != nil {
				return
			}
			datetimes[i] = dt
		}
		col.Type = column.DatetimeType
		col.Datetimes = datetimes
		col.Strings = nil
	}
}
