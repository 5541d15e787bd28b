package dlm

import (
	"fmt"

	"github.com/shapestone/shape-dlm/internal/column"
)

// InvalidConfigError reports a ReaderOptions value that violates a
// hard constraint (an out-of-range chunkbits, a delimiter equal to the
// quote byte, and so on) before any bytes are read.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("dlm: invalid config: %s: %s", e.Field, e.Reason)
}

// LineTooLongError reports a single chunk that would need to grow
// past the packed token's 36-bit addressable range to fit one record.
type LineTooLongError struct {
	Limit int64
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("dlm: record exceeds the maximum chunk size of %d bytes", e.Limit)
}

// FieldTooLongError reports a single field whose length would
// overflow the packed token's 24-bit length field.
type FieldTooLongError struct {
	Length int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("dlm: field length %d exceeds the maximum of %d bytes", e.Length, (1<<24)-1)
}

// UnexpectedColumnCountError reports a data row whose field count
// doesn't match the header (or synthesized) column count, outside the
// one-short "trailing missing cell" allowance.
type UnexpectedColumnCountError struct {
	Line int
	Got  int
	Want int
}

func (e *UnexpectedColumnCountError) Error() string {
	return fmt.Sprintf("dlm: line %d: got %d columns, want %d", e.Line, e.Got, e.Want)
}

// InvalidByteInFieldError reports a byte that can't legally appear
// where the scanner found it: a stray quote in an unquoted field, or
// an ill-formed UTF-8 sequence.
type InvalidByteInFieldError struct {
	Line   int
	Column int
	Byte   byte
	Reason string
}

func (e *InvalidByteInFieldError) Error() string {
	return fmt.Sprintf("dlm: line %d, column %d: invalid byte 0x%02x: %s", e.Line, e.Column, e.Byte, e.Reason)
}

// EmptyHeaderError reports a header line with no recoverable column
// names at all (an entirely blank first line where one was expected).
type EmptyHeaderError struct{}

func (e *EmptyHeaderError) Error() string {
	return "dlm: no column names recoverable at the header line"
}

// OverflowError reports an INTEGER-shaped field too large for int64.
type OverflowError struct {
	Line, Column int
	Field        string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("dlm: line %d, column %d: %q overflows int64", e.Line, e.Column, e.Field)
}

// FloatParseError reports a FLOAT-shaped field strconv could not
// fully consume.
type FloatParseError struct {
	Line, Column int
	Field        string
}

func (e *FloatParseError) Error() string {
	return fmt.Sprintf("dlm: line %d, column %d: %q is not a valid float", e.Line, e.Column, e.Field)
}

// TypeInferenceConflictError reports that a later chunk's inferred
// type for a column can't be reconciled with the type established by
// earlier chunks, and suggests the two ways to avoid it.
type TypeInferenceConflictError struct {
	Column   string
	Old, New string
}

func (e *TypeInferenceConflictError) Error() string {
	return fmt.Sprintf(
		"dlm: column %q: cannot widen %s to %s across chunks; retry with a larger chunk size or ReaderOptions.ChunkBits = 0 for single-chunk mode",
		e.Column, e.Old, e.New,
	)
}

// wrapTypeConflict adapts the internal column package's conflict
// error into the public error type, keeping the internal Type enum
// out of the public API surface.
func wrapTypeConflict(err *column.TypeInferenceConflictError) *TypeInferenceConflictError {
	return &TypeInferenceConflictError{Column: err.Column, Old: err.Old.String(), New: err.New.String()}
}
