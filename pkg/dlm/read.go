package dlm

import (
	"errors"
	"io"

	"github.com/shapestone/shape-dlm/internal/chunkdriver"
	"github.com/shapestone/shape-dlm/internal/column"
	"github.com/shapestone/shape-dlm/internal/framer"
	"github.com/shapestone/shape-dlm/internal/scanner"
	"github.com/shapestone/shape-dlm/internal/valueparse"
)

// ReadDelim reads a delimited-text source in full according to opts,
// returning a Table with one typed column per field.
func ReadDelim(r io.Reader, opts ReaderOptions) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	res, err := chunkdriver.Run(r, opts.toChunkDriver())
	if err != nil {
		return nil, translateError(err)
	}
	return newTable(res.Names, res.Columns), nil
}

// ReadCSV reads a comma-delimited source with a header row, guessing
// nothing: this is the fixed-dialect convenience wrapper for the
// common case.
func ReadCSV(r io.Reader) (*Table, error) {
	opts := DefaultOptions()
	opts.Delimiter = ','
	return ReadDelim(r, opts)
}

// ReadTSV reads a tab-delimited source with a header row.
func ReadTSV(r io.Reader) (*Table, error) {
	opts := DefaultOptions()
	opts.Delimiter = '\t'
	return ReadDelim(r, opts)
}

// translateError converts an internal chunk-driver error into the
// corresponding public error type from errors.go, unwrapping a
// LineError to recover its line number when one is attached. Errors
// with no known public equivalent are returned unchanged.
func translateError(err error) error {
	if errors.Is(err, framer.ErrLineTooLong) {
		return &LineTooLongError{Limit: framer.HardLimit}
	}

	line := 0
	cause := err
	if le, ok := err.(*chunkdriver.LineError); ok {
		line = le.Line
		cause = le.Err
	}

	switch e := cause.(type) {
	case *scanner.ColumnCountError:
		return &UnexpectedColumnCountError{Line: line, Got: e.Got, Want: e.Want}
	case *scanner.FieldTooLongError:
		return &FieldTooLongError{Length: e.Length}
	case *scanner.InvalidByteError:
		return &InvalidByteInFieldError{Line: line, Column: e.Column, Byte: e.Byte, Reason: e.Reason}
	case *scanner.MultilineHeaderError:
		return &InvalidByteInFieldError{Line: line, Reason: "unterminated quote in header"}
	case *chunkdriver.UnterminatedQuoteError:
		return &InvalidByteInFieldError{Line: line, Reason: "unterminated quoted field at end of input"}
	case *chunkdriver.EmptyHeaderError:
		return &EmptyHeaderError{}
	case *chunkdriver.ValueParseError:
		return translateValueParseError(line, e)
	case *column.TypeInferenceConflictError:
		return wrapTypeConflict(e)
	}
	return err
}

// translateValueParseError unwraps a chunkdriver.ValueParseError's
// underlying internal/valueparse cause into the matching public error
// type.
func translateValueParseError(line int, e *chunkdriver.ValueParseError) error {
	switch cause := e.Err.(type) {
	case *valueparse.OverflowError:
		return &OverflowError{Line: line, Column: e.Column, Field: cause.Field}
	case *valueparse.FloatParseError:
		return &FloatParseError{Line: line, Column: e.Column, Field: cause.Field}
	}
	return e.Err
}
