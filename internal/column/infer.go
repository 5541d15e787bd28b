package column

import "fmt"

// Type is a column's inferred data type, independent of its
// optional-missing wrapper (tracked separately via Optional).
type Type int

const (
	MissingOnly Type = iota
	IntegerType
	FloatType
	BoolType
	StringType
	DateType
	DatetimeType
)

func (t Type) String() string {
	switch t {
	case MissingOnly:
		return "missing-only"
	case IntegerType:
		return "integer"
	case FloatType:
		return "float"
	case BoolType:
		return "bool"
	case StringType:
		return "string"
	case DateType:
		return "date"
	case DatetimeType:
		return "datetime"
	default:
		return "unknown"
	}
}

// Inferred is a bitmap's resolved data type plus whether any missing
// value was observed.
type Inferred struct {
	Type     Type
	Optional bool
}

// Infer picks the narrowest accepted shape for a chunk's bitmap, in
// order INTEGER -> FLOAT -> BOOL -> STRING, wrapping optional when any
// missing value was seen.
func Infer(b Bitmap) Inferred {
	if b.AllMissing {
		return Inferred{Type: MissingOnly, Optional: true}
	}
	var t Type
	switch {
	case b.IntegerOK:
		t = IntegerType
	case b.FloatOK:
		t = FloatType
	case b.BoolOK:
		t = BoolType
	default:
		t = StringType
	}
	return Inferred{Type: t, Optional: b.AnyMissing}
}

// TypeInferenceConflictError reports that a later chunk's inferred
// type for a column cannot be reconciled with the type already
// established by earlier chunks.
type TypeInferenceConflictError struct {
	Column   string
	Old, New Type
}

func (e *TypeInferenceConflictError) Error() string {
	return fmt.Sprintf(
		"dlm: column %q: cannot widen %s to %s across chunks; retry with a larger chunk size or chunkbits=0 for single-chunk mode",
		e.Column, e.Old, e.New,
	)
}

// Widen reconciles an existing column's established type S against a
// newly summarized chunk's inferred type T, per the cross-chunk
// widening rules: INTEGER<->FLOAT widens to FLOAT; STRING absorbs
// anything; missing-only never changes S; otherwise S and T must
// already agree or one must already be assignable to the other.
func Widen(column string, s, t Inferred) (Inferred, error) {
	if t.Type == MissingOnly {
		return Inferred{Type: s.Type, Optional: s.Optional || t.Optional}, nil
	}
	if s.Type == MissingOnly {
		return Inferred{Type: t.Type, Optional: s.Optional || t.Optional}, nil
	}

	optional := s.Optional || t.Optional

	if s.Type == t.Type {
		return Inferred{Type: s.Type, Optional: optional}, nil
	}
	if isNumeric(s.Type) && isNumeric(t.Type) {
		return Inferred{Type: FloatType, Optional: optional}, nil
	}
	if s.Type == StringType {
		return Inferred{Type: StringType, Optional: optional}, nil
	}
	if t.Type == StringType {
		return Inferred{Type: StringType, Optional: optional}, nil
	}
	if assignable(t.Type, s.Type) {
		return Inferred{Type: s.Type, Optional: optional}, nil
	}
	if assignable(s.Type, t.Type) {
		return Inferred{Type: t.Type, Optional: optional}, nil
	}
	return Inferred{}, &TypeInferenceConflictError{Column: column, Old: s.Type, New: t.Type}
}

func isNumeric(t Type) bool {
	return t == IntegerType || t == FloatType
}

// assignable reports whether a value of type from can always be
// represented as type to without loss, for the narrow set of pairs
// the widening rules care about beyond the numeric and string cases
// handled directly in Widen.
func assignable(from, to Type) bool {
	if from == to {
		return true
	}
	if from == BoolType && to == StringType {
		return true
	}
	return false
}
