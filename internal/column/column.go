package column

import (
	"strconv"
	"time"
)

// Column is the tagged-variant, append-only container that the value
// parsers fill in and the chunk driver widens across chunks. Only the
// slice matching Type is ever populated; the others stay nil.
type Column struct {
	Name     string
	Type     Type
	Optional bool

	Ints      []int64
	Floats    []float64
	Bools     []bool
	Strings   []string
	Dates     []time.Time
	Datetimes []time.Time

	// Valid tracks which logical rows are present, parallel to
	// whichever typed slice is active. It is only allocated once the
	// column becomes Optional; a non-optional column has no missing
	// rows by construction and Valid stays nil.
	Valid []bool
}

// New allocates an empty column of the given inferred type with
// rowCapacity pre-sized backing storage.
func New(name string, inferred Inferred, rowCapacity int) *Column {
	c := &Column{Name: name, Type: inferred.Type, Optional: inferred.Optional}
	switch inferred.Type {
	case IntegerType:
		c.Ints = make([]int64, 0, rowCapacity)
	case FloatType:
		c.Floats = make([]float64, 0, rowCapacity)
	case BoolType:
		c.Bools = make([]bool, 0, rowCapacity)
	case StringType:
		c.Strings = make([]string, 0, rowCapacity)
	case MissingOnly:
		c.Strings = make([]string, 0, rowCapacity)
	}
	if inferred.Optional {
		c.Valid = make([]bool, 0, rowCapacity)
	}
	return c
}

// Len reports how many logical rows have been appended.
func (c *Column) Len() int {
	switch c.Type {
	case IntegerType:
		return len(c.Ints)
	case FloatType:
		return len(c.Floats)
	case BoolType:
		return len(c.Bools)
	case DateType:
		return len(c.Dates)
	case DatetimeType:
		return len(c.Datetimes)
	default:
		return len(c.Strings)
	}
}

func (c *Column) markValid(ok bool) {
	if c.Optional {
		c.Valid = append(c.Valid, ok)
	}
}

// AppendInt appends a present integer value.
func (c *Column) AppendInt(v int64) {
	c.Ints = append(c.Ints, v)
	c.markValid(true)
}

// AppendFloat appends a present float value.
func (c *Column) AppendFloat(v float64) {
	c.Floats = append(c.Floats, v)
	c.markValid(true)
}

// AppendBool appends a present bool value.
func (c *Column) AppendBool(v bool) {
	c.Bools = append(c.Bools, v)
	c.markValid(true)
}

// AppendString appends a present string value.
func (c *Column) AppendString(v string) {
	c.Strings = append(c.Strings, v)
	c.markValid(true)
}

// AppendMissing appends a missing value, using the zero value of the
// column's current type as the placeholder.
func (c *Column) AppendMissing() {
	switch c.Type {
	case IntegerType:
		c.Ints = append(c.Ints, 0)
	case FloatType:
		c.Floats = append(c.Floats, 0)
	case BoolType:
		c.Bools = append(c.Bools, false)
	case DateType:
		c.Dates = append(c.Dates, time.Time{})
	case DatetimeType:
		c.Datetimes = append(c.Datetimes, time.Time{})
	default:
		c.Strings = append(c.Strings, "")
	}
	c.markValid(false)
}

// Retype converts the column's backing storage in place to match a
// widened Inferred result, used by the chunk driver right before
// appending a later chunk's values. INTEGER->FLOAT rescales the
// existing values; ->STRING renders every existing value to its text
// form so no earlier row is lost; a MISSING_ONLY column re-appends its
// existing row count as zero-values of the new type, since those rows
// carry no representable value of their own.
func (c *Column) Retype(to Inferred) {
	if c.Type != to.Type {
		switch {
		case c.Type == IntegerType && to.Type == FloatType:
			c.Floats = make([]float64, len(c.Ints))
			for i, v := range c.Ints {
				c.Floats[i] = float64(v)
			}
			c.Ints = nil
		case to.Type == StringType && c.Type != StringType:
			c.Strings = c.stringifyAll()
			c.Ints, c.Floats, c.Bools, c.Dates, c.Datetimes = nil, nil, nil, nil, nil
		case c.Type == MissingOnly:
			c.adoptEmpty(to.Type, c.Len())
		}
		c.Type = to.Type
	}
	if to.Optional && !c.Optional {
		c.Valid = make([]bool, c.Len())
		for i := range c.Valid {
			c.Valid[i] = true
		}
	}
	c.Optional = to.Optional
}

// stringifyAll renders every row of the column's current type to its
// text form, using "" for any row already marked missing so the
// widened string column still reads as missing rather than "0".
func (c *Column) stringifyAll() []string {
	n := c.Len()
	out := make([]string, n)
	valid := func(i int) bool { return c.Valid == nil || c.Valid[i] }
	switch c.Type {
	case IntegerType:
		for i, v := range c.Ints {
			if valid(i) {
				out[i] = strconv.FormatInt(v, 10)
			}
		}
	case FloatType:
		for i, v := range c.Floats {
			if valid(i) {
				out[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
	case BoolType:
		for i, v := range c.Bools {
			if valid(i) {
				out[i] = strconv.FormatBool(v)
			}
		}
	case DateType:
		for i, v := range c.Dates {
			if valid(i) {
				out[i] = v.Format("2006-01-02")
			}
		}
	case DatetimeType:
		for i, v := range c.Datetimes {
			if valid(i) {
				out[i] = v.Format(time.RFC3339)
			}
		}
	}
	return out
}

// adoptEmpty re-materializes n rows of a MISSING_ONLY column as
// zero-values of the new type, preserving row count instead of
// dropping the rows already accumulated by AppendMissing.
func (c *Column) adoptEmpty(t Type, n int) {
	c.Strings = nil
	switch t {
	case IntegerType:
		c.Ints = make([]int64, n)
	case FloatType:
		c.Floats = make([]float64, n)
	case BoolType:
		c.Bools = make([]bool, n)
	case StringType:
		c.Strings = make([]string, n)
	}
}
