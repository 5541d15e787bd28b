package dlm

import (
	"time"

	"github.com/shapestone/shape-dlm/internal/column"
)

// ColumnType identifies a Table column's resolved data type.
type ColumnType int

const (
	MissingOnly ColumnType = iota
	Integer
	Float
	Bool
	String
	Date
	Datetime
)

func (t ColumnType) String() string {
	return column.Type(t).String()
}

// Table is the result of reading a delimited source: column-major
// storage with per-column type and missingness, matching how
// spec.md's column builder produces its output.
type Table struct {
	names []string
	cols  []*column.Column
}

func newTable(names []string, cols []*column.Column) *Table {
	return &Table{names: names, cols: cols}
}

// NumCols reports the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// NumRows reports the number of rows, taken from the first column (all
// columns in a Table always have equal length).
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Names returns the column names in order.
func (t *Table) Names() []string { return t.names }

// ColumnType reports the resolved type of column i.
func (t *Table) ColumnType(i int) ColumnType { return ColumnType(t.cols[i].Type) }

// IsOptional reports whether column i has at least one missing value.
func (t *Table) IsOptional(i int) bool { return t.cols[i].Optional }

// Valid reports whether row r of column i holds a present value. It
// always returns true for a non-optional column.
func (t *Table) Valid(i, r int) bool {
	c := t.cols[i]
	if c.Valid == nil {
		return true
	}
	return c.Valid[r]
}

// Int64 returns column i's backing []int64, and ok=false if the
// column's resolved type is not Integer.
func (t *Table) Int64(i int) (vals []int64, ok bool) {
	c := t.cols[i]
	return c.Ints, c.Type == column.IntegerType
}

// Float64 returns column i's backing []float64, and ok=false if the
// column's resolved type is not Float.
func (t *Table) Float64(i int) (vals []float64, ok bool) {
	c := t.cols[i]
	return c.Floats, c.Type == column.FloatType
}

// Bools returns column i's backing []bool, and ok=false if the
// column's resolved type is not Bool.
func (t *Table) Bools(i int) (vals []bool, ok bool) {
	c := t.cols[i]
	return c.Bools, c.Type == column.BoolType
}

// Strings returns column i's backing []string, and ok=false if the
// column's resolved type is not String.
func (t *Table) Strings(i int) (vals []string, ok bool) {
	c := t.cols[i]
	return c.Strings, c.Type == column.StringType
}

// Dates returns column i's backing []time.Time, and ok=false if the
// column's resolved type is not Date.
func (t *Table) Dates(i int) (vals []time.Time, ok bool) {
	c := t.cols[i]
	return c.Dates, c.Type == column.DateType
}

// Datetimes returns column i's backing []time.Time, and ok=false if
// the column's resolved type is not Datetime.
func (t *Table) Datetimes(i int) (vals []time.Time, ok bool) {
	c := t.cols[i]
	return c.Datetimes, c.Type == column.DatetimeType
}

// ColumnStats summarizes column i's null count and value range among
// its present rows.
type ColumnStats struct {
	NullCount int
	Min       any
	Max       any
}

// Stats computes column i's null count and, for a column with at
// least one present value, its minimum and maximum. Min and Max stay
// nil for a MissingOnly column or one with no present rows.
func (t *Table) Stats(i int) ColumnStats {
	c := t.cols[i]
	var stats ColumnStats

	valid := func(idx int) bool { return c.Valid == nil || c.Valid[idx] }
	countNulls := func(n int) {
		if c.Valid == nil {
			return
		}
		for idx := 0; idx < n; idx++ {
			if !c.Valid[idx] {
				stats.NullCount++
			}
		}
	}

	switch c.Type {
	case column.IntegerType:
		countNulls(len(c.Ints))
		var min, max int64
		have := false
		for idx, v := range c.Ints {
			if !valid(idx) {
				continue
			}
			if !have || v < min {
				min = v
			}
			if !have || v > max {
				max = v
			}
			have = true
		}
		if have {
			stats.Min, stats.Max = min, max
		}
	case column.FloatType:
		countNulls(len(c.Floats))
		var min, max float64
		have := false
		for idx, v := range c.Floats {
			if !valid(idx) {
				continue
			}
			if !have || v < min {
				min = v
			}
			if !have || v > max {
				max = v
			}
			have = true
		}
		if have {
			stats.Min, stats.Max = min, max
		}
	case column.BoolType:
		countNulls(len(c.Bools))
		var min, max bool
		have := false
		for idx, v := range c.Bools {
			if !valid(idx) {
				continue
			}
			if !have {
				min, max = v, v
			} else {
				if !v && v != min {
					min = v
				}
				if v && v != max {
					max = v
				}
			}
			have = true
		}
		if have {
			stats.Min, stats.Max = min, max
		}
	case column.StringType:
		countNulls(len(c.Strings))
		var min, max string
		have := false
		for idx, v := range c.Strings {
			if !valid(idx) {
				continue
			}
			if !have || v < min {
				min = v
			}
			if !have || v > max {
				max = v
			}
			have = true
		}
		if have {
			stats.Min, stats.Max = min, max
		}
	case column.DateType:
		countNulls(len(c.Dates))
		stats.Min, stats.Max = timeRange(c.Dates, c.Valid)
	case column.DatetimeType:
		countNulls(len(c.Datetimes))
		stats.Min, stats.Max = timeRange(c.Datetimes, c.Valid)
	case column.MissingOnly:
		stats.NullCount = c.Len()
	}
	return stats
}

// timeRange returns the earliest and latest of vals among the rows
// valid marks present, as any so a caller with no present rows sees
// (nil, nil) rather than the zero time.Time.
func timeRange(vals []time.Time, valid []bool) (min, max any) {
	var lo, hi time.Time
	have := false
	for idx, v := range vals {
		if valid != nil && !valid[idx] {
			continue
		}
		if !have || v.Before(lo) {
			lo = v
		}
		if !have || v.After(hi) {
			hi = v
		}
		have = true
	}
	if !have {
		return nil, nil
	}
	return lo, hi
}

// ColumnByName returns the index of the column named name, or -1 if
// no column has that name.
func (t *Table) ColumnByName(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}
	return -1
}
