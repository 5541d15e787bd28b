package dlm

import (
	"strings"
	"testing"
)

func TestReadCSVBasic(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("name,age\nalice,30\nbob,25\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if tbl.NumRows() != 2 || tbl.NumCols() != 2 {
		t.Fatalf("got %dx%d, want 2x2", tbl.NumRows(), tbl.NumCols())
	}
	if tbl.ColumnType(1) != Integer {
		t.Errorf("age column type = %v, want Integer", tbl.ColumnType(1))
	}
	got, ok := tbl.Int64(1)
	if !ok {
		t.Fatalf("Int64(1) ok = false, want true")
	}
	if got[0] != 30 || got[1] != 25 {
		t.Errorf("age values = %v", got)
	}
	if _, ok := tbl.Float64(1); ok {
		t.Error("Float64(1) ok = true for an Integer column, want false")
	}
	if vals, ok := tbl.Strings(1); ok || vals != nil {
		t.Errorf("Strings(1) = (%v, %v), want (nil, false)", vals, ok)
	}
}

func TestTableStatsIntegerColumn(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("n\n3\n1\n2\n"))
	if err != nil {
		t.Fatal(err)
	}
	stats := tbl.Stats(0)
	if stats.NullCount != 0 {
		t.Errorf("NullCount = %d, want 0", stats.NullCount)
	}
	if stats.Min != int64(1) || stats.Max != int64(3) {
		t.Errorf("Min=%v Max=%v, want 1/3", stats.Min, stats.Max)
	}
}

func TestTableStatsCountsMissing(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b\n1,\n2,3\n"))
	if err != nil {
		t.Fatal(err)
	}
	stats := tbl.Stats(1)
	if stats.NullCount != 1 {
		t.Errorf("NullCount = %d, want 1", stats.NullCount)
	}
	if stats.Min != int64(3) || stats.Max != int64(3) {
		t.Errorf("Min=%v Max=%v, want 3/3", stats.Min, stats.Max)
	}
}

func TestReadTSVBasic(t *testing.T) {
	tbl, err := ReadTSV(strings.NewReader("a\tb\n1\t2.5\n"))
	if err != nil {
		t.Fatalf("ReadTSV() error = %v", err)
	}
	if tbl.ColumnType(1) != Float {
		t.Errorf("b column type = %v, want Float", tbl.ColumnType(1))
	}
}

func TestReadDelimRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Delimiter = ','
	opts.Quote = ','
	_, err := ReadDelim(strings.NewReader("a,b\n1,2\n"), opts)
	if _, ok := err.(*InvalidConfigError); !ok {
		t.Fatalf("err = %v (%T), want *InvalidConfigError", err, err)
	}
}

func TestReadDelimUnexpectedColumnCount(t *testing.T) {
	opts := DefaultOptions()
	opts.Delimiter = ','
	_, err := ReadDelim(strings.NewReader("a,b\n1,2,3,4\n"), opts)
	uc, ok := err.(*UnexpectedColumnCountError)
	if !ok {
		t.Fatalf("err = %v (%T), want *UnexpectedColumnCountError", err, err)
	}
	if uc.Want != 2 || uc.Got <= uc.Want {
		t.Errorf("Want=%d Got=%d, want Got > Want=2", uc.Got, uc.Want)
	}
}

func TestReadDelimByColumnName(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("x,y\n1,2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if idx := tbl.ColumnByName("y"); idx != 1 {
		t.Errorf("ColumnByName(y) = %d, want 1", idx)
	}
	if idx := tbl.ColumnByName("z"); idx != -1 {
		t.Errorf("ColumnByName(z) = %d, want -1", idx)
	}
}

func TestReadDelimIntegerOverflow(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("n\n99999999999999999999\n"))
	if err == nil {
		t.Fatalf("expected an overflow error, got table %v", tbl)
	}
	oe, ok := err.(*OverflowError)
	if !ok {
		t.Fatalf("err = %v (%T), want *OverflowError", err, err)
	}
	if oe.Line != 2 {
		t.Errorf("Line = %d, want 2", oe.Line)
	}
}

func TestReadDelimMissingValuesAreOptional(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b\n1,\n2,3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.IsOptional(1) {
		t.Error("expected column b to be optional")
	}
	if tbl.Valid(1, 0) {
		t.Error("expected row 0 of column b to be invalid (missing)")
	}
	if !tbl.Valid(1, 1) {
		t.Error("expected row 1 of column b to be valid")
	}
}
