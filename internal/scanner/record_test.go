package scanner

import (
	"testing"

	"github.com/shapestone/shape-dlm/internal/token"
)

func TestScanRecordBasic(t *testing.T) {
	buf := []byte("1,2.5,hello\n")
	row := make(token.Row, 3)
	newPos, skipped, err := ScanRecord(row, buf, 0, 3, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped {
		t.Fatal("expected not skipped")
	}
	if newPos != len(buf) {
		t.Errorf("newPos = %d, want %d", newPos, len(buf))
	}
	if row[0].Kind() != token.Integer|token.Float {
		t.Errorf("col0 kind = %v, want Integer|Float", row[0].Kind())
	}
	if row[1].Kind() != token.Float {
		t.Errorf("col1 kind = %v, want Float", row[1].Kind())
	}
	if row[2].Kind() != token.String {
		t.Errorf("col2 kind = %v, want String", row[2].Kind())
	}
}

func TestScanRecordTrailingMissingCell(t *testing.T) {
	buf := []byte("1,2\n")
	row := make(token.Row, 3)
	_, _, err := ScanRecord(row, buf, 0, 3, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !row[2].IsMissing() {
		t.Errorf("col2 should be Missing, got %v", row[2].Kind())
	}
}

func TestScanRecordTooFewColumns(t *testing.T) {
	buf := []byte("1\n")
	row := make(token.Row, 3)
	_, _, err := ScanRecord(row, buf, 0, 3, testParams())
	if err == nil {
		t.Fatal("expected ColumnCountError")
	}
	if _, ok := err.(*ColumnCountError); !ok {
		t.Errorf("err = %T, want *ColumnCountError", err)
	}
}

func TestScanRecordTooManyColumns(t *testing.T) {
	buf := []byte("1,2,3,4\n")
	row := make(token.Row, 3)
	_, _, err := ScanRecord(row, buf, 0, 3, testParams())
	if err == nil {
		t.Fatal("expected ColumnCountError")
	}
	if _, ok := err.(*ColumnCountError); !ok {
		t.Errorf("err = %T, want *ColumnCountError", err)
	}
}

func TestScanRecordEmptyFieldsAreMissing(t *testing.T) {
	buf := []byte(",,\n")
	row := make(token.Row, 3)
	_, _, err := ScanRecord(row, buf, 0, 3, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tok := range row {
		if !tok.IsMissing() {
			t.Errorf("col%d should be Missing, got %v", i, tok.Kind())
		}
	}
}

func TestScanRecordNALiteral(t *testing.T) {
	buf := []byte("1,NA,3\n")
	row := make(token.Row, 3)
	_, _, err := ScanRecord(row, buf, 0, 3, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !row[1].IsMissing() {
		t.Errorf("col1 should be Missing, got %v", row[1].Kind())
	}
}

func TestScanRecordQuotedNALiteral(t *testing.T) {
	buf := []byte(`1,"NA",3` + "\n")
	row := make(token.Row, 3)
	_, _, err := ScanRecord(row, buf, 0, 3, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !row[1].IsMissing() {
		t.Errorf("col1 should be Missing for a quoted NA, got %v", row[1].Kind())
	}
}

func TestScanRecordQuotedNumericStaysString(t *testing.T) {
	buf := []byte(`"123",456` + "\n")
	row := make(token.Row, 2)
	_, _, err := ScanRecord(row, buf, 0, 2, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row[0].Kind() != token.String {
		t.Errorf("col0 kind = %v, want String (quoting forces string)", row[0].Kind())
	}
	if row[1].Kind() != token.Integer|token.Float {
		t.Errorf("col1 kind = %v, want Integer|Float", row[1].Kind())
	}
}

func TestScanRecordCommentLine(t *testing.T) {
	buf := []byte("# a comment\n")
	row := make(token.Row, 3)
	p := testParams()
	p.Comment = []byte("#")
	_, skipped, err := ScanRecord(row, buf, 0, 3, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !skipped {
		t.Fatal("expected comment line to be skipped")
	}
}

func TestScanRecordBlankLine(t *testing.T) {
	buf := []byte("   \n")
	row := make(token.Row, 3)
	p := testParams()
	p.SkipBlank = true
	_, skipped, err := ScanRecord(row, buf, 0, 3, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !skipped {
		t.Fatal("expected blank line to be skipped")
	}
}

func TestScanRecordBlankLineTabOnly(t *testing.T) {
	buf := []byte("\t\t\n")
	row := make(token.Row, 3)
	p := testParams()
	p.SkipBlank = true
	_, skipped, err := ScanRecord(row, buf, 0, 3, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !skipped {
		t.Fatal("expected tab-only line to be skipped, matching preprocess.ConsumeLeading's blank-line definition")
	}
}

func TestScanRecordNeedsMoreBytesOnMultilineQuote(t *testing.T) {
	buf := []byte("\"line one\nline two")
	row := make(token.Row, 1)
	_, _, err := ScanRecord(row, buf, 0, 1, testParams())
	if err != ErrNeedMoreBytes {
		t.Fatalf("err = %v, want ErrNeedMoreBytes", err)
	}
}
