package dlm

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestReadFilePlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("name,age\nalice,30\nbob,25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := ReadFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if tbl.NumRows() != 2 || tbl.NumCols() != 2 {
		t.Fatalf("got %dx%d, want 2x2", tbl.NumRows(), tbl.NumCols())
	}
}

func TestReadFileGzip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte("name,age\nalice,30\nbob,25\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "data.csv.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := ReadFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if tbl.NumRows() != 2 || tbl.NumCols() != 2 {
		t.Fatalf("got %dx%d, want 2x2", tbl.NumRows(), tbl.NumCols())
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
