package scanner

import (
	"reflect"
	"testing"
)

func TestScanHeaderPlain(t *testing.T) {
	buf := []byte("id,name,score\n")
	names, newPos, err := ScanHeader(buf, 0, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]byte{[]byte("id"), []byte("name"), []byte("score")}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if string(names[i]) != string(want[i]) {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if newPos != len(buf) {
		t.Errorf("newPos = %d, want %d", newPos, len(buf))
	}
}

func TestScanHeaderQuotedWithEscape(t *testing.T) {
	buf := []byte(`"first ""name""",age` + "\n")
	names, _, err := ScanHeader(buf, 0, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(names[0]) != `first "name"` {
		t.Errorf("names[0] = %q, want %q", names[0], `first "name"`)
	}
	if string(names[1]) != "age" {
		t.Errorf("names[1] = %q, want %q", names[1], "age")
	}
}

func TestScanHeaderMultilineQuoteIsFatal(t *testing.T) {
	buf := []byte("\"broken\nheader\n")
	_, _, err := ScanHeader(buf, 0, testParams())
	if err == nil {
		t.Fatal("expected MultilineHeaderError")
	}
	if _, ok := err.(*MultilineHeaderError); !ok {
		t.Errorf("err = %T, want *MultilineHeaderError", err)
	}
}

func TestSplitPreview(t *testing.T) {
	line := []byte(`a,"b,c",d`)
	got := SplitPreview(line, ',', '"')
	if got != 2 {
		t.Errorf("SplitPreview = %d, want 2", got)
	}
}

func TestIndexUnquotedNewline(t *testing.T) {
	buf := []byte("\"a\nb\"\nrest")
	idx := IndexUnquotedNewline(buf, 0, '"')
	if idx != 5 {
		t.Errorf("idx = %d, want 5", idx)
	}
}

func TestUnescapeQuotes(t *testing.T) {
	got := unescapeQuotes([]byte(`a""b""c`), '"')
	want := []byte(`a"b"c`)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
