package preprocess

import "testing"

func TestGuessDelimiter(t *testing.T) {
	tests := map[string]byte{
		"a,b,c\n":      ',',
		"a\tb\tc\n":    '\t',
		"a|b|c\n":      '|',
		"a;b;c\n":      ';',
		"a:b:c\n":      ':',
		"nodelim\n":    ',',
		"a,b;c;d;e\n":  ';',
	}
	for in, want := range tests {
		if got := GuessDelimiter([]byte(in)); got != want {
			t.Errorf("GuessDelimiter(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConsumeLeadingSkipsCommentsAndBlanks(t *testing.T) {
	buf := []byte("# comment\n\n   \nreal,line\n")
	pos, ok := ConsumeLeading(buf, 0, []byte("#"), true)
	if !ok {
		t.Fatal("expected ok")
	}
	if string(buf[pos:]) != "real,line\n" {
		t.Errorf("got %q", buf[pos:])
	}
}

func TestConsumeLeadingNeedsMoreBytes(t *testing.T) {
	buf := []byte("# unterminated comment")
	_, ok := ConsumeLeading(buf, 0, []byte("#"), true)
	if ok {
		t.Fatal("expected ok=false, no newline yet")
	}
}

func TestReconcileHeaderCountExact(t *testing.T) {
	names := []string{"a", "b"}
	out, ok := ReconcileHeaderCount(names, 2)
	if !ok || len(out) != 2 {
		t.Fatalf("got %v, %v", out, ok)
	}
}

func TestReconcileHeaderCountRowNames(t *testing.T) {
	names := []string{"a", "b"}
	out, ok := ReconcileHeaderCount(names, 3)
	if !ok {
		t.Fatal("expected ok")
	}
	want := []string{"UNNAMED_0", "a", "b"}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestReconcileHeaderCountFatalMismatch(t *testing.T) {
	_, ok := ReconcileHeaderCount([]string{"a", "b"}, 5)
	if ok {
		t.Fatal("expected ok=false for a mismatch other than +1")
	}
}

func TestFillUnnamed(t *testing.T) {
	got := FillUnnamed([]string{"a", "", "c"})
	want := []string{"a", "UNNAMED_2", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"col name":  "col_name",
		"1st":       "_1st",
		"type":      "_type",
		"plainname": "plainname",
	}
	for in, want := range tests {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
