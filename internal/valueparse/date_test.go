package valueparse

import "testing"

func TestLooksLikeDate(t *testing.T) {
	if !LooksLikeDate("2024-01-15") {
		t.Error("expected match")
	}
	if LooksLikeDate("2024-01-15T10:00:00") {
		t.Error("expected no match for datetime")
	}
}

func TestLooksLikeDatetime(t *testing.T) {
	if !LooksLikeDatetime("2024-01-15T10:00:00") {
		t.Error("expected match with T separator")
	}
	if !LooksLikeDatetime("2024-01-15 10:00:00.123") {
		t.Error("expected match with space separator and fraction")
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 2024 || got.Month() != 1 || got.Day() != 15 {
		t.Errorf("got %v", got)
	}
}

func TestParseDatetime(t *testing.T) {
	sep := DatetimeSeparator("2024-01-15T10:30:00")
	if sep != 'T' {
		t.Errorf("sep = %q, want 'T'", sep)
	}
	got, err := ParseDatetime("2024-01-15T10:30:00.500", sep)
	if err != nil {
		t.Fatal(err)
	}
	if got.Nanosecond() != 500000000 {
		t.Errorf("nanosecond = %d, want 500000000", got.Nanosecond())
	}
}
