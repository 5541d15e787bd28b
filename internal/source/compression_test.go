package source

import (
	"bytes"
	"testing"
)

func TestDetectPlain(t *testing.T) {
	format, br, err := Detect(bytes.NewReader([]byte("a,b,c\n1,2,3\n")))
	if err != nil {
		t.Fatal(err)
	}
	if format != Plain {
		t.Errorf("format = %v, want Plain", format)
	}
	peek, _ := br.Peek(5)
	if string(peek) != "a,b,c" {
		t.Errorf("peeked bytes were consumed: got %q", peek)
	}
}

func TestDetectGzip(t *testing.T) {
	data := []byte{0x1F, 0x8B, 0x08, 0x00, 0x00, 0x00}
	format, _, err := Detect(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if format != Gzip {
		t.Errorf("format = %v, want Gzip", format)
	}
}

func TestDetectZstd(t *testing.T) {
	data := []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00, 0x00}
	format, _, err := Detect(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if format != Zstd {
		t.Errorf("format = %v, want Zstd", format)
	}
}

func TestDetectXZUnsupported(t *testing.T) {
	data := []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
	format, _, err := Detect(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if format != XZ {
		t.Errorf("format = %v, want XZ", format)
	}
	_, err = Decompress(bytes.NewReader(data), format)
	if err != ErrUnsupportedCompression {
		t.Errorf("err = %v, want ErrUnsupportedCompression", err)
	}
}

func TestDetectShortInput(t *testing.T) {
	format, _, err := Detect(bytes.NewReader([]byte("ab")))
	if err != nil {
		t.Fatal(err)
	}
	if format != Plain {
		t.Errorf("format = %v, want Plain for short input", format)
	}
}
