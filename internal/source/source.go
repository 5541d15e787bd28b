// Package source implements the external source abstraction (section
// 6): opening files, HTTP endpoints, and stdin behind a uniform
// io.ReadCloser, compression-format detection and decompression, and
// a background-prefetching reader for network-backed sources.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Open opens a local file for reading. Regular files are
// memory-mapped (mmapFile, platform-specific); anything else (a pipe,
// a named FIFO, a subprocess's stdout) falls back to buffered file
// reads through the *os.File itself.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("source: stat %s: %w", path, err)
	}
	if !stat.Mode().IsRegular() {
		return f, nil
	}
	data, cleanup, err := mmapFile(f)
	if err != nil {
		// Not every regular file is mappable (zero-length, unusual
		// filesystem); fall back to ordinary reads rather than fail.
		return f, nil
	}
	return &mmapReadCloser{r: bytes.NewReader(data), file: f, cleanup: cleanup}, nil
}

type mmapReadCloser struct {
	r       io.Reader
	file    *os.File
	cleanup func() error
}

func (m *mmapReadCloser) Read(p []byte) (int, error) { return m.r.Read(p) }

func (m *mmapReadCloser) Close() error {
	cerr := m.cleanup()
	ferr := m.file.Close()
	if cerr != nil {
		return cerr
	}
	return ferr
}

// OpenHTTP issues a GET request against url and returns its body as a
// source, wrapping it in a Prefetcher so network latency overlaps
// with the chunk driver's parsing work.
func OpenHTTP(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("source: build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("source: fetch %s: status %s", url, resp.Status)
	}
	return NewPrefetcher(ctx, resp.Body), nil
}
