package dlm

import (
	"context"
	"fmt"
	"io"

	"github.com/shapestone/shape-dlm/internal/source"
)

// ReadFile opens path (memory-mapping regular files, falling back to
// buffered reads for pipes and other non-regular files), transparently
// decompressing a gzip or zstd envelope if the leading bytes match
// one, and reads it in full according to opts.
func ReadFile(path string, opts ReaderOptions) (*Table, error) {
	rc, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r, err := decompressed(rc)
	if err != nil {
		return nil, err
	}
	return ReadDelim(r, opts)
}

// ReadURL fetches url over HTTP, overlapping the download with
// parsing via a background prefetcher, transparently decompressing a
// gzip or zstd envelope, and reads the body in full according to
// opts.
func ReadURL(ctx context.Context, url string, opts ReaderOptions) (*Table, error) {
	rc, err := source.OpenHTTP(ctx, url)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r, err := decompressed(rc)
	if err != nil {
		return nil, err
	}
	return ReadDelim(r, opts)
}

func decompressed(rc io.Reader) (io.Reader, error) {
	format, br, err := source.Detect(rc)
	if err != nil {
		return nil, fmt.Errorf("dlm: detecting compression: %w", err)
	}
	r, err := source.Decompress(br, format)
	if err != nil {
		return nil, fmt.Errorf("dlm: decompressing: %w", err)
	}
	return r, nil
}
