package source

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// prefetchBufSize is the size of each background-read chunk.
const prefetchBufSize = 64 * 1024

// prefetchDepth bounds how many chunks the background reader may get
// ahead of the consumer, capping memory use.
const prefetchDepth = 4

type prefetchChunk struct {
	data []byte
	err  error
}

// Prefetcher wraps a slow, latency-bound Reader (typically an HTTP
// response body) with a background goroutine that keeps reading
// ahead into a bounded channel, so the chunk driver's CPU-bound
// scanning work overlaps with the source's network I/O instead of
// alternating with it.
type Prefetcher struct {
	ch     chan prefetchChunk
	group  *errgroup.Group
	cancel context.CancelFunc
	body   io.Closer
	cur    []byte
}

// NewPrefetcher starts the background read loop over r, stopping it
// when ctx is canceled or Close is called.
func NewPrefetcher(ctx context.Context, r io.ReadCloser) *Prefetcher {
	ctx, cancel := context.WithCancel(ctx)
	group, gctx := errgroup.WithContext(ctx)
	p := &Prefetcher{
		ch:     make(chan prefetchChunk, prefetchDepth),
		group:  group,
		cancel: cancel,
		body:   r,
	}
	group.Go(func() error {
		defer close(p.ch)
		for {
			buf := make([]byte, prefetchBufSize)
			n, err := r.Read(buf)
			if n > 0 {
				select {
				case p.ch <- prefetchChunk{data: buf[:n]}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			if err != nil {
				if err != io.EOF {
					select {
					case p.ch <- prefetchChunk{err: err}:
					case <-gctx.Done():
					}
				}
				return nil
			}
		}
	})
	return p
}

// Read implements io.Reader by draining the background channel.
func (p *Prefetcher) Read(dst []byte) (int, error) {
	if len(p.cur) == 0 {
		chunk, ok := <-p.ch
		if !ok {
			return 0, io.EOF
		}
		if chunk.err != nil {
			return 0, chunk.err
		}
		p.cur = chunk.data
	}
	n := copy(dst, p.cur)
	p.cur = p.cur[n:]
	return n, nil
}

// Close stops the background goroutine and closes the underlying
// body, waiting for the goroutine to observe cancellation.
func (p *Prefetcher) Close() error {
	p.cancel()
	_ = p.group.Wait()
	return p.body.Close()
}
