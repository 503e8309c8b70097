package binarch

import (
	"fmt"
	"io"
)

// Reader consumes raw bytes from a source in exactly the order they were
// written. It is strictly forward: there is no mark stack on the read side,
// because a finalized stream has every placeholder already patched.
//
// The source is borrowed, never closed, and must outlive the Reader. Like
// the Writer, a Reader is a single session with a latched error, and must
// not be shared across goroutines without external synchronization.
type Reader struct {
	src   io.Reader
	limit int64
	err   error
}

// NewReader creates a Reader around src.
func NewReader(src io.Reader, opts ...ReaderOption) *Reader {
	r := &Reader{src: src, limit: DefaultSizeLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// ReadBytes fills p with exactly len(p) bytes from the source, advancing
// position. A premature end of stream is fatal for the session: it reports
// an error wrapping io.ErrUnexpectedEOF (or io.EOF when nothing at all was
// available), never a silent truncation.
func (r *Reader) ReadBytes(p []byte) error {
	if r.err != nil {
		return r.err
	}
	if len(p) == 0 {
		return nil
	}

	n, err := io.ReadFull(r.src, p)
	if err != nil {
		r.err = fmt.Errorf("binarch: read %d of %d bytes: %w", n, len(p), err)
		return r.err
	}
	return nil
}

// checkSize guards count-framed allocations (blobs, strings, counted
// slices) against hostile or corrupt counts before memory is committed.
func (r *Reader) checkSize(n int64) error {
	if r.limit > 0 && n > r.limit {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrSizeLimit, n, r.limit)
	}
	return nil
}

// Err returns the latched session error, or nil while the Reader is healthy.
func (r *Reader) Err() error {
	return r.err
}
