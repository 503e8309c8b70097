package binarch

// DefaultSizeLimit bounds a single count-framed allocation (blob, string or
// counted slice) unless overridden with WithSizeLimit. Scalar and
// caller-sized reads are never limited.
const DefaultSizeLimit int64 = 1 << 30

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithSizeLimit sets the maximum number of bytes a single count-framed read
// may allocate. A limit <= 0 disables the guard entirely; only do that for
// trusted inputs.
func WithSizeLimit(n int64) ReaderOption {
	return func(r *Reader) {
		r.limit = n
	}
}
