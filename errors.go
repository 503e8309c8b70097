package binarch

import "errors"

var (
	// ErrInvalidSize is returned when a size or count argument is negative.
	ErrInvalidSize = errors.New("binarch: invalid size")

	// ErrSizeLimit is returned when a count read from the stream exceeds the
	// Reader's configured allocation limit. It usually means the stream is
	// corrupt or hostile rather than merely large.
	ErrSizeLimit = errors.New("binarch: size limit exceeded")

	// ErrMisaligned is returned when a slice handed to a verbatim adapter
	// does not satisfy its element type's natural alignment. Slices from
	// ordinary Go allocations are always aligned; this only triggers on
	// views crafted with unsafe.
	ErrMisaligned = errors.New("binarch: misaligned slice data")
)
