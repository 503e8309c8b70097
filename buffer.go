package binarch

import (
	"fmt"
	"io"
)

// Buffer is an in-memory io.WriteSeeker with file semantics: seeking past
// the end is allowed, and any gap between the old end and a later write
// reads back as zeros. It is the natural sink for archives built in memory,
// and what Marshal uses underneath. The zero value is ready to use.
type Buffer struct {
	data []byte
	pos  int64
}

// Write copies p at the current position, extending the buffer as needed,
// and advances the position past it.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		b.grow(end)
	}
	copy(b.data[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

// grow extends the buffer to n bytes, zeroing everything past the old
// length. Capacity retained across Reset may hold stale bytes, so the
// resliced region is cleared explicitly.
func (b *Buffer) grow(n int64) {
	old := len(b.data)
	if n <= int64(cap(b.data)) {
		b.data = b.data[:n]
	} else {
		b.data = append(b.data, make([]byte, n-int64(old))...)
	}
	clear(b.data[old:])
}

// Seek sets the position for the next Write. Seeking beyond the end is
// valid; the buffer only grows when the gap is written.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("binarch: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("binarch: negative seek position %d", abs)
	}
	b.pos = abs
	return abs, nil
}

// Bytes returns the written contents. The slice aliases the buffer's
// storage and is valid until the next mutation.
func (b *Buffer) Bytes() []byte { return b.data }

// Len reports the buffer length in bytes, independent of the current
// position.
func (b *Buffer) Len() int { return len(b.data) }

// Reset truncates the buffer to empty and rewinds the position, retaining
// capacity for reuse.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.pos = 0
}
