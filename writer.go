package binarch

import (
	"fmt"
	"io"
)

// zeroBlock is the shared fill source for reserved placeholder regions.
// Reserve copies from it in chunks so large placeholders never allocate.
var zeroBlock [512]byte

// Writer appends raw bytes to a seekable sink and tracks reserved
// placeholder regions so they can be patched once their final values are
// known (typically lengths or offsets that depend on data written later).
//
// The sink is borrowed, never closed, and must outlive the Writer. A Writer
// is a single serialization session: the first I/O failure latches and every
// subsequent call returns it. Call Drain before treating the stream as
// finalized; undrained placeholders remain zero-filled.
//
// A Writer must not be shared across goroutines without external
// synchronization.
type Writer struct {
	sink  io.WriteSeeker
	marks []int64
	err   error
}

// NewWriter creates a Writer around sink. The sink must support seeking
// within already-written data; placeholder patching depends on it.
func NewWriter(sink io.WriteSeeker) *Writer {
	return &Writer{sink: sink}
}

// WriteBytes appends p verbatim at the current stream position. A short
// write is fatal for the session and reported wrapping io.ErrShortWrite.
func (w *Writer) WriteBytes(p []byte) error {
	if w.err != nil {
		return w.err
	}
	if len(p) == 0 {
		return nil
	}

	n, err := w.sink.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.err = fmt.Errorf("binarch: wrote %d of %d bytes: %w", n, len(p), err)
		return w.err
	}
	return nil
}

// Reserve records the current position on the mark stack and writes size
// zero bytes, advancing past the reserved region. Use it when a value (for
// example a count) is unknown at the point it must appear in the stream;
// ReturnToMark later repositions the stream for the patch write.
func (w *Writer) Reserve(size int) error {
	if w.err != nil {
		return w.err
	}
	if size < 0 {
		return fmt.Errorf("%w: reserve %d bytes", ErrInvalidSize, size)
	}

	pos, err := w.sink.Seek(0, io.SeekCurrent)
	if err != nil {
		w.err = fmt.Errorf("binarch: query position: %w", err)
		return w.err
	}
	w.marks = append(w.marks, pos)

	for size > 0 {
		n := min(size, len(zeroBlock))
		if err := w.WriteBytes(zeroBlock[:n]); err != nil {
			return err
		}
		size -= n
	}
	return nil
}

// ReturnToMark pops the most recently reserved mark and seeks back to it,
// returning false: the caller may now overwrite the reserved region. If no
// marks are outstanding it seeks to the end of the stream and returns true,
// signalling that the stream is append-ready.
func (w *Writer) ReturnToMark() (bool, error) {
	if w.err != nil {
		return false, w.err
	}

	if len(w.marks) == 0 {
		if _, err := w.sink.Seek(0, io.SeekEnd); err != nil {
			w.err = fmt.Errorf("binarch: seek to end: %w", err)
			return false, w.err
		}
		return true, nil
	}

	mark := w.marks[len(w.marks)-1]
	w.marks = w.marks[:len(w.marks)-1]
	if _, err := w.sink.Seek(mark, io.SeekStart); err != nil {
		w.err = fmt.Errorf("binarch: seek to mark %d: %w", mark, err)
		return false, w.err
	}
	return false, nil
}

// Drain pops every outstanding mark and leaves the stream positioned at the
// end, regardless of how many placeholders were never patched. It is the
// explicit finalization step: call it before handing the stream off.
func (w *Writer) Drain() error {
	for {
		done, err := w.ReturnToMark()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Offset reports the current stream position. Composite encoders use it to
// record offsets of sections they intend to reference elsewhere.
func (w *Writer) Offset() (int64, error) {
	if w.err != nil {
		return 0, w.err
	}
	pos, err := w.sink.Seek(0, io.SeekCurrent)
	if err != nil {
		w.err = fmt.Errorf("binarch: query position: %w", err)
		return 0, w.err
	}
	return pos, nil
}

// PendingMarks returns the number of reserved regions not yet revisited.
func (w *Writer) PendingMarks() int {
	return len(w.marks)
}

// Err returns the latched session error, or nil while the Writer is healthy.
func (w *Writer) Err() error {
	return w.err
}
