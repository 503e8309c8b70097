package binarch

import (
	"encoding"
	"fmt"
	"math"
)

// WriteCount records an element count as a fixed 8-byte unsigned value.
// The fixed width keeps stream offsets identical across platforms, whatever
// the native int size.
func WriteCount(w *Writer, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: count %d", ErrInvalidSize, n)
	}
	return Write(w, uint64(n))
}

// ReadCount decodes a count written by WriteCount. A count that cannot fit
// in an int on this platform, or that exceeds the Reader's size limit, fails
// before anything is allocated from it.
func ReadCount(r *Reader) (int, error) {
	n, err := Read[uint64](r)
	if err != nil {
		return 0, err
	}
	if n > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: count %d", ErrSizeLimit, n)
	}
	if err := r.checkSize(int64(n)); err != nil {
		return 0, err
	}
	return int(n), nil
}

// WriteString records s as a count followed by its raw bytes.
func WriteString(w *Writer, s string) error {
	if err := WriteCount(w, len(s)); err != nil {
		return err
	}
	return w.WriteBytes([]byte(s))
}

// ReadString decodes a string written by WriteString.
func ReadString(r *Reader) (string, error) {
	n, err := ReadCount(r)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	b := make([]byte, n)
	if err := r.ReadBytes(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteBlob records b as a count followed by its raw bytes.
func WriteBlob(w *Writer, b []byte) error {
	if err := WriteCount(w, len(b)); err != nil {
		return err
	}
	return w.WriteBytes(b)
}

// ReadBlob decodes a byte slice written by WriteBlob. A zero-length blob
// decodes as nil.
func ReadBlob(r *Reader) ([]byte, error) {
	n, err := ReadCount(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	b := make([]byte, n)
	if err := r.ReadBytes(b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteBinaryMarshaler records m's MarshalBinary output as a length-prefixed
// blob. Types that carry their own wire format, such as compressed bitmaps or
// time values, embed into an archive this way without hand-written glue. A
// marshal failure leaves the stream untouched.
func WriteBinaryMarshaler(w *Writer, m encoding.BinaryMarshaler) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("binarch: marshal binary: %w", err)
	}
	return WriteBlob(w, data)
}

// ReadBinaryUnmarshaler restores a value written by WriteBinaryMarshaler.
func ReadBinaryUnmarshaler(r *Reader, u encoding.BinaryUnmarshaler) error {
	data, err := ReadBlob(r)
	if err != nil {
		return err
	}
	if err := u.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("binarch: unmarshal binary: %w", err)
	}
	return nil
}
