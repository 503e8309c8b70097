package binarch

import (
	"fmt"
	"unsafe"
)

// Scalar is the closed set of types the archive copies verbatim: their
// exact in-memory representation goes to and comes from the stream, with no
// conversion and no tagging. Platform-width int, uint and uintptr are
// deliberately absent — a stream written with them could not be sized
// consistently — and there is no catch-all variant that could silently
// mis-serialize a composite type. Everything outside this set goes through
// Marshaler/Unmarshaler instead.
type Scalar interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Write appends v's native byte representation to w in a single call.
// Round trips are bit-exact, including float NaN payloads.
func Write[T Scalar](w *Writer, v T) error {
	return w.WriteBytes(unsafe.Slice((*byte)(unsafe.Pointer(&v)), int(unsafe.Sizeof(v))))
}

// Read decodes a value written by Write, reading directly into the value's
// own storage.
func Read[T Scalar](r *Reader) (T, error) {
	var v T
	if err := r.ReadBytes(unsafe.Slice((*byte)(unsafe.Pointer(&v)), int(unsafe.Sizeof(v)))); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// WriteSlice appends the entire contiguous region backing s — len(s) *
// sizeof(T) bytes — in one call. It is equivalent to writing each element
// through Write, without the per-element dispatch. An empty slice writes
// nothing.
func WriteSlice[T Scalar](w *Writer, s []T) error {
	if len(s) == 0 {
		return nil
	}
	if err := checkAlignment(s); err != nil {
		return err
	}
	return w.WriteBytes(AsBytes(s))
}

// ReadSlice fills all of dst from the stream; the caller fixes the element
// count via len(dst). An empty slice reads nothing.
func ReadSlice[T Scalar](r *Reader, dst []T) error {
	if len(dst) == 0 {
		return nil
	}
	if err := checkAlignment(dst); err != nil {
		return err
	}
	return r.ReadBytes(AsBytes(dst))
}

// ReadSliceN allocates a slice of n elements and fills it from the stream.
// The allocation is checked against the Reader's size limit first, so a
// corrupt count fails before memory is committed.
func ReadSliceN[T Scalar](r *Reader, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d elements", ErrInvalidSize, n)
	}
	if n == 0 {
		return nil, nil
	}

	var zero T
	size := int64(unsafe.Sizeof(zero))
	if int64(n) > (int64(1)<<62)/size {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrSizeLimit, n, size)
	}
	if err := r.checkSize(int64(n) * size); err != nil {
		return nil, err
	}

	s := make([]T, n)
	if err := ReadSlice(r, s); err != nil {
		return nil, err
	}
	return s, nil
}

// AsBytes reinterprets s as its raw backing bytes without copying. This is
// the raw-buffer escape hatch: combined with Writer.WriteBytes and
// Reader.ReadBytes it moves any contiguous scalar payload verbatim,
// independent of the declared element type. The view aliases s and is only
// valid while s is.
func AsBytes[T Scalar](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

// checkAlignment rejects slices whose backing array violates the element
// type's natural alignment. Ordinary Go allocations never do; unsafe-crafted
// views can.
func checkAlignment[T Scalar](s []T) error {
	if len(s) == 0 {
		return nil
	}
	if a := unsafe.Alignof(s[0]); uintptr(unsafe.Pointer(&s[0]))%a != 0 {
		return fmt.Errorf("%w: %T slice at address 0x%x", ErrMisaligned, s[0], uintptr(unsafe.Pointer(&s[0])))
	}
	return nil
}
