package binarch

import "bytes"

// Marshaler is implemented by composite types that know how to serialize
// themselves into an archive. Implementations typically chain Write,
// WriteSlice and nested MarshalArchive calls, and may use Reserve and
// ReturnToMark to backpatch values they only know after writing.
type Marshaler interface {
	MarshalArchive(w *Writer) error
}

// Unmarshaler is the decoding counterpart of Marshaler. Implementations must
// consume exactly the bytes their MarshalArchive produced.
type Unmarshaler interface {
	UnmarshalArchive(r *Reader) error
}

// Marshal serializes m into a fresh byte slice. Pending placeholder marks
// are drained before the bytes are returned, so a MarshalArchive that
// reserves regions without returning to all of them still yields a stream
// positioned at its tail.
func Marshal(m Marshaler) ([]byte, error) {
	var buf Buffer
	w := NewWriter(&buf)
	if err := m.MarshalArchive(w); err != nil {
		return nil, err
	}
	if err := w.Drain(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data into u. Reader options, such as WithSizeLimit,
// apply to the whole decode.
func Unmarshal(data []byte, u Unmarshaler, opts ...ReaderOption) error {
	return u.UnmarshalArchive(NewReader(bytes.NewReader(data), opts...))
}
