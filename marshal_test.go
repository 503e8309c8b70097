package binarch

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type record struct {
	ID      uint64
	Label   string
	Samples []float32
}

func (rec *record) MarshalArchive(w *Writer) error {
	if err := Write(w, rec.ID); err != nil {
		return err
	}
	if err := WriteString(w, rec.Label); err != nil {
		return err
	}
	if err := WriteCount(w, len(rec.Samples)); err != nil {
		return err
	}
	return WriteSlice(w, rec.Samples)
}

func (rec *record) UnmarshalArchive(r *Reader) error {
	id, err := Read[uint64](r)
	if err != nil {
		return err
	}
	label, err := ReadString(r)
	if err != nil {
		return err
	}
	n, err := ReadCount(r)
	if err != nil {
		return err
	}
	samples, err := ReadSliceN[float32](r, n)
	if err != nil {
		return err
	}
	rec.ID, rec.Label, rec.Samples = id, label, samples
	return nil
}

// frame prefixes its body with a byte length that is only known once the
// body has been written, exercising Reserve and ReturnToMark through the
// Marshaler path.
type frame struct {
	Records []record
}

func (f *frame) MarshalArchive(w *Writer) error {
	if err := w.Reserve(8); err != nil {
		return err
	}
	start, err := w.Offset()
	if err != nil {
		return err
	}

	if err := WriteCount(w, len(f.Records)); err != nil {
		return err
	}
	for i := range f.Records {
		if err := f.Records[i].MarshalArchive(w); err != nil {
			return err
		}
	}

	end, err := w.Offset()
	if err != nil {
		return err
	}
	if _, err := w.ReturnToMark(); err != nil {
		return err
	}
	return Write(w, uint64(end-start))
}

func (f *frame) UnmarshalArchive(r *Reader) error {
	if _, err := Read[uint64](r); err != nil { // body length, unused here
		return err
	}
	n, err := ReadCount(r)
	if err != nil {
		return err
	}
	f.Records = make([]record, n)
	for i := range f.Records {
		if err := f.Records[i].UnmarshalArchive(r); err != nil {
			return err
		}
	}
	return nil
}

func TestMarshal_RoundTrip(t *testing.T) {
	rec := &record{ID: 99, Label: "sensor-a", Samples: []float32{0.5, -1.25, 2}}

	data, err := Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, 8+8+len(rec.Label)+8+3*4, len(data))

	var got record
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, *rec, got)
}

func TestMarshal_PlaceholderBackpatch(t *testing.T) {
	f := &frame{Records: []record{
		{ID: 1, Label: "first", Samples: []float32{1}},
		{ID: 2, Label: "second", Samples: []float32{2, 4}},
	}}

	data, err := Marshal(f)
	require.NoError(t, err)

	// The patched prefix must equal the body length that followed it.
	r := NewReader(bytes.NewReader(data))
	bodyLen, err := Read[uint64](r)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(data)-8), bodyLen)

	var got frame
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, f.Records, got.Records)
}

type failingMarshaler struct{}

func (failingMarshaler) MarshalArchive(w *Writer) error {
	return errors.New("boom")
}

func TestMarshal_ErrorPropagates(t *testing.T) {
	_, err := Marshal(failingMarshaler{})
	require.EqualError(t, err, "boom")
}

func TestUnmarshal_SizeLimit(t *testing.T) {
	rec := &record{ID: 1, Label: "this label is longer than the limit"}
	data, err := Marshal(rec)
	require.NoError(t, err)

	var got record
	err = Unmarshal(data, &got, WithSizeLimit(4))
	require.ErrorIs(t, err, ErrSizeLimit)
}

func TestSessions_Parallel(t *testing.T) {
	// Sessions share nothing, so independent archives may run on separate
	// goroutines.
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i
		g.Go(func() error {
			rec := &record{
				ID:      uint64(i),
				Label:   fmt.Sprintf("rec-%d", i),
				Samples: []float32{float32(i), float32(i) / 2},
			}
			data, err := Marshal(rec)
			if err != nil {
				return err
			}
			var got record
			if err := Unmarshal(data, &got); err != nil {
				return err
			}
			if got.ID != rec.ID || got.Label != rec.Label {
				return fmt.Errorf("round trip mismatch for %d", i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
