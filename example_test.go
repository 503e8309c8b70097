package binarch_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hupe1980/binarch"
)

// Example demonstrates the basic write-then-read cycle for scalars and raw
// buffers.
func Example() {
	var buf binarch.Buffer
	w := binarch.NewWriter(&buf)

	if err := binarch.Write(w, int32(42)); err != nil {
		log.Fatal(err)
	}
	if err := binarch.Write(w, float64(3.5)); err != nil {
		log.Fatal(err)
	}
	if err := w.WriteBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8}); err != nil {
		log.Fatal(err)
	}

	r := binarch.NewReader(bytes.NewReader(buf.Bytes()))
	i, _ := binarch.Read[int32](r)
	f, _ := binarch.Read[float64](r)
	raw := make([]byte, 8)
	if err := r.ReadBytes(raw); err != nil {
		log.Fatal(err)
	}

	fmt.Println(i, f, raw, buf.Len())
	// Output: 42 3.5 [1 2 3 4 5 6 7 8] 20
}

// Example_placeholder demonstrates reserving a length field before its
// value is known and patching it afterwards.
func Example_placeholder() {
	var buf binarch.Buffer
	w := binarch.NewWriter(&buf)

	// Reserve room for the payload length up front.
	if err := w.Reserve(8); err != nil {
		log.Fatal(err)
	}

	payload := []float32{1.5, 2.5, 3.5}
	if err := binarch.WriteSlice(w, payload); err != nil {
		log.Fatal(err)
	}

	// Jump back, patch the length, and resume at the tail.
	if _, err := w.ReturnToMark(); err != nil {
		log.Fatal(err)
	}
	if err := binarch.Write(w, uint64(len(payload))); err != nil {
		log.Fatal(err)
	}
	if err := w.Drain(); err != nil {
		log.Fatal(err)
	}

	r := binarch.NewReader(bytes.NewReader(buf.Bytes()))
	n, _ := binarch.Read[uint64](r)
	values, err := binarch.ReadSliceN[float32](r, int(n))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(n, values)
	// Output: 3 [1.5 2.5 3.5]
}

type point struct {
	X, Y int32
}

func (p *point) MarshalArchive(w *binarch.Writer) error {
	if err := binarch.Write(w, p.X); err != nil {
		return err
	}
	return binarch.Write(w, p.Y)
}

func (p *point) UnmarshalArchive(r *binarch.Reader) error {
	x, err := binarch.Read[int32](r)
	if err != nil {
		return err
	}
	y, err := binarch.Read[int32](r)
	if err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

// Example_marshaler demonstrates round-tripping a composite type through
// the Marshaler and Unmarshaler interfaces.
func Example_marshaler() {
	data, err := binarch.Marshal(&point{X: -3, Y: 7})
	if err != nil {
		log.Fatal(err)
	}

	var p point
	if err := binarch.Unmarshal(data, &p); err != nil {
		log.Fatal(err)
	}

	fmt.Println(p.X, p.Y, len(data))
	// Output: -3 7 8
}
