// Package binarch implements minimal binary serialization archives.
//
// Binarch copies values to and from a stream in their native in-memory
// representation. There is no tagging and no varint packing: the bytes a
// Writer produces are exactly the bytes a Reader consumes. That makes the
// format compact and essentially memcpy-fast, at the cost of tying a stream
// to the endianness of the machine that wrote it.
//
// # Quick Start
//
// Writing and reading scalars:
//
//	var buf binarch.Buffer
//	w := binarch.NewWriter(&buf)
//	binarch.Write(w, int32(42))
//	binarch.Write(w, float64(3.5))
//	binarch.WriteSlice(w, []uint16{1, 2, 3})
//
//	r := binarch.NewReader(bytes.NewReader(buf.Bytes()))
//	n, _ := binarch.Read[int32](r)
//	f, _ := binarch.Read[float64](r)
//
// # Placeholders
//
// A length or offset field that is only known after the data following it
// has been written can be reserved up front and patched later:
//
//	w.Reserve(8)                    // zero-filled, position recorded
//	binarch.WriteSlice(w, payload)
//	w.ReturnToMark()                // jump back to the placeholder
//	binarch.Write(w, uint64(len(payload)))
//	w.Drain()                       // resume at the stream tail
//
// Marks nest LIFO, so reserved regions can themselves contain reserved
// regions.
//
// # Composite Types
//
// Types implement Marshaler and Unmarshaler to chain into archives:
//
//	func (p *Point) MarshalArchive(w *binarch.Writer) error {
//	    if err := binarch.Write(w, p.X); err != nil {
//	        return err
//	    }
//	    return binarch.Write(w, p.Y)
//	}
//
//	data, _ := binarch.Marshal(p)
//	err := binarch.Unmarshal(data, &q)
//
// # Containers
//
// The container package wraps a payload in a small self-describing file
// envelope carrying a magic number, a format version, an endianness flag
// and an XXH64 checksum. Writes are atomic and loads can be memory-mapped:
//
//	err := container.Save("points.bin", data)
//	payload, err := container.Load("points.bin")
//
// # Key Features
//
//   - Verbatim scalar and slice serialization via a closed generic constraint
//   - LIFO placeholder marks for backpatching headers
//   - Sticky session errors: the first failure wins, later calls are no-ops
//   - Size-limited reading that stops corrupt counts before allocation
//   - Checksummed, mmap-able file container
package binarch
