// Package container wraps binarch payloads in a small self-describing file
// envelope.
//
// A container is a fixed 24-byte header followed by the raw payload. The
// header carries a magic number, a format version, the payload length, the
// byte order the payload was written with and an optional XXH64 checksum.
// The payload stays verbatim native bytes; the envelope is what makes such
// an image safe to keep on disk, since wrong files, stale formats, foreign
// endianness and silent corruption are all rejected before a single payload
// byte is interpreted.
//
// Saves are atomic (temp file + rename) and loads can go through a
// read-only memory mapping for zero-copy access:
//
//	err := container.Save("data.bin", payload)
//
//	m, err := container.OpenMmap("data.bin")
//	defer m.Close()
//	r := m.Reader()
package container
