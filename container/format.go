package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"
)

const (
	// Magic identifies binarch container files (ASCII: "BAR1")
	Magic = 0x42415231
	// Version is the current container format version
	Version = 1

	// HeaderSize is the fixed length of the container header in bytes.
	HeaderSize = 24

	// FlagChecksum marks containers whose header carries an XXH64 checksum
	// of the payload.
	FlagChecksum uint16 = 1 << 0
	// FlagBigEndian marks containers written on a big-endian machine. The
	// payload is verbatim native bytes, so it is only readable where this
	// flag matches the reading machine.
	FlagBigEndian uint16 = 1 << 1
)

var (
	ErrInvalidMagic   = errors.New("container: invalid magic number")
	ErrInvalidVersion = errors.New("container: unsupported version")
	ErrTruncated      = errors.New("container: truncated file")
	ErrTrailingData   = errors.New("container: trailing data after payload")
	ErrEndianMismatch = errors.New("container: payload byte order does not match this machine")
)

// Header is the fixed-size descriptor at the start of every container file.
// The header itself is always encoded little-endian, whatever the payload's
// byte order; FlagBigEndian records the order the payload was written with.
type Header struct {
	Magic      uint32 // 0x42415231 ("BAR1")
	Version    uint16 // Container format version
	Flags      uint16 // FlagChecksum | FlagBigEndian
	PayloadLen uint64 // Payload length in bytes
	Checksum   uint64 // XXH64 of the payload, zero unless FlagChecksum
}

// encode serializes h into its fixed on-disk layout.
func (h Header) encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	binary.LittleEndian.PutUint16(buf[6:8], h.Flags)
	binary.LittleEndian.PutUint64(buf[8:16], h.PayloadLen)
	binary.LittleEndian.PutUint64(buf[16:24], h.Checksum)
	return buf
}

// decodeHeader parses the fixed header from the start of buf.
func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d header bytes, need %d", ErrTruncated, len(buf), HeaderSize)
	}
	return Header{
		Magic:      binary.LittleEndian.Uint32(buf[0:4]),
		Version:    binary.LittleEndian.Uint16(buf[4:6]),
		Flags:      binary.LittleEndian.Uint16(buf[6:8]),
		PayloadLen: binary.LittleEndian.Uint64(buf[8:16]),
		Checksum:   binary.LittleEndian.Uint64(buf[16:24]),
	}, nil
}

// validate checks that h describes a container this build can read.
func (h Header) validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, h.Magic)
	}
	if h.Version != Version {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, h.Version)
	}
	if h.Flags&FlagBigEndian != nativeEndianFlag() {
		return ErrEndianMismatch
	}
	return nil
}

// nativeEndianFlag returns FlagBigEndian on big-endian machines and zero on
// little-endian ones.
func nativeEndianFlag() uint16 {
	var test uint16 = 0x0001
	if *(*byte)(unsafe.Pointer(&test)) == 1 {
		return 0
	}
	return FlagBigEndian
}

// ChecksumMismatchError is returned when payload verification fails.
type ChecksumMismatchError struct {
	Expected uint64
	Actual   uint64
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("container: checksum mismatch: expected 0x%016x, got 0x%016x", e.Expected, e.Actual)
}

// IsChecksumMismatch returns true if err is a checksum mismatch error.
func IsChecksumMismatch(err error) bool {
	var mismatch *ChecksumMismatchError
	return errors.As(err, &mismatch)
}
