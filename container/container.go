package container

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/hupe1980/binarch"
)

type options struct {
	checksum   bool
	logger     *binarch.Logger
	readerOpts []binarch.ReaderOption
}

// Option configures how containers are saved and opened.
type Option func(*options)

// WithChecksum toggles the XXH64 payload checksum on save. Checksums are on
// by default. Loading always verifies a checksum when the file carries one,
// regardless of this option.
func WithChecksum(enabled bool) Option {
	return func(o *options) {
		o.checksum = enabled
	}
}

// WithLogger configures structured logging for save and load operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := binarch.NewJSONLogger(slog.LevelInfo)
//	err := container.Save(path, payload, container.WithLogger(logger))
func WithLogger(logger *binarch.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithReaderOptions sets the options applied to every Reader the container
// hands out, i.e. by Mapped.Reader and LoadUnmarshaler.
//
// Example:
//
//	m, err := container.OpenMmap(path,
//	    container.WithReaderOptions(binarch.WithSizeLimit(64<<20)))
func WithReaderOptions(opts ...binarch.ReaderOption) Option {
	return func(o *options) {
		o.readerOpts = opts
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		checksum: true,
		logger:   binarch.NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = binarch.NoopLogger()
	}
	return o
}

// Save writes payload to path wrapped in a container envelope. The write is
// atomic: data goes to a temp file in the same directory, which replaces
// path only after a successful sync.
func Save(path string, payload []byte, optFns ...Option) error {
	o := applyOptions(optFns)

	h := Header{
		Magic:      Magic,
		Version:    Version,
		Flags:      nativeEndianFlag(),
		PayloadLen: uint64(len(payload)),
	}
	if o.checksum {
		h.Flags |= FlagChecksum
		h.Checksum = xxhash.Sum64(payload)
	}

	err := atomicWriteFile(path, func(w io.Writer) error {
		if _, err := w.Write(h.encode()); err != nil {
			return err
		}
		_, err := w.Write(payload)
		return err
	})
	o.logger.LogSave(path, len(payload), err)
	return err
}

// SaveMarshaler marshals m and saves the result as a container.
func SaveMarshaler(path string, m binarch.Marshaler, optFns ...Option) error {
	payload, err := binarch.Marshal(m)
	if err != nil {
		return err
	}
	return Save(path, payload, optFns...)
}

// Load reads the container at path and returns its payload. The envelope is
// validated and, when present, the checksum is verified before the payload
// is handed back.
func Load(path string, optFns ...Option) ([]byte, error) {
	return load(path, applyOptions(optFns))
}

// LoadUnmarshaler loads the container at path and decodes its payload
// into u.
func LoadUnmarshaler(path string, u binarch.Unmarshaler, optFns ...Option) error {
	o := applyOptions(optFns)
	payload, err := load(path, o)
	if err != nil {
		return err
	}
	return binarch.Unmarshal(payload, u, o.readerOpts...)
}

func load(path string, o options) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		o.logger.LogLoad(path, 0, err)
		return nil, err
	}
	payload, err := parse(data)
	o.logger.LogLoad(path, len(payload), err)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// parse splits data into header and payload, validating the envelope and
// verifying the checksum when the header carries one.
func parse(data []byte) ([]byte, error) {
	h, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	if err := h.validate(); err != nil {
		return nil, err
	}

	rest := data[HeaderSize:]
	if uint64(len(rest)) < h.PayloadLen {
		return nil, fmt.Errorf("%w: %d payload bytes, header says %d", ErrTruncated, len(rest), h.PayloadLen)
	}
	if uint64(len(rest)) > h.PayloadLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, uint64(len(rest))-h.PayloadLen)
	}

	payload := rest[:h.PayloadLen]
	if h.Flags&FlagChecksum != 0 {
		if sum := xxhash.Sum64(payload); sum != h.Checksum {
			return nil, &ChecksumMismatchError{Expected: h.Checksum, Actual: sum}
		}
	}
	return payload, nil
}

// atomicWriteFile writes to a temp file in the target's directory to ensure
// the final rename is atomic.
func atomicWriteFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	// Match typical file permissions (best-effort).
	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := write(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Atomically replace target.
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	// Success: prevent deferred cleanup from removing the final file.
	tmpName = ""
	return nil
}
