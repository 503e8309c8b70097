package container

import (
	"bytes"

	"github.com/hupe1980/binarch"
	"github.com/hupe1980/binarch/internal/mmap"
)

// Mapped is a container opened through a read-only memory mapping. The
// payload aliases the mapping directly; views into it, including Readers
// from Reader, stay valid until Close.
type Mapped struct {
	f       *mmap.File
	payload []byte
	ropts   []binarch.ReaderOption
}

// OpenMmap memory-maps the container at path, validating the envelope the
// same way Load does. The payload is not copied.
func OpenMmap(path string, optFns ...Option) (*Mapped, error) {
	o := applyOptions(optFns)

	f, err := mmap.Open(path)
	if err != nil {
		o.logger.LogLoad(path, 0, err)
		return nil, err
	}
	payload, err := parse(f.Data)
	o.logger.LogLoad(path, len(payload), err)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Mapped{f: f, payload: payload, ropts: o.readerOpts}, nil
}

// Payload returns the mapped payload bytes without copying.
func (m *Mapped) Payload() []byte {
	if m == nil {
		return nil
	}
	return m.payload
}

// Reader returns a fresh Reader positioned at the start of the payload.
// Each call returns an independent Reader.
func (m *Mapped) Reader() *binarch.Reader {
	return binarch.NewReader(bytes.NewReader(m.payload), m.ropts...)
}

// Close drops the mapping. The payload and any Readers over it must not be
// used afterwards.
func (m *Mapped) Close() error {
	if m == nil {
		return nil
	}
	m.payload = nil
	return m.f.Close()
}
