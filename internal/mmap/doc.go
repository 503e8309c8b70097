// Package mmap provides read-only memory-mapped file access.
//
// # Overview
//
// Memory mapping gives direct access to file contents without copying them
// through userspace buffers, which keeps loading a large container cheap:
// the payload is a view into the page cache rather than a heap allocation.
//
// # Usage
//
//	m, err := mmap.Open("archive.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Data // zero-copy view of the file
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with PROT_READ
//   - Windows: CreateFileMapping/MapViewOfFile
//
// Callers must not touch Data after Close returns; the mapping is gone.
package mmap
