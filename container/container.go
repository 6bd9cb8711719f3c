package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Index is the read side shared by v3 and legacy containers.
type Index interface {
	// GlyphSize returns the glyph edge length in pixels.
	GlyphSize() int

	// RecordSize returns the number of bytes in one packed glyph record.
	RecordSize() int

	// Len returns the number of glyphs in the container.
	Len() int

	// Lookup returns the record index of r, or NotFound.
	// Only storage faults produce an error.
	Lookup(r rune) (int, error)

	// ReadRecord reads record i into dst, growing it if needed,
	// and returns the filled slice.
	ReadRecord(i int, dst []byte) ([]byte, error)
}

// Container is an open version 3 container.
//
// The header is parsed once by Open; the index and records stay in storage
// and are read on demand.
type Container struct {
	r      io.ReaderAt
	closer io.Closer
	hdr    Header
}

var _ Index = (*Container)(nil)

// Open parses the header of a v3 container backed by r.
//
// If r reports its size through a Size() int64 method (as *bytes.Reader,
// *io.SectionReader and *strings.Reader do), Open also checks that every
// record the header promises is present.
func Open(r io.ReaderAt) (*Container, error) {
	var buf [HeaderSize]byte
	if err := readFull(r, buf[:], 0); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, formatErrorf("truncated header")
		}
		return nil, fmt.Errorf("container: read header: %w", err)
	}

	hdr, err := ParseHeader(buf[:])
	if err != nil {
		return nil, err
	}

	if s, ok := r.(interface{ Size() int64 }); ok {
		want := int64(hdr.StartBitmap) + int64(hdr.Count())*int64(hdr.RecordSize)
		if got := s.Size(); got < want {
			return nil, formatErrorf("%d bytes of data, header requires %d", got, want)
		}
	}

	return &Container{r: r, hdr: hdr}, nil
}

// OpenFile opens the container stored at path.
// The returned Container owns the file; call Close to release it.
func OpenFile(path string) (*Container, error) {
	// #nosec G304 -- Font file path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("container: failed to open font file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("container: failed to stat font file: %w", err)
	}

	c, err := Open(io.NewSectionReader(f, 0, info.Size()))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	c.closer = f
	return c, nil
}

// Header returns the parsed header.
func (c *Container) Header() Header {
	return c.hdr
}

// GlyphSize returns the glyph edge length in pixels.
func (c *Container) GlyphSize() int {
	return c.hdr.GlyphSize
}

// RecordSize returns the number of bytes per glyph record.
func (c *Container) RecordSize() int {
	return c.hdr.RecordSize
}

// Len returns the number of glyphs.
func (c *Container) Len() int {
	return c.hdr.Count()
}

// Lookup binary-searches the code-point index for r.
//
// The search keeps an inclusive bracket [lo, hi] of entry offsets and probes
// lo + ((hi-lo)/4)*2, which is always entry-aligned. At most
// floor(log2(Len()))+1 entries are read. Code points above MaxRune are
// never stored and return NotFound without touching storage.
func (c *Container) Lookup(r rune) (int, error) {
	if r < 0 || r > MaxRune {
		return NotFound, nil
	}
	target := uint16(r)

	var buf [EntrySize]byte
	lo, hi := HeaderSize, c.hdr.StartBitmap-EntrySize
	for lo <= hi {
		mid := lo + ((hi-lo)/4)*2
		if err := readFull(c.r, buf[:], int64(mid)); err != nil {
			return NotFound, fmt.Errorf("container: read index entry at %d: %w", mid, err)
		}
		v := binary.BigEndian.Uint16(buf[:])
		switch {
		case v == target:
			return (mid - HeaderSize) / EntrySize, nil
		case v < target:
			lo = mid + EntrySize
		default:
			hi = mid - EntrySize
		}
	}
	return NotFound, nil
}

// RuneAt returns the code point stored at index entry i.
func (c *Container) RuneAt(i int) (rune, error) {
	if i < 0 || i >= c.Len() {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrRecordRange, i, c.Len())
	}
	var buf [EntrySize]byte
	if err := readFull(c.r, buf[:], int64(HeaderSize+i*EntrySize)); err != nil {
		return 0, fmt.Errorf("container: read index entry %d: %w", i, err)
	}
	return rune(binary.BigEndian.Uint16(buf[:])), nil
}

// ReadRecord reads the packed bitmap of record i.
func (c *Container) ReadRecord(i int, dst []byte) ([]byte, error) {
	return readRecord(c.r, c.hdr.StartBitmap, c.hdr.RecordSize, c.Len(), i, dst)
}

// Close releases the file opened by OpenFile. It is a no-op for containers
// created by Open.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	return err
}

// OpenIndex opens r as either a v3 or a legacy v1 container, choosing by
// the leading bytes.
func OpenIndex(r io.ReaderAt) (Index, error) {
	var lead [3]byte
	if err := readFull(r, lead[:], 0); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, formatErrorf("truncated header")
		}
		return nil, fmt.Errorf("container: read header: %w", err)
	}
	if string(lead[:2]) == Magic {
		return Open(r)
	}
	if lead[0] == LegacyVersion {
		return OpenLegacy(r)
	}
	return nil, formatErrorf("unrecognized leading bytes % x", lead)
}

func readRecord(r io.ReaderAt, start, size, count, i int, dst []byte) ([]byte, error) {
	if i < 0 || i >= count {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrRecordRange, i, count)
	}
	if cap(dst) < size {
		dst = make([]byte, size)
	}
	dst = dst[:size]
	if err := readFull(r, dst, int64(start)+int64(i)*int64(size)); err != nil {
		return nil, fmt.Errorf("container: read record %d: %w", i, err)
	}
	return dst, nil
}

// readFull fills buf from r at off. A short read is io.ErrUnexpectedEOF.
func readFull(r io.ReaderAt, buf []byte, off int64) error {
	n, err := r.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil || err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
