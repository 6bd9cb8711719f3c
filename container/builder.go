package container

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/gogpu/bmfont/bitmap"
)

// Builder collects glyphs and writes them as a container.
//
// Glyphs may be added in any order; WriteTo sorts the index by code point.
// A Builder is not safe for concurrent use.
type Builder struct {
	glyphSize int
	records   map[rune][]byte
}

// NewBuilder returns a Builder for glyphs of the given pixel size.
// Size must be in [1, MaxGlyphSize].
func NewBuilder(glyphSize int) (*Builder, error) {
	if glyphSize < 1 || glyphSize > MaxGlyphSize {
		return nil, fmt.Errorf("container: glyph size %d not in [1, %d]", glyphSize, MaxGlyphSize)
	}
	return &Builder{
		glyphSize: glyphSize,
		records:   make(map[rune][]byte),
	}, nil
}

// GlyphSize returns the glyph size the Builder was created with.
func (b *Builder) GlyphSize() int {
	return b.glyphSize
}

// Len returns the number of glyphs added so far.
func (b *Builder) Len() int {
	return len(b.records)
}

// Add packs m and stores it as the glyph for r.
func (b *Builder) Add(r rune, m bitmap.Matrix) error {
	if m.Size() != b.glyphSize {
		return fmt.Errorf("container: glyph %U is %dx%d, want %dx%d",
			r, m.Size(), m.Size(), b.glyphSize, b.glyphSize)
	}
	return b.AddRecord(r, bitmap.Pack(m))
}

// AddRecord stores an already packed record for r. The record is copied.
func (b *Builder) AddRecord(r rune, record []byte) error {
	if r < 0 || r > MaxRune {
		return fmt.Errorf("%w: %U", ErrRuneRange, r)
	}
	if _, ok := b.records[r]; ok {
		return fmt.Errorf("%w: %U", ErrDuplicateRune, r)
	}
	if want := bitmap.RecordSize(b.glyphSize); len(record) != want {
		return fmt.Errorf("container: record for %U is %d bytes, want %d", r, len(record), want)
	}
	b.records[r] = slices.Clone(record)
	return nil
}

// Runes returns the added code points in ascending order.
func (b *Builder) Runes() []rune {
	return slices.Sorted(maps.Keys(b.records))
}

// WriteTo writes a version 3 container to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	runes := b.Runes()
	hdr := Header{
		MapMode:     MapRowMajorMSB,
		StartBitmap: HeaderSize + len(runes)*EntrySize,
		GlyphSize:   b.glyphSize,
		RecordSize:  bitmap.RecordSize(b.glyphSize),
	}
	head, err := hdr.MarshalBinary()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: bufio.NewWriter(w)}
	cw.write(head)
	var entry [EntrySize]byte
	for _, r := range runes {
		binary.BigEndian.PutUint16(entry[:], uint16(r))
		cw.write(entry[:])
	}
	for _, r := range runes {
		cw.write(b.records[r])
	}
	return cw.flush()
}

// WriteLegacyTo writes a version 1 container to w: the code points as
// UTF-8 text in ascending order, followed by their records.
func (b *Builder) WriteLegacyTo(w io.Writer) (int64, error) {
	runes := b.Runes()
	text := []byte(string(runes))
	start := LegacyHeaderSize + len(text)
	if start > maxOffset {
		return 0, formatErrorf("bitmap offset %d exceeds 24 bits", start)
	}

	head := make([]byte, LegacyHeaderSize)
	head[0] = LegacyVersion
	head[1] = byte(start >> 16)
	binary.BigEndian.PutUint16(head[2:4], uint16(start))
	head[4] = byte(b.glyphSize)

	cw := &countingWriter{w: bufio.NewWriter(w)}
	cw.write(head)
	cw.write(text)
	for _, r := range runes {
		cw.write(b.records[r])
	}
	return cw.flush()
}

// countingWriter tracks bytes written and keeps the first error.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countingWriter) write(p []byte) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
}

func (cw *countingWriter) flush() (int64, error) {
	if cw.err != nil {
		return cw.n, fmt.Errorf("container: write: %w", cw.err)
	}
	if err := cw.w.Flush(); err != nil {
		return cw.n, fmt.Errorf("container: write: %w", err)
	}
	return cw.n, nil
}
