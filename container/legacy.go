package container

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/gogpu/bmfont/bitmap"
)

// Legacy v1 layout constants.
const (
	// LegacyVersion is the version byte of the v1 layout.
	LegacyVersion uint8 = 1

	// LegacyHeaderSize is the size of the v1 header; the character text
	// starts here.
	LegacyHeaderSize = 9
)

// LegacyContainer is an open version 1 container.
//
// The v1 layout stores the character set as UTF-8 text rather than a sorted
// index, so the text is loaded once by OpenLegacy and searched linearly.
// The record index of a character is its rune position in the text.
type LegacyContainer struct {
	r         io.ReaderAt
	runes     []rune
	start     int
	glyphSize int
}

var _ Index = (*LegacyContainer)(nil)

// OpenLegacy reads the header and character text of a v1 container.
//
// Header layout: version (1), 24-bit big-endian bitmap offset, glyph size,
// four zero bytes.
func OpenLegacy(r io.ReaderAt) (*LegacyContainer, error) {
	var hdr [LegacyHeaderSize]byte
	if err := readFull(r, hdr[:], 0); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, formatErrorf("truncated legacy header")
		}
		return nil, fmt.Errorf("container: read legacy header: %w", err)
	}
	if hdr[0] != LegacyVersion {
		return nil, &VersionError{Got: hdr[0], Want: LegacyVersion}
	}

	start := int(hdr[1])<<16 | int(hdr[2])<<8 | int(hdr[3])
	size := int(hdr[4])
	if size == 0 {
		return nil, formatErrorf("zero glyph size")
	}
	if start < LegacyHeaderSize {
		return nil, formatErrorf("bitmap offset %d inside legacy header", start)
	}

	text := make([]byte, start-LegacyHeaderSize)
	if err := readFull(r, text, LegacyHeaderSize); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, formatErrorf("truncated character text")
		}
		return nil, fmt.Errorf("container: read character text: %w", err)
	}
	if !utf8.Valid(text) {
		return nil, formatErrorf("character text is not valid UTF-8")
	}

	return &LegacyContainer{
		r:         r,
		runes:     []rune(string(text)),
		start:     start,
		glyphSize: size,
	}, nil
}

// GlyphSize returns the glyph edge length in pixels.
func (c *LegacyContainer) GlyphSize() int {
	return c.glyphSize
}

// RecordSize returns the number of bytes per glyph record.
func (c *LegacyContainer) RecordSize() int {
	return bitmap.RecordSize(c.glyphSize)
}

// Len returns the number of characters in the text.
func (c *LegacyContainer) Len() int {
	return len(c.runes)
}

// Lookup returns the position of the first occurrence of r in the text.
func (c *LegacyContainer) Lookup(r rune) (int, error) {
	return slices.Index(c.runes, r), nil
}

// ReadRecord reads the packed bitmap of record i.
func (c *LegacyContainer) ReadRecord(i int, dst []byte) ([]byte, error) {
	return readRecord(c.r, c.start, c.RecordSize(), c.Len(), i, dst)
}
