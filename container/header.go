package container

import (
	"encoding/binary"

	"github.com/gogpu/bmfont/bitmap"
)

// Layout constants of the version 3 format.
const (
	// Magic is the two-byte marker at the start of every v3 container.
	Magic = "BM"

	// Version is the format version written and read by this package.
	Version uint8 = 3

	// HeaderSize is the size of the fixed header; the index starts here.
	HeaderSize = 16

	// EntrySize is the size of one index entry.
	EntrySize = 2

	// MaxRune is the largest code point the index can hold.
	MaxRune = 0xFFFF

	// MaxGlyphSize is the largest glyph whose record size fits the header byte.
	MaxGlyphSize = 42

	// maxOffset is the largest value of the 24-bit bitmap offset.
	maxOffset = 1<<24 - 1
)

// NotFound is the record index returned for code points absent from a container.
const NotFound = -1

// MapMode describes how glyph records are packed.
type MapMode uint8

// Mapping modes.
const (
	// MapRowMajorMSB packs rows top to bottom, most significant bit leftmost,
	// each row padded to a byte boundary.
	MapRowMajorMSB MapMode = 0
)

// String returns the mapping mode name.
func (m MapMode) String() string {
	switch m {
	case MapRowMajorMSB:
		return "row-major-msb"
	default:
		return "unknown"
	}
}

// Header holds the parsed fixed header of a v3 container.
type Header struct {
	MapMode     MapMode
	StartBitmap int // offset of the bitmap region
	GlyphSize   int // glyph edge length in pixels
	RecordSize  int // bytes per packed glyph record
}

// Count returns the number of index entries implied by StartBitmap.
func (h Header) Count() int {
	return (h.StartBitmap - HeaderSize) / EntrySize
}

// ParseHeader decodes and validates a v3 header.
//
// It fails with a *FormatError when the magic marker is missing, the data is
// shorter than HeaderSize, or the structural fields contradict each other,
// and with a *VersionError when the version byte is not Version.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, formatErrorf("header is %d bytes, want %d", len(b), HeaderSize)
	}
	if string(b[0:2]) != Magic {
		return Header{}, formatErrorf("bad magic %q", b[0:2])
	}
	if b[2] != Version {
		return Header{}, &VersionError{Got: b[2], Want: Version}
	}

	h := Header{
		MapMode:     MapMode(b[3]),
		StartBitmap: int(b[4])<<16 | int(b[5])<<8 | int(b[6]),
		GlyphSize:   int(b[7]),
		RecordSize:  int(b[8]),
	}
	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func (h Header) validate() error {
	switch {
	case h.MapMode != MapRowMajorMSB:
		return formatErrorf("unknown mapping mode %d", h.MapMode)
	case h.GlyphSize == 0:
		return formatErrorf("zero glyph size")
	case h.RecordSize != bitmap.RecordSize(h.GlyphSize):
		return formatErrorf("record size %d does not match glyph size %d (want %d)",
			h.RecordSize, h.GlyphSize, bitmap.RecordSize(h.GlyphSize))
	case h.StartBitmap < HeaderSize:
		return formatErrorf("bitmap offset %d inside header", h.StartBitmap)
	case (h.StartBitmap-HeaderSize)%EntrySize != 0:
		return formatErrorf("index region of %d bytes is not a whole number of entries",
			h.StartBitmap-HeaderSize)
	}
	return nil
}

// MarshalBinary encodes the header into its 16-byte on-disk form.
func (h Header) MarshalBinary() ([]byte, error) {
	if h.StartBitmap > maxOffset {
		return nil, formatErrorf("bitmap offset %d exceeds 24 bits", h.StartBitmap)
	}
	if h.RecordSize > 0xFF || h.GlyphSize > 0xFF {
		return nil, formatErrorf("glyph size %d does not fit the header", h.GlyphSize)
	}
	if err := h.validate(); err != nil {
		return nil, err
	}

	b := make([]byte, HeaderSize)
	copy(b, Magic)
	b[2] = Version
	b[3] = byte(h.MapMode)
	b[4] = byte(h.StartBitmap >> 16)
	binary.BigEndian.PutUint16(b[5:7], uint16(h.StartBitmap))
	b[7] = byte(h.GlyphSize)
	b[8] = byte(h.RecordSize)
	return b, nil
}
