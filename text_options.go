package bmfont

import (
	"golang.org/x/text/width"

	"github.com/gogpu/bmfont/surface"
)

// HalfWidth selects which characters advance by half a glyph.
type HalfWidth uint8

const (
	// HalfWidthASCII advances ASCII characters (below U+0080) by size/2
	// and everything else by size. This is the default.
	HalfWidthASCII HalfWidth = iota

	// HalfWidthNone advances every character by size.
	HalfWidthNone

	// HalfWidthEastAsian advances by size only characters whose Unicode
	// East Asian Width is Wide, Fullwidth or Ambiguous, and by size/2
	// otherwise. Halfwidth katakana thus take half a cell.
	HalfWidthEastAsian
)

// String returns the mode name.
func (h HalfWidth) String() string {
	switch h {
	case HalfWidthASCII:
		return "ascii"
	case HalfWidthNone:
		return "none"
	case HalfWidthEastAsian:
		return "east-asian"
	default:
		return "unknown"
	}
}

// isHalf reports whether r advances by half a cell.
func (h HalfWidth) isHalf(r rune) bool {
	switch h {
	case HalfWidthASCII:
		return r < 0x80
	case HalfWidthEastAsian:
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth, width.EastAsianAmbiguous:
			return false
		default:
			return true
		}
	default:
		return false
	}
}

// Advance returns the horizontal advance of r at the given size: size/2
// for half-width characters, size otherwise.
func (h HalfWidth) Advance(r rune, size int) int {
	if h.isHalf(r) {
		return size / 2
	}
	return size
}

// TextOptions configures a single Text call.
type TextOptions struct {
	// Size is the render size in pixels. 0 means the font's native size.
	Size int

	// Color and Background are the RGB565 colors of set and clear glyph
	// pixels on color surfaces.
	Color      uint16
	Background uint16

	// TransparentKey is passed to Blit; pixels equal to it are not drawn.
	// Set it to Background for transparent text. surface.NoKey disables it.
	TransparentKey int

	// HalfWidth selects half-width characters.
	HalfWidth HalfWidth

	// AutoWrap moves to the next line before a character that would cross
	// the right edge of the surface.
	AutoWrap bool

	// LineSpacing is extra vertical space added between lines.
	LineSpacing int

	// Reverse inverts glyphs: on monochrome surfaces the packed bits are
	// complemented (see WithInvertMode), on color surfaces Color and
	// Background are swapped.
	Reverse bool

	// Format overrides the pixel format detected from the surface.
	Format surface.Format

	// Clear clears the surface before drawing (Clear, or Fill(0) when the
	// surface can only fill).
	Clear bool

	// Present pushes the surface to the display after drawing.
	Present bool
}

// DefaultTextOptions returns TextOptions with default values: native size,
// white on black, no transparency, ASCII half-width, no wrapping.
func DefaultTextOptions() *TextOptions {
	return &TextOptions{
		Color:          0xFFFF,
		Background:     0x0000,
		TransparentKey: surface.NoKey,
		HalfWidth:      HalfWidthASCII,
	}
}
