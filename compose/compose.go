// Package compose converts glyph matrices into framebuffer pixel blocks.
//
// Two encodings are produced, matching the surface formats:
//
//   - Mono packs the matrix as MONO_HLSB, one bit per pixel, rows padded
//     to a byte. With reverse set the block is inverted, as needed by
//     e-paper panels where a set bit is white.
//   - RGB565 expands every pixel to a 2-byte little-endian color,
//     foreground where the glyph is set and background elsewhere.
//
// Transparency is not handled here: the surface's Blit skips pixels equal
// to its color key.
package compose

import (
	"github.com/gogpu/bmfont/bitmap"
	"github.com/gogpu/bmfont/surface"
)

// InvertMode selects how Mono inverts a reversed glyph.
type InvertMode uint8

const (
	// InvertBytes complements every packed byte, including the padding
	// bits past the glyph's right edge, which become set. Blit clips a
	// block to its width, so the padding only shows to code reading the
	// raw block. This is the historical behavior and the default.
	InvertBytes InvertMode = iota

	// InvertPixels complements only the glyph's own pixels; padding stays
	// clear.
	InvertPixels
)

// String returns the mode name.
func (m InvertMode) String() string {
	switch m {
	case InvertBytes:
		return "bytes"
	case InvertPixels:
		return "pixels"
	default:
		return "unknown"
	}
}

// Mono packs m as a MONO_HLSB block, optionally inverted.
func Mono(m bitmap.Matrix, reverse bool, mode InvertMode) []byte {
	out := bitmap.Pack(m)
	if !reverse {
		return out
	}

	if mode == InvertPixels {
		size := m.Size()
		rowBytes := bitmap.RowBytes(size)
		// Mask of the bits that belong to pixels in the last byte of a row.
		tail := byte(0xFF)
		if rem := size & 7; rem != 0 {
			tail = byte(0xFF) << uint(8-rem)
		}
		for i := range out {
			if (i+1)%rowBytes == 0 {
				out[i] ^= tail
			} else {
				out[i] = ^out[i]
			}
		}
		return out
	}

	for i := range out {
		out[i] = ^out[i]
	}
	return out
}

// RGB565 expands m to little-endian RGB565 pixels, fg where set and bg
// where clear.
func RGB565(m bitmap.Matrix, fg, bg uint16) []byte {
	size := m.Size()
	out := make([]byte, size*size*2)
	fgLo, fgHi := byte(fg), byte(fg>>8)
	bgLo, bgHi := byte(bg), byte(bg>>8)

	i := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if m.At(r, c) {
				out[i], out[i+1] = fgLo, fgHi
			} else {
				out[i], out[i+1] = bgLo, bgHi
			}
			i += 2
		}
	}
	return out
}

// Options configures Compose.
type Options struct {
	// Format is the target encoding. FormatUnknown composes RGB565.
	Format surface.Format

	// Foreground and Background are the RGB565 colors of set and clear
	// pixels. Ignored for FormatMonoHLSB.
	Foreground uint16
	Background uint16

	// Reverse inverts the glyph. For RGB565 it swaps Foreground and
	// Background.
	Reverse bool

	// Invert selects the mono inversion mode used with Reverse.
	Invert InvertMode
}

// Compose converts m into a pixel block in opts.Format.
func Compose(m bitmap.Matrix, opts Options) surface.Pixels {
	size := m.Size()
	if opts.Format == surface.FormatMonoHLSB {
		return surface.Pixels{
			Format: surface.FormatMonoHLSB,
			Width:  size,
			Height: size,
			Data:   Mono(m, opts.Reverse, opts.Invert),
		}
	}

	fg, bg := opts.Foreground, opts.Background
	if opts.Reverse {
		fg, bg = bg, fg
	}
	return surface.Pixels{
		Format: surface.FormatRGB565,
		Width:  size,
		Height: size,
		Data:   RGB565(m, fg, bg),
	}
}
