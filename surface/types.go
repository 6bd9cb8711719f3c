// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"strings"
)

// NoKey disables the transparent color key of Blit.
const NoKey = -1

// Format is a framebuffer pixel encoding.
type Format uint8

const (
	// FormatUnknown is the zero Format.
	FormatUnknown Format = iota

	// FormatMonoHLSB is 1 bit per pixel, horizontal bytes, MSB leftmost,
	// rows padded to 8 pixels.
	FormatMonoHLSB

	// FormatRGB565 is 16 bits per pixel, 5-6-5, stored little-endian.
	FormatRGB565
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatMonoHLSB:
		return "mono"
	case FormatRGB565:
		return "rgb565"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as returned by Format.String.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "mono", "mono_hlsb", "mono-hlsb":
		return FormatMonoHLSB, nil
	case "rgb565":
		return FormatRGB565, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Stride returns the number of bytes one row of the given width occupies.
func (f Format) Stride(width int) int {
	switch f {
	case FormatMonoHLSB:
		return (width + 7) >> 3
	case FormatRGB565:
		return width * 2
	default:
		return 0
	}
}

// BufferLen returns the number of bytes a width×height buffer occupies.
func (f Format) BufferLen(width, height int) int {
	return f.Stride(width) * height
}

// DetectFormat infers the pixel format of a framebuffer from its
// dimensions and buffer length. A buffer holding fewer bytes than pixels
// can only be 1 bit per pixel; otherwise it is taken to be RGB565.
func DetectFormat(width, height, bufLen int) Format {
	if width*height > bufLen {
		return FormatMonoHLSB
	}
	return FormatRGB565
}

// FormatOf returns the pixel format of s, detected from its buffer.
func FormatOf(s Surface) Format {
	return DetectFormat(s.Width(), s.Height(), len(s.Buffer()))
}

// Pixels is a block of pixels in a framebuffer encoding, the source of a
// Blit. Rows are Format.Stride(Width) bytes apart.
type Pixels struct {
	Format Format
	Width  int
	Height int
	Data   []byte
}

// At returns the pixel value at (x, y): 0 or 1 for FormatMonoHLSB, the
// 16-bit color for FormatRGB565. Out-of-range coordinates return 0.
func (p Pixels) At(x, y int) int {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0
	}
	return getPixel(p.Format, p.Data, p.Format.Stride(p.Width), x, y)
}

// getPixel reads one pixel from a packed buffer.
func getPixel(f Format, buf []byte, stride, x, y int) int {
	switch f {
	case FormatMonoHLSB:
		return int(buf[y*stride+x>>3]>>(7-uint(x&7))) & 1
	case FormatRGB565:
		i := y*stride + x*2
		return int(buf[i]) | int(buf[i+1])<<8
	default:
		return 0
	}
}

// setPixel writes one pixel into a packed buffer.
func setPixel(f Format, buf []byte, stride, x, y, v int) {
	switch f {
	case FormatMonoHLSB:
		i := y*stride + x>>3
		mask := byte(0x80) >> uint(x&7)
		if v&1 != 0 {
			buf[i] |= mask
		} else {
			buf[i] &^= mask
		}
	case FormatRGB565:
		i := y*stride + x*2
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
	}
}

// convertPixel maps a pixel value between formats. Set mono pixels become
// white; any non-black color becomes a set mono pixel.
func convertPixel(from, to Format, v int) int {
	if from == to {
		return v
	}
	switch to {
	case FormatMonoHLSB:
		if v != 0 {
			return 1
		}
		return 0
	case FormatRGB565:
		if v != 0 {
			return 0xFFFF
		}
		return 0
	default:
		return 0
	}
}
