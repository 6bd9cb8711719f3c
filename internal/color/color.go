// Package color provides RGB565 conversions for 16-bit display surfaces.
package color

import (
	"fmt"
	stdcolor "image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Common RGB565 values.
const (
	Black uint16 = 0x0000
	White uint16 = 0xFFFF
	Red   uint16 = 0xF800
	Green uint16 = 0x07E0
	Blue  uint16 = 0x001F
)

// RGB565 packs 8-bit channels into a 16-bit 5-6-5 value.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

// FromColor converts any color.Color to RGB565. Alpha is ignored.
func FromColor(c stdcolor.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return RGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ToRGBA expands an RGB565 value to an opaque color.RGBA.
// The low bits of each channel replicate the high bits so that 0xFFFF maps
// to pure white and 0x0000 to pure black.
func ToRGBA(v uint16) stdcolor.RGBA {
	r5 := uint8(v >> 11 & 0x1F)
	g6 := uint8(v >> 5 & 0x3F)
	b5 := uint8(v & 0x1F)
	return stdcolor.RGBA{
		R: r5<<3 | r5>>2,
		G: g6<<2 | g6>>4,
		B: b5<<3 | b5>>2,
		A: 0xFF,
	}
}

// Swap exchanges the two bytes of v.
//
// Panels driven over SPI (ST7735, ST7789) expect big-endian pixels while
// framebuffers store them little-endian; Swap converts between the two.
func Swap(v uint16) uint16 {
	return v<<8 | v>>8
}

// ParseHex parses a CSS-style hex color ("#RRGGBB", "RRGGBB", "#RGB")
// into RGB565.
func ParseHex(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return 0, fmt.Errorf("color: %q is not a hex color", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return RGB565(r, g, b), nil
}
