// Package tiny exposes bmfont containers as tinyfont fonts, so that TinyGo
// display drivers can print with tinyfont.WriteLine and friends.
//
// The y coordinate passed to tinyfont is the baseline. Glyph cells are
// square and the baseline sits size/8 pixels above the cell bottom, as in
// bmfont.Face.
//
// A Font reuses one glyph value across GetGlyph calls and is not safe for
// concurrent use.
package tiny

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/gogpu/bmfont"
	"github.com/gogpu/bmfont/bitmap"
)

// Options configures New.
type Options struct {
	// Size is the glyph size in pixels. 0 means the font's native size.
	Size int

	// HalfWidth selects half-width characters.
	HalfWidth bmfont.HalfWidth
}

// Font implements tinyfont.Fonter on top of a bmfont.Font.
type Font struct {
	font      *bmfont.Font
	size      int
	halfWidth bmfont.HalfWidth
	glyph     Glyph
	err       error
}

var _ tinyfont.Fonter = (*Font)(nil)

// New wraps f. A nil opts uses the native size and ASCII half-width.
func New(f *bmfont.Font, opts *Options) *Font {
	var o Options
	if opts != nil {
		o = *opts
	}
	size := o.Size
	if size <= 0 {
		size = f.GlyphSize()
	}
	return &Font{
		font:      f,
		size:      size,
		halfWidth: o.HalfWidth,
	}
}

// Size returns the glyph size in pixels.
func (f *Font) Size() int {
	return f.size
}

// Err returns the last storage error met by GetGlyph. Glyphs that failed
// to load draw nothing.
func (f *Font) Err() error {
	return f.err
}

// GetGlyph implements tinyfont.Fonter. The returned Glypher is only valid
// until the next call.
func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	g := &f.glyph
	g.font = f
	g.r = r
	g.m = bitmap.Matrix{}
	if r < 0x10 {
		return g
	}
	m, err := f.font.Glyph(r, f.size)
	if err != nil {
		f.err = err
		bmfont.Logger().Debug("tiny: glyph load failed", "rune", r, "err", err)
		return g
	}
	g.m = m
	return g
}

// GetYAdvance implements tinyfont.Fonter.
func (f *Font) GetYAdvance() uint8 {
	return uint8(f.size)
}

// Glyph is a loaded glyph. It implements tinyfont.Glypher.
type Glyph struct {
	font *Font
	r    rune
	m    bitmap.Matrix
}

var _ tinyfont.Glypher = (*Glyph)(nil)

// Draw sets the glyph's pixels with the baseline at y. Clear pixels are
// left untouched.
func (g *Glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	size := g.m.Size()
	top := y + int16(size/8-size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.m.At(row, col) {
				display.SetPixel(x+int16(col), top+int16(row), c)
			}
		}
	}
}

// Info implements tinyfont.Glypher.
func (g *Glyph) Info() tinyfont.GlyphInfo {
	size := g.font.size
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    uint8(size),
		Height:   uint8(size),
		XAdvance: uint8(g.font.halfWidth.Advance(g.r, size)),
		XOffset:  0,
		YOffset:  int8(size/8 - size),
	}
}
