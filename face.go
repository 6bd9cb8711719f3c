package bmfont

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FaceOptions configures NewFace.
type FaceOptions struct {
	// Size is the glyph size in pixels. 0 means the font's native size.
	Size int

	// HalfWidth selects half-width characters.
	HalfWidth HalfWidth
}

// Face adapts a Font to golang.org/x/image/font.Face, so that containers
// can be drawn with font.Drawer onto any draw.Image.
//
// Glyph cells are square: the baseline sits size/8 pixels above the cell
// bottom. Characters missing from the font draw the fallback glyph and
// still report ok. Storage errors are reported as !ok and kept in Err.
//
// A Face is not safe for concurrent use, and the mask returned by Glyph
// is overwritten by the next call.
type Face struct {
	font      *Font
	size      int
	halfWidth HalfWidth
	mask      *image.Alpha
	err       error
}

var _ font.Face = (*Face)(nil)

// NewFace returns a font.Face drawing f. A nil opts uses the native size
// and ASCII half-width.
func NewFace(f *Font, opts *FaceOptions) *Face {
	var o FaceOptions
	if opts != nil {
		o = *opts
	}
	size := o.Size
	if size <= 0 {
		size = f.GlyphSize()
	}
	return &Face{
		font:      f,
		size:      size,
		halfWidth: o.HalfWidth,
		mask:      image.NewAlpha(image.Rect(0, 0, size, size)),
	}
}

// Err returns the last storage error met by Glyph.
func (f *Face) Err() error {
	return f.err
}

// Close implements font.Face. It does not close the Font.
func (f *Face) Close() error {
	return nil
}

func (f *Face) descent() int {
	return f.size / 8
}

// Glyph implements font.Face.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	advance = fixed.I(f.halfWidth.Advance(r, f.size))
	if r < 0x10 {
		return image.Rectangle{}, nil, image.Point{}, advance, true
	}

	m, err := f.font.Glyph(r, f.size)
	if err != nil {
		f.err = err
		return image.Rectangle{}, nil, image.Point{}, advance, false
	}

	for row := 0; row < f.size; row++ {
		for col := 0; col < f.size; col++ {
			a := uint8(0)
			if m.At(row, col) {
				a = 0xFF
			}
			f.mask.Pix[row*f.mask.Stride+col] = a
		}
	}

	x := dot.X.Round()
	y := dot.Y.Round() + f.descent() - f.size
	dr = image.Rect(x, y, x+f.size, y+f.size)
	return dr, f.mask, image.Point{}, advance, true
}

// GlyphBounds implements font.Face. Bounds cover the whole glyph cell.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	advance = fixed.I(f.halfWidth.Advance(r, f.size))
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(0, f.descent()-f.size),
		Max: fixed.P(f.size, f.descent()),
	}
	return bounds, advance, true
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	return fixed.I(f.halfWidth.Advance(r, f.size)), true
}

// Kern implements font.Face. Bitmap fonts have no kerning.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// Metrics implements font.Face.
func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(f.size),
		Ascent:     fixed.I(f.size - f.descent()),
		Descent:    fixed.I(f.descent()),
		XHeight:    fixed.I(f.size / 2),
		CapHeight:  fixed.I(f.size - f.descent() - f.size/8),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}
