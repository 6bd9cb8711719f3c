package tiny

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/tinyfont"

	"github.com/gogpu/bmfont"
	"github.com/gogpu/bmfont/bitmap"
	"github.com/gogpu/bmfont/container"
)

type fakeDisplayer struct {
	w, h   int16
	pixels map[[2]int16]color.RGBA
}

func newFakeDisplayer(w, h int16) *fakeDisplayer {
	return &fakeDisplayer{w: w, h: h, pixels: make(map[[2]int16]color.RGBA)}
}

func (d *fakeDisplayer) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.pixels[[2]int16{x, y}] = c
}

func (d *fakeDisplayer) Display() error { return nil }

func (d *fakeDisplayer) set(x, y int16) bool {
	_, ok := d.pixels[[2]int16{x, y}]
	return ok
}

func frame(size int) bitmap.Matrix {
	m := bitmap.NewMatrix(size)
	for i := 0; i < size; i++ {
		m.Set(0, i, true)
		m.Set(size-1, i, true)
		m.Set(i, 0, true)
		m.Set(i, size-1, true)
	}
	return m
}

func diagonal(size int) bitmap.Matrix {
	m := bitmap.NewMatrix(size)
	for i := 0; i < size; i++ {
		m.Set(i, i, true)
	}
	return m
}

func testFont(t *testing.T) *bmfont.Font {
	t.Helper()
	b, err := container.NewBuilder(16)
	require.NoError(t, err)
	require.NoError(t, b.Add('A', frame(16)))
	require.NoError(t, b.Add('B', diagonal(16)))
	require.NoError(t, b.Add('中', frame(16)))

	var buf bytes.Buffer
	_, err = b.WriteTo(&buf)
	require.NoError(t, err)

	f, err := bmfont.Open(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return f
}

type faultyIndex struct{ err error }

func (f faultyIndex) GlyphSize() int                         { return 16 }
func (f faultyIndex) RecordSize() int                        { return 32 }
func (f faultyIndex) Len() int                               { return 1 }
func (f faultyIndex) Lookup(rune) (int, error)               { return 0, f.err }
func (f faultyIndex) ReadRecord(int, []byte) ([]byte, error) { return nil, f.err }

func TestGlyphInfo(t *testing.T) {
	font := New(testFont(t), nil)

	assert.Equal(t, 16, font.Size())
	assert.Equal(t, uint8(16), font.GetYAdvance())

	info := font.GetGlyph('A').Info()
	assert.Equal(t, 'A', info.Rune)
	assert.Equal(t, uint8(16), info.Width)
	assert.Equal(t, uint8(16), info.Height)
	assert.Equal(t, uint8(8), info.XAdvance)
	assert.Equal(t, int8(-14), info.YOffset)

	assert.Equal(t, uint8(16), font.GetGlyph('中').Info().XAdvance)
}

func TestGlyphDraw(t *testing.T) {
	font := New(testFont(t), nil)
	d := newFakeDisplayer(32, 32)
	red := color.RGBA{R: 0xFF, A: 0xFF}

	font.GetGlyph('B').Draw(d, 4, 20, red)

	// Baseline 20, descent 2: the cell spans rows 6 to 21.
	assert.Len(t, d.pixels, 16)
	assert.True(t, d.set(4, 6))
	assert.True(t, d.set(19, 21))
	assert.False(t, d.set(5, 6))
	assert.Equal(t, red, d.pixels[[2]int16{10, 12}])
}

func TestGlyphDrawScaled(t *testing.T) {
	font := New(testFont(t), &Options{Size: 32, HalfWidth: bmfont.HalfWidthNone})
	d := newFakeDisplayer(64, 64)

	g := font.GetGlyph('B')
	assert.Equal(t, uint8(32), g.Info().XAdvance)
	assert.Equal(t, int8(-28), g.Info().YOffset)

	g.Draw(d, 0, 28, color.RGBA{A: 0xFF})
	assert.Len(t, d.pixels, 64)
	assert.True(t, d.set(0, 0))
	assert.True(t, d.set(1, 1))
	assert.True(t, d.set(31, 31))
}

func TestGlyphFallback(t *testing.T) {
	font := New(testFont(t), nil)
	d := newFakeDisplayer(16, 16)

	font.GetGlyph('Z').Draw(d, 0, 14, color.RGBA{A: 0xFF})
	assert.Equal(t, bmfont.FallbackGlyph(16).Count(), len(d.pixels))
	assert.NoError(t, font.Err())
}

func TestGlyphControl(t *testing.T) {
	font := New(testFont(t), nil)
	d := newFakeDisplayer(16, 16)

	g := font.GetGlyph('\t')
	g.Draw(d, 0, 14, color.RGBA{A: 0xFF})
	assert.Empty(t, d.pixels)
}

func TestGlyphStorageError(t *testing.T) {
	boom := errors.New("flash read failed")
	f, err := bmfont.NewFont(faultyIndex{err: boom})
	require.NoError(t, err)

	font := New(f, nil)
	d := newFakeDisplayer(16, 16)
	font.GetGlyph('A').Draw(d, 0, 14, color.RGBA{A: 0xFF})

	assert.Empty(t, d.pixels)
	assert.ErrorIs(t, font.Err(), boom)
}

func TestWriteLine(t *testing.T) {
	font := New(testFont(t), nil)
	d := newFakeDisplayer(64, 32)

	tinyfont.WriteLine(d, font, 0, 14, "AB", color.RGBA{G: 0xFF, A: 0xFF})

	assert.True(t, d.set(0, 0), "'A' frame corner")
	assert.True(t, d.set(15, 15), "'A' frame corner")
	assert.True(t, d.set(9, 1), "'B' diagonal at x = 8")
	assert.False(t, d.set(5, 5))
}
