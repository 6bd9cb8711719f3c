package bmfont

import (
	"bytes"
	"testing"

	"github.com/gogpu/bmfont/bitmap"
	"github.com/gogpu/bmfont/container"
	"github.com/gogpu/bmfont/surface"
)

// boxGlyph is a one-pixel frame, easy to recognize after scaling.
func boxGlyph(size int) bitmap.Matrix {
	m := bitmap.NewMatrix(size)
	for i := 0; i < size; i++ {
		m.Set(0, i, true)
		m.Set(size-1, i, true)
		m.Set(i, 0, true)
		m.Set(i, size-1, true)
	}
	return m
}

// diagGlyph sets the main diagonal.
func diagGlyph(size int) bitmap.Matrix {
	m := bitmap.NewMatrix(size)
	for i := 0; i < size; i++ {
		m.Set(i, i, true)
	}
	return m
}

func testContainer(t testing.TB, size int, glyphs map[rune]bitmap.Matrix) []byte {
	t.Helper()
	b, err := container.NewBuilder(size)
	if err != nil {
		t.Fatalf("NewBuilder(%d) error = %v", size, err)
	}
	for r, m := range glyphs {
		if err := b.Add(r, m); err != nil {
			t.Fatalf("Add(%U) error = %v", r, err)
		}
	}
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	return buf.Bytes()
}

// testFont opens a 16px font holding 'A' (box), 'B' (diagonal) and
// '中' (box).
func testFont(t testing.TB, opts ...FontOption) *Font {
	t.Helper()
	data := testContainer(t, 16, map[rune]bitmap.Matrix{
		'A': boxGlyph(16),
		'B': diagGlyph(16),
		'中': boxGlyph(16),
	})
	f, err := Open(bytes.NewReader(data), opts...)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return f
}

// blitCall records one Blit.
type blitCall struct {
	x, y, key int
	px        surface.Pixels
}

// recordingSurface is a Framebuffer that records Blit calls.
type recordingSurface struct {
	*surface.Framebuffer
	blits []blitCall
}

func newRecordingSurface(fb *surface.Framebuffer) *recordingSurface {
	return &recordingSurface{Framebuffer: fb}
}

func (s *recordingSurface) Blit(px surface.Pixels, x, y, key int) {
	s.blits = append(s.blits, blitCall{x: x, y: y, key: key, px: px})
	s.Framebuffer.Blit(px, x, y, key)
}

// bareSurface supports only the required Surface methods.
type bareSurface struct {
	w, h  int
	buf   []byte
	blits int
}

func newBareSurface(w, h int) *bareSurface {
	return &bareSurface{w: w, h: h, buf: make([]byte, surface.FormatMonoHLSB.BufferLen(w, h))}
}

func (s *bareSurface) Width() int                         { return s.w }
func (s *bareSurface) Height() int                        { return s.h }
func (s *bareSurface) Buffer() []byte                     { return s.buf }
func (s *bareSurface) Blit(surface.Pixels, int, int, int) { s.blits++ }

// fillSurface can fill but not clear.
type fillSurface struct {
	*bareSurface
	fills []int
}

func (s *fillSurface) Fill(v int) { s.fills = append(s.fills, v) }

// faultyIndex fails every storage access.
type faultyIndex struct {
	err      error
	failRead bool
}

func (f *faultyIndex) GlyphSize() int  { return 16 }
func (f *faultyIndex) RecordSize() int { return 32 }
func (f *faultyIndex) Len() int        { return 1 }

func (f *faultyIndex) Lookup(r rune) (int, error) {
	if f.failRead {
		return 0, nil
	}
	return container.NotFound, f.err
}

func (f *faultyIndex) ReadRecord(int, []byte) ([]byte, error) {
	return nil, f.err
}

// countingIndex counts lookups reaching the container.
type countingIndex struct {
	container.Index
	lookups int
}

func (c *countingIndex) Lookup(r rune) (int, error) {
	c.lookups++
	return c.Index.Lookup(r)
}
