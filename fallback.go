package bmfont

import "github.com/gogpu/bmfont/bitmap"

// FallbackSize is the native edge length of the fallback glyph.
const FallbackSize = 16

// fallback16 is the placeholder drawn for code points a container lacks:
// a solid block with a question mark cut out of it, packed 16×16 MONO_HLSB.
var fallback16 = [32]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xf0, 0x0f, 0xcf, 0xf3, 0xcf, 0xf3, 0xff, 0xf3,
	0xff, 0xcf, 0xff, 0x3f, 0xff, 0x3f, 0xff, 0xff,
	0xff, 0x3f, 0xff, 0x3f, 0xff, 0xff, 0xff, 0xff,
}

// FallbackRecord returns the fallback glyph packed for the given size.
// At FallbackSize it is the fixed 32-byte record; other sizes are scaled
// from it.
func FallbackRecord(size int) []byte {
	if size == FallbackSize {
		out := make([]byte, len(fallback16))
		copy(out, fallback16[:])
		return out
	}
	return bitmap.Pack(FallbackGlyph(size))
}

// FallbackGlyph returns the fallback glyph as a size×size matrix.
func FallbackGlyph(size int) bitmap.Matrix {
	m, _ := bitmap.Decode(fallback16[:], FallbackSize)
	return bitmap.Scale(m, size)
}
