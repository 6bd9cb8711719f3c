// Package bitmap decodes, scales and packs square monochrome glyph bitmaps.
//
// Glyph records are stored row-major with the most significant bit first and
// every row padded to a byte boundary (the MONO_HLSB layout used by
// MicroPython framebuffers). A record for a glyph of size s therefore takes
// RecordSize(s) = ceil(s/8) * s bytes.
//
// The package is allocation-bounded: Decode and Scale allocate exactly one
// size×size matrix, Pack allocates exactly one record.
package bitmap

import (
	"errors"
	"strings"
)

// ErrShortRecord is returned by Decode when a record holds fewer bytes than
// the glyph size requires.
var ErrShortRecord = errors.New("bitmap: record shorter than glyph size requires")

// Matrix is a square boolean pixel matrix stored row-major.
// The zero value is an empty 0×0 matrix.
type Matrix struct {
	size int
	bits []bool
}

// NewMatrix returns a blank size×size matrix.
func NewMatrix(size int) Matrix {
	if size < 0 {
		size = 0
	}
	return Matrix{size: size, bits: make([]bool, size*size)}
}

// ParseMatrix builds a matrix from text rows, '#' or 'X' meaning set.
// All rows must have the same length as the number of rows; shorter rows are
// padded with clear pixels. It is mainly useful for tests and fixtures.
func ParseMatrix(rows ...string) Matrix {
	m := NewMatrix(len(rows))
	for r, row := range rows {
		for c, ch := range row {
			if c >= m.size {
				break
			}
			m.Set(r, c, ch == '#' || ch == 'X')
		}
	}
	return m
}

// Size returns the edge length of the matrix in pixels.
func (m Matrix) Size() int {
	return m.size
}

// At reports whether the pixel at (row, col) is set.
// Out-of-range coordinates report false.
func (m Matrix) At(row, col int) bool {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return false
	}
	return m.bits[row*m.size+col]
}

// Set sets or clears the pixel at (row, col). Out-of-range coordinates are ignored.
func (m Matrix) Set(row, col int, v bool) {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return
	}
	m.bits[row*m.size+col] = v
}

// Count returns the number of set pixels.
func (m Matrix) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Equal reports whether both matrices have the same size and pixels.
func (m Matrix) Equal(o Matrix) bool {
	if m.size != o.size {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// String renders the matrix as rows of '#' and '.', one row per line.
func (m Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.size * (m.size + 1))
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			if m.bits[r*m.size+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RowBytes returns the number of bytes one padded row of a glyph occupies.
func RowBytes(size int) int {
	return (size + 7) / 8
}

// RecordSize returns the number of bytes a packed glyph of the given size occupies.
func RecordSize(size int) int {
	return RowBytes(size) * size
}
