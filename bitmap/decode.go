package bitmap

// Decode unpacks a packed MSB-first record into a size×size matrix.
//
// For row r and column c the pixel is
//
//	record[r*RowBytes(size) + c/8] >> (7 - c%8) & 1
//
// Bytes past RecordSize(size) are ignored.
func Decode(record []byte, size int) (Matrix, error) {
	if size <= 0 {
		return Matrix{}, nil
	}
	rowBytes := RowBytes(size)
	if len(record) < rowBytes*size {
		return Matrix{}, ErrShortRecord
	}

	m := NewMatrix(size)
	for r := 0; r < size; r++ {
		row := record[r*rowBytes : (r+1)*rowBytes]
		for c := 0; c < size; c++ {
			m.bits[r*size+c] = row[c>>3]>>(7-uint(c&7))&1 == 1
		}
	}
	return m, nil
}

// Pack is the inverse of Decode: it packs m row-major, MSB first, with every
// row padded to a byte boundary. Padding bits are always zero.
func Pack(m Matrix) []byte {
	rowBytes := RowBytes(m.size)
	out := make([]byte, rowBytes*m.size)
	for r := 0; r < m.size; r++ {
		row := out[r*rowBytes : (r+1)*rowBytes]
		for c := 0; c < m.size; c++ {
			if m.bits[r*m.size+c] {
				row[c>>3] |= 0x80 >> uint(c&7)
			}
		}
	}
	return out
}
