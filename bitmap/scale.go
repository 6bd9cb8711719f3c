package bitmap

// Scale resizes m to target×target using nearest-neighbor sampling:
//
//	out[row][col] = in[row*native/target][col*native/target]
//
// Only integer arithmetic is used. When target equals the native size m is
// returned as is, without copying. A non-positive target yields an empty matrix.
func Scale(m Matrix, target int) Matrix {
	native := m.size
	if target == native {
		return m
	}
	if target <= 0 || native == 0 {
		return NewMatrix(0)
	}

	out := NewMatrix(target)
	for r := 0; r < target; r++ {
		src := (r * native / target) * native
		dst := r * target
		for c := 0; c < target; c++ {
			out.bits[dst+c] = m.bits[src+c*native/target]
		}
	}
	return out
}
