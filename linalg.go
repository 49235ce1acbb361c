package qentangle

import (
	"math/bits"

	"gonum.org/v1/gonum/cmplxs"
)

// matrix is a dense, row-major complex matrix.
type matrix [][]complex128

var (
	pauliI = matrix{{1, 0}, {0, 1}}
	// Projectors onto |0⟩ and |1⟩, used for the two branches of a
	// controlled gate.
	projector0 = matrix{{1, 0}, {0, 0}}
	projector1 = matrix{{0, 0}, {0, 1}}
)

func zeros(rows, cols int) matrix {
	m := make(matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}

	return m
}

func identity(size int) matrix {
	m := zeros(size, size)
	for i := range m {
		m[i][i] = 1
	}

	return m
}

// outer returns the 2×2 matrix |a⟩⟨b| for single-qubit basis values a and b.
func outer(a, b int) matrix {
	m := zeros(2, 2)
	m[a][b] = 1

	return m
}

func (m matrix) clone() matrix {
	out := make(matrix, len(m))
	for i, row := range m {
		out[i] = append([]complex128(nil), row...)
	}

	return out
}

func (m matrix) isSquare() bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}

	return len(m) > 0
}

/*
kron returns the Kronecker product a ⊗ b. The left operand varies slowest,
so it ends up on the most significant bits of the combined index.
*/
func kron(a, b matrix) matrix {
	ar, ac := len(a), len(a[0])
	br, bc := len(b), len(b[0])
	out := zeros(ar*br, ac*bc)

	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if a[i][j] == 0 {
				continue
			}

			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out[i*br+k][j*bc+l] = a[i][j] * b[k][l]
				}
			}
		}
	}

	return out
}

func kronVector(a, b []complex128) []complex128 {
	out := make([]complex128, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, x*y)
		}
	}

	return out
}

func (m matrix) add(other matrix) matrix {
	out := m.clone()
	for i := range out {
		cmplxs.Add(out[i], other[i])
	}

	return out
}

func (m matrix) mul(other matrix) matrix {
	out := zeros(len(m), len(other[0]))

	for i := range m {
		for k, a := range m[i] {
			if a == 0 {
				continue
			}

			for j, b := range other[k] {
				out[i][j] += a * b
			}
		}
	}

	return out
}

func (m matrix) apply(vector []complex128) []complex128 {
	out := make([]complex128, len(m))

	for i, row := range m {
		var sum complex128
		for j, a := range row {
			sum += a * vector[j]
		}
		out[i] = sum
	}

	return out
}

// dagger returns the conjugate transpose.
func (m matrix) dagger() matrix {
	out := zeros(len(m[0]), len(m))
	for i, row := range m {
		for j, v := range row {
			out[j][i] = complex(real(v), -imag(v))
		}
	}

	return out
}

func (m matrix) equalApprox(other matrix, tol float64) bool {
	if len(m) != len(other) {
		return false
	}

	for i := range m {
		if len(m[i]) != len(other[i]) || !cmplxs.EqualApprox(m[i], other[i], tol) {
			return false
		}
	}

	return true
}

// qubitCount returns log2(size) when size is a power of two of at least 2.
func qubitCount(size int) (int, bool) {
	if size < 2 || size&(size-1) != 0 {
		return 0, false
	}

	return bits.TrailingZeros(uint(size)), true
}
