package qentangle

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/cmplxs"
)

/*
State is an n-qubit state vector in the computational basis. The amplitude at
index i belongs to the basis state whose bits spell i, with qubit k on bit k
counted from the least significant end.

States are values: every operation returns a new State and the amplitudes are
never shared with the caller.
*/
type State struct {
	n          int
	amplitudes []complex128
}

/*
NewState returns the basis state |v⟩ of an n-qubit register.
*/
func NewState(n, v int) (*State, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: qubit count must be at least 1, got %d", ErrConstruction, n)
	}

	size := 1 << n
	if v < 0 || v >= size {
		return nil, fmt.Errorf("%w: value %d must be in [0, %d)", ErrConstruction, v, size)
	}

	amplitudes := make([]complex128, size)
	amplitudes[v] = 1

	return &State{n: n, amplitudes: amplitudes}, nil
}

/*
NewStateFromVector builds a state from raw amplitudes. The qubit count is
derived from the length, which must be an exact power of two. Norm is not
checked.
*/
func NewStateFromVector(data []complex128) (*State, error) {
	n, ok := qubitCount(len(data))
	if !ok {
		return nil, fmt.Errorf(
			"%w: state vector length %d is not a power of two", ErrShape, len(data),
		)
	}

	return &State{n: n, amplitudes: append([]complex128(nil), data...)}, nil
}

// Tensor returns a ⊗ b. The qubits of b keep their indices, a's are shifted up.
func Tensor(a, b *State) (*State, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: tensor product is defined between states", ErrType)
	}

	return &State{n: a.n + b.n, amplitudes: kronVector(a.amplitudes, b.amplitudes)}, nil
}

// Add returns the element-wise sum. No renormalization happens.
func Add(a, b *State) (*State, error) {
	if err := sameShape(a, b, "addition"); err != nil {
		return nil, err
	}

	out := append([]complex128(nil), a.amplitudes...)
	cmplxs.Add(out, b.amplitudes)

	return &State{n: a.n, amplitudes: out}, nil
}

// Sub returns the element-wise difference a - b.
func Sub(a, b *State) (*State, error) {
	if err := sameShape(a, b, "subtraction"); err != nil {
		return nil, err
	}

	out := append([]complex128(nil), a.amplitudes...)
	cmplxs.Sub(out, b.amplitudes)

	return &State{n: a.n, amplitudes: out}, nil
}

func sameShape(a, b *State, op string) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: %s is defined between states", ErrType, op)
	}

	if a.n != b.n {
		return fmt.Errorf("%w: %s of %d-qubit and %d-qubit states", ErrShape, op, a.n, b.n)
	}

	return nil
}

// Qubits returns the number of qubits in the register.
func (s *State) Qubits() int {
	return s.n
}

// Amplitudes returns a copy of the state vector.
func (s *State) Amplitudes() []complex128 {
	return append([]complex128(nil), s.amplitudes...)
}

// Dagger returns the conjugate transpose, the bra ⟨ψ| as a row.
func (s *State) Dagger() []complex128 {
	out := make([]complex128, len(s.amplitudes))
	for i, a := range s.amplitudes {
		out[i] = complex(real(a), -imag(a))
	}

	return out
}

// Norm returns the Euclidean norm of the amplitudes.
func (s *State) Norm() float64 {
	return cmplxs.Norm(s.amplitudes, 2)
}

/*
Value returns v for a state equal to |v⟩. A circuit layer uses it to carry
an input register over to a different qubit count. States with more than one
non-zero amplitude, or a single amplitude other than 1, are rejected.
*/
func (s *State) Value() (int, error) {
	value := -1

	for i, a := range s.amplitudes {
		if a == 0 {
			continue
		}

		if value >= 0 || a != 1 {
			return 0, fmt.Errorf("%w: state is not a computational basis state", ErrShape)
		}

		value = i
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: state has no non-zero amplitude", ErrShape)
	}

	return value, nil
}

// ApproxEqual reports whether both states have the same qubit count and
// every amplitude pair lies within tol.
func (s *State) ApproxEqual(other *State, tol float64) bool {
	if other == nil || s.n != other.n {
		return false
	}

	return cmplxs.EqualApprox(s.amplitudes, other.amplitudes, tol)
}

// Entangled returns the entangled qubit groups using the default Config.
func (s *State) Entangled() [][]int {
	return NewDetector(NewConfig()).detect(s.amplitudes)
}

/*
String renders the state as a sum of amplitude|bitstring⟩ terms. Only
amplitudes that are exactly zero are left out.
*/
func (s *State) String() string {
	terms := make([]string, 0, len(s.amplitudes))

	for i, a := range s.amplitudes {
		if a == 0 {
			continue
		}

		bitstring := strconv.FormatInt(int64(i), 2)
		terms = append(terms, fmt.Sprintf(
			"%v|%s%s⟩", a, strings.Repeat("0", s.n-len(bitstring)), bitstring,
		))
	}

	return strings.Join(terms, " + ")
}
