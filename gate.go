package qentangle

import (
	"fmt"
	"math"
)

// Kind tags the operator a gate applies to its target qubit.
type Kind int

const (
	Identity Kind = iota
	X
	Y
	Z
	H
	// Composite marks gates produced by composition or from a raw matrix.
	Composite
	kindSwap
)

// NoControl is the control index of an uncontrolled gate.
const NoControl = -1

var kindNames = map[Kind]string{
	Identity:  "I",
	X:         "X",
	Y:         "Y",
	Z:         "Z",
	H:         "H",
	Composite: "composite",
	kindSwap:  "swap",
}

func (kind Kind) String() string {
	if name, ok := kindNames[kind]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(kind))
}

// ParseKind maps a gate name (I, X, Y, Z, H) to its Kind.
func ParseKind(name string) (Kind, error) {
	for kind := Identity; kind <= H; kind++ {
		if kindNames[kind] == name {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown gate kind %q", ErrConstruction, name)
}

// base returns the 2×2 operator of a single-qubit kind.
func (kind Kind) base() matrix {
	switch kind {
	case X:
		return matrix{{0, 1}, {1, 0}}
	case Y:
		return matrix{{0, -1i}, {1i, 0}}
	case Z:
		return matrix{{1, 0}, {0, -1}}
	case H:
		h := complex(1/math.Sqrt2, 0)
		return matrix{{h, h}, {h, -h}}
	default:
		return pauliI
	}
}

/*
GateSpec describes a gate without fixing the register size. A circuit layer
keeps specs in its grid and rebuilds every gate when qubit rows are added or
removed.
*/
type GateSpec struct {
	Kind    Kind
	Target  int
	Control int
}

// Build constructs the gate for an n-qubit register.
func (spec GateSpec) Build(n int) (*Gate, error) {
	return NewControlledGate(spec.Kind, n, spec.Target, spec.Control)
}

/*
Gate is a 2^n×2^n unitary acting on an n-qubit register. Gates built from a
kind remember their spec. Gates obtained by composition carry the Composite
kind and no target.
*/
type Gate struct {
	spec   GateSpec
	n      int
	matrix matrix
}

// NewGate returns the uncontrolled gate of the given kind on target.
func NewGate(kind Kind, n, target int) (*Gate, error) {
	return NewControlledGate(kind, n, target, NoControl)
}

/*
NewControlledGate returns the gate of the given kind on target, applied only
when control is |1⟩. Pass NoControl for an uncontrolled gate.
*/
func NewControlledGate(kind Kind, n, target, control int) (*Gate, error) {
	if kind < Identity || kind > H {
		return nil, fmt.Errorf("%w: gate kind %v cannot be constructed directly", ErrConstruction, kind)
	}

	if n < 1 {
		return nil, fmt.Errorf("%w: qubit count must be at least 1, got %d", ErrConstruction, n)
	}

	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d must be smaller than n(%d)", ErrConstruction, target, n)
	}

	if control != NoControl && (control < 0 || control >= n || control == target) {
		return nil, fmt.Errorf(
			"%w: control %d must be in [0, %d) and differ from target %d",
			ErrConstruction, control, n, target,
		)
	}

	spec := GateSpec{Kind: kind, Target: target, Control: control}

	return &Gate{spec: spec, n: n, matrix: spec.form(n)}, nil
}

/*
form builds the full matrix. An uncontrolled gate is the Kronecker product of
the base operator at the target and identities elsewhere. A controlled gate is
the sum of the branch with |0⟩⟨0| at the control and identity at the target,
and the branch with |1⟩⟨1| at the control and the base operator at the target.
*/
func (spec GateSpec) form(n int) matrix {
	if spec.Control == NoControl {
		return expand(n, map[int]matrix{spec.Target: spec.Kind.base()})
	}

	return expand(n, map[int]matrix{
		spec.Control: projector0,
	}).add(expand(n, map[int]matrix{
		spec.Control: projector1,
		spec.Target:  spec.Kind.base(),
	}))
}

/*
expand takes 2×2 factors by qubit position and returns their Kronecker product
over positions n-1 down to 0, with identity at every position not listed.
Qubit n-1 is the first factor, so qubit k lands on bit k of the basis index.
*/
func expand(n int, factors map[int]matrix) matrix {
	var out matrix

	for position := n - 1; position >= 0; position-- {
		factor, ok := factors[position]
		if !ok {
			factor = pauliI
		}

		if out == nil {
			out = factor
			continue
		}

		out = kron(out, factor)
	}

	return out.clone()
}

/*
newSwap returns the gate exchanging qubits i and j. The two-qubit swap is
Σ|a⟩⟨b| ⊗ |b⟩⟨a| over a, b ∈ {0, 1}, and each term is embedded like any
other factor product.
*/
func newSwap(n, i, j int) *Gate {
	out := zeros(1<<n, 1<<n)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			if i == j {
				if a != b {
					continue
				}
				out = out.add(expand(n, map[int]matrix{i: outer(a, a)}))
				continue
			}

			out = out.add(expand(n, map[int]matrix{i: outer(a, b), j: outer(b, a)}))
		}
	}

	return &Gate{
		spec:   GateSpec{Kind: kindSwap, Target: i, Control: j},
		n:      n,
		matrix: out,
	}
}

/*
NewGateFromMatrix wraps a raw square matrix whose side is a power of two.
The qubit count is derived from the side length.
*/
func NewGateFromMatrix(data [][]complex128) (*Gate, error) {
	m := matrix(data)
	if !m.isSquare() {
		return nil, fmt.Errorf("%w: gate matrix must be square", ErrShape)
	}

	n, ok := qubitCount(len(m))
	if !ok {
		return nil, fmt.Errorf("%w: gate matrix side %d is not a power of two", ErrShape, len(m))
	}

	return &Gate{
		spec:   GateSpec{Kind: Composite, Target: NoControl, Control: NoControl},
		n:      n,
		matrix: m.clone(),
	}, nil
}

// Compose returns the gate a·b, which applies b first and then a.
func Compose(a, b *Gate) (*Gate, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: composition is defined between gates", ErrType)
	}

	if a.n != b.n {
		return nil, fmt.Errorf("%w: cannot compose %d-qubit and %d-qubit gates", ErrShape, a.n, b.n)
	}

	return &Gate{
		spec:   GateSpec{Kind: Composite, Target: NoControl, Control: NoControl},
		n:      a.n,
		matrix: a.matrix.mul(b.matrix),
	}, nil
}

// Apply returns the state g|s⟩.
func Apply(g *Gate, s *State) (*State, error) {
	if g == nil || s == nil {
		return nil, fmt.Errorf("%w: a gate applies to a state", ErrType)
	}

	if g.n != s.n {
		return nil, fmt.Errorf("%w: cannot apply %d-qubit gate to %d-qubit state", ErrShape, g.n, s.n)
	}

	return &State{n: s.n, amplitudes: g.matrix.apply(s.amplitudes)}, nil
}

/*
Mul multiplies g with a gate or a state, returning a *Gate or a *State
respectively. Any other operand is a type error.
*/
func (g *Gate) Mul(operand any) (any, error) {
	switch other := operand.(type) {
	case *Gate:
		return Compose(g, other)
	case *State:
		return Apply(g, other)
	default:
		return nil, fmt.Errorf("%w: cannot multiply a gate by %T", ErrType, operand)
	}
}

// Qubits returns the register size the gate acts on.
func (g *Gate) Qubits() int {
	return g.n
}

// Spec returns the tagged description the gate was built from.
func (g *Gate) Spec() GateSpec {
	return g.spec
}

// Rebuild constructs the same kind of gate on a register of n qubits.
func (g *Gate) Rebuild(n int) (*Gate, error) {
	if g.spec.Kind == Composite || g.spec.Kind == kindSwap {
		return nil, fmt.Errorf("%w: %v gate cannot be rebuilt", ErrConstruction, g.spec.Kind)
	}

	return g.spec.Build(n)
}

// Matrix returns a copy of the gate matrix.
func (g *Gate) Matrix() [][]complex128 {
	return g.matrix.clone()
}

// Dagger returns the conjugate transpose, which is also the inverse.
func (g *Gate) Dagger() *Gate {
	return &Gate{
		spec:   GateSpec{Kind: Composite, Target: NoControl, Control: NoControl},
		n:      g.n,
		matrix: g.matrix.dagger(),
	}
}

// IsUnitary reports whether G·G† is the identity within tol.
func (g *Gate) IsUnitary(tol float64) bool {
	return g.matrix.mul(g.matrix.dagger()).equalApprox(identity(len(g.matrix)), tol)
}

func (g *Gate) String() string {
	switch g.spec.Kind {
	case Composite:
		return fmt.Sprintf("composite(%d)", g.n)
	case kindSwap:
		return fmt.Sprintf("swap(%d, %d<->%d)", g.n, g.spec.Target, g.spec.Control)
	}

	if g.spec.Control == NoControl {
		return fmt.Sprintf("%v(%d, target=%d)", g.spec.Kind, g.n, g.spec.Target)
	}

	return fmt.Sprintf("C%v(%d, target=%d, control=%d)", g.spec.Kind, g.n, g.spec.Target, g.spec.Control)
}
