package qentangle

import (
	"fmt"
	"slices"

	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/stat/combin"
)

/*
Detector finds which qubits of a pure state are entangled with each other.

It works on the amplitude vector alone. A set of qubits is a separable factor
when, after moving those qubits to the most significant bits, the blocks of
the vector indexed by their values are all proportional to one another. The
detector first removes every qubit that is separable on its own, then looks
for the smallest factors among what is left, removing each one it finds and
reporting it as a group.

Fully separable qubits never show up in the result, so a product state yields
an empty list and a fully entangled register yields one group holding every
qubit.
*/
type Detector struct {
	tolerance float64
}

func NewDetector(config *Config) *Detector {
	return &Detector{tolerance: config.Tolerance}
}

/*
Groups partitions the qubits of the state vector into entangled groups. Each
group is sorted, and groups are listed in the order they were factored out.
*/
func (d *Detector) Groups(amplitudes []complex128) ([][]int, error) {
	if _, ok := qubitCount(len(amplitudes)); !ok {
		return nil, fmt.Errorf(
			"%w: state vector length %d is not a power of two", ErrShape, len(amplitudes),
		)
	}

	return d.detect(amplitudes), nil
}

func (d *Detector) detect(amplitudes []complex128) [][]int {
	n, _ := qubitCount(len(amplitudes))
	reg := newRegister(amplitudes, n)

	separable := make([]int, 0, n)
	for qubit := 0; qubit < n; qubit++ {
		reg.moveToTail([]int{qubit})

		halves := reg.split(2)
		if d.proportional(halves[0], halves[1]) {
			separable = append(separable, qubit)
		}
	}

	reg.moveToTail(separable)
	d.pop(reg, len(separable))

	groups := d.search(reg, 2, make([][]int, 0))

	errnie.Info(
		"entanglement - qubits %d, separable %v, groups %v", n, separable, groups,
	)

	return groups
}

/*
search looks for a separable factor of r qubits among the remaining ones.
Registers of three or fewer qubits, and searches where r exceeds half the
register, cannot be split any further and form a single group.
*/
func (d *Detector) search(reg *register, r int, groups [][]int) [][]int {
	m := len(reg.ordering)

	if m <= 3 || r > m/2 {
		if m >= 2 {
			groups = append(groups, reg.labels())
		}

		return groups
	}

	pool := reg.labels()
	gen := combin.NewCombinationGenerator(m, r)
	indices := make([]int, r)

	for gen.Next() {
		gen.Combination(indices)

		candidate := make([]int, r)
		for i, idx := range indices {
			candidate[i] = pool[idx]
		}

		reg.moveToTail(candidate)

		if d.allProportional(reg.split(1 << r)) {
			d.pop(reg, r)
			return d.search(reg, r, append(groups, candidate))
		}
	}

	return d.search(reg, r+1, groups)
}

/*
pop drops the k most significant qubits of the register. Their value blocks
are proportional, so the block with the largest norm holds the state of the
remaining qubits; it is kept and renormalized.
*/
func (d *Detector) pop(reg *register, k int) {
	if k == 0 {
		return
	}

	var (
		keep []complex128
		best = -1.0
	)

	for _, block := range reg.split(1 << k) {
		if norm := cmplxs.Norm(block, 2); norm > best {
			keep, best = block, norm
		}
	}

	keep = append([]complex128(nil), keep...)
	if best > 0 {
		cmplxs.Scale(complex(1/best, 0), keep)
	}

	reg.vector = keep
	reg.ordering = reg.ordering[:len(reg.ordering)-k]
}

/*
register is the detector's working copy of a state. ordering[p] is the
original label of the qubit currently sitting on bit p of the vector index.
*/
type register struct {
	vector   []complex128
	ordering []int
}

func newRegister(amplitudes []complex128, n int) *register {
	ordering := make([]int, n)
	for i := range ordering {
		ordering[i] = i
	}

	return &register{
		vector:   append([]complex128(nil), amplitudes...),
		ordering: ordering,
	}
}

// labels returns the remaining qubit labels in ascending order.
func (reg *register) labels() []int {
	out := slices.Clone(reg.ordering)
	slices.Sort(out)

	return out
}

/*
moveToTail swaps qubits until the given labels occupy the most significant
positions. Labels already there stay put.
*/
func (reg *register) moveToTail(labels []int) {
	m, k := len(reg.ordering), len(labels)
	if k == 0 {
		return
	}

	free := make([]int, 0, k)
	for p := m - k; p < m; p++ {
		if !slices.Contains(labels, reg.ordering[p]) {
			free = append(free, p)
		}
	}

	for _, label := range labels {
		p := slices.Index(reg.ordering, label)
		if p >= m-k {
			continue
		}

		reg.swap(p, free[0])
		free = free[1:]
	}
}

func (reg *register) swap(p, q int) {
	reg.vector = newSwap(len(reg.ordering), p, q).matrix.apply(reg.vector)
	reg.ordering[p], reg.ordering[q] = reg.ordering[q], reg.ordering[p]
}

// split cuts the vector into the given number of contiguous, equal blocks.
func (reg *register) split(blocks int) [][]complex128 {
	size := len(reg.vector) / blocks
	out := make([][]complex128, blocks)

	for i := range out {
		out[i] = reg.vector[i*size : (i+1)*size]
	}

	return out
}
