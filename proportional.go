package qentangle

import "math/cmplx"

// ratioKind separates the three outcomes of dividing two amplitudes.
type ratioKind int

const (
	// ratioIndeterminate: both amplitudes are negligible, any ratio fits.
	ratioIndeterminate ratioKind = iota
	ratioFinite
	// ratioInfinite: the denominator is negligible, the numerator is not.
	ratioInfinite
)

type ratio struct {
	kind  ratioKind
	value complex128
}

func (d *Detector) negligible(v complex128) bool {
	return cmplx.Abs(v) <= d.tolerance
}

func (d *Detector) zero(vector []complex128) bool {
	for _, v := range vector {
		if !d.negligible(v) {
			return false
		}
	}

	return true
}

func (d *Detector) divide(numerator, denominator complex128) ratio {
	switch {
	case !d.negligible(denominator):
		return ratio{kind: ratioFinite, value: numerator / denominator}
	case d.negligible(numerator):
		return ratio{kind: ratioIndeterminate}
	default:
		return ratio{kind: ratioInfinite}
	}
}

func (d *Detector) matches(a, b ratio) bool {
	if a.kind != b.kind {
		return false
	}

	return a.kind != ratioFinite || cmplx.Abs(a.value-b.value) <= d.tolerance
}

/*
proportional reports whether u = k·v for a single k, up to tolerance. A
negligible vector is proportional to anything. Pairs where both components
are negligible say nothing about k and are skipped; the first remaining pair
fixes k and every other pair must agree with it.
*/
func (d *Detector) proportional(u, v []complex128) bool {
	if d.zero(u) || d.zero(v) {
		return true
	}

	var (
		reference ratio
		fixed     bool
	)

	for i := range u {
		r := d.divide(u[i], v[i])
		if r.kind == ratioIndeterminate {
			continue
		}

		if !fixed {
			reference, fixed = r, true
			continue
		}

		if !d.matches(reference, r) {
			return false
		}
	}

	return true
}

// allProportional reports whether every pair of blocks is proportional.
func (d *Detector) allProportional(blocks [][]complex128) bool {
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if !d.proportional(blocks[i], blocks[j]) {
				return false
			}
		}
	}

	return true
}
