package qentangle

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKron(t *testing.T) {
	Convey("Given two 2×2 matrices", t, func() {
		a := matrix{{0, 1}, {1, 0}}
		b := matrix{{1, 0}, {0, -1}}

		Convey("When taking their Kronecker product", func() {
			out := kron(a, b)

			Convey("Then the left operand should vary slowest", func() {
				So(out, ShouldResemble, matrix{
					{0, 0, 1, 0},
					{0, 0, 0, -1},
					{1, 0, 0, 0},
					{0, -1, 0, 0},
				})
			})
		})

		Convey("When multiplying a matrix by its dagger", func() {
			y := Y.base()

			Convey("Then a Pauli matrix should give the identity", func() {
				So(y.mul(y.dagger()).equalApprox(identity(2), 0), ShouldBeTrue)
			})
		})
	})

	Convey("Given register sizes", t, func() {
		Convey("Then powers of two should map to qubit counts", func() {
			n, ok := qubitCount(8)
			So(ok, ShouldBeTrue)
			So(n, ShouldEqual, 3)
		})

		Convey("Then other sizes should be rejected", func() {
			for _, size := range []int{0, 1, 3, 6, -4} {
				_, ok := qubitCount(size)
				So(ok, ShouldBeFalse)
			}
		})
	})
}
