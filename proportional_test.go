package qentangle

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProportional(t *testing.T) {
	Convey("Given a detector", t, func() {
		d := NewDetector(NewConfig())

		Convey("When one vector is negligible", func() {
			So(d.proportional([]complex128{0, 1e-5}, []complex128{1, 2}), ShouldBeTrue)
			So(d.proportional([]complex128{1, 2}, []complex128{0, 0}), ShouldBeTrue)
		})

		Convey("When the vectors are scaled copies", func() {
			So(d.proportional([]complex128{2, 4}, []complex128{1, 2}), ShouldBeTrue)
			So(d.proportional([]complex128{1i, 2i}, []complex128{1, 2}), ShouldBeTrue)
		})

		Convey("When the vectors differ within tolerance", func() {
			So(d.proportional([]complex128{1, 2 + 1e-6}, []complex128{1, 2}), ShouldBeTrue)
		})

		Convey("When both vectors share a zero component", func() {
			So(d.proportional([]complex128{2, 0}, []complex128{1, 0}), ShouldBeTrue)
			So(d.proportional([]complex128{0, 3, 6}, []complex128{0, 1, 2}), ShouldBeTrue)
		})

		Convey("When the supports do not overlap", func() {
			So(d.proportional([]complex128{1, 0}, []complex128{0, 1}), ShouldBeFalse)
		})

		Convey("When only the denominator vanishes somewhere", func() {
			So(d.proportional([]complex128{1, 2}, []complex128{0, 1}), ShouldBeFalse)
			So(d.proportional([]complex128{2, 1}, []complex128{1, 0}), ShouldBeFalse)
		})

		Convey("When the ratios disagree", func() {
			So(d.proportional([]complex128{1, 3}, []complex128{1, 2}), ShouldBeFalse)
		})

		Convey("When checking several blocks at once", func() {
			So(d.allProportional([][]complex128{{1, 2}, {0, 0}, {2, 4}}), ShouldBeTrue)
			So(d.allProportional([][]complex128{{1, 2}, {2, 4}, {1, 0}}), ShouldBeFalse)
		})
	})
}

func TestRatio(t *testing.T) {
	Convey("Given a detector", t, func() {
		d := NewDetector(NewConfig())

		Convey("Then each division should land in the right kind", func() {
			So(d.divide(2, 1).kind, ShouldEqual, ratioFinite)
			So(d.divide(2, 0).kind, ShouldEqual, ratioInfinite)
			So(d.divide(0, 0).kind, ShouldEqual, ratioIndeterminate)
		})

		Convey("Then infinite ratios should only match each other", func() {
			So(d.matches(ratio{kind: ratioInfinite}, ratio{kind: ratioInfinite}), ShouldBeTrue)
			So(d.matches(ratio{kind: ratioInfinite}, ratio{kind: ratioFinite, value: 1e9}), ShouldBeFalse)
		})
	})
}
