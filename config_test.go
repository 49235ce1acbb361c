package qentangle

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given the default config", t, func() {
		config := NewConfig()

		Convey("Then it should carry the detection tolerance", func() {
			So(config.Tolerance, ShouldEqual, 1e-4)
		})

		Convey("When checking qubit counts", func() {
			Convey("Then counts within the limit should pass", func() {
				So(config.CheckQubits(1), ShouldBeNil)
				So(config.CheckQubits(config.MaxQubits), ShouldBeNil)
			})

			Convey("Then counts outside the limit should fail", func() {
				So(errors.Is(config.CheckQubits(0), ErrConstruction), ShouldBeTrue)
				So(errors.Is(config.CheckQubits(config.MaxQubits+1), ErrConstruction), ShouldBeTrue)
			})
		})
	})
}
