package main

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/qentangle"
)

func TestParseGateSpec(t *testing.T) {
	Convey("Given gate strings", t, func() {
		Convey("When the gate is uncontrolled", func() {
			spec, err := parseGateSpec("h:1")

			Convey("Then it should have no control", func() {
				So(err, ShouldBeNil)
				So(spec, ShouldResemble, qentangle.GateSpec{
					Kind: qentangle.H, Target: 1, Control: qentangle.NoControl,
				})
			})
		})

		Convey("When the gate is controlled", func() {
			spec, err := parseGateSpec("X:0:1")

			Convey("Then the control should be set", func() {
				So(err, ShouldBeNil)
				So(spec.Control, ShouldEqual, 1)
			})
		})

		Convey("When the gate is malformed", func() {
			for _, raw := range []string{"X", "X:a", "X:0:b", "Q:0", "X:0:1:2"} {
				_, err := parseGateSpec(raw)
				So(errors.Is(err, qentangle.ErrConstruction), ShouldBeTrue)
			}
		})
	})
}

func TestRootCmd(t *testing.T) {
	Convey("Given the root command", t, func() {
		cmd := newRootCmd()
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})

		Convey("When preparing a Bell state", func() {
			cmd.SetArgs([]string{"--qubits", "2", "--gate", "H:1", "--gate", "X:0:1"})
			err := cmd.Execute()

			Convey("Then both qubits should be reported together", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "entangled: [[0 1]]")
			})
		})

		Convey("When no gates are given", func() {
			cmd.SetArgs([]string{"--qubits", "3", "--value", "5"})
			err := cmd.Execute()

			Convey("Then the basis state should be printed unentangled", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "state:     (1+0i)|101⟩")
				So(out.String(), ShouldContainSubstring, "entangled: []")
			})
		})

		Convey("When the register exceeds the limit", func() {
			cmd.SetArgs([]string{"--qubits", "4", "--max-qubits", "3"})
			err := cmd.Execute()

			Convey("Then it should fail", func() {
				So(errors.Is(err, qentangle.ErrConstruction), ShouldBeTrue)
			})
		})
	})
}
