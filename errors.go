package qentangle

import "errors"

var (
	// ErrConstruction is returned when a state or gate is built from
	// out-of-range values.
	ErrConstruction = errors.New("invalid construction")
	// ErrShape is returned when dimensions disagree or a raw vector/matrix
	// does not have a valid shape.
	ErrShape = errors.New("shape mismatch")
	// ErrType is returned when an operator receives an operand of the wrong kind.
	ErrType = errors.New("unsupported operand")
)
