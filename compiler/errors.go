package compiler

import (
	"errors"
	"fmt"
)

// ErrEmptyCircuit is returned when the constraint system has no constraints.
var ErrEmptyCircuit = errors.New("constraint system is empty")

// MalformedConstraintError reports a linear combination referencing a wire
// outside [0, NbWires).
type MalformedConstraintError struct {
	Constraint int
	Wire       int
}

func (e *MalformedConstraintError) Error() string {
	return fmt.Sprintf("constraint %d references out-of-range wire %d", e.Constraint, e.Wire)
}
