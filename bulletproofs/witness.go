package bulletproofs

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"
)

// Witness is one value per pre-padding wire, index 0 fixed to 1. It is the
// secret: single-use, scoped to one proving call, and never retained past
// proof creation. Callers may Wipe it once the proof exists.
type Witness []*big.Int

// Assignment carries the per-gate left/right/output values fed to the
// prover. It is derived from a Witness and is equally secret.
type Assignment struct {
	AL []constraint.Element
	AR []constraint.Element
	AO []constraint.Element
}

// WitnessLengthMismatchError reports a witness whose length differs from the
// circuit's pre-padding wire count.
type WitnessLengthMismatchError struct {
	Expected int
	Got      int
}

func (e *WitnessLengthMismatchError) Error() string {
	return fmt.Sprintf("witness length %d, circuit has %d wires", e.Got, e.Expected)
}

// UnsatisfiedConstraintError reports the first gate whose multiplication
// equation does not hold under the given witness.
type UnsatisfiedConstraintError struct {
	Gate int
}

func (e *UnsatisfiedConstraintError) Error() string {
	return fmt.Sprintf("constraint %d is not satisfied by the witness", e.Gate)
}

// Assign evaluates the circuit's weight rows against a witness and produces
// the gate assignment. It checks every gate equation before returning, so a
// witness that does not satisfy the circuit never reaches the prover.
func Assign(c *Circuit, w Witness) (*Assignment, error) {
	if len(w) != c.NbWitnessWires {
		return nil, &WitnessLengthMismatchError{Expected: c.NbWitnessWires, Got: len(w)}
	}
	engine := c.Engine()

	// padded wire vector; padding wires stay zero
	z := make([]constraint.Element, c.NbWires)
	for i, v := range w {
		z[i] = engine.FromInterface(v)
	}

	asg := &Assignment{
		AL: make([]constraint.Element, c.NbGates),
		AR: make([]constraint.Element, c.NbGates),
		AO: make([]constraint.Element, c.NbGates),
	}
	// the public slots of ẑ, viewed as the commitment vector v
	pub := z[1 : 1+c.NbPublic]
	for i := 0; i < c.NbGates; i++ {
		asg.AL[i] = EvalRow(engine, c.WL[i], z)
		asg.AR[i] = EvalRow(engine, c.WR[i], z)
		ao := engine.Add(EvalRow(engine, c.WO[i], z), EvalRow(engine, c.WV[i], pub))
		asg.AO[i] = engine.Add(ao, c.C[i])
	}
	for i := 0; i < c.NbConstraints; i++ {
		lhs := engine.Mul(asg.AL[i], asg.AR[i])
		if lhs != asg.AO[i] {
			asg.Wipe()
			return nil, &UnsatisfiedConstraintError{Gate: i}
		}
	}
	return asg, nil
}

// Wipe zeroes the gate values. The driver calls this on every exit path of a
// proving call.
func (a *Assignment) Wipe() {
	var zero constraint.Element
	for i := range a.AL {
		a.AL[i] = zero
	}
	for i := range a.AR {
		a.AR[i] = zero
	}
	for i := range a.AO {
		a.AO[i] = zero
	}
}

// Wipe zeroes the witness values in place.
func (w Witness) Wipe() {
	for _, v := range w {
		if v != nil {
			v.SetUint64(0)
		}
	}
}
