// Package r1cs holds the in-memory shape of a parsed Rank-1 Constraint
// System: an ordered list of constraints (A·z)∘(B·z)=(C·z) over sparse
// linear combinations of wires. Wire 0 is the constant-1 wire, wires
// 1..NbPublic are the public inputs, the rest are private or internal.
//
// This package is deliberately separate from the bulletproofs target form;
// the compiler package is the only mapping between the two.
package r1cs

import (
	"math/big"

	"github.com/consensys/gnark/constraint"
)

// Term is one coefficient of a sparse linear combination.
type Term struct {
	WireID int
	Coeff  constraint.Element
}

// LinearCombination is a sparse sum of coeff*wire terms. Insertion order is
// irrelevant; the compiler canonicalizes (sorts by wire id, merges
// duplicates) before emitting weight rows.
type LinearCombination []Term

// Constraint is a single R1CS constraint (A·z) * (B·z) = (C·z).
type Constraint struct {
	A LinearCombination
	B LinearCombination
	C LinearCombination
}

// ConstraintSystem is the loaded, immutable form handed over by the circuit
// parser. NbWires includes the constant wire 0.
type ConstraintSystem struct {
	FieldOrder  *big.Int
	NbWires     int
	NbPublic    int
	Constraints []Constraint
}

func NewConstraintSystem(fieldOrder *big.Int, nbWires, nbPublic int) *ConstraintSystem {
	return &ConstraintSystem{
		FieldOrder: fieldOrder,
		NbWires:    nbWires,
		NbPublic:   nbPublic,
	}
}

func (cs *ConstraintSystem) AddConstraint(a, b, c LinearCombination) {
	cs.Constraints = append(cs.Constraints, Constraint{A: a, B: b, C: c})
}

// Evaluate computes the dot product of the combination and a full wire
// assignment, using the given field engine.
func (lc LinearCombination) Evaluate(engine constraint.Field, z []constraint.Element) constraint.Element {
	var res constraint.Element
	for _, t := range lc {
		res = engine.Add(res, engine.Mul(t.Coeff, z[t.WireID]))
	}
	return res
}
