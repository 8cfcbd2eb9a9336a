// Package compiler maps a Rank-1 Constraint System onto the weighted
// arithmetic-circuit form of the bulletproofs package.
//
// Each R1CS constraint (A·z)∘(B·z)=(C·z) becomes exactly one multiplication
// gate: the A and B combinations become that gate's W_L and W_R rows, and
// the C combination becomes its output side, split between W_O (constant,
// private and internal wires) and W_V (public wires, re-indexed to
// commitment slots). The c entry of every real gate is zero because R1CS
// constraints are homogeneous; wire 0 already absorbs additive constants.
// Gate and wire counts are then padded to powers of 2 with all-zero rows, as
// required by the inner-product argument's recursive halving.
package compiler

import (
	"fmt"
	"sort"

	"github.com/Zklib/bp-compiler/bulletproofs"
	"github.com/Zklib/bp-compiler/field"
	"github.com/Zklib/bp-compiler/r1cs"
	"github.com/Zklib/bp-compiler/utils"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/logger"
)

// Compile transforms a constraint system into an immutable compiled circuit.
// It is a pure function of its input: identical constraint systems produce
// byte-identical circuits, which lets a verifier rebuild the exact matrices
// from public data.
func Compile(cs *r1cs.ConstraintSystem) (*bulletproofs.Circuit, error) {
	if len(cs.Constraints) == 0 {
		return nil, ErrEmptyCircuit
	}
	if cs.NbPublic < 0 || cs.NbPublic >= cs.NbWires {
		return nil, fmt.Errorf("public input count %d must be below wire count %d", cs.NbPublic, cs.NbWires)
	}
	engine := field.GetFieldFromOrder(cs.FieldOrder)

	nbConstraints := len(cs.Constraints)
	nbGates := utils.NextPowerOfTwo(nbConstraints)
	nbWires := cs.NbWires
	if nbWires < nbGates {
		nbWires = nbGates
	}
	nbWires = utils.NextPowerOfTwo(nbWires)

	circuit := &bulletproofs.Circuit{
		FieldOrder:     cs.FieldOrder,
		NbGates:        nbGates,
		NbWires:        nbWires,
		NbConstraints:  nbConstraints,
		NbWitnessWires: cs.NbWires,
		NbPublic:       cs.NbPublic,
		WL:             make([]bulletproofs.SparseRow, nbGates),
		WR:             make([]bulletproofs.SparseRow, nbGates),
		WO:             make([]bulletproofs.SparseRow, nbGates),
		WV:             make([]bulletproofs.SparseRow, nbGates),
		C:              make([]constraint.Element, nbGates),
	}

	for i, cons := range cs.Constraints {
		var err error
		if circuit.WL[i], err = canonicalRow(engine, cons.A, cs.NbWires, i); err != nil {
			return nil, err
		}
		if circuit.WR[i], err = canonicalRow(engine, cons.B, cs.NbWires, i); err != nil {
			return nil, err
		}
		full, err := canonicalRow(engine, cons.C, cs.NbWires, i)
		if err != nil {
			return nil, err
		}
		// route public wires through W_V, everything else through W_O
		for _, e := range full {
			if e.Col >= 1 && e.Col <= cs.NbPublic {
				circuit.WV[i] = append(circuit.WV[i], bulletproofs.Entry{Col: e.Col - 1, Coeff: e.Coeff})
			} else {
				circuit.WO[i] = append(circuit.WO[i], e)
			}
		}
	}

	log := logger.Logger()
	log.Info().
		Int("nbConstraints", nbConstraints).
		Int("nbGates", nbGates).
		Int("nbWires", nbWires).
		Int("nbPublic", cs.NbPublic).
		Msg("compiled R1CS to weighted circuit")
	return circuit, nil
}

// canonicalRow turns a linear combination into a sparse weight row: sorted
// by wire, duplicate wires merged, zero coefficients dropped. Canonical form
// is what makes compilation deterministic down to the byte level.
func canonicalRow(engine field.Field, lc r1cs.LinearCombination, nbWires int, constraintIdx int) (bulletproofs.SparseRow, error) {
	if len(lc) == 0 {
		return nil, nil
	}
	row := make(bulletproofs.SparseRow, 0, len(lc))
	for _, t := range lc {
		if t.WireID < 0 || t.WireID >= nbWires {
			return nil, &MalformedConstraintError{Constraint: constraintIdx, Wire: t.WireID}
		}
		row = append(row, bulletproofs.Entry{Col: t.WireID, Coeff: t.Coeff})
	}
	sort.Slice(row, func(i, j int) bool { return row[i].Col < row[j].Col })
	out := row[:0]
	for _, e := range row {
		if len(out) > 0 && out[len(out)-1].Col == e.Col {
			out[len(out)-1].Coeff = engine.Add(out[len(out)-1].Coeff, e.Coeff)
			continue
		}
		out = append(out, e)
	}
	res := make(bulletproofs.SparseRow, 0, len(out))
	for _, e := range out {
		if !e.Coeff.IsZero() {
			res = append(res, e)
		}
	}
	if len(res) == 0 {
		return nil, nil
	}
	return res, nil
}
