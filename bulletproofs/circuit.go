// Package bulletproofs holds the weighted arithmetic-circuit form consumed
// by a Bulletproofs-style prover: per-gate weight rows W_L, W_R, W_O over
// wire columns, the public-commitment map W_V, and the constant vector c.
//
// A circuit accepts a padded wire assignment ẑ (ẑ[0] = 1, padding wires = 0)
// together with a committed public-input vector v iff for every gate i
//
//	⟨W_L[i], ẑ⟩ · ⟨W_R[i], ẑ⟩ = ⟨W_O[i], ẑ⟩ + (W_V·v)[i] + c[i]
//
// and the public wires of ẑ open to v. Public inputs reach the equation only
// through W_V, never folded into c, so the verifier re-binds them to fresh
// commitments on every call. This predicate accepts exactly the assignments
// the source R1CS accepts.
package bulletproofs

import (
	"fmt"
	"math/big"

	"github.com/Zklib/bp-compiler/field"
	"github.com/consensys/gnark/constraint"
)

// Entry is one weight of a sparse matrix row.
type Entry struct {
	Col   int
	Coeff constraint.Element
}

// SparseRow is one matrix row, sorted by column. A nil or empty row is the
// all-zero row; padding gates carry only such rows.
type SparseRow []Entry

// Circuit is an immutable compiled circuit. It is safe to share across
// concurrent proving and verification calls.
type Circuit struct {
	// FieldOrder identifies the scalar field; the engine is re-derived
	// from it wherever arithmetic is needed.
	FieldOrder *big.Int

	// NbGates is the padded gate count, a power of 2.
	NbGates int
	// NbWires is the padded wire count, a power of 2 >= max(witness
	// wires, NbGates). Wires past NbWitnessWires are padding and fixed
	// to zero.
	NbWires int
	// NbConstraints is the number of real (pre-padding) gates.
	NbConstraints int
	// NbWitnessWires is the pre-padding wire count, i.e. the expected
	// witness length.
	NbWitnessWires int
	// NbPublic is the number of committed public inputs; wires
	// 1..NbPublic carry their values.
	NbPublic int

	WL []SparseRow // NbGates rows over wire columns
	WR []SparseRow
	WO []SparseRow
	WV []SparseRow // NbGates rows over public-input columns
	C  []constraint.Element
}

func (c *Circuit) Engine() field.Field {
	return field.GetFieldFromOrder(c.FieldOrder)
}

func isPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Validate checks the structural invariants of a compiled circuit:
// power-of-2 dimensions, in-range columns, sorted rows, and all-zero
// padding rows.
func (c *Circuit) Validate() error {
	if !isPowerOfTwo(c.NbGates) {
		return fmt.Errorf("gate count %d not a power of 2", c.NbGates)
	}
	if !isPowerOfTwo(c.NbWires) {
		return fmt.Errorf("wire count %d not a power of 2", c.NbWires)
	}
	if c.NbWires < c.NbWitnessWires || c.NbWires < c.NbGates {
		return fmt.Errorf("wire count %d below max(%d, %d)", c.NbWires, c.NbWitnessWires, c.NbGates)
	}
	if c.NbConstraints < 1 || c.NbConstraints > c.NbGates {
		return fmt.Errorf("constraint count %d outside [1, %d]", c.NbConstraints, c.NbGates)
	}
	if c.NbPublic < 0 || c.NbPublic >= c.NbWitnessWires {
		return fmt.Errorf("public input count %d not in [0, %d)", c.NbPublic, c.NbWitnessWires)
	}
	if len(c.WL) != c.NbGates || len(c.WR) != c.NbGates || len(c.WO) != c.NbGates ||
		len(c.WV) != c.NbGates || len(c.C) != c.NbGates {
		return fmt.Errorf("matrix row counts don't match gate count %d", c.NbGates)
	}
	checkRows := func(name string, rows []SparseRow, nbCols int) error {
		for i, row := range rows {
			for j, e := range row {
				if e.Col < 0 || e.Col >= nbCols {
					return fmt.Errorf("%s row %d column %d out of range [0, %d)", name, i, e.Col, nbCols)
				}
				if j > 0 && row[j-1].Col >= e.Col {
					return fmt.Errorf("%s row %d not sorted by column", name, i)
				}
			}
			if i >= c.NbConstraints && len(row) != 0 {
				return fmt.Errorf("%s padding row %d is not all-zero", name, i)
			}
		}
		return nil
	}
	if err := checkRows("W_L", c.WL, c.NbWires); err != nil {
		return err
	}
	if err := checkRows("W_R", c.WR, c.NbWires); err != nil {
		return err
	}
	if err := checkRows("W_O", c.WO, c.NbWires); err != nil {
		return err
	}
	if err := checkRows("W_V", c.WV, c.NbPublic); err != nil {
		return err
	}
	for i := c.NbConstraints; i < c.NbGates; i++ {
		if !c.C[i].IsZero() {
			return fmt.Errorf("c padding entry %d is not zero", i)
		}
	}
	return nil
}

// EvalRow computes the dot product of a sparse row and a dense vector.
func EvalRow(engine constraint.Field, row SparseRow, z []constraint.Element) constraint.Element {
	var res constraint.Element
	for _, e := range row {
		res = engine.Add(res, engine.Mul(e.Coeff, z[e.Col]))
	}
	return res
}
