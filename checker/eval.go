// Package checker evaluates a compiled circuit in plain big.Int arithmetic.
// It is deliberately independent of the field adapter so tests can
// cross-check the witness mapper against a second implementation.
package checker

import (
	"math/big"

	"github.com/Zklib/bp-compiler/bulletproofs"
)

// EvalCircuit computes the per-gate (a_L, a_R, a_O) vectors of a circuit
// under a witness. The witness has the circuit's pre-padding length; padding
// wires are treated as zero.
func EvalCircuit(c *bulletproofs.Circuit, witness []*big.Int) (aL, aR, aO []*big.Int) {
	z := padWitness(c, witness)
	pub := z[1 : 1+c.NbPublic]
	aL = make([]*big.Int, c.NbGates)
	aR = make([]*big.Int, c.NbGates)
	aO = make([]*big.Int, c.NbGates)
	engine := c.Engine()
	for i := 0; i < c.NbGates; i++ {
		aL[i] = evalRow(c, c.WL[i], z)
		aR[i] = evalRow(c, c.WR[i], z)
		o := evalRow(c, c.WO[i], z)
		o.Add(o, evalRow(c, c.WV[i], pub))
		o.Add(o, engine.ToBigInt(c.C[i]))
		aO[i] = o.Mod(o, c.FieldOrder)
	}
	return aL, aR, aO
}

// CheckCircuit reports whether the witness satisfies every gate equation.
func CheckCircuit(c *bulletproofs.Circuit, witness []*big.Int) bool {
	aL, aR, aO := EvalCircuit(c, witness)
	tmp := new(big.Int)
	for i := 0; i < c.NbGates; i++ {
		tmp.Mul(aL[i], aR[i])
		tmp.Mod(tmp, c.FieldOrder)
		if tmp.Cmp(aO[i]) != 0 {
			return false
		}
	}
	return true
}

// BindPublic computes W_V·v, the per-gate contribution of the committed
// public inputs. Two public-input vectors that bind identically are
// indistinguishable to the circuit.
func BindPublic(c *bulletproofs.Circuit, v []*big.Int) []*big.Int {
	res := make([]*big.Int, c.NbGates)
	for i := 0; i < c.NbGates; i++ {
		res[i] = evalRow(c, c.WV[i], v)
	}
	return res
}

func padWitness(c *bulletproofs.Circuit, witness []*big.Int) []*big.Int {
	z := make([]*big.Int, c.NbWires)
	for i := range z {
		if i < len(witness) && witness[i] != nil {
			z[i] = new(big.Int).Mod(witness[i], c.FieldOrder)
		} else {
			z[i] = new(big.Int)
		}
	}
	return z
}

func evalRow(c *bulletproofs.Circuit, row bulletproofs.SparseRow, z []*big.Int) *big.Int {
	engine := c.Engine()
	res := new(big.Int)
	tmp := new(big.Int)
	for _, e := range row {
		tmp.Mul(engine.ToBigInt(e.Coeff), z[e.Col])
		res.Add(res, tmp)
	}
	return res.Mod(res, c.FieldOrder)
}
