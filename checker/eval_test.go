package checker_test

import (
	"math/big"
	"testing"

	"github.com/Zklib/bp-compiler/bulletproofs"
	"github.com/Zklib/bp-compiler/checker"
	"github.com/Zklib/bp-compiler/compiler"
	"github.com/Zklib/bp-compiler/field/bn254"
	"github.com/Zklib/bp-compiler/r1cs"
	"github.com/stretchr/testify/require"
)

func multiplierSetup(t *testing.T) (*bulletproofs.Circuit, []*big.Int) {
	t.Helper()
	engine := &bn254.Field{}
	one := engine.One()
	cs := r1cs.NewConstraintSystem(bn254.ScalarField, 5, 2)
	cs.AddConstraint(
		r1cs.LinearCombination{{WireID: 1, Coeff: one}},
		r1cs.LinearCombination{{WireID: 2, Coeff: one}},
		r1cs.LinearCombination{{WireID: 3, Coeff: one}},
	)
	cs.AddConstraint(
		r1cs.LinearCombination{{WireID: 3, Coeff: one}},
		r1cs.LinearCombination{{WireID: 3, Coeff: one}},
		r1cs.LinearCombination{{WireID: 4, Coeff: one}},
	)
	circuit, err := compiler.Compile(cs)
	require.NoError(t, err)
	witness := []*big.Int{
		big.NewInt(1), big.NewInt(3), big.NewInt(4), big.NewInt(12), big.NewInt(144),
	}
	return circuit, witness
}

func TestCheckCircuit(t *testing.T) {
	circuit, witness := multiplierSetup(t)
	require.True(t, checker.CheckCircuit(circuit, witness))

	witness[4] = big.NewInt(145)
	require.False(t, checker.CheckCircuit(circuit, witness))
}

// the checker must agree with the field-adapter path in Assign
func TestEvalMatchesAssign(t *testing.T) {
	circuit, witness := multiplierSetup(t)
	aL, aR, aO := checker.EvalCircuit(circuit, witness)

	asg, err := bulletproofs.Assign(circuit, bulletproofs.Witness(witness))
	require.NoError(t, err)
	engine := circuit.Engine()
	for i := 0; i < circuit.NbGates; i++ {
		require.Zero(t, aL[i].Cmp(engine.ToBigInt(asg.AL[i])))
		require.Zero(t, aR[i].Cmp(engine.ToBigInt(asg.AR[i])))
		require.Zero(t, aO[i].Cmp(engine.ToBigInt(asg.AO[i])))
	}
}

func TestBindPublic(t *testing.T) {
	engine := &bn254.Field{}
	one := engine.One()
	// z1 * 1 = z2, both public: W_V carries the binding of wire 2
	cs := r1cs.NewConstraintSystem(bn254.ScalarField, 3, 2)
	cs.AddConstraint(
		r1cs.LinearCombination{{WireID: 1, Coeff: one}},
		r1cs.LinearCombination{{WireID: 0, Coeff: one}},
		r1cs.LinearCombination{{WireID: 2, Coeff: one}},
	)
	circuit, err := compiler.Compile(cs)
	require.NoError(t, err)

	v1 := []*big.Int{big.NewInt(5), big.NewInt(5)}
	v2 := []*big.Int{big.NewInt(5), big.NewInt(6)}
	b1 := checker.BindPublic(circuit, v1)
	b2 := checker.BindPublic(circuit, v2)
	require.NotZero(t, b1[0].Cmp(b2[0]))
}
