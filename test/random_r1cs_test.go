package test

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/Zklib/bp-compiler/bulletproofs"
	"github.com/Zklib/bp-compiler/compiler"
	"github.com/Zklib/bp-compiler/driver"
	"github.com/Zklib/bp-compiler/utils"
	"github.com/stretchr/testify/require"
)

func defaultConfig(seed int) *randomSystemConfig {
	return &randomSystemConfig{
		seed:          seed,
		nbPublic:      randRange{1, 4},
		nbConstraints: randRange{1, 40},
		termsPerLC:    randRange{1, 6},
		nbFreeWires:   randRange{1, 3},
	}
}

func clonePublics(w bulletproofs.Witness, nbPublic int) []*big.Int {
	res := make([]*big.Int, nbPublic)
	for i := range res {
		res[i] = new(big.Int).Set(w[1+i])
	}
	return res
}

func TestRandomSystemsRoundTrip(t *testing.T) {
	for seed := 0; seed < 30; seed++ {
		cs, witness := randomConstraintSystem(defaultConfig(seed))
		circuit, err := compiler.Compile(cs)
		require.NoError(t, err)
		require.NoError(t, circuit.Validate())

		require.Equal(t, utils.NextPowerOfTwo(len(cs.Constraints)), circuit.NbGates)
		wantWires := cs.NbWires
		if wantWires < circuit.NbGates {
			wantWires = circuit.NbGates
		}
		require.Equal(t, utils.NextPowerOfTwo(wantWires), circuit.NbWires)

		publics := clonePublics(witness, cs.NbPublic)
		assert := NewAssert(t)
		proof := assert.ProveSucceeded(circuit, witness, publics)

		// same proof, different public inputs: reject, don't error
		bad := clonePublics(witness, cs.NbPublic)
		bad[0].Add(bad[0], big.NewInt(1))
		bad[0].Mod(bad[0], cs.FieldOrder)
		ok, err := driver.Verify(assert.Backend, circuit, bad, proof)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	for seed := 0; seed < 10; seed++ {
		cs1, _ := randomConstraintSystem(defaultConfig(seed))
		cs2, _ := randomConstraintSystem(defaultConfig(seed))
		c1, err := compiler.Compile(cs1)
		require.NoError(t, err)
		c2, err := compiler.Compile(cs2)
		require.NoError(t, err)
		require.True(t, bytes.Equal(c1.Serialize(), c2.Serialize()))
	}
}

func TestPaddingRowsAreZero(t *testing.T) {
	for seed := 0; seed < 10; seed++ {
		cs, _ := randomConstraintSystem(defaultConfig(seed))
		circuit, err := compiler.Compile(cs)
		require.NoError(t, err)
		for i := circuit.NbConstraints; i < circuit.NbGates; i++ {
			require.Empty(t, circuit.WL[i])
			require.Empty(t, circuit.WR[i])
			require.Empty(t, circuit.WO[i])
			require.Empty(t, circuit.WV[i])
			require.True(t, circuit.C[i].IsZero())
		}
	}
}

func TestUnsatisfiedWitnessNamesTheGate(t *testing.T) {
	for seed := 0; seed < 10; seed++ {
		cs, witness := randomConstraintSystem(defaultConfig(seed))
		circuit, err := compiler.Compile(cs)
		require.NoError(t, err)

		// tamper with the product wire of some constraint k; gates
		// before k can't reference it, so k is the first to fail
		k := seed % len(cs.Constraints)
		wire := 1 + cs.NbPublic + k
		witness[wire].Add(witness[wire], big.NewInt(1))
		witness[wire].Mod(witness[wire], cs.FieldOrder)

		assert := NewAssert(t)
		err = assert.ProveFailed(circuit, witness, clonePublics(witness, cs.NbPublic))
		var unsat *bulletproofs.UnsatisfiedConstraintError
		require.True(t, errors.As(err, &unsat))
		require.Equal(t, k, unsat.Gate)
	}
}

func TestFreeWireFlipStillVerifies(t *testing.T) {
	cs, witness := randomConstraintSystem(defaultConfig(7))
	circuit, err := compiler.Compile(cs)
	require.NoError(t, err)
	publics := clonePublics(witness, cs.NbPublic)

	assert := NewAssert(t)
	assert.ProveSucceeded(circuit, witness, publics)

	// the last wires are unconstrained; a different value there is still
	// a satisfying assignment
	free := len(witness) - 1
	witness[free].Add(witness[free], big.NewInt(42))
	witness[free].Mod(witness[free], cs.FieldOrder)
	assert.ProveSucceeded(circuit, witness, publics)
}
