package bulletproofs_test

import (
	"testing"

	"github.com/Zklib/bp-compiler/bulletproofs"
	"github.com/stretchr/testify/require"
)

func TestCircuitSerializeRoundTrip(t *testing.T) {
	circuit := multiplierCircuit(t)
	raw := circuit.Serialize()

	back, err := bulletproofs.DeserializeCircuit(raw)
	require.NoError(t, err)
	require.Equal(t, circuit.NbGates, back.NbGates)
	require.Equal(t, circuit.NbWires, back.NbWires)
	require.Equal(t, circuit.NbConstraints, back.NbConstraints)
	require.Equal(t, circuit.NbWitnessWires, back.NbWitnessWires)
	require.Equal(t, circuit.NbPublic, back.NbPublic)
	require.Equal(t, raw, back.Serialize())
}

func TestDeserializeRejectsGarbage(t *testing.T) {
	_, err := bulletproofs.DeserializeCircuit([]byte("not a circuit"))
	require.Error(t, err)
}

func TestDeserializeRejectsTruncated(t *testing.T) {
	raw := multiplierCircuit(t).Serialize()
	for i := 0; i < len(raw); i++ {
		_, err := bulletproofs.DeserializeCircuit(raw[:i])
		require.Error(t, err, "prefix of %d bytes", i)
	}
}

func TestDeserializeRejectsOversizedCounts(t *testing.T) {
	raw := multiplierCircuit(t).Serialize()

	// gate count far beyond what the buffer can hold
	huge := append([]byte(nil), raw...)
	for i := 40; i < 48; i++ {
		huge[i] = 0xff
	}
	_, err := bulletproofs.DeserializeCircuit(huge)
	require.Error(t, err)

	// first W_L row claims more entries than remain
	long := append([]byte(nil), raw...)
	for i := 80; i < 88; i++ {
		long[i] = 0xff
	}
	_, err = bulletproofs.DeserializeCircuit(long)
	require.Error(t, err)
}

func TestDeserializeRejectsUnknownFieldOrder(t *testing.T) {
	raw := multiplierCircuit(t).Serialize()
	raw[8] ^= 1
	_, err := bulletproofs.DeserializeCircuit(raw)
	require.Error(t, err)
}
