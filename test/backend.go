package test

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/Zklib/bp-compiler/bulletproofs"
	"github.com/Zklib/bp-compiler/driver"
	"github.com/Zklib/bp-compiler/utils"
)

// CleartextBackend is an insecure driver.Backend for tests. The "proof" is
// the serialized gate assignment bound to a digest of the circuit, and a
// "commitment" is a salted hash of a public input — binding, not hiding.
// It accepts exactly the (assignment, public inputs) pairs the compiled
// circuit accepts, which is all the drivers' tests need.
type CleartextBackend struct {
	// ProveCalls counts backend invocations, so tests can check that a
	// failed assignment never reaches the prover.
	ProveCalls  int
	VerifyCalls int
}

func commitPublic(slot int, v *big.Int) []byte {
	h := sha256.New()
	h.Write([]byte("cleartext-commitment"))
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], uint64(slot))
	h.Write(idx[:])
	zbuf := make([]byte, 32)
	v.FillBytes(zbuf)
	h.Write(zbuf)
	return h.Sum(nil)
}

func (b *CleartextBackend) ProveCircuit(circuit *bulletproofs.Circuit, assignment *bulletproofs.Assignment, publicInputs []*big.Int) (*driver.Proof, error) {
	b.ProveCalls++
	digest := sha256.Sum256(circuit.Serialize())
	o := utils.OutputBuf{}
	o.Append(digest[:])
	o.Append(circuit.SerializeAssignment(assignment))
	commitments := make([][]byte, len(publicInputs))
	for j, v := range publicInputs {
		commitments[j] = commitPublic(j, v)
	}
	return &driver.Proof{Commitments: commitments, Data: o.Bytes()}, nil
}

func (b *CleartextBackend) VerifyCircuit(circuit *bulletproofs.Circuit, publicInputs []*big.Int, proof *driver.Proof) (bool, error) {
	b.VerifyCalls++
	digest := sha256.Sum256(circuit.Serialize())
	in := utils.NewInputBuf(proof.Data)
	if in.Remaining() != 32+8+3*32*circuit.NbGates {
		return false, nil
	}
	if !bytes.Equal(in.ReadBytes(32), digest[:]) {
		return false, nil
	}
	if in.ReadUint64() != uint64(circuit.NbGates) {
		return false, nil
	}
	if len(proof.Commitments) != len(publicInputs) {
		return false, nil
	}
	for j, v := range publicInputs {
		if !bytes.Equal(proof.Commitments[j], commitPublic(j, v)) {
			return false, nil
		}
	}
	aL := make([]*big.Int, circuit.NbGates)
	aR := make([]*big.Int, circuit.NbGates)
	aO := make([]*big.Int, circuit.NbGates)
	for i := range aL {
		aL[i] = in.ReadBigInt()
	}
	for i := range aR {
		aR[i] = in.ReadBigInt()
	}
	for i := range aO {
		aO[i] = in.ReadBigInt()
	}
	tmp := new(big.Int)
	for i := 0; i < circuit.NbGates; i++ {
		tmp.Mul(aL[i], aR[i])
		tmp.Mod(tmp, circuit.FieldOrder)
		if tmp.Cmp(aO[i]) != 0 {
			return false, nil
		}
	}
	return true, nil
}
