package test

import (
	"math/big"
	"testing"

	"github.com/Zklib/bp-compiler/bulletproofs"
	"github.com/Zklib/bp-compiler/driver"
)

type Assert struct {
	t       *testing.T
	Backend *CleartextBackend
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Backend: &CleartextBackend{}}
}

// ProveSucceeded runs the full assign → prove → verify pipeline and fails
// the test unless the proof verifies.
func (a *Assert) ProveSucceeded(circuit *bulletproofs.Circuit, witness bulletproofs.Witness, publicInputs []*big.Int) *driver.Proof {
	a.t.Helper()
	proof, err := driver.Prove(a.Backend, circuit, witness, publicInputs)
	if err != nil {
		a.t.Fatalf("prove: %v", err)
	}
	ok, err := driver.Verify(a.Backend, circuit, publicInputs, proof)
	if err != nil {
		a.t.Fatalf("verify: %v", err)
	}
	if !ok {
		a.t.Fatal("proof should verify")
	}
	return proof
}

// ProveFailed expects the proving call to fail before reaching the backend
// and returns the error for inspection.
func (a *Assert) ProveFailed(circuit *bulletproofs.Circuit, witness bulletproofs.Witness, publicInputs []*big.Int) error {
	a.t.Helper()
	before := a.Backend.ProveCalls
	_, err := driver.Prove(a.Backend, circuit, witness, publicInputs)
	if err == nil {
		a.t.Fatal("prove should fail")
	}
	if a.Backend.ProveCalls != before {
		a.t.Fatal("backend was invoked for a failing witness")
	}
	return err
}
