// Package driver binds a compiled circuit, a witness and a proving backend
// together. The backend — Pedersen commitments, Fiat-Shamir transcript,
// inner-product argument — is an external black box behind the Backend
// interface; this package only does the marshaling and precondition checks
// around it.
package driver

import (
	"fmt"
	"math/big"

	"github.com/Zklib/bp-compiler/bulletproofs"
)

// Proof is the opaque artifact of a proving call: the transcript bytes plus
// the public-input commitments it binds to. Immutable once produced.
type Proof struct {
	Commitments [][]byte
	Data        []byte
}

// Backend is the external proving-protocol library. Implementations are
// assumed sound and complete; they are never re-verified here.
type Backend interface {
	ProveCircuit(circuit *bulletproofs.Circuit, assignment *bulletproofs.Assignment, publicInputs []*big.Int) (*Proof, error)
	VerifyCircuit(circuit *bulletproofs.Circuit, publicInputs []*big.Int, proof *Proof) (bool, error)
}

// PublicInputMismatchError reports a public-input vector whose length does
// not match the circuit's public-input count.
type PublicInputMismatchError struct {
	Expected int
	Got      int
}

func (e *PublicInputMismatchError) Error() string {
	return fmt.Sprintf("got %d public inputs, circuit expects %d", e.Got, e.Expected)
}

// Prove maps the witness onto the circuit's gates and hands the result to
// the backend. The witness is single-use: the derived gate assignment is
// wiped on every exit path, and the witness itself is never retained.
func Prove(backend Backend, circuit *bulletproofs.Circuit, witness bulletproofs.Witness, publicInputs []*big.Int) (*Proof, error) {
	if len(publicInputs) != circuit.NbPublic {
		return nil, &PublicInputMismatchError{Expected: circuit.NbPublic, Got: len(publicInputs)}
	}
	assignment, err := bulletproofs.Assign(circuit, witness)
	if err != nil {
		return nil, err
	}
	defer assignment.Wipe()
	return backend.ProveCircuit(circuit, assignment, publicInputs)
}

// Verify checks a proof against the circuit and public inputs. A malformed
// or non-matching proof yields (false, nil), never an error; the only error
// is a structurally wrong public-input vector. Since compilation is
// deterministic, the circuit here is bitwise the one the prover used
// whenever both sides compiled the same public constraint system.
func Verify(backend Backend, circuit *bulletproofs.Circuit, publicInputs []*big.Int, proof *Proof) (bool, error) {
	if len(publicInputs) != circuit.NbPublic {
		return false, &PublicInputMismatchError{Expected: circuit.NbPublic, Got: len(publicInputs)}
	}
	if proof == nil {
		return false, nil
	}
	ok, err := backend.VerifyCircuit(circuit, publicInputs, proof)
	if err != nil {
		// a proof the backend cannot even parse is just an
		// unconvincing proof
		return false, nil
	}
	return ok, nil
}
