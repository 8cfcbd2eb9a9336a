// Package integration drives an external bulletproofs prover executable.
// The executable owns the group arithmetic, commitments, transcript and
// inner-product argument; this side only serializes the compiled circuit,
// gate assignment and public inputs into its file formats.
//
// Expected interface of the binary:
//
//	bulletproofs-exec prove  <circuit> <assignment> <publics> <out:proof>
//	bulletproofs-exec verify <circuit> <publics> <proof>
//
// verify signals rejection with a non-zero exit status.
package integration

import (
	"math/big"
	"os"
	"os/exec"

	"github.com/Zklib/bp-compiler/bulletproofs"
	"github.com/Zklib/bp-compiler/driver"
	"github.com/Zklib/bp-compiler/utils"
)

// ExecBackend implements driver.Backend on top of the external executable.
type ExecBackend struct {
	binPath string
}

func NewExecBackend(binPath string) (*ExecBackend, error) {
	if _, err := os.Stat(binPath); err != nil {
		return nil, err
	}
	return &ExecBackend{binPath: binPath}, nil
}

func (e *ExecBackend) ProveCircuit(circuit *bulletproofs.Circuit, assignment *bulletproofs.Assignment, publicInputs []*big.Int) (*driver.Proof, error) {
	circuitFile, err := writeTemp("circuit", circuit.Serialize())
	if err != nil {
		return nil, err
	}
	defer os.Remove(circuitFile)
	assignmentFile, err := writeTemp("assignment", circuit.SerializeAssignment(assignment))
	if err != nil {
		return nil, err
	}
	defer os.Remove(assignmentFile)
	publicsFile, err := writeTemp("publics", marshalPublics(publicInputs))
	if err != nil {
		return nil, err
	}
	defer os.Remove(publicsFile)

	outFile, err := os.CreateTemp("", "proof")
	if err != nil {
		return nil, err
	}
	outFile.Close()
	defer os.Remove(outFile.Name())

	cmd := exec.Command(e.binPath, "prove", circuitFile, assignmentFile, publicsFile, outFile.Name())
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(outFile.Name())
	if err != nil {
		return nil, err
	}
	return driver.DeserializeProof(raw)
}

func (e *ExecBackend) VerifyCircuit(circuit *bulletproofs.Circuit, publicInputs []*big.Int, proof *driver.Proof) (bool, error) {
	circuitFile, err := writeTemp("circuit", circuit.Serialize())
	if err != nil {
		return false, err
	}
	defer os.Remove(circuitFile)
	publicsFile, err := writeTemp("publics", marshalPublics(publicInputs))
	if err != nil {
		return false, err
	}
	defer os.Remove(publicsFile)
	proofFile, err := writeTemp("proof", proof.Serialize())
	if err != nil {
		return false, err
	}
	defer os.Remove(proofFile)

	cmd := exec.Command(e.binPath, "verify", circuitFile, publicsFile, proofFile)
	if err := cmd.Run(); err != nil {
		if _, isExit := err.(*exec.ExitError); isExit {
			// rejection, not a transport failure
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func writeTemp(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func marshalPublics(publicInputs []*big.Int) []byte {
	o := utils.OutputBuf{}
	o.AppendUint64(uint64(len(publicInputs)))
	for _, v := range publicInputs {
		o.AppendBigInt(v)
	}
	return o.Bytes()
}
