package driver

import (
	"fmt"

	"github.com/Zklib/bp-compiler/utils"
)

const proofMagic uint64 = 0x425050524f4f4601

// Serialize flattens the proof for storage or transport to the external
// verifier executable.
func (p *Proof) Serialize() []byte {
	o := utils.OutputBuf{}
	o.AppendUint64(proofMagic)
	o.AppendUint64(uint64(len(p.Commitments)))
	for _, c := range p.Commitments {
		o.AppendUint64(uint64(len(c)))
		o.Append(c)
	}
	o.AppendUint64(uint64(len(p.Data)))
	o.Append(p.Data)
	return o.Bytes()
}

// DeserializeProof rebuilds a proof from Serialize output. Proof bytes come
// from the outside, so every length is checked against the remaining byte
// budget before it is read; a truncated buffer yields an error, never a
// panic.
func DeserializeProof(buf []byte) (*Proof, error) {
	errInvalid := fmt.Errorf("invalid proof serialization")
	in := utils.NewInputBuf(buf)
	// magic + commitment count
	if in.Remaining() < 2*8 || in.ReadUint64() != proofMagic {
		return nil, errInvalid
	}
	p := &Proof{}
	nbCommitments := int(in.ReadUint64())
	// each commitment carries at least its length field
	if nbCommitments < 0 || nbCommitments > in.Remaining()/8 {
		return nil, errInvalid
	}
	for i := 0; i < nbCommitments; i++ {
		if in.Remaining() < 8 {
			return nil, errInvalid
		}
		n := int(in.ReadUint64())
		if n < 0 || n > in.Remaining() {
			return nil, errInvalid
		}
		p.Commitments = append(p.Commitments, in.ReadBytes(n))
	}
	if in.Remaining() < 8 {
		return nil, errInvalid
	}
	n := int(in.ReadUint64())
	if n != in.Remaining() {
		return nil, errInvalid
	}
	p.Data = in.ReadBytes(n)
	return p, nil
}
