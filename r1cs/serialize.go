package r1cs

import (
	"fmt"

	"github.com/Zklib/bp-compiler/field"
	"github.com/Zklib/bp-compiler/utils"
)

const serializeMagic uint64 = 0x5231435342500001

// Serialize converts a ConstraintSystem into a byte array for storage or
// transmission to the witness calculator.
func (cs *ConstraintSystem) Serialize() []byte {
	engine := field.GetFieldFromOrder(cs.FieldOrder)
	o := utils.OutputBuf{}
	o.AppendUint64(serializeMagic)
	o.AppendBigInt(cs.FieldOrder)
	o.AppendUint64(uint64(cs.NbWires))
	o.AppendUint64(uint64(cs.NbPublic))
	o.AppendUint64(uint64(len(cs.Constraints)))
	appendLC := func(lc LinearCombination) {
		o.AppendUint64(uint64(len(lc)))
		for _, t := range lc {
			o.AppendUint64(uint64(t.WireID))
			o.AppendBigInt(engine.ToBigInt(t.Coeff))
		}
	}
	for _, c := range cs.Constraints {
		appendLC(c.A)
		appendLC(c.B)
		appendLC(c.C)
	}
	return o.Bytes()
}

// Deserialize rebuilds a ConstraintSystem from Serialize output. The input
// is untrusted: every length is checked against the remaining byte budget
// before it is read or allocated, so a truncated or corrupted buffer yields
// an error, never a panic.
func Deserialize(buf []byte) (*ConstraintSystem, error) {
	errInvalid := fmt.Errorf("invalid constraint system serialization")
	in := utils.NewInputBuf(buf)
	// magic + field order + three counts
	if in.Remaining() < 8+32+3*8 || in.ReadUint64() != serializeMagic {
		return nil, errInvalid
	}
	fieldOrder := in.ReadBigInt()
	if !field.IsKnownOrder(fieldOrder) {
		return nil, errInvalid
	}
	engine := field.GetFieldFromOrder(fieldOrder)
	cs := NewConstraintSystem(fieldOrder, int(in.ReadUint64()), int(in.ReadUint64()))
	nbConstraints := int(in.ReadUint64())
	// a constraint carries at least the three combination lengths
	if nbConstraints < 0 || nbConstraints > in.Remaining()/(3*8) {
		return nil, errInvalid
	}
	readLC := func() (LinearCombination, error) {
		if in.Remaining() < 8 {
			return nil, errInvalid
		}
		n := int(in.ReadUint64())
		if n == 0 {
			return nil, nil
		}
		// a term is a wire id plus a coefficient, 40 bytes
		if n < 0 || n > in.Remaining()/(8+32) {
			return nil, errInvalid
		}
		lc := make(LinearCombination, n)
		for i := range lc {
			lc[i].WireID = int(in.ReadUint64())
			lc[i].Coeff = engine.FromInterface(in.ReadBigInt())
		}
		return lc, nil
	}
	for i := 0; i < nbConstraints; i++ {
		a, err := readLC()
		if err != nil {
			return nil, err
		}
		b, err := readLC()
		if err != nil {
			return nil, err
		}
		c, err := readLC()
		if err != nil {
			return nil, err
		}
		cs.AddConstraint(a, b, c)
	}
	if in.Remaining() != 0 {
		return nil, fmt.Errorf("trailing bytes in constraint system serialization")
	}
	return cs, nil
}
