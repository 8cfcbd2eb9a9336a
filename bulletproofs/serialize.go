package bulletproofs

import (
	"fmt"

	"github.com/Zklib/bp-compiler/field"
	"github.com/Zklib/bp-compiler/utils"
	"github.com/consensys/gnark/constraint"
)

const circuitMagic uint64 = 0x4250434952430001

// Serialize converts the circuit into a byte array. Compilation is
// deterministic and rows are kept in canonical sorted form, so two
// compilations of the same constraint system serialize byte-identically.
func (c *Circuit) Serialize() []byte {
	engine := c.Engine()
	o := utils.OutputBuf{}
	o.AppendUint64(circuitMagic)
	o.AppendBigInt(c.FieldOrder)
	o.AppendUint64(uint64(c.NbGates))
	o.AppendUint64(uint64(c.NbWires))
	o.AppendUint64(uint64(c.NbConstraints))
	o.AppendUint64(uint64(c.NbWitnessWires))
	o.AppendUint64(uint64(c.NbPublic))
	appendRows := func(rows []SparseRow) {
		for _, row := range rows {
			o.AppendUint64(uint64(len(row)))
			for _, e := range row {
				o.AppendUint64(uint64(e.Col))
				o.AppendBigInt(engine.ToBigInt(e.Coeff))
			}
		}
	}
	appendRows(c.WL)
	appendRows(c.WR)
	appendRows(c.WO)
	appendRows(c.WV)
	for _, x := range c.C {
		o.AppendBigInt(engine.ToBigInt(x))
	}
	return o.Bytes()
}

// SerializeAssignment flattens a gate assignment for the external prover:
// gate count, then a_L, a_R, a_O as 32-byte little-endian scalars.
func (c *Circuit) SerializeAssignment(a *Assignment) []byte {
	engine := c.Engine()
	o := utils.OutputBuf{}
	o.AppendUint64(uint64(c.NbGates))
	for _, x := range a.AL {
		o.AppendBigInt(engine.ToBigInt(x))
	}
	for _, x := range a.AR {
		o.AppendBigInt(engine.ToBigInt(x))
	}
	for _, x := range a.AO {
		o.AppendBigInt(engine.ToBigInt(x))
	}
	return o.Bytes()
}

// DeserializeCircuit rebuilds a circuit from Serialize output and validates
// its structure. The input is untrusted: every length and count is checked
// against the remaining byte budget before it is read or allocated, so a
// truncated or corrupted buffer yields an error, never a panic.
func DeserializeCircuit(buf []byte) (*Circuit, error) {
	errInvalid := fmt.Errorf("invalid circuit serialization")
	in := utils.NewInputBuf(buf)
	// magic + field order + five counts
	if in.Remaining() < 8+32+5*8 || in.ReadUint64() != circuitMagic {
		return nil, errInvalid
	}
	c := &Circuit{FieldOrder: in.ReadBigInt()}
	if !field.IsKnownOrder(c.FieldOrder) {
		return nil, errInvalid
	}
	engine := field.GetFieldFromOrder(c.FieldOrder)
	c.NbGates = int(in.ReadUint64())
	c.NbWires = int(in.ReadUint64())
	c.NbConstraints = int(in.ReadUint64())
	c.NbWitnessWires = int(in.ReadUint64())
	c.NbPublic = int(in.ReadUint64())
	// every gate costs at least four row lengths and one c entry, so a
	// gate count past this bound cannot be honest
	if c.NbGates <= 0 || c.NbGates > in.Remaining()/(4*8+32) {
		return nil, errInvalid
	}
	readRows := func() ([]SparseRow, error) {
		rows := make([]SparseRow, c.NbGates)
		for i := range rows {
			if in.Remaining() < 8 {
				return nil, errInvalid
			}
			n := int(in.ReadUint64())
			if n == 0 {
				continue
			}
			// an entry is a column plus a coefficient, 40 bytes
			if n < 0 || n > in.Remaining()/(8+32) {
				return nil, errInvalid
			}
			row := make(SparseRow, n)
			for j := range row {
				row[j].Col = int(in.ReadUint64())
				row[j].Coeff = engine.FromInterface(in.ReadBigInt())
			}
			rows[i] = row
		}
		return rows, nil
	}
	var err error
	if c.WL, err = readRows(); err != nil {
		return nil, err
	}
	if c.WR, err = readRows(); err != nil {
		return nil, err
	}
	if c.WO, err = readRows(); err != nil {
		return nil, err
	}
	if c.WV, err = readRows(); err != nil {
		return nil, err
	}
	if in.Remaining() != 32*c.NbGates {
		return nil, errInvalid
	}
	c.C = make([]constraint.Element, c.NbGates)
	for i := range c.C {
		c.C[i] = engine.FromInterface(in.ReadBigInt())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
