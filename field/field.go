package field

import (
	"fmt"
	"math/big"

	"github.com/Zklib/bp-compiler/field/bn254"
	"github.com/consensys/gnark/constraint"
)

// Field is the scalar-field engine used throughout the compiler. It extends
// gnark's constraint.Field with the field order, so that a compiled circuit
// can be re-bound to its engine from public data alone.
type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

// IsKnownOrder reports whether GetFieldFromOrder can serve this order.
// Deserializers call it before building an engine, since their field order
// comes from untrusted bytes.
func IsKnownOrder(x *big.Int) bool {
	return x.Cmp(bn254.ScalarField) == 0
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
