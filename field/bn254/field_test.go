package bn254

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmeticMatchesBigInt(t *testing.T) {
	engine := &Field{}
	a := big.NewInt(1234567)
	b := new(big.Int).Sub(ScalarField, big.NewInt(89)) // -89 mod p

	ea := engine.FromInterface(a)
	eb := engine.FromInterface(b)

	sum := new(big.Int).Add(a, b)
	sum.Mod(sum, ScalarField)
	require.Zero(t, sum.Cmp(engine.ToBigInt(engine.Add(ea, eb))))

	prod := new(big.Int).Mul(a, b)
	prod.Mod(prod, ScalarField)
	require.Zero(t, prod.Cmp(engine.ToBigInt(engine.Mul(ea, eb))))

	diff := new(big.Int).Sub(a, b)
	diff.Mod(diff, ScalarField)
	require.Zero(t, diff.Cmp(engine.ToBigInt(engine.Sub(ea, eb))))

	neg := new(big.Int).Neg(a)
	neg.Mod(neg, ScalarField)
	require.Zero(t, neg.Cmp(engine.ToBigInt(engine.Neg(ea))))
}

func TestInverse(t *testing.T) {
	engine := &Field{}
	a := engine.FromInterface(987654321)
	inv, ok := engine.Inverse(a)
	require.True(t, ok)
	require.True(t, engine.IsOne(engine.Mul(a, inv)))

	var zero [6]uint64
	_, ok = engine.Inverse(zero)
	require.False(t, ok)
}

func TestFromInterfaceKinds(t *testing.T) {
	engine := &Field{}
	require.True(t, engine.IsOne(engine.FromInterface(1)))
	require.True(t, engine.IsOne(engine.FromInterface("1")))
	require.True(t, engine.IsOne(engine.FromInterface(big.NewInt(1))))

	v, ok := engine.Uint64(engine.FromInterface(uint64(77)))
	require.True(t, ok)
	require.Equal(t, uint64(77), v)
}

func TestFieldOrder(t *testing.T) {
	engine := &Field{}
	require.Zero(t, engine.Field().Cmp(ScalarField))
	require.Equal(t, ScalarField.BitLen(), engine.FieldBitLen())
}
