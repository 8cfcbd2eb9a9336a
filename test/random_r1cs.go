package test

import (
	"math/big"
	"math/rand"

	"github.com/Zklib/bp-compiler/bulletproofs"
	"github.com/Zklib/bp-compiler/field/bn254"
	"github.com/Zklib/bp-compiler/r1cs"
)

type randomSystemConfig struct {
	seed          int
	nbPublic      randRange
	nbConstraints randRange
	termsPerLC    randRange
	// nbFreeWires are wires no constraint references; flipping them must
	// not change the verification outcome
	nbFreeWires randRange
}

type randRange struct {
	l int
	r int
}

func (rr *randRange) sample(r *rand.Rand) int {
	return r.Intn(rr.r-rr.l+1) + rr.l
}

// randomConstraintSystem builds a satisfiable constraint system together
// with a satisfying witness. Wires are: the constant wire, public inputs
// with random values, one product wire per constraint, then free wires.
func randomConstraintSystem(conf *randomSystemConfig) (*r1cs.ConstraintSystem, bulletproofs.Witness) {
	rnd := rand.New(rand.NewSource(int64(conf.seed)))
	fieldOrder := bn254.ScalarField

	nbPublic := conf.nbPublic.sample(rnd)
	nbConstraints := conf.nbConstraints.sample(rnd)
	nbFree := conf.nbFreeWires.sample(rnd)

	values := []*big.Int{big.NewInt(1)}
	for i := 0; i < nbPublic; i++ {
		values = append(values, randValue(rnd, fieldOrder))
	}

	engine := &bn254.Field{}
	var constraints []r1cs.Constraint
	for i := 0; i < nbConstraints; i++ {
		a, va := randomCombination(rnd, conf, values, fieldOrder)
		b, vb := randomCombination(rnd, conf, values, fieldOrder)
		prod := new(big.Int).Mul(va, vb)
		prod.Mod(prod, fieldOrder)
		values = append(values, prod)
		c := r1cs.LinearCombination{{WireID: len(values) - 1, Coeff: engine.One()}}
		constraints = append(constraints, r1cs.Constraint{A: a, B: b, C: c})
	}
	for i := 0; i < nbFree; i++ {
		values = append(values, randValue(rnd, fieldOrder))
	}

	cs := r1cs.NewConstraintSystem(fieldOrder, len(values), nbPublic)
	cs.Constraints = constraints
	return cs, bulletproofs.Witness(values)
}

func randomCombination(rnd *rand.Rand, conf *randomSystemConfig, values []*big.Int, fieldOrder *big.Int) (r1cs.LinearCombination, *big.Int) {
	engine := &bn254.Field{}
	n := conf.termsPerLC.sample(rnd)
	lc := make(r1cs.LinearCombination, 0, n)
	val := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		wire := rnd.Intn(len(values))
		coeff := randValue(rnd, fieldOrder)
		lc = append(lc, r1cs.Term{WireID: wire, Coeff: engine.FromInterface(coeff)})
		tmp.Mul(coeff, values[wire])
		val.Add(val, tmp)
	}
	val.Mod(val, fieldOrder)
	return lc, val
}

func randValue(rnd *rand.Rand, fieldOrder *big.Int) *big.Int {
	buf := make([]byte, 40)
	rnd.Read(buf)
	v := new(big.Int).SetBytes(buf)
	return v.Mod(v, fieldOrder)
}
