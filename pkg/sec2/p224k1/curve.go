package p224k1

import (
	"encoding/hex"

	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Curve is the secp224k1 descriptor handle. It is an empty struct
// satisfying the generic curve interface; all state lives in package
// constants.
type Curve struct{}

var _ weierstrass.CurveA0[FieldElement] = Curve{}

var (
	feZero = FieldElement{}
	feOne  = NewFieldElement(1)
	feB    = NewFieldElement(5)
	feB3   = NewFieldElement(15)

	genX = mustFieldElement("a1455b334df099df30fc28a169a467e9e47075a90f7e650eb6b7a45c")
	genY = mustFieldElement("7e089fed7fba344282cafbd6f7e319f7c0b0bd59e2ca4bdb556d61a5")

	orderBytes = mustHex("010000000000000000000000000001dce8d2ec6184caf0a971769fb1f7")
)

func mustHex(h string) []byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic("p224k1: bad constant hex: " + err.Error())
	}
	return b
}

// Order returns the group order as canonical big-endian bytes.
func Order() []byte { return append([]byte(nil), orderBytes...) }

// A returns the a coefficient, which is zero.
func (Curve) A() FieldElement { return feZero }

// B returns the b coefficient.
func (Curve) B() FieldElement { return feB }

// B3 returns 3·b.
func (Curve) B3() FieldElement { return feB3 }

// Zero returns the field's additive identity.
func (Curve) Zero() FieldElement { return feZero }

// One returns the field's multiplicative identity.
func (Curve) One() FieldElement { return feOne }

// A0 is the marker unlocking the a = 0 addition and doubling formulas.
func (Curve) A0() {}
