package p192k1

import (
	"encoding/hex"

	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Curve is the secp192k1 descriptor handle. It is an empty struct
// satisfying the generic curve interface; all state lives in package
// constants.
type Curve struct{}

var _ weierstrass.CurveA0[FieldElement] = Curve{}

var (
	feZero = FieldElement{}
	feOne  = NewFieldElement(1)
	feB    = NewFieldElement(3)
	feB3   = NewFieldElement(9)

	genX = mustFieldElement("db4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d")
	genY = mustFieldElement("9b2f2f6d9c5628a7844163d015be86344082aa88d95e2f9d")

	orderBytes = mustHex("fffffffffffffffffffffffe26f2fc170f69466a74defd8d")
)

func mustHex(h string) []byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic("p192k1: bad constant hex: " + err.Error())
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
