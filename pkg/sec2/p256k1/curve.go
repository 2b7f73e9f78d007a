package p256k1

import (
	"encoding/hex"

	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Curve is the secp256k1 descriptor handle. It is an empty struct
// satisfying the generic curve interface; all state lives in package
// constants.
type Curve struct{}

var _ weierstrass.CurveA0[FieldElement] = Curve{}

var (
	feZero = FieldElement{}
	feOne  = NewFieldElement(1)
	feB    = NewFieldElement(7)
	feB3   = NewFieldElement(21)

	genX = mustFieldElement("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	genY = mustFieldElement("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	orderBytes = mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
)

func mustHex(h string) []byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic("p256k1: bad constant hex: " + err.Error())
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
