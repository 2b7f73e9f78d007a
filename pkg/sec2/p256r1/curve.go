package p256r1

import (
	"encoding/hex"

	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Curve is the secp256r1 descriptor handle. It is an empty struct
// satisfying the generic curve interface; all state lives in package
// constants.
type Curve struct{}

var _ weierstrass.Curve[FieldElement] = Curve{}

var (
	feZero = FieldElement{}
	feOne  = NewFieldElement(1)

	curveA = mustFieldElement("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc")
	curveB = mustFieldElement("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b")
	feB3   = mustFieldElement("1052a18afeafbbb61bc3380063c994352f57141164fb12e2b36ab4ba777720e2")

	genX = mustFieldElement("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	genY = mustFieldElement("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")

	orderBytes = mustHex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")
)

func mustHex(h string) []byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic("p256r1: bad constant hex: " + err.Error())
	}
	return b
}

// Order returns the group order as canonical big-endian bytes.
func Order() []byte { return append([]byte(nil), orderBytes...) }

// A returns the a coefficient.
func (Curve) A() FieldElement { return curveA }

// B returns the b coefficient.
func (Curve) B() FieldElement { return curveB }

// B3 returns 3·b.
func (Curve) B3() FieldElement { return feB3 }

// Zero returns the field's additive identity.
func (Curve) Zero() FieldElement { return feZero }

// One returns the field's multiplicative identity.
func (Curve) One() FieldElement { return feOne }
