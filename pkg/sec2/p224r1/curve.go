package p224r1

import (
	"encoding/hex"

	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Curve is the secp224r1 descriptor handle. It is an empty struct
// satisfying the generic curve interface; all state lives in package
// constants.
type Curve struct{}

var _ weierstrass.Curve[FieldElement] = Curve{}

var (
	feZero = FieldElement{}
	feOne  = NewFieldElement(1)

	curveA = mustFieldElement("fffffffffffffffffffffffffffffffefffffffffffffffffffffffe")
	curveB = mustFieldElement("b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4")
	feB3   = mustFieldElement("1c0f1f8f240e1b03dfc39702f0ce1229873f8a2e7521abc96a01ff1a")

	genX = mustFieldElement("b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21")
	genY = mustFieldElement("bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34")

	orderBytes = mustHex("ffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d")
)

func mustHex(h string) []byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic("p224r1: bad constant hex: " + err.Error())
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
