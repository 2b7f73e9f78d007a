package p192r1

import (
	"encoding/hex"

	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// Curve is the secp192r1 descriptor handle. It is an empty struct
// satisfying the generic curve interface; all state lives in package
// constants.
type Curve struct{}

var _ weierstrass.Curve[FieldElement] = Curve{}

var (
	feZero = FieldElement{}
	feOne  = NewFieldElement(1)

	curveA = mustFieldElement("fffffffffffffffffffffffffffffffefffffffffffffffc")
	curveB = mustFieldElement("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1")
	feB3   = mustFieldElement("2c630f4db0d582b52ef7bd02566c90defc2a9cc643d42d14")

	genX = mustFieldElement("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012")
	genY = mustFieldElement("07192b95ffc8da78631011ed6b24cdd573f977a11e794811")

	orderBytes = mustHex("ffffffffffffffffffffffff99def836146bc9b1b4d22831")
)

func mustHex(h string) []byte {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic("p192r1: bad constant hex: " + err.Error())
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
