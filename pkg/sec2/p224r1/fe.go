// Package p224r1 implements NIST P-224 (SEC2 secp224r1).
//
// The field prime is 1 mod 4; square roots go through the backend's
// Tonelli-Shanks path rather than a single exponentiation.
package p224r1

import (
	"encoding/hex"

	"github.com/smallyu/go-weierstrass/internal/fp"
	"github.com/smallyu/go-weierstrass/pkg/ct"
	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// FieldElementSize is the canonical encoding width of a base field element
// in bytes.
const FieldElementSize = 28

var fieldOrder = fp.MustModulus(224, "ffffffffffffffffffffffffffffffff000000000000000000000001")

// FieldElement is an element of the secp224r1 base field GF(2²²⁴ - 2⁹⁶ + 1),
// kept in the Montgomery domain.
type FieldElement struct {
	v fp.Element
}

var _ weierstrass.FieldSqrt[FieldElement] = FieldElement{}

// NewFieldElement returns the field element for a small integer.
func NewFieldElement(x uint64) FieldElement {
	return FieldElement{fieldOrder.FromUint64(x)}
}

// FieldElementFromBytes decodes a canonical 28-byte big-endian encoding.
// It reports ok=false for a wrong length or a value not below the field
// prime.
func FieldElementFromBytes(b []byte) (FieldElement, bool) {
	v, ok := fieldOrder.SetBytes(b)
	return FieldElement{v}, ok
}

// FieldElementFromBytesUnchecked decodes 28 big-endian bytes, reducing
// out-of-range values modulo the prime instead of rejecting them.
func FieldElementFromBytesUnchecked(b []byte) (FieldElement, bool) {
	v, ok := fieldOrder.SetBytesUnchecked(b)
	return FieldElement{v}, ok
}

func mustFieldElement(h string) FieldElement {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic("p224r1: bad field element hex: " + err.Error())
	}
	e, ok := FieldElementFromBytes(b)
	if !ok {
		panic("p224r1: field element constant out of range")
	}
	return e
}

// Bytes returns the canonical big-endian encoding.
func (e FieldElement) Bytes() []byte { return fieldOrder.Bytes(e.v) }

// IsZero reports whether e is the additive identity.
func (e FieldElement) IsZero() bool { return !fieldOrder.Nonzero(e.v).Bool() }

// Sign returns the parity tag of the canonical representation.
func (e FieldElement) Sign() weierstrass.Sign {
	if fieldOrder.Parity(e.v) == 1 {
		return weierstrass.Negative
	}
	return weierstrass.Positive
}

// IsNegative reports whether the canonical representation is odd.
func (e FieldElement) IsNegative() bool { return e.Sign() == weierstrass.Negative }

// CtEq compares two field elements in constant time.
func (e FieldElement) CtEq(o FieldElement) ct.Choice { return fieldOrder.Eq(e.v, o.v) }

// Add returns e + o.
func (e FieldElement) Add(o FieldElement) FieldElement {
	return FieldElement{fieldOrder.Add(e.v, o.v)}
}

// Sub returns e - o.
func (e FieldElement) Sub(o FieldElement) FieldElement {
	return FieldElement{fieldOrder.Sub(e.v, o.v)}
}

// Mul returns e·o.
func (e FieldElement) Mul(o FieldElement) FieldElement {
	return FieldElement{fieldOrder.Mul(e.v, o.v)}
}

// Neg returns -e.
func (e FieldElement) Neg() FieldElement { return FieldElement{fieldOrder.Neg(e.v)} }

// Double returns 2e.
func (e FieldElement) Double() FieldElement { return FieldElement{fieldOrder.Double(e.v)} }

// Square returns e².
func (e FieldElement) Square() FieldElement { return FieldElement{fieldOrder.Square(e.v)} }

// Cube returns e³.
func (e FieldElement) Cube() FieldElement {
	return FieldElement{fieldOrder.Mul(fieldOrder.Square(e.v), e.v)}
}

// Pow raises e to a small public exponent.
func (e FieldElement) Pow(n uint64) FieldElement {
	return FieldElement{fieldOrder.PowUint64(e.v, n)}
}

// Inverse returns e⁻¹ by backend exponentiation to p-2. Inverting zero
// panics.
func (e FieldElement) Inverse() FieldElement {
	return FieldElement{fieldOrder.Invert(e.v)}
}

// Sqrt returns a square root of e when one exists. The candidate is
// validated by squaring, so the option is present exactly for quadratic
// residues.
func (e FieldElement) Sqrt() ct.Option[FieldElement] {
	r, ok := fieldOrder.Sqrt(e.v)
	return ct.NewOption(ok, FieldElement{r})
}

// String returns the canonical encoding in hex.
func (e FieldElement) String() string { return hex.EncodeToString(e.Bytes()) }
