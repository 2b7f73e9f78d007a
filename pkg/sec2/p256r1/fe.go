// Package p256r1 implements NIST P-256 (SEC2 secp256r1).
//
// Field inversion and square root use fixed addition chains exploiting the
// sparse binary shape of the prime.
package p256r1

import (
	"encoding/hex"

	"github.com/smallyu/go-weierstrass/internal/fp"
	"github.com/smallyu/go-weierstrass/pkg/ct"
	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// FieldElementSize is the canonical encoding width of a base field element
// in bytes.
const FieldElementSize = 32

var fieldOrder = fp.MustModulus(256, "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")

// FieldElement is an element of the secp256r1 base field GF(2²⁵⁶ - 2²²⁴ + 2¹⁹² + 2⁹⁶ - 1),
// kept in the Montgomery domain.
type FieldElement struct {
	v fp.Element
}

var _ weierstrass.FieldSqrt[FieldElement] = FieldElement{}

// NewFieldElement returns the field element for a small integer.
func NewFieldElement(x uint64) FieldElement {
	return FieldElement{fieldOrder.FromUint64(x)}
}

// FieldElementFromBytes decodes a canonical 32-byte big-endian encoding.
// It reports ok=false for a wrong length or a value not below the field
// prime.
func FieldElementFromBytes(b []byte) (FieldElement, bool) {
	v, ok := fieldOrder.SetBytes(b)
	return FieldElement{v}, ok
}

// FieldElementFromBytesUnchecked decodes 32 big-endian bytes, reducing
// out-of-range values modulo the prime instead of rejecting them.
func FieldElementFromBytesUnchecked(b []byte) (FieldElement, bool) {
	v, ok := fieldOrder.SetBytesUnchecked(b)
	return FieldElement{v}, ok
}

func mustFieldElement(h string) FieldElement {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic("p256r1: bad field element hex: " + err.Error())
	}
	e, ok := FieldElementFromBytes(b)
	if !ok {
		panic("p256r1: field element constant out of range")
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

// sqrN returns e^(2^n) by n successive squarings.
func (e FieldElement) sqrN(n int) FieldElement {
	v := e.v
	for i := 0; i < n; i++ {
		v = fieldOrder.Square(v)
	}
	return FieldElement{v}
}

// Inverse returns e⁻¹ via a fixed addition chain for p-2. Inverting zero
// panics.
func (e FieldElement) Inverse() FieldElement {
	if e.IsZero() {
		panic("p256r1: inverse of zero field element")
	}
	x2 := e.sqrN(1).Mul(e)
	x3 := x2.sqrN(1).Mul(e)
	x6 := x3.sqrN(3).Mul(x3)
	x12 := x6.sqrN(6).Mul(x6)
	x15 := x12.sqrN(3).Mul(x3)
	x30 := x15.sqrN(15).Mul(x15)
	x32 := x30.sqrN(2).Mul(x2)
	t := x32.sqrN(32).Mul(e)
	t = t.sqrN(128).Mul(x32)
	t = t.sqrN(32).Mul(x32)
	t = t.sqrN(30).Mul(x30)
	t = t.sqrN(2)
	return t.Mul(e)
}

// Sqrt returns a square root of e when one exists, via a fixed addition
// chain for (p+1)/4. The candidate is validated by squaring, so the option
// is present exactly for quadratic residues.
func (e FieldElement) Sqrt() ct.Option[FieldElement] {
	x2 := e.sqrN(1).Mul(e)
	x3 := x2.sqrN(1).Mul(e)
	x6 := x3.sqrN(3).Mul(x3)
	x12 := x6.sqrN(6).Mul(x6)
	x15 := x12.sqrN(3).Mul(x3)
	x30 := x15.sqrN(15).Mul(x15)
	x32 := x30.sqrN(2).Mul(x2)
	t := x32.sqrN(32).Mul(e)
	t = t.sqrN(96).Mul(e)
	r := t.sqrN(94)
	return ct.NewOption(r.Square().CtEq(e), r)
}

// String returns the canonical encoding in hex.
func (e FieldElement) String() string { return hex.EncodeToString(e.Bytes()) }
