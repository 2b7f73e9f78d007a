package p192r1

import (
	"encoding/hex"

	"github.com/smallyu/go-weierstrass/internal/fp"
	"github.com/smallyu/go-weierstrass/pkg/ct"
)

// ScalarSize is the canonical encoding width of a scalar in bytes.
const ScalarSize = 24

var scalarOrder = fp.MustModulus(192, "ffffffffffffffffffffffff99def836146bc9b1b4d22831")

// Scalar is an integer modulo the secp192r1 group order.
type Scalar struct {
	v fp.Element
}

// NewScalar returns the scalar for a small integer.
func NewScalar(x uint64) Scalar { return Scalar{scalarOrder.FromUint64(x)} }

// ScalarFromBytes decodes a canonical 24-byte big-endian encoding,
// rejecting wrong lengths and values not below the group order.
func ScalarFromBytes(b []byte) (Scalar, bool) {
	v, ok := scalarOrder.SetBytes(b)
	return Scalar{v}, ok
}

// ScalarFromBytesUnchecked decodes 24 big-endian bytes, reducing
// out-of-range values modulo the group order.
func ScalarFromBytesUnchecked(b []byte) (Scalar, bool) {
	v, ok := scalarOrder.SetBytesUnchecked(b)
	return Scalar{v}, ok
}

// Bytes returns the canonical big-endian encoding.
func (k Scalar) Bytes() []byte { return scalarOrder.Bytes(k.v) }

// IsZero reports whether k is zero.
func (k Scalar) IsZero() bool { return !scalarOrder.Nonzero(k.v).Bool() }

// CtEq compares two scalars in constant time.
func (k Scalar) CtEq(o Scalar) ct.Choice { return scalarOrder.Eq(k.v, o.v) }

// Add returns k + o mod the group order.
func (k Scalar) Add(o Scalar) Scalar { return Scalar{scalarOrder.Add(k.v, o.v)} }

// Sub returns k - o mod the group order.
func (k Scalar) Sub(o Scalar) Scalar { return Scalar{scalarOrder.Sub(k.v, o.v)} }

// Mul returns k·o mod the group order.
func (k Scalar) Mul(o Scalar) Scalar { return Scalar{scalarOrder.Mul(k.v, o.v)} }

// Neg returns -k mod the group order.
func (k Scalar) Neg() Scalar { return Scalar{scalarOrder.Neg(k.v)} }

// Square returns k².
func (k Scalar) Square() Scalar { return Scalar{scalarOrder.Square(k.v)} }

// Inverse returns k⁻¹ mod the group order by backend exponentiation.
// Inverting zero panics.
func (k Scalar) Inverse() Scalar { return Scalar{scalarOrder.Invert(k.v)} }

// String returns the canonical encoding in hex.
func (k Scalar) String() string { return hex.EncodeToString(k.Bytes()) }
