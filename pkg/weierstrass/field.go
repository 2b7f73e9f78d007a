// Package weierstrass implements generic point arithmetic on short
// Weierstrass curves y² = x³ + Ax + B over prime fields.
//
// The field element type is a type parameter constrained by FieldElement, so
// the affine and projective group laws are written once and instantiated per
// curve. Projective addition and doubling use the complete addition formulas
// of Renes, Costello and Batina (https://eprint.iacr.org/2015/1060), with the
// cheaper variants selected at compile time for curves carrying the A = 0
// marker.
package weierstrass

import "github.com/smallyu/go-weierstrass/pkg/ct"

// Sign is the parity tag of a field element: the least significant bit of
// its canonical integer representation. It is not a genuine sign; it exists
// to pick one of the two square roots during point compression.
type Sign int

const (
	// Positive marks an even canonical representation.
	Positive Sign = iota
	// Negative marks an odd canonical representation.
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}

// FieldElement is the capability set a prime field element must provide for
// curve arithmetic. All methods are value-to-value; implementations are
// cheap fixed-size copies. Arithmetic results are always reduced, equality
// is subtract-and-test-zero, and Inverse on the zero element is a contract
// violation that panics.
type FieldElement[FE any] interface {
	IsZero() bool
	Sign() Sign
	CtEq(FE) ct.Choice

	Add(FE) FE
	Sub(FE) FE
	Mul(FE) FE
	Neg() FE

	Double() FE
	Square() FE
	Cube() FE
	Inverse() FE
}

// FieldSqrt extends FieldElement with a square root. The returned option is
// present exactly when the element is a quadratic residue, and the root is
// self-validated by squaring before being declared present.
type FieldSqrt[FE any] interface {
	FieldElement[FE]
	Sqrt() ct.Option[FE]
}
