package p224k1

import "github.com/smallyu/go-weierstrass/pkg/weierstrass"

// PointAffine is an affine secp224k1 point. It cannot represent the
// group identity; Point.Affine fails on the identity instead.
type PointAffine struct {
	p weierstrass.AffinePoint[FieldElement]
}

// Point is a projective secp224k1 point, including the group identity.
type Point struct {
	p weierstrass.Point[FieldElement]
}

// AffineGenerator returns the standard base point in affine form.
func AffineGenerator() PointAffine {
	return PointAffine{weierstrass.AffinePoint[FieldElement]{X: genX, Y: genY}}
}

// Generator returns the standard base point.
func Generator() Point { return AffineGenerator().Projective() }

// Infinity returns the group identity.
func Infinity() Point { return Point{weierstrass.Infinity[FieldElement](Curve{})} }

// FromCoordinates validates y² = x³ + ax + b and returns the point for an
// on-curve pair.
func FromCoordinates(x, y FieldElement) (PointAffine, bool) {
	p, ok := weierstrass.FromCoordinate(x, y, Curve{})
	return PointAffine{p}, ok
}

// Decompress reconstructs the point with abscissa x and ordinate parity
// sign. It reports ok=false when x is not the abscissa of any curve point.
func Decompress(x FieldElement, sign weierstrass.Sign) (PointAffine, bool) {
	p, ok := weierstrass.Decompress(x, sign, Curve{})
	return PointAffine{p}, ok
}

// ScalarBaseMult returns k·G for the standard base point G.
func ScalarBaseMult(k Scalar) Point { return Generator().ScalarMult(k) }

// Coordinates returns the (x, y) pair.
func (p PointAffine) Coordinates() (FieldElement, FieldElement) { return p.p.Coordinates() }

// Compress returns the abscissa and the parity of the ordinate.
func (p PointAffine) Compress() (FieldElement, weierstrass.Sign) { return p.p.Compress() }

// Equal reports coordinate equality.
func (p PointAffine) Equal(q PointAffine) bool { return p.p.Equal(q.p) }

// Neg mirrors the point over the x axis.
func (p PointAffine) Neg() PointAffine { return PointAffine{p.p.Neg()} }

// Double returns 2P in affine form, at the cost of a field inversion.
func (p PointAffine) Double() PointAffine { return PointAffine{p.p.Double(Curve{})} }

// Add returns P + Q for points with distinct abscissas. Equal abscissas
// (a doubling or an identity sum) are the caller's responsibility and
// panic here.
func (p PointAffine) Add(q PointAffine) PointAffine {
	return PointAffine{p.p.AddDifferent(q.p)}
}

// Projective lifts the point to projective coordinates.
func (p PointAffine) Projective() Point {
	return Point{weierstrass.FromAffine(p.p, Curve{})}
}

// Affine returns the affine representative, or ok=false for the identity.
func (p Point) Affine() (PointAffine, bool) {
	a, ok := p.p.ToAffine()
	return PointAffine{a}, ok
}

// IsInfinity reports whether p is the identity.
func (p Point) IsInfinity() bool { return p.p.IsInfinity().Bool() }

// Equal reports group equality, i.e. projective equivalence.
func (p Point) Equal(q Point) bool { return p.p.IsEquivalent(q.p).Bool() }

// Neg returns -P.
func (p Point) Neg() Point { return Point{p.p.Neg()} }

// Add returns P + Q. The doubling dispatch inside is not constant time in
// the operands.
func (p Point) Add(q Point) Point { return Point{p.p.AddOrDoubleA0(q.p, Curve{})} }

// Sub returns P - Q.
func (p Point) Sub(q Point) Point { return p.Add(q.Neg()) }

// Double returns 2P.
func (p Point) Double() Point { return Point{p.p.DoubleA0(Curve{})} }

// Normalize rescales to the canonical Z = 1 representative in place.
func (p *Point) Normalize() { p.p.Normalize(Curve{}) }

// ScalarMult returns k·P by double-and-add. It is variable time in the
// scalar.
func (p Point) ScalarMult(k Scalar) Point { return p.ScalarMultBytes(k.Bytes()) }

// ScalarMultBytes returns n·P for a big-endian byte scalar of any length,
// most significant byte first.
func (p Point) ScalarMultBytes(n []byte) Point { return Point{p.p.ScaleA0(n, Curve{})} }

// MulPoint returns k·P, the operand-swapped form of Point.ScalarMult.
func (k Scalar) MulPoint(p Point) Point { return p.ScalarMult(k) }
