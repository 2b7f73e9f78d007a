package weierstrass

// AffinePoint is an on-curve (x, y) pair. It cannot represent the point at
// infinity; converting a projective point at infinity to affine fails. The
// affine form is the low-volume representation used for serialization and
// storage: both Double and AddDifferent pay a field inversion, so repeated
// arithmetic belongs to the projective form.
type AffinePoint[FE FieldElement[FE]] struct {
	X FE
	Y FE
}

// FromCoordinate validates y² = x³ + Ax + B and returns the point, or
// ok=false for an off-curve pair.
func FromCoordinate[FE FieldElement[FE]](x, y FE, c Curve[FE]) (AffinePoint[FE], bool) {
	y2 := y.Square()
	rhs := x.Cube().Add(c.A().Mul(x)).Add(c.B())
	if !y2.CtEq(rhs).Bool() {
		return AffinePoint[FE]{}, false
	}
	return AffinePoint[FE]{X: x, Y: y}, true
}

// Decompress reconstructs the point with the given x coordinate and y
// parity. It returns ok=false when x³ + Ax + B has no square root, i.e. x is
// not the abscissa of any curve point.
func Decompress[FE FieldSqrt[FE]](x FE, sign Sign, c Curve[FE]) (AffinePoint[FE], bool) {
	yy := x.Cube().Add(c.A().Mul(x)).Add(c.B())
	y, ok := yy.Sqrt().Into()
	if !ok {
		return AffinePoint[FE]{}, false
	}
	if y.Sign() != sign {
		y = y.Neg()
	}
	return AffinePoint[FE]{X: x, Y: y}, true
}

// Coordinates returns the (x, y) pair.
func (p AffinePoint[FE]) Coordinates() (FE, FE) {
	return p.X, p.Y
}

// Compress returns the x coordinate and the parity of y.
func (p AffinePoint[FE]) Compress() (FE, Sign) {
	return p.X, p.Y.Sign()
}

// Equal reports whether two affine points have identical coordinates, in
// constant time up to the final conversion.
func (p AffinePoint[FE]) Equal(q AffinePoint[FE]) bool {
	return p.X.CtEq(q.X).And(p.Y.CtEq(q.Y)).Bool()
}

// Neg returns the point mirrored over the x axis.
func (p AffinePoint[FE]) Neg() AffinePoint[FE] {
	return AffinePoint[FE]{X: p.X, Y: p.Y.Neg()}
}

// Double returns 2P using the tangent-slope formula
// λ = (3x₁² + A) / 2y₁. Doubling a point with y = 0 (a 2-torsion point;
// none exists on the supported curves) would invert zero and panic.
func (p AffinePoint[FE]) Double(c Curve[FE]) AffinePoint[FE] {
	xx := p.X.Square()
	l := xx.Double().Add(xx).Add(c.A()).Mul(p.Y.Double().Inverse())
	x3 := l.Square().Sub(p.X.Double())
	y3 := l.Mul(p.X.Sub(x3)).Sub(p.Y)
	return AffinePoint[FE]{X: x3, Y: y3}
}

// AddDifferent returns P + Q for two points with distinct x coordinates,
// using the two-point slope λ = (y₁-y₂)/(x₁-x₂). Calling it with x₁ = x₂
// divides by zero and panics; that case is a doubling (or the identity) and
// belongs to the caller.
func (p AffinePoint[FE]) AddDifferent(q AffinePoint[FE]) AffinePoint[FE] {
	l := p.Y.Sub(q.Y).Mul(p.X.Sub(q.X).Inverse())
	x3 := l.Square().Sub(p.X).Sub(q.X)
	y3 := l.Mul(p.X.Sub(x3)).Sub(p.Y)
	return AffinePoint[FE]{X: x3, Y: y3}
}
