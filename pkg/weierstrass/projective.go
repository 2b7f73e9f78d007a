package weierstrass

import "github.com/smallyu/go-weierstrass/pkg/ct"

// Point is a projective point (X:Y:Z), the equivalence class of
// (λX:λY:λZ) for any nonzero λ; its affine counterpart is (X/Z, Y/Z) when
// Z ≠ 0. The identity ("point at infinity") is the class of (0:1:0) and has
// no separate discriminant: it is detected by Z = 0.
//
// Two points are equal when X₁Z₂ = X₂Z₁ and Y₁Z₂ = Y₂Z₁; equal points may
// have entirely different limb representations. Projective coordinates keep
// scalar multiplication free of per-operation field inversions.
type Point[FE FieldElement[FE]] struct {
	X FE
	Y FE
	Z FE
}

// Infinity returns the identity element (0:1:0).
func Infinity[FE FieldElement[FE]](c Curve[FE]) Point[FE] {
	return Point[FE]{X: c.Zero(), Y: c.One(), Z: c.Zero()}
}

// FromAffine lifts an affine point to (x:y:1).
func FromAffine[FE FieldElement[FE]](p AffinePoint[FE], c Curve[FE]) Point[FE] {
	return Point[FE]{X: p.X, Y: p.Y, Z: c.One()}
}

// IsInfinity tests for the identity in constant time.
func (p Point[FE]) IsInfinity() ct.Choice {
	return ct.Choice(boolToChoice(p.Z.IsZero()))
}

// IsEquivalent tests whether two points are in the same equivalence class,
// by cross-multiplication, in constant time. Z is never compared directly
// and Z = 1 is not required.
func (p Point[FE]) IsEquivalent(q Point[FE]) ct.Choice {
	nx1 := p.X.Mul(q.Z)
	nx2 := q.X.Mul(p.Z)
	ny1 := p.Y.Mul(q.Z)
	ny2 := q.Y.Mul(p.Z)
	return nx1.CtEq(nx2).And(ny1.CtEq(ny2))
}

// Neg returns the inverse element (X:-Y:Z).
func (p Point[FE]) Neg() Point[FE] {
	return Point[FE]{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// ToAffine scales the point to its affine representative. The identity has
// none, reported as ok=false.
func (p Point[FE]) ToAffine() (AffinePoint[FE], bool) {
	if p.Z.IsZero() {
		return AffinePoint[FE]{}, false
	}
	zinv := p.Z.Inverse()
	return AffinePoint[FE]{X: p.X.Mul(zinv), Y: p.Y.Mul(zinv)}, true
}

// Normalize rescales the point in place to its canonical Z = 1
// representative (the identity is left untouched). It is an optimization
// for repeated reads and never required for correctness.
func (p *Point[FE]) Normalize(c Curve[FE]) {
	if p.Z.IsZero() {
		return
	}
	zinv := p.Z.Inverse()
	p.X = p.X.Mul(zinv)
	p.Y = p.Y.Mul(zinv)
	p.Z = c.One()
}

// AddDifferent returns P + Q by the complete addition formula for arbitrary
// A (Algorithm 1 of Renes-Costello-Batina): a fixed sequence of field
// operations with no conditional branches, valid for any two inputs that
// are not the same class. Equal inputs require Double; passing them here is
// a programmer contract violation and panics.
func (p Point[FE]) AddDifferent(q Point[FE], c Curve[FE]) Point[FE] {
	if p.IsEquivalent(q).Bool() {
		panic("weierstrass: AddDifferent on equivalent points")
	}
	return p.addDifferentUnchecked(q, c)
}

func (p Point[FE]) addDifferentUnchecked(q Point[FE], c Curve[FE]) Point[FE] {
	t0 := p.X.Mul(q.X)
	t1 := p.Y.Mul(q.Y)
	t2 := p.Z.Mul(q.Z)
	t3 := p.X.Add(p.Y)
	t4 := q.X.Add(q.Y)
	t3 = t3.Mul(t4)
	t4 = t0.Add(t1)
	t3 = t3.Sub(t4)
	t4 = p.X.Add(p.Z)
	t5 := q.X.Add(q.Z)
	t4 = t4.Mul(t5)
	t5 = t0.Add(t2)
	t4 = t4.Sub(t5)
	t5 = p.Y.Add(p.Z)
	x3 := q.Y.Add(q.Z)
	t5 = t5.Mul(x3)
	x3 = t1.Add(t2)
	t5 = t5.Sub(x3)
	z3 := c.A().Mul(t4)
	x3 = c.B3().Mul(t2)
	z3 = x3.Add(z3)
	x3 = t1.Sub(z3)
	z3 = t1.Add(z3)
	y3 := x3.Mul(z3)
	t1 = t0.Double()
	t1 = t1.Add(t0)
	t2 = c.A().Mul(t2)
	t4 = c.B3().Mul(t4)
	t1 = t1.Add(t2)
	t2 = t0.Sub(t2)
	t2 = c.A().Mul(t2)
	t4 = t4.Add(t2)
	t0 = t1.Mul(t4)
	y3 = y3.Add(t0)
	t0 = t5.Mul(t4)
	x3 = t3.Mul(x3)
	x3 = x3.Sub(t0)
	t0 = t3.Mul(t1)
	z3 = t5.Mul(z3)
	z3 = z3.Add(t0)

	return Point[FE]{X: x3, Y: y3, Z: z3}
}

// AddDifferentA0 is AddDifferent for curves with A = 0 (Algorithm 7 of the
// same paper), saving the multiplications by A.
func (p Point[FE]) AddDifferentA0(q Point[FE], c CurveA0[FE]) Point[FE] {
	if p.IsEquivalent(q).Bool() {
		panic("weierstrass: AddDifferentA0 on equivalent points")
	}
	return p.addDifferentA0Unchecked(q, c)
}

func (p Point[FE]) addDifferentA0Unchecked(q Point[FE], c CurveA0[FE]) Point[FE] {
	t0 := p.X.Mul(q.X)
	t1 := p.Y.Mul(q.Y)
	t2 := p.Z.Mul(q.Z)
	t3 := p.X.Add(p.Y)
	t4 := q.X.Add(q.Y)
	t3 = t3.Mul(t4)
	t4 = t0.Add(t1)
	t3 = t3.Sub(t4)
	t4 = p.Y.Add(p.Z)
	x3 := q.Y.Add(q.Z)
	t4 = t4.Mul(x3)
	x3 = t1.Add(t2)
	t4 = t4.Sub(x3)
	x3 = p.X.Add(p.Z)
	y3 := q.X.Add(q.Z)
	x3 = x3.Mul(y3)
	y3 = t0.Add(t2)
	y3 = x3.Sub(y3)
	x3 = t0.Double()
	t0 = x3.Add(t0)
	t2 = c.B3().Mul(t2)
	z3 := t1.Add(t2)
	t1 = t1.Sub(t2)
	y3 = c.B3().Mul(y3)
	x3 = t4.Mul(y3)
	t2 = t3.Mul(t1)
	x3 = t2.Sub(x3)
	y3 = y3.Mul(t0)
	t1 = t1.Mul(z3)
	y3 = t1.Add(y3)
	t0 = t0.Mul(t3)
	z3 = z3.Mul(t4)
	z3 = z3.Add(t0)

	return Point[FE]{X: x3, Y: y3, Z: z3}
}

// Double returns 2P by the dedicated doubling formula for arbitrary A
// (Algorithm 3). It is not derived from AddDifferent: the general addition
// formula is invalid for equal inputs, and the split between the two is
// fundamental to the complete-formula design.
func (p Point[FE]) Double(c Curve[FE]) Point[FE] {
	t0 := p.X.Square()
	t1 := p.Y.Square()
	t2 := p.Z.Square()
	t3 := p.X.Mul(p.Y)
	t3 = t3.Double()
	z3 := p.X.Mul(p.Z)
	z3 = z3.Add(z3)
	x3 := c.A().Mul(z3)
	y3 := c.B3().Mul(t2)
	y3 = x3.Add(y3)
	x3 = t1.Sub(y3)
	y3 = t1.Add(y3)
	y3 = x3.Mul(y3)
	x3 = t3.Mul(x3)
	z3 = c.B3().Mul(z3)
	t2 = c.A().Mul(t2)
	t3 = t0.Sub(t2)
	t3 = c.A().Mul(t3)
	t3 = t3.Add(z3)
	z3 = t0.Add(t0)
	t0 = z3.Add(t0)
	t0 = t0.Add(t2)
	t0 = t0.Mul(t3)
	y3 = y3.Add(t0)
	t2 = p.Y.Mul(p.Z)
	t2 = t2.Add(t2)
	t0 = t2.Mul(t3)
	x3 = x3.Sub(t0)
	z3 = t2.Mul(t1)
	z3 = z3.Add(z3)
	z3 = z3.Add(z3)

	return Point[FE]{X: x3, Y: y3, Z: z3}
}

// DoubleA0 is Double for curves with A = 0 (Algorithm 9).
func (p Point[FE]) DoubleA0(c CurveA0[FE]) Point[FE] {
	t0 := p.Y.Square()
	z3 := t0.Add(t0)
	z3 = z3.Double()
	z3 = z3.Double()
	t1 := p.Y.Mul(p.Z)
	t2 := p.Z.Square()
	t2 = c.B3().Mul(t2)
	x3 := t2.Mul(z3)
	y3 := t0.Add(t2)
	z3 = t1.Mul(z3)
	t1 = t2.Add(t2)
	t2 = t1.Add(t2)
	t0 = t0.Sub(t2)
	y3 = t0.Mul(y3)
	y3 = x3.Add(y3)
	t1 = p.X.Mul(p.Y)
	x3 = t0.Mul(t1)
	x3 = x3.Double()

	return Point[FE]{X: x3, Y: y3, Z: z3}
}

// AddOrDouble returns P + Q, dispatching to Double when the operands are
// equivalent. The dispatch branches on the equivalence test, so it is not
// constant time in the operands; that is acceptable when point equality
// along the computation is a function of public data (as in double-and-add
// driven by the scalar's bit pattern), and a deliberate scope boundary
// otherwise.
func (p Point[FE]) AddOrDouble(q Point[FE], c Curve[FE]) Point[FE] {
	if p.IsEquivalent(q).Bool() {
		return p.Double(c)
	}
	return p.addDifferentUnchecked(q, c)
}

// AddOrDoubleA0 is AddOrDouble for curves with A = 0.
func (p Point[FE]) AddOrDoubleA0(q Point[FE], c CurveA0[FE]) Point[FE] {
	if p.IsEquivalent(q).Bool() {
		return p.DoubleA0(c)
	}
	return p.addDifferentA0Unchecked(q, c)
}

// Scale returns n·P by double-and-add, reading the scalar bytes most
// significant first and the bits of each byte from 7 down to 0. The
// accumulator starts at the identity, is doubled at every bit, and P is
// added only when the bit is set.
//
// The conditional add makes this variable time in the scalar. That is a
// known limitation carried from the reference design, not an oversight; a
// hardened implementation would replace the branch with a constant-time
// conditional select at every bit.
func (p Point[FE]) Scale(n []byte, c Curve[FE]) Point[FE] {
	q := Infinity(c)
	for _, digit := range n {
		for bit := 7; bit >= 0; bit-- {
			q = q.Double(c)
			if digit&(1<<bit) != 0 {
				q = q.AddOrDouble(p, c)
			}
		}
	}
	return q
}

// ScaleA0 is Scale for curves with A = 0, with the same scalar side channel.
func (p Point[FE]) ScaleA0(n []byte, c CurveA0[FE]) Point[FE] {
	q := Infinity[FE](c)
	for _, digit := range n {
		for bit := 7; bit >= 0; bit-- {
			q = q.DoubleA0(c)
			if digit&(1<<bit) != 0 {
				q = q.AddOrDoubleA0(p, c)
			}
		}
	}
	return q
}

func boolToChoice(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
