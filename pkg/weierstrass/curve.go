package weierstrass

// Curve describes one short Weierstrass curve y² = x³ + Ax + B to the point
// arithmetic. Implementations are trivially copyable handles returning
// process-wide constants; B3 is the precomputed 3·B used throughout the
// complete addition formulas.
//
// Zero and One expose the field's identities so generic code can build
// points without a field element in hand.
type Curve[FE FieldElement[FE]] interface {
	A() FE
	B() FE
	B3() FE
	Zero() FE
	One() FE
}

// CurveA0 marks curves whose A coefficient is zero, unlocking the cheaper
// addition and doubling formulas. The marker is a capability, not a runtime
// flag: attaching it to a curve with A ≠ 0 silently computes wrong group
// operations, so it must only be implemented after verifying A = 0.
type CurveA0[FE FieldElement[FE]] interface {
	Curve[FE]

	// A0 is the marker method; it does nothing.
	A0()
}
