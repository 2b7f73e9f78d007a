// Package sec2 groups the SEC2 curve instantiations.
//
// Each subpackage binds the generic arithmetic in pkg/weierstrass to one
// standardized curve: p192k1, p224k1 and p256k1 (secp256k1) carry the a = 0
// marker and use the cheaper complete formulas; p192r1, p224r1, p256r1
// (P-256), p384r1 (P-384) and p521r1 (P-521) use the general ones. The
// subpackages share one shape (FieldElement, Scalar, Curve, PointAffine
// and Point) and differ only in constants and, for the three curves that
// have them, fixed inversion and square root chains.
package sec2
