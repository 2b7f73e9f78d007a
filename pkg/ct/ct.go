// Package ct provides constant-time comparison and selection primitives.
//
// A Choice is a boolean carried as a machine word whose value is always 0 or
// 1, so that it can be combined with masks and logical operations without
// data-dependent branching. Conversion to an ordinary bool happens only at
// the point where control flow genuinely must depend on the (no longer
// secret) result.
package ct

import "math/bits"

// Choice is a constant-time boolean. Its value is always 0 or 1.
type Choice uint64

const (
	// False is the Choice carrying 0.
	False Choice = 0
	// True is the Choice carrying 1.
	True Choice = 1
)

// Bool converts the choice to an ordinary bool. This is a branch point and
// must only be used where the result is no longer secret.
func (c Choice) Bool() bool { return c == 1 }

// Not negates the choice.
func (c Choice) Not() Choice { return c ^ 1 }

// And combines two choices with logical AND, without branching.
func (c Choice) And(other Choice) Choice { return c & other }

// Or combines two choices with logical OR, without branching.
func (c Choice) Or(other Choice) Choice { return c | other }

// Mask expands the choice into an all-ones (1) or all-zeros (0) word.
func (c Choice) Mask() uint64 { return -uint64(c) }

// Select returns x if c is 1 and y if c is 0, in constant time.
func Select(c Choice, x, y uint64) uint64 {
	return y ^ (c.Mask() & (y ^ x))
}

// Zero tests a 64-bit word for being zero without comparison operators,
// using the top bit of x | -x.
func Zero(x uint64) Choice {
	return Choice(1 ^ (x|-x)>>63)
}

// Nonzero is the complement of Zero.
func Nonzero(x uint64) Choice {
	return Choice((x | -x) >> 63)
}

// Eq tests two 64-bit words for equality in constant time.
func Eq(x, y uint64) Choice { return Zero(x ^ y) }

// BytesZero tests a byte slice for being all zero in constant time.
func BytesZero(b []byte) Choice {
	var acc uint64
	for _, v := range b {
		acc |= uint64(v)
	}
	return Zero(acc)
}

// LimbsZero tests a little-endian limb slice for being all zero in constant
// time.
func LimbsZero(x []uint64) Choice {
	var acc uint64
	for _, v := range x {
		acc |= v
	}
	return Zero(acc)
}

// LimbsNonzero is the complement of LimbsZero.
func LimbsNonzero(x []uint64) Choice {
	return LimbsZero(x).Not()
}

// LimbsEq tests two little-endian limb slices of equal length for equality
// in constant time. Mismatched lengths are a programmer error and panic.
func LimbsEq(x, y []uint64) Choice {
	if len(x) != len(y) {
		panic("ct: limb slices of mismatched length")
	}
	var acc uint64
	for i := range x {
		acc |= x[i] ^ y[i]
	}
	return Zero(acc)
}

// LimbsLt returns whether x < y, treating both little-endian limb slices as
// unsigned integers, in constant time. Mismatched lengths panic.
func LimbsLt(x, y []uint64) Choice {
	if len(x) != len(y) {
		panic("ct: limb slices of mismatched length")
	}
	var borrow uint64
	for i := range x {
		_, borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return Nonzero(borrow)
}

// LimbsLe returns whether x <= y, in constant time. Mismatched lengths panic.
func LimbsLe(x, y []uint64) Choice {
	return LimbsLt(y, x).Not()
}

// Option pairs a Choice validity flag with a value. It is the return shape
// for operations whose failure is an expected, data-dependent outcome (for
// example a square root of a non-residue) computed in constant time.
type Option[T any] struct {
	present Choice
	value   T
}

// NewOption builds an Option from a validity choice and a value.
func NewOption[T any](present Choice, value T) Option[T] {
	return Option[T]{present: present, value: value}
}

// Present reports the validity flag without branching.
func (o Option[T]) Present() Choice { return o.present }

// Into converts to an ordinary (value, ok) pair. This is the single branch
// point of the type.
func (o Option[T]) Into() (T, bool) {
	if o.present.Bool() {
		return o.value, true
	}
	var zero T
	return zero, false
}
