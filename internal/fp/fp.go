// Package fp implements fixed-width prime field arithmetic on saturated
// 64-bit limbs kept in the Montgomery domain.
//
// A single generic backend serves every curve: a Modulus describes one prime
// (limbs, Montgomery constants, square root strategy) and performs all
// element operations in constant time with respect to element values. The
// word-by-word Montgomery multiplication follows the CIOS layout used by the
// standard library's RSA nat arithmetic.
//
// Derived constants (R² mod p, exponents, Tonelli-Shanks parameters) are
// computed once at Modulus construction with math/big; big integers never
// touch per-element operations.
package fp

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/smallyu/go-weierstrass/pkg/ct"
)

// MaxLimbs is sized for the largest supported prime (P-521, 9 limbs).
const MaxLimbs = 9

// Element is one field element in the Montgomery domain. It is a plain
// value: copying it copies the limbs. Only the modulus that produced an
// element may operate on it.
type Element struct {
	limbs [MaxLimbs]uint64
}

// tonelliShanks carries the precomputed data for square roots modulo a
// prime p ≡ 1 (mod 4): p-1 = q·2^s with q odd, and zq = z^q for a fixed
// quadratic non-residue z.
type tonelliShanks struct {
	q1half []byte // (q+1)/2, big-endian
	q      []byte // q, big-endian
	s      int
	zq     Element
}

// Modulus describes one prime field and implements its element operations.
// It is immutable after construction and safe for concurrent use.
type Modulus struct {
	limbs  []uint64 // the prime, little-endian
	nlimbs int
	nbits  int
	nbytes int

	m0inv uint64  // -p⁻¹ mod 2⁶⁴
	rr    Element // R² mod p (raw limbs)
	one   Element // R mod p, the Montgomery form of 1

	pMinus2 []byte // big-endian, Invert exponent
	sqrtExp []byte // big-endian (p+1)/4 when p ≡ 3 (mod 4), else nil
	ts      *tonelliShanks
}

// NewModulus builds a Modulus for the prime encoded as big-endian bytes.
// bits is the exact bit length of the prime. The prime must be odd and
// larger than one word; these are construction-time programmer errors.
func NewModulus(bits int, be []byte) (*Modulus, error) {
	if len(be) != (bits+7)/8 {
		return nil, fmt.Errorf("fp: modulus encoding is %d bytes, want %d", len(be), (bits+7)/8)
	}
	p := new(big.Int).SetBytes(be)
	if p.BitLen() != bits {
		return nil, fmt.Errorf("fp: modulus bit length is %d, want %d", p.BitLen(), bits)
	}
	if p.Bit(0) != 1 {
		return nil, fmt.Errorf("fp: modulus must be odd")
	}

	m := &Modulus{
		nlimbs: (bits + 63) / 64,
		nbits:  bits,
		nbytes: (bits + 7) / 8,
	}
	m.limbs = make([]uint64, m.nlimbs)
	fillLimbs(m.limbs, p)

	// -p⁻¹ mod 2⁶⁴ by Newton iteration: five steps double the precision
	// from 3 bits past 64.
	inv := m.limbs[0]
	for i := 0; i < 5; i++ {
		inv *= 2 - m.limbs[0]*inv
	}
	m.m0inv = -inv

	r := new(big.Int).Lsh(big.NewInt(1), uint(64*m.nlimbs))
	rmod := new(big.Int).Mod(r, p)
	fillLimbs(m.one.limbs[:m.nlimbs], rmod)
	rr := new(big.Int).Mod(new(big.Int).Mul(rmod, rmod), p)
	fillLimbs(m.rr.limbs[:m.nlimbs], rr)

	m.pMinus2 = padBytes(new(big.Int).Sub(p, big.NewInt(2)), m.nbytes)

	if p.Bit(1) == 1 {
		// p ≡ 3 (mod 4): sqrt is a single exponentiation by (p+1)/4.
		e := new(big.Int).Add(p, big.NewInt(1))
		e.Rsh(e, 2)
		m.sqrtExp = padBytes(e, m.nbytes)
	} else {
		m.ts = m.newTonelliShanks(p)
	}
	return m, nil
}

// MustModulus builds a Modulus from a big-endian hex string and panics on
// malformed input. Curve packages use it for their compile-time constant
// tables.
func MustModulus(bits int, hexBE string) *Modulus {
	be, err := hex.DecodeString(hexBE)
	if err != nil {
		panic("fp: bad modulus hex: " + err.Error())
	}
	m, err := NewModulus(bits, be)
	if err != nil {
		panic(err.Error())
	}
	return m
}

func (m *Modulus) newTonelliShanks(p *big.Int) *tonelliShanks {
	// p-1 = q·2^s with q odd.
	q := new(big.Int).Sub(p, big.NewInt(1))
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}
	// Smallest quadratic non-residue; a short loop over public constants.
	z := big.NewInt(2)
	for big.Jacobi(z, p) != -1 {
		z.Add(z, big.NewInt(1))
	}
	q1half := new(big.Int).Add(q, big.NewInt(1))
	q1half.Rsh(q1half, 1)

	ts := &tonelliShanks{
		q:      padBytes(q, m.nbytes),
		q1half: padBytes(q1half, m.nbytes),
		s:      s,
	}
	var zraw Element
	fillLimbs(zraw.limbs[:m.nlimbs], z)
	ts.zq = m.Pow(m.toMontgomery(zraw), ts.q)
	return ts
}

func fillLimbs(dst []uint64, v *big.Int) {
	words := v.Bits()
	for i := range dst {
		if i < len(words) {
			dst[i] = uint64(words[i])
		} else {
			dst[i] = 0
		}
	}
}

func padBytes(v *big.Int, n int) []byte {
	return v.FillBytes(make([]byte, n))
}

// Size returns the canonical encoding width in bytes.
func (m *Modulus) Size() int { return m.nbytes }

// Bits returns the bit length of the prime.
func (m *Modulus) Bits() int { return m.nbits }

// Zero returns the additive identity.
func (m *Modulus) Zero() Element { return Element{} }

// One returns the multiplicative identity.
func (m *Modulus) One() Element { return m.one }

// FromUint64 returns the element representing v.
func (m *Modulus) FromUint64(v uint64) Element {
	var e Element
	e.limbs[0] = v
	return m.toMontgomery(e)
}

// Nonzero tests an element against zero in constant time. The Montgomery
// representation of zero is all-zero limbs, so the raw limbs are decisive.
func (m *Modulus) Nonzero(a Element) ct.Choice {
	return ct.LimbsNonzero(a.limbs[:m.nlimbs])
}

// Eq compares two elements in constant time by subtracting and testing the
// difference for zero.
func (m *Modulus) Eq(a, b Element) ct.Choice {
	d := m.Sub(a, b)
	return m.Nonzero(d).Not()
}

// Add returns a + b mod p.
func (m *Modulus) Add(a, b Element) Element {
	n := m.nlimbs
	var s, d Element
	var carry uint64
	for i := 0; i < n; i++ {
		s.limbs[i], carry = bits.Add64(a.limbs[i], b.limbs[i], carry)
	}
	var borrow uint64
	for i := 0; i < n; i++ {
		d.limbs[i], borrow = bits.Sub64(s.limbs[i], m.limbs[i], borrow)
	}
	// Keep the subtracted value when the addition overflowed the word size
	// or reached p.
	useD := ct.Nonzero(carry).Or(ct.Zero(borrow))
	return m.selectElement(useD, d, s)
}

// Sub returns a - b mod p.
func (m *Modulus) Sub(a, b Element) Element {
	n := m.nlimbs
	var d Element
	var borrow uint64
	for i := 0; i < n; i++ {
		d.limbs[i], borrow = bits.Sub64(a.limbs[i], b.limbs[i], borrow)
	}
	// Add p back when the subtraction borrowed.
	mask := ct.Nonzero(borrow).Mask()
	var carry uint64
	for i := 0; i < n; i++ {
		d.limbs[i], carry = bits.Add64(d.limbs[i], m.limbs[i]&mask, carry)
	}
	return d
}

// Neg returns -a mod p.
func (m *Modulus) Neg(a Element) Element {
	return m.Sub(Element{}, a)
}

// Double returns 2a mod p.
func (m *Modulus) Double(a Element) Element {
	return m.Add(a, a)
}

// Mul returns a·b mod p using word-by-word Montgomery multiplication.
func (m *Modulus) Mul(a, b Element) Element {
	return m.montMul(a, b)
}

// Square returns a² mod p.
func (m *Modulus) Square(a Element) Element {
	return m.montMul(a, a)
}

// montMul computes a·b·R⁻¹ mod p (CIOS with the shift folded into the
// reduction pass).
func (m *Modulus) montMul(a, b Element) Element {
	n := m.nlimbs
	var t [MaxLimbs + 2]uint64
	for i := 0; i < n; i++ {
		ai := a.limbs[i]
		var c uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(ai, b.limbs[j])
			lo, c1 := bits.Add64(lo, t[j], 0)
			lo, c2 := bits.Add64(lo, c, 0)
			t[j] = lo
			c = hi + c1 + c2
		}
		var carry uint64
		t[n], carry = bits.Add64(t[n], c, 0)
		t[n+1] = carry

		mm := t[0] * m.m0inv
		hi, lo := bits.Mul64(mm, m.limbs[0])
		_, c1 := bits.Add64(lo, t[0], 0)
		c = hi + c1
		for j := 1; j < n; j++ {
			hi, lo := bits.Mul64(mm, m.limbs[j])
			lo, c1 := bits.Add64(lo, t[j], 0)
			lo, c2 := bits.Add64(lo, c, 0)
			t[j-1] = lo
			c = hi + c1 + c2
		}
		var carry2 uint64
		t[n-1], carry2 = bits.Add64(t[n], c, 0)
		t[n] = t[n+1] + carry2
	}

	// The accumulator is below 2p; one conditional subtraction finishes.
	var d Element
	var borrow uint64
	for i := 0; i < n; i++ {
		d.limbs[i], borrow = bits.Sub64(t[i], m.limbs[i], borrow)
	}
	_, borrow = bits.Sub64(t[n], 0, borrow)
	var r Element
	copy(r.limbs[:n], t[:n])
	return m.selectElement(ct.Zero(borrow), d, r)
}

func (m *Modulus) selectElement(c ct.Choice, x, y Element) Element {
	var r Element
	for i := 0; i < m.nlimbs; i++ {
		r.limbs[i] = ct.Select(c, x.limbs[i], y.limbs[i])
	}
	return r
}

func (m *Modulus) toMontgomery(raw Element) Element {
	return m.montMul(raw, m.rr)
}

func (m *Modulus) fromMontgomery(a Element) Element {
	var one Element
	one.limbs[0] = 1
	return m.montMul(a, one)
}

// SetBytes decodes a canonical big-endian encoding. It reports false when
// the length is wrong or the value is not below p.
func (m *Modulus) SetBytes(be []byte) (Element, bool) {
	if len(be) != m.nbytes {
		return Element{}, false
	}
	raw := m.decodeRaw(be)
	if !ct.LimbsLt(raw.limbs[:m.nlimbs], m.limbs).Bool() {
		return Element{}, false
	}
	return m.toMontgomery(raw), true
}

// SetBytesUnchecked decodes a big-endian encoding without the range check;
// out-of-range values are reduced modulo p by the Montgomery conversion.
func (m *Modulus) SetBytesUnchecked(be []byte) (Element, bool) {
	if len(be) != m.nbytes {
		return Element{}, false
	}
	return m.toMontgomery(m.decodeRaw(be)), true
}

func (m *Modulus) decodeRaw(be []byte) Element {
	var raw Element
	for i := len(be) - 1; i >= 0; i-- {
		byteIdx := len(be) - 1 - i
		raw.limbs[byteIdx/8] |= uint64(be[i]) << (8 * (byteIdx % 8))
	}
	return raw
}

// Bytes returns the canonical big-endian encoding.
func (m *Modulus) Bytes(a Element) []byte {
	raw := m.fromMontgomery(a)
	be := make([]byte, m.nbytes)
	for i := range be {
		byteIdx := len(be) - 1 - i
		be[i] = byte(raw.limbs[byteIdx/8] >> (8 * (byteIdx % 8)))
	}
	return be
}

// Parity returns the least significant bit of the canonical representation.
// It is a parity tag, not a genuine sign; it exists for point compression.
func (m *Modulus) Parity(a Element) uint64 {
	raw := m.fromMontgomery(a)
	return raw.limbs[0] & 1
}

// Pow raises a to the big-endian exponent with a left-to-right square and
// multiply. The bit pattern of the exponent is visible in the execution
// trace, so Pow must only be used with public exponents (p-derived
// constants); element values stay protected.
func (m *Modulus) Pow(a Element, be []byte) Element {
	r := m.one
	for _, digit := range be {
		for bit := 7; bit >= 0; bit-- {
			r = m.montMul(r, r)
			if digit&(1<<bit) != 0 {
				r = m.montMul(r, a)
			}
		}
	}
	return r
}

// PowUint64 raises a to a small public exponent.
func (m *Modulus) PowUint64(a Element, n uint64) Element {
	switch n {
	case 0:
		return m.one
	case 1:
		return a
	case 2:
		return m.Square(a)
	}
	q := m.one
	for i := 0; i < 64; i++ {
		if n&(1<<i) != 0 {
			q = m.montMul(q, a)
		}
		a = m.Square(a)
	}
	return q
}

// Invert returns a⁻¹ mod p by exponentiation to p-2, a fixed sequence of
// squarings and multiplications. Zero has no inverse; calling Invert on it
// is a programmer contract violation and panics.
func (m *Modulus) Invert(a Element) Element {
	if !m.Nonzero(a).Bool() {
		panic("fp: inverse of zero")
	}
	return m.Pow(a, m.pMinus2)
}

// Sqrt returns a square root of a when one exists. The root is validated by
// squaring before the present flag is set, so a broken exponent chain
// surfaces as an absent result rather than a wrong one.
func (m *Modulus) Sqrt(a Element) (Element, ct.Choice) {
	var r Element
	if m.sqrtExp != nil {
		r = m.Pow(a, m.sqrtExp)
	} else {
		r = m.sqrtTonelliShanks(a)
	}
	return r, m.Eq(m.Square(r), a)
}

// sqrtTonelliShanks handles p ≡ 1 (mod 4). The loop count is bounded by s
// from p-1 = q·2^s; for a non-residue the candidate simply fails the
// caller's validation.
func (m *Modulus) sqrtTonelliShanks(a Element) Element {
	r := m.Pow(a, m.ts.q1half)
	t := m.Pow(a, m.ts.q)
	c := m.ts.zq
	order := m.ts.s

	for !m.Eq(t, m.one).Bool() {
		// Least i with t^(2^i) = 1. Running past order means a is not a
		// residue (or is zero); the candidate is returned as-is and the
		// caller's validation rejects it.
		i := 1
		t2 := m.Square(t)
		for i < order && !m.Eq(t2, m.one).Bool() {
			t2 = m.Square(t2)
			i++
		}
		if i == order {
			return r
		}
		b := c
		for j := 0; j < order-i-1; j++ {
			b = m.Square(b)
		}
		order = i
		c = m.Square(b)
		t = m.montMul(t, c)
		r = m.montMul(r, b)
	}
	return r
}
