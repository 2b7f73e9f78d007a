package fp

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Primes spanning every limb count and both square root strategies, plus
// one group order with a bit length that is not a multiple of eight.
var testModuli = []struct {
	name string
	bits int
	hex  string
}{
	{"p192", 192, "fffffffffffffffffffffffffffffffeffffffffffffffff"},
	{"p224", 224, "ffffffffffffffffffffffffffffffff000000000000000000000001"},
	{"secp256k1", 256, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"},
	{"secp224k1-n", 225, "010000000000000000000000000001dce8d2ec6184caf0a971769fb1f7"},
	{"p521", 521, "01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"},
}

func bigModulus(t *testing.T, hex string) *big.Int {
	t.Helper()
	p, ok := new(big.Int).SetString(hex, 16)
	require.True(t, ok)
	return p
}

func genBytes(n int) gopter.Gen {
	return gen.SliceOfN(n, gen.UInt8())
}

func TestModulusConstruction(t *testing.T) {
	for _, tm := range testModuli {
		t.Run(tm.name, func(t *testing.T) {
			m := MustModulus(tm.bits, tm.hex)
			assert.Equal(t, (tm.bits+7)/8, m.Size())
			assert.Equal(t, tm.bits, m.Bits())

			one := m.One()
			assert.True(t, m.Eq(m.Mul(one, one), one).Bool())
			assert.True(t, m.Eq(m.FromUint64(1), one).Bool())
			assert.False(t, m.Nonzero(m.Zero()).Bool())
		})
	}
}

func TestSecp256k1MontgomeryConstant(t *testing.T) {
	m := MustModulus(256, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	// The well-known -p⁻¹ mod 2⁶⁴ for the secp256k1 prime.
	assert.Equal(t, uint64(0xd838091dd2253531), m.m0inv)
}

func TestSetBytesRange(t *testing.T) {
	for _, tm := range testModuli {
		t.Run(tm.name, func(t *testing.T) {
			m := MustModulus(tm.bits, tm.hex)
			p := bigModulus(t, tm.hex)

			_, ok := m.SetBytes(p.FillBytes(make([]byte, m.Size())))
			assert.False(t, ok, "p itself must be rejected")

			pm1 := new(big.Int).Sub(p, big.NewInt(1))
			e, ok := m.SetBytes(pm1.FillBytes(make([]byte, m.Size())))
			require.True(t, ok)
			assert.True(t, bytes.Equal(m.Bytes(e), pm1.FillBytes(make([]byte, m.Size()))))

			_, ok = m.SetBytes(make([]byte, m.Size()-1))
			assert.False(t, ok, "short encoding must be rejected")
			_, ok = m.SetBytes(make([]byte, m.Size()+1))
			assert.False(t, ok, "long encoding must be rejected")

			// Unchecked decoding reduces instead of rejecting.
			u, ok := m.SetBytesUnchecked(p.FillBytes(make([]byte, m.Size())))
			require.True(t, ok)
			assert.False(t, m.Nonzero(u).Bool(), "p must reduce to zero")
		})
	}
}

// TestArithmeticMatchesBigInt checks the field axioms and every operation
// against a math/big model on random inputs.
func TestArithmeticMatchesBigInt(t *testing.T) {
	for _, tm := range testModuli {
		t.Run(tm.name, func(t *testing.T) {
			m := MustModulus(tm.bits, tm.hex)
			p := bigModulus(t, tm.hex)

			decode := func(b []byte) (Element, *big.Int) {
				e, ok := m.SetBytesUnchecked(b)
				require.True(t, ok)
				return e, new(big.Int).Mod(new(big.Int).SetBytes(b), p)
			}
			equal := func(e Element, v *big.Int) bool {
				return bytes.Equal(m.Bytes(e), v.FillBytes(make([]byte, m.Size())))
			}

			parameters := gopter.DefaultTestParameters()
			parameters.MinSuccessfulTests = 64
			properties := gopter.NewProperties(parameters)

			properties.Property("add", prop.ForAll(func(ab, bb []byte) bool {
				a, av := decode(ab)
				b, bv := decode(bb)
				return equal(m.Add(a, b), av.Add(av, bv).Mod(av, p))
			}, genBytes(m.Size()), genBytes(m.Size())))

			properties.Property("sub", prop.ForAll(func(ab, bb []byte) bool {
				a, av := decode(ab)
				b, bv := decode(bb)
				return equal(m.Sub(a, b), av.Sub(av, bv).Mod(av, p))
			}, genBytes(m.Size()), genBytes(m.Size())))

			properties.Property("mul", prop.ForAll(func(ab, bb []byte) bool {
				a, av := decode(ab)
				b, bv := decode(bb)
				return equal(m.Mul(a, b), av.Mul(av, bv).Mod(av, p))
			}, genBytes(m.Size()), genBytes(m.Size())))

			properties.Property("square and double", prop.ForAll(func(ab []byte) bool {
				a, av := decode(ab)
				sq := new(big.Int).Mod(new(big.Int).Mul(av, av), p)
				dbl := new(big.Int).Mod(new(big.Int).Add(av, av), p)
				return equal(m.Square(a), sq) && equal(m.Double(a), dbl)
			}, genBytes(m.Size())))

			properties.Property("neg cancels", prop.ForAll(func(ab []byte) bool {
				a, _ := decode(ab)
				return !m.Nonzero(m.Add(a, m.Neg(a))).Bool()
			}, genBytes(m.Size())))

			properties.Property("parity", prop.ForAll(func(ab []byte) bool {
				a, av := decode(ab)
				return m.Parity(a) == uint64(av.Bit(0))
			}, genBytes(m.Size())))

			properties.TestingRun(t)
		})
	}
}

func TestInvert(t *testing.T) {
	for _, tm := range testModuli {
		t.Run(tm.name, func(t *testing.T) {
			m := MustModulus(tm.bits, tm.hex)

			parameters := gopter.DefaultTestParameters()
			parameters.MinSuccessfulTests = 16
			properties := gopter.NewProperties(parameters)
			properties.Property("a·a⁻¹ = 1", prop.ForAll(func(ab []byte) bool {
				a, ok := m.SetBytesUnchecked(ab)
				require.True(t, ok)
				if !m.Nonzero(a).Bool() {
					return true
				}
				return m.Eq(m.Mul(a, m.Invert(a)), m.One()).Bool()
			}, genBytes(m.Size())))
			properties.TestingRun(t)

			assert.Panics(t, func() { m.Invert(m.Zero()) })
		})
	}
}

func TestPowFermat(t *testing.T) {
	for _, tm := range testModuli {
		t.Run(tm.name, func(t *testing.T) {
			m := MustModulus(tm.bits, tm.hex)
			p := bigModulus(t, tm.hex)
			pm1 := new(big.Int).Sub(p, big.NewInt(1)).FillBytes(make([]byte, m.Size()))

			a := m.FromUint64(0xdeadbeef)
			assert.True(t, m.Eq(m.Pow(a, pm1), m.One()).Bool())
			assert.True(t, m.Eq(m.PowUint64(a, 6), m.Mul(m.Square(a), m.Square(m.Square(a)))).Bool())
			assert.True(t, m.Eq(m.PowUint64(a, 0), m.One()).Bool())
		})
	}
}

// TestSqrt exercises both strategies: the (p+1)/4 exponentiation for the
// 3 mod 4 primes and Tonelli-Shanks for p224 (1 mod 4).
func TestSqrt(t *testing.T) {
	cases := []struct {
		name       string
		bits       int
		hex        string
		nonresidue uint64 // 0 means use -1
	}{
		{"p192 (3 mod 4)", 192, "fffffffffffffffffffffffffffffffeffffffffffffffff", 0},
		{"secp256k1 (3 mod 4)", 256, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 0},
		{"p224 (1 mod 4)", 224, "ffffffffffffffffffffffffffffffff000000000000000000000001", 11},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := MustModulus(tc.bits, tc.hex)
			z := m.Neg(m.One())
			if tc.nonresidue != 0 {
				z = m.FromUint64(tc.nonresidue)
			}

			parameters := gopter.DefaultTestParameters()
			parameters.MinSuccessfulTests = 16
			properties := gopter.NewProperties(parameters)
			properties.Property("sqrt of a square", prop.ForAll(func(ab []byte) bool {
				x, ok := m.SetBytesUnchecked(ab)
				require.True(t, ok)
				a := m.Square(x)
				r, present := m.Sqrt(a)
				return present.Bool() && m.Eq(m.Square(r), a).Bool()
			}, genBytes(m.Size())))
			properties.Property("no sqrt of a non-residue", prop.ForAll(func(ab []byte) bool {
				x, ok := m.SetBytesUnchecked(ab)
				require.True(t, ok)
				if !m.Nonzero(x).Bool() {
					return true
				}
				_, present := m.Sqrt(m.Mul(m.Square(x), z))
				return !present.Bool()
			}, genBytes(m.Size())))
			properties.TestingRun(t)

			r, present := m.Sqrt(m.Zero())
			assert.True(t, present.Bool())
			assert.False(t, m.Nonzero(r).Bool())
		})
	}
}
