package p192k1

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type katEntry struct {
	k, x, y string
}

// Scalar multiples of the generator, including n-2 and n-1.
var generatorKATs = []katEntry{
	{"000000000000000000000000000000000000000000000001", "db4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d", "9b2f2f6d9c5628a7844163d015be86344082aa88d95e2f9d"},
	{"000000000000000000000000000000000000000000000002", "f091cf6331b1747684f5d2549cd1d4b3a8bed93b94f93cb6", "fd7af42e1e7565a02e6268661c5e42e603da2d98a18f2ed5"},
	{"000000000000000000000000000000000000000000000003", "6e43b7dcae2fd5e0bf2a1ba7615ca3b9065487c9a67b4583", "c48dcea47ae08e84d5fedc3d09e4c19606a290f7a19a6a58"},
	{"000000000000000000000000000000000000000000000004", "ea525dd5a1353762a14e9e78b9063316d1f2d5e792f87862", "a936d583530982690c445427cdf2c5b0bb1c88749247b02e"},
	{"000000000000000000000000000000000000000000000005", "3cd61e370d02ca0687c0b5f7ebf6d0373f4dd0ccccb7cc2d", "2c4befd9b02f301eb4014504f0533aa7eb19e9ea56441f78"},
	{"000000000000000000000000000000000000000000000006", "d5cfbcca993f384a5eabc46b81a39a40cdd39ec2a6c44ee9", "d2b873da35309b7dac745267c7da4467d42115d5efd0922f"},
	{"00000000000000000000000000000000000000000000000a", "598955b973468f82ee734058feef3378740882410fa69ec1", "0376625e46eea0c9171b92a2e52410c37b93f15c18e4d8a9"},
	{"000000000000000000000000000000000000000000000014", "9c98bfeee470b7095592668d77665b4c0b71ad5d4b7d7fe9", "b7b807acf5c1f753796a1982eca001c8772bc43c9987bf45"},
	{"00000000000000000000000000000000018ebbb95eed0e13", "a2a8cd70d36a98783e80adf17d0ffc1fc4506fa5f7ccb3a0", "3231f5869b77dbce773292ba9d720f4760454c8732601c29"},
	{"000000000000000000000000000000000123456789abcdef", "ae33dd92adf41c78fd6823fabb298ba17a0b7f6360bc0bfc", "bebb04cd87be12bf762f00441f75ea57d3ed1fcd1c7291da"},
	{"fffffffffffffffffffffffe26f2fc170f69466a74defd8b", "f091cf6331b1747684f5d2549cd1d4b3a8bed93b94f93cb6", "02850bd1e18a9a5fd19d9799e3a1bd19fc25d2665e70bf62"},
	{"fffffffffffffffffffffffe26f2fc170f69466a74defd8c", "db4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d", "64d0d09263a9d7587bbe9c2fea4179cbbf7d557626a1be9a"},
}

func mustHexT(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestGeneratorKATs(t *testing.T) {
	g := Generator()
	for _, kat := range generatorKATs {
		q := g.ScalarMultBytes(mustHexT(t, kat.k))
		a, ok := q.Affine()
		require.True(t, ok, "k=%s gave the identity", kat.k)
		x, y := a.Coordinates()
		assert.Equal(t, kat.x, x.String(), "x for k=%s", kat.k)
		assert.Equal(t, kat.y, y.String(), "y for k=%s", kat.k)
	}
}

func TestGeneratorOnCurve(t *testing.T) {
	x, y := AffineGenerator().Coordinates()
	_, ok := FromCoordinates(x, y)
	require.True(t, ok)
	_, ok = FromCoordinates(x, y.Add(NewFieldElement(1)))
	require.False(t, ok)
}

func TestOrderAnnihilatesGenerator(t *testing.T) {
	q := Generator().ScalarMultBytes(Order())
	assert.True(t, q.IsInfinity())
}

func TestGroupLaws(t *testing.T) {
	g := Generator()
	g2 := g.Double()
	g3 := g2.Add(g)
	assert.True(t, g3.Add(g).Equal(g2.Double()), "3G+G != 2·2G")
	assert.True(t, g3.Sub(g).Equal(g2), "3G-G != 2G")
	assert.True(t, g.Add(g.Neg()).IsInfinity(), "G-G is not the identity")
	assert.True(t, g.Add(Infinity()).Equal(g), "G+0 != G")
	assert.True(t, Infinity().Add(g).Equal(g), "0+G != G")
	// Equivalent operands must take the doubling path.
	assert.True(t, g.Add(g).Equal(g2), "G+G != 2G")
}

func TestAffineArithmetic(t *testing.T) {
	g := AffineGenerator()
	g2 := g.Double()
	g3 := g2.Add(g)

	p2, ok := Generator().Double().Affine()
	require.True(t, ok)
	assert.True(t, g2.Equal(p2))
	p3, ok := Generator().Double().Add(Generator()).Affine()
	require.True(t, ok)
	assert.True(t, g3.Equal(p3))
	assert.True(t, g.Neg().Neg().Equal(g))
}

func TestNormalize(t *testing.T) {
	p := Generator().ScalarMult(NewScalar(20))
	q := p
	q.Normalize()
	assert.True(t, p.Equal(q))
	a, ok := q.Affine()
	require.True(t, ok)
	x, _ := a.Coordinates()
	assert.Equal(t, generatorKATs[7].x, x.String())
}

func TestCompressRoundTrip(t *testing.T) {
	p := AffineGenerator()
	for i := 0; i < 6; i++ {
		x, sign := p.Compress()
		q, ok := Decompress(x, sign)
		require.True(t, ok)
		assert.True(t, p.Equal(q))

		// The mirrored point shares x and flips the sign.
		nx, nsign := p.Neg().Compress()
		assert.Equal(t, x.String(), nx.String())
		assert.NotEqual(t, sign, nsign)

		p = p.Double()
	}
}

func TestFieldElementCodec(t *testing.T) {
	raw := bytes.Repeat([]byte{0xff}, FieldElementSize)
	_, ok := FieldElementFromBytes(raw)
	assert.False(t, ok, "non-canonical encoding accepted")
	e, ok := FieldElementFromBytesUnchecked(raw)
	require.True(t, ok)
	assert.False(t, e.IsZero())

	_, ok = FieldElementFromBytes(raw[1:])
	assert.False(t, ok, "short encoding accepted")

	rt, ok := FieldElementFromBytes(e.Bytes())
	require.True(t, ok)
	assert.True(t, rt.CtEq(e).Bool())
}

func TestFieldElementArithmetic(t *testing.T) {
	a := genX
	assert.True(t, a.Mul(a.Inverse()).CtEq(NewFieldElement(1)).Bool())
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, a.Add(a.Neg()).IsZero())
	assert.True(t, a.Double().CtEq(a.Add(a)).Bool())
	assert.True(t, a.Cube().CtEq(a.Square().Mul(a)).Bool())
	assert.True(t, a.Pow(5).CtEq(a.Square().Square().Mul(a)).Bool())
	assert.Panics(t, func() { FieldElement{}.Inverse() })
}

func TestFieldSqrt(t *testing.T) {
	x := NewFieldElement(9)
	r, ok := x.Sqrt().Into()
	require.True(t, ok)
	assert.True(t, r.Square().CtEq(x).Bool())

	// 3 is the smallest quadratic non-residue of this field.
	_, ok = NewFieldElement(3).Sqrt().Into()
	assert.False(t, ok)
}

func TestScalarInverse(t *testing.T) {
	k, ok := ScalarFromBytes(mustHexT(t, "0000000000000000fedcba9876543210fedcba9876543210"))
	require.True(t, ok)
	kinv := k.Inverse()
	assert.Equal(t, "f8924cd1a02dc9b82ecddc9315054611508c3d5a3b762cb8", kinv.String())
	assert.True(t, k.Mul(kinv).CtEq(NewScalar(1)).Bool())
	assert.Panics(t, func() { Scalar{}.Inverse() })
}

func TestScalarArithmetic(t *testing.T) {
	k1, ok := ScalarFromBytes(mustHexT(t, "00000000000000001234567890abcdef1122334455667788"))
	require.True(t, ok)
	k2, ok := ScalarFromBytes(mustHexT(t, "00000000000000000099aabbccddeeff0055667788990011"))
	require.True(t, ok)
	assert.Equal(t, "000000000000000012ce01345d89bcee117799bbddff7799", k1.Add(k2).String())
	assert.Equal(t, "5c0b84200c18717cd6e63a69928794272855800c20325ccd", k1.Mul(k2).String())
	assert.True(t, k1.Sub(k2).Add(k2).CtEq(k1).Bool())
	assert.True(t, k1.Square().CtEq(k1.Mul(k1)).Bool())

	_, ok = ScalarFromBytes(Order())
	assert.False(t, ok, "the order itself must be rejected")
}

func TestScalarMultOperandOrder(t *testing.T) {
	k := NewScalar(20)
	assert.True(t, Generator().ScalarMult(k).Equal(k.MulPoint(Generator())))
	assert.True(t, ScalarBaseMult(k).Equal(Generator().ScalarMult(k)))
}

func TestScalarMultHomomorphism(t *testing.T) {
	k1, ok := ScalarFromBytes(mustHexT(t, "00000000000000001234567890abcdef1122334455667788"))
	require.True(t, ok)
	k2, ok := ScalarFromBytes(mustHexT(t, "00000000000000000099aabbccddeeff0055667788990011"))
	require.True(t, ok)
	g := Generator()

	sum := g.ScalarMult(k1).Add(g.ScalarMult(k2))
	assert.True(t, g.ScalarMult(k1.Add(k2)).Equal(sum), "(k1+k2)·G != k1·G + k2·G")
	prod := g.ScalarMult(k1).ScalarMult(k2)
	assert.True(t, g.ScalarMult(k1.Mul(k2)).Equal(prod), "(k1·k2)·G != k2·(k1·G)")

	assert.True(t, g.ScalarMult(NewScalar(0)).IsInfinity(), "0·G is not the identity")
	assert.True(t, g.ScalarMult(NewScalar(1)).Equal(g), "1·G != G")
}

func TestScalarInverseUndoesMult(t *testing.T) {
	k, ok := ScalarFromBytes(mustHexT(t, "0000000000000000fedcba9876543210fedcba9876543210"))
	require.True(t, ok)
	g := Generator()
	assert.True(t, g.ScalarMult(k).ScalarMult(k.Inverse()).Equal(g))
}
