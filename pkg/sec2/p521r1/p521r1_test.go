package p521r1

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
	{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001", "00c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66", "011839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650"},
	{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000002", "00433c219024277e7e682fcb288148c282747403279b1ccc06352c6e5505d769be97b3b204da6ef55507aa104a3a35c5af41cf2fa364d60fd967f43e3933ba6d783d", "00f4bb8cc7f86db26700a7f3eceeeed3f0b5c6b5107c4da97740ab21a29906c42dbbb3e377de9f251f6b93937fa99a3248f4eafcbe95edc0f4f71be356d661f41b02"},
	{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000003", "01a73d352443de29195dd91d6a64b5959479b52a6e5b123d9ab9e5ad7a112d7a8dd1ad3f164a3a4832051da6bd16b59fe21baeb490862c32ea05a5919d2ede37ad7d", "013e9b03b97dfa62ddd9979f86c6cab814f2f1557fa82a9d0317d2f8ab1fa355ceec2e2dd4cf8dc575b02d5aced1dec3c70cf105c9bc93a590425f588ca1ee86c0e5"},
	{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000004", "0035b5df64ae2ac204c354b483487c9070cdc61c891c5ff39afc06c5d55541d3ceac8659e24afe3d0750e8b88e9f078af066a1d5025b08e5a5e2fbc87412871902f3", "0082096f84261279d2b673e0178eb0b4abb65521aef6e6e32e1b5ae63fe2f19907f279f283e54ba385405224f750a95b85eebb7faef04699d1d9e21f47fc346e4d0d"},
	{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000005", "00652bf3c52927a432c73dbc3391c04eb0bf7a596efdb53f0d24cf03dab8f177ace4383c0c6d5e3014237112feaf137e79a329d7e1e6d8931738d5ab5096ec8f3078", "015be6ef1bdd6601d6ec8a2b73114a8112911cd8fe8e872e0051edd817c9a0347087bb6897c9072cf374311540211cf5ff79d1f007257354f7f8173cc3e8deb090cb"},
	{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000006", "01ee4569d6cdb59219532eff34f94480d195623d30977fd71cf3981506ade4ab01525fbcca16153f7394e0727a239531be8c2f66e95657f380ae23731bedf79206b9", "01de0255ad0cc64f586ae2dd270546e3b1112aabbb73da5a808e7240a926201a8a96cab72d0e56648c9df96c984de274f2203dc7b8b55ca0dade1eaccd7858d44f17"},
	{"00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000a", "0190eb8f22bda61f281dfcfe7bb6721ec4cd901d879ac09ac7c34a9246b11ada8910a2c7c178fcc263299daa4da9842093f37c2e411f1a8e819a87ff09a04f2f3320", "01eb5d96b8491614ba9dbaeab3b0ca2ba760c2eeb2144251b20ba97fd78a62ef62d2bf5349d44d9864bb536f6163dc57ebeff3689639739faa172954bc98135ec759"},
	{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000014", "018bdd7f1b889598a4653deeae39cc6f8cc2bd767c2ab0d93fb12e968fbed342b51709506339cb1049cb11dd48b9bdb3cd5cad792e43b74e16d8e2603bfb11b0344f", "00c5aadbe63f68ca5b6b6908296959bf0af89ee7f52b410b9444546c550952d311204da3bdddc6d4eae7edfaec1030da8ef837ccb22eee9cfc94dd3287fed0990f94"},
	{"00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000018ebbb95eed0e13", "01650048fbd63e8c30b305bf36bd7643b91448ef2206e8a0ca84a140789a99b0423a0a2533ea079ca7e049843e69e5fa2c25a163819110cec1a30acbbb3a422a40d8", "010c9c64a0e0db6052dbc5646687d06dece5e9e0703153efe9cb816fe025e85354d3c5f869d6db3f4c0c01b5f97919a5e72ceebe03042e5aa99112691cffc2724828"},
	{"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000123456789abcdef", "004e54b334cb2a1e40cc9712808f78e4adf7e1cd31acb0bc0d969efdfa82de8fbada7ca6c3e22ba5d47b5dc024e93ffd8c2cb3f1f88d3224050914a8ad9dcd593a59", "010b8759ce9c47342e92da648fd25aeaadd28c3f6cfad8c5fa1beec990ca9e7fbf0939bf66c1b8d9918db4795980329872afcf99e0f774f84b144bfa60e5587d7abd"},
	{"01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386407", "00433c219024277e7e682fcb288148c282747403279b1ccc06352c6e5505d769be97b3b204da6ef55507aa104a3a35c5af41cf2fa364d60fd967f43e3933ba6d783d", "010b44733807924d98ff580c1311112c0f4a394aef83b25688bf54de5d66f93bd2444c1c882160dae0946c6c805665cdb70b1503416a123f0b08e41ca9299e0be4fd"},
	{"01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386408", "00c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66", "00e7c6d6958765c43ffba375a04bd382e426670abbb6a864bb97e85042e8d8c199d368118d66a10bd9bf3aaf46fec052f89ecac38f795d8d3dbf77416b89602e99af"},
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
	k, ok := ScalarFromBytes(mustHexT(t, "0000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000fedcba9876543210fedcba9876543210"))
	require.True(t, ok)
	kinv := k.Inverse()
	assert.Equal(t, "00218a9480984965a8cb7de832317b52e93393c5c1093fc47a15a1d264728e4c2364c435aa4b44a6e1fc5da1b6e145f1e98a95af0dad1251d3914b1502c6a2b66934", kinv.String())
	assert.True(t, k.Mul(kinv).CtEq(NewScalar(1)).Bool())
	assert.Panics(t, func() { Scalar{}.Inverse() })
}

func TestScalarArithmetic(t *testing.T) {
	k1, ok := ScalarFromBytes(mustHexT(t, "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001234567890abcdef1122334455667788"))
	require.True(t, ok)
	k2, ok := ScalarFromBytes(mustHexT(t, "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000099aabbccddeeff0055667788990011"))
	require.True(t, ok)
	assert.Equal(t, "000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000012ce01345d89bcee117799bbddff7799", k1.Add(k2).String())
	assert.Equal(t, "00000000000000000000000000000000000000000000000000000000000000000000000aed6bca472de75c0b84200c04404274f5beea3200ffd54ae4a17f5c15f008", k1.Mul(k2).String())
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
	k1, ok := ScalarFromBytes(mustHexT(t, "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001234567890abcdef1122334455667788"))
	require.True(t, ok)
	k2, ok := ScalarFromBytes(mustHexT(t, "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000099aabbccddeeff0055667788990011"))
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
	k, ok := ScalarFromBytes(mustHexT(t, "0000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000fedcba9876543210fedcba9876543210"))
	require.True(t, ok)
	g := Generator()
	assert.True(t, g.ScalarMult(k).ScalarMult(k.Inverse()).Equal(g))
}
