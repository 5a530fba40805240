package gls254

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarEncodeDecodeRoundTrip(t *testing.T) {
	var rng testPrng
	rng.init("test scalar encode/decode round trip")

	for i := 0; i < 2000; i++ {
		var raw [4]uint64
		rng.mkScalar(&raw)
		var s Scalar
		s.DecodeReduce(u64sToBytes(&raw))

		enc := s.Bytes()
		var back Scalar
		code := back.Decode(enc[:])
		require.NotEqual(t, -1, code, "canonical encoding must always decode")
		require.EqualValues(t, 1, s.Equal(&back), "decode(encode(s)) must equal s")
	}
}

func TestScalarDecodeRejectsOutOfRange(t *testing.T) {
	// ecQ itself is not a valid representative (scalars must be < q).
	var s Scalar
	code := s.Decode(u64sToBytes(&ecQ))
	require.Equal(t, -1, code, "q itself must be rejected")
	require.Equal(t, Scalar{0, 0, 0, 0}, s, "decode failure forces s to zero")
}

func TestScalarArithmeticAgreesWithBigInt(t *testing.T) {
	var rng testPrng
	rng.init("test scalar arithmetic vs big.Int")

	for i := 0; i < 2000; i++ {
		var araw, braw [4]uint64
		rng.mkScalar(&araw)
		rng.mkScalar(&braw)
		var a, b Scalar
		a.DecodeReduce(u64sToBytes(&araw))
		b.DecodeReduce(u64sToBytes(&braw))

		aBig := limbsToBigLE(a[:])
		bBig := limbsToBigLE(b[:])

		var sum, diff, prod Scalar
		sum.Add(&a, &b)
		diff.Sub(&a, &b)
		prod.Mul(&a, &b)

		wantSum := new(big.Int).Mod(new(big.Int).Add(aBig, bBig), qBig)
		wantDiff := new(big.Int).Mod(new(big.Int).Sub(aBig, bBig), qBig)
		wantProd := new(big.Int).Mod(new(big.Int).Mul(aBig, bBig), qBig)

		require.Equal(t, wantSum, new(big.Int).Mod(limbsToBigLE(sum[:]), qBig), "a+b mod q")
		require.Equal(t, wantDiff, new(big.Int).Mod(limbsToBigLE(diff[:]), qBig), "a-b mod q")
		require.Equal(t, wantProd, new(big.Int).Mod(limbsToBigLE(prod[:]), qBig), "a*b mod q")
	}
}

func TestPointCompressDecompressRoundTrip(t *testing.T) {
	var rng testPrng
	rng.init("test point compress/decompress round trip")

	var g Point
	g.Generator()

	for i := 0; i < 300; i++ {
		var k [4]uint64
		rng.mkScalar(&k)
		P := Mul(&k, &g)

		enc := P.Compress()
		var Q Point
		ok := Q.Decompress(enc[:])
		require.EqualValues(t, 1, ok, "decompress of a valid encoding must succeed")
		require.EqualValues(t, 1, P.Equal(&Q), "decompress(compress(P)) must equal P")
	}
}

func u64sToBytes(a *[4]uint64) []byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			out[8*i+j] = byte(a[i] >> uint(8*j))
		}
	}
	return out[:]
}
