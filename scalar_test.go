package gls254

import (
	"crypto/sha512"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// testPrng is a sha512-based reproducible PRNG, local to this package's
// tests.
type testPrng struct {
	buf [64]byte
	ptr int
}

func (p *testPrng) init(seed string) {
	hv := sha512.Sum512([]byte(seed))
	copy(p.buf[:], hv[:])
	p.ptr = 0
}

func (p *testPrng) generate(d []byte) {
	n := len(d)
	for n > 0 {
		c := 32 - p.ptr
		if c == 0 {
			hv := sha512.Sum512(p.buf[:])
			copy(p.buf[:], hv[:])
			p.ptr = 0
			c = 32
		}
		if c > n {
			c = n
		}
		copy(d, p.buf[p.ptr:p.ptr+c])
		d = d[c:]
		n -= c
		p.ptr += c
	}
}

func (p *testPrng) mkScalar(d *[4]uint64) {
	var bb [32]byte
	p.generate(bb[:])
	for i := 0; i < 4; i++ {
		d[i] = binary.LittleEndian.Uint64(bb[8*i:])
	}
}

func limbsToBigLE(a []uint64) *big.Int {
	v := new(big.Int)
	for i := len(a) - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(a[i]))
	}
	return v
}

var qBig = limbsToBigLE(ecQ[:])
var lambdaBig = limbsToBigLE(lambdaQ[:])

func TestMaskScalar(t *testing.T) {
	var rng testPrng
	rng.init("test mask_scalar")
	for i := 0; i < 2000; i++ {
		var k, orig [4]uint64
		rng.mkScalar(&k)
		orig = k
		parity := MaskScalar(&k)

		require.LessOrEqual(t, k[3], uint64(0x0FFFFFFFFFFFFFFF), "bits above 251 must be cleared")
		require.Equal(t, uint64(0), k[0]&1, "bit 0 must be cleared")
		require.Equal(t, orig[0]&1, parity, "returned parity must be the original bit 0")
	}
}

func TestDecomposeReconstructsScalar(t *testing.T) {
	var rng testPrng
	rng.init("test decompose")
	for i := 0; i < 5000; i++ {
		var k [4]uint64
		rng.mkScalar(&k)
		MaskScalar(&k) // Decompose expects a fully-reduced, masked input.
		// Reduce k below q explicitly via MulModQ(k, 1, 0).
		one := [4]uint64{1, 0, 0, 0}
		zero := [4]uint64{0, 0, 0, 0}
		var kk [4]uint64
		MulModQ(&k, &one, &zero, &kk)
		MaskScalar(&kk)

		k1, k1Neg, k2, k2Neg := Decompose(&kk)

		k1Big := limbsToBigLE(k1[:])
		k2Big := limbsToBigLE(k2[:])
		if k1Neg == 1 {
			k1Big.Neg(k1Big)
		}
		if k2Neg == 1 {
			k2Big.Neg(k2Big)
		}

		got := new(big.Int).Mul(k2Big, lambdaBig)
		got.Add(got, k1Big)
		got.Mod(got, qBig)
		if got.Sign() < 0 {
			got.Add(got, qBig)
		}

		want := new(big.Int).Mod(limbsToBigLE(kk[:]), qBig)
		require.Equal(t, want, got, "k1 + k2*lambda must equal k mod q")

		bound := new(big.Int).Lsh(big.NewInt(1), 127)
		require.True(t, new(big.Int).Abs(k1Big).Cmp(bound) < 0, "k1 magnitude must fit in 127 bits")
		require.True(t, new(big.Int).Abs(k2Big).Cmp(bound) < 0, "k2 magnitude must fit in 127 bits")
	}
}
