package field

import (
	"crypto/sha512"
	"encoding/binary"
	"math/big"
)

// Custom PRNG (based on SHA-512) for reproducible tests, sized for this
// field's 2-limb (127-bit) elements rather than a 4-limb field.

type prng struct {
	buf [64]byte
	ptr int
}

func (p *prng) init(seed string) {
	hv := sha512.Sum512([]byte(seed))
	copy(p.buf[:], hv[:])
	p.ptr = 0
}

func (p *prng) generate(d []byte) {
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

// mkfp fills a with a random 128-bit value (not necessarily canonical).
func (p *prng) mkfp(a *Fp) {
	var bb [16]byte
	p.generate(bb[:])
	a[0] = binary.LittleEndian.Uint64(bb[0:8])
	a[1] = binary.LittleEndian.Uint64(bb[8:16])
}

func (p *prng) mkfp2(a *Fp2) {
	p.mkfp(&a.A)
	p.mkfp(&a.B)
}

var fpModulus = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

// fpToBig reduces a (an arbitrary 128-bit value, not necessarily
// canonical) modulo p and returns it as a big.Int.
func fpToBig(a *Fp) *big.Int {
	x := new(big.Int).SetUint64(a[1])
	x.Lsh(x, 64)
	x.Or(x, new(big.Int).SetUint64(a[0]))
	x.Mod(x, fpModulus)
	return x
}
