package field

import (
	"encoding/binary"
	"math/bits"
)

// This file implements computations in the field of integers modulo
// p = 2^127 - 1, a genuine Mersenne prime, written as p = 2^127 - mq
// with mq = 1 and held in a 128-bit (two-limb) container. The functions
// below use two 64-bit limbs and the fixed mq = 1, which collapses
// several multiplications by mq into plain additions.

const mq127 uint64 = 1

// gf127_add computes d = a + b mod p (result bounded < 2^128, not
// necessarily canonical).
func gf127_add(d, a, b *[2]uint64) {
	var cc uint64
	d[0], cc = bits.Add64(a[0], b[0], 0)
	d[1], cc = bits.Add64(a[1], b[1], cc)

	// If there is a carry, subtract 2*p = 2^128 - 2; i.e. add 2.
	d[0], cc = bits.Add64(d[0], 2&-cc, 0)
	d[1], cc = bits.Add64(d[1], 0, cc)
	d[0] += 2 & -cc
}

// gf127_sub computes d = a - b mod p.
func gf127_sub(d, a, b *[2]uint64) {
	var cc uint64
	d[0], cc = bits.Sub64(a[0], b[0], 0)
	d[1], cc = bits.Sub64(a[1], b[1], cc)

	// If there is a borrow, add 2*p = 2^128 - 2; i.e. subtract 2.
	d[0], cc = bits.Sub64(d[0], 2&-cc, 0)
	d[1], cc = bits.Sub64(d[1], 0, cc)
	d[0] -= 2 & -cc
}

// gf127_neg computes d = -a mod p.
func gf127_neg(d, a *[2]uint64) {
	var cc uint64
	d[0], cc = bits.Sub64(0xFFFFFFFFFFFFFFFE, a[0], 0)
	d[1], cc = bits.Sub64(0xFFFFFFFFFFFFFFFF, a[1], cc)

	// If there is a borrow, add back p.
	e := -cc
	d[0], cc = bits.Add64(d[0], e, 0)
	d[1], _ = bits.Add64(d[1], e>>1, cc)
}

// gf127_select sets d to a if ctl == 1, or to b if ctl == 0.
// ctl MUST be 0 or 1.
func gf127_select(d, a, b *[2]uint64, ctl uint64) {
	ma := -ctl
	mb := ^ma
	d[0] = (a[0] & ma) | (b[0] & mb)
	d[1] = (a[1] & ma) | (b[1] & mb)
}

// gf127_condneg sets d to -a if ctl == 1, or to a if ctl == 0.
func gf127_condneg(d, a *[2]uint64, ctl uint64) {
	var t [2]uint64
	gf127_neg(&t, a)
	gf127_select(d, &t, a, ctl)
}

// gf127_mul computes d = a*b mod p.
func gf127_mul(d, a, b *[2]uint64) {
	var t [4]uint64
	var hi, lo, cc uint64

	// a0*b0, a1*b1
	t[1], t[0] = bits.Mul64(a[0], b[0])
	t[3], t[2] = bits.Mul64(a[1], b[1])

	// a0*b1, a1*b0
	hi, lo = bits.Mul64(a[0], b[1])
	t[1], cc = bits.Add64(t[1], lo, 0)
	t[2], cc = bits.Add64(t[2], hi, cc)
	t[3] += cc
	hi, lo = bits.Mul64(a[1], b[0])
	t[1], cc = bits.Add64(t[1], lo, 0)
	t[2], cc = bits.Add64(t[2], hi, cc)
	t[3] += cc

	// Fold the upper half (t[2], t[3]) into the lower half, multiplied
	// by 2*mq = 2 (since 2^128 == 2 mod p).
	var h0, h1 uint64
	h0, lo = bits.Mul64(t[2], mq127<<1)
	t[0], cc = bits.Add64(t[0], lo, 0)
	h1, lo = bits.Mul64(t[3], mq127<<1)
	t[1], cc = bits.Add64(t[1], lo, cc)
	h1 += cc

	// h1 is folded again, together with the top bit of t[1] (which
	// represents 2^127 == mq == 1).
	h1 = (h1 << 1) | (t[1] >> 63)
	t[1] &= 0x7FFFFFFFFFFFFFFF
	d[0], cc = bits.Add64(t[0], h1*mq127, 0)
	d[1], _ = bits.Add64(t[1], h0, cc)
}

// gf127_sqr computes d = a^2 mod p.
func gf127_sqr(d, a *[2]uint64) {
	var t [4]uint64
	var hi, lo, cc uint64

	hi, lo = bits.Mul64(a[0], a[1])
	t[1] = lo << 1
	t[2] = (hi << 1) | (lo >> 63)
	t[3] = hi >> 63

	hi, t[0] = bits.Mul64(a[0], a[0])
	t[1], cc = bits.Add64(t[1], hi, 0)
	hi, lo = bits.Mul64(a[1], a[1])
	t[2], cc = bits.Add64(t[2], lo, cc)
	t[3], _ = bits.Add64(t[3], hi, cc)

	var h0, h1 uint64
	h0, lo = bits.Mul64(t[2], mq127<<1)
	t[0], cc = bits.Add64(t[0], lo, 0)
	h1, lo = bits.Mul64(t[3], mq127<<1)
	t[1], cc = bits.Add64(t[1], lo, cc)
	h1 += cc

	h1 = (h1 << 1) | (t[1] >> 63)
	t[1] &= 0x7FFFFFFFFFFFFFFF
	d[0], cc = bits.Add64(t[0], h1*mq127, 0)
	d[1], _ = bits.Add64(t[1], h0, cc)
}

// gf127_sqr_x computes d = a^(2^n) for n >= 0. This loops n times and
// is constant-time with regard to a and d, but not with regard to n
// (n is a public loop count in every caller in this package).
func gf127_sqr_x(d, a *[2]uint64, n uint) {
	if n == 0 {
		d[0], d[1] = a[0], a[1]
		return
	}
	gf127_sqr(d, a)
	for n -= 1; n != 0; n-- {
		gf127_sqr(d, d)
	}
}

// gf127_mul_smallk computes d = a*k mod p for a 32-bit constant k.
func gf127_mul_smallk(d, a *[2]uint64, k uint64) {
	hi0, lo0 := bits.Mul64(a[0], k)
	hi1, lo1 := bits.Mul64(a[1], k)

	var cc uint64
	t0 := lo0
	t1, cc := bits.Add64(hi0, lo1, 0)
	t2 := hi1 + cc

	// t2 < 2^33; fold it into t0 via the identity 2^128 == 2 (mod p).
	d0, cc2 := bits.Add64(t0, t2<<1, 0)
	d1, cc3 := bits.Add64(t1, 0, cc2)
	d[0] = d0 + 2*cc3
	d[1] = d1
}

// gf127_half computes d = a/2 mod p.
func gf127_half(d, a *[2]uint64) {
	e := -(a[0] & 1)
	d[0] = (a[0] >> 1) | (a[1] << 63)
	d[1] = (a[1] >> 1) + (e & 0x4000000000000000)
}

// gf127_lsh computes d = a*2^n mod p, for 1 <= n <= 15.
func gf127_lsh(d, a *[2]uint64, n uint) {
	g := a[0] >> (64 - n)
	lo := a[0] << n
	hi := (a[1] << n) | g
	g = a[1] >> (64 - n)

	// Fold the bits shifted out (g) together with the top bit of hi.
	g = (g << 1) | (hi >> 63)
	var cc uint64
	d[0], cc = bits.Add64(lo, g*mq127, 0)
	d[1] = (hi & 0x7FFFFFFFFFFFFFFF) + cc
}

// gf127_norm produces the canonical representative of a in [0, p).
func gf127_norm(d, a *[2]uint64) {
	// Fold the top bit.
	var cc uint64
	d[0], cc = bits.Add64(a[0], mq127&-(a[1]>>63), 0)
	d[1] = (a[1] & 0x7FFFFFFFFFFFFFFF) + cc

	// Subtract p.
	d[0], cc = bits.Sub64(d[0], 0xFFFFFFFFFFFFFFFF, 0)
	d[1], cc = bits.Sub64(d[1], 0x7FFFFFFFFFFFFFFF, cc)

	// If there is a borrow, add p back.
	e := -cc
	d[0], cc = bits.Add64(d[0], e, 0)
	d[1], _ = bits.Add64(d[1], e>>1, cc)
}

// gf127_iszero returns 1 if a == 0 mod p, 0 otherwise.
func gf127_iszero(a *[2]uint64) uint64 {
	// Below 2^128 there are three representations of zero: 0, p and
	// 2p; reducing to the canonical form first leaves only 0.
	var t [2]uint64
	gf127_norm(&t, a)
	t0 := t[0] | t[1]
	return 1 - ((t0 | -t0) >> 63)
}

// gf127_eq returns 1 if a == b mod p, 0 otherwise.
func gf127_eq(a, b *[2]uint64) uint64 {
	var t [2]uint64
	gf127_sub(&t, a, b)
	return gf127_iszero(&t)
}

// gf127_encode appends the 16-byte little-endian canonical encoding of
// a to dst and returns the extended slice.
func gf127_encode(dst []byte, a *[2]uint64) []byte {
	len1 := len(dst)
	len2 := len1 + 16
	var b2 []byte
	if cap(dst) >= len2 {
		b2 = dst[:len2]
	} else {
		b2 = make([]byte, len2)
		copy(b2, dst)
	}
	out := b2[len1:]
	var t [2]uint64
	gf127_norm(&t, a)
	binary.LittleEndian.PutUint64(out, t[0])
	binary.LittleEndian.PutUint64(out[8:], t[1])
	return b2
}

// gf127_decode loads a field element from 16 bytes. Per fp_load's
// contract, the top bit of the high limb is forced to zero before the
// range check, so every 127-bit payload below p is accepted. Returns 1
// on success, or 0 (with d cleared) if the payload equals p.
func gf127_decode(d *[2]uint64, src []byte) uint64 {
	d[0] = binary.LittleEndian.Uint64(src)
	d[1] = binary.LittleEndian.Uint64(src[8:]) & 0x7FFFFFFFFFFFFFFF

	_, cc := bits.Sub64(d[0], 0xFFFFFFFFFFFFFFFF, 0)
	_, cc = bits.Sub64(d[1], 0x7FFFFFFFFFFFFFFF, cc)
	d[0] &= -cc
	d[1] &= -cc
	return cc
}

// gf127_decodeReduce loads a field element from an arbitrary number of
// little-endian bytes, reducing modulo p via Horner's method and the
// identity 2^128 == 2 (mod p). This process cannot fail.
func gf127_decodeReduce(d *[2]uint64, src []byte) {
	n := len(src)
	j := n & 15
	if j == 0 && n != 0 {
		j = 16
	}
	n -= j
	var buf [16]byte
	copy(buf[:], src[n:])
	t := [2]uint64{
		binary.LittleEndian.Uint64(buf[:]),
		binary.LittleEndian.Uint64(buf[8:]),
	}

	for n > 0 {
		n -= 16
		var dbl, chunk [2]uint64
		gf127_add(&dbl, &t, &t)
		chunk[0] = binary.LittleEndian.Uint64(src[n:])
		chunk[1] = binary.LittleEndian.Uint64(src[n+8:])
		gf127_add(&t, &dbl, &chunk)
	}
	gf127_norm(d, &t)
}

// gf127_inv computes d = a^(p-2) mod p via a fixed addition chain for
// the exponent p - 2 = 2^127 - 3. If a == 0, d is set to 0 (the chain
// below is a pure sequence of squarings and multiplications, which
// maps 0 to 0 regardless of exponent).
//
// p - 2 = 4*(2^125 - 1) + 1, so it suffices to build e125 = a^(2^125-1)
// by the standard doubling construction and finish with e125^4 * a.
func gf127_inv(d, a *[2]uint64) {
	var z2, z4, z8, z16, z32, z64, e96, e112, e120, e124, e125, t [2]uint64

	gf127_sqr(&t, a)
	gf127_mul(&z2, &t, a) // a^(2^2-1)

	gf127_sqr_x(&t, &z2, 2)
	gf127_mul(&z4, &t, &z2) // a^(2^4-1)

	gf127_sqr_x(&t, &z4, 4)
	gf127_mul(&z8, &t, &z4) // a^(2^8-1)

	gf127_sqr_x(&t, &z8, 8)
	gf127_mul(&z16, &t, &z8) // a^(2^16-1)

	gf127_sqr_x(&t, &z16, 16)
	gf127_mul(&z32, &t, &z16) // a^(2^32-1)

	gf127_sqr_x(&t, &z32, 32)
	gf127_mul(&z64, &t, &z32) // a^(2^64-1)

	gf127_sqr_x(&t, &z64, 32)
	gf127_mul(&e96, &t, &z32) // a^(2^96-1)

	gf127_sqr_x(&t, &e96, 16)
	gf127_mul(&e112, &t, &z16) // a^(2^112-1)

	gf127_sqr_x(&t, &e112, 8)
	gf127_mul(&e120, &t, &z8) // a^(2^120-1)

	gf127_sqr_x(&t, &e120, 4)
	gf127_mul(&e124, &t, &z4) // a^(2^124-1)

	gf127_sqr_x(&t, &e124, 1)
	gf127_mul(&e125, &t, a) // a^(2^125-1)

	gf127_sqr_x(&t, &e125, 2)
	gf127_mul(d, &t, a) // a^(4*(2^125-1)+1) == a^(p-2)
}
