package gls254

import (
	"math/bits"

	"gls254/internal/scalar"
)

// Scalar-field reduction modulo q = 2^252 - c, with c a 127-bit constant
// (the same shape as do255e's r = 2^254 - r0 scalar field, just with a
// 252-bit modulus instead of a 254-bit one; the fold identities below
// are 2^252 = c and 2^256 = 16*c mod q, generalizing do255e's
// 2^254 = r0 and 2^256 = 4*r0 mod r by the exponent shift from 254 to 252).
const qcLo uint64 = 0x3164971C4F61FE5B
const qcHi uint64 = 0x59D9EBEB3F23782C

// qReduce256PartialWithExtra reduces a 256-bit value (plus ah extra high
// bits beyond the 256th) modulo q; output fits on 253 bits and is well
// below 2*q.
func qReduce256PartialWithExtra(d, a *[4]uint64, ah uint64) {
	ah = (ah << 4) | (a[3] >> 60)

	u1, u0 := bits.Mul64(ah, qcLo)
	u2, lo := bits.Mul64(ah, qcHi)
	var cc uint64
	u1, cc = bits.Add64(u1, lo, 0)
	u2 += cc

	d[0], cc = bits.Add64(a[0], u0, 0)
	d[1], cc = bits.Add64(a[1], u1, cc)
	d[2], cc = bits.Add64(a[2], u2, cc)
	d[3] = (a[3] & 0x0FFFFFFFFFFFFFFF) + cc
}

func qReduce256Partial(d, a *[4]uint64) {
	qReduce256PartialWithExtra(d, a, 0)
}

// qReduce256Finish performs the final conditional subtraction of q on a
// partially reduced value (below 2*q).
func qReduce256Finish(d, a *[4]uint64) {
	var t [4]uint64
	var cc uint64
	t[0], cc = bits.Add64(a[0], qcLo, 0)
	t[1], cc = bits.Add64(a[1], qcHi, cc)
	t[2], cc = bits.Add64(a[2], 0, cc)
	t[3], cc = bits.Add64(a[3], 0, cc)
	t[3] -= 0x1000000000000000

	m := -(t[3] >> 63)
	for i := 0; i < 4; i++ {
		d[i] = t[i] ^ (m & (a[i] ^ t[i]))
	}
}

// qReduce384Partial reduces a 384-bit value (six limbs) modulo q,
// producing a result fitting on 253 bits and well below 2*q.
func qReduce384Partial(d *[4]uint64, a *[6]uint64) {
	var c0, c1 [2]uint64
	var tw [4]uint64
	c0[0] = qcLo
	c0[1] = qcHi
	c1[0] = a[4]
	c1[1] = a[5]
	scalar.Mul128x128(&tw, &c0, &c1)

	// 2^256 = 16*c mod q: multiply tw by 16 (shift left 4), tracking
	// the nibble that spills past the top limb in th.
	var th uint64
	th = tw[3] >> 60
	tw[3] = (tw[3] << 4) | (tw[2] >> 60)
	tw[2] = (tw[2] << 4) | (tw[1] >> 60)
	tw[1] = (tw[1] << 4) | (tw[0] >> 60)
	tw[0] = tw[0] << 4

	var cc uint64
	tw[0], cc = bits.Add64(tw[0], a[0], 0)
	tw[1], cc = bits.Add64(tw[1], a[1], cc)
	tw[2], cc = bits.Add64(tw[2], a[2], cc)
	tw[3], cc = bits.Add64(tw[3], a[3], cc)
	th += cc

	qReduce256PartialWithExtra(d, &tw, th)
}

// qReduceFull reduces a 256-bit value to its canonical representative
// modulo q (the Reduce256 shape scalar.Encode/scalar.ToBytes need).
func qReduceFull(d, a *[4]uint64) {
	var t [4]uint64
	qReduce256Partial(&t, a)
	qReduce256Finish(d, &t)
}

// MulModQ computes out = x*y + z (mod q): 256x256 schoolbook
// multiplication into 512 bits, addition of z, then two rounds of
// 384-bit partial reduction (mirroring scalar.Mul's composition)
// followed by a final conditional subtraction of q.
func MulModQ(x, y, z, out *[4]uint64) {
	var p [8]uint64
	scalar.Mul256x256(&p, x, y)

	var cc uint64
	p[0], cc = bits.Add64(p[0], z[0], 0)
	p[1], cc = bits.Add64(p[1], z[1], cc)
	p[2], cc = bits.Add64(p[2], z[2], cc)
	p[3], cc = bits.Add64(p[3], z[3], cc)
	for i := 4; i < 8; i++ {
		p[i], cc = bits.Add64(p[i], 0, cc)
	}

	var t6 [6]uint64
	var d [4]uint64
	copy(t6[:], p[2:8])
	qReduce384Partial(&d, &t6)
	t6[0] = p[0]
	t6[1] = p[1]
	copy(t6[2:], d[:])
	qReduce384Partial(&d, &t6)

	qReduce256Finish(out, &d)
}
