package gls254

import (
	"math/bits"

	"gls254/internal/scalar"
)

// MaskScalar forces k into the canonical form expected by the
// endomorphism-based multipliers: bits above 251 are cleared (so k < 2^252)
// and bit 0 is cleared (k is made even), returning the discarded bit so the
// caller can fold it back in (Mul/Simul add back parity*P at the end of
// the main loop, see DESIGN.md; MulGen does not use MaskScalar).
func MaskScalar(k *[4]uint64) (parity uint64) {
	parity = k[0] & 1
	k[3] &= 0x0FFFFFFFFFFFFFFF
	k[0] &= ^uint64(1)
	return
}

// qHalfLo, qHalfHi: (q-1)/2, used as the rounding constant in divRoundedQ.
const qHalfLo0 uint64 = 0xE74DB471D84F00D2
const qHalfLo1 uint64 = 0xD3130A0A606E43E9
const qHalfHi0 uint64 = 0xFFFFFFFFFFFFFFFF
const qHalfHi1 uint64 = 0x07FFFFFFFFFFFFFF

// isNonZero returns 1 if x != 0, 0 otherwise (constant-time).
func isNonZero(x uint64) uint64 {
	return (x | -x) >> 63
}

// divRoundedQ computes d = round(k*e / q) for k fully reduced mod q
// (hence < 2^252) and e a positive constant up to 127 bits. This follows
// do255e's MulDivrRounded shape (estimate the quotient from a fixed-width
// right shift, then correct), but do255e's e is narrow enough relative to
// its modulus that the estimate is always a one-sided overshoot corrected
// by a single decrement; here e can be up to half the modulus' bit width,
// so the estimate can land either side of the true rounded quotient and
// the correction needs two threshold checks instead of one (see
// DESIGN.md).
func divRoundedQ(d *[2]uint64, k *[4]uint64, e *[2]uint64) {
	var z [6]uint64
	scalar.Mul256x128(&z, k, e)

	var cc uint64
	z[0], cc = bits.Add64(z[0], qHalfLo0, 0)
	z[1], cc = bits.Add64(z[1], qHalfLo1, cc)
	z[2], cc = bits.Add64(z[2], qHalfHi0, cc)
	z[3], cc = bits.Add64(z[3], qHalfHi1, cc)
	z[4], cc = bits.Add64(z[4], 0, cc)
	z[5] += cc

	var y [2]uint64
	y[0] = (z[3] >> 60) | (z[4] << 4)
	y[1] = (z[4] >> 60) | (z[5] << 4)
	y[0], cc = bits.Add64(y[0], 1, 0)
	y[1] += cc

	var qc [2]uint64
	qc[0] = qcLo
	qc[1] = qcHi
	var t [4]uint64
	scalar.Mul128x128(&t, &y, &qc)

	// s = (z mod 2^252) + y*c; s < 2^254 always.
	var s [4]uint64
	z3 := z[3] & 0x0FFFFFFFFFFFFFFF
	s[0], cc = bits.Add64(z[0], t[0], 0)
	s[1], cc = bits.Add64(z[1], t[1], cc)
	s[2], cc = bits.Add64(z[2], t[2], cc)
	s[3], _ = bits.Add64(z3, t[3], cc)

	// dec = 1 iff s < 2^252 (y was one too high).
	dec := 1 - isNonZero(s[3]>>60)

	// inc = 1 iff s+c >= 2^253 (y was one too low).
	var s2 [4]uint64
	s2[0], cc = bits.Add64(s[0], qcLo, 0)
	s2[1], cc = bits.Add64(s[1], qcHi, cc)
	s2[2], cc = bits.Add64(s[2], 0, cc)
	s2[3], _ = bits.Add64(s[3], 0, cc)
	inc := isNonZero(s2[3] >> 61)

	d[0], cc = bits.Sub64(y[0], dec, 0)
	d[1], cc = bits.Sub64(y[1], 0, cc)
	d[0], cc = bits.Add64(d[0], inc, 0)
	d[1] += cc
}

// glvEHalf, glvES: the two positive magnitudes (v2y = 2^126-1, v1y = s)
// used by Decompose, named for the basis vectors they come from in
// params.go.
var glvEHalf = [2]uint64{0xFFFFFFFFFFFFFFFF, 0x3FFFFFFFFFFFFFFF}
var glvES = [2]uint64{glvHalf, 0}

// Decompose splits a fully-reduced scalar k (mod q) into two signed
// 128-bit sub-scalars k1, k2 such that k = k1 + k2*lambda (mod q), using
// Babai rounding against the GLV lattice basis (v1, v2) in params.go:
//
//	n1 = round(k*v2y / q)   (v2y = 2^126-1, positive)
//	n2 = round(k*v1y / q)   (v1y = s, positive)
//	k1 = k - n1*v2y - n2*v1y   (since v1x = -v2y, v2x = v1y)
//	k2 = n1*v1y - n2*v2y
//
// k1 and k2 are returned as sign+magnitude pairs (magnitude in a [2]uint64,
// sign as 1 for negative, 0 for non-negative); both magnitudes fit in 127
// bits for any k < q.
func Decompose(k *[4]uint64) (k1 [2]uint64, k1Neg uint64, k2 [2]uint64, k2Neg uint64) {
	var n1, n2 [2]uint64
	divRoundedQ(&n1, k, &glvEHalf)
	divRoundedQ(&n2, k, &glvES)

	// t1 = n1*v2y (=n1*half), t2 = n2*v1y (=n2*s)
	var t1, t2 [2]uint64
	scalar.Mul128x128trunc(&t1, &n1, &glvEHalf)
	scalar.Mul128x128trunc(&t2, &n2, &glvES)

	// k1 = k - t1 - t2. t1 and t2 are truncated to 128 bits, so only the
	// low two limbs of tmp are exact; since |k1| < 2^127, bit 127 of that
	// two's-complement value is k1's sign.
	var tmp [4]uint64
	var cc uint64
	tmp[0], cc = bits.Sub64(k[0], t1[0], 0)
	tmp[1], cc = bits.Sub64(k[1], t1[1], cc)
	tmp[2], cc = bits.Sub64(k[2], 0, cc)
	tmp[3], cc = bits.Sub64(k[3], 0, cc)
	tmp[0], cc = bits.Sub64(tmp[0], t2[0], 0)
	tmp[1], cc = bits.Sub64(tmp[1], t2[1], cc)
	tmp[2], cc = bits.Sub64(tmp[2], 0, cc)
	tmp[3], _ = bits.Sub64(tmp[3], 0, cc)

	k1Neg = tmp[1] >> 63
	if k1Neg == 1 {
		tmp[0], cc = bits.Sub64(0, tmp[0], 0)
		tmp[1], cc = bits.Sub64(0, tmp[1], cc)
		tmp[2], cc = bits.Sub64(0, tmp[2], cc)
		tmp[3], _ = bits.Sub64(0, tmp[3], cc)
	}
	k1[0], k1[1] = tmp[0], tmp[1]

	// k2 = n1*v1y - n2*v2y = n1*s - n2*half, again exact modulo 2^128
	// with its sign in bit 127.
	var u1, u2 [2]uint64
	scalar.Mul128x128trunc(&u1, &n1, &glvES)
	scalar.Mul128x128trunc(&u2, &n2, &glvEHalf)
	var lo, hi uint64
	lo, cc = bits.Sub64(u1[0], u2[0], 0)
	hi, _ = bits.Sub64(u1[1], u2[1], cc)
	k2Neg = hi >> 63
	if k2Neg == 1 {
		lo, cc = bits.Sub64(0, lo, 0)
		hi, _ = bits.Sub64(0, hi, cc)
	}
	k2[0], k2[1] = lo, hi

	return
}
