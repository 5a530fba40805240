package gls254

import "gls254/internal/scalar"

// Scalar is an integer modulo q, the prime order of the curve subgroup.
// Default value is zero. This mirrors the wrapper do255e/do255s build
// around internal/scalar's generic helpers, narrowed to this package's
// single modulus q instead of a pair of curve-specific orders.
type Scalar [4]uint64

// Decode a scalar from exactly 32 bytes, little-endian. Returned value:
//
//	1   decode successful, value is not zero
//	0   decode successful, value is zero
//
// -1   source bytes are not a valid scalar encoding (out of range)
//
// On failure s is forced to zero.
func (s *Scalar) Decode(src []byte) int {
	return scalar.Decode((*[4]uint64)(s), src, &ecQ)
}

// DecodeReduce decodes a scalar from an arbitrary-length byte slice,
// interpreted as an unsigned little-endian integer and reduced modulo q.
// Always succeeds; an empty slice decodes to zero.
func (s *Scalar) DecodeReduce(src []byte) {
	scalar.DecodeReduce((*[4]uint64)(s), src, qReduce384Partial)
}

// Encode appends the canonical 32-byte little-endian encoding of s to dst.
func (s *Scalar) Encode(dst []byte) []byte {
	return scalar.Encode(dst, (*[4]uint64)(s), qReduceFull)
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() [32]byte {
	return scalar.ToBytes((*[4]uint64)(s), qReduceFull)
}

// IsZero returns 1 if s is zero mod q, 0 otherwise.
func (s *Scalar) IsZero() int {
	var t [4]uint64
	qReduceFull(&t, (*[4]uint64)(s))
	z := t[0] | t[1] | t[2] | t[3]
	return int(1 - ((z | -z) >> 63))
}

// Equal returns 1 if s and a represent the same residue mod q, 0 otherwise.
func (s *Scalar) Equal(a *Scalar) int {
	var t Scalar
	t.Sub(s, a)
	return t.IsZero()
}

// Add sets s = a + b (mod q).
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	scalar.Add((*[4]uint64)(s), (*[4]uint64)(a), (*[4]uint64)(b), qReduce256Partial)
	return s
}

// Sub sets s = a - b (mod q).
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	scalar.Sub((*[4]uint64)(s), (*[4]uint64)(a), (*[4]uint64)(b), qReduce256Partial, &ecQ)
	return s
}

// Neg sets s = -a (mod q).
func (s *Scalar) Neg(a *Scalar) *Scalar {
	zero := [4]uint64{0, 0, 0, 0}
	scalar.Sub((*[4]uint64)(s), &zero, (*[4]uint64)(a), qReduce256Partial, &ecQ)
	return s
}

// Mul sets s = a*b (mod q).
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	scalar.Mul((*[4]uint64)(s), (*[4]uint64)(a), (*[4]uint64)(b), qReduce384Partial)
	return s
}
