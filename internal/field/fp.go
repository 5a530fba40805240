package field

// Fp is an element of the prime field of integers modulo
// p = 2^127 - 1. Values are stored as two 64-bit limbs (low, high) and
// are NOT necessarily held in canonical [0, p) form between operations;
// CompleteReduce() produces the canonical representative when needed
// (equality tests, serialization, final output).
type Fp [2]uint64

// Fp element of value 0.
var FpZero = Fp{0, 0}

// Fp element of value 1.
var FpOne = Fp{1, 0}

// Fp element of value 2.
var FpTwo = Fp{2, 0}

// d <- a
func (d *Fp) Set(a *Fp) *Fp {
	d[0], d[1] = a[0], a[1]
	return d
}

// d <- a + b
func (d *Fp) Add(a, b *Fp) *Fp {
	gf127_add((*[2]uint64)(d), (*[2]uint64)(a), (*[2]uint64)(b))
	return d
}

// d <- a - b
func (d *Fp) Sub(a, b *Fp) *Fp {
	gf127_sub((*[2]uint64)(d), (*[2]uint64)(a), (*[2]uint64)(b))
	return d
}

// d <- -a
func (d *Fp) Neg(a *Fp) *Fp {
	gf127_neg((*[2]uint64)(d), (*[2]uint64)(a))
	return d
}

// If ctl == 1: d <- a.  If ctl == 0: d <- b.  ctl MUST be 0 or 1.
func (d *Fp) Select(a, b *Fp, ctl uint64) *Fp {
	gf127_select((*[2]uint64)(d), (*[2]uint64)(a), (*[2]uint64)(b), ctl)
	return d
}

// If ctl == 1: d <- -a.  If ctl == 0: d <- a.  ctl MUST be 0 or 1.
func (d *Fp) CondNeg(a *Fp, ctl uint64) *Fp {
	gf127_condneg((*[2]uint64)(d), (*[2]uint64)(a), ctl)
	return d
}

// d <- a*b
func (d *Fp) Mul(a, b *Fp) *Fp {
	gf127_mul((*[2]uint64)(d), (*[2]uint64)(a), (*[2]uint64)(b))
	return d
}

// d <- a^2
func (d *Fp) Sqr(a *Fp) *Fp {
	gf127_sqr((*[2]uint64)(d), (*[2]uint64)(a))
	return d
}

// d <- a^(2^n) for n >= 0. Constant-time in a, not in n.
func (d *Fp) SqrX(a *Fp, n uint) *Fp {
	gf127_sqr_x((*[2]uint64)(d), (*[2]uint64)(a), n)
	return d
}

// d <- a*k, for a 32-bit constant k.
func (d *Fp) MulSmallK(a *Fp, k uint32) *Fp {
	gf127_mul_smallk((*[2]uint64)(d), (*[2]uint64)(a), uint64(k))
	return d
}

// d <- a/2
func (d *Fp) Half(a *Fp) *Fp {
	gf127_half((*[2]uint64)(d), (*[2]uint64)(a))
	return d
}

// d <- a*2^n, for 1 <= n <= 15.
func (d *Fp) Lsh(a *Fp, n uint) *Fp {
	gf127_lsh((*[2]uint64)(d), (*[2]uint64)(a), n)
	return d
}

// d <- 1/a (if a == 0, this sets d to 0).
func (d *Fp) Inv(a *Fp) *Fp {
	gf127_inv((*[2]uint64)(d), (*[2]uint64)(a))
	return d
}

// d <- a^e mod p, scanning e's bits 126 down to 0 (e is reduced mod p
// already, so bit 127 never carries information). Not constant-time in
// e: callers that need exponent secrecy should use a fixed addition
// chain instead, the way Inv() does for e = p-2.
func (d *Fp) Exp(a, e *Fp) *Fp {
	var r Fp
	r = FpOne
	seen := false
	for ii := 126; ii >= 0; ii-- {
		if seen {
			r.Sqr(&r)
		}
		if (e[ii/64]>>uint(ii%64))&1 == 1 {
			r.Mul(a, &r)
			seen = true
		}
	}
	d.Set(&r)
	return d
}

// d <- canonical representative of a in [0, p).
func (d *Fp) CompleteReduce(a *Fp) *Fp {
	gf127_norm((*[2]uint64)(d), (*[2]uint64)(a))
	return d
}

// Returns 1 if d == 0 (mod p), 0 otherwise.
func (d *Fp) IsZero() uint64 {
	return gf127_iszero((*[2]uint64)(d))
}

// Returns 1 if d == a (mod p), 0 otherwise.
func (d *Fp) Eq(a *Fp) uint64 {
	return gf127_eq((*[2]uint64)(d), (*[2]uint64)(a))
}

// Returns true iff d is in canonical [0, p) form. Used only in testing.
func (d *Fp) InField() bool {
	var t Fp
	t.CompleteReduce(d)
	return t[0] == d[0] && t[1] == d[1]
}

// SetMask: d <- a iff mask == all-ones; d is left unchanged iff
// mask == all-zeros. mask MUST be 0 or 0xFFFFFFFFFFFFFFFF.
func (d *Fp) SetMask(a *Fp, mask uint64) *Fp {
	d[0] = (d[0] &^ mask) | (a[0] & mask)
	d[1] = (d[1] &^ mask) | (a[1] & mask)
	return d
}

// XorMask: d <- d XOR (a AND mask). mask MUST be 0 or all-ones.
func (d *Fp) XorMask(a *Fp, mask uint64) *Fp {
	d[0] ^= a[0] & mask
	d[1] ^= a[1] & mask
	return d
}

// NegMask negates a iff mask == all-zeros, and copies a unchanged iff
// mask == all-ones. This is the inverted polarity documented in the
// design notes: it lets a caller pass the sign bit of a recoded digit
// (0 = negative) directly as mask. mask MUST be 0 or all-ones.
func (d *Fp) NegMask(a *Fp, mask uint64) *Fp {
	var neg Fp
	neg.Neg(a)
	d[0] = (a[0] & mask) | (neg[0] &^ mask)
	d[1] = (a[1] & mask) | (neg[1] &^ mask)
	return d
}

// Save writes the 16-byte little-endian canonical encoding of d,
// appended to dst.
func (d *Fp) Save(dst []byte) []byte {
	return gf127_encode(dst, (*[2]uint64)(d))
}

// Load reads 16 bytes, masking the top bit (every 127-bit payload below
// p is accepted). Returns 1 on success, 0 (with d cleared) if the
// payload equals p.
func (d *Fp) Load(src []byte) uint64 {
	return gf127_decode((*[2]uint64)(d), src)
}

// LoadReduce reads an arbitrary number of little-endian bytes and
// reduces modulo p. Cannot fail.
func (d *Fp) LoadReduce(src []byte) *Fp {
	gf127_decodeReduce((*[2]uint64)(d), src)
	return d
}
