package field

// Fp2 is an element of the quadratic extension Fp[i]/(i^2+1):
// A + B*i, with A and B both in Fp.
type Fp2 struct {
	A, B Fp
}

var Fp2Zero = Fp2{A: FpZero, B: FpZero}
var Fp2One = Fp2{A: FpOne, B: FpZero}

func (d *Fp2) Set(a *Fp2) *Fp2 {
	d.A.Set(&a.A)
	d.B.Set(&a.B)
	return d
}

func (d *Fp2) Add(a, b *Fp2) *Fp2 {
	d.A.Add(&a.A, &b.A)
	d.B.Add(&a.B, &b.B)
	return d
}

func (d *Fp2) Sub(a, b *Fp2) *Fp2 {
	d.A.Sub(&a.A, &b.A)
	d.B.Sub(&a.B, &b.B)
	return d
}

func (d *Fp2) Neg(a *Fp2) *Fp2 {
	d.A.Neg(&a.A)
	d.B.Neg(&a.B)
	return d
}

// Conjugate: d <- conj(a) = a.A - a.B*i.
func (d *Fp2) Conjugate(a *Fp2) *Fp2 {
	d.A.Set(&a.A)
	d.B.Neg(&a.B)
	return d
}

// Mul computes (a.A+a.B*i)*(b.A+b.B*i) = (a.A*b.A - a.B*b.B) + (a.A*b.B + a.B*b.A)*i
// via the Karatsuba-style 3-multiplication formula:
//
//	t0 = a.A*b.A, t1 = a.B*b.B
//	re = t0 - t1
//	im = (a.A+a.B)*(b.A+b.B) - t0 - t1
func (d *Fp2) Mul(a, b *Fp2) *Fp2 {
	var t0, t1, sa, sb, cross, re, im Fp
	t0.Mul(&a.A, &b.A)
	t1.Mul(&a.B, &b.B)
	sa.Add(&a.A, &a.B)
	sb.Add(&b.A, &b.B)
	cross.Mul(&sa, &sb)
	re.Sub(&t0, &t1)
	im.Sub(&cross, &t0)
	im.Sub(&im, &t1)
	d.A.Set(&re)
	d.B.Set(&im)
	return d
}

// Sqr computes (a.A+a.B*i)^2 = (a.A^2 - a.B^2) + (2*a.A*a.B)*i.
func (d *Fp2) Sqr(a *Fp2) *Fp2 {
	var sq0, sq1, cross, re, im Fp
	sq0.Sqr(&a.A)
	sq1.Sqr(&a.B)
	cross.Mul(&a.A, &a.B)
	re.Sub(&sq0, &sq1)
	im.Add(&cross, &cross)
	d.A.Set(&re)
	d.B.Set(&im)
	return d
}

// MulSmallK multiplies both components by a 32-bit constant.
func (d *Fp2) MulSmallK(a *Fp2, k uint32) *Fp2 {
	d.A.MulSmallK(&a.A, k)
	d.B.MulSmallK(&a.B, k)
	return d
}

// NormOf sets d to a.A^2 + a.B^2, the Fp-valued field norm of a.
func (d *Fp) NormOf(a *Fp2) *Fp {
	var sq0, sq1 Fp
	sq0.Sqr(&a.A)
	sq1.Sqr(&a.B)
	d.Add(&sq0, &sq1)
	return d
}

// Inv computes d = 1/a = conj(a) / Norm(a). If a == 0, d is set to 0
// (Fp.Inv(0) = 0 propagates through).
func (d *Fp2) Inv(a *Fp2) *Fp2 {
	var n, ninv Fp
	n.NormOf(a)
	ninv.Inv(&n)
	d.A.Mul(&a.A, &ninv)
	var negB Fp
	negB.Neg(&a.B)
	d.B.Mul(&negB, &ninv)
	return d
}

// IsZero returns 1 if both components are zero mod p.
func (d *Fp2) IsZero() uint64 {
	return d.A.IsZero() & d.B.IsZero()
}

// Eq returns 1 if d == a (mod p, componentwise).
func (d *Fp2) Eq(a *Fp2) uint64 {
	return d.A.Eq(&a.A) & d.B.Eq(&a.B)
}

// Select: if ctl == 1, d <- a; if ctl == 0, d <- b. ctl MUST be 0 or 1.
func (d *Fp2) Select(a, b *Fp2, ctl uint64) *Fp2 {
	d.A.Select(&a.A, &b.A, ctl)
	d.B.Select(&a.B, &b.B, ctl)
	return d
}

// CondNeg: if ctl == 1, d <- -a; if ctl == 0, d <- a.
func (d *Fp2) CondNeg(a *Fp2, ctl uint64) *Fp2 {
	d.A.CondNeg(&a.A, ctl)
	d.B.CondNeg(&a.B, ctl)
	return d
}

// SetMask: componentwise Fp.SetMask.
func (d *Fp2) SetMask(a *Fp2, mask uint64) *Fp2 {
	d.A.SetMask(&a.A, mask)
	d.B.SetMask(&a.B, mask)
	return d
}

// XorMask: componentwise Fp.XorMask.
func (d *Fp2) XorMask(a *Fp2, mask uint64) *Fp2 {
	d.A.XorMask(&a.A, mask)
	d.B.XorMask(&a.B, mask)
	return d
}

// NegMask: componentwise Fp.NegMask (inverted polarity, see Fp.NegMask).
func (d *Fp2) NegMask(a *Fp2, mask uint64) *Fp2 {
	d.A.NegMask(&a.A, mask)
	d.B.NegMask(&a.B, mask)
	return d
}

// Save appends the 32-byte encoding (A then B, 16 bytes each) to dst.
func (d *Fp2) Save(dst []byte) []byte {
	dst = d.A.Save(dst)
	dst = d.B.Save(dst)
	return dst
}

// Load reads 32 bytes (A then B) and returns 1 on success.
func (d *Fp2) Load(src []byte) uint64 {
	okA := d.A.Load(src[:16])
	okB := d.B.Load(src[16:32])
	return okA & okB
}
