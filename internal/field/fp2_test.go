package field

import (
	"testing"
)

func fp2Eq(a, b *Fp2) bool {
	var ca, cb Fp2
	ca.A.CompleteReduce(&a.A)
	ca.B.CompleteReduce(&a.B)
	cb.A.CompleteReduce(&b.A)
	cb.B.CompleteReduce(&b.B)
	return ca.A == cb.A && ca.B == cb.B
}

func TestFp2AddSubNeg(t *testing.T) {
	var rng prng
	rng.init("test add/sub/neg Fp2")
	var a, b, c, d Fp2
	for i := 0; i < 10000; i++ {
		rng.mkfp2(&a)
		rng.mkfp2(&b)
		c.Add(&a, &b)
		d.Sub(&c, &b)
		if !fp2Eq(&d, &a) {
			t.Fatalf("ERR add/sub round-trip")
		}
		var n, sum Fp2
		n.Neg(&a)
		sum.Add(&a, &n)
		if sum.IsZero() != 1 {
			t.Fatalf("ERR neg")
		}
	}
}

func TestFp2MulSqrConjugate(t *testing.T) {
	var rng prng
	rng.init("test mul/sqr/conjugate Fp2")
	var a, b Fp2
	for i := 0; i < 10000; i++ {
		rng.mkfp2(&a)
		rng.mkfp2(&b)

		var ab, ba Fp2
		ab.Mul(&a, &b)
		ba.Mul(&b, &a)
		if !fp2Eq(&ab, &ba) {
			t.Fatalf("ERR mul not commutative")
		}

		var aa, sq Fp2
		aa.Mul(&a, &a)
		sq.Sqr(&a)
		if !fp2Eq(&aa, &sq) {
			t.Fatalf("ERR sqr != a*a")
		}

		var conj, norm Fp2
		conj.Conjugate(&a)
		norm.Mul(&a, &conj)
		// a * conj(a) = A^2 + B^2 must land purely in the real part.
		if norm.B.IsZero() != 1 {
			t.Fatalf("ERR a*conj(a) has nonzero imaginary part")
		}
	}
}

func TestFp2Inv(t *testing.T) {
	var rng prng
	rng.init("test inv Fp2")
	var a, b, c Fp2
	for i := 0; i < 3000; i++ {
		rng.mkfp2(&a)
		if a.IsZero() == 1 {
			continue
		}
		b.Inv(&a)
		c.Mul(&a, &b)
		if !fp2Eq(&c, &Fp2One) {
			t.Fatalf("ERR a * a^-1 != 1")
		}
	}
	var zero, zinv Fp2
	zinv.Inv(&zero)
	if zinv.IsZero() != 1 {
		t.Fatalf("ERR inv(0) != 0")
	}
}

func TestFp2SelectCondNeg(t *testing.T) {
	var rng prng
	rng.init("test select/condneg Fp2")
	var a, b, s0, s1 Fp2
	rng.mkfp2(&a)
	rng.mkfp2(&b)
	s1.Select(&a, &b, 1)
	s0.Select(&a, &b, 0)
	if !fp2Eq(&s1, &a) || !fp2Eq(&s0, &b) {
		t.Fatalf("ERR select")
	}

	var n1, sum Fp2
	n1.CondNeg(&a, 1)
	sum.Add(&n1, &a)
	if sum.IsZero() != 1 {
		t.Fatalf("ERR condneg(1) not -a")
	}
}

func TestFp2SaveLoad(t *testing.T) {
	var rng prng
	rng.init("test save/load Fp2")
	var a, b Fp2
	for i := 0; i < 2000; i++ {
		rng.mkfp2(&a)
		a.A.CompleteReduce(&a.A)
		a.B.CompleteReduce(&a.B)
		enc := a.Save(nil)
		if len(enc) != 32 {
			t.Fatalf("ERR save length")
		}
		if b.Load(enc) != 1 {
			t.Fatalf("ERR load failed")
		}
		if !fp2Eq(&a, &b) {
			t.Fatalf("ERR save/load round-trip")
		}
	}
}
