package field

import (
	"math/big"
	"testing"
)

func TestFpAddSub(t *testing.T) {
	var rng prng
	rng.init("test add/sub Fp")
	var a, b, c, d Fp
	for i := 0; i < 20000; i++ {
		rng.mkfp(&a)
		rng.mkfp(&b)
		c.Add(&a, &b)
		d.Sub(&c, &b)

		za := fpToBig(&a)
		zc := fpToBig(&c)
		zsum := new(big.Int).Add(fpToBig(&a), fpToBig(&b))
		zsum.Mod(zsum, fpModulus)
		if zc.Cmp(zsum) != 0 {
			t.Fatalf("ERR add: a=%v b=%v got=%v want=%v", za, fpToBig(&b), zc, zsum)
		}
		zd := fpToBig(&d)
		if zd.Cmp(za) != 0 {
			t.Fatalf("ERR sub round-trip: got=%v want=%v", zd, za)
		}
	}
}

func TestFpNeg(t *testing.T) {
	var rng prng
	rng.init("test neg Fp")
	var a, b, c Fp
	for i := 0; i < 10000; i++ {
		rng.mkfp(&a)
		b.Neg(&a)
		c.Add(&a, &b)
		if c.IsZero() != 1 {
			t.Fatalf("ERR neg: a + (-a) != 0")
		}
	}
}

func TestFpMulSqr(t *testing.T) {
	var rng prng
	rng.init("test mul/sqr Fp")
	var a, b, c, d Fp
	for i := 0; i < 20000; i++ {
		rng.mkfp(&a)
		rng.mkfp(&b)
		c.Mul(&a, &b)
		d.Sqr(&a)

		zwant := new(big.Int).Mul(fpToBig(&a), fpToBig(&b))
		zwant.Mod(zwant, fpModulus)
		if fpToBig(&c).Cmp(zwant) != 0 {
			t.Fatalf("ERR mul")
		}
		zsq := new(big.Int).Mul(fpToBig(&a), fpToBig(&a))
		zsq.Mod(zsq, fpModulus)
		if fpToBig(&d).Cmp(zsq) != 0 {
			t.Fatalf("ERR sqr")
		}
	}
}

func TestFpInv(t *testing.T) {
	var rng prng
	rng.init("test inv Fp")
	var a, b, c Fp
	for i := 0; i < 5000; i++ {
		rng.mkfp(&a)
		if a.IsZero() == 1 {
			continue
		}
		b.Inv(&a)
		c.Mul(&a, &b)
		var one Fp
		one.CompleteReduce(&c)
		if one != FpOne {
			t.Fatalf("ERR inv: a*a^-1 != 1")
		}
	}
	var zero, zinv Fp
	zinv.Inv(&zero)
	if zinv.IsZero() != 1 {
		t.Fatalf("ERR inv(0) != 0")
	}
}

func TestFpSelectCondNeg(t *testing.T) {
	var rng prng
	rng.init("test select/condneg Fp")
	var a, b, s0, s1, n0, n1 Fp
	for i := 0; i < 1000; i++ {
		rng.mkfp(&a)
		rng.mkfp(&b)
		s1.Select(&a, &b, 1)
		s0.Select(&a, &b, 0)
		if s1 != a || s0 != b {
			t.Fatalf("ERR select")
		}
		n1.CondNeg(&a, 1)
		n0.CondNeg(&a, 0)
		var want Fp
		want.Neg(&a)
		var sum Fp
		sum.Add(&n1, &a)
		if sum.IsZero() != 1 {
			t.Fatalf("ERR condneg(1) not -a")
		}
		if n0 != a {
			t.Fatalf("ERR condneg(0) not a")
		}
	}
}

func TestFpSaveLoad(t *testing.T) {
	var rng prng
	rng.init("test save/load Fp")
	var a, b Fp
	for i := 0; i < 5000; i++ {
		rng.mkfp(&a)
		a.CompleteReduce(&a)
		enc := a.Save(nil)
		if len(enc) != 16 {
			t.Fatalf("ERR save length")
		}
		if b.Load(enc) != 1 {
			t.Fatalf("ERR load failed on canonical value")
		}
		if b != a {
			t.Fatalf("ERR save/load round-trip")
		}
	}
}

func TestFpInField(t *testing.T) {
	var a Fp
	a.CompleteReduce(&FpZero)
	if !a.InField() {
		t.Fatalf("ERR 0 should be in field")
	}
	var tooBig Fp
	tooBig[0] = 0xFFFFFFFFFFFFFFFF
	tooBig[1] = 0xFFFFFFFFFFFFFFFF
	if tooBig.InField() {
		t.Fatalf("ERR 2^128-1 should not be canonical")
	}
}

// TestFpExpPublishedVector checks the published exponentiation vector
// CR1^CR2 == CX3 mod p.
func TestFpExpPublishedVector(t *testing.T) {
	cr1 := Fp{0x09744238EF199911, 0x6541AA8FCD8C4C65}
	cr2 := Fp{0xD204049593D4A1D1, 0x5281A3886F35ED6F}
	cx3 := Fp{0xB766E7802FB7635F, 0x3F42AC9208EEFF87}

	var got Fp
	got.Exp(&cr1, &cr2)
	if got.Eq(&cx3) != 1 {
		t.Fatalf("ERR CR1^CR2 != CX3: got=%v want=%v", got, cx3)
	}
}

// TestFpExpSmallVectors checks the small boundary exponentiation
// vectors alongside the main published one.
func TestFpExpSmallVectors(t *testing.T) {
	cases := []struct {
		x, e, want Fp
	}{
		{FpZero, FpZero, FpOne},
		{Fp{0, 1}, FpZero, FpOne},
		{Fp{0, 2}, FpOne, Fp{0, 2}},
		{FpOne, FpTwo, FpOne},
		{FpZero, FpTwo, FpZero},
	}
	for _, c := range cases {
		var got Fp
		got.Exp(&c.x, &c.e)
		if got.Eq(&c.want) != 1 {
			t.Fatalf("ERR exp(%v, %v): got=%v want=%v", c.x, c.e, got, c.want)
		}
	}
}
