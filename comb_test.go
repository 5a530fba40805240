package gls254

import "testing"

func TestCombGenMatchesSmallScalars(t *testing.T) {
	var G Point
	G.Generator()

	zero := [4]uint64{0, 0, 0, 0}
	one := [4]uint64{1, 0, 0, 0}
	two := [4]uint64{2, 0, 0, 0}

	r0 := MulGen(&zero, true)
	if r0.IsNeutral() != 1 {
		t.Fatalf("0*G via comb must be the identity")
	}

	r1 := MulGen(&one, true)
	if r1.Equal(&G) != 1 {
		t.Fatalf("1*G via comb must be G")
	}

	r2 := MulGen(&two, true)
	var want2 Point
	want2.Double(&G)
	if r2.Equal(&want2) != 1 {
		t.Fatalf("2*G via comb must be Double(G)")
	}
}

func TestCombGenAgreesWithMulAcrossRandomScalars(t *testing.T) {
	var rng testPrng
	rng.init("test comb vs mul, random")
	var G Point
	G.Generator()

	for i := 0; i < 300; i++ {
		var k [4]uint64
		rng.mkScalar(&k)
		kk := k
		want := Mul(&kk, &G)
		got := MulGen(&k, true)
		if got.Equal(want) != 1 {
			t.Fatalf("comb MulGen disagrees with Mul(k, G) for k=%v", k)
		}
	}
}
