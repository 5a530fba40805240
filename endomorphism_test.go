package gls254

import "testing"

func TestPhiFixesIdentity(t *testing.T) {
	var N Point
	N.Neutral()
	R := Phi(&N)
	if R.IsNeutral() != 1 {
		t.Fatalf("phi(identity) must be the identity")
	}
}

func TestPhiIsGroupEndomorphism(t *testing.T) {
	var G, H Point
	G.Generator()
	H.Double(&G)

	var sum Point
	sum.Add(&G, &H)

	phiSum := Phi(&sum)
	var phiG, phiH, want Point
	phiG.Set(Phi(&G))
	phiH.Set(Phi(&H))
	want.Add(&phiG, &phiH)

	if phiSum.Equal(&want) != 1 {
		t.Fatalf("phi(G+H) != phi(G)+phi(H)")
	}
}

func TestPhiSquaredIsNegation(t *testing.T) {
	var G Point
	G.Generator()

	phiG := Phi(&G)
	phiPhiG := Phi(phiG)

	var negG Point
	negG.Neg(&G)

	if phiPhiG.Equal(&negG) != 1 {
		t.Fatalf("phi^2(G) must equal -G (Norm(C1) = -1)")
	}
}
