package gls254

import "gls254/internal/field"

// Phi computes the curve endomorphism phi(P), implemented as the
// twist-isomorphism phi(x, y) = (C1*conj(x), conj(y)), applied
// directly to extended coordinates: conjugation and multiplication by
// C1 are both Fp2-linear, so they commute with the projective scaling
// by Z, and phi(X:Y:T:Z) = (C1*conj(X) : conj(Y) : C1*conj(T) : conj(Z)).
//
// phi is a group endomorphism of the curve, fixing the identity and
// satisfying phi^2 = [Norm(C1)], with Norm(C1) = -1 for the constants in
// params.go. Mul and Simul call it to build the second point of their
// GLV tables (phi(P) next to P).
func Phi(P *Point) *Point {
	var R Point
	var cx, cy, ct, cz field.Fp2
	cx.Conjugate(&P.X)
	cy.Conjugate(&P.Y)
	ct.Conjugate(&P.T)
	cz.Conjugate(&P.Z)
	R.X.Mul(&endoC1, &cx)
	R.Y.Set(&cy)
	R.T.Mul(&endoC1, &ct)
	R.Z.Set(&cz)
	return &R
}
