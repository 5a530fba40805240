package gls254

import "gls254/internal/field"

// Point is an extended-coordinate point (X, Y, T, Z) on the twisted
// Edwards curve a*x^2 + y^2 = 1 + d*x^2*y^2 over Fp2, with x = X/Z,
// y = Y/Z, x*y = T/Z. Invariant: X*Y = T*Z.
type Point struct {
	X, Y, T, Z field.Fp2
}

// AffinePoint is an affine (x, y) point on the curve.
type AffinePoint struct {
	X, Y field.Fp2
}

// Neutral sets P to the identity element (0, 1, 0, 1).
func (P *Point) Neutral() *Point {
	P.X = field.Fp2Zero
	P.Y = field.Fp2One
	P.T = field.Fp2Zero
	P.Z = field.Fp2One
	return P
}

// Generator sets P to the fixed base point G.
func (P *Point) Generator() *Point {
	return P.Expand(&AffinePoint{X: genGX, Y: genGY})
}

// Set copies Q into P.
func (P *Point) Set(Q *Point) *Point {
	P.X.Set(&Q.X)
	P.Y.Set(&Q.Y)
	P.T.Set(&Q.T)
	P.Z.Set(&Q.Z)
	return P
}

// Expand converts an affine point to extended coordinates:
// (x, y) -> (x, y, x*y, 1).
func (P *Point) Expand(A *AffinePoint) *Point {
	P.X.Set(&A.X)
	P.Y.Set(&A.Y)
	P.T.Mul(&A.X, &A.Y)
	P.Z.Set(&field.Fp2One)
	return P
}

// Affine converts P to affine coordinates: invert Z, scale X and Y.
func (R *AffinePoint) Affine(P *Point) *AffinePoint {
	var zinv field.Fp2
	zinv.Inv(&P.Z)
	R.X.Mul(&P.X, &zinv)
	R.Y.Mul(&P.Y, &zinv)
	return R
}

// SaveXY appends the 64-byte encoding of A (X then Y, 32 bytes each) to
// dst: the on-the-wire affine point format.
func (A *AffinePoint) SaveXY(dst []byte) []byte {
	dst = A.X.Save(dst)
	dst = A.Y.Save(dst)
	return dst
}

// LoadXY reads a 64-byte affine point encoding from src into A. Returns 1
// on success, 0 if either Fp2 component was not a valid canonical or
// top-bit-masked encoding.
func (A *AffinePoint) LoadXY(src []byte) uint64 {
	okX := A.X.Load(src[:32])
	okY := A.Y.Load(src[32:64])
	return okX & okY
}

// Neg computes R = -P: negate X and T, leave Y and Z unchanged.
func (R *Point) Neg(P *Point) *Point {
	R.X.Neg(&P.X)
	R.Y.Set(&P.Y)
	R.T.Neg(&P.T)
	R.Z.Set(&P.Z)
	return R
}

// Select: if ctl == 1, R <- P; if ctl == 0, R <- Q. ctl MUST be 0 or 1.
func (R *Point) Select(P, Q *Point, ctl uint64) *Point {
	R.X.Select(&P.X, &Q.X, ctl)
	R.Y.Select(&P.Y, &Q.Y, ctl)
	R.T.Select(&P.T, &Q.T, ctl)
	R.Z.Select(&P.Z, &Q.Z, ctl)
	return R
}

// IsNeutral returns 1 iff P is the identity element.
func (P *Point) IsNeutral() uint64 {
	var a AffinePoint
	a.Affine(P)
	one := field.Fp2One
	return a.X.IsZero() & a.Y.Eq(&one)
}

// Compress returns the 64-byte affine encoding of P.
func (P *Point) Compress() [64]byte {
	var a AffinePoint
	a.Affine(P)
	var out [64]byte
	a.SaveXY(out[:0])
	return out
}

// Decompress sets P from a 64-byte affine encoding. Returns 1 on success,
// 0 if the encoding's Fp2 components were invalid; on failure P is left
// as the identity. As with ec_load_xy, this does not check that the
// decoded (x, y) actually lies on the curve.
func (P *Point) Decompress(src []byte) uint64 {
	var a AffinePoint
	ok := a.LoadXY(src)
	var valid, invalid Point
	valid.Expand(&a)
	invalid.Neutral()
	P.Select(&valid, &invalid, ok)
	return ok
}

// Equal returns 1 iff P and Q represent the same affine point.
func (P *Point) Equal(Q *Point) uint64 {
	// x1/z1 == x2/z2  <=>  x1*z2 == x2*z1 (similarly for y).
	var l, r field.Fp2
	l.Mul(&P.X, &Q.Z)
	r.Mul(&Q.X, &P.Z)
	eqx := l.Eq(&r)
	l.Mul(&P.Y, &Q.Z)
	r.Mul(&Q.Y, &P.Z)
	eqy := l.Eq(&r)
	return eqx & eqy
}

// Double computes R = 2*P (dbl-2008-hwcd, 4M+4S in Fp2).
func (R *Point) Double(P *Point) *Point {
	var A, B, C, D, E, G, F, H field.Fp2
	A.Sqr(&P.X)
	B.Sqr(&P.Y)
	C.Sqr(&P.Z)
	C.Add(&C, &C)
	D.Mul(&curveA, &A)
	var sum field.Fp2
	sum.Add(&P.X, &P.Y)
	E.Sqr(&sum)
	E.Sub(&E, &A)
	E.Sub(&E, &B)
	G.Add(&D, &B)
	F.Sub(&G, &C)
	H.Sub(&D, &B)
	R.X.Mul(&E, &F)
	R.Y.Mul(&G, &H)
	R.T.Mul(&E, &H)
	R.Z.Mul(&F, &G)
	return R
}

// Add computes R = P + Q using the unified addition formula
// (add-2008-hwcd). It is valid for general a, d and also returns the
// correct result when P == Q (doubling) or either operand is the
// identity, so the curve-level addition is branch-free with regard to
// its operands.
func (R *Point) Add(P, Q *Point) *Point {
	var A, B, C, D, E, F, G, H field.Fp2
	A.Mul(&P.X, &Q.X)
	B.Mul(&P.Y, &Q.Y)
	C.Mul(&P.T, &Q.T)
	C.Mul(&C, &curveD)
	D.Mul(&P.Z, &Q.Z)
	F.Sub(&D, &C)
	var pxPlusPy, qxPlusQy, cross field.Fp2
	pxPlusPy.Add(&P.X, &P.Y)
	qxPlusQy.Add(&Q.X, &Q.Y)
	cross.Mul(&pxPlusPy, &qxPlusQy)
	E.Sub(&cross, &A)
	E.Sub(&E, &B)
	var aA field.Fp2
	aA.Mul(&curveA, &A)
	G.Add(&D, &C)
	H.Sub(&B, &aA)
	R.X.Mul(&E, &F)
	R.Y.Mul(&G, &H)
	R.T.Mul(&E, &H)
	R.Z.Mul(&F, &G)
	return R
}

// Sub computes R = P - Q.
func (R *Point) Sub(P, Q *Point) *Point {
	var negQ Point
	negQ.Neg(Q)
	return R.Add(P, &negQ)
}
