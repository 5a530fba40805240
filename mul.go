package gls254

// scalarMulCore runs Mul's double-and-add loop (MulGen uses the comb in
// comb.go instead): given two points already adjusted for the sign of
// their respective sub-scalar (Pe, EPe) and the 128 recoded digit columns
// for that sub-scalar pair, it accumulates sum(digit[i] select)*2^i into a
// fresh point starting from the neutral element, processing two columns
// (one table8 lookup) per loop iteration the way table8's doc comment
// describes.
func scalarMulCore(Pe, EPe *Point, digits *[128]byte) *Point {
	var T table8
	T.genTable8(Pe, EPe)

	var R Point
	R.Neutral()
	for j := 63; j >= 0; j-- {
		R.Double(&R)
		R.Double(&R)
		var M Point
		tableSelect8(&T, digits[2*j+1], digits[2*j], &M)
		R.Add(&R, &M)
	}
	return &R
}

// condAddOrAdjust adds Q to R if add == 1, or leaves R unchanged if
// add == 0. It is used to apply the small fixups that recodeScalars2's
// forced-odd trick and mask_scalar's discarded parity bit require (see
// DESIGN.md).
func condAddOrAdjust(R, Q *Point, add uint64) {
	var N Point
	N.Neutral()
	var adj Point
	adj.Select(Q, &N, add)
	R.Add(R, &adj)
}

// Mul computes R = k*P for an arbitrary point P, using the GLS/GLV
// endomorphism to split k into two ~126-bit signed sub-scalars and a
// single 64-iteration double-and-add loop over an 8-entry dynamic table
// (table8), each iteration consuming two recoded digit columns at once.
func Mul(k *[4]uint64, P *Point) *Point {
	var kk [4]uint64
	kk = *k
	parity := MaskScalar(&kk)

	k1, k1Neg, k2, k2Neg := Decompose(&kk)

	var Pe, EPe Point
	Pe.CondNeg(P, k1Neg)
	EPe.Set(Phi(P))
	EPe.CondNeg(&EPe, k2Neg)

	digits, lsb := recodeScalars2(&k1, &k2)
	R := scalarMulCore(&Pe, &EPe, &digits)

	// recodeScalars2 forces its first sub-scalar odd; when the true k1
	// was already odd (lsb == 1) no correction is needed, otherwise
	// subtract back Pe once.
	var negPe Point
	negPe.Neg(&Pe)
	condAddOrAdjust(R, &negPe, 1-lsb)

	// Fold back the bit mask_scalar cleared from the original scalar.
	condAddOrAdjust(R, P, parity)

	return R
}

// MulGen computes R = k*G for the fixed generator G via the Lim-Lee comb
// built in comb.go, mirroring ec_mul_gen(scalar, ct, out)'s signature:
// ct selects between a constant-time oblivious table scan (ct == true)
// and direct indexing (ct == false). Both read the same table entries in
// the same order of operations and differ only in how an entry is
// fetched, so they always agree (see TestMulGenCtAgreement).
func MulGen(k *[4]uint64, ct bool) *Point {
	var kk [4]uint64
	kk = *k
	kk[3] &= 0x0FFFFFFFFFFFFFFF
	return mulGenComb(&kk, ct)
}

// Simul computes R = k1*P + k2*Q with a single interleaved double-and-add
// loop: both scalars are GLV-decomposed and recoded independently, but
// the two resulting digit streams share one doubling ladder (Shamir's
// trick over the GLV-split columns), so the whole computation costs one
// pass of doublings instead of two.
func Simul(k1 *[4]uint64, P *Point, k2 *[4]uint64, Q *Point) *Point {
	var kk1, kk2 [4]uint64
	kk1, kk2 = *k1, *k2
	parity1 := MaskScalar(&kk1)
	parity2 := MaskScalar(&kk2)

	a1, a1Neg, b1, b1Neg := Decompose(&kk1)
	a2, a2Neg, b2, b2Neg := Decompose(&kk2)

	var Pe, EPe, Qe, EQe Point
	Pe.CondNeg(P, a1Neg)
	EPe.Set(Phi(P))
	EPe.CondNeg(&EPe, b1Neg)
	Qe.CondNeg(Q, a2Neg)
	EQe.Set(Phi(Q))
	EQe.CondNeg(&EQe, b2Neg)

	digitsP, lsbP := recodeScalars2(&a1, &b1)
	digitsQ, lsbQ := recodeScalars2(&a2, &b2)

	var TP, TQ table2
	TP.genTable2(&Pe, &EPe)
	TQ.genTable2(&Qe, &EQe)

	var R Point
	R.Neutral()
	for i := 127; i >= 0; i-- {
		R.Double(&R)
		var MP, MQ Point
		tableSelect2(&TP, digitsP[i], &MP)
		tableSelect2(&TQ, digitsQ[i], &MQ)
		R.Add(&R, &MP)
		R.Add(&R, &MQ)
	}

	var negPe, negQe Point
	negPe.Neg(&Pe)
	negQe.Neg(&Qe)
	condAddOrAdjust(&R, &negPe, 1-lsbP)
	condAddOrAdjust(&R, &negQe, 1-lsbQ)
	condAddOrAdjust(&R, P, parity1)
	condAddOrAdjust(&R, Q, parity2)

	return &R
}
