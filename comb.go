package gls254

import "sync"

// Fixed-base comb multiplication for MulGen, built the way
// ec_gen_tables_comb_test (original_source/tests/ecmul_test.cpp:50-124)
// verifies GEN_TABLE_0/GEN_TABLE_1 against: a Lim-Lee comb with
// parameters t=252 (scalar bit width after MaskScalar), w=8 (rows),
// v=2 (sub-tables), e=16 (= t/wv), d=32 (= ev), l=256 (= dw).
//
// combTable0[u] for a 7-bit window u (0 <= u < 2^(w-1) = 128) holds
//
//	(1 + u0*2^d + u1*2^(2d) + ... + u6*2^(7d)) * G
//
// i.e. row 0's bit is always taken as 1 (G is always included); rows 1
// through 7 contribute according to u's bits. combTable1[u] is the same
// value scaled by 2^e, covering the second half of each d-bit row
// spacing. GEN_TABLE_0/GEN_TABLE_1's literal baked contents live in
// snowshoe/ecmul.cpp, a file this retrieval does not include, so rather
// than invent bytes to stand in for them this package derives the tables
// at init time by running the identical construction ec_gen_tables_comb_test
// checks, directly from the published generator G: table construction is
// public input (not secret), so doing this once per process start costs
// nothing at the scalar-multiplication call sites it serves.
const (
	combW  = 8
	combV  = 2
	combE  = 16
	combD  = 32
	combUL = 1 << (combW - 1) // 128
)

var (
	combTable0, combTable1 [combUL]Point
	combNegG               Point
	combNegGShift          Point
	combOnce               sync.Once
)

func init() {
	combOnce.Do(buildCombTables)
}

func buildCombTables() {
	var G Point
	G.Generator()

	// S[i] = 2^(d*(i+1)) * G, for i = 0..6 (rows 1..7).
	var S [combW - 1]Point
	acc := G
	for i := 0; i < combW-1; i++ {
		for x := 0; x < combD; x++ {
			acc.Double(&acc)
		}
		S[i].Set(&acc)
	}

	for u := 0; u < combUL; u++ {
		q := G
		for ii := 0; ii < combW-1; ii++ {
			if u&(1<<uint(ii)) != 0 {
				q.Add(&q, &S[ii])
			}
		}
		combTable0[u].Set(&q)

		t1 := q
		for x := 0; x < combE; x++ {
			t1.Double(&t1)
		}
		combTable1[u].Set(&t1)
	}

	combNegG.Neg(&G)

	var gShift Point
	gShift = G
	for x := 0; x < combE; x++ {
		gShift.Double(&gShift)
	}
	combNegGShift.Neg(&gShift)
}

// combLookup obliviously (ct == true) or directly (ct == false) reads
// table[idx]; both return the identical Point for the same idx, so
// ct only changes the access pattern, never the result (matching
// ec_mul_gen_test's requirement that ec_mul_gen(k, false, .) and
// ec_mul_gen(k, true, .) produce byte-identical output).
func combLookup(table *[combUL]Point, idx uint64, ct bool) Point {
	if !ct {
		return table[idx]
	}
	var r Point
	r.Neutral()
	for i := uint64(0); i < combUL; i++ {
		eq := isIndexEqual(i, idx)
		r.Select(&table[i], &r, eq)
	}
	return r
}

// mulGenComb computes k*G via the Lim-Lee comb described above. k MUST
// already be reduced modulo q (MaskScalar's range, < 2^252).
func mulGenComb(k *[4]uint64, ct bool) *Point {
	combOnce.Do(buildCombTables)

	// Force k odd; the dropped parity bit is folded back at the end
	// exactly as MaskScalar's parity bit is elsewhere in this package.
	var kp [4]uint64
	kp = *k
	lsb := kp[0] & 1
	kp[0] |= 1

	bit := func(pos int) uint64 {
		return (kp[pos/64] >> uint(pos%64)) & 1
	}

	var R Point
	R.Neutral()
	for j := combE - 1; j >= 0; j-- {
		R.Double(&R)

		// Lower half: row 0 at column j, rows 1..7 at column j + i*d.
		var u0 uint64
		for i := 0; i < combW-1; i++ {
			u0 |= bit(j+(i+1)*combD) << uint(i)
		}
		c0 := combLookup(&combTable0, u0, ct)
		var adj0 Point
		adj0.Add(&c0, &combNegG)
		c0.Select(&c0, &adj0, bit(j))
		R.Add(&R, &c0)

		// Upper half: same row spacing, columns offset by e.
		jHi := j + combE
		var u1 uint64
		for i := 0; i < combW-1; i++ {
			u1 |= bit(jHi+(i+1)*combD) << uint(i)
		}
		c1 := combLookup(&combTable1, u1, ct)
		var adj1 Point
		adj1.Add(&c1, &combNegGShift)
		c1.Select(&c1, &adj1, bit(jHi))
		R.Add(&R, &c1)
	}

	// kp = k | 1; if k was already odd (lsb == 1) R is exactly k*G,
	// otherwise R is (k+1)*G and must be corrected by subtracting G once.
	condAddOrAdjust(&R, &combNegG, 1-lsb)

	return &R
}
