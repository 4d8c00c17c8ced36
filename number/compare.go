// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// Compare returns -1, 0, or 1 as a compares less than, equal to, or
// greater than b. Rationals compare via cross-multiplication; finite-field
// elements are incomparable with rationals and with each other across
// different fields — they never appear in the same atom tree, so
// comparing across fields is a programmer error.
func Compare(a, b Number) int {
	if af, ok := a.(FF); ok {
		bf := mustFF(b)
		if af.Field != bf.Field {
			panic("number: comparing finite-field elements from different fields")
		}
		// Montgomery form preserves order of the standard residues only
		// after conversion; compare the canonical (non-Montgomery) values.
		x, y := af.Field.FromMontgomery(af.Elem), bf.Field.FromMontgomery(bf.Elem)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}

	an, ad := toBig(a)
	bn, bd := toBig(b)
	// a/ad vs b/bd, both ad, bd > 0: compare an*bd vs bn*ad.
	lhs := an.Mul(an, bd)
	rhs := bn.Mul(bn, ad)
	return lhs.Cmp(rhs)
}

// CompareAbs compares |a| and |b|.
func CompareAbs(a, b Number) int {
	return Compare(absNumber(a), absNumber(b))
}

func absNumber(n Number) Number {
	if Compare0(n) < 0 {
		return Neg(n)
	}
	return n
}

// Compare0 compares n against zero; a small convenience used by
// absNumber that avoids allocating a zero Number on the fast path.
func Compare0(n Number) int {
	switch v := n.(type) {
	case Small:
		switch {
		case v.N < 0:
			return -1
		case v.N > 0:
			return 1
		default:
			return 0
		}
	case Big:
		return v.Num.Sign()
	case FF:
		if v.Elem == 0 {
			return 0
		}
		return 1
	}
	panic(unreachable(n))
}
