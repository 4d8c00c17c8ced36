// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import "math/big"

// Pow returns base^e for an integer exponent e, supporting negative e via
// reciprocation, using binary squaring (substituting repeated squaring
// for repeated multiplication is always safe for an associative, exact
// ring operation). Field elements use Field.Pow directly, since
// exponentiation there is modular, not rational.
func Pow(base Number, e int64) Number {
	if f, ok := base.(FF); ok {
		if e < 0 {
			panic("number: negative exponent of a finite-field element; invert first")
		}
		return FF{Elem: f.Field.Pow(f.Elem, uint64(e)), Field: f.Field}
	}
	if e == 0 {
		return Int(1)
	}
	if e < 0 {
		return Pow(Recip(base), -e)
	}

	result := Number(Int(1))
	b := base
	for e != 0 {
		if e&1 != 0 {
			result = Mul(result, b)
		}
		b = Mul(b, b)
		e >>= 1
	}
	return result
}

// PowRational is the algebraic simplification used when normalizing
// Pow(base, exp) and both are numeric: base = p/q, exp = a/b. The
// integer part of the exponent's sign is always extracted (a negative
// exponent flips the base to its reciprocal); when the exponent has
// unit denominator, it is fully evaluated and residualExp == 1/1 so the
// caller drops the Pow wrapper entirely. When the denominator is not 1
// (a genuinely irrational power, e.g. x^(1/2)), no further extraction
// is performed: factoring an integer power out of a fractional exponent
// would require representing the result as base^k * base^(r/b), i.e.
// two atoms (a Mul of a Num and a Pow) rather than the single Pow this
// function's caller (the normalizer's Pow branch) is contracted to
// produce — that term-collecting-via-expansion is left to a separate
// expansion pass. Only the sign is extracted for the fractional case;
// fractional-exponent atoms pass through unevaluated beyond that.
func PowRational(base, exp Number) (newBase, newExp Number) {
	expNum, expDen := rationalParts(exp)

	if expNum.Sign() < 0 {
		base = Recip(base)
		expNum = new(big.Int).Neg(expNum)
	}

	if expDen.Cmp(bigOne) == 0 {
		return bigPow(base, expNum), Int(1)
	}

	return base, normalizeBig(expNum, new(big.Int).Set(expDen))
}

// rationalParts extracts a, b (b > 0) from a numeric Number. Panics if n
// is a finite-field element: field and rational numbers never mix in
// the same atom tree.
func rationalParts(n Number) (num, den *big.Int) {
	switch v := n.(type) {
	case Small:
		return big.NewInt(v.N), big.NewInt(v.D)
	case Big:
		return new(big.Int).Set(v.Num), new(big.Int).Set(v.Den)
	}
	panic(unreachable(n))
}

// bigPow raises base to a non-negative, potentially large integer power.
func bigPow(base Number, e *big.Int) Number {
	if e.Sign() == 0 {
		return Int(1)
	}
	if e.IsInt64() {
		return Pow(base, e.Int64())
	}
	// An exponent too large to fit in int64 can only make sense for a
	// base that reduces to 0, 1, or -1; anything else would require an
	// astronomically large result.
	if IsZero(base) {
		return Int(0)
	}
	if IsOne(base) {
		return Int(1)
	}
	panic("number: exponent too large")
}

// Gcd returns the GCD of two integer numbers (D == 1 for Small/Big), or
// the field unit for finite-field elements (the field's Euclidean
// structure is trivial: every nonzero element is a unit).
func Gcd(a, b Number) Number {
	if f, ok := a.(FF); ok {
		return FF{Elem: f.Field.One(), Field: f.Field}
	}
	an := mustInt(a)
	bn := mustInt(b)
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(an), new(big.Int).Abs(bn))
	return demote(g, big.NewInt(1))
}

// QuotRem returns (a div b, a mod b) with Euclidean (non-negative)
// remainder for integer numbers, or (a/b, 0) for finite-field elements
// (division in a field always divides exactly).
func QuotRem(a, b Number) (q, r Number) {
	if f, ok := a.(FF); ok {
		bf := mustFF(b)
		return FF{Elem: f.Field.Div(f.Elem, bf.Elem), Field: f.Field}, FF{Elem: 0, Field: f.Field}
	}
	an := mustInt(a)
	bn := mustInt(b)
	if bn.Sign() == 0 {
		panic("number: division by zero")
	}
	qq, rr := new(big.Int), new(big.Int)
	qq.QuoRem(an, bn, rr)
	if rr.Sign() < 0 {
		if bn.Sign() > 0 {
			rr.Add(rr, bn)
			qq.Sub(qq, big.NewInt(1))
		} else {
			rr.Sub(rr, bn)
			qq.Add(qq, big.NewInt(1))
		}
	}
	return demote(qq, big.NewInt(1)), demote(rr, big.NewInt(1))
}

func mustInt(n Number) *big.Int {
	switch v := n.(type) {
	case Small:
		if v.D != 1 {
			panic("number: expected integer, got rational " + v.String())
		}
		return big.NewInt(v.N)
	case Big:
		if v.Den.Cmp(bigOne) != 0 {
			panic("number: expected integer, got rational " + v.String())
		}
		return new(big.Int).Set(v.Num)
	}
	panic(unreachable(n))
}

// Binomial returns C(n, k) as an exact integer, using
// gonum.org/v1/gonum/stat/combin's machine-word implementation as a fast
// path for n <= smallBinomialLimit and falling back to arbitrary precision
// for every larger n.
func Binomial(n, k int64) Number {
	if n < 0 || k < 0 || k > n {
		return Int(0)
	}
	if v, ok := combinBinomial(int(n), int(k)); ok {
		return Int(int64(v))
	}
	return demote(new(big.Int).Binomial(n, k), big.NewInt(1))
}

// Multinomial returns n! / (k1! k2! ... km!) where n = sum(ks), as an
// exact integer.
func Multinomial(ks []int64) Number {
	var total int64
	for _, k := range ks {
		total += k
	}
	result := big.NewInt(1)
	remaining := total
	for _, k := range ks {
		result.Mul(result, new(big.Int).Binomial(remaining, k))
		remaining -= k
	}
	return demote(result, big.NewInt(1))
}
