// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ratpoly implements a rational-polynomial field: a
// (numerator, denominator) pair of package poly polynomials sharing a
// variable map, kept coprime with a sign- or unit-normalized
// denominator leading coefficient. Grounded on
// original_source/src/rings/rational_polynomial.rs's
// RationalPolynomial and its FromNumeratorAndDenominator constructors.
package ratpoly

import "symbolica.dev/core/poly"

// RatPoly is a ratio of two polynomials over the same ring. The zero
// value is not meaningful; construct with New.
type RatPoly[C any] struct {
	Num *poly.Polynomial[C]
	Den *poly.Polynomial[C]
	gcd poly.GCDer[C]
}

// New builds a RatPoly from a numerator and denominator: unify variable
// maps, accept as-is if the
// denominator is one, optionally cancel a GCD, then normalize the
// denominator's leading coefficient (positive over an ordered ring,
// monic over a field — field-ness is given by the isField argument;
// callers of integer rings get the sign convention, callers of
// a field ring get the monic convention, matching
// rational_polynomial.rs's two separate FromNumeratorAndDenominator impls
// for IntegerRing vs FiniteField).
func New[C any](gcd poly.GCDer[C], num, den *poly.Polynomial[C], doGCD, isField bool) *RatPoly[C] {
	if den.IsZero() {
		panic("ratpoly: zero denominator")
	}
	num, den = poly.UnifyVarMap(num, den)

	if isRingOne(den) {
		return &RatPoly[C]{Num: num, Den: den, gcd: gcd}
	}

	if doGCD {
		g := gcd.Gcd(num, den)
		if !isRingOne(g) {
			q1, r1 := poly.HeapDiv(num, g, true)
			q2, r2 := poly.HeapDiv(den, g, true)
			if r1.IsZero() && r2.IsZero() {
				num, den = q1, q2
			}
		}
	}

	return normalizeDen(gcd, num, den, isField)
}

func isRingOne[C any](p *poly.Polynomial[C]) bool {
	return p.NTerms() == 1 && p.Ring.IsOne(p.Coeffs[0]) && allZero(p.ExpRow(0))
}

func allZero(e []uint16) bool {
	for _, v := range e {
		if v != 0 {
			return false
		}
	}
	return true
}

// normalizeDen applies the leading-coefficient normalization: over an
// ordered (non-field) ring, flip both signs so the denominator's
// leading coefficient is positive; over a field, divide both by the
// denominator's leading coefficient so it becomes exactly one.
func normalizeDen[C any](gcd poly.GCDer[C], num, den *poly.Polynomial[C], isField bool) *RatPoly[C] {
	if den.IsZero() {
		panic("ratpoly: zero denominator")
	}
	lc := den.Coeffs[den.NTerms()-1]
	if isField {
		if !den.Ring.IsOne(lc) {
			num = num.DivCoeff(lc)
			den = den.DivCoeff(lc)
		}
	} else if den.Ring.Less(lc, den.Ring.Zero()) {
		num = poly.Neg(num)
		den = poly.Neg(den)
	}
	return &RatPoly[C]{Num: num, Den: den, gcd: gcd}
}

// IsZero reports whether r is the zero rational polynomial.
func (r *RatPoly[C]) IsZero() bool { return r.Num.IsZero() }

// Neg returns -r.
func Neg[C any](r *RatPoly[C]) *RatPoly[C] {
	return &RatPoly[C]{Num: poly.Neg(r.Num), Den: r.Den, gcd: r.gcd}
}

// Inv returns 1/r. Panics if r is zero — inversion of zero is a
// programmer error, not a recoverable condition.
func Inv[C any](r *RatPoly[C], isField bool) *RatPoly[C] {
	if r.IsZero() {
		panic("ratpoly: cannot invert 0")
	}
	return New(r.gcd, r.Den, r.Num, true, isField)
}

// Add returns a+b, via a partial-GCD-cancellation strategy: g =
// gcd(den_a, den_b); reduce one side by g; form num_a*(den_b/g) +
// num_b*(den_a/g) over the common denominator den_a*den_b/g; cancel any
// remaining GCD in the result.
func Add[C any](a, b *RatPoly[C], isField bool) *RatPoly[C] {
	g := a.gcd.Gcd(a.Den, b.Den)
	da, _ := poly.HeapDiv(a.Den, g, true)
	db, _ := poly.HeapDiv(b.Den, g, true)

	num := poly.Add(poly.HeapMul(a.Num, db), poly.HeapMul(b.Num, da))
	den := poly.HeapMul(a.Den, db)
	return New(a.gcd, num, den, true, isField)
}

// Sub returns a-b.
func Sub[C any](a, b *RatPoly[C], isField bool) *RatPoly[C] {
	return Add(a, Neg(b), isField)
}

// Mul returns a*b, via a crosswise GCD extraction: gcd(num_a, den_b)
// and gcd(den_a, num_b) are factored out before the
// actual multiplications, avoiding an intermediate blowup that a later
// GCD-cancellation pass on the product would have to undo.
func Mul[C any](a, b *RatPoly[C], isField bool) *RatPoly[C] {
	g1 := a.gcd.Gcd(a.Num, b.Den)
	na, _ := poly.HeapDiv(a.Num, g1, true)
	dbRed, _ := poly.HeapDiv(b.Den, g1, true)

	g2 := a.gcd.Gcd(a.Den, b.Num)
	da, _ := poly.HeapDiv(a.Den, g2, true)
	nb, _ := poly.HeapDiv(b.Num, g2, true)

	num := poly.HeapMul(na, nb)
	den := poly.HeapMul(da, dbRed)
	return New(a.gcd, num, den, true, isField)
}

// Div returns a/b.
func Div[C any](a, b *RatPoly[C], isField bool) *RatPoly[C] {
	return Mul(a, Inv(b, isField), isField)
}

// Pow returns r^e for a non-negative integer exponent e, via binary
// squaring.
func Pow[C any](r *RatPoly[C], e uint64, isField bool) *RatPoly[C] {
	result := New(r.gcd, oneLike(r.Num), oneLike(r.Num), false, isField)
	base := r
	for e != 0 {
		if e&1 != 0 {
			result = Mul(result, base, isField)
		}
		base = Mul(base, base, isField)
		e >>= 1
	}
	return result
}

func oneLike[C any](p *poly.Polynomial[C]) *poly.Polynomial[C] {
	return poly.NewConstant(p.Ring, p.NVars, p.VarMap, p.Ring.One())
}
