// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

import (
	"symbolica.dev/core/ident"
	"symbolica.dev/core/number"
)

// family gives the general-order cross-variant rank: Var < Add < Mul <
// Pow < Fun < Num.
func family(k Kind) int {
	switch k {
	case KindVar:
		return 0
	case KindAdd:
		return 1
	case KindMul:
		return 2
	case KindPow:
		return 3
	case KindFun:
		return 4
	case KindNum:
		return 5
	}
	panic("atom: bad kind")
}

// Compare implements the general total order over atoms: used for
// sub-atom comparison (Pow base/exponent, Fun arguments) and as the
// building block the other two orders specialize.
func Compare(a, b *Atom) int {
	if a.Kind == KindNum && b.Kind == KindNum {
		return number.Compare(a.Number, b.Number)
	}
	if a.Kind == KindVar && b.Kind == KindVar {
		return cmpID(a.ID, b.ID)
	}
	if a.Kind == KindPow && b.Kind == KindPow {
		if c := Compare(a.Base(), b.Base()); c != 0 {
			return c
		}
		return Compare(a.Exp(), b.Exp())
	}
	if a.Kind == KindMul && b.Kind == KindMul {
		return cmpSeq(a.Args, b.Args)
	}
	if a.Kind == KindAdd && b.Kind == KindAdd {
		return cmpSeq(a.Args, b.Args)
	}
	if a.Kind == KindFun && b.Kind == KindFun {
		if c := cmpID(a.ID, b.ID); c != 0 {
			return c
		}
		if c := cmpInt(len(a.Args), len(b.Args)); c != 0 {
			return c
		}
		return cmpSeq(a.Args, b.Args)
	}
	return cmpInt(family(a.Kind), family(b.Kind))
}

// cmpSeq compares two argument lists length-first, then element-wise.
func cmpSeq(a, b []*Atom) int {
	if c := cmpInt(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func cmpID(a, b ident.ID) int { return cmpInt(int(a), int(b)) }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// powBase returns the base of a Pow atom, or the atom itself if it is
// not a Pow — the "sort a power by its base only" rule shared by factor
// order and term order.
func powBase(a *Atom) *Atom {
	if a.Kind == KindPow {
		return a.Base()
	}
	return a
}

// FactorCompare sorts the factors of a single Mul so that like bases
// (x and x^2) land adjacent
// for factor merge (normalize/merge.go). Mul is never itself a factor
// (nesting is flattened before sorting), matching
// original_source/src/normalize.rs's cmp_factors, which asserts the same
// via unreachable!().
func FactorCompare(a, b *Atom) int {
	if a.Kind == KindMul || b.Kind == KindMul {
		panic("atom: Mul cannot appear as a factor")
	}
	if a.Kind == KindNum && b.Kind == KindNum {
		return 0
	}
	if a.Kind == KindNum {
		return 1
	}
	if b.Kind == KindNum {
		return -1
	}
	ab, bb := powBase(a), powBase(b)
	if c := Compare(ab, bb); c != 0 {
		return c
	}
	// Equal bases: a bare base sorts before its own power (x before
	// x^2), and two powers of the same base are already equal here
	// (their adjacency is what lets factor merge combine them).
	aIsPow, bIsPow := a.Kind == KindPow, b.Kind == KindPow
	switch {
	case aIsPow && !bIsPow:
		return 1
	case !aIsPow && bIsPow:
		return -1
	default:
		return 0
	}
}

// TermCompare sorts the terms of a single Add so that like terms (x
// and x*2) land adjacent for term
// merge. A Mul whose only non-numeric factor is x is treated as x for
// this comparison; Add never appears nested inside Add.
func TermCompare(a, b *Atom) int {
	if a.Kind == KindAdd || b.Kind == KindAdd {
		panic("atom: Add cannot appear as a term")
	}
	if a.Kind == KindNum && b.Kind == KindNum {
		return 0
	}
	if a.Kind == KindNum {
		return 1
	}
	if b.Kind == KindNum {
		return -1
	}
	ab, _ := termBase(a)
	bb, _ := termBase(b)
	return Compare(ab, bb)
}

// termBase returns the "shape" atom used for term-order adjacency: a
// Mul(x, Num(c)) reduces to x so that x and x*2 sort next to each
// other, matching original_source/src/normalize.rs's cmp_terms, which
// special-cases a two-factor Mul ending in a Num the same way.
func termBase(a *Atom) (base *Atom, isCoeffMul bool) {
	if a.Kind == KindMul && len(a.Args) == 2 && a.Args[1].Kind == KindNum {
		return a.Args[0], true
	}
	return a, false
}
