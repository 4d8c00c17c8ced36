// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atom implements the expression tree: six atom variants (Num,
// Var, Fun, Pow, Mul, Add), the dirty/clean canonical-form bookkeeping,
// and the three total orders normalize relies on (order.go).
//
// robpike.io/ivy represents its expression values as an interface
// (value.Value) implemented by half a dozen concrete types (Int, BigInt,
// BigRat, Complex, Vector, ...) and dispatches on them with type
// switches throughout value/binary.go and value/unary.go. That shape
// fits ivy because each concrete type really does have independent
// representation and arithmetic. An atom tree's six variants instead
// share one recursive shape (a tag plus a handful of child atoms), so
// Atom here is a single tagged struct rather than six concrete types
// behind an interface — the same economy-of-representation call ivy
// itself makes differently for Value's Vector and Matrix, which share a
// single concrete type (vector.go) distinguished by shape rather than by
// separate Go types per rank. A *Atom plays both a read-only "view" role
// and an "owned, exclusively held" role depending on context: Go has no
// borrow checker to enforce that distinction at compile time, so it is
// purely conventional here — code that receives a *Atom it did not
// itself construct treats it as a view and does not mutate it in place;
// normalize and the Mul/Add builders construct and mutate fresh *Atom
// values before publishing them to a caller, at which point they are
// conventionally owned and clean.
package atom

import (
	"symbolica.dev/core/ident"
	"symbolica.dev/core/number"
)

// Kind tags which of the six variants an Atom holds.
type Kind uint8

const (
	KindNum Kind = iota
	KindVar
	KindFun
	KindPow
	KindMul
	KindAdd
)

func (k Kind) String() string {
	switch k {
	case KindNum:
		return "Num"
	case KindVar:
		return "Var"
	case KindFun:
		return "Fun"
	case KindPow:
		return "Pow"
	case KindMul:
		return "Mul"
	case KindAdd:
		return "Add"
	}
	return "Kind(?)"
}

// Atom is an expression tree node. The fields populated depend on Kind:
//
//	KindNum: Number
//	KindVar: ID
//	KindFun: ID (function name), Args
//	KindPow: Args[0] (base), Args[1] (exponent)
//	KindMul: Args (factors), HasCoeff
//	KindAdd: Args (terms)
//
// Dirty means "may be non-canonical"; Normalize (package normalize)
// produces atoms with Dirty == false whose entire subtree is also clean.
type Atom struct {
	Kind     Kind
	Dirty    bool
	Number   number.Number
	ID       ident.ID
	Args     []*Atom
	HasCoeff bool // KindMul only: last factor is a numeric coefficient
}

// NewNum returns a clean Num atom.
func NewNum(n number.Number) *Atom {
	return &Atom{Kind: KindNum, Number: n}
}

// NewVar returns a clean Var atom.
func NewVar(id ident.ID) *Atom {
	return &Atom{Kind: KindVar, ID: id}
}

// NewFun returns a Fun atom over args, with the given cleanliness
// inherited from the caller (callers constructing directly from parsed
// input should mark it dirty; normalize produces clean ones).
func NewFun(id ident.ID, args []*Atom, dirty bool) *Atom {
	return &Atom{Kind: KindFun, ID: id, Args: args, Dirty: dirty}
}

// NewPow returns a Pow atom with the given base and exponent.
func NewPow(base, exp *Atom, dirty bool) *Atom {
	return &Atom{Kind: KindPow, Args: []*Atom{base, exp}, Dirty: dirty}
}

// NewMul returns a Mul atom over factors.
func NewMul(factors []*Atom, hasCoeff, dirty bool) *Atom {
	return &Atom{Kind: KindMul, Args: factors, HasCoeff: hasCoeff, Dirty: dirty}
}

// NewAdd returns an Add atom over terms.
func NewAdd(terms []*Atom, dirty bool) *Atom {
	return &Atom{Kind: KindAdd, Args: terms, Dirty: dirty}
}

// Base returns a Pow atom's base. Panics if a.Kind != KindPow.
func (a *Atom) Base() *Atom {
	a.mustKind(KindPow)
	return a.Args[0]
}

// Exp returns a Pow atom's exponent. Panics if a.Kind != KindPow.
func (a *Atom) Exp() *Atom {
	a.mustKind(KindPow)
	return a.Args[1]
}

// Factors returns a Mul atom's factors. Panics if a.Kind != KindMul.
func (a *Atom) Factors() []*Atom {
	a.mustKind(KindMul)
	return a.Args
}

// Terms returns an Add atom's terms. Panics if a.Kind != KindAdd.
func (a *Atom) Terms() []*Atom {
	a.mustKind(KindAdd)
	return a.Args
}

func (a *Atom) mustKind(k Kind) {
	if a.Kind != k {
		panic("atom: expected " + k.String() + ", got " + a.Kind.String())
	}
}

// IsZero reports whether a is the literal numeric zero.
func (a *Atom) IsZero() bool {
	return a.Kind == KindNum && number.IsZero(a.Number)
}

// IsOne reports whether a is the literal numeric one.
func (a *Atom) IsOne() bool {
	return a.Kind == KindNum && number.IsOne(a.Number)
}

// IsNumeric reports whether a is a Num leaf.
func (a *Atom) IsNumeric() bool {
	return a.Kind == KindNum
}

// Clone returns a deep, independently-owned copy of a: atoms are
// value-like and ownership of a given *Atom is exclusive.
func (a *Atom) Clone() *Atom {
	if a == nil {
		return nil
	}
	c := *a
	if a.Args != nil {
		c.Args = make([]*Atom, len(a.Args))
		for i, arg := range a.Args {
			c.Args[i] = arg.Clone()
		}
	}
	return &c
}

// Equal reports whether a and b are structurally identical (used by
// factor/term merge to detect "x * x" and "x + x" shapes).
func Equal(a, b *Atom) bool {
	return Compare(a, b) == 0
}
