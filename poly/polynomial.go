// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"slices"

	"symbolica.dev/core/ident"
)

// Polynomial is a sparse multivariate polynomial over ring R:
// Coeffs[i] is the coefficient of the monomial whose V exponents
// are Exps[i*NVars : (i+1)*NVars]. Monomials are kept sorted strictly
// ascending by lexicographic comparison of their exponent rows, with the
// leading monomial at the back, and no coefficient is ever zero.
type Polynomial[C any] struct {
	Coeffs []C
	Exps   []uint16
	NVars  int
	VarMap []ident.ID // optional, len == NVars when present
	Ring   Ring[C]
}

// New returns an empty polynomial over nvars variables.
func New[C any](ring Ring[C], nvars int, varMap []ident.ID) *Polynomial[C] {
	return &Polynomial[C]{NVars: nvars, VarMap: varMap, Ring: ring}
}

// NewConstant returns the constant polynomial c (zero terms if c is the
// ring's zero).
func NewConstant[C any](ring Ring[C], nvars int, varMap []ident.ID, c C) *Polynomial[C] {
	p := New(ring, nvars, varMap)
	p.AppendMonomialBack(c, make([]uint16, nvars))
	return p
}

// NTerms returns the number of nonzero monomials.
func (p *Polynomial[C]) NTerms() int { return len(p.Coeffs) }

// IsZero reports whether p has no terms.
func (p *Polynomial[C]) IsZero() bool { return len(p.Coeffs) == 0 }

// IsConstant reports whether p is zero or a single constant term.
func (p *Polynomial[C]) IsConstant() bool {
	if len(p.Coeffs) == 0 {
		return true
	}
	if len(p.Coeffs) > 1 {
		return false
	}
	for _, e := range p.ExpRow(0) {
		if e != 0 {
			return false
		}
	}
	return true
}

// ExpRow returns the exponent row for term i.
func (p *Polynomial[C]) ExpRow(i int) []uint16 {
	return p.Exps[i*p.NVars : (i+1)*p.NVars]
}

// LastExpRow returns the leading (back) monomial's exponent row.
func (p *Polynomial[C]) LastExpRow() []uint16 {
	return p.ExpRow(len(p.Coeffs) - 1)
}

// Clone returns a deep, independently-owned copy of p.
func (p *Polynomial[C]) Clone() *Polynomial[C] {
	return &Polynomial[C]{
		Coeffs: append([]C(nil), p.Coeffs...),
		Exps:   append([]uint16(nil), p.Exps...),
		NVars:  p.NVars,
		VarMap: append([]ident.ID(nil), p.VarMap...),
		Ring:   p.Ring,
	}
}

// cmpExp gives the lexicographic order on two exponent rows, the sort
// key monomials are kept ordered by.
func cmpExp(a, b []uint16) int {
	return slices.Compare(a, b)
}

// AppendMonomialBack appends (c,e) to the back of the polynomial,
// requiring e to be >= the current last exponent row; O(1) amortized.
// Used by producers that already emit monomials in ascending order,
// such as Add and MulMonomial.
func (p *Polynomial[C]) AppendMonomialBack(c C, e []uint16) {
	if p.Ring.IsZero(c) {
		return
	}
	if len(p.Coeffs) > 0 && cmpExp(e, p.LastExpRow()) == 0 {
		i := len(p.Coeffs) - 1
		p.Coeffs[i] = p.Ring.Add(p.Coeffs[i], c)
		if p.Ring.IsZero(p.Coeffs[i]) {
			p.Coeffs = p.Coeffs[:i]
			p.Exps = p.Exps[:i*p.NVars]
		}
		return
	}
	p.Coeffs = append(p.Coeffs, c)
	p.Exps = append(p.Exps, e...)
}

// AppendMonomial inserts (c,e) maintaining the sorted invariant via
// binary search, with fast paths for append-at-back and prepend.
func (p *Polynomial[C]) AppendMonomial(c C, e []uint16) {
	if p.Ring.IsZero(c) {
		return
	}
	if len(e) != p.NVars {
		panic("poly: exponent row length mismatch")
	}

	n := len(p.Coeffs)
	if n == 0 || cmpExp(p.LastExpRow(), e) < 0 {
		p.Coeffs = append(p.Coeffs, c)
		p.Exps = append(p.Exps, e...)
		return
	}
	if cmpExp(p.ExpRow(0), e) > 0 {
		p.Coeffs = append([]C{c}, p.Coeffs...)
		p.Exps = append(append([]uint16(nil), e...), p.Exps...)
		return
	}

	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		switch cmpExp(e, p.ExpRow(mid)) {
		case 0:
			p.Coeffs[mid] = p.Ring.Add(p.Coeffs[mid], c)
			if p.Ring.IsZero(p.Coeffs[mid]) {
				p.removeAt(mid)
			}
			return
		case 1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	p.insertAt(lo, c, e)
}

func (p *Polynomial[C]) removeAt(i int) {
	p.Coeffs = append(p.Coeffs[:i], p.Coeffs[i+1:]...)
	off := i * p.NVars
	p.Exps = append(p.Exps[:off], p.Exps[off+p.NVars:]...)
}

func (p *Polynomial[C]) insertAt(i int, c C, e []uint16) {
	p.Coeffs = append(p.Coeffs, p.Ring.Zero())
	copy(p.Coeffs[i+1:], p.Coeffs[i:])
	p.Coeffs[i] = c

	off := i * p.NVars
	p.Exps = append(p.Exps, make([]uint16, p.NVars)...)
	copy(p.Exps[off+p.NVars:], p.Exps[off:])
	copy(p.Exps[off:off+p.NVars], e)
}

// Add returns p+q (both over the same ring and variable count; callers
// unify variable maps first via UnifyVarMap if they differ). Linear
// merge of the two sorted monomial streams.
func Add[C any](p, q *Polynomial[C]) *Polynomial[C] {
	if p.NVars != q.NVars {
		panic("poly: Add requires unified variable maps")
	}
	out := New(p.Ring, p.NVars, p.VarMap)
	i, j := 0, 0
	for i < len(p.Coeffs) && j < len(q.Coeffs) {
		switch cmpExp(p.ExpRow(i), q.ExpRow(j)) {
		case -1:
			out.AppendMonomialBack(p.Coeffs[i], p.ExpRow(i))
			i++
		case 1:
			out.AppendMonomialBack(q.Coeffs[j], q.ExpRow(j))
			j++
		default:
			sum := p.Ring.Add(p.Coeffs[i], q.Coeffs[j])
			if !p.Ring.IsZero(sum) {
				out.AppendMonomialBack(sum, p.ExpRow(i))
			}
			i++
			j++
		}
	}
	for ; i < len(p.Coeffs); i++ {
		out.AppendMonomialBack(p.Coeffs[i], p.ExpRow(i))
	}
	for ; j < len(q.Coeffs); j++ {
		out.AppendMonomialBack(q.Coeffs[j], q.ExpRow(j))
	}
	return out
}

// Neg returns -p.
func Neg[C any](p *Polynomial[C]) *Polynomial[C] {
	out := p.Clone()
	for i, c := range out.Coeffs {
		out.Coeffs[i] = out.Ring.Neg(c)
	}
	return out
}

// MulMonomial returns p * c * x^e (a single monomial), used internally
// as heap multiplication's fast path when one operand has exactly one
// term.
func (p *Polynomial[C]) MulMonomial(c C, e []uint16) *Polynomial[C] {
	out := New(p.Ring, p.NVars, p.VarMap)
	for i := range p.Coeffs {
		ne := addExp(p.ExpRow(i), e)
		out.AppendMonomialBack(p.Ring.Mul(p.Coeffs[i], c), ne)
	}
	return out
}

func addExp(a, b []uint16) []uint16 {
	out := make([]uint16, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
