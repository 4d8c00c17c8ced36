// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import "symbolica.dev/core/ident"

// Content returns the GCD of every coefficient, via the ring's Euclidean
// operation.
func (p *Polynomial[C]) Content() C {
	if len(p.Coeffs) == 0 {
		return p.Ring.Zero()
	}
	g := p.Coeffs[0]
	for _, c := range p.Coeffs[1:] {
		g = p.Ring.Gcd(g, c)
		if p.Ring.IsOne(g) {
			break
		}
	}
	return g
}

// DivCoeff divides every coefficient of p exactly by c, returning a new
// polynomial. Exactness is the caller's responsibility; passing a c that
// does not divide every coefficient evenly produces an
// undefined (silently wrong, not panicking) result, matching the
// "programmer ensures divisibility" contract content()/primitive-part
// callers rely on.
func (p *Polynomial[C]) DivCoeff(c C) *Polynomial[C] {
	out := p.Clone()
	for i, v := range out.Coeffs {
		q, _ := out.Ring.QuotRem(v, c)
		out.Coeffs[i] = q
	}
	return out
}

// UnivariateEntry pairs a coefficient polynomial (in every variable
// except x) with the degree in x it was collected from.
type UnivariateEntry[C any] struct {
	Coeff  *Polynomial[C]
	Degree int
}

// ToUnivariate splits p into (coefficient polynomial, degree in x)
// pairs, one per distinct power of variable x appearing in p. Grounded
// on original_source/src/poly/polynomial.rs's
// to_univariate_polynomial_list.
func (p *Polynomial[C]) ToUnivariate(x int) []UnivariateEntry[C] {
	byDegree := make(map[int]*Polynomial[C])
	var degrees []int
	for i := 0; i < p.NTerms(); i++ {
		row := p.ExpRow(i)
		d := int(row[x])
		coeffPoly, ok := byDegree[d]
		if !ok {
			coeffPoly = New(p.Ring, p.NVars, p.VarMap)
			byDegree[d] = coeffPoly
			degrees = append(degrees, d)
		}
		e := append([]uint16(nil), row...)
		e[x] = 0
		coeffPoly.AppendMonomial(p.Coeffs[i], e)
	}
	out := make([]UnivariateEntry[C], 0, len(degrees))
	for _, d := range sortedInts(degrees) {
		out = append(out, UnivariateEntry[C]{Coeff: byDegree[d], Degree: d})
	}
	return out
}

func sortedInts(xs []int) []int {
	out := append([]int(nil), xs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Replace substitutes ring element v into variable n, returning a new
// polynomial with that variable's contribution folded into the
// coefficients.
func (p *Polynomial[C]) Replace(n int, v C) *Polynomial[C] {
	out := New(p.Ring, p.NVars, p.VarMap)
	for i := 0; i < p.NTerms(); i++ {
		row := p.ExpRow(i)
		c := p.Coeffs[i]
		pw := p.Ring.One()
		for k := uint16(0); k < row[n]; k++ {
			pw = p.Ring.Mul(pw, v)
		}
		e := append([]uint16(nil), row...)
		e[n] = 0
		out.AppendMonomial(p.Ring.Mul(c, pw), e)
	}
	return out
}

// UnifyVarMap aligns the variable maps of p and q, rewriting each
// polynomial's exponent rows onto the unified map. Unification order
// follows discovery order in p, then newly discovered variables from q.
// Both inputs are replaced by rebuilt polynomials whose
// sort invariant is restored by re-appending every monomial under the
// new map.
func UnifyVarMap[C any](p, q *Polynomial[C]) (*Polynomial[C], *Polynomial[C]) {
	unified := append([]ident.ID(nil), p.VarMap...)
	index := make(map[ident.ID]int, len(unified))
	for i, id := range unified {
		index[id] = i
	}
	for _, id := range q.VarMap {
		if _, ok := index[id]; !ok {
			index[id] = len(unified)
			unified = append(unified, id)
		}
	}

	return rebuild(p, unified, index), rebuild(q, unified, index)
}

func rebuild[C any](p *Polynomial[C], unified []ident.ID, index map[ident.ID]int) *Polynomial[C] {
	if len(unified) == len(p.VarMap) {
		same := true
		for i, id := range p.VarMap {
			if unified[i] != id {
				same = false
				break
			}
		}
		if same {
			return p.Clone()
		}
	}

	out := New(p.Ring, len(unified), unified)
	posInP := make([]int, len(p.VarMap))
	for i, id := range p.VarMap {
		posInP[i] = index[id]
	}
	for i := 0; i < p.NTerms(); i++ {
		row := p.ExpRow(i)
		e := make([]uint16, len(unified))
		for j, v := range row {
			e[posInP[j]] = v
		}
		out.AppendMonomial(p.Coeffs[i], e)
	}
	return out
}
