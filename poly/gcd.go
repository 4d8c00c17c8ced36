// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

// GCDer computes a GCD of two polynomials over the same ring and
// variable map. A full multivariate GCD routine is a substantial
// algorithm in its own right (sparse interpolation, Zippel's algorithm,
// or similar); this package treats it as an external collaborator
// supplied by the caller rather than implementing it. Package ratpoly
// depends only on this interface.
type GCDer[C any] interface {
	Gcd(a, b *Polynomial[C]) *Polynomial[C]
}

// UnivariateGCD implements GCDer for the one-variable case via the
// Euclidean algorithm (repeated SyntheticDiv), and returns the ring's
// one (coprime) for anything with more than one variable — the
// documented boundary of what this collaborator covers.
type UnivariateGCD[C any] struct{}

// Gcd returns gcd(a,b) when both are univariate in the same variable (or
// constant), and the ring's multiplicative identity otherwise.
func (UnivariateGCD[C]) Gcd(a, b *Polynomial[C]) *Polynomial[C] {
	if a.IsZero() {
		return b.Clone()
	}
	if b.IsZero() {
		return a.Clone()
	}
	va, vb := univariateVar(a), univariateVar(b)
	if va == -1 || vb == -1 || (va != vb && !a.IsConstant() && !b.IsConstant()) {
		return NewConstant(a.Ring, a.NVars, a.VarMap, a.Ring.One())
	}

	x, y := a.Clone(), b.Clone()
	for !y.IsZero() {
		_, r := SyntheticDiv(x, y)
		x, y = y, r
	}
	return x
}
