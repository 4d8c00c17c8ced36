// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly implements a sparse multivariate polynomial engine:
// append-with-merge storage, linear addition, heap multiplication (with
// a packed-exponent fast path for low-arity, low-degree cases), heap and
// synthetic division, and the content/replace/unify-var-map helpers.
// Grounded throughout on
// original_source/src/poly/polynomial.rs's
// MultivariatePolynomial<F,E>, translated from a field-parametrized Rust
// struct into a Go generic parametrized over a Ring[C] passed
// explicitly, since Go has no operator overloading for a type parameter
// to hook arithmetic into the way Rust's trait bounds do.
package poly

// Ring is the coefficient ring a Polynomial is built over: the
// operations the package's algorithms need, supplied by the caller
// (number.Number's Add/Mul/etc. for the rational/finite-field tower, or
// any other exact ring). A Ring value carries no state of its own beyond
// what field.Field or similarly-shaped collaborators need; polynomials
// over a finite field close over the relevant *field.Field the same way
// a ring.Element closes over its modulus in the pack's other numeric
// code.
type Ring[C any] interface {
	Zero() C
	One() C
	IsZero(C) bool
	IsOne(C) bool
	Add(a, b C) C
	Neg(a C) C
	Mul(a, b C) C
	// Equal reports structural/value equality; the package's own
	// algorithms do not call it.
	Equal(a, b C) bool
	// QuotRem performs exact or Euclidean division depending on the
	// ring; used by DivCoeff and synthetic/heap division. A ring with no natural remainder (a field) returns a
	// zero remainder always.
	QuotRem(a, b C) (q, r C)
	// Gcd returns a ring-appropriate GCD of a and b, used by Content.
	// Fields return their own unit.
	Gcd(a, b C) C
	// Less gives the ring's own total order, used only to normalize a
	// leading coefficient's sign in ratpoly; rings without a natural
	// sign (finite fields) may implement it arbitrarily since ratpoly
	// only consults it over ordered rings.
	Less(a, b C) bool
}
