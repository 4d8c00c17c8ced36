// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numring adapts package number's rational/finite-field number
// tower to the poly.Ring[C] interface package poly's polynomials are
// generic over, so callers can build poly.Polynomial[number.Number]
// values directly on top of the number tower without poly needing to
// import number (poly is deliberately coefficient-ring-agnostic; see
// poly/ring.go).
package numring

import "symbolica.dev/core/number"

// Ring is the poly.Ring[number.Number] implementation used for
// integer-coefficient polynomials — the ring original_source/src/poly
// calls IntegerRing, the only coefficient ring its polynomials are ever
// built over directly (package ratpoly, not package poly, is where
// general rational numbers live, as a ratio of two integer-coefficient
// polynomials). Every number.Number value flowing through operations
// here must be an integer (D==1 for Small/Big, or any FF element, which
// is always integral in its residue). Its zero value is ready to use —
// number.Number's operations carry no ring-specific state of their own
// (a finite-field Number closes over its own *field.Field).
type Ring struct{}

func (Ring) Zero() number.Number { return number.Int(0) }
func (Ring) One() number.Number  { return number.Int(1) }

func (Ring) IsZero(n number.Number) bool { return number.IsZero(n) }
func (Ring) IsOne(n number.Number) bool  { return number.IsOne(n) }

func (Ring) Add(a, b number.Number) number.Number { return number.Add(a, b) }
func (Ring) Neg(a number.Number) number.Number    { return number.Neg(a) }
func (Ring) Mul(a, b number.Number) number.Number { return number.Mul(a, b) }

func (Ring) Equal(a, b number.Number) bool { return number.Compare(a, b) == 0 }

func (Ring) QuotRem(a, b number.Number) (q, r number.Number) {
	return number.QuotRem(a, b)
}

func (Ring) Gcd(a, b number.Number) number.Number { return number.Gcd(a, b) }

func (Ring) Less(a, b number.Number) bool { return number.Compare(a, b) < 0 }
