// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number implements a number tower: a small-int fast path over
// int64, an arbitrary-precision fallback over math/big, and a
// finite-field variant tying into package field. Every binary operation
// attempts the int64 form first with checked arithmetic; on overflow it
// promotes to the big form, and every result that fits back into int64
// is demoted. This is the same representation discipline
// ivy/value/int.go and ivy/value/bigint.go use for Int/BigInt, generalized
// here to rationals and carried through consistently by FusedAddMul/
// FusedSubMul.
package number

import (
	"fmt"
	"math"
	"math/big"

	"symbolica.dev/core/field"
)

// Number is one of Small (natural rational, int64 numerator/denominator),
// Big (arbitrary-precision rational), or FF (an element of a named
// Montgomery prime field).
type Number interface {
	fmt.Stringer
	isNumber()
}

// Small is a reduced rational with int64 numerator and denominator: D > 0
// and gcd(|N|, D) == 1. When D == 1 the value is an integer.
type Small struct {
	N, D int64
}

// Big is a reduced rational with arbitrary-precision numerator and
// denominator: Den.Sign() > 0 and gcd(Num, Den) == 1.
type Big struct {
	Num, Den *big.Int
}

// FF is an element of a finite field, held in the field's Montgomery form.
type FF struct {
	Elem  uint64
	Field *field.Field
}

func (Small) isNumber() {}
func (Big) isNumber()   {}
func (FF) isNumber()    {}

// Int returns the Small integer n/1.
func Int(n int64) Small { return Small{N: n, D: 1} }

// Rat returns the normalized Small rational n/d. It panics if d == 0 and
// never promotes to Big: reduction by the gcd only shrinks magnitudes.
func Rat(n, d int64) Small {
	if d == 0 {
		panic("number: zero denominator")
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcdInt64(abs64(n), d)
	if g > 1 {
		n, d = n/g, d/g
	}
	return Small{N: n, D: d}
}

// BigRat returns a normalized Big rational from arbitrary-precision n, d.
func BigRat(n, d *big.Int) Number {
	return normalizeBig(new(big.Int).Set(n), new(big.Int).Set(d))
}

// FieldElem returns a finite-field number. elem must already be in
// Montgomery form relative to f.
func FieldElem(elem uint64, f *field.Field) FF {
	return FF{Elem: elem, Field: f}
}

// normalizeBig reduces n/d to lowest terms with a positive denominator and
// demotes to Small when both fit in int64. It takes ownership of n and d.
func normalizeBig(n, d *big.Int) Number {
	if d.Sign() == 0 {
		panic("number: zero denominator")
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(bigOne) > 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return demote(n, d)
}

// demote returns a Small if both n and d fit in int64, else a Big. It takes
// ownership of n and d.
func demote(n, d *big.Int) Number {
	if n.IsInt64() && d.IsInt64() {
		return Small{N: n.Int64(), D: d.Int64()}
	}
	return Big{Num: n, Den: d}
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// String implements fmt.Stringer.
func (s Small) String() string {
	if s.D == 1 {
		return fmt.Sprintf("%d", s.N)
	}
	return fmt.Sprintf("%d/%d", s.N, s.D)
}

func (b Big) String() string {
	if b.Den.Cmp(bigOne) == 0 {
		return b.Num.String()
	}
	return b.Num.String() + "/" + b.Den.String()
}

func (f FF) String() string {
	return fmt.Sprintf("%d (mod %d)", f.Field.FromMontgomery(f.Elem), f.Field.Prime())
}

// IsZero reports whether n is the additive identity.
func IsZero(n Number) bool {
	switch v := n.(type) {
	case Small:
		return v.N == 0
	case Big:
		return v.Num.Sign() == 0
	case FF:
		return v.Elem == 0
	}
	panic(unreachable(n))
}

// IsOne reports whether n is the multiplicative identity.
func IsOne(n Number) bool {
	switch v := n.(type) {
	case Small:
		return v.N == 1 && v.D == 1
	case Big:
		return v.Num.Cmp(bigOne) == 0 && v.Den.Cmp(bigOne) == 0
	case FF:
		return v.Field.IsOne(v.Elem)
	}
	panic(unreachable(n))
}

// IsInteger reports whether n has unit denominator.
func IsInteger(n Number) bool {
	switch v := n.(type) {
	case Small:
		return v.D == 1
	case Big:
		return v.Den.Cmp(bigOne) == 0
	case FF:
		return true
	}
	panic(unreachable(n))
}

// Normalize re-reduces n to its canonical form. Small and Big values built
// through this package's constructors are already normalized; Normalize
// exists for callers (e.g. the normalizer) that hold a Number built by
// direct struct literal construction and want the invariant restored.
func Normalize(n Number) Number {
	switch v := n.(type) {
	case Small:
		return Rat(v.N, v.D)
	case Big:
		return normalizeBig(new(big.Int).Set(v.Num), new(big.Int).Set(v.Den))
	case FF:
		return v
	}
	panic(unreachable(n))
}

func unreachable(n Number) string {
	return fmt.Sprintf("number: unhandled Number variant %T", n)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func toBig(n Number) (num, den *big.Int) {
	switch v := n.(type) {
	case Small:
		return big.NewInt(v.N), big.NewInt(v.D)
	case Big:
		return new(big.Int).Set(v.Num), new(big.Int).Set(v.Den)
	}
	panic(unreachable(n))
}

func mustFF(n Number) FF {
	if v, ok := n.(FF); ok {
		return v
	}
	panic("number: mixing finite-field and rational numbers is not supported")
}

// checked int64 arithmetic; returns ok=false on overflow.

func addOverflows(a, b int64) bool {
	if b > 0 {
		return a > math.MaxInt64-b
	}
	return a < math.MinInt64-b
}

func subOverflows(a, b int64) bool {
	if b >= 0 {
		return a < math.MinInt64+b
	}
	return a > math.MaxInt64+b
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == -1 && b == math.MinInt64 {
		return true
	}
	if b == -1 && a == math.MinInt64 {
		return true
	}
	r := a * b
	return r/b != a
}
