// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import "math/big"

// Add returns a+b, promoting to Big on int64 overflow and demoting back
// when the result fits.
func Add(a, b Number) Number {
	if af, ok := a.(FF); ok {
		bf := mustFF(b)
		return FF{Elem: af.Field.Add(af.Elem, bf.Elem), Field: af.Field}
	}
	if as, ok := a.(Small); ok {
		if bs, ok := b.(Small); ok {
			if r, ok := smallAdd(as, bs); ok {
				return r
			}
		}
	}
	an, ad := toBig(a)
	bn, bd := toBig(b)
	// an/ad + bn/bd = (an*bd + bn*ad) / (ad*bd)
	n := new(big.Int).Mul(an, bd)
	n.Add(n, new(big.Int).Mul(bn, ad))
	d := new(big.Int).Mul(ad, bd)
	return normalizeBig(n, d)
}

// smallAdd attempts the int64 fast path for a+b; ok is false on overflow.
func smallAdd(a, b Small) (Small, bool) {
	if a.D == b.D {
		if addOverflows(a.N, b.N) {
			return Small{}, false
		}
		return reduceSmall(a.N+b.N, a.D), true
	}
	if mulOverflows(a.N, b.D) || mulOverflows(b.N, a.D) || mulOverflows(a.D, b.D) {
		return Small{}, false
	}
	n1, n2 := a.N*b.D, b.N*a.D
	if addOverflows(n1, n2) {
		return Small{}, false
	}
	return reduceSmall(n1+n2, a.D*b.D), true
}

func reduceSmall(n, d int64) Small {
	if d < 0 {
		n, d = -n, -d
	}
	g := gcdInt64(abs64(n), d)
	if g > 1 {
		n, d = n/g, d/g
	}
	return Small{N: n, D: d}
}

// Sub returns a-b.
func Sub(a, b Number) Number {
	return Add(a, Neg(b))
}

// Neg returns -a.
func Neg(a Number) Number {
	switch v := a.(type) {
	case Small:
		if v.N == minInt64Const {
			n, d := toBig(v)
			n.Neg(n)
			return normalizeBig(n, d)
		}
		return Small{N: -v.N, D: v.D}
	case Big:
		return Big{Num: new(big.Int).Neg(v.Num), Den: new(big.Int).Set(v.Den)}
	case FF:
		return FF{Elem: v.Field.Neg(v.Elem), Field: v.Field}
	}
	panic(unreachable(a))
}

const minInt64Const = -1 << 63

// Mul returns a*b.
func Mul(a, b Number) Number {
	if af, ok := a.(FF); ok {
		bf := mustFF(b)
		return FF{Elem: af.Field.Mul(af.Elem, bf.Elem), Field: af.Field}
	}
	if as, ok := a.(Small); ok {
		if bs, ok := b.(Small); ok {
			if r, ok := smallMul(as, bs); ok {
				return r
			}
		}
	}
	an, ad := toBig(a)
	bn, bd := toBig(b)
	n := new(big.Int).Mul(an, bn)
	d := new(big.Int).Mul(ad, bd)
	return normalizeBig(n, d)
}

func smallMul(a, b Small) (Small, bool) {
	if mulOverflows(a.N, b.N) || mulOverflows(a.D, b.D) {
		return Small{}, false
	}
	return reduceSmall(a.N*b.N, a.D*b.D), true
}

// Div returns a/b.
func Div(a, b Number) Number {
	if af, ok := a.(FF); ok {
		bf := mustFF(b)
		return FF{Elem: af.Field.Div(af.Elem, bf.Elem), Field: af.Field}
	}
	if IsZero(b) {
		panic("number: division by zero")
	}
	return Mul(a, Recip(b))
}

// Recip returns 1/a.
func Recip(a Number) Number {
	switch v := a.(type) {
	case Small:
		if v.N == 0 {
			panic("number: division by zero")
		}
		if v.N < 0 {
			return Rat(-v.D, -v.N)
		}
		return Rat(v.D, v.N)
	case Big:
		if v.Num.Sign() == 0 {
			panic("number: division by zero")
		}
		n, d := new(big.Int).Set(v.Den), new(big.Int).Set(v.Num)
		return normalizeBig(n, d)
	case FF:
		return FF{Elem: v.Field.Inv(v.Elem), Field: v.Field}
	}
	panic(unreachable(a))
}

// FusedAddMul returns a + b*c, preserving the promotion/demotion
// discipline through the combined operation.
func FusedAddMul(a, b, c Number) Number {
	return Add(a, Mul(b, c))
}

// FusedSubMul returns a - b*c.
func FusedSubMul(a, b, c Number) Number {
	return Sub(a, Mul(b, c))
}
