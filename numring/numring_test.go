// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numring

import (
	"testing"

	"symbolica.dev/core/number"
)

func TestZeroAndOne(t *testing.T) {
	var r Ring
	if !r.IsZero(r.Zero()) {
		t.Errorf("IsZero(Zero()) = false")
	}
	if !r.IsOne(r.One()) {
		t.Errorf("IsOne(One()) = false")
	}
	if r.IsZero(r.One()) {
		t.Errorf("IsZero(One()) = true")
	}
}

func TestAddNegMul(t *testing.T) {
	var r Ring
	a, b := number.Int(7), number.Int(-3)
	if !r.Equal(r.Add(a, b), number.Int(4)) {
		t.Errorf("Add(7,-3) != 4")
	}
	if !r.Equal(r.Neg(a), number.Int(-7)) {
		t.Errorf("Neg(7) != -7")
	}
	if !r.Equal(r.Mul(a, b), number.Int(-21)) {
		t.Errorf("Mul(7,-3) != -21")
	}
}

func TestQuotRemEuclidean(t *testing.T) {
	var r Ring
	q, rem := r.QuotRem(number.Int(-7), number.Int(3))
	if !r.Equal(q, number.Int(-3)) || !r.Equal(rem, number.Int(2)) {
		t.Errorf("QuotRem(-7,3) = (%v,%v), want (-3,2)", q, rem)
	}
}

func TestGcd(t *testing.T) {
	var r Ring
	g := r.Gcd(number.Int(-12), number.Int(18))
	if !r.Equal(g, number.Int(6)) {
		t.Errorf("Gcd(-12,18) = %v, want 6", g)
	}
}

func TestLessOrdersByValue(t *testing.T) {
	var r Ring
	if !r.Less(number.Int(2), number.Int(3)) {
		t.Errorf("Less(2,3) = false, want true")
	}
	if r.Less(number.Int(3), number.Int(2)) {
		t.Errorf("Less(3,2) = true, want false")
	}
	if r.Less(number.Int(2), number.Int(2)) {
		t.Errorf("Less(2,2) = true, want false")
	}
}

func TestEqual(t *testing.T) {
	var r Ring
	if !r.Equal(number.Rat(4, 2), number.Int(2)) {
		t.Errorf("Equal(4/2, 2) = false, want true")
	}
	if r.Equal(number.Int(1), number.Int(2)) {
		t.Errorf("Equal(1,2) = true, want false")
	}
}
