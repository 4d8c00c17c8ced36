// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"testing"

	"symbolica.dev/core/number"
)

func TestHeapDivExactDivision(t *testing.T) {
	// (x^2 - 1) / (x - 1) = x + 1, remainder 0.
	a := build(1, term{-1, []uint16{0}}, term{1, []uint16{2}})
	b := build(1, term{-1, []uint16{0}}, term{1, []uint16{1}})

	q, r := HeapDiv(a, b, false)
	if !r.IsZero() {
		t.Errorf("remainder = %d terms, want 0", r.NTerms())
	}
	want := build(1, term{1, []uint16{0}}, term{1, []uint16{1}})
	if !equalPoly(t, q, want) {
		t.Errorf("quotient wrong: got coeffs=%v exps=%v", q.Coeffs, q.Exps)
	}
}

func TestHeapDivSatisfiesIdentity(t *testing.T) {
	// a = (x^3 + 2x + 5), b = (x + 3): a = q*b + r must hold regardless
	// of whether the division is exact.
	a := build(1, term{5, []uint16{0}}, term{2, []uint16{1}}, term{1, []uint16{3}})
	b := build(1, term{3, []uint16{0}}, term{1, []uint16{1}})

	q, r := HeapDiv(a, b, false)
	recombined := Add(HeapMul(q, b), r)
	if !equalPoly(t, recombined, a) {
		t.Errorf("q*b+r != a: got coeffs=%v exps=%v, want coeffs=%v exps=%v",
			recombined.Coeffs, recombined.Exps, a.Coeffs, a.Exps)
	}
}

func TestHeapDivAbortOnRemainderSignalsInexact(t *testing.T) {
	// x^2 + 1 divided by 2x - 1: the leading coefficient 2 does not
	// divide the dividend's leading coefficient 1 evenly over the
	// integers, so HeapDiv must abort on the first reduction step rather
	// than produce a fractional quotient coefficient.
	a := build(1, term{1, []uint16{0}}, term{1, []uint16{2}})
	b := build(1, term{-1, []uint16{0}}, term{2, []uint16{1}})

	q, r := HeapDiv(a, b, true)
	if !q.IsZero() {
		t.Errorf("abortOnRemainder quotient should be zero, got %d terms", q.NTerms())
	}
	if !equalPoly(t, r, a) {
		t.Errorf("abortOnRemainder remainder should equal a unchanged")
	}
}

func TestHeapDivInexactLeadingCoeffTerminatesEvenWithoutAbortFlag(t *testing.T) {
	// 3x / 2x: the leading coefficient 2 does not divide the dividend's
	// leading coefficient 3 evenly over the integers. Regardless of
	// abortOnRemainder, HeapDiv must signal non-divisibility by returning
	// (zero, a unchanged) rather than looping forever re-dividing a
	// leading term it can never fully eliminate.
	a := build(1, term{3, []uint16{1}})
	b := build(1, term{2, []uint16{1}})

	q, r := HeapDiv(a, b, false)
	if !q.IsZero() {
		t.Errorf("quotient should be zero, got %d terms", q.NTerms())
	}
	if !equalPoly(t, r, a) {
		t.Errorf("remainder should equal a unchanged: got coeffs=%v exps=%v", r.Coeffs, r.Exps)
	}
}

func TestHeapDivPanicsOnZeroDivisor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("HeapDiv did not panic dividing by the zero polynomial")
		}
	}()
	a := build(1, term{1, []uint16{0}})
	zero := New[number.Number](intRing, 1, varMap(1))
	HeapDiv(a, zero, false)
}

func TestDivides(t *testing.T) {
	a := build(1, term{-4, []uint16{0}}, term{1, []uint16{2}}) // x^2 - 4
	b := build(1, term{-2, []uint16{0}}, term{1, []uint16{1}}) // x - 2
	q, ok := Divides(a, b)
	if !ok {
		t.Fatalf("Divides(x^2-4, x-2) = false, want true")
	}
	want := build(1, term{2, []uint16{0}}, term{1, []uint16{1}}) // x + 2
	if !equalPoly(t, q, want) {
		t.Errorf("Divides quotient wrong")
	}

	c := build(1, term{1, []uint16{0}}, term{1, []uint16{2}}) // x^2 + 1
	if _, ok := Divides(c, b); ok {
		t.Errorf("Divides(x^2+1, x-2) = true, want false")
	}
}

func TestSyntheticDivMonicDivisor(t *testing.T) {
	// (x^3 - 1) / (x - 1) = x^2 + x + 1, remainder 0.
	a := build(1, term{-1, []uint16{0}}, term{1, []uint16{3}})
	b := build(1, term{-1, []uint16{0}}, term{1, []uint16{1}})

	q, r := SyntheticDiv(a, b)
	if !r.IsZero() {
		t.Errorf("remainder = %d terms, want 0", r.NTerms())
	}
	want := build(1, term{1, []uint16{0}}, term{1, []uint16{1}}, term{1, []uint16{2}})
	if !equalPoly(t, q, want) {
		t.Errorf("quotient wrong: got coeffs=%v exps=%v", q.Coeffs, q.Exps)
	}
}

func TestSyntheticDivNonMonicRescales(t *testing.T) {
	// (2x^2 + 2) / (2x) -> quotient x (remainder 2), matching HeapDiv's
	// own answer for the same pair.
	a := build(1, term{2, []uint16{0}}, term{2, []uint16{2}})
	b := build(1, term{2, []uint16{1}})

	q, r := SyntheticDiv(a, b)
	wantQ, wantR := HeapDiv(a, b, false)
	if !equalPoly(t, q, wantQ) {
		t.Errorf("SyntheticDiv quotient %v disagrees with HeapDiv quotient %v", q.Coeffs, wantQ.Coeffs)
	}
	if !equalPoly(t, r, wantR) {
		t.Errorf("SyntheticDiv remainder %v disagrees with HeapDiv remainder %v", r.Coeffs, wantR.Coeffs)
	}
}

func TestSyntheticDivDividendDegreeBelowDivisor(t *testing.T) {
	// 3 / (x^2 + 1): the dividend's degree (0) is lower than the
	// divisor's (2), so no reduction step can run at all. SyntheticDiv
	// must report a zero quotient and the dividend unchanged as
	// remainder rather than underflow the quotient-capacity bookkeeping.
	a := build(1, term{3, []uint16{0}})
	b := build(1, term{1, []uint16{0}}, term{1, []uint16{2}})

	q, r := SyntheticDiv(a, b)
	if !q.IsZero() {
		t.Errorf("quotient should be zero, got %d terms", q.NTerms())
	}
	if !equalPoly(t, r, a) {
		t.Errorf("remainder should equal a unchanged: got coeffs=%v exps=%v", r.Coeffs, r.Exps)
	}
}

func TestSyntheticDivPanicsOnMultivariateDivisor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SyntheticDiv did not panic for a non-univariate divisor")
		}
	}()
	a := build(2, term{1, []uint16{1, 0}})
	b := build(2, term{1, []uint16{1, 0}}, term{1, []uint16{0, 1}})
	SyntheticDiv(a, b)
}
