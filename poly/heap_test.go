// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"testing"

	"symbolica.dev/core/number"
)

func TestHeapMulMatchesNaiveMul(t *testing.T) {
	tests := []struct {
		name string
		p, q *Polynomial[number.Number]
	}{
		{
			"univariate dense",
			build(1, term{1, []uint16{0}}, term{2, []uint16{1}}, term{3, []uint16{2}}),
			build(1, term{-1, []uint16{0}}, term{1, []uint16{3}}),
		},
		{
			"bivariate sparse",
			build(2, term{1, []uint16{1, 0}}, term{1, []uint16{0, 1}}),
			build(2, term{1, []uint16{1, 0}}, term{-1, []uint16{0, 1}}),
		},
		{
			"single-term fast path on left",
			build(2, term{5, []uint16{1, 1}}),
			build(2, term{1, []uint16{2, 0}}, term{1, []uint16{0, 2}}),
		},
		{
			"single-term fast path on right",
			build(2, term{1, []uint16{2, 0}}, term{1, []uint16{0, 2}}),
			build(2, term{5, []uint16{1, 1}}),
		},
		{
			"three variables",
			build(3, term{1, []uint16{1, 0, 0}}, term{1, []uint16{0, 1, 0}}, term{1, []uint16{0, 0, 1}}),
			build(3, term{1, []uint16{1, 0, 0}}, term{-1, []uint16{0, 0, 1}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeapMul(tt.p, tt.q)
			want := naiveMul(tt.p, tt.q)
			if !equalPoly(t, got, want) {
				t.Errorf("HeapMul disagrees with naiveMul:\ngot  coeffs=%v exps=%v\nwant coeffs=%v exps=%v",
					got.Coeffs, got.Exps, want.Coeffs, want.Exps)
			}
		})
	}
}

func TestHeapMulWithZero(t *testing.T) {
	zero := New[number.Number](intRing, 1, varMap(1))
	p := build(1, term{1, []uint16{1}})
	if got := HeapMul(p, zero); !got.IsZero() {
		t.Errorf("HeapMul(p, 0) = %d terms, want zero", got.NTerms())
	}
	if got := HeapMul(zero, p); !got.IsZero() {
		t.Errorf("HeapMul(0, p) = %d terms, want zero", got.NTerms())
	}
}

func TestHeapMulPanicsOnMismatchedNVars(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("HeapMul did not panic for mismatched NVars")
		}
	}()
	p := build(1, term{1, []uint16{1}})
	q := build(2, term{1, []uint16{1, 0}})
	HeapMul(p, q)
}

func TestCanPackByteBoundary(t *testing.T) {
	p := build(1, term{1, []uint16{200}})
	q := build(1, term{1, []uint16{100}})
	if canPackByte(p, q) {
		t.Errorf("canPackByte should be false when combined degree (300) exceeds a byte")
	}

	p2 := build(1, term{1, []uint16{100}})
	q2 := build(1, term{1, []uint16{100}})
	if !canPackByte(p2, q2) {
		t.Errorf("canPackByte should be true when combined degree (200) fits a byte")
	}
}

func TestHeapMulPackedMatchesUnpacked(t *testing.T) {
	// Small enough to pack (NVars<=8, combined degrees<=255).
	p := build(3, term{1, []uint16{2, 0, 1}}, term{3, []uint16{0, 1, 0}})
	q := build(3, term{1, []uint16{1, 1, 0}}, term{-2, []uint16{0, 0, 2}})

	if !canPackByte(p, q) {
		t.Fatalf("expected packed fast path to be available for this test case")
	}
	packed := heapMulPacked(p, q)
	want := naiveMul(p, q)
	if !equalPoly(t, packed, want) {
		t.Errorf("heapMulPacked disagrees with naiveMul")
	}
}
