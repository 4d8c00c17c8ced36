// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"symbolica.dev/core/ident"
	"symbolica.dev/core/number"
)

func TestAccessorsPanicOnWrongKind(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Base", func() { NewNum(number.Int(1)).Base() }},
		{"Exp", func() { NewVar(0).Exp() }},
		{"Factors", func() { NewAdd(nil, false).Factors() }},
		{"Terms", func() { NewMul(nil, false, false).Terms() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s did not panic on the wrong Kind", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestIsZeroIsOneIsNumeric(t *testing.T) {
	zero := NewNum(number.Int(0))
	one := NewNum(number.Int(1))
	two := NewNum(number.Int(2))
	v := NewVar(0)

	if !zero.IsZero() || zero.IsOne() {
		t.Errorf("IsZero/IsOne wrong for Num(0)")
	}
	if !one.IsOne() || one.IsZero() {
		t.Errorf("IsZero/IsOne wrong for Num(1)")
	}
	if two.IsZero() || two.IsOne() {
		t.Errorf("IsZero/IsOne wrong for Num(2)")
	}
	if v.IsZero() || v.IsOne() || v.IsNumeric() {
		t.Errorf("Var incorrectly reported as numeric/zero/one")
	}
	if !zero.IsNumeric() {
		t.Errorf("Num(0).IsNumeric() = false, want true")
	}
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	orig := NewAdd([]*Atom{
		NewVar(1),
		NewMul([]*Atom{NewVar(2), NewNum(number.Int(3))}, true, false),
	}, true)

	clone := orig.Clone()
	if !Equal(orig, clone) {
		t.Fatalf("clone is not structurally equal to original")
	}

	// Mutating the clone's nested Mul factor must not affect the original.
	clone.Terms()[1].Factors()[1] = NewNum(number.Int(99))
	if Equal(orig, clone) {
		t.Fatalf("mutating the clone's subtree also mutated the original: not an independent copy")
	}
	if origCoeff := orig.Terms()[1].Factors()[1]; number.Compare(origCoeff.Number, number.Int(3)) != 0 {
		t.Errorf("original's coefficient changed after cloning: got %v, want 3", origCoeff.Number)
	}
}

func TestCloneOfNilIsNil(t *testing.T) {
	var a *Atom
	if got := a.Clone(); got != nil {
		t.Errorf("Clone of nil = %v, want nil", got)
	}
}

func TestEqualStructural(t *testing.T) {
	tbl := ident.NewTable()
	x := tbl.GetOrInsertVar("x")
	y := tbl.GetOrInsertVar("y")

	a := NewMul([]*Atom{NewVar(x), NewNum(number.Int(2))}, true, false)
	b := NewMul([]*Atom{NewVar(x), NewNum(number.Int(2))}, true, false)
	c := NewMul([]*Atom{NewVar(y), NewNum(number.Int(2))}, true, false)

	if !Equal(a, b) {
		t.Errorf("structurally identical atoms reported unequal")
	}
	if Equal(a, c) {
		t.Errorf("structurally different atoms (distinct variable) reported equal")
	}
}

func TestCloneProducesADeepStructuralCopy(t *testing.T) {
	orig := NewAdd([]*Atom{
		NewVar(1),
		NewMul([]*Atom{NewVar(2), NewNum(number.Int(3))}, true, false),
	}, true)
	clone := orig.Clone()

	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Errorf("Clone produced a structurally different tree (-orig +clone):\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindNum, "Num"},
		{KindVar, "Var"},
		{KindFun, "Fun"},
		{KindPow, "Pow"},
		{KindMul, "Mul"},
		{KindAdd, "Add"},
		{Kind(99), "Kind(?)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
