// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

import (
	"testing"

	"symbolica.dev/core/ident"
	"symbolica.dev/core/number"
)

func TestFormat(t *testing.T) {
	tbl := ident.NewTable()
	x := tbl.GetOrInsertVar("x")
	y := tbl.GetOrInsertVar("y")
	f := tbl.GetOrInsertFn("f", ident.FnNone)

	tests := []struct {
		name string
		a    *Atom
		want string
	}{
		{
			"num",
			NewNum(number.Int(5)),
			"5",
		},
		{
			"var",
			NewVar(x),
			"x",
		},
		{
			"sum",
			NewAdd([]*Atom{NewVar(x), NewVar(y)}, false),
			"x+y",
		},
		{
			"product",
			NewMul([]*Atom{NewVar(x), NewVar(y)}, false, false),
			"x*y",
		},
		{
			"power",
			NewPow(NewVar(x), NewNum(number.Int(2)), false),
			"x^2",
		},
		{
			"function call",
			NewFun(f, []*Atom{NewVar(x), NewVar(y)}, false),
			"f(x,y)",
		},
		{
			"sum inside product needs parens",
			NewMul([]*Atom{
				NewAdd([]*Atom{NewVar(x), NewVar(y)}, false),
				NewNum(number.Int(2)),
			}, true, false),
			"(x+y)*2",
		},
		{
			"product inside power needs parens",
			NewPow(
				NewMul([]*Atom{NewVar(x), NewVar(y)}, false, false),
				NewNum(number.Int(2)),
				false,
			),
			"(x*y)^2",
		},
		{
			"power inside product needs no parens",
			NewMul([]*Atom{
				NewPow(NewVar(x), NewNum(number.Int(2)), false),
				NewVar(y),
			}, false, false),
			"x^2*y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Format(tbl); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
