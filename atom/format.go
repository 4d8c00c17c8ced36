// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

import (
	"strconv"
	"strings"

	"symbolica.dev/core/ident"
)

// Format renders a into a human-readable form given the table that
// interned its identifiers. Atoms carry no printer factory of their own
// (Go's Stringer takes no arguments, and an identifier's name is not
// known without the table that interned it), so the table is threaded
// explicitly, the same way robpike.io/ivy's value.Context is threaded
// through value.Value.String implementations.
func (a *Atom) Format(tbl *ident.Table) string {
	var b strings.Builder
	a.format(&b, tbl, 0)
	return b.String()
}

// precedence gives the binding power used to decide when a sub-atom
// needs parenthesizing: Add binds loosest, then Mul, then Pow.
func precedence(k Kind) int {
	switch k {
	case KindAdd:
		return 1
	case KindMul:
		return 2
	case KindPow:
		return 3
	default:
		return 4
	}
}

func (a *Atom) format(b *strings.Builder, tbl *ident.Table, parentPrec int) {
	switch a.Kind {
	case KindNum:
		s := a.Number.String()
		if parentPrec > 0 && strings.HasPrefix(s, "-") {
			b.WriteByte('(')
			b.WriteString(s)
			b.WriteByte(')')
		} else {
			b.WriteString(s)
		}
	case KindVar:
		if tbl == nil {
			b.WriteString(debugID(a.ID))
		} else {
			b.WriteString(tbl.Name(a.ID))
		}
	case KindFun:
		if tbl == nil {
			b.WriteString(debugID(a.ID))
		} else {
			b.WriteString(tbl.Name(a.ID))
		}
		b.WriteByte('(')
		for i, arg := range a.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			arg.format(b, tbl, 0)
		}
		b.WriteByte(')')
	case KindPow:
		wrap := precedence(KindPow) < parentPrec
		if wrap {
			b.WriteByte('(')
		}
		a.Base().format(b, tbl, precedence(KindPow)+1)
		b.WriteByte('^')
		a.Exp().format(b, tbl, precedence(KindPow))
		if wrap {
			b.WriteByte(')')
		}
	case KindMul:
		wrap := precedence(KindMul) < parentPrec
		if wrap {
			b.WriteByte('(')
		}
		for i, f := range a.Args {
			if i > 0 {
				b.WriteByte('*')
			}
			f.format(b, tbl, precedence(KindMul)+1)
		}
		if wrap {
			b.WriteByte(')')
		}
	case KindAdd:
		wrap := precedence(KindAdd) < parentPrec
		if wrap {
			b.WriteByte('(')
		}
		for i, t := range a.Args {
			if i > 0 {
				b.WriteByte('+')
			}
			t.format(b, tbl, precedence(KindAdd)+1)
		}
		if wrap {
			b.WriteByte(')')
		}
	default:
		b.WriteString("<?>")
	}
}

// debugID is used only when no table is available (e.g. in tests that
// construct atoms without interning names); it prints the raw numeric
// identifier so output is still deterministic.
func debugID(id ident.ID) string {
	return "#" + strconv.Itoa(int(id))
}
