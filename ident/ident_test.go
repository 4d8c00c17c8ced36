// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ident

import "testing"

func TestGetOrInsertVarReturnsSameIDForSameName(t *testing.T) {
	tbl := NewTable()
	a := tbl.GetOrInsertVar("x")
	b := tbl.GetOrInsertVar("x")
	if a != b {
		t.Errorf("GetOrInsertVar(x) = %d then %d, want same ID both times", a, b)
	}
	if tbl.Name(a) != "x" {
		t.Errorf("Name(%d) = %q, want x", a, tbl.Name(a))
	}
	if tbl.IsFunction(a) {
		t.Errorf("IsFunction(x) = true, want false")
	}
}

func TestGetOrInsertVarDistinctNamesGetDistinctIDs(t *testing.T) {
	tbl := NewTable()
	x := tbl.GetOrInsertVar("x")
	y := tbl.GetOrInsertVar("y")
	if x == y {
		t.Errorf("distinct names x and y interned to the same ID %d", x)
	}
}

func TestGetOrInsertFnSetsFunctionFlagAndAttrs(t *testing.T) {
	tbl := NewTable()
	id := tbl.GetOrInsertFn("f", FnSymmetric)
	if !tbl.IsFunction(id) {
		t.Fatalf("IsFunction(f) = false, want true")
	}
	if tbl.Attrs(id) != FnSymmetric {
		t.Errorf("Attrs(f) = %v, want FnSymmetric", tbl.Attrs(id))
	}
}

func TestGetOrInsertFnReRegisterOverwritesAttrs(t *testing.T) {
	tbl := NewTable()
	id1 := tbl.GetOrInsertFn("f", FnNone)
	id2 := tbl.GetOrInsertFn("f", FnSymmetric)
	if id1 != id2 {
		t.Fatalf("re-registering f allocated a new ID: %d vs %d", id1, id2)
	}
	if tbl.Attrs(id1) != FnSymmetric {
		t.Errorf("Attrs(f) after re-register = %v, want FnSymmetric", tbl.Attrs(id1))
	}
}

func TestIDsAreAllocatedInOrder(t *testing.T) {
	tbl := NewTable()
	x := tbl.GetOrInsertVar("x")
	y := tbl.GetOrInsertVar("y")
	z := tbl.GetOrInsertVar("z")
	if !(x < y && y < z) {
		t.Errorf("IDs not allocated in increasing order: x=%d y=%d z=%d", x, y, z)
	}
}

func TestLenCountsDistinctNamesOnly(t *testing.T) {
	tbl := NewTable()
	tbl.GetOrInsertVar("x")
	tbl.GetOrInsertVar("y")
	tbl.GetOrInsertVar("x")
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
}

func TestSortedNamesIsAlphabetical(t *testing.T) {
	tbl := NewTable()
	tbl.GetOrInsertVar("zebra")
	tbl.GetOrInsertVar("apple")
	tbl.GetOrInsertVar("mango")
	names := tbl.SortedNames()
	want := []string{"apple", "mango", "zebra"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("SortedNames()[%d] = %q, want %q", i, names[i], n)
		}
	}
}

func TestZeroValueTableIsUsable(t *testing.T) {
	var tbl Table
	id := tbl.GetOrInsertVar("x")
	if tbl.Name(id) != "x" {
		t.Errorf("zero-value Table failed to intern a name")
	}
}
