// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ident implements the identifier/state collaborator: an opaque
// 32-bit handle for variable and function names, allocated by a
// process-lifetime intern table with a total, stable ordering. It is a
// concrete (but swappable) implementation of an external intern table
// the core only consumes; the design — a name-to-handle map guarded by
// nothing internally, single-writer by contract — is adapted from
// ivy/state.State, which likewise wraps a naming table without its own
// synchronization and expects the caller to serialize access.
package ident

import "sort"

// ID is an opaque handle for a variable or function name. IDs are ordered
// by allocation order, which is total and stable across a single process
// run.
type ID uint32

// FnAttrs names function attributes the core's ordering and normalization
// logic are aware of. Symmetric functions may, in a future expansion pass,
// have their arguments sorted by general order before comparison; the
// core does not currently act on this attribute beyond recording it.
type FnAttrs uint8

const (
	FnNone      FnAttrs = 0
	FnSymmetric FnAttrs = 1 << iota
)

type entry struct {
	name string
	isFn bool
	fn   FnAttrs
}

// Table is the process-wide identifier intern table. Its zero value is
// ready to use. Table is not safe for concurrent use; callers that share
// a Table across goroutines must serialize access themselves.
type Table struct {
	byName map[string]ID
	byID   []entry
}

// NewTable returns an empty identifier table.
func NewTable() *Table {
	return &Table{byName: make(map[string]ID)}
}

// GetOrInsertVar returns the ID for a variable name, allocating a new one
// if this is the first time name has been seen.
func (t *Table) GetOrInsertVar(name string) ID {
	return t.getOrInsert(name, false, FnNone)
}

// GetOrInsertFn returns the ID for a function name with the given
// attributes, allocating a new one if this is the first time name has
// been seen as a function. Re-registering an existing function name
// overwrites its attributes.
func (t *Table) GetOrInsertFn(name string, attrs FnAttrs) ID {
	if id, ok := t.byName[name]; ok && t.byID[id].isFn {
		e := t.byID[id]
		e.fn = attrs
		t.byID[id] = e
		return id
	}
	return t.getOrInsert(name, true, attrs)
}

func (t *Table) getOrInsert(name string, isFn bool, attrs FnAttrs) ID {
	if t.byName == nil {
		t.byName = make(map[string]ID)
	}
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := ID(len(t.byID))
	t.byID = append(t.byID, entry{name: name, isFn: isFn, fn: attrs})
	t.byName[name] = id
	return id
}

// Name returns the interned name for id. Panics if id was never
// allocated by this table.
func (t *Table) Name(id ID) string {
	return t.byID[id].name
}

// IsFunction reports whether id names a function (as opposed to a
// variable).
func (t *Table) IsFunction(id ID) bool {
	return t.byID[id].isFn
}

// Attrs returns the function attributes registered for id; zero for
// variables or functions registered without attributes.
func (t *Table) Attrs(id ID) FnAttrs {
	return t.byID[id].fn
}

// Len returns the number of interned identifiers.
func (t *Table) Len() int { return len(t.byID) }

// SortedNames returns every interned name sorted alphabetically, for debugging and
// tests; not used by the core itself.
func (t *Table) SortedNames() []string {
	names := make([]string, len(t.byID))
	for i, e := range t.byID {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}
