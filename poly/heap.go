// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"container/heap"
	"encoding/binary"
)

// expKey packs an exponent row into a byte string whose lexicographic
// byte order matches slices.Compare's element-wise order on the
// original []uint16 (each exponent is big-endian, so comparing the
// concatenated bytes left to right compares the exponents left to
// right). Go map keys must be comparable, and []uint16 is not, so this
// is the map-key analogue of original_source/src/poly/polynomial.rs's
// BTreeMap<Vec<E>, ...> cache.
func expKey(e []uint16) string {
	buf := make([]byte, 2*len(e))
	for i, v := range e {
		binary.BigEndian.PutUint16(buf[2*i:], v)
	}
	return string(buf)
}

// keyHeap is a min-heap of exponent-row keys, ordered the same way the
// byte strings sort (which matches exponent-row lexicographic order).
type keyHeap []string

func (h keyHeap) Len() int            { return len(h) }
func (h keyHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h keyHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *keyHeap) Push(x interface{}) { *h = append(*h, x.(string)) }
func (h *keyHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

type pair struct{ i, j int }

// HeapMul returns p*q using a min-heap frontier algorithm, grounded on
// original_source/src/poly/polynomial.rs's heap_mul:
// a min-heap of candidate product-monomial keys, each mapping to the
// list of (i,j) index pairs from p and q contributing that exponent, and
// a pair of frontier arrays (mergedIndex, inHeap) that guarantee every
// product index pair is considered exactly once.
func HeapMul[C any](p, q *Polynomial[C]) *Polynomial[C] {
	if p.NVars != q.NVars {
		panic("poly: HeapMul requires unified variable maps")
	}
	if p.IsZero() || q.IsZero() {
		return New(p.Ring, p.NVars, p.VarMap)
	}
	if p.NTerms() == 1 {
		return q.MulMonomial(p.Coeffs[0], p.ExpRow(0))
	}
	if q.NTerms() == 1 {
		return p.MulMonomial(q.Coeffs[0], q.ExpRow(0))
	}
	if p.NTerms() > q.NTerms() {
		return HeapMul(q, p)
	}

	if canPackByte(p, q) {
		return heapMulPacked(p, q)
	}

	out := New(p.Ring, p.NVars, p.VarMap)

	cache := make(map[string][]pair)
	h := &keyHeap{}
	heap.Init(h)

	firstKey := addExp(p.ExpRow(0), q.ExpRow(0))
	k0 := expKey(firstKey)
	cache[k0] = []pair{{0, 0}}
	heap.Push(h, k0)

	mergedIndex := make([]int, q.NTerms())
	inHeap := make([]bool, q.NTerms())
	inHeap[0] = true

	for h.Len() > 0 {
		k := heap.Pop(h).(string)
		pairs := cache[k]
		delete(cache, k)

		coeff := p.Ring.Zero()
		var rowOut []uint16

		for _, pr := range pairs {
			i, j := pr.i, pr.j
			if rowOut == nil {
				rowOut = addExp(p.ExpRow(i), q.ExpRow(j))
			}
			coeff = p.Ring.Add(coeff, p.Ring.Mul(p.Coeffs[i], q.Coeffs[j]))

			mergedIndex[j] = i + 1

			if i+1 < p.NTerms() && (j == 0 || mergedIndex[j-1] > i+1) {
				nk := addExp(p.ExpRow(i+1), q.ExpRow(j))
				ks := expKey(nk)
				if existing, ok := cache[ks]; ok {
					cache[ks] = append(existing, pair{i + 1, j})
				} else {
					cache[ks] = []pair{{i + 1, j}}
					heap.Push(h, ks)
				}
			} else {
				inHeap[j] = false
			}

			if j+1 < q.NTerms() && !inHeap[j+1] {
				nk := addExp(p.ExpRow(i), q.ExpRow(j+1))
				ks := expKey(nk)
				if existing, ok := cache[ks]; ok {
					cache[ks] = append(existing, pair{i, j + 1})
				} else {
					cache[ks] = []pair{{i, j + 1}}
					heap.Push(h, ks)
				}
				inHeap[j+1] = true
			}
		}

		if !p.Ring.IsZero(coeff) {
			out.Coeffs = append(out.Coeffs, coeff)
			out.Exps = append(out.Exps, rowOut...)
		}
	}
	return out
}
