// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// sinclairWitnesses is the smallest strong-probable-prime basis, due to
// Jim Sinclair, sufficient to make Miller-Rabin deterministic for every
// 64-bit modulus. Taken from finite_field.rs's is_prime_u64, itself
// crediting https://github.com/wizykowski/miller-rabin.
var sinclairWitnesses = [7]uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

// IsPrimeU64 deterministically tests whether n is prime, using a 7-witness
// Miller-Rabin test valid for the entire uint64 range.
func IsPrimeU64(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}

	d := n - 1
	s := 0
	for d%2 == 0 {
		d /= 2
		s++
	}

	f := New(n)
	negOne := n - f.one

witnessLoop:
	for _, w := range sinclairWitnesses {
		a := f.ToMontgomery(w % n)
		if a == 0 {
			continue
		}

		x := f.Pow(a, d)
		if x == f.one || x == negOne {
			continue
		}

		for i := 0; i < s; i++ {
			x = f.Mul(x, x)
			if x == f.one {
				return false
			}
			if x == negOne {
				continue witnessLoop
			}
		}
		return false
	}

	return true
}

// PrimeIterator yields consecutive primes greater than a starting value,
// up to the uint64 range.
type PrimeIterator struct {
	current uint64
	done    bool
}

// NewPrimeIterator returns an iterator over primes strictly greater than
// start.
func NewPrimeIterator(start uint64) *PrimeIterator {
	if start == 0 {
		start = 1
	}
	return &PrimeIterator{current: start}
}

// Next returns the next prime and true, or (0, false) once the uint64
// range is exhausted.
func (it *PrimeIterator) Next() (uint64, bool) {
	for !it.done {
		if it.current == ^uint64(0) {
			it.done = true
			return 0, false
		}
		it.current++
		if IsPrimeU64(it.current) {
			return it.current, true
		}
	}
	return 0, false
}
