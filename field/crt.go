// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math/big"

// CRT reconstructs the unique integer r with r ≡ n1 (mod p1) and
// r ≡ n2 (mod p2), for coprime p1, p2, centralized into (-p1*p2/2,
// p1*p2/2]. It implements Garner's algorithm exactly as
// integer.rs's chinese_remainder does: reduce to the case n1 <= n2,
// compute γ1 = p1^-1 mod p2, then v1 = (n2-n1)*γ1 mod p2, then
// r = v1*p1 + n1, then fold into the centered range.
func CRT(n1, n2, p1, p2 *big.Int) *big.Int {
	if n1.Cmp(n2) > 0 {
		return CRT(n2, n1, p2, p1)
	}

	gamma1 := new(big.Int).ModInverse(new(big.Int).Mod(p1, p2), p2)
	if gamma1 == nil {
		panic("field: CRT moduli are not coprime")
	}

	v1 := new(big.Int).Sub(n2, n1)
	v1.Mul(v1, gamma1)
	v1.Mod(v1, p2)

	r := new(big.Int).Mul(v1, p1)
	r.Add(r, n1)

	twoR := new(big.Int).Lsh(r, 1)
	prod := new(big.Int).Mul(p1, p2)
	if twoR.Cmp(prod) > 0 {
		r.Sub(r, prod)
	}
	return r
}
