// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import "gonum.org/v1/gonum/stat/combin"

// combinBinomial wraps gonum's stat/combin.Binomial, which performs no
// overflow checking of its own, for a range of n conservatively small
// enough (n <= smallBinomialLimit) that every intermediate product in its
// multiplicative recurrence stays well within int64/int range on every
// supported platform.
const smallBinomialLimit = 30

func combinBinomial(n, k int) (int, bool) {
	if n < 0 || k < 0 || k > n || n > smallBinomialLimit {
		return 0, false
	}
	return combin.Binomial(n, k), true
}
