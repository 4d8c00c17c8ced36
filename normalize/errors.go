// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normalize

import "github.com/pkg/errors"

// ErrUnsupported is the sentinel for an unsupported-yet-fatal
// construct: a non-numeric exponent reaching factor merge, which only
// handles numeric exponents. Normalize panics with this sentinel itself
// rather than returning it, so the operation
// aborts unrecoverably; a caller that wants to distinguish this from a
// genuine programmer-error panic recovers and checks
// errors.Is(recovered, ErrUnsupported).
var ErrUnsupported = errors.New("normalize: unsupported construct")
