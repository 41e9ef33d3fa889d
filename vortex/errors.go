// SPDX-License-Identifier: MIT

package vortex

import "errors"

var (
	// ErrDegenerate indicates a bound leg of zero length (A == B), or a bound
	// leg parallel to the trailing direction.
	ErrDegenerate = errors.New("vortex: degenerate horseshoe geometry")

	// ErrNonFinite indicates a NaN or ±Inf coordinate in panel geometry.
	ErrNonFinite = errors.New("vortex: non-finite coordinate")
)
