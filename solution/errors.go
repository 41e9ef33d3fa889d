// SPDX-License-Identifier: MIT

package solution

import "errors"

var (
	// ErrEmpty indicates a Solution with no sections.
	ErrEmpty = errors.New("solution: no sections")

	// ErrLengthMismatch indicates per-section inputs of different lengths.
	ErrLengthMismatch = errors.New("solution: per-section length mismatch")

	// ErrBadReference indicates a non-positive or non-finite reference area or span.
	ErrBadReference = errors.New("solution: reference area and span must be finite and > 0")

	// ErrNoInducedDrag indicates span efficiency was requested while CDi <= 0,
	// where it is undefined (e.g. a wing at zero lift).
	ErrNoInducedDrag = errors.New("solution: span efficiency undefined without induced drag")
)
