// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrOutOfRange indicates that an index is outside [0, Len()).
	// At/Set return it wrapped with the offending index; they never panic.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates two vectors of different length were combined.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)
