// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered sequence of float64 values addressed by index 0..Len()-1.
//
// A Vector owns its storage: constructors and Values() copy, so a Vector never
// aliases caller memory. The zero value is an empty vector.
type Vector struct {
	values []float64 // owned backing storage
}

var _ fmt.Stringer = Vector{}

// NewVector returns a Vector holding a copy of values.
// Complexity: O(n).
func NewVector(values ...float64) Vector {
	buf := make([]float64, len(values))
	copy(buf, values)

	return Vector{values: buf}
}

// Zeros returns a Vector of n zeros. A negative n yields an empty vector.
// Complexity: O(n).
func Zeros(n int) Vector {
	if n < 0 {
		n = 0
	}

	return Vector{values: make([]float64, n)}
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v.values) }

// At returns the element at index i.
//
// Errors:
//   - ErrOutOfRange (wrapped with the index) when i < 0 or i >= Len().
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.values) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.values[i], nil
}

// Set stores x at index i.
// Vector is passed by value but shares its backing array with copies made by
// plain assignment; use Clone before Set when independence matters.
//
// Errors:
//   - ErrOutOfRange (wrapped with the index) when i < 0 or i >= Len().
func (v Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.values) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.values[i] = x

	return nil
}

// Scale returns a new Vector with every element multiplied by k.
// Complexity: O(n).
func (v Vector) Scale(k float64) Vector {
	out := make([]float64, len(v.values))
	for i, x := range v.values {
		out[i] = x * k
	}

	return Vector{values: out}
}

// Add returns the element-wise sum v + o.
//
// Errors:
//   - ErrDimensionMismatch when lengths differ.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v.values) != len(o.values) {
		return Vector{}, fmt.Errorf("Vector.Add(%d,%d): %w", len(v.values), len(o.values), ErrDimensionMismatch)
	}
	out := make([]float64, len(v.values))
	for i := range v.values {
		out[i] = v.values[i] + o.values[i]
	}

	return Vector{values: out}, nil
}

// Sum returns the sum of all elements (fixed left-to-right order).
func (v Vector) Sum() float64 {
	var acc float64
	for _, x := range v.values {
		acc += x
	}

	return acc
}

// Values returns a copy of the elements.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)

	return out
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector { return NewVector(v.values...) }

// String renders the vector as "[a, b, c]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.values {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
