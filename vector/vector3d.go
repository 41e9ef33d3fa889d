// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// Vector3D is a real (x, y, z) triple.
// It is a value type: every operation returns a new Vector3D and leaves the
// receiver untouched.
type Vector3D struct {
	X, Y, Z float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector3D{}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3D { return Vector3D{X: x, Y: y, Z: z} }

// Zero returns the null vector.
func Zero() Vector3D { return Vector3D{} }

// Add returns v + o.
func (v Vector3D) Add(o Vector3D) Vector3D { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector3D) Sub(o Vector3D) Vector3D { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns k·v.
func (v Vector3D) Scale(k float64) Vector3D { return Vector3D{v.X * k, v.Y * k, v.Z * k} }

// Neg returns -v.
func (v Vector3D) Neg() Vector3D { return Vector3D{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product v·o.
func (v Vector3D) Dot(o Vector3D) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the vector product v×o.
func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length |v|.
func (v Vector3D) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v/|v|. The null vector normalizes to itself.
func (v Vector3D) Normalize() Vector3D {
	n := v.Norm()
	if n == 0 {
		return Vector3D{}
	}

	return v.Scale(1 / n)
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector3D) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// RotateY rotates v about the spanwise (y) axis by theta radians:
//
//	x' = cos θ·x − sin θ·z
//	y' = y
//	z' = sin θ·x + cos θ·z
//
// With +x downstream and +z up, a positive theta tilts an upward normal
// toward -x (upstream), which is how a lift vector follows the local flow.
func (v Vector3D) RotateY(theta float64) Vector3D {
	s, c := math.Sincos(theta)

	return Vector3D{
		X: c*v.X - s*v.Z,
		Y: v.Y,
		Z: s*v.X + c*v.Z,
	}
}

// String renders the vector as "(x, y, z)".
func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
