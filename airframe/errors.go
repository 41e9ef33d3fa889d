// SPDX-License-Identifier: MIT

package airframe

import "errors"

// Geometry-consistency errors are reported at construction time, before any
// solve is attempted. Singular systems surface as matrix.ErrSingular.
var (
	// ErrNoSections indicates an Airframe was built from an empty section list.
	ErrNoSections = errors.New("airframe: no sections")

	// ErrNoPanels indicates a Section without vortex panels.
	ErrNoPanels = errors.New("airframe: section has no panels")

	// ErrPanelMismatch indicates len(panels) != len(boundary conditions).
	ErrPanelMismatch = errors.New("airframe: panel / boundary-condition count mismatch")

	// ErrBadChord indicates a non-positive or non-finite chord.
	ErrBadChord = errors.New("airframe: chord must be finite and > 0")

	// ErrBadNormal indicates a zero or non-finite section normal.
	ErrBadNormal = errors.New("airframe: normal must be finite and non-zero")

	// ErrBadPoint indicates a non-finite center or boundary-condition point.
	ErrBadPoint = errors.New("airframe: non-finite point")

	// ErrCollocationOnVortex indicates a boundary-condition point lying on its
	// own panel's bound vortex.
	ErrCollocationOnVortex = errors.New("airframe: boundary condition on bound vortex")

	// ErrBadAngle indicates a non-finite angle of attack or sideslip.
	ErrBadAngle = errors.New("airframe: angle must be finite")

	// ErrCirculationLength indicates a circulation vector whose length is not
	// the airframe's panel count.
	ErrCirculationLength = errors.New("airframe: circulation length mismatch")
)
