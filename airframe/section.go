// SPDX-License-Identifier: MIT

package airframe

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aerolattice/vector"
	"github.com/katalvlaran/aerolattice/vortex"
)

// collocationTol is the distance (relative to chord) under which a collocation
// point counts as lying on its own bound vortex.
const collocationTol = 1e-9

// Section is one spanwise strip of the lattice.
//
// It owns its chordwise vortex panels and the matching collocation points
// (same index correspondence), the strip's unit normal (tangency direction and
// force direction), its center (center.Y is the reported spanwise coordinate)
// and its chord (used for non-dimensionalization).
type Section struct {
	panels []vortex.VortexPanel
	bcs    []vector.Vector3D
	normal vector.Vector3D
	center vector.Vector3D
	chord  float64
}

// NewSection validates and copies the geometry of a spanwise strip.
//
// The normal is normalized on construction.
//
// Errors:
//   - ErrNoPanels, ErrPanelMismatch, ErrBadChord, ErrBadNormal, ErrBadPoint,
//     ErrCollocationOnVortex.
func NewSection(
	panels []vortex.VortexPanel,
	boundaryConditions []vector.Vector3D,
	normal, center vector.Vector3D,
	chord float64,
) (Section, error) {
	if len(panels) == 0 {
		return Section{}, ErrNoPanels
	}
	if len(panels) != len(boundaryConditions) {
		return Section{}, fmt.Errorf("NewSection: %d panels, %d boundary conditions: %w",
			len(panels), len(boundaryConditions), ErrPanelMismatch)
	}
	if math.IsNaN(chord) || math.IsInf(chord, 0) || chord <= 0 {
		return Section{}, fmt.Errorf("NewSection: chord %g: %w", chord, ErrBadChord)
	}
	if !normal.IsFinite() || normal.Norm() == 0 {
		return Section{}, fmt.Errorf("NewSection: normal %v: %w", normal, ErrBadNormal)
	}
	if !center.IsFinite() {
		return Section{}, fmt.Errorf("NewSection: center %v: %w", center, ErrBadPoint)
	}
	for i, bc := range boundaryConditions {
		if !bc.IsFinite() {
			return Section{}, fmt.Errorf("NewSection: boundary condition %d %v: %w", i, bc, ErrBadPoint)
		}
		if distanceToSegment(bc, panels[i].A(), panels[i].B()) <= collocationTol*chord {
			return Section{}, fmt.Errorf("NewSection: boundary condition %d %v: %w", i, bc, ErrCollocationOnVortex)
		}
	}

	s := Section{
		panels: make([]vortex.VortexPanel, len(panels)),
		bcs:    make([]vector.Vector3D, len(boundaryConditions)),
		normal: normal.Normalize(),
		center: center,
		chord:  chord,
	}
	copy(s.panels, panels)
	copy(s.bcs, boundaryConditions)

	return s, nil
}

// Len returns the number of chordwise panels.
func (s Section) Len() int { return len(s.panels) }

// Panels returns a copy of the chordwise panels.
func (s Section) Panels() []vortex.VortexPanel {
	out := make([]vortex.VortexPanel, len(s.panels))
	copy(out, s.panels)

	return out
}

// BoundaryConditions returns a copy of the collocation points.
func (s Section) BoundaryConditions() []vector.Vector3D {
	out := make([]vector.Vector3D, len(s.bcs))
	copy(out, s.bcs)

	return out
}

// Normal returns the unit normal.
func (s Section) Normal() vector.Vector3D { return s.normal }

// Center returns the section center; Center().Y is its spanwise coordinate.
func (s Section) Center() vector.Vector3D { return s.center }

// Chord returns the chord length.
func (s Section) Chord() float64 { return s.chord }

// Span returns the spanwise width of the strip, taken from its leading panel.
func (s Section) Span() float64 { return s.panels[0].Width() }

// String renders a one-line summary.
func (s Section) String() string {
	return fmt.Sprintf("Section{y=%g chord=%g span=%g panels=%d}", s.center.Y, s.chord, s.Span(), len(s.panels))
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b vector.Vector3D) float64 {
	ab := b.Sub(a)
	t := p.Sub(a).Dot(ab) / ab.Dot(ab)
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}

	return p.Sub(a.Add(ab.Scale(t))).Norm()
}
