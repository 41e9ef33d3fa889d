// SPDX-License-Identifier: MIT

package vortex

import (
	"fmt"

	"github.com/katalvlaran/aerolattice/vector"
)

// VortexPanel is a horseshoe vortex: bound leg A→B and two trailing legs
// leaving A and B along the trailing direction.
//
// A VortexPanel is immutable after construction and safe to query from many
// goroutines at once.
type VortexPanel struct {
	a, b       vector.Vector3D // bound-leg endpoints
	trailing   vector.Vector3D // unit trailing direction
	coreRadius float64         // filament cut-off radius
}

// NewVortexPanel builds a horseshoe vortex with bound leg a→b.
//
// Orientation: with the default +x trailing direction, a bound leg running
// toward +y carries positive lift for positive circulation.
//
// Errors:
//   - ErrNonFinite when a or b has NaN/±Inf coordinates.
//   - ErrDegenerate when a == b or the bound leg is parallel to the wake.
func NewVortexPanel(a, b vector.Vector3D, opts ...Option) (VortexPanel, error) {
	if !a.IsFinite() || !b.IsFinite() {
		return VortexPanel{}, fmt.Errorf("NewVortexPanel(%v, %v): %w", a, b, ErrNonFinite)
	}
	o := gatherOptions(opts...)
	p := VortexPanel{a: a, b: b, trailing: o.trailing, coreRadius: o.coreRadius}
	if a == b || p.Width() == 0 {
		return VortexPanel{}, fmt.Errorf("NewVortexPanel(%v, %v): %w", a, b, ErrDegenerate)
	}

	return p, nil
}

// A returns the start of the bound leg.
func (p VortexPanel) A() vector.Vector3D { return p.a }

// B returns the end of the bound leg.
func (p VortexPanel) B() vector.Vector3D { return p.b }

// Trailing returns the unit direction of the trailing legs.
func (p VortexPanel) Trailing() vector.Vector3D { return p.trailing }

// Midpoint returns the middle of the bound leg.
func (p VortexPanel) Midpoint() vector.Vector3D { return p.a.Add(p.b).Scale(0.5) }

// Width returns the bound-leg length seen in the plane normal to the wake,
// i.e. the spanwise extent the panel's lift acts over.
func (p VortexPanel) Width() float64 {
	r0 := p.b.Sub(p.a)

	return r0.Sub(p.trailing.Scale(r0.Dot(p.trailing))).Norm()
}

// InducedFlow returns the velocity induced at point by this horseshoe vortex
// carrying unit circulation: bound leg plus both trailing legs.
//
// The leg leaving A is oriented from infinity toward A, so it enters with a
// minus sign relative to a filament starting at A.
func (p VortexPanel) InducedFlow(point vector.Vector3D) vector.Vector3D {
	bound := segmentFlow(point, p.a, p.b, p.coreRadius)
	right := semiInfiniteFlow(point, p.b, p.trailing, p.coreRadius, false)
	left := semiInfiniteFlow(point, p.a, p.trailing, p.coreRadius, false)

	return bound.Add(right).Sub(left)
}

// WakeFlow returns the Trefftz-plane velocity at point induced by the two
// trailing legs alone, each taken as a doubly-infinite line, for unit
// circulation. Only the position of point across the wake matters.
//
// At the lifting line the trailing system induces half of this value.
func (p VortexPanel) WakeFlow(point vector.Vector3D) vector.Vector3D {
	right := semiInfiniteFlow(point, p.b, p.trailing, p.coreRadius, true)
	left := semiInfiniteFlow(point, p.a, p.trailing, p.coreRadius, true)

	return right.Sub(left)
}

// String renders the bound leg, e.g. "VortexPanel[(0, -1, 0)→(0, 1, 0)]".
func (p VortexPanel) String() string {
	return fmt.Sprintf("VortexPanel[%v→%v]", p.a, p.b)
}
