// SPDX-License-Identifier: MIT

package airframe

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/aerolattice/vector"
)

// Airframe is a lattice of spanwise sections in a uniform freestream.
//
// It exclusively owns its sections; every query is a pure function of the
// geometry and freestream fixed at construction, so an Airframe may be
// queried concurrently.
type Airframe struct {
	freestream vector.Vector3D // unit freestream velocity
	aoa        float64         // angle of attack, radians
	sideslip   float64         // sideslip, radians
	sections   []Section
	opts       options
}

// New builds an Airframe from angles in degrees and spanwise-ordered sections.
//
// The unit freestream is
//
//	V∞ = (cos β·cos α, −sin β·cos α, sin α)
//
// with α the angle of attack and β the sideslip, converted to radians.
//
// Errors:
//   - ErrNoSections for an empty list; ErrNoPanels for a zero-value Section.
//   - ErrBadAngle for NaN/±Inf angles.
func New(aoaDeg, sideslipDeg float64, sections []Section, opts ...Option) (*Airframe, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	if math.IsNaN(aoaDeg) || math.IsInf(aoaDeg, 0) || math.IsNaN(sideslipDeg) || math.IsInf(sideslipDeg, 0) {
		return nil, fmt.Errorf("New(%g, %g): %w", aoaDeg, sideslipDeg, ErrBadAngle)
	}
	for i := range sections {
		if sections[i].Len() == 0 {
			return nil, fmt.Errorf("New: section %d: %w", i, ErrNoPanels)
		}
	}

	aoa := degToRad(aoaDeg)
	beta := degToRad(sideslipDeg)
	own := make([]Section, len(sections))
	copy(own, sections) // Section accessors copy, so sharing the inner slices is safe

	a := &Airframe{
		freestream: vector.New(
			math.Cos(beta)*math.Cos(aoa),
			-math.Sin(beta)*math.Cos(aoa),
			math.Sin(aoa),
		),
		aoa:      aoa,
		sideslip: beta,
		sections: own,
		opts:     gatherOptions(opts...),
	}
	a.opts.logger.Debug("airframe built",
		slog.Int("sections", len(own)),
		slog.Int("panels", a.PanelCount()),
		slog.Float64("aoa_deg", aoaDeg),
		slog.Float64("sideslip_deg", sideslipDeg),
	)

	return a, nil
}

// Freestream returns the unit freestream velocity.
func (a *Airframe) Freestream() vector.Vector3D { return a.freestream }

// AngleOfAttack returns the angle of attack in radians.
func (a *Airframe) AngleOfAttack() float64 { return a.aoa }

// Sideslip returns the sideslip angle in radians.
func (a *Airframe) Sideslip() float64 { return a.sideslip }

// Sections returns the sections in spanwise (flattening) order.
func (a *Airframe) Sections() []Section {
	out := make([]Section, len(a.sections))
	copy(out, a.sections)

	return out
}

// PanelCount returns N, the total number of panels over all sections.
func (a *Airframe) PanelCount() int {
	n := 0
	for i := range a.sections {
		n += len(a.sections[i].panels)
	}

	return n
}

// Flow returns the velocity at point: freestream plus the unit-circulation
// induced velocity of every panel.
//
// This is a diagnostic of the lattice geometry: panel contributions are not
// scaled by solved circulations.
func (a *Airframe) Flow(point vector.Vector3D) vector.Vector3D {
	out := a.freestream
	for i := range a.sections {
		for _, p := range a.sections[i].panels {
			out = out.Add(p.InducedFlow(point))
		}
	}

	return out
}

// SpanwiseCoords returns center.Y of every section, in order.
func (a *Airframe) SpanwiseCoords() []float64 {
	out := make([]float64, len(a.sections))
	for i := range a.sections {
		out[i] = a.sections[i].center.Y
	}

	return out
}

// ReferenceArea returns the WithReference area, or Σ chord·span.
func (a *Airframe) ReferenceArea() float64 {
	if a.opts.sRef > 0 {
		return a.opts.sRef
	}
	var s float64
	for i := range a.sections {
		s += a.sections[i].chord * a.sections[i].Span()
	}

	return s
}

// ReferenceSpan returns the WithReference span, or the y-extent of all bound legs.
func (a *Airframe) ReferenceSpan() float64 {
	if a.opts.bRef > 0 {
		return a.opts.bRef
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range a.sections {
		for _, p := range a.sections[i].panels {
			lo = math.Min(lo, math.Min(p.A().Y, p.B().Y))
			hi = math.Max(hi, math.Max(p.A().Y, p.B().Y))
		}
	}

	return hi - lo
}

// String renders a one-line summary.
func (a *Airframe) String() string {
	return fmt.Sprintf("Airframe{aoa=%g° sideslip=%g° sections=%d panels=%d}",
		radToDeg(a.aoa), radToDeg(a.sideslip), len(a.sections), a.PanelCount())
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }

func radToDeg(r float64) float64 { return r * 180 / math.Pi }
