// SPDX-License-Identifier: MIT

package solution

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aerolattice/vector"
)

// Solution is one solved lift distribution. All slices are indexed by section.
type Solution struct {
	coords  []float64
	chords  []float64
	spans   []float64
	alphas  []float64 // induced angles, radians
	circ    []float64 // Σ Γ over the section's panels
	normals []vector.Vector3D
	aoa     float64 // radians
	sRef    float64
	bRef    float64
}

// New validates and copies the per-section results of a solve.
//
// aoa is in radians. coords, chords, spans, inducedAngles, circulations and
// normals must have the same, non-zero length.
//
// Errors:
//   - ErrEmpty, ErrLengthMismatch, ErrBadReference.
func New(
	coords, chords, spans, inducedAngles, circulations vector.Vector,
	normals []vector.Vector3D,
	aoa, sRef, bRef float64,
) (*Solution, error) {
	n := coords.Len()
	if n == 0 {
		return nil, ErrEmpty
	}
	for _, l := range []int{chords.Len(), spans.Len(), inducedAngles.Len(), circulations.Len(), len(normals)} {
		if l != n {
			return nil, fmt.Errorf("New: got %d, want %d: %w", l, n, ErrLengthMismatch)
		}
	}
	if !positiveFinite(sRef) || !positiveFinite(bRef) {
		return nil, fmt.Errorf("New: sRef=%g bRef=%g: %w", sRef, bRef, ErrBadReference)
	}

	ns := make([]vector.Vector3D, n)
	copy(ns, normals)

	return &Solution{
		coords:  coords.Values(),
		chords:  chords.Values(),
		spans:   spans.Values(),
		alphas:  inducedAngles.Values(),
		circ:    circulations.Values(),
		normals: ns,
		aoa:     aoa,
		sRef:    sRef,
		bRef:    bRef,
	}, nil
}

// Len returns the number of sections.
func (s *Solution) Len() int { return len(s.coords) }

// AngleOfAttack returns the geometric angle of attack in radians.
func (s *Solution) AngleOfAttack() float64 { return s.aoa }

// ReferenceArea returns S.
func (s *Solution) ReferenceArea() float64 { return s.sRef }

// ReferenceSpan returns b.
func (s *Solution) ReferenceSpan() float64 { return s.bRef }

// AspectRatio returns b²/S.
func (s *Solution) AspectRatio() float64 { return s.bRef * s.bRef / s.sRef }

// MeanAerodynamicChord returns the arithmetic mean of the section chords.
//
// Sections are not weighted by span or chord, so for non-uniform spacing this
// differs from the classical ∫c²dy / ∫c dy definition.
func (s *Solution) MeanAerodynamicChord() float64 {
	var sum float64
	for _, c := range s.chords {
		sum += c
	}

	return sum / float64(len(s.chords))
}

// AeroForce returns the total aerodynamic force over dynamic pressure.
//
// Each section contributes along its normal tilted back by the effective
// angle α − α_i, with magnitude 2Γ·span (Kutta–Joukowski).
func (s *Solution) AeroForce() vector.Vector3D {
	var f vector.Vector3D
	for i := range s.coords {
		dir := s.normals[i].RotateY(s.aoa - s.alphas[i])
		f = f.Add(dir.Scale(2 * s.circ[i] * s.spans[i]))
	}

	return f
}

// CL returns the lift coefficient: the force component normal to the
// freestream in the x-z plane, over S.
func (s *Solution) CL() float64 {
	lift := vector.New(-math.Sin(s.aoa), 0, math.Cos(s.aoa))

	return s.AeroForce().Dot(lift) / s.sRef
}

// CDi returns the induced drag coefficient: the force component along the
// freestream in the x-z plane, over S.
func (s *Solution) CDi() float64 {
	drag := vector.New(math.Cos(s.aoa), 0, math.Sin(s.aoa))

	return s.AeroForce().Dot(drag) / s.sRef
}

// SpanEfficiency returns the Oswald factor e = CL² / (π·CDi·AR).
//
// Errors:
//   - ErrNoInducedDrag when CDi <= 0.
func (s *Solution) SpanEfficiency() (float64, error) {
	cdi := s.CDi()
	if !(cdi > 0) {
		return 0, fmt.Errorf("SpanEfficiency: CDi=%g: %w", cdi, ErrNoInducedDrag)
	}
	cl := s.CL()

	return cl * cl / (math.Pi * cdi * s.AspectRatio()), nil
}

// LiftDistr returns L'/q = 2Γ per section.
func (s *Solution) LiftDistr() (coords, values []float64) {
	values = make([]float64, len(s.circ))
	for i, g := range s.circ {
		values[i] = 2 * g
	}

	return s.Coords(), values
}

// CLDistr returns the sectional lift coefficient 2Γ/c.
func (s *Solution) CLDistr() (coords, values []float64) {
	coords, values = s.LiftDistr()
	for i := range values {
		values[i] /= s.chords[i]
	}

	return coords, values
}

// InducedAngleDistr returns the induced angles in degrees.
func (s *Solution) InducedAngleDistr() (coords, values []float64) {
	values = make([]float64, len(s.alphas))
	for i, a := range s.alphas {
		values[i] = a * 180 / math.Pi
	}

	return s.Coords(), values
}

// Coords returns the spanwise coordinate of every section.
func (s *Solution) Coords() []float64 {
	out := make([]float64, len(s.coords))
	copy(out, s.coords)

	return out
}

// String renders the integrated coefficients on one line.
func (s *Solution) String() string {
	e, err := s.SpanEfficiency()
	if err != nil {
		e = math.NaN()
	}

	return fmt.Sprintf("Solution{sections=%d aoa=%.3g° CL=%.5g CDi=%.5g e=%.4g AR=%.4g}",
		s.Len(), s.aoa*180/math.Pi, s.CL(), s.CDi(), e, s.AspectRatio())
}

func positiveFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}
