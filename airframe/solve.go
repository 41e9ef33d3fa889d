// SPDX-License-Identifier: MIT

package airframe

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/aerolattice/matrix"
	"github.com/katalvlaran/aerolattice/solution"
	"github.com/katalvlaran/aerolattice/vector"
)

// VorticityDistr solves the tangency system for the panel circulations:
//
//	Γ = A⁻¹ · b,   A = NormalwashMatrix(), b = FreestreamVector()
//
// The result is in flattening order and has length PanelCount().
//
// Errors:
//   - matrix.ErrSingular (possibly as matrix.ErrIllConditioned) when the
//     geometry yields a singular system, e.g. coincident panels.
func (a *Airframe) VorticityDistr() (vector.Vector, error) {
	start := time.Now()
	log := a.opts.logger

	circ, err := a.vorticity()
	if err != nil {
		log.Error("vorticity solve failed",
			slog.Int("panels", a.PanelCount()),
			slog.Any("error", err),
		)

		return vector.Vector{}, fmt.Errorf("VorticityDistr: %w", err)
	}
	log.Debug("vorticity solved",
		slog.Int("panels", circ.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return circ, nil
}

func (a *Airframe) vorticity() (vector.Vector, error) {
	nw, err := a.NormalwashMatrix()
	if err != nil {
		return vector.Vector{}, err
	}
	if a.opts.logger.Enabled(context.Background(), slog.LevelDebug) {
		if c, cerr := matrix.Cond(nw); cerr == nil {
			a.opts.logger.Debug("normalwash assembled", slog.Int("n", nw.Rows()), slog.Float64("cond", c))
		}
	}

	inv, err := matrix.Inverse(nw, a.opts.matrixOpts...)
	if err != nil {
		return vector.Vector{}, err
	}

	return matrix.MulVec(inv, a.FreestreamVector())
}

// sectionCirculation sums the panel circulations of every section.
func (a *Airframe) sectionCirculation(circ vector.Vector) ([]float64, error) {
	if circ.Len() != a.PanelCount() {
		return nil, fmt.Errorf("circulation length %d, want %d: %w", circ.Len(), a.PanelCount(), ErrCirculationLength)
	}
	vals := circ.Values()
	out := make([]float64, len(a.sections))
	k := 0
	for s := range a.sections {
		for range a.sections[s].panels {
			out[s] += vals[k]
			k++
		}
	}

	return out, nil
}

// LiftDistr returns the sectional lift per unit span over dynamic pressure,
// L'/q = 2·ΣΓ, for every section, together with SpanwiseCoords.
func (a *Airframe) LiftDistr() (coords, values []float64, err error) {
	circ, err := a.VorticityDistr()
	if err != nil {
		return nil, nil, fmt.Errorf("LiftDistr: %w", err)
	}
	values, err = a.sectionCirculation(circ)
	if err != nil {
		return nil, nil, fmt.Errorf("LiftDistr: %w", err)
	}
	for i := range values {
		values[i] *= 2
	}

	return a.SpanwiseCoords(), values, nil
}

// LiftCoeff returns the sectional lift coefficient LiftDistr/chord.
func (a *Airframe) LiftCoeff() (coords, values []float64, err error) {
	coords, values, err = a.LiftDistr()
	if err != nil {
		return nil, nil, fmt.Errorf("LiftCoeff: %w", err)
	}
	for i := range values {
		values[i] /= a.sections[i].chord
	}

	return coords, values, nil
}

// InducedAngles returns the induced angle of attack (radians) at every
// section center for the given panel circulations.
//
// The downwash is half the Trefftz-plane value of the trailing legs:
//
//	w_s = −½ · Σ_p Γ_p · WakeFlow_p(center_s) · n_s,   α_i = atan(w_s)
//
// Errors:
//   - ErrCirculationLength when circ.Len() != PanelCount().
func (a *Airframe) InducedAngles(circ vector.Vector) ([]float64, error) {
	if circ.Len() != a.PanelCount() {
		return nil, fmt.Errorf("InducedAngles: circulation length %d, want %d: %w",
			circ.Len(), a.PanelCount(), ErrCirculationLength)
	}
	l := a.flatten()
	gamma := circ.Values()
	out := make([]float64, len(a.sections))
	for s := range a.sections {
		c, n := a.sections[s].center, a.sections[s].normal
		var w float64
		for k, p := range l.panels {
			w += gamma[k] * p.WakeFlow(c).Dot(n)
		}
		out[s] = math.Atan(-0.5 * w)
	}

	return out, nil
}

// Solve runs one tangency solve and packs the result into an immutable
// solution.Solution (per-section circulation, chords, spans, induced angles
// and normals, plus the reference geometry).
func (a *Airframe) Solve() (*solution.Solution, error) {
	circ, err := a.VorticityDistr()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	perSection, err := a.sectionCirculation(circ)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	alphas, err := a.InducedAngles(circ)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	n := len(a.sections)
	chords := make([]float64, n)
	spans := make([]float64, n)
	normals := make([]vector.Vector3D, n)
	for s := range a.sections {
		chords[s] = a.sections[s].chord
		spans[s] = a.sections[s].Span()
		normals[s] = a.sections[s].normal
	}

	sol, err := solution.New(
		vector.NewVector(a.SpanwiseCoords()...),
		vector.NewVector(chords...),
		vector.NewVector(spans...),
		vector.NewVector(alphas...),
		vector.NewVector(perSection...),
		normals,
		a.aoa,
		a.ReferenceArea(),
		a.ReferenceSpan(),
	)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	a.opts.logger.Debug("solution ready", slog.Float64("cl", sol.CL()), slog.Float64("cdi", sol.CDi()))

	return sol, nil
}
