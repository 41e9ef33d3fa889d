// SPDX-License-Identifier: MIT

package vortex

import (
	"math"

	"github.com/katalvlaran/aerolattice/vector"
)

const (
	// DefaultCoreRadius is the distance from a filament below which that
	// filament's induced velocity is taken as zero.
	DefaultCoreRadius = 1e-10

	panicCoreRadiusInvalid = "vortex: WithCoreRadius: radius must be finite and >= 0"
	panicTrailingInvalid   = "vortex: WithTrailing: direction must be finite and non-zero"
)

// DefaultTrailing is the trailing-leg direction: downstream along the body x axis.
var DefaultTrailing = vector.New(1, 0, 0)

// Option configures a VortexPanel at construction.
type Option func(*options)

type options struct {
	coreRadius float64
	trailing   vector.Vector3D
}

// WithCoreRadius sets the filament cut-off radius. Zero disables the cut-off
// apart from exact-zero denominators.
func WithCoreRadius(r float64) Option {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		panic(panicCoreRadiusInvalid)
	}

	return func(o *options) { o.coreRadius = r }
}

// WithTrailing sets the direction of the trailing legs (normalized internally).
// Aligning the wake with the freestream instead of the body axis is the usual
// reason to override it.
func WithTrailing(d vector.Vector3D) Option {
	if !d.IsFinite() || d.Norm() == 0 {
		panic(panicTrailingInvalid)
	}
	u := d.Normalize()

	return func(o *options) { o.trailing = u }
}

func gatherOptions(user ...Option) options {
	o := options{coreRadius: DefaultCoreRadius, trailing: DefaultTrailing}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
