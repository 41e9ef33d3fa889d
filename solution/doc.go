// SPDX-License-Identifier: MIT

// Package solution holds the immutable result of one vortex-lattice solve and
// derives the integrated coefficients from it.
//
// A Solution stores, per spanwise section: the spanwise coordinate, chord,
// strip width, induced angle (radians), total circulation and unit normal,
// plus the angle of attack and the reference area/span. Everything else is
// computed on demand:
//
//	F    = Σ_i R_y(α − α_i)·n_i · 2Γ_i · b_i       (force / dynamic pressure)
//	CL   = F · (−sin α, 0, cos α) / S
//	CDi  = F · ( cos α, 0, sin α) / S
//	e    = CL² / (π · CDi · AR),   AR = b²/S
//
// The value is never mutated after New, so it may be shared freely between
// goroutines.
package solution
