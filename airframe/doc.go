// SPDX-License-Identifier: MIT

// Package airframe assembles and solves the vortex-lattice system of a
// lifting surface.
//
// 🚀 What does it solve?
//
//	An Airframe owns an ordered list of spanwise Sections; each Section owns a
//	chordwise list of horseshoe vortices (vortex.VortexPanel) and one
//	collocation point per vortex. Flow tangency at every collocation point
//	gives one linear equation per panel:
//
//	  Σ_j A_ij Γ_j = −V∞·n_i,   A_ij = V_j(P_i)·n_i
//
//	where V_j(P_i) is the velocity panel j induces at collocation point i for
//	unit circulation and n_i is the normal of the section owning panel i.
//	Solving for Γ gives the sectional lift (L'/q = 2Γ per unit span).
//
// ✨ Key features:
//   - Fixed flattening order (sections outer, panels inner) shared by the
//     matrix, the right-hand side and every per-section aggregate.
//   - Parallel, deterministic assembly of the normalwash matrix.
//   - Singular or degenerate geometry is reported via matrix.ErrSingular,
//     never as NaN/Inf results.
//   - Solve produces an immutable solution.Solution with CL, CDi and span
//     efficiency; induced angles come from the Trefftz-plane wake.
//
// ⚙️ Usage:
//
//	af, err := airframe.New(5, 0, sections, airframe.WithReference(sRef, bRef))
//	if err != nil { ... }
//	sol, err := af.Solve()
//	if errors.Is(err, matrix.ErrSingular) { ... fix geometry ... }
//	fmt.Println(sol.CL(), sol.CDi())
//
// Performance:
//
//   - Assembly: O(N²) Biot–Savart evaluations, spread over WithWorkers goroutines.
//   - Solve:    O(N³) (LU with partial pivoting), N = total panel count.
//
// Sections are not re-sorted: callers provide them in spanwise order.
package airframe
