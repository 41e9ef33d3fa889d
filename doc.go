// Package aerolattice is a vortex-lattice solver for the lift and induced drag
// of thin lifting surfaces.
//
// 🚀 What is aerolattice?
//
//	A small, deterministic library that turns a discretized wing into
//	aerodynamic coefficients:
//		• Geometry: spanwise Sections of chordwise horseshoe vortices
//		• Induced velocity: Biot–Savart law for bound and trailing legs
//		• Linear system: flow tangency at every collocation point, solved by
//		  LU with partial pivoting and a condition-number guard
//		• Results: CL, CDi, span efficiency and spanwise distributions
//
// ✨ Why choose aerolattice?
//
//   - Explicit errors – singular geometry is reported, never NaN results
//   - Deterministic – parallel assembly, identical output for any worker count
//   - Small surface – value types for geometry, immutable solutions
//
// Packages:
//
//	vector/    — Vector3D value type and bounds-checked Vector
//	matrix/    — dense matrix, LU, inverse, mat-vec, condition estimate
//	vortex/    — horseshoe VortexPanel and its induced/wake velocities
//	airframe/  — Section, Airframe: assembly, solve, lift distributions
//	solution/  — immutable Solution: MAC, aero force, CL, CDi, e
//
// Axes: x downstream, y spanwise, z up. Angles are degrees at the Airframe
// constructor and radians everywhere else.
//
// Quick example:
//
//	af, _ := airframe.New(5, 0, sections)
//	sol, err := af.Solve()
//	if errors.Is(err, matrix.ErrSingular) { ... }
//	fmt.Println(sol.CL(), sol.CDi())
//
// Mesh generation, plotting, viscous and compressibility effects are out of
// scope: callers build Sections themselves.
//
//	go get github.com/katalvlaran/aerolattice
package aerolattice
