// SPDX-License-Identifier: MIT

// Package vector provides the two vector shapes used by the lattice solver.
//
//   - Vector3D is a plain (x, y, z) value: geometry points, normals, velocities
//     and forces. It is copied by value and never shared.
//   - Vector is an ordered, bounds-checked sequence of float64 values used for
//     flattened per-panel and per-section quantities (right-hand sides,
//     circulations, spanwise coordinates, matrix rows).
//
// Axis convention used across the module:
//
//	x — downstream (body axis, trailing vortices leave along +x)
//	y — spanwise (starboard positive)
//	z — up
//
// Complexity:
//   - Vector3D operations are O(1) and allocation-free.
//   - Vector construction, Scale, Values and Clone are O(n); At/Set are O(1).
package vector
