// SPDX-License-Identifier: MIT

// Package vortex implements the horseshoe vortex element of the lattice.
//
// 🚀 What is a horseshoe vortex?
//
//	A bound filament A→B (placed on the quarter-chord line of a panel) plus two
//	semi-infinite trailing filaments that leave A and B and run downstream to
//	infinity. Its circulation is constant along the whole element, so the
//	wing's lift and its trailing wake are represented by a single strength Γ.
//
//	     A ─────────► B        (bound leg, Γ along +y gives +z lift)
//	     ▲            │
//	     │            ▼
//	   (+∞)         (+∞)      (trailing legs along +x)
//
// ✨ Key features:
//   - InducedFlow: Biot–Savart velocity of the full element for unit Γ.
//   - WakeFlow: Trefftz-plane (far-wake) velocity of the trailing legs only,
//     used to derive induced angles and induced drag.
//   - Core radius cut-off: a field point lying on a filament gets zero
//     contribution from that filament instead of Inf/NaN.
//
// Performance:
//   - Every query is O(1) and allocation-free.
package vortex
