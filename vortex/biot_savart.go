// SPDX-License-Identifier: MIT

package vortex

import (
	"math"

	"github.com/katalvlaran/aerolattice/vector"
)

// invFourPi is 1/(4π), the Biot–Savart prefactor for unit circulation.
const invFourPi = 1 / (4 * math.Pi)

// segmentFlow returns the velocity induced at p by a straight filament a→b of
// unit circulation:
//
//	V = (r1×r2)/|r1×r2|² · r0·(r1/|r1| − r2/|r2|) / 4π
//
// with r0 = b−a, r1 = p−a, r2 = p−b. Points closer than rc to the filament
// line, or to either endpoint, get zero.
func segmentFlow(p, a, b vector.Vector3D, rc float64) vector.Vector3D {
	r0 := b.Sub(a)
	r1 := p.Sub(a)
	r2 := p.Sub(b)

	n1, n2 := r1.Norm(), r2.Norm()
	if n1 <= rc || n2 <= rc {
		return vector.Vector3D{}
	}
	c := r1.Cross(r2)
	c2 := c.Dot(c)
	// |r1×r2| = h·|r0|, h being the distance from p to the filament line.
	if c2 == 0 || c2 <= rc*rc*r0.Dot(r0) {
		return vector.Vector3D{}
	}
	k := r0.Dot(r1.Scale(1 / n1).Sub(r2.Scale(1 / n2)))

	return c.Scale(k * invFourPi / c2)
}

// semiInfiniteFlow returns the velocity at p induced by a unit-circulation
// filament that starts at a and runs to infinity along the unit vector d:
//
//	V = (d×r1)/|d×r1|² · (1 + d·r1/|r1|) / 4π
//
// When farField is set, the filament is treated as doubly infinite (the
// Trefftz-plane limit) and the bracket becomes 2.
func semiInfiniteFlow(p, a, d vector.Vector3D, rc float64, farField bool) vector.Vector3D {
	r1 := p.Sub(a)
	n1 := r1.Norm()
	c := d.Cross(r1)
	c2 := c.Dot(c) // h² since |d| = 1
	if c2 == 0 || c2 <= rc*rc || (!farField && n1 <= rc) {
		return vector.Vector3D{}
	}
	k := 2.0
	if !farField {
		k = 1 + d.Dot(r1)/n1
	}

	return c.Scale(k * invFourPi / c2)
}
