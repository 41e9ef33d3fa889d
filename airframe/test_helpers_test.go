package airframe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerolattice/airframe"
	"github.com/katalvlaran/aerolattice/vector"
	"github.com/katalvlaran/aerolattice/vortex"
)

// chordFunc returns the local chord at spanwise coordinate y.
type chordFunc func(y float64) float64

// planform discretizes a straight, flat wing of span b into n uniform strips
// with nc chordwise panels each. The leading edge lies on x = 0; every panel
// carries its bound leg at its quarter chord and its collocation point at its
// three-quarter chord.
func planform(t testing.TB, b float64, n, nc int, chord chordFunc) []airframe.Section {
	t.Helper()
	return dihedralPlanform(t, b, n, nc, 0, chord)
}

// dihedralPlanform is planform with both halves raised by the dihedral angle
// (radians). Even n keeps the root on a strip boundary.
func dihedralPlanform(t testing.TB, b float64, n, nc int, dihedral float64, chord chordFunc) []airframe.Section {
	t.Helper()
	tan := math.Tan(dihedral)
	z := func(y float64) float64 { return math.Abs(y) * tan }

	sections := make([]airframe.Section, 0, n)
	dy := b / float64(n)
	for i := 0; i < n; i++ {
		y0 := -b/2 + float64(i)*dy
		y1 := y0 + dy
		yc := (y0 + y1) / 2
		c := chord(yc)

		normal := vector.New(0, 0, 1)
		if dihedral != 0 {
			side := math.Copysign(1, yc)
			normal = vector.New(0, -side*math.Sin(dihedral), math.Cos(dihedral))
		}

		panels := make([]vortex.VortexPanel, 0, nc)
		bcs := make([]vector.Vector3D, 0, nc)
		dx := c / float64(nc)
		for k := 0; k < nc; k++ {
			x0 := float64(k) * dx
			p, err := vortex.NewVortexPanel(
				vector.New(x0+dx/4, y0, z(y0)),
				vector.New(x0+dx/4, y1, z(y1)),
			)
			require.NoError(t, err)
			panels = append(panels, p)
			bcs = append(bcs, vector.New(x0+0.75*dx, yc, z(yc)))
		}

		s, err := airframe.NewSection(panels, bcs, normal, vector.New(c/4, yc, z(yc)), c)
		require.NoError(t, err)
		sections = append(sections, s)
	}

	return sections
}

// constant returns a rectangular chord law.
func constant(c float64) chordFunc {
	return func(float64) float64 { return c }
}

// elliptic returns c(y) = root·sqrt(1 − (2y/b)²).
func elliptic(root, b float64) chordFunc {
	return func(y float64) float64 {
		r := 2 * y / b
		return root * math.Sqrt(1-r*r)
	}
}

// rectangular is the reference flat wing: span 10, chord 1, 40 strips, one chordwise panel.
func rectangular(t testing.TB) []airframe.Section {
	t.Helper()
	return planform(t, 10, 40, 1, constant(1))
}

// mustAirframe builds an Airframe or fails the test.
func mustAirframe(t testing.TB, aoa, beta float64, sections []airframe.Section, opts ...airframe.Option) *airframe.Airframe {
	t.Helper()
	a, err := airframe.New(aoa, beta, sections, opts...)
	require.NoError(t, err)

	return a
}
