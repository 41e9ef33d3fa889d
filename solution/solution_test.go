package solution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerolattice/solution"
	"github.com/katalvlaran/aerolattice/vector"
)

const eps = 1e-12

var up = vector.New(0, 0, 1)

// single builds a one-section Solution with unit normal +z.
func single(t *testing.T, circ, span, alpha, aoa, sRef, bRef float64) *solution.Solution {
	t.Helper()
	s, err := solution.New(
		vector.NewVector(0),
		vector.NewVector(1),
		vector.NewVector(span),
		vector.NewVector(alpha),
		vector.NewVector(circ),
		[]vector.Vector3D{up},
		aoa, sRef, bRef,
	)
	require.NoError(t, err)

	return s
}

// TestMeanAerodynamicChord checks the arithmetic mean of chords.
func TestMeanAerodynamicChord(t *testing.T) {
	s, err := solution.New(
		vector.NewVector(-1, 0, 1),
		vector.NewVector(1, 2, 6),
		vector.NewVector(1, 1, 1),
		vector.Zeros(3),
		vector.Zeros(3),
		[]vector.Vector3D{up, up, up},
		0, 3, 3,
	)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, s.MeanAerodynamicChord(), eps)
	assert.Equal(t, 3, s.Len())
}

// TestZeroInducedAngle: with α_i = 0 the force is normal to the freestream.
func TestZeroInducedAngle(t *testing.T) {
	const aoa = 0.1
	s := single(t, 1, 2, aoa, aoa, 4, 4) // α − α_i = 0, force stays along +z

	f := s.AeroForce()
	assert.InDelta(t, 0.0, f.X, eps)
	assert.InDelta(t, 0.0, f.Y, eps)
	assert.InDelta(t, 4.0, f.Z, eps) // 2Γ·span

	assert.InDelta(t, math.Cos(aoa), s.CL(), eps)
	assert.InDelta(t, math.Sin(aoa), s.CDi(), eps)
	assert.InDelta(t, 4.0, s.AspectRatio(), eps)

	e, err := s.SpanEfficiency()
	require.NoError(t, err)
	want := math.Cos(aoa) * math.Cos(aoa) / (math.Pi * math.Sin(aoa) * 4)
	assert.InDelta(t, want, e, eps)
}

// TestSpanEfficiencyUndefined covers CDi == 0.
func TestSpanEfficiencyUndefined(t *testing.T) {
	s := single(t, 1, 2, 0, 0, 4, 4)
	assert.InDelta(t, 1.0, s.CL(), eps)
	assert.InDelta(t, 0.0, s.CDi(), eps)

	_, err := s.SpanEfficiency()
	require.ErrorIs(t, err, solution.ErrNoInducedDrag)
	assert.Contains(t, s.String(), "e=NaN")
}

// TestDistributions checks LiftDistr, CLDistr and InducedAngleDistr.
func TestDistributions(t *testing.T) {
	s, err := solution.New(
		vector.NewVector(-0.5, 0.5),
		vector.NewVector(2, 4),
		vector.NewVector(1, 1),
		vector.NewVector(math.Pi/180, 2*math.Pi/180),
		vector.NewVector(0.5, 1),
		[]vector.Vector3D{up, up},
		0.05, 6, 2,
	)
	require.NoError(t, err)

	y, l := s.LiftDistr()
	assert.Equal(t, []float64{-0.5, 0.5}, y)
	assert.InDeltaSlice(t, []float64{1, 2}, l, eps)

	_, cl := s.CLDistr()
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, cl, eps)

	_, a := s.InducedAngleDistr()
	assert.InDeltaSlice(t, []float64{1, 2}, a, 1e-12)

	assert.InDelta(t, 0.05, s.AngleOfAttack(), eps)
	assert.Equal(t, 6.0, s.ReferenceArea())
	assert.Equal(t, 2.0, s.ReferenceSpan())

	// Returned slices are copies.
	y[0] = 42
	assert.Equal(t, -0.5, s.Coords()[0])
}

// TestNewErrors covers the constructor guards.
func TestNewErrors(t *testing.T) {
	one := vector.NewVector(1)
	normals := []vector.Vector3D{up}

	_, err := solution.New(vector.Vector{}, vector.Vector{}, vector.Vector{}, vector.Vector{}, vector.Vector{}, nil, 0, 1, 1)
	require.ErrorIs(t, err, solution.ErrEmpty)

	_, err = solution.New(one, vector.NewVector(1, 2), one, one, one, normals, 0, 1, 1)
	require.ErrorIs(t, err, solution.ErrLengthMismatch)

	_, err = solution.New(one, one, one, one, one, nil, 0, 1, 1)
	require.ErrorIs(t, err, solution.ErrLengthMismatch)

	for _, ref := range [][2]float64{{0, 1}, {1, -1}, {math.NaN(), 1}, {1, math.Inf(1)}} {
		_, err = solution.New(one, one, one, one, one, normals, 0, ref[0], ref[1])
		require.ErrorIs(t, err, solution.ErrBadReference, "ref=%v", ref)
	}
}

// TestInputsAreCopied ensures the Solution never aliases caller storage.
func TestInputsAreCopied(t *testing.T) {
	circ := vector.NewVector(1)
	normals := []vector.Vector3D{up}
	s, err := solution.New(vector.NewVector(0), vector.NewVector(1), vector.NewVector(1),
		vector.NewVector(0), circ, normals, 0, 1, 1)
	require.NoError(t, err)

	require.NoError(t, circ.Set(0, 100))
	normals[0] = vector.New(1, 0, 0)

	_, l := s.LiftDistr()
	assert.Equal(t, []float64{2}, l)
	assert.InDelta(t, 2.0, s.AeroForce().Z, eps)
}
