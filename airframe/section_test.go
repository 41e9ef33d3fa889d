package airframe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerolattice/airframe"
	"github.com/katalvlaran/aerolattice/vector"
	"github.com/katalvlaran/aerolattice/vortex"
)

func strip(t *testing.T) ([]vortex.VortexPanel, []vector.Vector3D) {
	t.Helper()
	p, err := vortex.NewVortexPanel(vector.New(0.25, -0.5, 0), vector.New(0.25, 0.5, 0))
	require.NoError(t, err)

	return []vortex.VortexPanel{p}, []vector.Vector3D{vector.New(0.75, 0, 0)}
}

// TestNewSection checks accessors, normalization and copy semantics.
func TestNewSection(t *testing.T) {
	panels, bcs := strip(t)
	s, err := airframe.NewSection(panels, bcs, vector.New(0, 0, 3), vector.New(0.5, 0, 0), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, vector.New(0, 0, 1), s.Normal())
	assert.Equal(t, vector.New(0.5, 0, 0), s.Center())
	assert.Equal(t, 1.0, s.Chord())
	assert.InDelta(t, 1.0, s.Span(), 1e-15)
	assert.Equal(t, "Section{y=0 chord=1 span=1 panels=1}", s.String())

	// Caller slices are not aliased.
	bcs[0] = vector.New(9, 9, 9)
	assert.Equal(t, vector.New(0.75, 0, 0), s.BoundaryConditions()[0])
	got := s.Panels()
	got[0] = vortex.VortexPanel{}
	assert.Equal(t, panels[0], s.Panels()[0])
}

// TestNewSectionErrors covers every geometry guard.
func TestNewSectionErrors(t *testing.T) {
	panels, bcs := strip(t)
	up, center := vector.New(0, 0, 1), vector.Zero()

	cases := []struct {
		name   string
		panels []vortex.VortexPanel
		bcs    []vector.Vector3D
		normal vector.Vector3D
		center vector.Vector3D
		chord  float64
		want   error
	}{
		{"no panels", nil, nil, up, center, 1, airframe.ErrNoPanels},
		{"mismatch", panels, append(bcs, bcs[0]), up, center, 1, airframe.ErrPanelMismatch},
		{"zero chord", panels, bcs, up, center, 0, airframe.ErrBadChord},
		{"nan chord", panels, bcs, up, center, math.NaN(), airframe.ErrBadChord},
		{"zero normal", panels, bcs, vector.Zero(), center, 1, airframe.ErrBadNormal},
		{"inf normal", panels, bcs, vector.New(0, 0, math.Inf(1)), center, 1, airframe.ErrBadNormal},
		{"nan center", panels, bcs, up, vector.New(math.NaN(), 0, 0), 1, airframe.ErrBadPoint},
		{"nan bc", panels, []vector.Vector3D{vector.New(0, math.NaN(), 0)}, up, center, 1, airframe.ErrBadPoint},
		{"bc on vortex", panels, []vector.Vector3D{vector.New(0.25, 0.2, 0)}, up, center, 1, airframe.ErrCollocationOnVortex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := airframe.NewSection(tc.panels, tc.bcs, tc.normal, tc.center, tc.chord)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
