package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"

	"github.com/lwc24/gofoam/geometry"
)

func writeUnitTetra(t *testing.T) string {
	t.Helper()
	a := model3d.Coord3D{}
	b := model3d.Coord3D{X: 1}
	c := model3d.Coord3D{Y: 1}
	d := model3d.Coord3D{Z: 1}
	s := geometry.NewSurface([]*model3d.Triangle{
		{a, c, b}, {a, b, d}, {a, d, c}, {b, c, d},
	})
	path := filepath.Join(t.TempDir(), "tetra.stl")
	require.NoError(t, s.SaveSTL(path))
	return path
}

func TestRunTransformScaleAndRecentre(t *testing.T) {
	in := writeUnitTetra(t)
	out := filepath.Join(t.TempDir(), "out.stl")
	err := RunTransform(&ModelTransform{
		InFile:   in,
		OutFile:  out,
		Recentre: true,
		Scale:    []float64{2},
	})
	require.NoError(t, err)

	s, err := geometry.LoadSTL(out)
	require.NoError(t, err)
	c := s.Centre()
	assert.InDelta(t, 0, c.X, 1e-6)
	assert.InDelta(t, 0, c.Y, 1e-6)
	assert.InDelta(t, 0, c.Z, 1e-6)
	min, max := s.Bounds()
	assert.InDelta(t, 2, max.X-min.X, 1e-6)
	assert.InDelta(t, 2, max.Y-min.Y, 1e-6)
	assert.InDelta(t, 2, max.Z-min.Z, 1e-6)
}

func TestRunTransformRejectsBadScale(t *testing.T) {
	in := writeUnitTetra(t)
	err := RunTransform(&ModelTransform{InFile: in, OutFile: in, Scale: []float64{1, 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scale takes 1 or 3 values")
}

func TestRunTransformMissingInput(t *testing.T) {
	err := RunTransform(&ModelTransform{
		InFile:  filepath.Join(t.TempDir(), "nope.stl"),
		OutFile: filepath.Join(t.TempDir(), "out.stl"),
	})
	require.Error(t, err)
}
