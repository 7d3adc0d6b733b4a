package snappy

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwc24/gofoam/foamcase"
	"github.com/lwc24/gofoam/foamdict"
	"github.com/lwc24/gofoam/geometry"
)

func sphereParams() *ParameterSet {
	g := &geometry.Geometry{Format: geometry.FormatSTL, Name: "sphere"}
	return NewParameterSet(g, 6, nil)
}

func subDict(t *testing.T, d *foamdict.Dict, keys ...string) *foamdict.Dict {
	t.Helper()
	for _, k := range keys {
		v, ok := d.Get(k)
		require.True(t, ok, "missing key %s", k)
		sub, ok := v.(*foamdict.Dict)
		require.True(t, ok, "key %s is not a dict", k)
		d = sub
	}
	return d
}

func value(t *testing.T, d *foamdict.Dict, key string) interface{} {
	t.Helper()
	v, ok := d.Get(key)
	require.True(t, ok, "missing key %s", key)
	return v
}

func TestDefaultRefinementSurfaceLevel(t *testing.T) {
	d := sphereParams().Dict()
	surf := subDict(t, d, "castellatedMeshControls", "refinementSurfaces", "sphere.stl")
	assert.Equal(t, foamdict.List{5, 6}, value(t, surf, "level"))
}

func TestRefinementRegionLevels(t *testing.T) {
	d := sphereParams().Dict()
	region := subDict(t, d, "castellatedMeshControls", "refinementRegions", "sphere.stl")
	assert.Equal(t, "distance", value(t, region, "mode"))
	want := foamdict.List{
		foamdict.List{foamdict.List{0.1, 4}},
		foamdict.List{foamdict.List{0.2, 3}},
	}
	assert.Equal(t, want, value(t, region, "levels"))
}

func TestGeometrySectionAndFeatures(t *testing.T) {
	d := sphereParams().Dict()
	geom := subDict(t, d, "geometry")
	assert.Equal(t, []string{"sphere.stl"}, geom.Keys())
	assert.Equal(t, "triSurfaceMesh", value(t, subDict(t, geom, "sphere.stl"), "type"))

	cast := subDict(t, d, "castellatedMeshControls")
	features, ok := value(t, cast, "features").(foamdict.List)
	require.True(t, ok)
	require.Len(t, features, 1)
	entry, ok := features[0].(*foamdict.Dict)
	require.True(t, ok)
	assert.Equal(t, foamdict.String("sphere.eMesh"), value(t, entry, "file"))
	assert.Equal(t, 6, value(t, entry, "level"))
}

func TestNRelaxIterDefaultsToThree(t *testing.T) {
	d := sphereParams().Dict()
	assert.Equal(t, 3, value(t, subDict(t, d, "addLayersControls"), "nRelaxIter"))
	assert.Equal(t, 3, value(t, subDict(t, d, "snapControls"), "nRelaxIter"))
}

func TestRenderIsIdempotent(t *testing.T) {
	p := sphereParams()
	first := p.Dict()
	second := p.Dict()
	assert.Equal(t, first, second)

	hdr := foamdict.DefaultHeader("system", "snappyHexMeshDict")
	var a, b bytes.Buffer
	require.NoError(t, foamdict.Write(&a, hdr, first))
	require.NoError(t, foamdict.Write(&b, hdr, second))
	assert.Equal(t, a.String(), b.String())
}

func TestMutationIsReflectedInRender(t *testing.T) {
	p := sphereParams()
	p.NSurfaceLayers = 3
	p.MaxGlobalCells = 500000
	p.Castellate = false
	d := p.Dict()

	layer := subDict(t, d, "addLayersControls", "layers", "sphere.stl")
	assert.Equal(t, 3, value(t, layer, "nSurfaceLayers"))
	cast := subDict(t, d, "castellatedMeshControls")
	assert.Equal(t, 500000, value(t, cast, "maxGlobalCells"))
	assert.Equal(t, false, value(t, d, "castellatedMesh"))
}

func TestTopLevelSectionsInOrder(t *testing.T) {
	d := sphereParams().Dict()
	assert.Equal(t, []string{
		"castellatedMesh", "snap", "addLayers",
		"geometry", "castellatedMeshControls", "snapControls",
		"addLayersControls", "meshQualityControls", "mergeTolerance",
	}, d.Keys())
	quality := subDict(t, d, "meshQualityControls")
	assert.Equal(t, foamdict.String("meshQualityDict"), value(t, quality, "#include"))
	assert.Equal(t, 1e-6, value(t, d, "mergeTolerance"))
}

func TestValidateRejectsMismatchedDistanceSequences(t *testing.T) {
	p := sphereParams()
	require.NoError(t, p.Validate())
	p.DistanceLevels = []int{4}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distanceLevels")
}

func TestWriteDict(t *testing.T) {
	c, err := foamcase.New(filepath.Join(t.TempDir(), "temp_case"))
	require.NoError(t, err)
	g := &geometry.Geometry{Format: geometry.FormatSTL, Name: "sphere", Case: c}
	p := NewParameterSet(g, 6, c)

	require.NoError(t, p.WriteDict())
	data, err := os.ReadFile(filepath.Join(c.Root, "system", "snappyHexMeshDict"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "castellatedMesh true;")
	assert.Contains(t, out, "sphere.stl")
	assert.Contains(t, out, `file "sphere.eMesh"; level 6;`)
	assert.Contains(t, out, "level ( 5 6 );")
	assert.Contains(t, out, "levels ( ( ( 0.1 4 ) ) ( ( 0.2 3 ) ) );")
	assert.Contains(t, out, "locationInMesh ( 0.001 0.001 0.0015 );")
	assert.Contains(t, out, `#include "meshQualityDict"`)
	assert.Contains(t, out, "mergeTolerance 1e-06;")
}

func TestWriteDictRejectsInvalidSet(t *testing.T) {
	c, err := foamcase.New(filepath.Join(t.TempDir(), "temp_case"))
	require.NoError(t, err)
	g := &geometry.Geometry{Format: geometry.FormatSTL, Name: "sphere", Case: c}
	p := NewParameterSet(g, 6, c)
	p.DistanceRefinements = []float64{0.1}

	require.Error(t, p.WriteDict())
	// Validation runs before the file is opened; nothing is written.
	_, statErr := os.Stat(filepath.Join(c.Root, "system", "snappyHexMeshDict"))
	assert.True(t, os.IsNotExist(statErr))
}
