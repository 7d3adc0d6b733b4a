package foamdict

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictOrder(t *testing.T) {
	d := New()
	d.Set("c", 1)
	d.Set("a", 2)
	d.Set("b", 3)
	d.Set("a", 4) // overwrite keeps position
	assert.Equal(t, []string{"c", "a", "b"}, d.Keys())
	v, ok := d.Get("a")
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, 3, d.Len())
}

func TestSubDict(t *testing.T) {
	d := New()
	sub := d.SubDict("controls")
	sub.Set("n", 3)
	again := d.SubDict("controls")
	assert.Same(t, sub, again)
	v, ok := again.Get("n")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestUpdateMergesNestedDicts(t *testing.T) {
	d := New()
	d.Set("startTime", 0)
	d.SubDict("solvers").Set("p", "GAMG")

	o := New()
	o.Set("endTime", 0.5)
	o.SubDict("solvers").Set("U", "smoothSolver")

	d.Update(o)
	assert.Equal(t, []string{"startTime", "solvers", "endTime"}, d.Keys())
	solvers := d.SubDict("solvers")
	assert.Equal(t, []string{"p", "U"}, solvers.Keys())
}

func TestWriteFormatting(t *testing.T) {
	d := New()
	d.Set("castellatedMesh", true)
	d.Set("maxLocalCells", 1000000)
	d.Set("mergeTolerance", 1e-6)
	d.Set("mode", "distance")
	d.Set("file", String("sphere.eMesh"))
	d.Set("level", List{5, 6})
	d.Set("levels", List{List{List{0.1, 4}}, List{List{0.2, 3}}})
	d.Set("#include", String("meshQualityDict"))
	sub := d.SubDict("geometry")
	sub.Set("sphere.stl", "triSurfaceMesh")

	var buf bytes.Buffer
	err := Write(&buf, DefaultHeader("system", "snappyHexMeshDict"), d)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "object      snappyHexMeshDict;")
	assert.Contains(t, out, "castellatedMesh true;")
	assert.Contains(t, out, "maxLocalCells 1000000;")
	assert.Contains(t, out, "mergeTolerance 1e-06;")
	assert.Contains(t, out, "mode distance;")
	assert.Contains(t, out, `file "sphere.eMesh";`)
	assert.Contains(t, out, "level ( 5 6 );")
	assert.Contains(t, out, "levels ( ( ( 0.1 4 ) ) ( ( 0.2 3 ) ) );")
	assert.Contains(t, out, `#include "meshQualityDict"`)
	assert.NotContains(t, out, `#include "meshQualityDict";`)
	assert.Contains(t, out, "geometry\n{\n    sphere.stl triSurfaceMesh;\n}")
}

func TestWriteDeterministic(t *testing.T) {
	d := New()
	d.Set("snap", true)
	d.SubDict("snapControls").Set("nSolveIter", 30)

	var a, b bytes.Buffer
	require.NoError(t, Write(&a, DefaultHeader("system", "x"), d))
	require.NoError(t, Write(&b, DefaultHeader("system", "x"), d))
	assert.Equal(t, a.String(), b.String())
}

func TestWriteInlineDictInList(t *testing.T) {
	d := New()
	d.Set("features", List{func() *Dict {
		f := New()
		f.Set("file", String("sphere.eMesh"))
		f.Set("level", 6)
		return f
	}()})
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, DefaultHeader("system", "x"), d))
	assert.Contains(t, buf.String(), `features ( { file "sphere.eMesh"; level 6; } );`)
}

func TestWriteRejectsUnsupportedType(t *testing.T) {
	d := New()
	d.Set("bad", struct{}{})
	var buf bytes.Buffer
	err := Write(&buf, DefaultHeader("system", "x"), d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}
