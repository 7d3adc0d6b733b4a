package geometry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lwc24/gofoam/foamcase"
	"github.com/lwc24/gofoam/foamdict"
)

// Format identifies the on-disk surface format.
type Format int

const (
	FormatSTL Format = iota
)

// Geometry ties a named surface file to the case that meshes it. The
// surface is installed under constant/triSurface/<name>.stl and the
// meshing dictionaries reference it by Filename.
type Geometry struct {
	Format Format
	Name   string
	Case   *foamcase.Case

	// IncludedAngle controls feature-edge extraction: edges whose
	// adjacent faces meet at less than this angle (degrees) are kept.
	IncludedAngle float64

	MeshSettings *MeshQualitySettings
}

// New installs the surface at srcPath into the case under the given
// name and returns the Geometry handle.
func New(format Format, srcPath, name string, c *foamcase.Case) (*Geometry, error) {
	g := &Geometry{
		Format:        format,
		Name:          name,
		Case:          c,
		IncludedAngle: 150,
		MeshSettings:  NewMeshQualitySettings(),
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("reading surface %s: %w", srcPath, err)
	}
	if err := os.WriteFile(g.SurfacePath(), data, 0o644); err != nil {
		return nil, fmt.Errorf("installing surface: %w", err)
	}
	return g, nil
}

// Filename is the name the meshing dictionaries use for this surface.
func (g *Geometry) Filename() string {
	return g.Name + ".stl"
}

// SurfacePath is the installed location of the surface file.
func (g *Geometry) SurfacePath() string {
	return filepath.Join(g.Case.TriSurfaceDir(), g.Filename())
}

// WriteFeatureExtractDict writes system/surfaceFeatureExtractDict for
// this surface, using the stock extract-from-surface method.
func (g *Geometry) WriteFeatureExtractDict() error {
	return g.Case.MutableDataFile(foamcase.SurfaceFeatureExtractDict,
		func(d *foamdict.Dict) error {
			surf := d.SubDict(g.Filename())
			surf.Set("extractionMethod", "extractFromSurface")
			surf.SubDict("extractFromSurfaceCoeffs").
				Set("includedAngle", g.IncludedAngle)
			surf.Set("writeObj", "yes")
			return nil
		})
}

// ExtractFeatures writes the feature-extraction dictionary and runs
// surfaceFeatureExtract, producing constant/triSurface/<name>.eMesh.
// Tool failures propagate untranslated.
func (g *Geometry) ExtractFeatures() error {
	if err := g.WriteFeatureExtractDict(); err != nil {
		return err
	}
	return g.Case.RunTool("surfaceFeatureExtract")
}
