package geometry

import (
	"github.com/lwc24/gofoam/foamcase"
	"github.com/lwc24/gofoam/foamdict"
)

// MeshQualitySettings holds the mesh-quality thresholds snappyHexMesh
// reads from system/meshQualityDict. Fields may be overwritten before
// WriteSettings; no range validation is applied.
type MeshQualitySettings struct {
	MaxNonOrtho         int
	MaxBoundarySkewness float64
	MaxInternalSkewness float64
	MaxConcave          float64
	MinVol              float64
	MinTetQuality       float64
	MinArea             float64
	MinTwist            float64
	MinDeterminant      float64
	MinFaceWeight       float64
	MinVolRatio         float64
	MinTriangleTwist    float64
	NSmoothScale        int
	ErrorReduction      float64
}

// NewMeshQualitySettings returns the stock quality thresholds.
func NewMeshQualitySettings() *MeshQualitySettings {
	return &MeshQualitySettings{
		MaxNonOrtho:         65,
		MaxBoundarySkewness: 20,
		MaxInternalSkewness: 4,
		MaxConcave:          80,
		MinVol:              1e-13,
		MinTetQuality:       1e-15,
		MinArea:             -1,
		MinTwist:            0.02,
		MinDeterminant:      0.001,
		MinFaceWeight:       0.02,
		MinVolRatio:         0.01,
		MinTriangleTwist:    -1,
		NSmoothScale:        4,
		ErrorReduction:      0.75,
	}
}

// Dict renders the settings as a dictionary tree.
func (m *MeshQualitySettings) Dict() *foamdict.Dict {
	d := foamdict.New()
	d.Set("maxNonOrtho", m.MaxNonOrtho)
	d.Set("maxBoundarySkewness", m.MaxBoundarySkewness)
	d.Set("maxInternalSkewness", m.MaxInternalSkewness)
	d.Set("maxConcave", m.MaxConcave)
	d.Set("minVol", m.MinVol)
	d.Set("minTetQuality", m.MinTetQuality)
	d.Set("minArea", m.MinArea)
	d.Set("minTwist", m.MinTwist)
	d.Set("minDeterminant", m.MinDeterminant)
	d.Set("minFaceWeight", m.MinFaceWeight)
	d.Set("minVolRatio", m.MinVolRatio)
	d.Set("minTriangleTwist", m.MinTriangleTwist)
	d.Set("nSmoothScale", m.NSmoothScale)
	d.Set("errorReduction", m.ErrorReduction)
	return d
}

// WriteSettings persists system/meshQualityDict for the case.
func (m *MeshQualitySettings) WriteSettings(c *foamcase.Case) error {
	return c.MutableDataFile(foamcase.MeshQualityDict,
		func(d *foamdict.Dict) error {
			d.Update(m.Dict())
			return nil
		})
}
