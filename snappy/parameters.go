// Package snappy builds and runs snappyHexMesh configurations. A
// ParameterSet carries every meshing control with its default value,
// renders the snappyHexMeshDict tree, and drives the four-step
// mesh-generation sequence against a case.
package snappy

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/lwc24/gofoam/foamcase"
	"github.com/lwc24/gofoam/geometry"
)

// ParameterSet holds the snappyHexMesh controls. All fields may be
// overwritten after construction, either directly or from a YAML
// settings file via Parse; they are read only when the dictionary is
// rendered.
type ParameterSet struct {
	Geom *geometry.Geometry `yaml:"-"`
	Case *foamcase.Case     `yaml:"-"`

	// SurfaceRefinement is the refinement level applied along the
	// extracted feature edges of the surface.
	SurfaceRefinement int `yaml:"surfaceRefinement"`

	// Mesh-generation phases.
	Castellate bool `yaml:"castellate"`
	Snap       bool `yaml:"snap"`
	AddLayers  bool `yaml:"addLayers"`

	// Castellation controls.
	MaxLocalCells          int        `yaml:"maxLocalCells"`
	MaxGlobalCells         int        `yaml:"maxGlobalCells"`
	MinRefinementCells     int        `yaml:"minRefinementCells"`
	MaxLoadUnbalance       float64    `yaml:"maxLoadUnbalance"`
	NCellsBetweenLevels    int        `yaml:"nCellsBetweenLevels"`
	EdgeRefinementLevel    int        `yaml:"edgeRefinementLevel"`
	RefinementSurfaceMin   int        `yaml:"refinementSurfaceMin"`
	RefinementSurfaceMax   int        `yaml:"refinementSurfaceMax"`
	ResolveFeatureAngle    float64    `yaml:"resolveFeatureAngle"`
	DistanceRefinements    []float64  `yaml:"distanceRefinements"`
	DistanceLevels         []int      `yaml:"distanceLevels"`
	LocationToKeep         [3]float64 `yaml:"locationToKeep"`
	AllowFreeStandingFaces bool       `yaml:"allowFreeStandingFaces"`

	// Snapping controls. NRelaxIter is shared between snapControls
	// and addLayersControls, as in the reference tooling.
	NSmoothPatch           int     `yaml:"nSmoothPatch"`
	SnapTolerance          float64 `yaml:"snapTolerance"`
	NSolveIter             int     `yaml:"nSolveIter"`
	NRelaxIter             int     `yaml:"nRelaxIter"`
	NFeatureSnapIter       int     `yaml:"nFeatureSnapIter"`
	ImplicitFeatureSnap    bool    `yaml:"implicitFeatureSnap"`
	ExplicitFeatureSnap    bool    `yaml:"explicitFeatureSnap"`
	MultiRegionFeatureSnap bool    `yaml:"multiRegionFeatureSnap"`

	// Layer-addition controls.
	RelativeSizes             bool    `yaml:"relativeSizes"`
	NSurfaceLayers            int     `yaml:"nSurfaceLayers"`
	ExpansionRatio            float64 `yaml:"expansionRatio"`
	FinalLayerThickness       float64 `yaml:"finalLayerThickness"`
	MinThickness              float64 `yaml:"minThickness"`
	NGrow                     int     `yaml:"nGrow"`
	FeatureAngle              float64 `yaml:"featureAngle"`
	SlipFeatureAngle          float64 `yaml:"slipFeatureAngle"`
	NSmoothSurfaceNormals     int     `yaml:"nSmoothSurfaceNormals"`
	NSmoothNormals            int     `yaml:"nSmoothNormals"`
	NSmoothThickness          int     `yaml:"nSmoothThickness"`
	MaxFaceThicknessRatio     float64 `yaml:"maxFaceThicknessRatio"`
	MaxThicknessToMedialRatio float64 `yaml:"maxThicknessToMedialRatio"`
	MinMedianAxisAngle        float64 `yaml:"minMedianAxisAngle"`
	NBufferCellsNoExtrude     int     `yaml:"nBufferCellsNoExtrude"`
	NLayerIter                int     `yaml:"nLayerIter"`

	MergeTolerance float64 `yaml:"mergeTolerance"`
}

// NewParameterSet returns a parameter set with the default meshing
// controls, tied to the geometry it refines and the case it runs in.
func NewParameterSet(geom *geometry.Geometry, surfaceRefinement int, c *foamcase.Case) *ParameterSet {
	return &ParameterSet{
		Geom:              geom,
		Case:              c,
		SurfaceRefinement: surfaceRefinement,

		Castellate: true,
		Snap:       true,
		AddLayers:  true,

		MaxLocalCells:          1000000,
		MaxGlobalCells:         200000,
		MinRefinementCells:     200,
		MaxLoadUnbalance:       0.1,
		NCellsBetweenLevels:    3,
		EdgeRefinementLevel:    6,
		RefinementSurfaceMin:   5,
		RefinementSurfaceMax:   6,
		ResolveFeatureAngle:    30,
		DistanceRefinements:    []float64{0.1, 0.2},
		DistanceLevels:         []int{4, 3},
		LocationToKeep:         [3]float64{0.001, 0.001, 0.0015},
		AllowFreeStandingFaces: true,

		NSmoothPatch:           3,
		SnapTolerance:          2,
		NSolveIter:             30,
		NRelaxIter:             3,
		NFeatureSnapIter:       10,
		ImplicitFeatureSnap:    false,
		ExplicitFeatureSnap:    true,
		MultiRegionFeatureSnap: false,

		RelativeSizes:             true,
		NSurfaceLayers:            1,
		ExpansionRatio:            1,
		FinalLayerThickness:       0.1,
		MinThickness:              0.1,
		NGrow:                     0,
		FeatureAngle:              60,
		SlipFeatureAngle:          30,
		NSmoothSurfaceNormals:     1,
		NSmoothNormals:            1,
		NSmoothThickness:          10,
		MaxFaceThicknessRatio:     0.5,
		MaxThicknessToMedialRatio: 0.3,
		MinMedianAxisAngle:        90,
		NBufferCellsNoExtrude:     0,
		NLayerIter:                50,

		MergeTolerance: 1e-6,
	}
}

// Parse overlays settings from a YAML document onto the current
// values. Keys absent from the document keep their defaults.
func (p *ParameterSet) Parse(data []byte) error {
	return yaml.Unmarshal(data, p)
}

// Validate checks that the distance refinement distances and levels
// pair up one to one.
func (p *ParameterSet) Validate() error {
	if len(p.DistanceRefinements) != len(p.DistanceLevels) {
		return fmt.Errorf("distanceRefinements has %d entries but distanceLevels has %d",
			len(p.DistanceRefinements), len(p.DistanceLevels))
	}
	return nil
}

// Print dumps the effective meshing controls.
func (p *ParameterSet) Print() {
	fmt.Printf("\"%s\"\t\t= geometry\n", p.Geom.Filename())
	fmt.Printf("[%d]\t\t\t= SurfaceRefinement\n", p.SurfaceRefinement)
	fmt.Printf("[%d %d]\t\t\t= refinementSurfaces level\n",
		p.RefinementSurfaceMin, p.RefinementSurfaceMax)
	fmt.Printf("%v\t\t= distanceRefinements\n", p.DistanceRefinements)
	fmt.Printf("%v\t\t\t= distanceLevels\n", p.DistanceLevels)
	fmt.Printf("%v\t= locationToKeep\n", p.LocationToKeep)
	fmt.Printf("castellate=%v snap=%v addLayers=%v\n",
		p.Castellate, p.Snap, p.AddLayers)
	fmt.Printf("%8.5g\t\t= mergeTolerance\n", p.MergeTolerance)
}
