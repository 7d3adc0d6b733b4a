package snappy

import (
	"github.com/lwc24/gofoam/foamcase"
	"github.com/lwc24/gofoam/foamdict"
)

// Dict renders the snappyHexMeshDict tree from the current field
// values. The render is a pure transform: it has no side effects and
// the same parameter set always produces a structurally identical
// tree. It assumes a validated set (see Validate); the distance
// refinement sequences are paired by index.
func (p *ParameterSet) Dict() *foamdict.Dict {
	d := foamdict.New()
	d.Set("castellatedMesh", p.Castellate)
	d.Set("snap", p.Snap)
	d.Set("addLayers", p.AddLayers)

	d.SubDict("geometry").
		SubDict(p.Geom.Filename()).
		Set("type", "triSurfaceMesh")

	cast := d.SubDict("castellatedMeshControls")
	cast.Set("maxLocalCells", p.MaxLocalCells)
	cast.Set("maxGlobalCells", p.MaxGlobalCells)
	cast.Set("minRefinementCells", p.MinRefinementCells)
	cast.Set("maxLoadUnbalance", p.MaxLoadUnbalance)
	cast.Set("nCellsBetweenLevels", p.NCellsBetweenLevels)
	feature := foamdict.New()
	feature.Set("file", foamdict.String(p.Geom.Name+".eMesh"))
	feature.Set("level", p.SurfaceRefinement)
	cast.Set("features", foamdict.List{feature})
	cast.SubDict("refinementSurfaces").
		SubDict(p.Geom.Filename()).
		Set("level", foamdict.List{p.RefinementSurfaceMin, p.RefinementSurfaceMax})
	cast.Set("resolveFeatureAngle", p.ResolveFeatureAngle)
	region := cast.SubDict("refinementRegions").SubDict(p.Geom.Filename())
	region.Set("mode", "distance")
	levels := make(foamdict.List, len(p.DistanceRefinements))
	for i, dist := range p.DistanceRefinements {
		levels[i] = foamdict.List{foamdict.List{dist, p.DistanceLevels[i]}}
	}
	region.Set("levels", levels)
	cast.Set("locationInMesh",
		foamdict.List{p.LocationToKeep[0], p.LocationToKeep[1], p.LocationToKeep[2]})
	cast.Set("allowFreeStandingZoneFaces", p.AllowFreeStandingFaces)

	snap := d.SubDict("snapControls")
	snap.Set("nSmoothPatch", p.NSmoothPatch)
	snap.Set("tolerance", p.SnapTolerance)
	snap.Set("nRelaxIter", p.NRelaxIter)
	snap.Set("nSolveIter", p.NSolveIter)
	snap.Set("nFeatureSnapIter", p.NFeatureSnapIter)
	snap.Set("implicitFeatureSnap", p.ImplicitFeatureSnap)
	snap.Set("explicitFeatureSnap", p.ExplicitFeatureSnap)
	snap.Set("multiRegionFeatureSnap", p.MultiRegionFeatureSnap)

	layers := d.SubDict("addLayersControls")
	layers.Set("relativeSizes", p.RelativeSizes)
	layers.SubDict("layers").
		SubDict(p.Geom.Filename()).
		Set("nSurfaceLayers", p.NSurfaceLayers)
	layers.Set("expansionRatio", p.ExpansionRatio)
	layers.Set("finalLayerThickness", p.FinalLayerThickness)
	layers.Set("minThickness", p.MinThickness)
	layers.Set("nGrow", p.NGrow)
	layers.Set("featureAngle", p.FeatureAngle)
	layers.Set("slipFeatureAngle", p.SlipFeatureAngle)
	layers.Set("nRelaxIter", p.NRelaxIter)
	layers.Set("nSmoothSurfaceNormals", p.NSmoothSurfaceNormals)
	layers.Set("nSmoothNormals", p.NSmoothNormals)
	layers.Set("nSmoothThickness", p.NSmoothThickness)
	layers.Set("maxFaceThicknessRatio", p.MaxFaceThicknessRatio)
	layers.Set("maxThicknessToMedialRatio", p.MaxThicknessToMedialRatio)
	layers.Set("minMedianAxisAngle", p.MinMedianAxisAngle)
	layers.Set("nBufferCellsNoExtrude", p.NBufferCellsNoExtrude)
	layers.Set("nLayerIter", p.NLayerIter)

	d.SubDict("meshQualityControls").
		Set("#include", foamdict.String("meshQualityDict"))

	d.Set("mergeTolerance", p.MergeTolerance)
	return d
}

// WriteDict validates the parameter set, renders the dictionary and
// persists it as system/snappyHexMeshDict in the case.
func (p *ParameterSet) WriteDict() error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.Case.MutableDataFile(foamcase.SnappyHexMeshDict,
		func(d *foamdict.Dict) error {
			d.Update(p.Dict())
			return nil
		})
}
