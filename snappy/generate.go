package snappy

// GenerateMesh runs the full meshing sequence: extract surface
// features, write the mesh-quality dictionary, write
// snappyHexMeshDict, then run snappyHexMesh against the case. The
// steps run strictly in order with no rollback; the first failure
// propagates and earlier outputs are left in place.
//
// A base block mesh must already exist in the case directory.
func (p *ParameterSet) GenerateMesh() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := p.Geom.ExtractFeatures(); err != nil {
		return err
	}
	if err := p.Geom.MeshSettings.WriteSettings(p.Case); err != nil {
		return err
	}
	if err := p.WriteDict(); err != nil {
		return err
	}
	return p.Case.RunTool("snappyHexMesh")
}
