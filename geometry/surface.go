// Package geometry wraps a triangle-mesh library with the surface
// operations the meshing workflow needs: STL load/save, bounds,
// geometric centre, translate, scale and recentre. It also provides
// the Geometry case collaborator (surface installation and feature
// extraction) and the mesh-quality settings dictionary.
package geometry

import (
	"fmt"
	"os"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"
)

// Surface is a triangulated surface held in memory.
type Surface struct {
	mesh *model3d.Mesh
}

// NewSurface wraps a set of triangles.
func NewSurface(triangles []*model3d.Triangle) *Surface {
	return &Surface{mesh: model3d.NewMeshTriangles(triangles)}
}

// LoadSTL reads a (binary or ascii) STL file.
func LoadSTL(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	tris, err := model3d.ReadSTL(f)
	if err != nil {
		return nil, fmt.Errorf("reading STL %s: %w", path, err)
	}
	return &Surface{mesh: model3d.NewMeshTriangles(tris)}, nil
}

// SaveSTL writes the surface as binary STL.
func (s *Surface) SaveSTL(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := model3d.WriteSTL(f, s.mesh.TriangleSlice()); err != nil {
		return fmt.Errorf("writing STL %s: %w", path, err)
	}
	return nil
}

func (s *Surface) TriangleCount() int {
	return len(s.mesh.TriangleSlice())
}

// Bounds returns the axis-aligned bounding box of the surface.
func (s *Surface) Bounds() (min, max r3.Vec) {
	if s.TriangleCount() == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	return toVec(s.mesh.Min()), toVec(s.mesh.Max())
}

// Centre returns the mean of all triangle vertices. Vertices shared by
// several triangles count once per triangle, matching the usual
// surface-mesh convention for a geometric centre.
func (s *Surface) Centre() r3.Vec {
	tris := s.mesh.TriangleSlice()
	if len(tris) == 0 {
		return r3.Vec{}
	}
	var sum model3d.Coord3D
	for _, t := range tris {
		for _, c := range t {
			sum = sum.Add(c)
		}
	}
	return toVec(sum.Scale(1 / float64(3*len(tris))))
}

// Translate shifts every vertex by v.
func (s *Surface) Translate(v r3.Vec) {
	d := toCoord(v)
	s.mesh = s.mesh.MapCoords(func(c model3d.Coord3D) model3d.Coord3D {
		return c.Add(d)
	})
}

// Scale scales each axis independently about the origin.
func (s *Surface) Scale(f r3.Vec) {
	m := toCoord(f)
	s.mesh = s.mesh.MapCoords(func(c model3d.Coord3D) model3d.Coord3D {
		return c.Mul(m)
	})
}

// ScaleUniform scales all axes about the origin.
func (s *Surface) ScaleUniform(f float64) {
	s.mesh = s.mesh.MapCoords(func(c model3d.Coord3D) model3d.Coord3D {
		return c.Scale(f)
	})
}

// Recentre translates the surface so its geometric centre sits at the
// origin.
func (s *Surface) Recentre() {
	c := s.Centre()
	s.Translate(r3.Vec{X: -c.X, Y: -c.Y, Z: -c.Z})
}

// Copy returns an independent copy of the surface.
func (s *Surface) Copy() *Surface {
	src := s.mesh.TriangleSlice()
	tris := make([]*model3d.Triangle, len(src))
	for i, t := range src {
		dup := *t
		tris[i] = &dup
	}
	return &Surface{mesh: model3d.NewMeshTriangles(tris)}
}

func toVec(c model3d.Coord3D) r3.Vec {
	return r3.Vec{X: c.X, Y: c.Y, Z: c.Z}
}

func toCoord(v r3.Vec) model3d.Coord3D {
	return model3d.Coord3D{X: v.X, Y: v.Y, Z: v.Z}
}
