// Package foamcase manages an OpenFOAM case directory: the standard
// system/constant/0 layout, scoped write access to the dictionary
// files this toolchain owns, and blocking invocation of the external
// OpenFOAM binaries from the case root.
package foamcase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lwc24/gofoam/foamdict"
)

// FileName names a dictionary file owned by this module.
type FileName string

const (
	ControlDict               FileName = "controlDict"
	BlockMeshDict             FileName = "blockMeshDict"
	SnappyHexMeshDict         FileName = "snappyHexMeshDict"
	MeshQualityDict           FileName = "meshQualityDict"
	SurfaceFeatureExtractDict FileName = "surfaceFeatureExtractDict"
)

// fileLocations maps each dictionary to its directory under the case
// root. Everything this module writes lives in system/.
var fileLocations = map[FileName]string{
	ControlDict:               "system",
	BlockMeshDict:             "system",
	SnappyHexMeshDict:         "system",
	MeshQualityDict:           "system",
	SurfaceFeatureExtractDict: "system",
}

// Case is a handle on one case directory. Cases are not safe for
// concurrent mesh-generation runs: two requests against the same root
// would race on the same dictionary files.
type Case struct {
	Root string
}

// New creates the case directory and its standard subdirectories,
// returning a handle on it. An existing directory is reused.
func New(root string) (*Case, error) {
	c := &Case{Root: root}
	for _, dir := range []string{
		root,
		c.SystemDir(),
		c.ConstantDir(),
		c.TriSurfaceDir(),
		filepath.Join(root, "0"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating case directory %s: %w", dir, err)
		}
	}
	return c, nil
}

func (c *Case) SystemDir() string {
	return filepath.Join(c.Root, "system")
}

func (c *Case) ConstantDir() string {
	return filepath.Join(c.Root, "constant")
}

func (c *Case) TriSurfaceDir() string {
	return filepath.Join(c.Root, "constant", "triSurface")
}

// FilePath returns the on-disk path of a named dictionary file.
func (c *Case) FilePath(name FileName) string {
	loc, ok := fileLocations[name]
	if !ok {
		loc = "system"
	}
	return filepath.Join(c.Root, loc, string(name))
}

// MutableDataFile gives update scoped write access to the named
// dictionary file. The file handle is acquired up front and released
// on every path; the tree update applies to is fresh, and the result
// is written out when update returns nil. There is no atomicity
// beyond the single write: a crash mid-write leaves a partial file.
func (c *Case) MutableDataFile(name FileName, update func(*foamdict.Dict) error) error {
	path := c.FilePath(name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	d := foamdict.New()
	if err := update(d); err != nil {
		return fmt.Errorf("updating %s: %w", name, err)
	}
	loc, ok := fileLocations[name]
	if !ok {
		loc = "system"
	}
	hdr := foamdict.DefaultHeader(loc, string(name))
	if err := foamdict.Write(f, hdr, d); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
