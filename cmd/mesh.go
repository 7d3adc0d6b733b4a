/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/lwc24/gofoam/foamcase"
	"github.com/lwc24/gofoam/foamdict"
	"github.com/lwc24/gofoam/geometry"
	"github.com/lwc24/gofoam/snappy"
)

type ModelMesh struct {
	CaseDir           string
	GeometryFile      string
	GeometryName      string
	SurfaceRefinement int
	SettingsFile      string
	RunBlockMesh      bool
}

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Generate a snappyHexMesh configuration and run the mesher",
	Long: `Sets up an OpenFOAM case for snappyHexMesh: installs the surface,
extracts feature edges, writes the meshing dictionaries and runs the
external tools. A base block mesh must exist in the case (or pass
--blockMesh to run blockMesh first).`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("mesh called")
		mm := &ModelMesh{}
		if mm.CaseDir, err = cmd.Flags().GetString("case"); err != nil {
			panic(err)
		}
		if mm.GeometryFile, err = cmd.Flags().GetString("geometryFile"); err != nil {
			panic(err)
		}
		mm.GeometryName, _ = cmd.Flags().GetString("name")
		mm.SurfaceRefinement, _ = cmd.Flags().GetInt("surfaceRefinement")
		mm.SettingsFile, _ = cmd.Flags().GetString("settingsFile")
		mm.RunBlockMesh, _ = cmd.Flags().GetBool("blockMesh")
		processMeshInput(mm)
		if err = RunMesh(mm); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processMeshInput(mm *ModelMesh) {
	var (
		willExit bool
	)
	if len(mm.CaseDir) == 0 {
		err := fmt.Errorf("must supply a case directory (-c, --case)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if len(mm.GeometryFile) == 0 {
		err := fmt.Errorf("must supply a surface file (-F, --geometryFile) in STL format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
# optional settings file (-I, --settingsFile)
nSurfaceLayers: 3
maxGlobalCells: 500000
distanceRefinements: [0.05, 0.1]
distanceLevels: [5, 4]
########################################
`
		fmt.Printf("Example Settings File:%s\n", exampleFile)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
}

func RunMesh(mm *ModelMesh) error {
	c, err := foamcase.New(mm.CaseDir)
	if err != nil {
		return err
	}
	// The OpenFOAM utilities refuse to run without a controlDict, so a
	// token one is written up front.
	if err = writeTokenControlDict(c); err != nil {
		return err
	}
	geom, err := geometry.New(geometry.FormatSTL, mm.GeometryFile, mm.GeometryName, c)
	if err != nil {
		return err
	}
	p := snappy.NewParameterSet(geom, mm.SurfaceRefinement, c)
	if len(mm.SettingsFile) != 0 {
		if err = loadSettings(p, mm.SettingsFile); err != nil {
			return err
		}
	}
	p.Print()
	if mm.RunBlockMesh {
		if err = c.RunTool("blockMesh"); err != nil {
			return err
		}
	}
	return p.GenerateMesh()
}

// loadSettings overlays a YAML settings file onto the parameter set.
func loadSettings(p *snappy.ParameterSet, path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return p.Parse(data)
}

func writeTokenControlDict(c *foamcase.Case) error {
	return c.MutableDataFile(foamcase.ControlDict, func(d *foamdict.Dict) error {
		d.Set("application", "icoFoam")
		d.Set("startFrom", "startTime")
		d.Set("startTime", 0)
		d.Set("stopAt", "endTime")
		d.Set("endTime", 0.5)
		d.Set("deltaT", 0.005)
		d.Set("writeControl", "timeStep")
		d.Set("writeInterval", 20)
		d.Set("purgeWrite", 0)
		d.Set("writeFormat", "ascii")
		d.Set("writePrecision", 6)
		d.Set("writeCompression", "off")
		d.Set("timeFormat", "general")
		d.Set("timePrecision", 6)
		d.Set("runTimeModifiable", true)
		return nil
	})
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().StringP("case", "c", "", "case directory to create or reuse")
	MeshCmd.Flags().StringP("geometryFile", "F", "", "surface file to mesh, in STL format")
	MeshCmd.Flags().StringP("name", "n", "geometry", "name for the surface inside the case")
	MeshCmd.Flags().IntP("surfaceRefinement", "r", 6, "refinement level along extracted feature edges")
	MeshCmd.Flags().StringP("settingsFile", "I", "", "YAML file overriding meshing controls like:\n\t- nSurfaceLayers\n\t- maxGlobalCells")
	MeshCmd.Flags().BoolP("blockMesh", "b", false, "run blockMesh before snappyHexMesh")
}
