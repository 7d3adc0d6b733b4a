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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lwc24/gofoam/geometry"
)

type ModelTransform struct {
	InFile    string
	OutFile   string
	Recentre  bool
	Scale     []float64
	Translate []float64
	Profile   bool
}

// TransformCmd represents the transform command
var TransformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Recentre, scale or translate an STL surface",
	Long: `Applies simple transforms to a triangulated surface: recentre on the
geometric centre, scale (uniform or per axis) and translate, in that
order. Bounds are printed before and after.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mt := &ModelTransform{}
		if mt.InFile, err = cmd.Flags().GetString("inFile"); err != nil {
			panic(err)
		}
		mt.OutFile, _ = cmd.Flags().GetString("outFile")
		mt.Recentre, _ = cmd.Flags().GetBool("recentre")
		mt.Scale, _ = cmd.Flags().GetFloat64Slice("scale")
		mt.Translate, _ = cmd.Flags().GetFloat64Slice("translate")
		mt.Profile, _ = cmd.Flags().GetBool("profile")
		if len(mt.InFile) == 0 {
			fmt.Printf("error: must supply an input surface (-i, --inFile) in STL format\n")
			os.Exit(1)
		}
		if len(mt.OutFile) == 0 {
			mt.OutFile = mt.InFile
		}
		if err = RunTransform(mt); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func RunTransform(mt *ModelTransform) error {
	if mt.Profile {
		defer profile.Start().Stop()
	}
	s, err := geometry.LoadSTL(mt.InFile)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d triangles from %s\n", s.TriangleCount(), mt.InFile)
	printBounds(s)

	if mt.Recentre {
		s.Recentre()
	}
	switch len(mt.Scale) {
	case 0:
	case 1:
		s.ScaleUniform(mt.Scale[0])
	case 3:
		s.Scale(r3.Vec{X: mt.Scale[0], Y: mt.Scale[1], Z: mt.Scale[2]})
	default:
		return fmt.Errorf("scale takes 1 or 3 values, got %d", len(mt.Scale))
	}
	switch len(mt.Translate) {
	case 0:
	case 3:
		s.Translate(r3.Vec{X: mt.Translate[0], Y: mt.Translate[1], Z: mt.Translate[2]})
	default:
		return fmt.Errorf("translate takes 3 values, got %d", len(mt.Translate))
	}

	printBounds(s)
	return s.SaveSTL(mt.OutFile)
}

func printBounds(s *geometry.Surface) {
	min, max := s.Bounds()
	c := s.Centre()
	fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
		min.X, max.X, min.Y, max.Y, min.Z, max.Z)
	fmt.Printf("Centre = %5.3f, %5.3f, %5.3f\n", c.X, c.Y, c.Z)
}

func init() {
	rootCmd.AddCommand(TransformCmd)
	TransformCmd.Flags().StringP("inFile", "i", "", "surface file to read, in STL format")
	TransformCmd.Flags().StringP("outFile", "o", "", "output file (defaults to overwriting the input)")
	TransformCmd.Flags().Bool("recentre", false, "move the geometric centre to the origin")
	TransformCmd.Flags().Float64Slice("scale", nil, "scale factor: one value for uniform, three for per-axis")
	TransformCmd.Flags().Float64Slice("translate", nil, "translation vector: three values")
	TransformCmd.Flags().Bool("profile", false, "write a CPU profile for the transform")
}
