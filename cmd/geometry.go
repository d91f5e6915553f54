/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/bcaddy/athena/InputParameters"
	"github.com/bcaddy/athena/coords"
	"github.com/bcaddy/athena/mesh"
	"github.com/bcaddy/athena/types"
)

type GeometryModel struct {
	InputFile string
	Profile   bool
}

// GeometryCmd represents the geometry command
var GeometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Builds a mesh block and its coordinate geometry, then reports the derived metric quantities",
	Long: `Builds a mesh block and its coordinate geometry, then reports the derived metric quantities
(cell centers, face areas, cell volumes) for the coordinate system named in the input file`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("geometry called")
		gm := &GeometryModel{}
		if gm.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		gm.Profile, _ = cmd.Flags().GetBool("profile")
		bp := processGeometryInput(gm)
		RunGeometry(gm, bp)
	},
}

func init() {
	rootCmd.AddCommand(GeometryCmd)
	GeometryCmd.Flags().StringP("inputFile", "I", "", "YAML input file with block and coordinate parameters")
	GeometryCmd.Flags().Bool("profile", false, "write a CPU profile of the geometry sweep")
}

func processGeometryInput(gm *GeometryModel) (bp *InputParameters.BlockParameters) {
	var (
		err error
	)
	if len(gm.InputFile) == 0 {
		err := fmt.Errorf("must supply an input file (-I, --inputFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Sedov Blast Grid"
CoordinateSystem: spherical # Can be cartesian, cylindrical or spherical
NGhost: 2
Nx1: 64
Nx2: 32
Nx3: 1
X1Min: 0.1
X1Max: 1.
X2Min: 0.
X2Max: 3.14159265358979
X3Min: 0.
X3Max: 6.28318530717959
Gamma: 1.6666666667
CFL: 0.3
FinalTime: 1.
########################################
`
		fmt.Printf("Example File Contents:%s", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(gm.InputFile); err != nil {
		fmt.Printf("unable to read input file: %s\n", err.Error())
		os.Exit(1)
	}
	bp = &InputParameters.BlockParameters{}
	if err = bp.Parse(data); err != nil {
		fmt.Printf("unable to parse input file: %s\n", err.Error())
		os.Exit(1)
	}
	bp.Print()
	return
}

func RunGeometry(gm *GeometryModel, bp *InputParameters.BlockParameters) {
	if gm.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	sys, err := types.NewCoordSys(bp.CoordinateSystem)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	mb, err := mesh.NewBlock(mesh.BlockSize{
		Nx1: bp.Nx1, X1Min: bp.X1Min, X1Max: bp.X1Max,
		Nx2: bp.Nx2, X2Min: bp.X2Min, X2Max: bp.X2Max,
		Nx3: bp.Nx3, X3Min: bp.X3Min, X3Max: bp.X3Max,
	}, bp.NGhost)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	c, err := coords.NewCoordinates(sys, mb)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	gs := SummarizeGeometry(c)
	fmt.Printf("%s Geometry\n", c.System())
	fmt.Printf("Interior Cells: %d x %d x %d\n",
		mb.Ie-mb.Is+1, mb.Je-mb.Js+1, mb.Ke-mb.Ks+1)
	fmt.Printf("Total Interior Volume = %10.6f\n", gs.TotalVolume)
	fmt.Printf("Cell Volume Range     = [%10.6f, %10.6f]\n", gs.MinVolume, gs.MaxVolume)
	fmt.Printf("X1 Face Area Range    = [%10.6f, %10.6f]\n", gs.MinFaceArea1, gs.MaxFaceArea1)
}

// GeometrySummary aggregates one full sweep of the per-row geometry
// queries over a block's interior.
type GeometrySummary struct {
	TotalVolume                float64
	MinVolume, MaxVolume       float64
	MinFaceArea1, MaxFaceArea1 float64
}

// SummarizeGeometry sweeps cell volumes and x1 face areas over the
// interior, reusing the geometry's scratch buffers row by row the way the
// flux integrator does.
func SummarizeGeometry(c coords.Coordinates) (gs GeometrySummary) {
	var (
		mb      = c.Block()
		volumes = c.ScratchVolume()
		areas   = c.ScratchArea()
	)
	gs.MinVolume, gs.MinFaceArea1 = math.MaxFloat64, math.MaxFloat64
	for k := mb.Ks; k <= mb.Ke; k++ {
		for j := mb.Js; j <= mb.Je; j++ {
			c.CellVolume(k, j, mb.Is, mb.Ie, volumes)
			for i := mb.Is; i <= mb.Ie; i++ {
				v := volumes.AtVec(i)
				gs.TotalVolume += v
				gs.MinVolume = math.Min(gs.MinVolume, v)
				gs.MaxVolume = math.Max(gs.MaxVolume, v)
			}
			c.FaceArea1(k, j, mb.Is, mb.Ie+1, areas)
			for i := mb.Is; i <= mb.Ie+1; i++ {
				a := areas.AtVec(i)
				gs.MinFaceArea1 = math.Min(gs.MinFaceArea1, a)
				gs.MaxFaceArea1 = math.Max(gs.MaxFaceArea1, a)
			}
		}
	}
	return
}
