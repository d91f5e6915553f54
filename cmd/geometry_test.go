package cmd

import (
	"math"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/bcaddy/athena/InputParameters"
	"github.com/bcaddy/athena/coords"
	"github.com/bcaddy/athena/mesh"
	"github.com/bcaddy/athena/types"
)

func TestRunGeometry(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
CoordinateSystem: cylindrical
Nx1: 8
Nx2: 4
Nx3: 2
X1Min: 1.
X1Max: 3.
X2Min: 0.
X2Max: 6.28318530717959
X3Min: 0.
X3Max: 2.
Gamma: 1.4
CFL: 0.5
FinalTime: 1.
`)
	var input InputParameters.BlockParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	input.Print()
	assert.Equal(t, input.CoordinateSystem, "cylindrical")
	assert.Equal(t, input.NGhost, 2) // defaulted
	assert.Equal(t, input.Gamma, 1.4)

	sys, err := types.NewCoordSys(input.CoordinateSystem)
	if err != nil {
		panic(err)
	}
	mb, err := mesh.NewBlock(mesh.BlockSize{
		Nx1: input.Nx1, X1Min: input.X1Min, X1Max: input.X1Max,
		Nx2: input.Nx2, X2Min: input.X2Min, X2Max: input.X2Max,
		Nx3: input.Nx3, X3Min: input.X3Min, X3Max: input.X3Max,
	}, input.NGhost)
	if err != nil {
		panic(err)
	}
	c, err := coords.NewCoordinates(sys, mb)
	if err != nil {
		panic(err)
	}
	gs := SummarizeGeometry(c)

	// Annulus volume pi*(R^2 - r^2)*H
	want := math.Pi * (9. - 1.) * 2.
	if math.Abs(gs.TotalVolume-want) > 1.e-10 {
		t.Errorf("total volume = %v, want %v", gs.TotalVolume, want)
	}
	// Innermost/outermost radial faces bound the area range
	if gs.MinFaceArea1 >= gs.MaxFaceArea1 {
		t.Errorf("face area range [%v, %v] is not increasing", gs.MinFaceArea1, gs.MaxFaceArea1)
	}
}

func TestSummarizeGeometryDegenerateX1(t *testing.T) {
	// A single-cell first axis still has two x1 faces; the is..ie+1 face
	// sweep must fit in the geometry's scratch buffer
	mb, err := mesh.NewBlock(mesh.BlockSize{
		Nx1: 1, X1Min: 0., X1Max: 2.,
		Nx2: 4, X2Min: 0., X2Max: 1.,
		Nx3: 1, X3Min: 0., X3Max: 3.,
	}, 2)
	if err != nil {
		panic(err)
	}
	c, err := coords.NewCoordinates(types.CS_Cartesian, mb)
	if err != nil {
		panic(err)
	}
	gs := SummarizeGeometry(c)

	assert.Equal(t, gs.TotalVolume, 6.)
	assert.Equal(t, gs.MinFaceArea1, 0.75)
	assert.Equal(t, gs.MaxFaceArea1, 0.75)
}
