package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcaddy/athena/utils"
)

func TestNewBlockUniform(t *testing.T) {
	mb, err := NewBlock(BlockSize{
		Nx1: 4, X1Min: 0, X1Max: 4,
		Nx2: 3, X2Min: 0, X2Max: 6,
		Nx3: 1, X3Min: 0, X3Max: 3,
	}, 2)
	require.NoError(t, err)
	require.NoError(t, mb.Validate())

	// Extended axes carry the ghost margin on both sides
	assert.Equal(t, 8, mb.NCells1())
	assert.Equal(t, 2, mb.Is)
	assert.Equal(t, 5, mb.Ie)
	assert.Equal(t, 9, mb.X1f.Len())
	assert.Equal(t, -2., mb.X1f.AtVec(0))
	assert.Equal(t, 0., mb.X1f.AtVec(mb.Is))
	assert.Equal(t, 4., mb.X1f.AtVec(mb.Ie+1))
	assert.Equal(t, 6., mb.X1f.AtVec(8))
	for i := 0; i < mb.NCells1(); i++ {
		assert.InDelta(t, 1., mb.Dx1f.AtVec(i), utils.NODETOL)
	}

	assert.Equal(t, 7, mb.NCells2())
	assert.Equal(t, 2, mb.Js)
	assert.Equal(t, 4, mb.Je)
	for j := 0; j < mb.NCells2(); j++ {
		assert.InDelta(t, 2., mb.Dx2f.AtVec(j), utils.NODETOL)
	}

	// Degenerate axis 3: two faces, one cell, no ghosts
	assert.Equal(t, 1, mb.NCells3())
	assert.Equal(t, 0, mb.Ks)
	assert.Equal(t, 0, mb.Ke)
	assert.Equal(t, 2, mb.X3f.Len())
	assert.Equal(t, 3., mb.Dx3f.AtVec(0))

	// Center/spacing arrays are allocated but not yet initialized
	assert.Equal(t, 8, mb.X1v.Len())
	assert.Equal(t, 7, mb.Dx1v.Len())
	assert.Equal(t, 1, mb.X3v.Len())
	assert.Equal(t, 1, mb.Dx3v.Len())
	assert.Equal(t, 0., mb.X1v.AtVec(3))
}

func TestNewBlockBadInput(t *testing.T) {
	good := BlockSize{
		Nx1: 4, X1Min: 0, X1Max: 1,
		Nx2: 1, X2Min: 0, X2Max: 1,
		Nx3: 1, X3Min: 0, X3Max: 1,
	}

	_, err := NewBlock(good, 0)
	assert.Error(t, err)

	bad := good
	bad.Nx1 = 0
	_, err = NewBlock(bad, 2)
	assert.Error(t, err)

	bad = good
	bad.X2Min, bad.X2Max = 1, 0
	_, err = NewBlock(bad, 2)
	assert.Error(t, err)

	bad = good
	bad.X3Max = bad.X3Min
	_, err = NewBlock(bad, 2)
	assert.Error(t, err)
}

func TestNewBlockFromFaces(t *testing.T) {
	// Non-uniform radial faces, geometric stretching
	x1f := utils.NewVector(9, []float64{0.5, 1, 2, 4, 8, 16, 32, 64, 128})
	x2f := utils.NewVector(2, []float64{0, 1})
	x3f := utils.NewVector(2, []float64{0, 2})
	mb, err := NewBlockFromFaces(2, x1f, x2f, x3f)
	require.NoError(t, err)

	assert.Equal(t, 4, mb.Size.Nx1)
	assert.Equal(t, 2, mb.Is)
	assert.Equal(t, 5, mb.Ie)
	assert.Equal(t, 1, mb.Size.Nx2)
	assert.Equal(t, 0.5, mb.Dx1f.AtVec(0))
	assert.Equal(t, 64., mb.Dx1f.AtVec(7))
	assert.Equal(t, 0.5, mb.Size.X1Min)
	assert.Equal(t, 128., mb.Size.X1Max)

	// Too few faces for the ghost margin
	_, err = NewBlockFromFaces(2, utils.NewVector(4).Linspace(0, 1), x2f, x3f)
	assert.Error(t, err)

	// Non-monotone faces are rejected
	badf := utils.NewVector(9, []float64{0, 1, 2, 2, 4, 5, 6, 7, 8})
	_, err = NewBlockFromFaces(2, badf, x2f, x3f)
	assert.Error(t, err)
}

func TestValidateCatchesMutation(t *testing.T) {
	mb, err := NewBlock(BlockSize{
		Nx1: 4, X1Min: 0, X1Max: 1,
		Nx2: 1, X2Min: 0, X2Max: 1,
		Nx3: 1, X3Min: 0, X3Max: 1,
	}, 2)
	require.NoError(t, err)
	require.NoError(t, mb.Validate())

	mb.Is, mb.Ie = mb.Ie, mb.Is
	assert.Error(t, mb.Validate())

	var empty Block
	assert.Error(t, empty.Validate())
}
