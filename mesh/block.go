package mesh

import (
	"fmt"

	"github.com/bcaddy/athena/utils"
)

// BlockSize describes the interior extent of one mesh block: cell counts
// and physical coordinate ranges per axis. An axis with Nx == 1 is
// degenerate (no physical extent in the stencil sense) and carries no
// ghost cells.
type BlockSize struct {
	Nx1, Nx2, Nx3 int
	X1Min, X1Max  float64
	X2Min, X2Max  float64
	X3Min, X3Max  float64
}

// Block is one rectangular sub-domain of the simulation grid. It owns the
// face-position arrays that define the discretization and the
// volume-averaged center/spacing arrays that Coordinates fills in at
// construction time.
//
// Index convention per extended axis: cells run [0, Nx+2*NGhost), the
// interior is [Is, Ie], faces run [0, Nx+2*NGhost]. Degenerate axes hold a
// single cell at index 0 bounded by two faces.
type Block struct {
	Size   BlockSize
	NGhost int

	// Interior index bounds
	Is, Ie, Js, Je, Ks, Ke int

	// Face positions and face-to-face widths
	X1f, X2f, X3f    utils.Vector
	Dx1f, Dx2f, Dx3f utils.Vector

	// Volume-averaged cell centers and center-to-center spacings,
	// written once by the Coordinates constructor
	X1v, X2v, X3v    utils.Vector
	Dx1v, Dx2v, Dx3v utils.Vector
}

// NewBlock builds a block with uniformly spaced faces spanning the
// configured region, extended by nGhost ghost cells along every
// non-degenerate axis.
func NewBlock(size BlockSize, nGhost int) (mb *Block, err error) {
	if nGhost < 1 {
		return nil, fmt.Errorf("ghost margin must be at least 1, got %d", nGhost)
	}
	nxs := [3]int{size.Nx1, size.Nx2, size.Nx3}
	mins := [3]float64{size.X1Min, size.X2Min, size.X3Min}
	maxs := [3]float64{size.X1Max, size.X2Max, size.X3Max}
	for n := 0; n < 3; n++ {
		if nxs[n] < 1 {
			return nil, fmt.Errorf("axis %d cell count must be at least 1, got %d", n+1, nxs[n])
		}
		if maxs[n] <= mins[n] {
			return nil, fmt.Errorf("axis %d range is inverted or empty: [%g, %g]", n+1, mins[n], maxs[n])
		}
	}
	mb = &Block{Size: size, NGhost: nGhost}
	mb.X1f = uniformFaces(size.Nx1, size.X1Min, size.X1Max, nGhost)
	mb.X2f = uniformFaces(size.Nx2, size.X2Min, size.X2Max, nGhost)
	mb.X3f = uniformFaces(size.Nx3, size.X3Min, size.X3Max, nGhost)
	mb.finishSetup()
	return
}

// NewBlockFromFaces builds a block around externally computed (possibly
// non-uniform) face-position arrays. Each array must hold the interior
// faces plus nGhost ghost cells per side for extended axes, or exactly two
// faces for a degenerate axis.
func NewBlockFromFaces(nGhost int, x1f, x2f, x3f utils.Vector) (mb *Block, err error) {
	if nGhost < 1 {
		return nil, fmt.Errorf("ghost margin must be at least 1, got %d", nGhost)
	}
	faces := [3]utils.Vector{x1f, x2f, x3f}
	var nxs [3]int
	for n := 0; n < 3; n++ {
		nf := faces[n].Len()
		switch {
		case nf == 2:
			nxs[n] = 1
		case nf > 2*nGhost+2:
			nxs[n] = nf - 1 - 2*nGhost
		default:
			return nil, fmt.Errorf("axis %d has %d faces, too few for ghost margin %d", n+1, nf, nGhost)
		}
	}
	mb = &Block{
		Size: BlockSize{
			Nx1: nxs[0], Nx2: nxs[1], Nx3: nxs[2],
			X1Min: x1f.AtVec(0), X1Max: x1f.AtVec(x1f.Len() - 1),
			X2Min: x2f.AtVec(0), X2Max: x2f.AtVec(x2f.Len() - 1),
			X3Min: x3f.AtVec(0), X3Max: x3f.AtVec(x3f.Len() - 1),
		},
		NGhost: nGhost,
		X1f:    x1f,
		X2f:    x2f,
		X3f:    x3f,
	}
	mb.finishSetup()
	if err = mb.Validate(); err != nil {
		return nil, err
	}
	return
}

func uniformFaces(nx int, min, max float64, nGhost int) utils.Vector {
	if nx == 1 {
		return utils.NewVector(2, []float64{min, max})
	}
	dx := (max - min) / float64(nx)
	lo := min - float64(nGhost)*dx
	hi := max + float64(nGhost)*dx
	return utils.NewVector(nx+2*nGhost+1).Linspace(lo, hi)
}

// finishSetup derives index bounds, face widths, and the zeroed
// center/spacing arrays from the face arrays.
func (mb *Block) finishSetup() {
	setBounds := func(nx int) (s, e int) {
		if nx == 1 {
			return 0, 0
		}
		return mb.NGhost, mb.NGhost + nx - 1
	}
	mb.Is, mb.Ie = setBounds(mb.Size.Nx1)
	mb.Js, mb.Je = setBounds(mb.Size.Nx2)
	mb.Ks, mb.Ke = setBounds(mb.Size.Nx3)

	mb.Dx1f = faceWidths(mb.X1f)
	mb.Dx2f = faceWidths(mb.X2f)
	mb.Dx3f = faceWidths(mb.X3f)

	allocAxis := func(nc int) (xv, dxv utils.Vector) {
		xv = utils.NewVector(nc)
		if nc == 1 {
			dxv = utils.NewVector(1)
		} else {
			dxv = utils.NewVector(nc - 1)
		}
		return
	}
	mb.X1v, mb.Dx1v = allocAxis(mb.NCells1())
	mb.X2v, mb.Dx2v = allocAxis(mb.NCells2())
	mb.X3v, mb.Dx3v = allocAxis(mb.NCells3())
}

func faceWidths(xf utils.Vector) utils.Vector {
	var (
		nc  = xf.Len() - 1
		dxf = utils.NewVector(nc)
		d   = dxf.DataP()
		f   = xf.DataP()
	)
	for i := 0; i < nc; i++ {
		d[i] = f[i+1] - f[i]
	}
	return dxf
}

// NCells1 returns the allocated cell count along axis 1, ghosts included.
func (mb *Block) NCells1() int { return mb.X1f.Len() - 1 }
func (mb *Block) NCells2() int { return mb.X2f.Len() - 1 }
func (mb *Block) NCells3() int { return mb.X3f.Len() - 1 }

// Validate checks the block for the malformations that silently corrupt
// geometry downstream: inverted index bounds, face arrays of the wrong
// length, and non-monotone face positions.
func (mb *Block) Validate() error {
	faces := []struct {
		name string
		xf   utils.Vector
	}{
		{"x1", mb.X1f}, {"x2", mb.X2f}, {"x3", mb.X3f},
	}
	for _, f := range faces {
		if f.xf.V == nil || f.xf.Len() < 2 {
			return fmt.Errorf("%s face array is unpopulated", f.name)
		}
	}
	type axis struct {
		name   string
		s, e   int
		nx, nc int
		xf     utils.Vector
	}
	axes := []axis{
		{"x1", mb.Is, mb.Ie, mb.Size.Nx1, mb.NCells1(), mb.X1f},
		{"x2", mb.Js, mb.Je, mb.Size.Nx2, mb.NCells2(), mb.X2f},
		{"x3", mb.Ks, mb.Ke, mb.Size.Nx3, mb.NCells3(), mb.X3f},
	}
	for _, ax := range axes {
		if ax.s > ax.e {
			return fmt.Errorf("%s index bounds are inverted: [%d, %d]", ax.name, ax.s, ax.e)
		}
		want := ax.nx
		if ax.nx > 1 {
			want += 2 * mb.NGhost
		}
		if ax.nc != want {
			return fmt.Errorf("%s has %d cells, expected %d", ax.name, ax.nc, want)
		}
		if ax.e >= ax.nc {
			return fmt.Errorf("%s interior bound %d exceeds cell count %d", ax.name, ax.e, ax.nc)
		}
		if !ax.xf.IsMonotoneIncreasing() {
			return fmt.Errorf("%s face positions are not strictly increasing", ax.name)
		}
	}
	return nil
}
