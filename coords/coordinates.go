package coords

import (
	"fmt"

	"github.com/bcaddy/athena/mesh"
	"github.com/bcaddy/athena/types"
	"github.com/bcaddy/athena/utils"
)

// Coordinates isolates the choice of coordinate system from the rest of
// the solver. Construction writes the volume-averaged cell centers and
// spacings into the owning block's arrays; the per-step queries supply the
// face areas, cell volumes, and coordinate-induced source terms the
// flux-conservative update consumes, through the same contract for every
// metric.
//
// All query buffers are caller-allocated. A query fills exactly the
// inclusive index range [il, iu] along axis 1 and leaves entries outside
// that range untouched. Out-of-range indices are programming errors and
// panic.
type Coordinates interface {
	System() types.CoordSys

	// FaceArea1 fills areas[il:iu+1] with the physical area of the mesh
	// face orthogonal to axis 1 at each x1 face index, at transverse
	// indices (k, j). FaceArea2 and FaceArea3 do the same for faces
	// orthogonal to axes 2 and 3, still sweeping the x1 index.
	FaceArea1(k, j, il, iu int, areas utils.Vector)
	FaceArea2(k, j, il, iu int, areas utils.Vector)
	FaceArea3(k, j, il, iu int, areas utils.Vector)

	// CellVolume fills volumes[il:iu+1] with the physical volume of each
	// cell (i, j, k) for i in [il, iu].
	CellVolume(k, j, il, iu int, volumes utils.Vector)

	// CoordSourceTerms accumulates the coordinate-induced source
	// contributions for one x1 row of primitive variables into src. Both
	// matrices are (NPrimVars x NCells1); src must be zeroed by the
	// caller before the first accumulation. Flat metrics add nothing.
	CoordSourceTerms(k, j int, prim, src utils.Matrix)

	// ScratchArea and ScratchVolume expose the pre-sized per-row work
	// buffers for the integrator to pass back into the queries. Contents
	// are defined only for the range of the most recent call.
	ScratchArea() utils.Vector
	ScratchVolume() utils.Vector

	// Block returns the owning mesh block. The geometry must not outlive
	// it.
	Block() *mesh.Block
}

// NewCoordinates constructs the configured coordinate-system variant for
// one block, initializing the block's center/spacing arrays as a side
// effect.
func NewCoordinates(sys types.CoordSys, mb *mesh.Block) (c Coordinates, err error) {
	switch sys {
	case types.CS_Cartesian:
		c = NewCartesian(mb)
	case types.CS_Cylindrical:
		c = NewCylindrical(mb)
	case types.CS_Spherical:
		c = NewSpherical(mb)
	default:
		err = fmt.Errorf("unsupported coordinate system: %s", sys)
	}
	return
}

// base carries the non-owning back-reference to the block and the
// reusable one-row scratch buffers shared by every variant.
type base struct {
	mb         *mesh.Block
	faceArea   utils.Vector
	cellVolume utils.Vector
}

func newBase(mb *mesh.Block) base {
	if mb == nil {
		panic("coords: nil mesh block")
	}
	if err := mb.Validate(); err != nil {
		panic(fmt.Errorf("coords: malformed mesh block: %v", err))
	}
	// The area scratch holds one x1 row of faces, which outnumber the
	// cells by one; the face sweep is..ie+1 must fit even when axis 1 is
	// degenerate and carries no ghost slack.
	nCells := mb.NCells1()
	return base{
		mb:         mb,
		faceArea:   utils.NewVector(nCells + 1),
		cellVolume: utils.NewVector(nCells),
	}
}

func (b *base) Block() *mesh.Block          { return b.mb }
func (b *base) ScratchArea() utils.Vector   { return b.faceArea }
func (b *base) ScratchVolume() utils.Vector { return b.cellVolume }

// checkRange panics unless [il, iu] is a non-empty range inside both the
// caller's buffer and the mesh index space (nMax is the largest legal
// index: NCells1 for face sweeps, NCells1-1 for cell sweeps).
func (b *base) checkRange(il, iu, nMax int, buf utils.Vector) {
	if il < 0 || il > iu || iu > nMax || iu >= buf.Len() {
		panic(fmt.Errorf("coords: index range [%d, %d] outside buffer length %d / mesh bound %d",
			il, iu, buf.Len(), nMax))
	}
}

// checkTransverse panics when (k, j) fall outside [0, kMax] x [0, jMax].
func (b *base) checkTransverse(k, j, kMax, jMax int) {
	if j < 0 || j > jMax || k < 0 || k > kMax {
		panic(fmt.Errorf("coords: transverse indices (k, j) = (%d, %d) outside bounds (%d, %d)",
			k, j, kMax, jMax))
	}
}

// Transverse bounds differ per query: an index normal to the face being
// measured addresses a face, which allows one more than the last cell
// index (the integrator sweeps js..je+1 for FaceArea2, ks..ke+1 for
// FaceArea3).
func (b *base) checkTransverseCells(k, j int) {
	b.checkTransverse(k, j, b.mb.NCells3()-1, b.mb.NCells2()-1)
}

func (b *base) checkTransverseFace2(k, j int) {
	b.checkTransverse(k, j, b.mb.NCells3()-1, b.mb.NCells2())
}

func (b *base) checkTransverseFace3(k, j int) {
	b.checkTransverse(k, j, b.mb.NCells3(), b.mb.NCells2()-1)
}

// checkFields panics unless prim and src are shaped (>= NPrimVars rows) x
// NCells1 columns.
func (b *base) checkFields(prim, src utils.Matrix) {
	pr, pc := prim.Dims()
	sr, sc := src.Dims()
	if pr < types.NPrimVars || pc != b.mb.NCells1() || sr < types.NPrimVars || sc != pc {
		panic(fmt.Errorf("coords: field matrices shaped (%d, %d) and (%d, %d), want at least (%d, %d)",
			pr, pc, sr, sc, types.NPrimVars, b.mb.NCells1()))
	}
}

// centerRule maps the two bounding face positions of a cell to its
// volume-averaged center. This is the polymorphic seam each metric
// overrides per axis.
type centerRule func(xl, xr float64) float64

func midpoint(xl, xr float64) float64 { return 0.5 * (xl + xr) }

// initAxis writes centers over the full ghost-inclusive cell range and
// spacings over all consecutive center pairs. A unit-extent axis gets the
// degenerate convention: one center from its two faces and a spacing equal
// to the face-to-face width.
func initAxis(xf, dxf, xv, dxv utils.Vector, rule centerRule) {
	var (
		nCells = xf.Len() - 1
		f      = xf.DataP()
		v      = xv.DataP()
	)
	if nCells == 1 {
		v[0] = rule(f[0], f[1])
		dxv.SetVec(0, dxf.AtVec(0))
		return
	}
	for i := 0; i < nCells; i++ {
		v[i] = rule(f[i], f[i+1])
	}
	d := dxv.DataP()
	for i := 0; i < nCells-1; i++ {
		d[i] = v[i+1] - v[i]
	}
}

func initGeometry(mb *mesh.Block, rule1, rule2, rule3 centerRule) {
	initAxis(mb.X1f, mb.Dx1f, mb.X1v, mb.Dx1v, rule1)
	initAxis(mb.X2f, mb.Dx2f, mb.X2v, mb.Dx2v, rule2)
	initAxis(mb.X3f, mb.Dx3f, mb.X3v, mb.Dx3v, rule3)
}
