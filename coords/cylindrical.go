package coords

import (
	"fmt"

	"github.com/bcaddy/athena/mesh"
	"github.com/bcaddy/athena/types"
	"github.com/bcaddy/athena/utils"
)

// Cylindrical geometry with x1 = r, x2 = phi, x3 = z
// (ds^2 = dr^2 + r^2 dphi^2 + dz^2).
//
// Radial centers are volume-averaged, x1v = (2/3)(r2^3 - r1^3)/(r2^2 - r1^2),
// so that <r> integrates the r dr dphi dz volume element exactly; phi and z
// centers are midpoints.
type Cylindrical struct {
	base
	// coordSrc1(i) = <1/r> over cell i, the volume-consistent factor in
	// the centrifugal source; equals 1/rbar with rbar the face midpoint
	// because dV = rbar * dr * dphi * dz exactly.
	coordSrc1 utils.Vector
}

func NewCylindrical(mb *mesh.Block) (c *Cylindrical) {
	c = &Cylindrical{base: newBase(mb)}
	if mb.X1f.AtVec(0) < 0 {
		panic(fmt.Errorf("coords: cylindrical block reaches r = %g < 0; ghost faces must stay at or outside the axis",
			mb.X1f.AtVec(0)))
	}
	initGeometry(mb,
		func(rl, rr float64) float64 {
			return 2. / 3. * (rr*rr*rr - rl*rl*rl) / (rr*rr - rl*rl)
		},
		midpoint, midpoint)

	nCells := mb.NCells1()
	c.coordSrc1 = utils.NewVector(nCells)
	var (
		src = c.coordSrc1.DataP()
		rf  = mb.X1f.DataP()
	)
	for i := 0; i < nCells; i++ {
		src[i] = 2. / (rf[i] + rf[i+1])
	}
	return
}

func (c *Cylindrical) System() types.CoordSys { return types.CS_Cylindrical }

// FaceArea1: dA = r * dphi * dz, evaluated at the radial face, so the
// result varies along the row.
func (c *Cylindrical) FaceArea1(k, j, il, iu int, areas utils.Vector) {
	c.checkTransverseCells(k, j)
	c.checkRange(il, iu, c.mb.NCells1(), areas)
	var (
		dphi = c.mb.Dx2f.AtVec(j)
		dz   = c.mb.Dx3f.AtVec(k)
		rf   = c.mb.X1f.DataP()
		a    = areas.DataP()
	)
	for i := il; i <= iu; i++ {
		a[i] = rf[i] * dphi * dz
	}
}

// FaceArea2: dA = dr * dz.
func (c *Cylindrical) FaceArea2(k, j, il, iu int, areas utils.Vector) {
	c.checkTransverseFace2(k, j)
	c.checkRange(il, iu, c.mb.NCells1()-1, areas)
	var (
		dz = c.mb.Dx3f.AtVec(k)
		dr = c.mb.Dx1f.DataP()
		a  = areas.DataP()
	)
	for i := il; i <= iu; i++ {
		a[i] = dr[i] * dz
	}
}

// FaceArea3: dA = (1/2)(r2^2 - r1^2) * dphi.
func (c *Cylindrical) FaceArea3(k, j, il, iu int, areas utils.Vector) {
	c.checkTransverseFace3(k, j)
	c.checkRange(il, iu, c.mb.NCells1()-1, areas)
	var (
		dphi = c.mb.Dx2f.AtVec(j)
		rf   = c.mb.X1f.DataP()
		a    = areas.DataP()
	)
	for i := il; i <= iu; i++ {
		a[i] = 0.5 * (rf[i+1]*rf[i+1] - rf[i]*rf[i]) * dphi
	}
}

// CellVolume: dV = (1/2)(r2^2 - r1^2) * dphi * dz.
func (c *Cylindrical) CellVolume(k, j, il, iu int, volumes utils.Vector) {
	c.checkTransverseCells(k, j)
	c.checkRange(il, iu, c.mb.NCells1()-1, volumes)
	var (
		dphi = c.mb.Dx2f.AtVec(j)
		dz   = c.mb.Dx3f.AtVec(k)
		rf   = c.mb.X1f.DataP()
		v    = volumes.DataP()
	)
	for i := il; i <= iu; i++ {
		v[i] = 0.5 * (rf[i+1]*rf[i+1] - rf[i]*rf[i]) * dphi * dz
	}
}

// CoordSourceTerms adds the centrifugal term to the radial momentum:
// src_M1 += (rho*vphi^2 + P) * <1/r>. The conservative angular-momentum
// form leaves the phi momentum source-free.
func (c *Cylindrical) CoordSourceTerms(k, j int, prim, src utils.Matrix) {
	c.checkTransverseCells(k, j)
	c.checkFields(prim, src)
	nCells := c.mb.NCells1()
	s1 := c.coordSrc1.DataP()
	for i := 0; i < nCells; i++ {
		var (
			rho  = prim.At(types.IDens, i)
			vphi = prim.At(types.IVel2, i)
			pres = prim.At(types.IPres, i)
		)
		src.AddAt(types.IMom1, i, (rho*vphi*vphi+pres)*s1[i])
	}
}
