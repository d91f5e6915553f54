package coords

import (
	"fmt"
	"math"

	"github.com/bcaddy/athena/mesh"
	"github.com/bcaddy/athena/types"
	"github.com/bcaddy/athena/utils"
)

// Spherical-polar geometry with x1 = r, x2 = theta, x3 = phi
// (ds^2 = dr^2 + r^2 dtheta^2 + r^2 sin^2(theta) dphi^2).
//
// Radial centers use the r^2 dr volume weighting,
// x1v = (3/4)(r2^4 - r1^4)/(r2^3 - r1^3); polar centers use the
// sin(theta) dtheta weighting,
// x2v = [(sin th - th cos th)]_th1^th2 / (cos th1 - cos th2);
// phi centers are midpoints.
type Spherical struct {
	base
	// coordSrc1(i) = <1/r>, the ratio of the radial area element integral
	// (r2^2 - r1^2)/2 to the volume element integral (r2^3 - r1^3)/3.
	coordSrc1 utils.Vector
	// coordSrc2(j) = <cot theta> = (sin th2 - sin th1)/(cos th1 - cos th2).
	coordSrc2 utils.Vector
}

func NewSpherical(mb *mesh.Block) (c *Spherical) {
	c = &Spherical{base: newBase(mb)}
	if mb.X1f.AtVec(0) < 0 {
		panic(fmt.Errorf("coords: spherical block reaches r = %g < 0; ghost faces must stay at or outside the origin",
			mb.X1f.AtVec(0)))
	}
	initGeometry(mb,
		func(rl, rr float64) float64 {
			return 3. / 4. * (rr*rr*rr*rr - rl*rl*rl*rl) / (rr*rr*rr - rl*rl*rl)
		},
		func(tl, tr float64) float64 {
			return ((math.Sin(tr) - tr*math.Cos(tr)) - (math.Sin(tl) - tl*math.Cos(tl))) /
				(math.Cos(tl) - math.Cos(tr))
		},
		midpoint)

	var (
		nc1 = mb.NCells1()
		nc2 = mb.NCells2()
		rf  = mb.X1f.DataP()
		tf  = mb.X2f.DataP()
	)
	c.coordSrc1 = utils.NewVector(nc1)
	s1 := c.coordSrc1.DataP()
	for i := 0; i < nc1; i++ {
		s1[i] = 1.5 * (rf[i+1]*rf[i+1] - rf[i]*rf[i]) /
			(rf[i+1]*rf[i+1]*rf[i+1] - rf[i]*rf[i]*rf[i])
	}
	c.coordSrc2 = utils.NewVector(nc2)
	s2 := c.coordSrc2.DataP()
	for j := 0; j < nc2; j++ {
		s2[j] = (math.Sin(tf[j+1]) - math.Sin(tf[j])) /
			(math.Cos(tf[j]) - math.Cos(tf[j+1]))
	}
	return
}

func (c *Spherical) System() types.CoordSys { return types.CS_Spherical }

// FaceArea1: dA = r^2 * dmu * dphi with dmu = cos(th1) - cos(th2),
// evaluated at the radial face.
func (c *Spherical) FaceArea1(k, j, il, iu int, areas utils.Vector) {
	c.checkTransverseCells(k, j)
	c.checkRange(il, iu, c.mb.NCells1(), areas)
	var (
		dmu  = c.dmu(j)
		dphi = c.mb.Dx3f.AtVec(k)
		rf   = c.mb.X1f.DataP()
		a    = areas.DataP()
	)
	for i := il; i <= iu; i++ {
		a[i] = rf[i] * rf[i] * dmu * dphi
	}
}

// FaceArea2: dA = (1/2)(r2^2 - r1^2) * sin(theta) * dphi, evaluated at the
// polar face.
func (c *Spherical) FaceArea2(k, j, il, iu int, areas utils.Vector) {
	c.checkTransverseFace2(k, j)
	c.checkRange(il, iu, c.mb.NCells1()-1, areas)
	var (
		sinth = math.Sin(c.mb.X2f.AtVec(j))
		dphi  = c.mb.Dx3f.AtVec(k)
		rf    = c.mb.X1f.DataP()
		a     = areas.DataP()
	)
	for i := il; i <= iu; i++ {
		a[i] = 0.5 * (rf[i+1]*rf[i+1] - rf[i]*rf[i]) * sinth * dphi
	}
}

// FaceArea3: dA = (1/2)(r2^2 - r1^2) * dtheta.
func (c *Spherical) FaceArea3(k, j, il, iu int, areas utils.Vector) {
	c.checkTransverseFace3(k, j)
	c.checkRange(il, iu, c.mb.NCells1()-1, areas)
	var (
		dth = c.mb.Dx2f.AtVec(j)
		rf  = c.mb.X1f.DataP()
		a   = areas.DataP()
	)
	for i := il; i <= iu; i++ {
		a[i] = 0.5 * (rf[i+1]*rf[i+1] - rf[i]*rf[i]) * dth
	}
}

// CellVolume: dV = (1/3)(r2^3 - r1^3) * dmu * dphi.
func (c *Spherical) CellVolume(k, j, il, iu int, volumes utils.Vector) {
	c.checkTransverseCells(k, j)
	c.checkRange(il, iu, c.mb.NCells1()-1, volumes)
	var (
		dmu  = c.dmu(j)
		dphi = c.mb.Dx3f.AtVec(k)
		rf   = c.mb.X1f.DataP()
		v    = volumes.DataP()
	)
	for i := il; i <= iu; i++ {
		v[i] = (rf[i+1]*rf[i+1]*rf[i+1] - rf[i]*rf[i]*rf[i]) / 3. * dmu * dphi
	}
}

// CoordSourceTerms adds the curvature terms of the momentum equations:
//
//	src_M1 += (rho*(vth^2 + vphi^2) + 2P) * <1/r>
//	src_M2 += (rho*vphi^2 + P) * <cot th> * <1/r>
//
// The conservative angular-momentum form leaves the phi momentum
// source-free.
func (c *Spherical) CoordSourceTerms(k, j int, prim, src utils.Matrix) {
	c.checkTransverseCells(k, j)
	c.checkFields(prim, src)
	var (
		nCells = c.mb.NCells1()
		s1     = c.coordSrc1.DataP()
		cotth  = c.coordSrc2.AtVec(j)
	)
	for i := 0; i < nCells; i++ {
		var (
			rho  = prim.At(types.IDens, i)
			vth  = prim.At(types.IVel2, i)
			vphi = prim.At(types.IVel3, i)
			pres = prim.At(types.IPres, i)
		)
		src.AddAt(types.IMom1, i, (rho*(vth*vth+vphi*vphi)+2.*pres)*s1[i])
		src.AddAt(types.IMom2, i, (rho*vphi*vphi+pres)*cotth*s1[i])
	}
}

// dmu is the polar volume-element factor cos(th1) - cos(th2) for cell j.
func (c *Spherical) dmu(j int) float64 {
	return math.Cos(c.mb.X2f.AtVec(j)) - math.Cos(c.mb.X2f.AtVec(j+1))
}
