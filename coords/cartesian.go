package coords

import (
	"github.com/bcaddy/athena/mesh"
	"github.com/bcaddy/athena/types"
	"github.com/bcaddy/athena/utils"
)

// Cartesian is the flat-metric reference variant (the spatial part of
// Minkowski, ds^2 = -dt^2 + dx^2 + dy^2 + dz^2). Every geometric factor
// reduces to a product of coordinate spacings and all coordinate source
// terms vanish identically.
type Cartesian struct {
	base
}

func NewCartesian(mb *mesh.Block) (c *Cartesian) {
	c = &Cartesian{newBase(mb)}
	initGeometry(mb, midpoint, midpoint, midpoint)
	return
}

func (c *Cartesian) System() types.CoordSys { return types.CS_Cartesian }

// FaceArea1: dA = dy * dz, constant along the row.
func (c *Cartesian) FaceArea1(k, j, il, iu int, areas utils.Vector) {
	c.checkTransverseCells(k, j)
	c.checkRange(il, iu, c.mb.NCells1(), areas)
	var (
		dy = c.mb.Dx2f.AtVec(j)
		dz = c.mb.Dx3f.AtVec(k)
		a  = areas.DataP()
	)
	for i := il; i <= iu; i++ {
		a[i] = dy * dz
	}
}

// FaceArea2: dA = dx * dz.
func (c *Cartesian) FaceArea2(k, j, il, iu int, areas utils.Vector) {
	c.checkTransverseFace2(k, j)
	c.checkRange(il, iu, c.mb.NCells1()-1, areas)
	var (
		dz = c.mb.Dx3f.AtVec(k)
		dx = c.mb.Dx1f.DataP()
		a  = areas.DataP()
	)
	for i := il; i <= iu; i++ {
		a[i] = dx[i] * dz
	}
}

// FaceArea3: dA = dx * dy.
func (c *Cartesian) FaceArea3(k, j, il, iu int, areas utils.Vector) {
	c.checkTransverseFace3(k, j)
	c.checkRange(il, iu, c.mb.NCells1()-1, areas)
	var (
		dy = c.mb.Dx2f.AtVec(j)
		dx = c.mb.Dx1f.DataP()
		a  = areas.DataP()
	)
	for i := il; i <= iu; i++ {
		a[i] = dx[i] * dy
	}
}

// CellVolume: dV = dx * dy * dz.
func (c *Cartesian) CellVolume(k, j, il, iu int, volumes utils.Vector) {
	c.checkTransverseCells(k, j)
	c.checkRange(il, iu, c.mb.NCells1()-1, volumes)
	var (
		dy = c.mb.Dx2f.AtVec(j)
		dz = c.mb.Dx3f.AtVec(k)
		dx = c.mb.Dx1f.DataP()
		v  = volumes.DataP()
	)
	for i := il; i <= iu; i++ {
		v[i] = dx[i] * dy * dz
	}
}

// CoordSourceTerms: a flat metric has no connection terms, so src is left
// exactly as the caller initialized it.
func (c *Cartesian) CoordSourceTerms(k, j int, prim, src utils.Matrix) {
	c.checkTransverseCells(k, j)
	c.checkFields(prim, src)
}
