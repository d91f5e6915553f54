package types

import (
	"fmt"
	"strings"
)

// Primitive variable indices within a field matrix (rows)
const (
	IDens = iota
	IVel1
	IVel2
	IVel3
	IPres
	NPrimVars
)

// Conserved variables share the momentum/energy slots with the
// corresponding primitives, so source buffers use the same row layout.
const (
	IMom1     = IVel1
	IMom2     = IVel2
	IMom3     = IVel3
	IEner     = IPres
	NConsVars = NPrimVars
)

type CoordSys uint8

const (
	CS_Cartesian CoordSys = iota
	CS_Cylindrical
	CS_Spherical
)

var CoordSysNameMap = map[string]CoordSys{
	"cartesian":       CS_Cartesian,
	"minkowski":       CS_Cartesian,
	"cylindrical":     CS_Cylindrical,
	"spherical":       CS_Spherical,
	"spherical_polar": CS_Spherical,
}

var coordSysLabels = []string{
	"Cartesian",
	"Cylindrical",
	"Spherical Polar",
}

func (cs CoordSys) String() string {
	if int(cs) >= len(coordSysLabels) {
		return "Unknown"
	}
	return coordSysLabels[cs]
}

// NewCoordSys parses a coordinate system label from an input file,
// case-insensitively.
func NewCoordSys(label string) (cs CoordSys, err error) {
	var (
		ok bool
	)
	if cs, ok = CoordSysNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown coordinate system: %s", label)
	}
	return
}
