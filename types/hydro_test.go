package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordSys(t *testing.T) {
	tokens := []string{"Cartesian", "minkowski", " CYLINDRICAL ", "spherical", "Spherical_Polar"}
	flags := []CoordSys{CS_Cartesian, CS_Cartesian, CS_Cylindrical, CS_Spherical, CS_Spherical}
	for i, token := range tokens {
		cs, err := NewCoordSys(token)
		assert.NoError(t, err)
		assert.Equal(t, flags[i], cs)
	}
	_, err := NewCoordSys("parabolic")
	assert.Error(t, err)

	assert.Equal(t, "Cartesian", CS_Cartesian.String())
	assert.Equal(t, "Spherical Polar", CS_Spherical.String())
}

func TestVariableLayout(t *testing.T) {
	// Source buffers address momenta through the shared primitive slots
	assert.Equal(t, IVel1, IMom1)
	assert.Equal(t, IPres, IEner)
	assert.Equal(t, 5, NPrimVars)
}
