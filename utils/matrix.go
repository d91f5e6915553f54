package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

// AddAt accumulates val into element (i, j).
func (m Matrix) AddAt(i, j int, val float64) Matrix {
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
		data   = make([]float64, nr*nc)
	)
	copy(data, m.M.RawMatrix().Data)
	R = NewMatrix(nr, nc, data)
	return
}

func (m Matrix) Scale(a float64) Matrix {
	var (
		data = m.M.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

// Row returns row i as a copied Vector.
func (m Matrix) Row(i int) Vector {
	var (
		_, nc = m.Dims()
		data  = make([]float64, nc)
	)
	copy(data, m.M.RawRowView(i))
	return NewVector(nc, data)
}

// IsZero reports whether every element is exactly zero.
func (m Matrix) IsZero() bool {
	for _, val := range m.M.RawMatrix().Data {
		if val != 0 {
			return false
		}
	}
	return true
}
