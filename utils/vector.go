package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{v}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)          { return v.V.Dims() }
func (v Vector) At(i, j int) float64       { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix             { return v.V.T() }
func (v Vector) AtVec(i int) float64       { return v.V.AtVec(i) }
func (v Vector) SetVec(i int, val float64) { v.V.SetVec(i, val) }
func (v Vector) RawVector() blas64.Vector  { return v.V.RawVector() }
func (v Vector) Len() int                  { return v.V.Len() }

// DataP returns the raw backing slice for fast-path loops.
func (v Vector) DataP() []float64 { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Set(val float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	v.V.ScaleVec(a, v.V)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Copy() Vector {
	return Vector{mat.VecDenseCopyOf(v.V)}
}

func (v Vector) Linspace(begin, end float64) Vector {
	var (
		data = v.V.RawVector().Data
		N    = v.V.Len()
	)
	if N == 1 {
		data[0] = begin
		return v
	}
	h := (end - begin) / float64(N-1)
	for i := range data {
		data[i] = begin + float64(i)*h
	}
	data[N-1] = end
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Sum() (sum float64) {
	for _, val := range v.V.RawVector().Data {
		sum += val
	}
	return
}

// SumRange sums entries over the inclusive index range [il, iu].
func (v Vector) SumRange(il, iu int) (sum float64) {
	var (
		data = v.V.RawVector().Data
	)
	for i := il; i <= iu; i++ {
		sum += data[i]
	}
	return
}

// IsMonotoneIncreasing reports whether entries strictly increase.
func (v Vector) IsMonotoneIncreasing() bool {
	var (
		data = v.V.RawVector().Data
	)
	for i := 1; i < len(data); i++ {
		if data[i] <= data[i-1] {
			return false
		}
	}
	return true
}
