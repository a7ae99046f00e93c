package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major field of scalars. Row r, column c is stored at
// Data()[r*nc+c], which is the layout plotting and table code index into.
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if nr < 1 || nc < 1 {
		err := fmt.Errorf("invalid dimensions: NewMatrix nr,nc = %v,%v", nr, nc)
		panic(err)
	}
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

// IsEmpty reports whether the matrix has never been allocated.
func (m Matrix) IsEmpty() bool { return m.M == nil }

func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

// Data and RawRow are raw views of the storage, writes through them bypass
// the read only guard.
func (m Matrix) Data() []float64 {
	return m.M.RawMatrix().Data
}

func (m Matrix) RawRow(i int) []float64 {
	return m.M.RawRowView(i)
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.Data())
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Col(j int) (col []float64) { // Does not change receiver
	var (
		nr, _ = m.Dims()
	)
	col = make([]float64, nr)
	mat.Col(col, j, m.M)
	return
}

func (m Matrix) Row(i int) (row []float64) { // Does not change receiver
	var (
		_, nc = m.Dims()
	)
	row = make([]float64, nc)
	copy(row, m.M.RawRowView(i))
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.SetRow(i, data)
	return m
}

// Min and Max skip NaN entries; an all NaN matrix returns NaN.
func (m Matrix) Min() (min float64) {
	min = math.NaN()
	for _, val := range m.Data() {
		if math.IsNaN(val) {
			continue
		}
		if math.IsNaN(min) || val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	max = math.NaN()
	for _, val := range m.Data() {
		if math.IsNaN(val) {
			continue
		}
		if math.IsNaN(max) || val > max {
			max = val
		}
	}
	return
}

func (m Matrix) String() string {
	return fmt.Sprintf("%s =\n%v", m.name, mat.Formatted(m.M, mat.Squeeze()))
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
