package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Row major layout
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, 6., M.At(1, 2))
		assert.Equal(t, []float64{2, 5}, M.Col(1))
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1))
		assert.Equal(t, 1., M.T().At(0, 0))
		assert.Equal(t, 4., M.T().At(0, 1))
	}
	// Live rows and copies
	{
		M := NewMatrix(2, 2)
		row := M.RawRow(1)
		row[0] = 7
		assert.Equal(t, 7., M.At(1, 0))
		R := M.Copy()
		M.Set(1, 0, 8)
		assert.Equal(t, 7., R.At(1, 0))
		M.SetRow(0, []float64{1, 2})
		assert.Equal(t, []float64{1, 2, 8, 0}, M.Data())
		copied := M.Row(0)
		copied[0] = 100
		assert.Equal(t, 1., M.At(0, 0))
	}
	// Read only
	{
		M := NewMatrix(1, 2)
		assert.False(t, M.IsEmpty())
		M.SetReadOnly("frozen")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		assert.Panics(t, func() { M.SetRow(0, []float64{1, 2}) })
		var E Matrix
		assert.True(t, E.IsEmpty())
	}
	// Bad allocations
	{
		assert.Panics(t, func() { NewMatrix(0, 3) })
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
	// Min and Max skip NaN
	{
		M := NewMatrix(1, 4, []float64{3, math.NaN(), -2, 5})
		assert.Equal(t, -2., M.Min())
		assert.Equal(t, 5., M.Max())
		N := NewMatrix(1, 2, []float64{math.NaN(), math.NaN()})
		assert.True(t, math.IsNaN(N.Min()))
		assert.True(t, math.IsNaN(N.Max()))
	}
}

func TestMath(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
	assert.Equal(t, []float64{2}, Linspace(2, 3, 1))
	assert.InDeltaSlice(t, []float64{1, 1.5, 2}, Steps(1, 0.5, 3), 1.e-15)

	assert.Equal(t, 2., MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 4, math.NaN()}))
	assert.True(t, math.IsNaN(MaxAbsDiff([]float64{math.NaN()}, []float64{1})))
	assert.Panics(t, func() { MaxAbsDiff([]float64{1}, []float64{1, 2}) })

	assert.InDelta(t, 0.3, NormL1([]float64{1, 2}, []float64{2, 4}, 0.1), 1.e-15)
	assert.Panics(t, func() { NormL1([]float64{1}, nil, 1) })

	assert.Equal(t, 1., SeriesColor(0, 1))
	assert.Equal(t, -1., SeriesColor(0, 3))
	assert.Equal(t, 0., SeriesColor(1, 3))
	assert.Equal(t, 1., SeriesColor(2, 3))
}
