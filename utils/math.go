package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns N evenly spaced points from xmin to xmax inclusive.
func Linspace(xmin, xmax float64, N int) (x []float64) {
	if N == 1 {
		return []float64{xmin}
	}
	x = make([]float64, N)
	floats.Span(x, xmin, xmax)
	return
}

// Steps returns N points x[i] = x0 + i*dx.
func Steps(x0, dx float64, N int) (x []float64) {
	x = make([]float64, N)
	for i := range x {
		x[i] = x0 + float64(i)*dx
	}
	return
}

// MaxAbsDiff is the L-infinity distance between a and b. Pairs where either
// side is NaN are skipped; if every pair is skipped the result is NaN.
func MaxAbsDiff(a, b []float64) (maxDiff float64) {
	checkLengths(a, b)
	maxDiff = math.NaN()
	for i, val := range a {
		d := math.Abs(val - b[i])
		if math.IsNaN(d) {
			continue
		}
		if math.IsNaN(maxDiff) || d > maxDiff {
			maxDiff = d
		}
	}
	return
}

// NormL1 is the discrete L1 distance weighted by the mesh spacing dx.
func NormL1(a, b []float64, dx float64) float64 {
	checkLengths(a, b)
	return dx * floats.Distance(a, b, 1)
}

func checkLengths(a, b []float64) {
	if len(a) != len(b) {
		err := fmt.Errorf("length mismatch: len(a) = %d, len(b) = %d", len(a), len(b))
		panic(err)
	}
}
