package Advection1D

import (
	"github.com/notargets/gofd/utils"
)

// Precise samples the exact transported profile u0(x - a t) at time step
// `step` on n points spaced h apart.
func Precise(u0 Profile, a float64, step int, h float64, n int, tau float64) (u []float64) {
	u = make([]float64, n)
	for x := range u {
		u[x] = u0(float64(x)*h - float64(step)*tau*a)
	}
	return
}

func (g *Grid) Precise(u0 Profile, a float64, step int) []float64 {
	return Precise(u0, a, step, g.H, g.N(), g.Tau)
}

// MaxError is the largest pointwise deviation of row t from ref, NaN samples skipped.
func MaxError(U utils.Matrix, t int, ref []float64) float64 {
	return utils.MaxAbsDiff(U.RawRow(t), ref)
}

// L1Error is the h weighted sum of absolute deviations of row t from ref.
func L1Error(U utils.Matrix, t int, ref []float64, h float64) float64 {
	return utils.NormL1(U.RawRow(t), ref, h)
}

// PreciseField stacks the exact profile of every time row into a grid shaped
// like g.U, for side by side animation.
func (g *Grid) PreciseField(u0 Profile, a float64) (R utils.Matrix) {
	R = utils.NewMatrix(g.M(), g.N())
	for t := 0; t < g.M(); t++ {
		R.SetRow(t, g.Precise(u0, a, t))
	}
	return
}
