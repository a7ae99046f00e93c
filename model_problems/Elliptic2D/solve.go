package Elliptic2D

import (
	"math"

	"github.com/notargets/gofd/utils"
)

type Result struct {
	Iterations    int
	MaxIterations int
	Precision     float64
	MaxDelta      float64 // Largest interior change in the last sweep
	Converged     bool
	HasReference  bool
	Error         float64 // Max |U - u| over the mesh, NaN samples skipped
}

/*
Solve relaxes the interior until the largest change in a sweep is at most
precision or maxIterations sweeps have run.

Each sweep visits j = 1..m-1 in the outer loop and i = 1..n-1 in the inner
loop and overwrites U in place, so a node reads the already updated values of
its left and lower neighbours from the current sweep:

	new = [w*(h*(left+right) + k*(up+down)) + (1-w)*a*prev + w*f] / a*

Reaching maxIterations is not an error, Converged reports the outcome.
*/
func (g *Grid) Solve(precision float64, maxIterations int) (r Result) {
	var (
		raw    = g.U.RawMatrix()
		data   = raw.Data
		stride = raw.Stride
		omega  = g.omega
		relax  = (1 - omega) * g.aStar
		source = g.problem.Source
	)
	r = Result{
		MaxIterations: maxIterations,
		Precision:     precision,
		MaxDelta:      math.Inf(1),
		HasReference:  g.HasReference(),
	}
	g.accuracy = make([]float64, 0, 64)
	for r.Iterations < maxIterations && !(r.MaxDelta <= precision) {
		var maxDelta float64
		for j := 1; j < g.m; j++ {
			row := j * stride
			for i := 1; i < g.n; i++ {
				ij := row + i
				prev := data[ij]
				left := g.hStar * data[ij-1]
				right := g.hStar * data[ij+1]
				up := g.kStar * data[ij+stride]
				down := g.kStar * data[ij-stride]
				next := omega*(left+right+up+down) + relax*prev + omega*source(i, j, g)
				next /= g.aStar
				data[ij] = next
				if d := math.Abs(prev - next); d > maxDelta || math.IsNaN(d) {
					maxDelta = d
				}
			}
		}
		r.Iterations++
		r.MaxDelta = maxDelta
		g.accuracy = append(g.accuracy, maxDelta)
	}
	r.Converged = r.MaxDelta <= precision
	g.final = g.U.Copy()
	g.final.SetReadOnly("final")
	if r.HasReference {
		r.Error = utils.MaxAbsDiff(g.final.Data(), g.ref.Data())
	}
	return
}

// Residual returns the largest interior residual of the discrete equation
// h*(left+right) + k*(up+down) - a*u + f = 0 for the current field.
func (g *Grid) Residual() (maxResid float64) {
	for j := 1; j < g.m; j++ {
		for i := 1; i < g.n; i++ {
			r := g.hStar*(g.Get(i-1, j)+g.Get(i+1, j)) + g.kStar*(g.Get(i, j+1)+g.Get(i, j-1)) -
				g.aStar*g.Get(i, j) + g.problem.Source(i, j, g)
			maxResid = math.Max(maxResid, math.Abs(r))
		}
	}
	return
}
