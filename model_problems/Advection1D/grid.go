package Advection1D

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gofd/utils"
)

var ErrGridShape = errors.New("invalid grid shape")

// Profile is an initial condition u0(x), Boundary is the inflow value mu(t).
type (
	Profile  func(x float64) float64
	Boundary func(t float64) float64
)

/*
Grid is the time by space field of one advection run. Row t holds the
solution at time t*Tau, column x the solution at position x*H. Row 0 carries
the initial condition, column 0 the inflow boundary, everything else is
filled by a Scheme.
*/
type Grid struct {
	U                 utils.Matrix
	H, Tau            float64
	Length, TimeSlice float64
}

func NewGrid(length, timeSlice float64, n, m int, u0 Profile, mu Boundary) (g *Grid, err error) {
	if !(length > 0 && timeSlice > 0) || n < 2 || m < 1 {
		err = fmt.Errorf("%w: length, time = %v, %v, n, m = %d, %d", ErrGridShape, length, timeSlice, n, m)
		return
	}
	g = &Grid{
		U:         utils.NewMatrix(m, n),
		H:         length / float64(n),
		Tau:       timeSlice / float64(m),
		Length:    length,
		TimeSlice: timeSlice,
	}
	if u0 != nil {
		row := g.U.RawRow(0)
		for i := range row {
			row[i] = u0(float64(i) * g.H)
		}
	}
	if mu != nil {
		for j := 0; j < m; j++ {
			g.U.Set(j, 0, mu(float64(j)*g.Tau))
		}
	}
	return
}

// N is the number of spatial points, M the number of time rows.
func (g *Grid) N() (n int) {
	_, n = g.U.Dims()
	return
}

func (g *Grid) M() (m int) {
	m, _ = g.U.Dims()
	return
}

// X returns the spatial mesh x_i = i*H.
func (g *Grid) X() []float64 { return utils.Steps(0, g.H, g.N()) }

func (g *Grid) Row(t int) []float64 { return g.U.Row(t) }

func (g *Grid) Solve(scheme Scheme, a float64) *Grid {
	scheme(g.U, a, g.H, g.Tau)
	return g
}

// Courant returns c = |a|*Tau/H for this grid.
func (g *Grid) Courant(a float64) float64 { return math.Abs(a) * g.Tau / g.H }

type CourantError struct {
	Tau, H, C float64
}

func (e *CourantError) Error() string {
	return fmt.Sprintf("explicit scheme is unstable, c = %.6g > 1 (tau = %g, h = %g)", e.C, e.Tau, e.H)
}

// CheckCourant fails with a *CourantError when c = |a|*tau/h exceeds one.
func CheckCourant(a, h, tau float64) (err error) {
	c := math.Abs(a) * tau / h
	if !(c <= 1+utils.NODETOL) {
		err = &CourantError{Tau: tau, H: h, C: c}
	}
	return
}
