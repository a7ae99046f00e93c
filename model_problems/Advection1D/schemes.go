package Advection1D

import (
	"fmt"
	"strings"

	"github.com/notargets/gofd/types"
	"github.com/notargets/gofd/utils"
)

// Scheme fills every row t >= 1 of U from row t-1, leaving row 0 and the
// inflow column as given. U is modified in place and returned.
type Scheme func(U utils.Matrix, a, h, tau float64) utils.Matrix

// UpwindScheme is the first order one sided difference, stable for |a|tau/h <= 1.
func UpwindScheme(U utils.Matrix, a, h, tau float64) utils.Matrix {
	var (
		nr, nc = U.Dims()
	)
	for t := 1; t < nr; t++ {
		prev, curr := U.RawRow(t-1), U.RawRow(t)
		for x := 1; x < nc; x++ {
			curr[x] = prev[x] - a*tau*((prev[x]-prev[x-1])/h)
		}
	}
	return U
}

// CentralScheme uses the centered difference on interior points only, the
// last column keeps whatever the grid was built with.
func CentralScheme(U utils.Matrix, a, h, tau float64) utils.Matrix {
	var (
		nr, nc = U.Dims()
	)
	for t := 1; t < nr; t++ {
		prev, curr := U.RawRow(t-1), U.RawRow(t)
		for x := 1; x < nc-1; x++ {
			curr[x] = prev[x] - a*tau*((prev[x+1]-prev[x-1])/(2*h))
		}
	}
	return U
}

// RightBoundary closes the tridiagonal system at the last point with
// u[last] = Kappa*u[last-1] + Mu.
type RightBoundary struct {
	Kappa, Mu float64
}

var Outflow = RightBoundary{Kappa: 1}

func Dirichlet(val float64) RightBoundary { return RightBoundary{Mu: val} }

// NewRightBoundary maps a configured boundary flag onto the sweep closure.
func NewRightBoundary(bc types.BCFLAG, val float64) (rb RightBoundary, err error) {
	switch bc {
	case types.BC_Out:
		rb = Outflow
	case types.BC_Dirichlet:
		rb = Dirichlet(val)
	default:
		err = fmt.Errorf("right boundary must be %s or %s, have %s", types.BC_Out, types.BC_Dirichlet, bc)
	}
	return
}

// ImplicitSweepScheme is the Crank-Nicolson scheme with a zero gradient outflow.
func ImplicitSweepScheme(U utils.Matrix, a, h, tau float64) utils.Matrix {
	return NewImplicitSweepScheme(Outflow)(U, a, h, tau)
}

/*
NewImplicitSweepScheme returns the Crank-Nicolson scheme closed on the right
by rb. Each time row is the solution of

	A*u[x-1] - C*u[x] + B*u[x+1] = phi[x],  x = 1..n-2

with A = -a/4h, B = a/4h, C = -1/tau and phi taken from the previous row,
solved by forward elimination into (alpha, beta) and back substitution.
The left end is the inflow value already stored in column 0.
*/
func NewImplicitSweepScheme(rb RightBoundary) Scheme {
	return func(U utils.Matrix, a, h, tau float64) utils.Matrix {
		var (
			nr, nc      = U.Dims()
			A, B, C     = -a / (4 * h), a / (4 * h), -1 / tau
			alpha, beta = make([]float64, nc-1), make([]float64, nc-1)
		)
		for t := 1; t < nr; t++ {
			prev, curr := U.RawRow(t-1), U.RawRow(t)
			alpha[0], beta[0] = 0, curr[0]
			for x := 1; x < nc-1; x++ {
				phi := prev[x]/tau - a/(4*h)*(prev[x+1]-prev[x-1])
				denom := C - A*alpha[x-1]
				alpha[x] = B / denom
				beta[x] = (-phi + A*beta[x-1]) / denom
			}
			last := nc - 1
			curr[last] = (rb.Kappa*beta[last-1] + rb.Mu) / (1 - rb.Kappa*alpha[last-1])
			for x := last - 1; x >= 0; x-- {
				curr[x] = alpha[x]*curr[x+1] + beta[x]
			}
		}
		return U
	}
}

type SchemeType uint

const (
	SCHEME_Upwind SchemeType = iota
	SCHEME_Central
	SCHEME_Implicit
)

var (
	SchemeNames = map[string]SchemeType{
		"upwind":   SCHEME_Upwind,
		"central":  SCHEME_Central,
		"implicit": SCHEME_Implicit,
	}
	SchemePrintNames = []string{"Upwind", "Central", "Implicit sweep"}
)

func (st SchemeType) Print() (txt string) {
	txt = SchemePrintNames[st]
	return
}

// Explicit schemes need the Courant check before they are run.
func (st SchemeType) Explicit() bool { return st != SCHEME_Implicit }

// Scheme returns the stepping function, rb only applies to the implicit sweep.
func (st SchemeType) Scheme(rb RightBoundary) Scheme {
	switch st {
	case SCHEME_Upwind:
		return UpwindScheme
	case SCHEME_Central:
		return CentralScheme
	case SCHEME_Implicit:
		return NewImplicitSweepScheme(rb)
	}
	panic(fmt.Errorf("unknown scheme type %d", st))
}

func NewSchemeType(label string) (st SchemeType) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if st, ok = SchemeNames[label]; !ok {
		panic(fmt.Errorf("unable to use scheme named %s, must be one of %v", label, sortedKeys(SchemeNames)))
	}
	return
}
