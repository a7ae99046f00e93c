package Elliptic2D

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type ProblemType uint

const (
	PROBLEM_Cosine ProblemType = iota
	PROBLEM_Harmonic
	PROBLEM_Poisson
)

var (
	ProblemNames = map[string]ProblemType{
		"cosine":   PROBLEM_Cosine,
		"harmonic": PROBLEM_Harmonic,
		"poisson":  PROBLEM_Poisson,
	}
	ProblemPrintNames = []string{
		"Laplace, boundary cos(pi k x)cos(pi k y)",
		"Laplace, boundary and solution x^2 - y^2",
		"Poisson, f = 2 pi^2 sin(pi x)sin(pi y), solution sin(pi x)sin(pi y)",
	}
)

func (pt ProblemType) Print() (txt string) {
	txt = ProblemPrintNames[pt]
	return
}

func NewProblemType(label string) (pt ProblemType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if pt, ok = ProblemNames[label]; !ok {
		names := make([]string, 0, len(ProblemNames))
		for name := range ProblemNames {
			names = append(names, name)
		}
		sort.Strings(names)
		err = fmt.Errorf("unable to use problem named %s, must be one of %v", label, names)
		panic(err)
	}
	return
}

// NewProblem builds the boundary, source and reference functions of a preset.
// frequency is the k in cos(pi k x)cos(pi k y) and is ignored by the others.
func NewProblem(pt ProblemType, frequency float64) (p Problem) {
	p.Name = pt.Print()
	switch pt {
	case PROBLEM_Cosine:
		p.Boundary = func(i, j int, g *Grid) float64 {
			x, y := float64(i)*g.H(), float64(j)*g.K()
			return math.Cos(math.Pi*frequency*x) * math.Cos(math.Pi*frequency*y)
		}
	case PROBLEM_Harmonic:
		u := func(x, y float64) float64 { return x*x - y*y }
		p.Boundary = func(i, j int, g *Grid) float64 { return u(g.X(i), g.Y(j)) }
		p.Reference = u
	case PROBLEM_Poisson:
		p.Source = func(i, j int, g *Grid) float64 {
			return 2 * math.Pi * math.Pi * math.Sin(math.Pi*g.X(i)) * math.Sin(math.Pi*g.Y(j))
		}
		p.Reference = func(x, y float64) float64 {
			return math.Sin(math.Pi*x) * math.Sin(math.Pi*y)
		}
	default:
		panic(fmt.Errorf("unknown problem type %d", pt))
	}
	return
}
