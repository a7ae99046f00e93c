package Elliptic2D

import (
	"errors"
	"fmt"

	"github.com/notargets/gofd/utils"
)

var (
	ErrRelaxationFactor = errors.New("relaxation factor must lie in (0, 2)")
	ErrGridShape        = errors.New("invalid grid shape")
)

// NodeFunc evaluates a boundary value or source term at node (i, j).
type NodeFunc func(i, j int, g *Grid) float64

// AnalyticFunc is a known solution sampled at physical coordinates.
type AnalyticFunc func(x, y float64) float64

// Problem bundles the functions that define one elliptic boundary value
// problem, nil members are treated as identically zero / absent.
type Problem struct {
	Name      string
	Boundary  NodeFunc
	Source    NodeFunc
	Reference AnalyticFunc
}

/*
Grid holds the field U on nodes (i, j), i in [0,n], j in [0,m], stored with
row j and column i. Boundary nodes are set once from the problem boundary
function and never change, interior nodes are relaxed in place by Solve.
*/
type Grid struct {
	width, height float64
	n, m          int
	omega         float64
	h, k          float64
	hStar, kStar  float64
	aStar         float64
	x, y          []float64
	problem       Problem
	U             utils.Matrix
	ref           utils.Matrix
	final         utils.Matrix
	accuracy      []float64
}

func NewGrid(width, height float64, n, m int, omega float64, p Problem) (g *Grid, err error) {
	if !(omega > 0 && omega < 2) {
		err = fmt.Errorf("%w: omega = %v", ErrRelaxationFactor, omega)
		return
	}
	if !(width > 0 && height > 0) || n < 1 || m < 1 {
		err = fmt.Errorf("%w: width, height = %v, %v, n, m = %d, %d", ErrGridShape, width, height, n, m)
		return
	}
	if p.Source == nil {
		p.Source = func(int, int, *Grid) float64 { return 0 }
	}
	g = &Grid{
		width:   width,
		height:  height,
		n:       n,
		m:       m,
		omega:   omega,
		h:       width / float64(n),
		k:       height / float64(m),
		x:       utils.Linspace(0, width, n+1),
		y:       utils.Linspace(0, height, m+1),
		problem: p,
		U:       utils.NewMatrix(m+1, n+1),
	}
	g.hStar = 1. / (g.h * g.h)
	g.kStar = 1. / (g.k * g.k)
	g.aStar = 2 * (g.hStar + g.kStar)
	if p.Boundary != nil {
		for j := 0; j <= m; j++ {
			for i := 0; i <= n; i++ {
				if g.IsBoundary(i, j) {
					g.U.Set(j, i, p.Boundary(i, j, g))
				}
			}
		}
	}
	if p.Reference != nil {
		g.ref = utils.NewMatrix(m+1, n+1)
		for j := 0; j <= m; j++ {
			for i := 0; i <= n; i++ {
				g.ref.Set(j, i, p.Reference(g.x[i], g.y[j]))
			}
		}
		g.ref.SetReadOnly("reference")
	}
	return
}

func (g *Grid) Get(i, j int) float64 { return g.U.At(j, i) }

func (g *Grid) IsBoundary(i, j int) bool {
	return i == 0 || i == g.n || j == 0 || j == g.m
}

func (g *Grid) N() int              { return g.n }
func (g *Grid) M() int              { return g.m }
func (g *Grid) H() float64          { return g.h }
func (g *Grid) K() float64          { return g.k }
func (g *Grid) Width() float64      { return g.width }
func (g *Grid) Height() float64     { return g.height }
func (g *Grid) Omega() float64      { return g.omega }
func (g *Grid) X(i int) float64     { return g.x[i] }
func (g *Grid) Y(j int) float64     { return g.y[j] }
func (g *Grid) XMesh() []float64    { return g.x }
func (g *Grid) YMesh() []float64    { return g.y }
func (g *Grid) Problem() Problem    { return g.problem }
func (g *Grid) Field() utils.Matrix { return g.U }
func (g *Grid) Accuracy() []float64 { return g.accuracy }
func (g *Grid) HasReference() bool  { return !g.ref.IsEmpty() }

// Final returns a copy of the snapshot taken at the end of the last Solve, it
// is empty until Solve has run.
func (g *Grid) Final() (R utils.Matrix) {
	if !g.final.IsEmpty() {
		R = g.final.Copy()
	}
	return
}

// Coefficients returns the stencil weights h* = 1/h^2, k* = 1/k^2, a* = 2(h*+k*).
func (g *Grid) Coefficients() (hStar, kStar, aStar float64) {
	return g.hStar, g.kStar, g.aStar
}
