package Elliptic2D

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewGridValidation(t *testing.T) {
	cosine := NewProblem(PROBLEM_Cosine, 1)
	for _, omega := range []float64{0, 2, -0.5, 2.5, math.NaN(), math.Inf(1)} {
		g, err := NewGrid(1, 1, 10, 10, omega, cosine)
		assert.Nil(t, g)
		assert.Truef(t, errors.Is(err, ErrRelaxationFactor), "omega = %v, err = %v", omega, err)
	}
	for _, omega := range []float64{0.01, 1, 1.5, 1.99} {
		g, err := NewGrid(1, 1, 10, 10, omega, cosine)
		assert.NoError(t, err)
		assert.NotNil(t, g)
	}
	{
		_, err := NewGrid(0, 1, 10, 10, 1.5, cosine)
		assert.True(t, errors.Is(err, ErrGridShape))
		_, err = NewGrid(1, 1, 0, 10, 1.5, cosine)
		assert.True(t, errors.Is(err, ErrGridShape))
		_, err = NewGrid(1, -1, 10, 10, 1.5, cosine)
		assert.True(t, errors.Is(err, ErrGridShape))
	}
}

func TestGridConstruction(t *testing.T) {
	g, err := NewGrid(2, 1, 20, 5, 1.5, NewProblem(PROBLEM_Cosine, 1))
	require.NoError(t, err)
	assert.Equal(t, 20, g.N())
	assert.Equal(t, 5, g.M())
	assert.InDelta(t, 0.1, g.H(), 1.e-15)
	assert.InDelta(t, 0.2, g.K(), 1.e-15)
	hStar, kStar, aStar := g.Coefficients()
	assert.InDelta(t, 100, hStar, 1.e-9)
	assert.InDelta(t, 25, kStar, 1.e-9)
	assert.InDelta(t, 250, aStar, 1.e-9)
	assert.InDelta(t, 2, g.X(20), 1.e-15)
	assert.InDelta(t, 1, g.Y(5), 1.e-15)
	assert.Equal(t, 2., g.Width())
	assert.Equal(t, 1., g.Height())
	assert.Equal(t, 1.5, g.Omega())
	assert.Len(t, g.XMesh(), 21)
	assert.Len(t, g.YMesh(), 6)
	assert.Equal(t, g.X(7), g.XMesh()[7])
	assert.Equal(t, g.Y(3), g.YMesh()[3])
	nr, nc := g.Field().Dims()
	assert.Equal(t, 6, nr)
	assert.Equal(t, 21, nc)
	for j := 0; j <= g.M(); j++ {
		for i := 0; i <= g.N(); i++ {
			if g.IsBoundary(i, j) {
				want := math.Cos(math.Pi*float64(i)*g.H()) * math.Cos(math.Pi*float64(j)*g.K())
				assert.InDelta(t, want, g.Get(i, j), 1.e-15)
			} else {
				assert.Equal(t, 0., g.Get(i, j))
			}
		}
	}
	assert.True(t, g.Final().IsEmpty())
	assert.False(t, g.HasReference())
}

func TestSweepOrder(t *testing.T) {
	// Four interior nodes, unit boundary: the hand computed first sweep only
	// holds when each node reads its already updated left and lower neighbours.
	one := func(int, int, *Grid) float64 { return 1 }
	g, err := NewGrid(1, 1, 3, 3, 1, Problem{Boundary: one})
	require.NoError(t, err)
	r := g.Solve(0, 1)
	assert.Equal(t, 1, r.Iterations)
	assert.InDelta(t, 0.5, g.Get(1, 1), 1.e-15)
	assert.InDelta(t, 0.625, g.Get(2, 1), 1.e-15)
	assert.InDelta(t, 0.625, g.Get(1, 2), 1.e-15)
	assert.InDelta(t, 0.8125, g.Get(2, 2), 1.e-15)
	assert.InDelta(t, 0.8125, r.MaxDelta, 1.e-15)
	assert.Equal(t, []float64{r.MaxDelta}, g.Accuracy())
}

func TestBoundaryInvariance(t *testing.T) {
	g, err := NewGrid(1, 1, 12, 8, 1.7, NewProblem(PROBLEM_Cosine, 2))
	require.NoError(t, err)
	before := g.Field().Copy()
	g.Solve(1.e-10, 5000)
	final := g.Final()
	for j := 0; j <= g.M(); j++ {
		for i := 0; i <= g.N(); i++ {
			if g.IsBoundary(i, j) {
				assert.Equal(t, before.At(j, i), g.Get(i, j))
				assert.Equal(t, before.At(j, i), final.At(j, i))
			}
		}
	}
}

func TestHarmonicConvergence(t *testing.T) {
	// x^2 - y^2 is reproduced exactly by the five point stencil, so the only
	// error left is the iteration error.
	for _, omega := range []float64{0.5, 1, 1.5, 1.9} {
		g, err := NewGrid(1, 1, 10, 10, omega, NewProblem(PROBLEM_Harmonic, 0))
		require.NoError(t, err)
		r := g.Solve(1.e-13, 20000)
		assert.Truef(t, r.Converged, "omega = %v", omega)
		assert.True(t, r.HasReference)
		assert.Lessf(t, r.Error, 1.e-9, "omega = %v", omega)
	}
	{ // Unequal steps
		g, err := NewGrid(2, 1, 10, 20, 1.6, NewProblem(PROBLEM_Harmonic, 0))
		require.NoError(t, err)
		r := g.Solve(1.e-13, 20000)
		assert.True(t, r.Converged)
		assert.Less(t, r.Error, 1.e-9)
	}
	{ // Tighter precision gives a smaller error
		g1, _ := NewGrid(1, 1, 10, 10, 1.2, NewProblem(PROBLEM_Harmonic, 0))
		g2, _ := NewGrid(1, 1, 10, 10, 1.2, NewProblem(PROBLEM_Harmonic, 0))
		r1 := g1.Solve(1.e-4, 20000)
		r2 := g2.Solve(1.e-10, 20000)
		assert.Less(t, r2.Error, r1.Error)
		assert.Greater(t, r2.Iterations, r1.Iterations)
	}
}

func TestCosineScenario(t *testing.T) {
	g, err := NewGrid(1, 1, 20, 20, 1.5, NewProblem(PROBLEM_Cosine, 1))
	require.NoError(t, err)
	r := g.Solve(1.e-14, 10000)
	assert.True(t, r.Converged)
	assert.Less(t, r.Iterations, 2000)
	assert.LessOrEqual(t, r.MaxDelta, 1.e-14)
	assert.Len(t, g.Accuracy(), r.Iterations)
	assert.False(t, r.HasReference)

	// Compare with a direct solve of the same five point system
	direct := solveDirect(t, g)
	var maxErr float64
	for j := 0; j <= g.M(); j++ {
		for i := 0; i <= g.N(); i++ {
			maxErr = math.Max(maxErr, math.Abs(direct.At(j, i)-g.Get(i, j)))
		}
	}
	assert.Less(t, maxErr, 1.e-12)
	assert.Less(t, g.Residual(), 1.e-8)

	// cos(pi (1-x)) = -cos(pi x), the solution is odd about x = 1/2
	for j := 0; j <= g.M(); j++ {
		for i := 0; i <= g.N(); i++ {
			assert.InDelta(t, -g.Get(i, j), g.Get(g.N()-i, j), 1.e-12)
		}
	}
}

func TestNonConvergence(t *testing.T) {
	g, err := NewGrid(1, 1, 20, 20, 1.5, NewProblem(PROBLEM_Cosine, 1))
	require.NoError(t, err)
	r := g.Solve(1.e-14, 3)
	assert.False(t, r.Converged)
	assert.Equal(t, 3, r.Iterations)
	assert.Equal(t, 3, r.MaxIterations)
	assert.Greater(t, r.MaxDelta, 1.e-14)
	assert.Len(t, g.Accuracy(), 3)
	assert.Equal(t, g.Accuracy()[2], r.MaxDelta)
	assert.False(t, g.Final().IsEmpty())

	r = g.Solve(1.e-14, 0)
	assert.Equal(t, 0, r.Iterations)
	assert.True(t, math.IsInf(r.MaxDelta, 1))
	assert.False(t, r.Converged)
	assert.Empty(t, g.Accuracy())
}

func TestFinalIsACopy(t *testing.T) {
	g, err := NewGrid(1, 1, 6, 6, 1.5, NewProblem(PROBLEM_Cosine, 1))
	require.NoError(t, err)
	g.Solve(1.e-10, 500)
	want := g.Final().At(2, 3)
	f := g.Final()
	f.RawRow(2)[3] = want + 10
	f.Data()[0] = 99
	assert.Equal(t, want, g.Final().At(2, 3))
	assert.NotEqual(t, 99., g.Final().At(0, 0))
	// The live field is untouched as well.
	assert.Equal(t, want, g.Get(3, 2))
}

func TestAccuracyHistory(t *testing.T) {
	g, err := NewGrid(1, 1, 16, 16, 1.3, NewProblem(PROBLEM_Poisson, 0))
	require.NoError(t, err)
	r := g.Solve(1.e-12, 10000)
	acc := g.Accuracy()
	require.Len(t, acc, r.Iterations)
	assert.LessOrEqual(t, r.Iterations, 10000)
	for i, d := range acc[:len(acc)-1] {
		assert.Greaterf(t, d, 1.e-12, "iteration %d stopped late", i)
	}
	assert.LessOrEqual(t, acc[len(acc)-1], 1.e-12)
}

func TestReferenceMismatch(t *testing.T) {
	u := func(x, y float64) float64 {
		if x > 0.5 {
			return math.NaN()
		}
		return x*x - y*y
	}
	p := NewProblem(PROBLEM_Harmonic, 0)
	p.Reference = u
	g, err := NewGrid(1, 1, 10, 10, 1.5, p)
	require.NoError(t, err)
	r := g.Solve(1.e-13, 10000)
	assert.False(t, math.IsNaN(r.Error))
	assert.Less(t, r.Error, 1.e-9)

	p.Reference = func(float64, float64) float64 { return math.NaN() }
	g, err = NewGrid(1, 1, 10, 10, 1.5, p)
	require.NoError(t, err)
	r = g.Solve(1.e-13, 10000)
	assert.True(t, math.IsNaN(r.Error))
}

func TestPoissonOrder(t *testing.T) {
	var errs []float64
	for _, n := range []int{8, 16, 32} {
		g, err := NewGrid(1, 1, n, n, 1.8, NewProblem(PROBLEM_Poisson, 0))
		require.NoError(t, err)
		r := g.Solve(1.e-13, 50000)
		require.True(t, r.Converged)
		errs = append(errs, r.Error)
	}
	assert.Less(t, errs[0], 0.02)
	for i := 1; i < len(errs); i++ {
		ratio := errs[i-1] / errs[i]
		assert.Truef(t, ratio > 3.5 && ratio < 4.5, "second order ratio, have %v", ratio)
	}
}

func TestReporting(t *testing.T) {
	g, err := NewGrid(1, 1, 4, 4, 1.5, NewProblem(PROBLEM_Harmonic, 0))
	require.NoError(t, err)
	_, err = g.Table(4, 1)
	assert.Error(t, err)
	assert.Error(t, g.PlotContour(filepath.Join(t.TempDir(), "none.png"), 5))

	r := g.Solve(1.e-12, 1000)
	txt, err := g.Table(4, 1)
	require.NoError(t, err)
	assert.Contains(t, txt, "Y\\X")
	assert.Contains(t, txt, "0.50")
	assert.Contains(t, txt, "-1.0000") // u(0, 1)
	assert.Contains(t, txt, "┌")
	_, err = g.Table(4, 0)
	assert.Error(t, err)
	strided, err := g.Table(2, 2)
	require.NoError(t, err)
	assert.Less(t, len(strided), len(txt))

	summary := SummaryTable(r)
	assert.Contains(t, summary, "Iterations")
	assert.Contains(t, summary, "converged")

	chart := ConvergenceChart(g.Accuracy(), 40, 6)
	assert.Contains(t, chart, "log10(max delta)")
	assert.Empty(t, ConvergenceChart(nil, 40, 6))

	file := filepath.Join(t.TempDir(), "contour.png")
	require.NoError(t, g.PlotContour(file, 8))
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestProblemNames(t *testing.T) {
	assert.Equal(t, PROBLEM_Poisson, NewProblemType("Poisson"))
	assert.Equal(t, PROBLEM_Cosine, NewProblemType("cosine"))
	assert.Panics(t, func() { NewProblemType("helmholtz") })
	assert.Contains(t, PROBLEM_Harmonic.Print(), "x^2 - y^2")
}

func TestContourLevels(t *testing.T) {
	assert.Equal(t, []float64{0.25, 0.5, 0.75}, contourLevels(0, 1, 3))
	assert.Empty(t, contourLevels(1, 1, 3))
	assert.Empty(t, contourLevels(0, 1, 0))

	levels := offNodeLevels([]float64{-0.5, 0, 0.5}, []float64{0, 1, 0.25})
	assert.Equal(t, -0.5, levels[0])
	assert.Greater(t, levels[1], 0.)
	assert.Less(t, levels[1], 1.e-3)
	assert.Equal(t, 0.5, levels[2])
	assert.Empty(t, offNodeLevels(nil, []float64{0}))
}

func TestContourThroughNodes(t *testing.T) {
	// x^2 - y^2 is exactly zero along the diagonal, the middle of 5 levels is 0
	g, err := NewGrid(1, 1, 10, 10, 1.5, NewProblem(PROBLEM_Harmonic, 0))
	require.NoError(t, err)
	g.Solve(1.e-10, 5000)
	file := filepath.Join(t.TempDir(), "harmonic.png")
	assert.NotPanics(t, func() { err = g.PlotContour(file, 5) })
	require.NoError(t, err)
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// solveDirect assembles the interior five point system and solves it densely.
func solveDirect(t *testing.T, g *Grid) *mat.Dense {
	var (
		n, m                = g.N(), g.M()
		ni, nj              = n - 1, m - 1
		N                   = ni * nj
		A                   = mat.NewDense(N, N, nil)
		b                   = mat.NewVecDense(N, nil)
		x                   mat.VecDense
		hStar, kStar, aStar = g.Coefficients()
		source              = g.Problem().Source
	)
	idx := func(i, j int) int { return (j-1)*ni + (i - 1) }
	for j := 1; j < m; j++ {
		for i := 1; i < n; i++ {
			row := idx(i, j)
			A.Set(row, row, aStar)
			rhs := 0.
			if source != nil {
				rhs = source(i, j, g)
			}
			for _, nb := range [][3]float64{{-1, 0, hStar}, {1, 0, hStar}, {0, -1, kStar}, {0, 1, kStar}} {
				ii, jj := i+int(nb[0]), j+int(nb[1])
				if g.IsBoundary(ii, jj) {
					rhs += nb[2] * g.Get(ii, jj)
				} else {
					A.Set(row, idx(ii, jj), -nb[2])
				}
			}
			b.SetVec(row, rhs)
		}
	}
	require.NoError(t, x.SolveVec(A, b))
	U := mat.NewDense(m+1, n+1, nil)
	for j := 0; j <= m; j++ {
		for i := 0; i <= n; i++ {
			if g.IsBoundary(i, j) {
				U.Set(j, i, g.Get(i, j))
			} else {
				U.Set(j, i, x.AtVec(idx(i, j)))
			}
		}
	}
	return U
}
