package Advection1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

type StudyConfig struct {
	Length, FinalTime float64
	Speed, Courant    float64
	N0, Levels        int
	U0                Profile
	Inflow            BoundaryType
}

type StudyPoint struct {
	N, Steps   int
	H, Tau     float64
	L1, MaxErr float64
}

/*
ConvergenceStudy runs scheme on cfg.Levels grids, doubling the number of
spatial points each level starting from cfg.N0. The time step follows from
the target Courant number, rounded down so that an integral number of steps
reaches cfg.FinalTime exactly. Errors are taken on the last row against the
transported initial profile.
*/
func ConvergenceStudy(scheme Scheme, cfg StudyConfig) (points []StudyPoint, err error) {
	if cfg.U0 == nil || cfg.N0 < 2 || cfg.Levels < 1 || cfg.Speed == 0 || !(cfg.Courant > 0) || !(cfg.FinalTime > 0) {
		err = fmt.Errorf("%w: study needs a profile, n0 >= 2, levels >= 1, nonzero speed, positive courant and time, have %+v",
			ErrGridShape, cfg)
		return
	}
	for l := 0; l < cfg.Levels; l++ {
		var (
			n     = cfg.N0 << l
			h     = cfg.Length / float64(n)
			steps = int(math.Ceil(cfg.FinalTime / (cfg.Courant * h / math.Abs(cfg.Speed))))
			tau   = cfg.FinalTime / float64(steps)
			g     *Grid
		)
		if g, err = NewGrid(cfg.Length, float64(steps+1)*tau, n, steps+1, cfg.U0,
			NewInflow(cfg.U0, cfg.Speed, cfg.Inflow)); err != nil {
			return
		}
		g.Solve(scheme, cfg.Speed)
		ref := g.Precise(cfg.U0, cfg.Speed, steps)
		points = append(points, StudyPoint{
			N:      n,
			Steps:  steps,
			H:      g.H,
			Tau:    g.Tau,
			L1:     L1Error(g.U, steps, ref, g.H),
			MaxErr: MaxError(g.U, steps, ref),
		})
	}
	return
}

// ObservedOrders returns log(e[i-1]/e[i]) / log(h[i-1]/h[i]) of the L1 error
// for each consecutive pair of points.
func ObservedOrders(points []StudyPoint) (orders []float64) {
	for i := 1; i < len(points); i++ {
		orders = append(orders,
			math.Log(points[i-1].L1/points[i].L1)/math.Log(points[i-1].H/points[i].H))
	}
	return
}

var StudyHeader = []string{"N", "Steps", "h", "tau", "L1", "Max"}

// WriteStudyCSV writes a title comment line followed by one record per point.
func WriteStudyCSV(w io.Writer, title string, points []StudyPoint) (err error) {
	if _, err = fmt.Fprintf(w, "# %s\n", title); err != nil {
		return
	}
	cw := csv.NewWriter(w)
	if err = cw.Write(StudyHeader); err != nil {
		return
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }
	for _, p := range points {
		if err = cw.Write([]string{
			strconv.Itoa(p.N), strconv.Itoa(p.Steps), ff(p.H), ff(p.Tau), ff(p.L1), ff(p.MaxErr),
		}); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
