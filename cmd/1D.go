/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofd/InputParameters"
	"github.com/notargets/gofd/model_problems/Advection1D"
	"github.com/notargets/gofd/types"
	"github.com/notargets/gofd/utils"
)

type Model1D struct {
	ICFile      string
	PlotFile    string
	Frame       int // Negative selects the last row
	Graph       bool
	Delay       time.Duration
	StudyFile   string
	StudyLevels int
	IP          InputParameters.Advection1DParameters
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional linear advection with finite difference schemes",
	Long: `
Transports an initial pulse u0(x) with speed a over a length x time grid of
n points and m time rows, using any of the upwind, central and implicit sweep
(Crank-Nicolson) schemes, and compares the result to the exact u0(x - a t).

gofd 1D --pulse parabola --speed 2 --schemes upwind,implicit --plotFile frame.png`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			m1d *Model1D
		)
		if m1d, err = processInput1D(); err != nil {
			return
		}
		_, err = Run1D(m1d)
		return
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the run parameters, overrides flags and config")
	OneDCmd.Flags().Float64("length", 15, "domain length")
	OneDCmd.Flags().Float64("time", 10, "time span covered by the grid")
	OneDCmd.Flags().IntP("n", "n", 150, "number of spatial points")
	OneDCmd.Flags().IntP("m", "m", 200, "number of time rows")
	OneDCmd.Flags().Float64P("speed", "a", 2, "advection speed")
	OneDCmd.Flags().String("pulse", "parabola", "initial pulse: rectangle, triangle, sine or parabola")
	OneDCmd.Flags().String("inflow", "scaled", "inflow at x = 0: characteristic u0(-a t), scaled u0(-t/a) or zero")
	OneDCmd.Flags().String("rightBC", "outflow", "right end of the implicit sweep: outflow or dirichlet")
	OneDCmd.Flags().Float64("rightValue", 0, "value held by a dirichlet right end")
	OneDCmd.Flags().StringSlice("schemes", []string{"upwind", "central", "implicit"}, "schemes to run")
	OneDCmd.Flags().String("plotFile", "", "write one frame with every scheme and the exact profile")
	OneDCmd.Flags().Int("frame", -1, "time row written to the plot file, negative for the last")
	OneDCmd.Flags().BoolP("graph", "g", false, "animate the solution while replaying the rows")
	OneDCmd.Flags().IntP("delay", "d", 30, "milliseconds of delay between animation frames")
	OneDCmd.Flags().String("studyFile", "", "write a grid convergence study as CSV")
	OneDCmd.Flags().Int("studyLevels", 4, "number of doubled grids in the study")
	bindFlags("1D", OneDCmd)
}

func processInput1D() (m1d *Model1D, err error) {
	m1d = &Model1D{
		ICFile:      viper.GetString("1D.inputConditionsFile"),
		PlotFile:    viper.GetString("1D.plotFile"),
		Frame:       viper.GetInt("1D.frame"),
		Graph:       viper.GetBool("1D.graph"),
		Delay:       time.Duration(viper.GetInt("1D.delay")) * time.Millisecond,
		StudyFile:   viper.GetString("1D.studyFile"),
		StudyLevels: viper.GetInt("1D.studyLevels"),
		IP: InputParameters.Advection1DParameters{
			Title:      "gofd 1D",
			Length:     viper.GetFloat64("1D.length"),
			Time:       viper.GetFloat64("1D.time"),
			N:          viper.GetInt("1D.n"),
			M:          viper.GetInt("1D.m"),
			Speed:      viper.GetFloat64("1D.speed"),
			Pulse:      viper.GetString("1D.pulse"),
			Inflow:     viper.GetString("1D.inflow"),
			RightBC:    viper.GetString("1D.rightBC"),
			RightValue: viper.GetFloat64("1D.rightValue"),
			Schemes:    viper.GetStringSlice("1D.schemes"),
		},
	}
	if len(m1d.ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(m1d.ICFile); err != nil {
			return
		}
		if err = m1d.IP.Parse(data); err != nil {
			err = fmt.Errorf("unable to parse %s: %w", m1d.ICFile, err)
			return
		}
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		m1d.IP.Print()
	}
	err = m1d.IP.Validate()
	return
}

// Run1D solves every selected scheme on its own grid, the grids are returned
// in the order the schemes were given.
func Run1D(m1d *Model1D) (grids []*Advection1D.Grid, err error) {
	var (
		ip      = m1d.IP
		u0      = Advection1D.NewPulseType(ip.Pulse).Profile()
		mu      = Advection1D.NewInflow(u0, ip.Speed, Advection1D.NewBoundaryType(ip.Inflow))
		schemes = make([]Advection1D.SchemeType, len(ip.Schemes))
		bc      types.BCFLAG
		rb      Advection1D.RightBoundary
	)
	if len(schemes) == 0 {
		err = fmt.Errorf("no schemes selected")
		return
	}
	if bc, err = types.NewBCFLAG(ip.RightBC); err != nil {
		return
	}
	if rb, err = Advection1D.NewRightBoundary(bc, ip.RightValue); err != nil {
		return
	}
	for i, name := range ip.Schemes {
		schemes[i] = Advection1D.NewSchemeType(strings.TrimSpace(name))
		if schemes[i].Explicit() {
			h, tau := ip.Length/float64(ip.N), ip.Time/float64(ip.M)
			if err = Advection1D.CheckCourant(ip.Speed, h, tau); err != nil {
				err = fmt.Errorf("%s scheme: %w", name, err)
				return
			}
		}
	}
	for _, st := range schemes {
		var g *Advection1D.Grid
		if g, err = Advection1D.NewGrid(ip.Length, ip.Time, ip.N, ip.M, u0, mu); err != nil {
			return
		}
		g.Solve(st.Scheme(rb), ip.Speed)
		last := g.M() - 1
		ref := g.Precise(u0, ip.Speed, last)
		logger.WithFields(logrus.Fields{
			"scheme":  st.Print(),
			"courant": g.Courant(ip.Speed),
			"time":    float64(last) * g.Tau,
			"L1":      Advection1D.L1Error(g.U, last, ref, g.H),
			"max":     Advection1D.MaxError(g.U, last, ref),
		}).Info("final row error against the exact profile")
		grids = append(grids, g)
	}
	if len(m1d.PlotFile) != 0 {
		if err = plotFrame(m1d, schemes, grids, u0); err != nil {
			return
		}
	}
	if len(m1d.StudyFile) != 0 {
		if err = study(m1d, schemes, rb, u0, grids[0]); err != nil {
			return
		}
	}
	if m1d.Graph {
		animate(m1d, schemes, grids, u0)
	}
	return
}

func plotFrame(m1d *Model1D, schemes []Advection1D.SchemeType, grids []*Advection1D.Grid,
	u0 Advection1D.Profile) (err error) {
	var (
		g      = grids[0]
		frame  = m1d.Frame
		series = make(map[string][]float64)
	)
	if frame < 0 || frame >= g.M() {
		frame = g.M() - 1
	}
	for i, st := range schemes {
		series[st.Print()] = grids[i].Row(frame)
	}
	series["Exact"] = g.Precise(u0, m1d.IP.Speed, frame)
	title := fmt.Sprintf("%s, a = %g, t = %.3f", m1d.IP.Pulse, m1d.IP.Speed, float64(frame)*g.Tau)
	if err = Advection1D.PlotProfiles(m1d.PlotFile, title, g.X(), series); err != nil {
		return
	}
	logger.WithFields(logrus.Fields{"file": m1d.PlotFile, "frame": frame}).Info("profile plot written")
	return
}

func study(m1d *Model1D, schemes []Advection1D.SchemeType, rb Advection1D.RightBoundary,
	u0 Advection1D.Profile, g *Advection1D.Grid) (err error) {
	var (
		ip  = m1d.IP
		cfg = Advection1D.StudyConfig{
			Length:    ip.Length,
			FinalTime: float64(g.M()-1) * g.Tau,
			Speed:     ip.Speed,
			Courant:   g.Courant(ip.Speed),
			N0:        ip.N,
			Levels:    m1d.StudyLevels,
			U0:        u0,
			Inflow:    Advection1D.NewBoundaryType(ip.Inflow),
		}
		f *os.File
	)
	if f, err = os.Create(m1d.StudyFile); err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	for _, st := range schemes {
		var points []Advection1D.StudyPoint
		if points, err = Advection1D.ConvergenceStudy(st.Scheme(rb), cfg); err != nil {
			return
		}
		if err = Advection1D.WriteStudyCSV(f, st.Print(), points); err != nil {
			return
		}
		logger.WithFields(logrus.Fields{
			"scheme": st.Print(),
			"orders": Advection1D.ObservedOrders(points),
		}).Info("observed L1 convergence orders")
	}
	logger.WithField("file", m1d.StudyFile).Info("convergence study written")
	return
}

func animate(m1d *Model1D, schemes []Advection1D.SchemeType, grids []*Advection1D.Grid, u0 Advection1D.Profile) {
	var (
		names  []string
		fields []utils.Matrix
		fmin   = math.Inf(1)
		fmax   = math.Inf(-1)
	)
	for i, st := range schemes {
		names = append(names, st.Print())
		fields = append(fields, grids[i].U)
	}
	names = append(names, "Exact")
	fields = append(fields, grids[0].PreciseField(u0, m1d.IP.Speed))
	for _, f := range fields {
		fmin, fmax = math.Min(fmin, f.Min()), math.Max(fmax, f.Max())
	}
	pad := math.Max(0.1*(fmax-fmin), 0.1)
	an := Advection1D.NewAnimator(grids[0].X(), fmin-pad, fmax+pad, m1d.Delay)
	an.Run(names, fields)
}
