package Advection1D

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type PulseType uint

const (
	PULSE_Rectangle PulseType = iota
	PULSE_Triangle
	PULSE_Sine
	PULSE_Parabola
)

var (
	PulseNames = map[string]PulseType{
		"rectangle": PULSE_Rectangle,
		"triangle":  PULSE_Triangle,
		"sine":      PULSE_Sine,
		"parabola":  PULSE_Parabola,
	}
	PulsePrintNames = []string{
		"Rectangular pulse, 1 on [1,2]",
		"Triangular pulse, peak 1 at x = 1.5 on [1,2]",
		"Sinusoidal pulse, (1+sin(2pi(x-1)-pi/2))/2 on [1,2]",
		"Half parabola, 1-x^2 on [0,1]",
	}
	pulseProfiles = []Profile{
		func(x float64) float64 {
			if x >= 1 && x <= 2 {
				return 1
			}
			return 0
		},
		func(x float64) float64 {
			switch {
			case x < 1 || x > 2:
				return 0
			case x < 1.5:
				return 2 * (x - 1)
			default:
				return 1 - 2*(x-1.5)
			}
		},
		func(x float64) float64 {
			if x < 1 || x > 2 {
				return 0
			}
			return 0.5 * (1 + math.Sin(2*math.Pi*(x-1)-math.Pi/2))
		},
		func(x float64) float64 {
			if x < 0 || x > 1 {
				return 0
			}
			return 1 - x*x
		},
	}
)

func (pt PulseType) Print() (txt string) {
	txt = PulsePrintNames[pt]
	return
}

func (pt PulseType) Profile() Profile {
	return pulseProfiles[pt]
}

func NewPulseType(label string) (pt PulseType) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if pt, ok = PulseNames[label]; !ok {
		panic(fmt.Errorf("unable to use pulse named %s, must be one of %v", label, sortedKeys(PulseNames)))
	}
	return
}

// BoundaryType selects how the inflow value at x = 0 is derived from u0.
type BoundaryType uint

const (
	INFLOW_Characteristic BoundaryType = iota // u0(-a t), the exact solution
	INFLOW_Scaled                             // u0(-t/a)
	INFLOW_Zero
)

var (
	InflowNames = map[string]BoundaryType{
		"characteristic": INFLOW_Characteristic,
		"scaled":         INFLOW_Scaled,
		"zero":           INFLOW_Zero,
	}
	InflowPrintNames = []string{
		"Characteristic inflow, u0(-a t)",
		"Scaled inflow, u0(-t/a)",
		"Zero inflow",
	}
)

func (bt BoundaryType) Print() (txt string) {
	txt = InflowPrintNames[bt]
	return
}

func NewBoundaryType(label string) (bt BoundaryType) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if bt, ok = InflowNames[label]; !ok {
		panic(fmt.Errorf("unable to use inflow named %s, must be one of %v", label, sortedKeys(InflowNames)))
	}
	return
}

// NewInflow builds the boundary function for column 0. The scaled form
// divides by a and yields NaN or infinite arguments for a = 0.
func NewInflow(u0 Profile, a float64, bt BoundaryType) (mu Boundary) {
	switch bt {
	case INFLOW_Characteristic:
		mu = func(t float64) float64 { return u0(-a * t) }
	case INFLOW_Scaled:
		mu = func(t float64) float64 { return u0(-t / a) }
	case INFLOW_Zero:
		mu = func(float64) float64 { return 0 }
	default:
		panic(fmt.Errorf("unknown inflow type %d", bt))
	}
	return
}

func sortedKeys[T any](m map[string]T) (keys []string) {
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
