package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gofd/model_problems/Advection1D"
	"github.com/notargets/gofd/model_problems/Elliptic2D"
	"github.com/notargets/gofd/types"
)

// Parameters of a relaxation run obtained from the YAML input file
type Elliptic2DParameters struct {
	Title         string  `json:"Title"`
	Width         float64 `json:"Width"`
	Height        float64 `json:"Height"`
	N             int     `json:"Nx"` // YAML 1.1 reads a bare N key as false
	M             int     `json:"Ny"`
	Omega         float64 `json:"Omega"`
	Precision     float64 `json:"Precision"`
	MaxIterations int     `json:"MaxIterations"`
	Problem       string  `json:"Problem"`
	Frequency     float64 `json:"Frequency"`
}

func (ip *Elliptic2DParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *Elliptic2DParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f x %8.5f\t= Width x Height\n", ip.Width, ip.Height)
	fmt.Printf("[%d x %d]\t\t= Nx x Ny\n", ip.N, ip.M)
	fmt.Printf("%8.5f\t\t= Omega\n", ip.Omega)
	fmt.Printf("%8.2e\t\t= Precision\n", ip.Precision)
	fmt.Printf("[%d]\t\t\t= Max Iterations\n", ip.MaxIterations)
	fmt.Printf("[%s]\t\t= Problem\n", ip.Problem)
	fmt.Printf("%8.5f\t\t= Frequency\n", ip.Frequency)
}

func (ip *Elliptic2DParameters) Validate() (err error) {
	if !(ip.Omega > 0 && ip.Omega < 2) {
		err = fmt.Errorf("%w: omega = %v", Elliptic2D.ErrRelaxationFactor, ip.Omega)
		return
	}
	if !(ip.Width > 0 && ip.Height > 0) || ip.N < 1 || ip.M < 1 {
		err = fmt.Errorf("%w: width, height = %v, %v, n, m = %d, %d",
			Elliptic2D.ErrGridShape, ip.Width, ip.Height, ip.N, ip.M)
		return
	}
	if ip.Precision < 0 || ip.MaxIterations < 0 {
		err = fmt.Errorf("precision and max iterations must not be negative, have %v, %d",
			ip.Precision, ip.MaxIterations)
		return
	}
	if _, ok := Elliptic2D.ProblemNames[strings.ToLower(ip.Problem)]; !ok {
		err = fmt.Errorf("unknown problem %q", ip.Problem)
	}
	return
}

// Parameters of an advection run obtained from the YAML input file
type Advection1DParameters struct {
	Title      string   `json:"Title"`
	Length     float64  `json:"Length"`
	Time       float64  `json:"Time"`
	N          int      `json:"Nx"`
	M          int      `json:"Nt"`
	Speed      float64  `json:"Speed"`
	Pulse      string   `json:"Pulse"`
	Inflow     string   `json:"Inflow"`
	RightBC    string   `json:"RightBC"`
	RightValue float64  `json:"RightValue"`
	Schemes    []string `json:"Schemes"`
}

func (ip *Advection1DParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *Advection1DParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Length\n", ip.Length)
	fmt.Printf("%8.5f\t\t= Time\n", ip.Time)
	fmt.Printf("[%d x %d]\t\t= Nx x Nt\n", ip.N, ip.M)
	fmt.Printf("%8.5f\t\t= Speed\n", ip.Speed)
	fmt.Printf("[%s]\t\t= Pulse\n", ip.Pulse)
	fmt.Printf("[%s]\t= Inflow\n", ip.Inflow)
	fmt.Printf("[%s] %8.5f\t= Right BC\n", ip.RightBC, ip.RightValue)
	fmt.Printf("%v\t= Schemes\n", ip.Schemes)
}

func (ip *Advection1DParameters) Validate() (err error) {
	if !(ip.Length > 0 && ip.Time > 0) || ip.N < 2 || ip.M < 1 {
		err = fmt.Errorf("%w: length, time = %v, %v, n, m = %d, %d",
			Advection1D.ErrGridShape, ip.Length, ip.Time, ip.N, ip.M)
		return
	}
	if _, ok := Advection1D.PulseNames[strings.ToLower(ip.Pulse)]; !ok {
		err = fmt.Errorf("unknown pulse %q", ip.Pulse)
		return
	}
	inflow, ok := Advection1D.InflowNames[strings.ToLower(ip.Inflow)]
	if !ok {
		err = fmt.Errorf("unknown inflow %q", ip.Inflow)
		return
	}
	if inflow == Advection1D.INFLOW_Scaled && ip.Speed == 0 {
		err = fmt.Errorf("scaled inflow u0(-t/a) is undefined for zero speed")
		return
	}
	var bc types.BCFLAG
	if bc, err = types.NewBCFLAG(ip.RightBC); err != nil {
		return
	}
	if _, err = Advection1D.NewRightBoundary(bc, ip.RightValue); err != nil {
		return
	}
	if len(ip.Schemes) == 0 {
		err = fmt.Errorf("no schemes selected")
		return
	}
	for _, name := range ip.Schemes {
		if _, ok = Advection1D.SchemeNames[strings.ToLower(strings.TrimSpace(name))]; !ok {
			err = fmt.Errorf("unknown scheme %q", name)
			return
		}
	}
	return
}
