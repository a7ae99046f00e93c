package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readStudies(bufio.NewReader(f))
	if err != nil {
		panic(err)
	}
	for _, cs := range studies {
		fmt.Printf("Title = %s\n", cs.title)
		l1Order, maxOrder := cs.Orders()
		fmt.Printf("%6s, %10s, %12s, %12s, %8s, %8s\n", "N", "h", "L1", "Max", "L1 ord", "Max ord")
		for i := range cs.numPTS {
			o1, o2 := "", ""
			if i > 0 {
				o1, o2 = fmt.Sprintf("%8.3f", l1Order[i-1]), fmt.Sprintf("%8.3f", maxOrder[i-1])
			}
			fmt.Printf("%6d, %10.4g, %12.5e, %12.5e, %8s, %8s\n",
				cs.numPTS[i], cs.h[i], cs.l1[i], cs.max[i], o1, o2)
		}
	}
}

type ConvergenceStudy struct {
	title      string
	numPTS     []int
	h, l1, max []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, h, l1, maxErr float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.h = append(cs.h, h)
	cs.l1 = append(cs.l1, l1)
	cs.max = append(cs.max, maxErr)
}

// Orders returns the observed order between each pair of consecutive grids.
func (cs *ConvergenceStudy) Orders() (l1Order, maxOrder []float64) {
	for i := 1; i < len(cs.h); i++ {
		dh := math.Log(cs.h[i-1] / cs.h[i])
		l1Order = append(l1Order, math.Log(cs.l1[i-1]/cs.l1[i])/dh)
		maxOrder = append(maxOrder, math.Log(cs.max[i-1]/cs.max[i])/dh)
	}
	return
}

// readStudies parses blocks of "# title", a header and N,Steps,h,tau,L1,Max records.
func readStudies(rd io.Reader) (studies []*ConvergenceStudy, err error) {
	var (
		records     [][]string
		cs          *ConvergenceStudy
		npts        int
		h, l1, maxE float64
	)
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		switch {
		case strings.HasPrefix(rec[0], "#"):
			cs = NewConvergenceStudy(strings.TrimSpace(strings.TrimPrefix(rec[0], "#")))
			studies = append(studies, cs)
			continue
		case rec[0] == "N":
			continue
		case cs == nil || len(rec) != 6:
			err = fmt.Errorf("line %d: unexpected record %v", i+1, rec)
			return
		}
		if npts, err = strconv.Atoi(rec[0]); err != nil {
			return
		}
		if h, err = strconv.ParseFloat(rec[2], 64); err != nil {
			return
		}
		if l1, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return
		}
		if maxE, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return
		}
		cs.Add(npts, h, l1, maxE)
	}
	return
}
