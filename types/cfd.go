package types

import (
	"fmt"
	"sort"
	"strings"
)

type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Dirichlet
	BC_Out
)

var BCNameMap = map[string]BCFLAG{
	"dirichlet": BC_Dirichlet,
	"fixed":     BC_Dirichlet,
	"out":       BC_Out,
	"outflow":   BC_Out,
}

var bcPrintNames = []string{"None", "Dirichlet", "Outflow"}

func (bc BCFLAG) String() string {
	if int(bc) < len(bcPrintNames) {
		return bcPrintNames[bc]
	}
	return fmt.Sprintf("BCFLAG(%d)", bc)
}

// NewBCFLAG looks up a boundary condition by its case-insensitive name.
func NewBCFLAG(label string) (bc BCFLAG, err error) {
	var (
		ok bool
	)
	if bc, ok = BCNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown boundary condition %q, must be one of %v", label, BCNames())
	}
	return
}

func BCNames() (names []string) {
	for name := range BCNameMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
