package equib

import (
	"fmt"

	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/emissivity"
	"github.com/equib/prEQUIB/pkg/sweep"
)

// PopulationEval returns a sweep.Eval that solves for atom's normalized
// level populations at each swept (T_e, N_e), keyed "N1", "N2", ... by
// 1-based level index.
func PopulationEval(atom *atomdata.Atom) sweep.Eval {
	return func(te, ne float64) (map[string]float64, error) {
		n, err := Populations(te, ne, atom)
		if err != nil {
			return nil, err
		}
		values := make(map[string]float64, len(n))
		for i, ni := range n {
			values[fmt.Sprintf("N%d", i+1)] = ni
		}
		return values, nil
	}
}

// RatioEval returns a sweep.Eval that evaluates the upperSel/lowerSel line
// ratio of atom at each swept (T_e, N_e), keyed "RATIO", for building the
// excitation-diagram grids diagnostic.Temperature and diagnostic.Density
// invert.
func RatioEval(atom *atomdata.Atom, upperSel, lowerSel string) sweep.Eval {
	return func(te, ne float64) (map[string]float64, error) {
		n, err := Populations(te, ne, atom)
		if err != nil {
			return nil, err
		}
		ratio, err := emissivity.Ratio(n, atom.A, atom.Levels, upperSel, lowerSel)
		if err != nil {
			return nil, err
		}
		return map[string]float64{"RATIO": ratio}, nil
	}
}
