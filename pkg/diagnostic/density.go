package diagnostic

import (
	"fmt"

	"github.com/equib/prEQUIB/internal/consts"
	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/emissivity"
	"github.com/equib/prEQUIB/pkg/rateeq"
)

// Density inverts an observed line ratio into N_e at fixed T_e (spec §6's
// density operation). Its initial anchor is 0, floored to 1 cm^-3 at every
// evaluation (spec §4.5/§9): the smallest resolvable density is set by the
// first pass's grid spacing, not by the anchor itself.
func Density(ratio, te float64, upperSel, lowerSel string, levels atomdata.EnergyLevels, om *atomdata.OmegaTable, a atomdata.TransitionProbs) (float64, error) {
	if ratio <= 0 {
		return 0, fmt.Errorf("diagnostic: non-positive observed ratio %g", ratio)
	}
	if te <= 0 {
		return 0, fmt.Errorf("diagnostic: non-positive electron temperature %g", te)
	}

	lmax := emissivity.MaxLevel(upperSel, lowerSel)
	if lmax == 0 {
		return 0, fmt.Errorf("diagnostic: empty or malformed selection (upper=%q lower=%q)", upperSel, lowerSel)
	}
	if lmax > levels.Len() {
		return 0, fmt.Errorf("diagnostic: selection references level %d beyond L=%d", lmax, levels.Len())
	}

	eval := func(ne float64) (float64, error) {
		n, err := rateeq.Populations(te, ne, levels, om, a, lmax)
		if err != nil {
			return 0, err
		}
		return emissivity.Ratio(n, a, levels, upperSel, lowerSel)
	}

	return bracketSearch(consts.DensityAnchor0, consts.DensityWindow, consts.MinDensity, ratio, eval)
}
