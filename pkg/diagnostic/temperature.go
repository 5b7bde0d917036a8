package diagnostic

import (
	"fmt"

	"github.com/equib/prEQUIB/internal/consts"
	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/emissivity"
	"github.com/equib/prEQUIB/pkg/rateeq"
)

// Temperature inverts an observed line ratio into T_e at fixed N_e (spec
// §6's temperature operation), evaluating R via C3/C4/C5 at each bracket
// sample. ratio must be positive; on any precondition failure (non-positive
// ratio/N_e, malformed selections, atomic data missing the referenced
// levels) it reports the error and returns 0.
func Temperature(ratio, ne float64, upperSel, lowerSel string, levels atomdata.EnergyLevels, om *atomdata.OmegaTable, a atomdata.TransitionProbs) (float64, error) {
	if ratio <= 0 {
		return 0, fmt.Errorf("diagnostic: non-positive observed ratio %g", ratio)
	}
	if ne <= 0 {
		return 0, fmt.Errorf("diagnostic: non-positive electron density %g", ne)
	}

	lmax := emissivity.MaxLevel(upperSel, lowerSel)
	if lmax == 0 {
		return 0, fmt.Errorf("diagnostic: empty or malformed selection (upper=%q lower=%q)", upperSel, lowerSel)
	}
	if lmax > levels.Len() {
		return 0, fmt.Errorf("diagnostic: selection references level %d beyond L=%d", lmax, levels.Len())
	}

	eval := func(te float64) (float64, error) {
		n, err := rateeq.Populations(te, ne, levels, om, a, lmax)
		if err != nil {
			return 0, err
		}
		return emissivity.Ratio(n, a, levels, upperSel, lowerSel)
	}

	return bracketSearch(consts.TemperatureAnchor0, consts.TemperatureWindow, consts.MinTemperature, ratio, eval)
}
