package recomb

import (
	"fmt"

	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/hbeta"
	"github.com/equib/prEQUIB/pkg/wavelength"
)

// PorterHeI evaluates the Porter et al. He I fit, a 2-D (T, N) grid per
// published line index (spec §4.7), e.g. line index 10 -> 4471.50 Angstrom.
type PorterHeI struct {
	Grid *atomdata.PorterHeIGrid
	Line int
}

var _ Evaluator = PorterHeI{}

// Emiss implements Evaluator.
func (e PorterHeI) Emiss(te, ne float64) (float64, error) {
	return EmissHeI(te, ne, e.Line, e.Grid)
}

// EmissHeI interpolates the (T, N) grid for the requested line index and
// converts the resulting effective-recombination coefficient to an
// emissivity via its published wavelength.
func EmissHeI(te, ne float64, line int, grid *atomdata.PorterHeIGrid) (float64, error) {
	if te <= 0 {
		return 0, fmt.Errorf("recomb: non-positive electron temperature %g", te)
	}
	if ne <= 0 {
		return 0, fmt.Errorf("recomb: non-positive electron density %g", ne)
	}
	if grid == nil {
		return 0, fmt.Errorf("recomb: missing He I grid")
	}

	l, ok := grid.Lines[line]
	if !ok {
		return 0, fmt.Errorf("recomb: He I line index %d not in grid", line)
	}

	alphaEff, err := hbeta.Bilinear(grid.Temps, grid.Densities, l.Values, te, ne, true)
	if err != nil {
		return 0, fmt.Errorf("recomb: He I line %d: %w", line, err)
	}

	return alphaEff * wavelength.PhotonEnergyFromAngstrom(l.Wavelength), nil
}
