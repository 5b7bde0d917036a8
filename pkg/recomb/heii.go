package recomb

import (
	"fmt"

	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/hbeta"
	"github.com/equib/prEQUIB/pkg/wavelength"
)

// HeII evaluates the He II analytic grid, an SH95-style temperature x
// density x case table (spec §4.7: "grid interpolation as in C7") for one
// requested line wavelength.
type HeII struct {
	Grid       *atomdata.SH95Grid
	Case       string
	Wavelength float64 // Angstrom
}

var _ Evaluator = HeII{}

// Emiss implements Evaluator.
func (e HeII) Emiss(te, ne float64) (float64, error) {
	return EmissHeII(te, ne, e.Case, e.Wavelength, e.Grid)
}

// EmissHeII interpolates the SH95-style grid for the requested
// recombination case and converts to an emissivity via the line wavelength.
func EmissHeII(te, ne float64, recombCase string, lineWavelength float64, grid *atomdata.SH95Grid) (float64, error) {
	if te <= 0 {
		return 0, fmt.Errorf("recomb: non-positive electron temperature %g", te)
	}
	if ne <= 0 {
		return 0, fmt.Errorf("recomb: non-positive electron density %g", ne)
	}
	if grid == nil {
		return 0, fmt.Errorf("recomb: missing He II grid")
	}

	values, ok := grid.Values[recombCase]
	if !ok {
		return 0, fmt.Errorf("recomb: unknown recombination case %q", recombCase)
	}

	alphaEff, err := hbeta.Bilinear(grid.Temps, grid.Densities, values, te, ne, true)
	if err != nil {
		return 0, fmt.Errorf("recomb: He II: %w", err)
	}

	return alphaEff * wavelength.PhotonEnergyFromAngstrom(lineWavelength), nil
}
