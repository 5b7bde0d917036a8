package hbeta

import (
	"fmt"

	"github.com/equib/prEQUIB/pkg/atomdata"
)

// Emissivity returns epsilon(Hbeta) at (T_e, N_e) for the given
// recombination case ("A" or "B"), anchoring every recombination-line
// abundance computed downstream.
func Emissivity(te, ne float64, recombCase string, grid *atomdata.SH95Grid) (float64, error) {
	if te <= 0 {
		return 0, fmt.Errorf("hbeta: non-positive electron temperature %g", te)
	}
	if ne <= 0 {
		return 0, fmt.Errorf("hbeta: non-positive electron density %g", ne)
	}
	if grid == nil {
		return 0, fmt.Errorf("hbeta: missing SH95 grid")
	}

	values, ok := grid.Values[recombCase]
	if !ok {
		return 0, fmt.Errorf("hbeta: unknown recombination case %q", recombCase)
	}

	return Bilinear(grid.Temps, grid.Densities, values, te, ne, true)
}
