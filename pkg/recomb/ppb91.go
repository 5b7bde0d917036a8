package recomb

import (
	"fmt"
	"math"

	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/wavelength"
)

// PPB91 evaluates the Pequignot, Petitjean & Boisson (1991) analytic fit
// for C III / N III (spec §4.7).
type PPB91 struct {
	Table      atomdata.PPB91Table
	Wavelength float64 // Angstrom, the requested line
}

var _ Evaluator = PPB91{}

// Emiss implements Evaluator.
func (e PPB91) Emiss(te, ne float64) (float64, error) {
	return EmissPPB91(te, e.Wavelength, e.Table)
}

// EmissPPB91 returns epsilon for the PPB91 row matching wavelength within
// 0.01 Angstrom (ties broken toward the smallest stored wavelength), or an
// error if no row matches.
func EmissPPB91(te, targetWavelength float64, table atomdata.PPB91Table) (float64, error) {
	if te <= 0 {
		return 0, fmt.Errorf("recomb: non-positive electron temperature %g", te)
	}

	wavelengths := make([]float64, len(table))
	for i, row := range table {
		wavelengths[i] = row.Wavelength
	}
	idx, ok := nearestIndex(wavelengths, targetWavelength, wavelengthTolerance)
	if !ok {
		return 0, fmt.Errorf("recomb: no PPB91 row within %.2f Angstrom of %.2f", wavelengthTolerance, targetWavelength)
	}
	row := table[idx]

	t4 := te / 1e4
	poly := 1 + row.B*(1-t4) + row.C*(1-t4)*(1-t4) + row.D*(1-t4)*(1-t4)*(1-t4)
	alphaEff := 1e-14 * row.A * math.Pow(t4, row.F) * row.Br * poly

	return alphaEff * wavelength.PhotonEnergyFromAngstrom(row.Wavelength), nil
}
