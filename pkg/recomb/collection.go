package recomb

import (
	"fmt"
	"math"

	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/wavelength"
)

// Collection evaluates the Davey/MOCASSIN fit collection (C II, N II, O II,
// Ne II), the same functional form as PPB91 but without an intrinsic
// branching ratio — N II and O II supply a companion BranchingTable
// (spec §4.7); C II and Ne II leave it nil.
type Collection struct {
	Table      atomdata.CollectionTable
	Branching  atomdata.BranchingTable // nil for C II, Ne II
	Wavelength float64                 // Angstrom, the requested line
}

var _ Evaluator = Collection{}

// Emiss implements Evaluator.
func (e Collection) Emiss(te, ne float64) (float64, error) {
	return EmissCollection(te, e.Wavelength, e.Table, e.Branching)
}

// EmissCollection returns epsilon for the collection row matching
// wavelength within 0.01 Angstrom, multiplied by the companion branching
// ratio when one is supplied.
func EmissCollection(te, targetWavelength float64, table atomdata.CollectionTable, branching atomdata.BranchingTable) (float64, error) {
	if te <= 0 {
		return 0, fmt.Errorf("recomb: non-positive electron temperature %g", te)
	}

	wavelengths := make([]float64, len(table))
	for i, row := range table {
		wavelengths[i] = row.Wavelength
	}
	idx, ok := nearestIndex(wavelengths, targetWavelength, wavelengthTolerance)
	if !ok {
		return 0, fmt.Errorf("recomb: no collection row within %.2f Angstrom of %.2f", wavelengthTolerance, targetWavelength)
	}
	row := table[idx]

	br := 1.0
	if branching != nil {
		brWavelengths := make([]float64, len(branching))
		for i, b := range branching {
			brWavelengths[i] = b.Wavelength
		}
		brIdx, ok := nearestIndex(brWavelengths, targetWavelength, wavelengthTolerance)
		if !ok {
			return 0, fmt.Errorf("recomb: no branching ratio within %.2f Angstrom of %.2f", wavelengthTolerance, targetWavelength)
		}
		br = branching[brIdx].Br
	}

	t4 := te / 1e4
	poly := 1 + row.B*(1-t4) + row.C*(1-t4)*(1-t4) + row.D*(1-t4)*(1-t4)*(1-t4)
	alphaEff := 1e-14 * row.A * math.Pow(t4, row.F) * br * poly

	return alphaEff * wavelength.PhotonEnergyFromAngstrom(row.Wavelength), nil
}
