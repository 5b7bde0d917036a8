// Package recomb implements C8: one evaluator per recombination-line fit
// family (PPB91, the Davey/MOCASSIN collection, Porter He I, He II),
// each consuming the family-specific record shapes of pkg/atomdata and
// returning an emissivity in erg cm^3 s^-1. Modelled on toy-spice's
// pkg/device: one file per device type behind a shared small interface
// (there, device.Device and its Stamp; here, Evaluator and its Emiss),
// rather than one flattened dispatch function, per spec §9's "do not
// flatten" design note.
package recomb

import (
	"fmt"
	"math"

	"github.com/equib/prEQUIB/internal/consts"
)

// Evaluator computes a recombination-line emissivity at (T_e, N_e) for one
// ion's fit family.
type Evaluator interface {
	Emiss(te, ne float64) (float64, error)
}

// Abundance applies the §4.7 closing step common to every RL family:
// N(X+q)/N(H+) = (epsilon_Hbeta/epsilon_line) * (flux/100).
func Abundance(epsLine, epsHBeta, flux float64) (float64, error) {
	if epsLine <= 0 {
		return 0, fmt.Errorf("recomb: non-positive line emissivity %g", epsLine)
	}
	if epsHBeta <= 0 {
		return 0, fmt.Errorf("recomb: non-positive Hbeta emissivity %g", epsHBeta)
	}
	return (epsHBeta / epsLine) * (flux / consts.HBetaReferenceFlux), nil
}

// nearestIndex returns the index of the row whose wavelength matches target
// within tol, breaking ties (spec §4.7) by the row of minimum stored
// wavelength among the matches.
func nearestIndex(wavelengths []float64, target, tol float64) (int, bool) {
	best := -1
	for i, w := range wavelengths {
		if math.Abs(w-target) <= tol {
			if best == -1 || w < wavelengths[best] {
				best = i
			}
		}
	}
	return best, best != -1
}

const wavelengthTolerance = 0.01 // Angstrom, spec §4.7
