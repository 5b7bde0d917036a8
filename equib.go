// Package equib is the facade over the statistical-equilibrium solver, the
// diagnostic root finder, and the recombination-line evaluators: it wires
// pkg/atomdata, pkg/rateeq, pkg/collision, pkg/emissivity, pkg/diagnostic,
// pkg/hbeta, and pkg/recomb into the exposed operations of spec §6, the way
// toy-spice's pkg/circuit.Circuit wires netlist, device, matrix, and
// analysis into one usable entry point.
package equib

import (
	"fmt"

	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/diagnostic"
	"github.com/equib/prEQUIB/pkg/rateeq"
)

// Populations solves for normalized level populations N_j/N_ion over the
// full level set of atom, at (T_e, N_e).
func Populations(te, ne float64, atom *atomdata.Atom) ([]float64, error) {
	if atom == nil {
		return nil, fmt.Errorf("equib: missing atomic data")
	}
	return rateeq.Populations(te, ne, atom.Levels, atom.Omega, atom.A, atom.LevelCount())
}

// PopulationsN is Populations restricted to the first lmax levels, for a
// diagnostic that only needs a handful of low levels (spec §4.3).
func PopulationsN(te, ne float64, atom *atomdata.Atom, lmax int) ([]float64, error) {
	if atom == nil {
		return nil, fmt.Errorf("equib: missing atomic data")
	}
	return rateeq.Populations(te, ne, atom.Levels, atom.Omega, atom.A, lmax)
}

// CriticalDensity returns N_crit,j for every level of atom at T_e.
func CriticalDensity(te float64, atom *atomdata.Atom) ([]float64, error) {
	if atom == nil {
		return nil, fmt.Errorf("equib: missing atomic data")
	}
	return rateeq.CriticalDensity(te, atom.Levels, atom.Omega, atom.A)
}

// EffectiveOmega returns the interpolated Omega matrix snapshot over the
// full level set of atom at T_e.
func EffectiveOmega(te float64, atom *atomdata.Atom) ([][]float64, error) {
	if atom == nil {
		return nil, fmt.Errorf("equib: missing atomic data")
	}
	return rateeq.EffectiveOmega(te, atom.Omega, atom.LevelCount())
}

// Temperature inverts an observed line ratio into T_e at fixed N_e.
func Temperature(ratio, ne float64, upperSel, lowerSel string, atom *atomdata.Atom) (float64, error) {
	if atom == nil {
		return 0, fmt.Errorf("equib: missing atomic data")
	}
	return diagnostic.Temperature(ratio, ne, upperSel, lowerSel, atom.Levels, atom.Omega, atom.A)
}

// Density inverts an observed line ratio into N_e at fixed T_e.
func Density(ratio, te float64, upperSel, lowerSel string, atom *atomdata.Atom) (float64, error) {
	if atom == nil {
		return 0, fmt.Errorf("equib: missing atomic data")
	}
	return diagnostic.Density(ratio, te, upperSel, lowerSel, atom.Levels, atom.Omega, atom.A)
}
