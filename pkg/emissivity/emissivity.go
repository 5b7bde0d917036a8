package emissivity

import (
	"fmt"

	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/wavelength"
)

// Line returns epsilon_ji = n_j A_ji hc/lambda_ji for the transition pair p,
// with n indexed zero-based (n[j-1] for 1-based level j — spec §9's open
// question on Nlj[J] vs Nlj[J-1] is resolved in favor of the zero-based
// read, verified against the §8 scenario values). A_ji == 0 contributes 0,
// not an error — an unlisted transition is a legitimate "this line isn't
// emitted" rather than a missing-data fault.
func Line(n []float64, a atomdata.TransitionProbs, levels atomdata.EnergyLevels, p Pair) (float64, error) {
	l := len(n)
	if p.Upper < 1 || p.Upper > l || p.Lower < 1 || p.Lower > l {
		return 0, fmt.Errorf("emissivity: selection (%d,%d) exceeds level count %d", p.Lower, p.Upper, l)
	}

	aji, err := a.A(p.Upper, p.Lower)
	if err != nil {
		return 0, fmt.Errorf("emissivity: %w", err)
	}
	if aji == 0 {
		return 0, nil
	}

	deltaE, err := levels.DeltaE(p.Lower, p.Upper)
	if err != nil {
		return 0, fmt.Errorf("emissivity: %w", err)
	}

	nj := n[p.Upper-1]
	return nj * aji * wavelength.PhotonEnergyFromDeltaE(deltaE), nil
}

// Sum adds Line over every pair in a parsed selection.
func Sum(n []float64, a atomdata.TransitionProbs, levels atomdata.EnergyLevels, pairs []Pair) (float64, error) {
	if len(pairs) == 0 {
		return 0, fmt.Errorf("emissivity: empty selection")
	}

	var total float64
	for _, p := range pairs {
		eps, err := Line(n, a, levels, p)
		if err != nil {
			return 0, err
		}
		total += eps
	}
	return total, nil
}

// Ratio sums the upper and lower selections independently and returns their
// quotient — the modeled line ratio R the diagnostic root finder inverts.
func Ratio(n []float64, a atomdata.TransitionProbs, levels atomdata.EnergyLevels, upperSel, lowerSel string) (float64, error) {
	upperPairs := ParseSelection(upperSel)
	lowerPairs := ParseSelection(lowerSel)
	if len(upperPairs) == 0 || len(lowerPairs) == 0 {
		return 0, fmt.Errorf("emissivity: missing or malformed selection (upper=%q lower=%q)", upperSel, lowerSel)
	}

	num, err := Sum(n, a, levels, upperPairs)
	if err != nil {
		return 0, fmt.Errorf("emissivity: numerator: %w", err)
	}
	den, err := Sum(n, a, levels, lowerPairs)
	if err != nil {
		return 0, fmt.Errorf("emissivity: denominator: %w", err)
	}
	if den == 0 {
		return 0, fmt.Errorf("emissivity: denominator selection %q has zero emissivity", lowerSel)
	}

	return num / den, nil
}
