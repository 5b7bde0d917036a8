// Package diagnostic implements C6, the two-level diagnostic root finder:
// it inverts an observed line ratio into T_e (at fixed N_e) or N_e (at
// fixed T_e) by nested bracket refinement, repeatedly invoking C3/C4/C5
// through the model function. Modelled structurally on toy-spice's
// analysis.DCSweep (sample a free variable on a generated grid, evaluate
// the circuit at each sample, record the result) and
// analysis.OperatingPoint.doNRiter (iterate a fixed-shape loop toward a
// target, bail after a bounded number of rounds) — here the iteration
// narrows a bracket instead of a Newton step, per spec §4.5's explicit
// choice of bracketing over Newton for robustness against locally flat
// ratio functions.
package diagnostic

import (
	"fmt"
	"math"

	"github.com/equib/prEQUIB/internal/consts"
)

// model evaluates R(x) - r_obs is computed by the caller; model returns the
// raw modeled ratio R(x).
type model func(x float64) (float64, error)

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

// bracketSearch performs the fixed nine-pass, four-point nested bracket
// refinement of spec §4.5. window is the initial bracket width, anchor0 the
// initial anchor, and floor the value the free variable is clamped to
// before every model evaluation (5000 K for temperature mode, 1 cm^-3 for
// density mode).
func bracketSearch(anchor0, window, floor float64, robs float64, eval model) (float64, error) {
	const (
		passes = consts.BracketPasses
		m      = consts.BracketGridPoints
	)

	anchor := anchor0

	for k := 1; k <= passes; k++ {
		delta := window / math.Pow(float64(m-1), float64(k))

		xs := make([]float64, m)
		fs := make([]float64, m)

		for i := 0; i < m; i++ {
			xs[i] = anchor + float64(i)*delta
			xEval := xs[i]
			if xEval < floor {
				xEval = floor
			}

			r, err := eval(xEval)
			if err != nil {
				return 0, fmt.Errorf("diagnostic: evaluating ratio at %g: %w", xEval, err)
			}
			fs[i] = r - robs
		}

		foundIdx := -1
		s0 := sign(fs[0])
		for i := 1; i < m; i++ {
			if sign(fs[i]) != s0 {
				foundIdx = i
				break
			}
		}

		if foundIdx > 0 {
			anchor = xs[foundIdx-1]
			continue
		}

		// No sign change: anchor on whichever endpoint is closer to r_obs.
		if math.Abs(fs[0]) <= math.Abs(fs[m-1]) {
			anchor = xs[0]
		} else {
			anchor = xs[m-1]
		}
	}

	if anchor < floor {
		anchor = floor
	}
	return anchor, nil
}
