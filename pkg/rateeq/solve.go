package rateeq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/equib/prEQUIB/internal/consts"
	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/collision"
)

// Populations solves for the normalized level populations n_j = N_j/N_ion at
// (T_e, N_e), restricted to the first lmax levels (spec §4.3's L_max <= L).
// On any precondition failure it reports the error and returns a nil slice,
// per §7's "report textually and return a sentinel zero".
func Populations(te, ne float64, levels atomdata.EnergyLevels, om *atomdata.OmegaTable, a atomdata.TransitionProbs, lmax int) ([]float64, error) {
	interp, err := collision.New(om)
	if err != nil {
		return nil, fmt.Errorf("rateeq: populations: %w", err)
	}

	sys, err := assemble(te, ne, levels, om.IRATS, interp, a, lmax)
	if err != nil {
		return nil, fmt.Errorf("rateeq: populations: %w", err)
	}

	return solveSystem(sys)
}

// solveSystem factors and back-substitutes the assembled system by dense LU
// with partial pivoting (gonum/mat's VecDense.SolveVec on a square matrix
// dispatches to LAPACK dgetrf/dgetrs), per spec §4.3.
func solveSystem(sys *system) ([]float64, error) {
	n := mat.NewVecDense(sys.l, nil)
	if err := n.SolveVec(sys.x, sys.b); err != nil {
		return nil, fmt.Errorf("rateeq: solving rate-equation system: %w", err)
	}

	out := make([]float64, sys.l)
	for i := 0; i < sys.l; i++ {
		out[i] = n.AtVec(i)
	}
	return out, nil
}

// EffectiveOmega returns the interpolated Omega matrix snapshot at T_e for
// the first lmax levels (spec §6's effective_omega).
func EffectiveOmega(te float64, om *atomdata.OmegaTable, lmax int) ([][]float64, error) {
	if te <= 0 {
		return nil, fmt.Errorf("rateeq: non-positive electron temperature %g", te)
	}
	interp, err := collision.New(om)
	if err != nil {
		return nil, fmt.Errorf("rateeq: effective omega: %w", err)
	}
	if lmax < 1 {
		return nil, fmt.Errorf("rateeq: level count %d out of range", lmax)
	}

	out := make([][]float64, lmax)
	for i := range out {
		out[i] = make([]float64, lmax)
	}
	for i := 1; i <= lmax; i++ {
		for j := i + 1; j <= lmax; j++ {
			w, err := interp.Omega(i, j, te)
			if err != nil {
				return nil, fmt.Errorf("rateeq: effective omega: %w", err)
			}
			out[i-1][j-1] = w
			out[j-1][i-1] = w
		}
	}
	return out, nil
}

// CriticalDensity returns N_crit,j for every level 1..L (spec §6):
// N_crit,j = sum_{i<j} A_ji / sum_{i!=j} q_ji(T_e), the density at which
// collisional de-excitation of level j balances its radiative decay to
// lower levels. The denominator is level j's total collisional outflow to
// every other level, above and below — the same qOut[j] quantity assemble
// accumulates (pkg/rateeq/assemble.go) across every unordered pair — not
// just the downward-to-lower-levels subset: a level with an upper partner
// of nonzero Omega collisionally empties into that partner too, and
// ignoring that outflow overstates N_crit. A level with no recorded A to
// any lower level (the ground level, or any other with no downward decay)
// has a zero numerator and so a zero critical density whenever it has any
// collisional partner at all, per the ratio's literal reading. Only a
// level with no collisional coupling whatsoever (qSum == 0, a genuinely
// isolated level) reports +Inf rather than a divide-by-zero NaN.
func CriticalDensity(te float64, levels atomdata.EnergyLevels, om *atomdata.OmegaTable, a atomdata.TransitionProbs) ([]float64, error) {
	if te <= 0 {
		return nil, fmt.Errorf("rateeq: non-positive electron temperature %g", te)
	}

	interp, err := collision.New(om)
	if err != nil {
		return nil, fmt.Errorf("rateeq: critical density: %w", err)
	}

	l := levels.Len()
	out := make([]float64, l)

	for j := 1; j <= l; j++ {
		var aSum float64
		for i := 1; i < j; i++ {
			aji, err := a.A(j, i)
			if err != nil {
				return nil, fmt.Errorf("rateeq: critical density: %w", err)
			}
			aSum += aji
		}

		var qSum float64
		for i := 1; i <= l; i++ {
			if i == j {
				continue
			}
			lo, hi := i, j
			if i > j {
				lo, hi = j, i
			}

			omega, err := interp.Omega(lo, hi, te)
			if err != nil {
				return nil, fmt.Errorf("rateeq: critical density: %w", err)
			}
			ghi, err := levels.Weight(hi)
			if err != nil {
				return nil, err
			}

			var qHiToLo float64
			if om.IRATS == 0 {
				qHiToLo = consts.ExciteConst * omega / (ghi * math.Sqrt(te))
			} else {
				qHiToLo = omega * math.Pow(10, float64(om.IRATS))
			}

			qji := qHiToLo
			if i > j {
				// j is the lower partner: need the upward rate j->i via
				// detailed balance, mirroring assemble's qij derivation.
				glo, err := levels.Weight(j)
				if err != nil {
					return nil, err
				}
				deltaE, err := levels.DeltaE(j, i) // E_i - E_j > 0
				if err != nil {
					return nil, err
				}
				qji = qHiToLo * (ghi / glo) * math.Exp(-consts.BoltzmannFactor*deltaE/te)
			}
			qSum += qji
		}

		if qSum == 0 {
			out[j-1] = math.Inf(1)
			continue
		}
		out[j-1] = aSum / qSum
	}

	return out, nil
}
