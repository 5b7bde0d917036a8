// Package rateeq implements C3 (rate-matrix assembler) and C4 (level-
// population solver): given (T_e, N_e) and an ion's atomic data, build and
// solve the statistical-equilibrium linear system for normalized level
// populations, and derive critical densities and Omega-matrix snapshots
// from the same machinery. Modelled on toy-spice's pkg/matrix
// (CircuitMatrix: assemble via Stamp, then Factor/Solve) with gonum/mat's
// dense LU in place of the teacher's sparse KLU binding — these systems are
// small (L is a handful to a few dozen levels) and dense by construction.
package rateeq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/equib/prEQUIB/internal/consts"
	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/collision"
)

// system is the assembled L x L rate matrix and RHS for one (T_e, N_e) evaluation.
type system struct {
	x *mat.Dense
	b *mat.VecDense
	l int
}

// assemble builds the statistical-equilibrium system of spec §4.2 for
// levels 1..lmax. It owns no state beyond the call; interp is supplied by
// the caller (Populations builds a fresh one per call, so its transition-pair
// splines are cached only for the duration of that one solve).
func assemble(te, ne float64, levels atomdata.EnergyLevels, irats int, interp *collision.Interpolator, a atomdata.TransitionProbs, lmax int) (*system, error) {
	if te <= 0 {
		return nil, fmt.Errorf("rateeq: non-positive electron temperature %g", te)
	}
	if ne <= 0 {
		return nil, fmt.Errorf("rateeq: non-positive electron density %g", ne)
	}
	if lmax < 1 || lmax > levels.Len() {
		return nil, fmt.Errorf("rateeq: level count %d out of range (L=%d)", lmax, levels.Len())
	}

	x := mat.NewDense(lmax, lmax, nil)
	b := mat.NewVecDense(lmax, nil)

	qOut := make([]float64, lmax+1) // 1-based; total collisional rate out of level i
	aOut := make([]float64, lmax+1) // 1-based; total radiative rate out of level i to lower levels

	for i := 1; i <= lmax; i++ {
		for j := i + 1; j <= lmax; j++ {
			omega, err := interp.Omega(i, j, te)
			if err != nil {
				return nil, fmt.Errorf("rateeq: interpolating Omega(%d,%d): %w", i, j, err)
			}

			gi, err := levels.Weight(i)
			if err != nil {
				return nil, err
			}
			gj, err := levels.Weight(j)
			if err != nil {
				return nil, err
			}

			var qji float64
			if irats == 0 {
				qji = consts.ExciteConst * omega / (gj * math.Sqrt(te))
			} else {
				qji = omega * math.Pow(10, float64(irats))
			}

			deltaE, err := levels.DeltaE(i, j) // E_j - E_i, cm^-1
			if err != nil {
				return nil, err
			}
			qij := qji * (gj / gi) * math.Exp(-consts.BoltzmannFactor*deltaE/te)

			aji, err := a.A(j, i)
			if err != nil {
				return nil, fmt.Errorf("rateeq: A(%d,%d): %w", j, i, err)
			}

			x.Set(j-1, i-1, ne*qij)
			x.Set(i-1, j-1, ne*qji+aji)

			qOut[i] += qij
			qOut[j] += qji
		}
	}

	for i := 1; i <= lmax; i++ {
		for j := 1; j < i; j++ {
			aij, err := a.A(i, j)
			if err != nil {
				return nil, fmt.Errorf("rateeq: A(%d,%d): %w", i, j, err)
			}
			aOut[i] += aij
		}
		x.Set(i-1, i-1, -(ne*qOut[i] + aOut[i]))
	}

	// Singularity handling (§4.2): replace the first row with the
	// conservation constraint sum(n) == 1.
	for k := 0; k < lmax; k++ {
		x.Set(0, k, 1)
	}
	b.SetVec(0, 1)
	for i := 1; i < lmax; i++ {
		b.SetVec(i, 0)
	}

	return &system{x: x, b: b, l: lmax}, nil
}
