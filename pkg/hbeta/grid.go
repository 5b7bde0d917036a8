// Package hbeta implements C7, the H-beta reference emissivity: bilinear
// interpolation of the SH95 (temperature x density x case) grid. The same
// bilinear routine backs the grid-based RL evaluators of C8 (He II, and —
// over a per-line grid instead of a case grid — He I), per spec §4.7's
// "grid interpolation as in C7".
package hbeta

import (
	"fmt"
	"math"
)

// bracket returns the indices lo, hi (hi == lo+1, unless the axis has only
// one node) bracketing xq in the ascending axis xs, and the fractional
// position frac in [0,1] between them. Out-of-range xq clamps to the
// nearest edge cell rather than extrapolating.
func bracket(xs []float64, xq float64) (lo, hi int, frac float64) {
	n := len(xs)
	if n == 1 {
		return 0, 0, 0
	}
	if xq <= xs[0] {
		return 0, 1, 0
	}
	if xq >= xs[n-1] {
		return n - 2, n - 1, 1
	}

	lo, hi = 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if xs[mid] > xq {
			hi = mid
		} else {
			lo = mid
		}
	}
	frac = (xq - xs[lo]) / (xs[hi] - xs[lo])
	return lo, hi, frac
}

// Bilinear interpolates values[ti][ni] at (x, y) over ascending axes xs, ys.
// When log10 is true, x, y, xs, and ys are all transformed to log10 before
// bracketing and weighting (spec §4.6: "bi-linear interpolation in log T
// and log N_e").
func Bilinear(xs, ys []float64, values [][]float64, x, y float64, log10 bool) (float64, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return 0, fmt.Errorf("hbeta: empty grid axis")
	}
	if len(values) != len(xs) {
		return 0, fmt.Errorf("hbeta: grid has %d temperature rows, want %d", len(values), len(xs))
	}
	for i, row := range values {
		if len(row) != len(ys) {
			return 0, fmt.Errorf("hbeta: grid row %d has %d density columns, want %d", i, len(row), len(ys))
		}
	}

	xq, yq := x, y
	txs, tys := xs, ys
	if log10 {
		if x <= 0 || y <= 0 {
			return 0, fmt.Errorf("hbeta: non-positive grid coordinate (%g, %g)", x, y)
		}
		xq, yq = math.Log10(x), math.Log10(y)
		txs = make([]float64, len(xs))
		tys = make([]float64, len(ys))
		for i, v := range xs {
			txs[i] = math.Log10(v)
		}
		for i, v := range ys {
			tys[i] = math.Log10(v)
		}
	}

	xlo, xhi, fx := bracket(txs, xq)
	ylo, yhi, fy := bracket(tys, yq)

	v00 := values[xlo][ylo]
	v01 := values[xlo][yhi]
	v10 := values[xhi][ylo]
	v11 := values[xhi][yhi]

	return v00*(1-fx)*(1-fy) + v10*fx*(1-fy) + v01*(1-fx)*fy + v11*fx*fy, nil
}
