package collision

import (
	"fmt"
	"math"

	"github.com/equib/prEQUIB/pkg/atomdata"
)

// Interpolator evaluates Omega_ij(T) from one ion's OmegaTable, caching one
// spline per transition pair so a caller that reuses one Interpolator
// across many temperatures only pays the O(K) spline build once per pair
// (rateeq.Populations builds a new Interpolator on every call, so the
// diagnostic bracket search does not share splines between its samples).
// It is not safe for concurrent use — spec §5 calls for each
// evaluation thread to hold its own working state, and an Interpolator is
// exactly that state.
type Interpolator struct {
	om      *atomdata.OmegaTable
	logTemp []float64
	cache   map[[2]int]*naturalSpline
}

// New builds an interpolator over om. The temperature axis is transformed
// to log10(T) once, per spec §4.1.
func New(om *atomdata.OmegaTable) (*Interpolator, error) {
	if om == nil {
		return nil, fmt.Errorf("collision: nil omega table")
	}
	if len(om.Temps) < 2 {
		return nil, fmt.Errorf("collision: omega table needs at least 2 temperature nodes, got %d", len(om.Temps))
	}

	logTemp := make([]float64, len(om.Temps))
	for k, t := range om.Temps {
		if t <= 0 {
			return nil, fmt.Errorf("collision: non-positive temperature node %g", t)
		}
		logTemp[k] = math.Log10(t)
	}

	return &Interpolator{om: om, logTemp: logTemp, cache: make(map[[2]int]*naturalSpline)}, nil
}

// Omega returns Omega_ij(T) (or the stored downward rate, if IRATS>0) for
// the unordered transition pair (i,j), interpolated at T via natural cubic
// spline in log10(T). Unlisted pairs are Omega == 0 for all T (spec §3).
func (ip *Interpolator) Omega(i, j int, T float64) (float64, error) {
	if T <= 0 {
		return 0, fmt.Errorf("collision: non-positive temperature %g", T)
	}

	key := pairKey(i, j)
	sp, ok := ip.cache[key]
	if !ok {
		series, present := ip.om.Series(i, j)
		if !present {
			ip.cache[key] = nil
			return 0, nil
		}
		sp = newNaturalSpline(ip.logTemp, series)
		ip.cache[key] = sp
	}
	if sp == nil {
		return 0, nil
	}

	return sp.eval(math.Log10(T)), nil
}

func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}
