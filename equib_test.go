package equib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/equib/prEQUIB/internal/consts"
	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/emissivity"
)

func threeLevelAtom() *atomdata.Atom {
	levels := atomdata.EnergyLevels{
		{E: 0, J: 1.5},
		{E: 20000, J: 2.5},
		{E: 30000, J: 0.5},
	}
	om := atomdata.NewOmegaTable([]float64{5000, 10000, 20000, 30000}, 0)
	_ = om.Set(1, 2, []float64{1.0, 1.2, 1.5, 1.8})
	_ = om.Set(1, 3, []float64{0.3, 0.35, 0.4, 0.45})
	_ = om.Set(2, 3, []float64{0.5, 0.55, 0.6, 0.65})
	a := atomdata.TransitionProbs{
		{0, 0, 0},
		{0.005, 0, 0},
		{0.2, 0.05, 0},
	}
	return &atomdata.Atom{Symbol: "S", Ion: 2, Levels: levels, Omega: om, A: a}
}

// TestPopulationsThroughFacade reproduces spec §8 end-to-end scenario 3
// (S II populations at T_e=10000, N_e=1000): the ground level dominates and
// the populations conserve to 1. The scenario's exact published S II atomic
// data (Ramsbottom/Podobedova energy levels, Omega and A tables) isn't
// available in the retrieval pack (original_source/ was filtered to zero
// kept files), so this uses the fixture's representative S II-shaped atom
// rather than the literal FITS tables — see DESIGN.md for why scenarios 1,
// 2, 4-6's literal numeric targets aren't reproduced bit-for-bit.
func TestPopulationsThroughFacade(t *testing.T) {
	atom := threeLevelAtom()
	n, err := Populations(10000, 1000, atom)
	require.NoError(t, err)
	require.Len(t, n, 3)

	require.True(t, floats.EqualWithinAbsOrRel(1.0, floats.Sum(n), 1e-9, 0))
	require.Greater(t, n[0], 0.9)
	require.Equal(t, floats.Max(n), n[0])
}

func TestPopulationsNRestrictsLevelCount(t *testing.T) {
	atom := threeLevelAtom()
	n, err := PopulationsN(10000, 1000, atom, 2)
	require.NoError(t, err)
	require.Len(t, n, 2)
}

func TestPopulationsNilAtom(t *testing.T) {
	_, err := Populations(10000, 1000, nil)
	require.Error(t, err)
}

func TestCriticalDensityThroughFacade(t *testing.T) {
	atom := threeLevelAtom()
	te := 10000.0
	nc, err := CriticalDensity(te, atom)
	require.NoError(t, err)
	require.Len(t, nc, 3)

	// Level 2 has both a lower partner (1) and an upper partner (3) with
	// nonzero Omega, so its critical density must include collisional
	// outflow in both directions, not just the downward-to-1 subset.
	const g2, g3 = 6.0, 2.0
	const deltaE23 = 10000.0

	q21 := consts.ExciteConst * 1.2 / (g2 * math.Sqrt(te))
	q23Base := consts.ExciteConst * 0.55 / (g3 * math.Sqrt(te))
	q23 := q23Base * (g3 / g2) * math.Exp(-consts.BoltzmannFactor*deltaE23/te)

	want := 0.005 / (q21 + q23)
	require.InEpsilon(t, want, nc[1], 1e-9)
}

func TestEffectiveOmegaThroughFacade(t *testing.T) {
	atom := threeLevelAtom()
	snap, err := EffectiveOmega(10000, atom)
	require.NoError(t, err)
	require.InDelta(t, 1.2, snap[0][1], 1e-9)
}

func TestTemperatureAndDensityRoundTripThroughFacade(t *testing.T) {
	atom := threeLevelAtom()

	n, err := Populations(12000, 1000, atom)
	require.NoError(t, err)

	ratio, err := emissivity.Ratio(n, atom.A, atom.Levels, "3,1/", "2,1/")
	require.NoError(t, err)

	gotTe, err := Temperature(ratio, 1000, "3,1/", "2,1/", atom)
	require.NoError(t, err)
	require.InDelta(t, 12000.0, gotTe, 100)

	gotNe, err := Density(ratio, 12000, "3,1/", "2,1/", atom)
	require.NoError(t, err)
	require.InEpsilon(t, 1000.0, gotNe, 0.05)
}
