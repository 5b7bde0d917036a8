package recomb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/wavelength"
)

func TestEmissPPB91FlatPolynomial(t *testing.T) {
	// B=C=D=0 and F=0 collapses the PPB91 polynomial to 1, isolating
	// alpha_eff = 1e-14 * A * Br.
	table := atomdata.PPB91Table{
		{Wavelength: 4640.64, A: 2.0, B: 0, C: 0, D: 0, F: 0, Br: 0.5},
	}

	eps, err := EmissPPB91(10000, 4640.64, table)
	require.NoError(t, err)

	want := 1e-14 * 2.0 * 0.5 * wavelength.PhotonEnergyFromAngstrom(4640.64)
	require.InDelta(t, want, eps, want*1e-9)
}

func TestEmissPPB91NoWavelengthMatch(t *testing.T) {
	table := atomdata.PPB91Table{{Wavelength: 4640.64, A: 2.0, Br: 1.0}}
	_, err := EmissPPB91(10000, 9999, table)
	require.Error(t, err)
}

func TestEmissCollectionWithBranching(t *testing.T) {
	table := atomdata.CollectionTable{
		{Wavelength: 4267.15, A: 1.5, B: 0, C: 0, D: 0, F: 0},
	}
	branching := atomdata.BranchingTable{
		{Wavelength: 4267.15, Br: 0.63},
	}

	eps, err := EmissCollection(10000, 4267.15, table, branching)
	require.NoError(t, err)

	want := 1e-14 * 1.5 * 0.63 * wavelength.PhotonEnergyFromAngstrom(4267.15)
	require.InDelta(t, want, eps, want*1e-9)
}

func TestEmissCollectionNoBranchingDefaultsToOne(t *testing.T) {
	table := atomdata.CollectionTable{
		{Wavelength: 3777.14, A: 1.0, B: 0, C: 0, D: 0, F: 0},
	}

	eps, err := EmissCollection(10000, 3777.14, table, nil)
	require.NoError(t, err)

	want := 1e-14 * 1.0 * wavelength.PhotonEnergyFromAngstrom(3777.14)
	require.InDelta(t, want, eps, want*1e-9)
}

func TestEmissCollectionMissingBranchingRow(t *testing.T) {
	table := atomdata.CollectionTable{{Wavelength: 4267.15, A: 1.5}}
	branching := atomdata.BranchingTable{{Wavelength: 9999, Br: 0.63}}

	_, err := EmissCollection(10000, 4267.15, table, branching)
	require.Error(t, err)
}

func heIFixture() *atomdata.PorterHeIGrid {
	return &atomdata.PorterHeIGrid{
		Temps:     []float64{5000, 20000},
		Densities: []float64{100, 10000},
		Lines: map[int]atomdata.PorterHeILine{
			10: {
				Wavelength: 4471.50,
				Values: [][]float64{
					{1.0e-14, 1.2e-14},
					{0.8e-14, 0.9e-14},
				},
			},
		},
	}
}

func TestEmissHeIAtNode(t *testing.T) {
	grid := heIFixture()
	eps, err := EmissHeI(5000, 100, 10, grid)
	require.NoError(t, err)

	want := 1.0e-14 * wavelength.PhotonEnergyFromAngstrom(4471.50)
	require.InDelta(t, want, eps, want*1e-6)
}

func TestEmissHeIUnknownLine(t *testing.T) {
	grid := heIFixture()
	_, err := EmissHeI(5000, 100, 99, grid)
	require.Error(t, err)
}

func heIIFixture() *atomdata.SH95Grid {
	return &atomdata.SH95Grid{
		Temps:     []float64{5000, 20000},
		Densities: []float64{100, 10000},
		Values: map[string][][]float64{
			"B": {
				{1.0e-14, 1.1e-14},
				{0.9e-14, 1.0e-14},
			},
		},
	}
}

func TestEmissHeIIAtNode(t *testing.T) {
	grid := heIIFixture()
	eps, err := EmissHeII(5000, 100, "B", 1640.0, grid)
	require.NoError(t, err)

	want := 1.0e-14 * wavelength.PhotonEnergyFromAngstrom(1640.0)
	require.InDelta(t, want, eps, want*1e-6)
}

func TestEmissHeIIUnknownCase(t *testing.T) {
	grid := heIIFixture()
	_, err := EmissHeII(5000, 100, "A", 1640.0, grid)
	require.Error(t, err)
}

func TestAbundance(t *testing.T) {
	got, err := Abundance(2e-25, 1e-25, 50.0)
	require.NoError(t, err)
	require.InDelta(t, (1e-25/2e-25)*(50.0/100.0), got, 1e-12)
}

func TestAbundanceRejectsNonPositiveEmissivities(t *testing.T) {
	_, err := Abundance(0, 1e-25, 50)
	require.Error(t, err)
	_, err = Abundance(1e-25, 0, 50)
	require.Error(t, err)
}

func TestEvaluatorsImplementInterface(t *testing.T) {
	var evaluators = []Evaluator{
		PPB91{Table: atomdata.PPB91Table{{Wavelength: 4640.64, A: 1, Br: 1}}, Wavelength: 4640.64},
		Collection{Table: atomdata.CollectionTable{{Wavelength: 4267.15, A: 1}}, Wavelength: 4267.15},
		PorterHeI{Grid: heIFixture(), Line: 10},
		HeII{Grid: heIIFixture(), Case: "B", Wavelength: 1640.0},
	}
	for _, e := range evaluators {
		_, err := e.Emiss(10000, 1000)
		require.NoError(t, err)
	}
}
