package equib

import (
	"fmt"

	"github.com/equib/prEQUIB/pkg/atomdata"
	"github.com/equib/prEQUIB/pkg/hbeta"
	"github.com/equib/prEQUIB/pkg/recomb"
)

// EmissHBeta returns epsilon(Hbeta) at (T_e, N_e) for the given
// recombination case, anchoring every ionic abundance below.
func EmissHBeta(te, ne float64, recombCase string, grid *atomdata.SH95Grid) (float64, error) {
	return hbeta.Emissivity(te, ne, recombCase, grid)
}

// EmissCIIIorNIIIRL returns epsilon for a C III / N III recombination line
// via the PPB91 fit (spec §4.7).
func EmissCIIIorNIIIRL(te, lineWavelength float64, table atomdata.PPB91Table) (float64, error) {
	return recomb.EmissPPB91(te, lineWavelength, table)
}

// AbundCIIIorNIIIRL is EmissCIIIorNIIIRL's ionic-abundance quotient against
// Hbeta: N(X+q)/N(H+) = (epsilon_Hbeta/epsilon_line) * (flux/100).
func AbundCIIIorNIIIRL(te, ne, lineWavelength, flux float64, table atomdata.PPB91Table, hbetaCase string, hbetaGrid *atomdata.SH95Grid) (float64, error) {
	epsLine, err := recomb.EmissPPB91(te, lineWavelength, table)
	if err != nil {
		return 0, fmt.Errorf("equib: C III/N III abundance: %w", err)
	}
	epsHB, err := hbeta.Emissivity(te, ne, hbetaCase, hbetaGrid)
	if err != nil {
		return 0, fmt.Errorf("equib: C III/N III abundance: %w", err)
	}
	return recomb.Abundance(epsLine, epsHB, flux)
}

// EmissCollectionRL returns epsilon for a C II / N II / O II / Ne II
// recombination line via the Davey/MOCASSIN collection fit; branching is
// nil for C II and Ne II (spec §4.7).
func EmissCollectionRL(te, lineWavelength float64, table atomdata.CollectionTable, branching atomdata.BranchingTable) (float64, error) {
	return recomb.EmissCollection(te, lineWavelength, table, branching)
}

// AbundCollectionRL is EmissCollectionRL's ionic-abundance quotient against Hbeta.
func AbundCollectionRL(te, ne, lineWavelength, flux float64, table atomdata.CollectionTable, branching atomdata.BranchingTable, hbetaCase string, hbetaGrid *atomdata.SH95Grid) (float64, error) {
	epsLine, err := recomb.EmissCollection(te, lineWavelength, table, branching)
	if err != nil {
		return 0, fmt.Errorf("equib: collection abundance: %w", err)
	}
	epsHB, err := hbeta.Emissivity(te, ne, hbetaCase, hbetaGrid)
	if err != nil {
		return 0, fmt.Errorf("equib: collection abundance: %w", err)
	}
	return recomb.Abundance(epsLine, epsHB, flux)
}

// EmissHeIRL returns epsilon for a He I recombination line via the Porter
// et al. (T, N) grid, selected by the published line index.
func EmissHeIRL(te, ne float64, line int, grid *atomdata.PorterHeIGrid) (float64, error) {
	return recomb.EmissHeI(te, ne, line, grid)
}

// AbundHeIRL is EmissHeIRL's ionic-abundance quotient against Hbeta.
func AbundHeIRL(te, ne float64, line int, flux float64, heiGrid *atomdata.PorterHeIGrid, hbetaCase string, hbetaGrid *atomdata.SH95Grid) (float64, error) {
	epsLine, err := recomb.EmissHeI(te, ne, line, heiGrid)
	if err != nil {
		return 0, fmt.Errorf("equib: He I abundance: %w", err)
	}
	epsHB, err := hbeta.Emissivity(te, ne, hbetaCase, hbetaGrid)
	if err != nil {
		return 0, fmt.Errorf("equib: He I abundance: %w", err)
	}
	return recomb.Abundance(epsLine, epsHB, flux)
}

// EmissHeIIRL returns epsilon for a He II recombination line via the
// SH95-style analytic grid.
func EmissHeIIRL(te, ne float64, recombCase string, lineWavelength float64, grid *atomdata.SH95Grid) (float64, error) {
	return recomb.EmissHeII(te, ne, recombCase, lineWavelength, grid)
}

// AbundHeIIRL is EmissHeIIRL's ionic-abundance quotient against Hbeta.
func AbundHeIIRL(te, ne, lineWavelength, flux float64, recombCase string, heiiGrid *atomdata.SH95Grid, hbetaGrid *atomdata.SH95Grid) (float64, error) {
	epsLine, err := recomb.EmissHeII(te, ne, recombCase, lineWavelength, heiiGrid)
	if err != nil {
		return 0, fmt.Errorf("equib: He II abundance: %w", err)
	}
	epsHB, err := hbeta.Emissivity(te, ne, recombCase, hbetaGrid)
	if err != nil {
		return 0, fmt.Errorf("equib: He II abundance: %w", err)
	}
	return recomb.Abundance(epsLine, epsHB, flux)
}
