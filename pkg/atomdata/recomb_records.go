package atomdata

// This file fixes the record shapes for the §3/§4.7 recombination-fit
// families. Each family has its own reader contract in §6
// (read_aeff_sh95, read_aeff_he_i_pfsd12, read_aeff_ppb91,
// read_aeff_collection); as with the CEL readers, parsing the underlying
// tables is a collaborator's concern — these types are what pkg/recomb
// consumes.

// PPB91Row is one wavelength's worth of the Pequignot, Petitjean & Boisson
// (1991) fit (C III, N III):
//
//	alpha_eff = 1e-14 * A * T4^F * Br * [1 + B(1-T4) + C(1-T4)^2 + D(1-T4)^3]
//
// with T4 = T_e/1e4.
type PPB91Row struct {
	Wavelength float64 // Angstrom
	A, B, C, D float64
	F          float64
	Br         float64
}

// PPB91Table is the set of rows for one ion.
type PPB91Table []PPB91Row

// CollectionRow is one wavelength's worth of the Davey/MOCASSIN collection
// (C II, N II, O II, Ne II); same functional form as PPB91Row but without an
// intrinsic branching ratio — N II and O II look theirs up in a companion
// BranchingTable (spec §4.7).
type CollectionRow struct {
	Wavelength float64
	A, B, C, D float64
	F          float64
}

// CollectionTable is the set of rows for one ion.
type CollectionTable []CollectionRow

// BranchingRow is one wavelength's branching-ratio entry.
type BranchingRow struct {
	Wavelength float64
	Br         float64
}

// BranchingTable is the companion `br` table for N II / O II.
type BranchingTable []BranchingRow

// SH95Grid is the temperature x density x case grid used for the Hbeta
// reference emissivity (C7) and the He II analytic-grid evaluator (C8):
// dimensions temperature, density, recombination case ("A" or "B").
type SH95Grid struct {
	Temps     []float64          // K, ascending
	Densities []float64          // cm^-3, ascending
	Values    map[string][][]float64 // case -> [ti][ni] emissivity, erg cm^3 s^-1
}

// PorterHeILine is one published He I line's (T,N) emissivity-coefficient
// grid (Porter et al. fits, as tabulated by PFSD12-style readers).
type PorterHeILine struct {
	Wavelength float64
	Values     [][]float64 // [ti][ni]
}

// PorterHeIGrid collects every line, keyed by the published integer line
// index (e.g. 10 -> 4471.50 Angstrom).
type PorterHeIGrid struct {
	Temps     []float64
	Densities []float64
	Lines     map[int]PorterHeILine
}
