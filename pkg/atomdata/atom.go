// Package atomdata is the typed view over the per-ion atomic-data records
// that the rest of the solver consumes: energy levels, transition
// probabilities, collision-strength grids, and the recombination-fit
// families of C8. Reading the underlying FITS tables is a collaborator's
// concern (spec §1); this package only fixes the shapes the core needs and
// adapts already-parsed records into them, the way pkg/netlist turns a
// netlist line into a typed device.Element without knowing how the file
// reached disk.
package atomdata

import "fmt"

// EnergyLevel is one row of the EL table: energy above ground in cm^-1 and
// total angular momentum J (half-integers allowed).
type EnergyLevel struct {
	E float64
	J float64
}

// Weight returns the statistical weight g = 2J+1.
func (lvl EnergyLevel) Weight() float64 { return 2*lvl.J + 1 }

// EnergyLevels is the ordered level sequence, E1 == 0, strictly increasing.
type EnergyLevels []EnergyLevel

// Len is the level count L.
func (el EnergyLevels) Len() int { return len(el) }

// Weight returns g_j for the 1-based level index j.
func (el EnergyLevels) Weight(j int) (float64, error) {
	if j < 1 || j > len(el) {
		return 0, fmt.Errorf("atomdata: level %d out of range (L=%d)", j, len(el))
	}
	return el[j-1].Weight(), nil
}

// DeltaE returns E_j - E_i in cm^-1 for 1-based indices i<j.
func (el EnergyLevels) DeltaE(i, j int) (float64, error) {
	if i < 1 || i > len(el) || j < 1 || j > len(el) {
		return 0, fmt.Errorf("atomdata: level pair (%d,%d) out of range (L=%d)", i, j, len(el))
	}
	return el[j-1].E - el[i-1].E, nil
}

// TransitionProbs is the dense L x L matrix of spontaneous transition
// probabilities A[j][i] (s^-1), rate from upper j to lower i. Only entries
// with j>i (1-based) are physically populated; A[i][i] == 0.
type TransitionProbs [][]float64

// A returns A[j][i] (1-based indices), or an error if out of range.
func (a TransitionProbs) A(j, i int) (float64, error) {
	l := len(a)
	if i < 1 || i > l || j < 1 || j > l {
		return 0, fmt.Errorf("atomdata: transition (%d,%d) out of range (L=%d)", j, i, l)
	}
	return a[j-1][i-1], nil
}

// OmegaTable is the collision-strength grid: a shared temperature axis
// shared by every transition of one ion, plus a per-transition series keyed
// by the unordered pair so that the permutation invariant in spec §8 holds
// regardless of the order records were supplied in.
type OmegaTable struct {
	// Temps holds the K temperature nodes, strictly positive.
	Temps []float64
	// IRATS distinguishes collision strengths (0) from downward collision
	// rates already in s^-1 (IRATS>0, scaled by 10^IRATS).
	IRATS int

	series map[[2]int][]float64
}

// NewOmegaTable builds an empty table over the given temperature axis.
func NewOmegaTable(temps []float64, irats int) *OmegaTable {
	return &OmegaTable{
		Temps:  append([]float64(nil), temps...),
		IRATS:  irats,
		series: make(map[[2]int][]float64),
	}
}

func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

// Set records the Omega_ij(T_k) series for the unordered pair (i,j). len(vals) must equal len(Temps).
func (om *OmegaTable) Set(i, j int, vals []float64) error {
	if len(vals) != len(om.Temps) {
		return fmt.Errorf("atomdata: omega series length %d != temperature axis length %d", len(vals), len(om.Temps))
	}
	om.series[pairKey(i, j)] = append([]float64(nil), vals...)
	return nil
}

// Series returns the stored Omega_ij(T_k) series for the unordered pair
// (i,j), or (nil, false) if the pair was never recorded (Omega == 0 for all T).
func (om *OmegaTable) Series(i, j int) ([]float64, bool) {
	if om == nil {
		return nil, false
	}
	vals, ok := om.series[pairKey(i, j)]
	return vals, ok
}

// Atom is the opaque per-ion handle resolving to the payloads the solver
// needs. Any payload may be nil if the caller has no use for it (e.g. a
// recombination-only ion carries no EL/OM/A).
type Atom struct {
	Symbol string
	Ion    int
	Levels EnergyLevels
	Omega  *OmegaTable
	A      TransitionProbs
}

// LevelCount returns len(Levels), the L used everywhere downstream.
func (a *Atom) LevelCount() int {
	if a == nil {
		return 0
	}
	return len(a.Levels)
}
