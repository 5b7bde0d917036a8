package atomdata

import "fmt"

// LevelReader is the §6 read_levels contract: at least levelCount rows for
// the given element/ion, read from file (the collaborator's own format).
type LevelReader interface {
	ReadLevels(file, element string, ion, levelCount int) (EnergyLevels, error)
}

// OmegaReader is the §6 read_omij contract.
type OmegaReader interface {
	ReadOmij(file, element string, ion int) (*OmegaTable, error)
}

// AijReader is the §6 read_aij contract.
type AijReader interface {
	ReadAij(file, element string, ion int) (TransitionProbs, error)
}

// Store aggregates the three CEL readers behind one handle, mirroring how
// netlist.CreateDevice turns a parsed Element into a typed device.Device
// without the circuit package knowing the netlist's on-disk grammar.
type Store interface {
	LevelReader
	OmegaReader
	AijReader
}

// MapStore is an in-memory Store backed by pre-parsed records. It is the
// adapter this module actually ships: atomic-data file I/O is out of scope
// (spec §1), but callers that already hold parsed FITS records — or tests
// that construct literal atomic data — need a typed, error-checked way to
// hand them to the solver.
type MapStore struct {
	levels map[ionKey]EnergyLevels
	omega  map[ionKey]*OmegaTable
	aij    map[ionKey]TransitionProbs
}

type ionKey struct {
	element string
	ion     int
}

// NewMapStore returns an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{
		levels: make(map[ionKey]EnergyLevels),
		omega:  make(map[ionKey]*OmegaTable),
		aij:    make(map[ionKey]TransitionProbs),
	}
}

// PutLevels registers the EL table for element/ion.
func (s *MapStore) PutLevels(element string, ion int, levels EnergyLevels) {
	s.levels[ionKey{element, ion}] = levels
}

// PutOmega registers the OM table for element/ion.
func (s *MapStore) PutOmega(element string, ion int, om *OmegaTable) {
	s.omega[ionKey{element, ion}] = om
}

// PutAij registers the A matrix for element/ion.
func (s *MapStore) PutAij(element string, ion int, a TransitionProbs) {
	s.aij[ionKey{element, ion}] = a
}

// ReadLevels implements LevelReader.
func (s *MapStore) ReadLevels(file, element string, ion, levelCount int) (EnergyLevels, error) {
	el, ok := s.levels[ionKey{element, ion}]
	if !ok {
		return nil, fmt.Errorf("atomdata: no energy levels registered for %s %d", element, ion)
	}
	if len(el) < levelCount {
		return nil, fmt.Errorf("atomdata: %s %d has %d levels, want at least %d", element, ion, len(el), levelCount)
	}
	return el, nil
}

// ReadOmij implements OmegaReader.
func (s *MapStore) ReadOmij(file, element string, ion int) (*OmegaTable, error) {
	om, ok := s.omega[ionKey{element, ion}]
	if !ok {
		return nil, fmt.Errorf("atomdata: no collision strengths registered for %s %d", element, ion)
	}
	return om, nil
}

// ReadAij implements AijReader.
func (s *MapStore) ReadAij(file, element string, ion int) (TransitionProbs, error) {
	a, ok := s.aij[ionKey{element, ion}]
	if !ok {
		return nil, fmt.Errorf("atomdata: no transition probabilities registered for %s %d", element, ion)
	}
	return a, nil
}

// LoadAtom assembles an Atom from a Store, restricting levels/A to the first
// levelCount rows the way the solver's Lmax parameter does.
func LoadAtom(s Store, file, element string, ion, levelCount int) (*Atom, error) {
	el, err := s.ReadLevels(file, element, ion, levelCount)
	if err != nil {
		return nil, fmt.Errorf("atomdata: loading %s %d: %w", element, ion, err)
	}
	om, err := s.ReadOmij(file, element, ion)
	if err != nil {
		return nil, fmt.Errorf("atomdata: loading %s %d: %w", element, ion, err)
	}
	a, err := s.ReadAij(file, element, ion)
	if err != nil {
		return nil, fmt.Errorf("atomdata: loading %s %d: %w", element, ion, err)
	}
	if levelCount > 0 && levelCount < len(el) {
		el = el[:levelCount]
	}
	if levelCount > 0 && levelCount < len(a) {
		sub := make(TransitionProbs, levelCount)
		for j := range sub {
			if len(a[j]) < levelCount {
				return nil, fmt.Errorf("atomdata: loading %s %d: A row %d has %d columns, want at least %d", element, ion, j+1, len(a[j]), levelCount)
			}
			sub[j] = a[j][:levelCount]
		}
		a = sub
	}
	return &Atom{Symbol: element, Ion: ion, Levels: el, Omega: om, A: a}, nil
}
