package state

// ExtremalSat selects which saturation bound SetFirstSat applies.
type ExtremalSat int

const (
	MinSat ExtremalSat = iota
	MaxSat
)

func (e ExtremalSat) String() string {
	if e == MaxSat {
		return "max"
	}
	return "min"
}

// SatRanger reports per-cell saturation bounds. For cells[i], phase p, the
// bounds go to smin[np*i+p] and smax[np*i+p], where np = len(smin)/len(cells).
type SatRanger interface {
	SatRange(cells []int, smin, smax []float64)
}

// SetFirstSat sets phase 0 of each listed cell to its minimum or maximum
// admissible saturation and phase 1 to the complement. Other phases are left
// untouched.
func (s *State) SetFirstSat(cells []int, props SatRanger, es ExtremalSat) {
	if len(cells) == 0 {
		return
	}
	np := s.numPhases
	if np < 2 {
		panic("state: saturation seeding needs at least two phases")
	}
	n := len(cells)
	smin := make([]float64, np*n)
	smax := make([]float64, np*n)
	props.SatRange(cells, smin, smax)

	svals := smin
	if es == MaxSat {
		svals = smax
	}
	sat := s.Saturation()
	for ci, cell := range cells {
		sat[np*cell] = svals[np*ci]
		sat[np*cell+1] = 1 - sat[np*cell]
	}
}
