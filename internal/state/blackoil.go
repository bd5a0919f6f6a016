package state

import "porestate/internal/field"

// Names of the black-oil extension fields.
const (
	GasOilRatioName = "GASOILRATIO"
	RvName          = "RV"
	SurfaceVolName  = "SURFACEVOL"
)

// Blackoil extends State with dissolved gas-oil ratio, vaporized oil-gas
// ratio and per-phase surface volumes. Re-initialize only through
// Blackoil.Init or InitGrid; calling the embedded State.Init drops the
// black-oil fields.
type Blackoil struct {
	State

	gorID     field.ID
	rvID      field.ID
	surfVolID field.ID
}

// NewBlackoil returns an uninitialised black-oil state.
func NewBlackoil() *Blackoil {
	return &Blackoil{State: *New()}
}

// InitGrid initialises the state over the cells and faces of g.
func (b *Blackoil) InitGrid(g Grid, numPhases int) {
	b.Init(g.NumberOfCells(), g.NumberOfFaces(), numPhases)
}

// Init initialises the base fields, then the black-oil ones.
func (b *Blackoil) Init(numCells, numFaces, numPhases int) {
	b.State.Init(numCells, numFaces, numPhases)
	b.gorID = b.RegisterCellData(GasOilRatioName, 1, 0)
	b.rvID = b.RegisterCellData(RvName, 1, 0)
	b.surfVolID = b.RegisterCellData(SurfaceVolName, numPhases, 0)
}

// GasOilRatio is indexed by cell.
func (b *Blackoil) GasOilRatio() []float64 { return b.cells.Get(b.gorID) }

// Rv is indexed by cell.
func (b *Blackoil) Rv() []float64 { return b.cells.Get(b.rvID) }

// SurfaceVol is indexed by NumPhases()*cell + phase.
func (b *Blackoil) SurfaceVol() []float64 { return b.cells.Get(b.surfVolID) }

func (b *Blackoil) checks(other *Blackoil, epsilon float64) []check {
	return append(b.State.checks(&other.State, epsilon),
		check{GasOilRatioName, VectorApproxEqual(b.GasOilRatio(), other.GasOilRatio(), epsilon)},
		check{RvName, VectorApproxEqual(b.Rv(), other.Rv(), epsilon)},
		check{SurfaceVolName, VectorApproxEqual(b.SurfaceVol(), other.SurfaceVol(), epsilon)},
	)
}

// Equals compares the base fields and the black-oil fields.
func (b *Blackoil) Equals(other *Blackoil, epsilon float64) bool {
	return allOK(b.checks(other, epsilon))
}

// Mismatches lists the comparisons that failed, in evaluation order.
func (b *Blackoil) Mismatches(other *Blackoil, epsilon float64) []string {
	return failed(b.checks(other, epsilon))
}

// Clone returns a deep copy.
func (b *Blackoil) Clone() *Blackoil {
	return &Blackoil{
		State:     *b.State.Clone(),
		gorID:     b.gorID,
		rvID:      b.rvID,
		surfVolID: b.surfVolID,
	}
}
