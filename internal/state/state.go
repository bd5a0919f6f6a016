// Package state holds the per-timestep field data of a grid simulation:
// pressure, temperature and saturation per cell, pressure and flux per face.
package state

import (
	"fmt"

	"porestate/internal/field"
)

// IDs of the well-known fields. Types embedding State must register their own
// fields after Init so these stay valid.
const (
	PressureID    field.ID = 0
	TemperatureID field.ID = 1
	SaturationID  field.ID = 2

	FacePressureID field.ID = 0
	FaceFluxID     field.ID = 1
)

// Names of the well-known fields.
const (
	PressureName     = "PRESSURE"
	TemperatureName  = "TEMPERATURE"
	SaturationName   = "SATURATION"
	FacePressureName = "FACEPRESSURE"
	FaceFluxName     = "FACEFLUX"
)

// DefaultTemperature is the initial cell temperature in Kelvin.
const DefaultTemperature = 273.15 + 20

// Grid supplies the domain sizes a State is built over.
type Grid interface {
	NumberOfCells() int
	NumberOfFaces() int
}

// State stores cell- and face-indexed fields. The zero value is unusable
// until Init is called.
type State struct {
	numCells  int
	numFaces  int
	numPhases int

	cells *field.Registry
	faces *field.Registry
}

// New returns an uninitialised State.
func New() *State {
	return &State{cells: field.New(0), faces: field.New(0)}
}

// InitGrid initialises the state over the cells and faces of g.
func (s *State) InitGrid(g Grid, numPhases int) {
	s.Init(g.NumberOfCells(), g.NumberOfFaces(), numPhases)
}

// Init discards all data and registers the well-known fields. Phase 1 of
// every cell starts fully saturated; use SetFirstSat for real values.
func (s *State) Init(numCells, numFaces, numPhases int) {
	if s.cells == nil {
		s.cells = field.New(0)
	}
	if s.faces == nil {
		s.faces = field.New(0)
	}
	s.numCells = numCells
	s.numFaces = numFaces
	s.numPhases = numPhases
	s.cells.Reset(numCells)
	s.faces.Reset(numFaces)

	mustMatch(s.cells.Register(PressureName, 1, 0), PressureID, PressureName)
	mustMatch(s.cells.Register(TemperatureName, 1, DefaultTemperature), TemperatureID, TemperatureName)
	mustMatch(s.cells.Register(SaturationName, numPhases, 0), SaturationID, SaturationName)

	if numPhases >= 2 {
		sat := s.Saturation()
		for cell := 0; cell < numCells; cell++ {
			sat[numPhases*cell+1] = 1
		}
	}

	mustMatch(s.faces.Register(FacePressureName, 1, 0), FacePressureID, FacePressureName)
	mustMatch(s.faces.Register(FaceFluxName, 1, 0), FaceFluxID, FaceFluxName)
}

// mustMatch aborts when a well-known field did not land on its fixed id,
// which means registration order was changed.
func mustMatch(got, want field.ID, name string) {
	if got != want {
		panic(fmt.Sprintf("state: %s registered as id %d, expected %d", name, got, want))
	}
}

// RegisterCellData adds a cell field after the well-known ones.
func (s *State) RegisterCellData(name string, components int, initial float64) field.ID {
	return s.cells.Register(name, components, initial)
}

// RegisterFaceData adds a face field after the well-known ones.
func (s *State) RegisterFaceData(name string, components int, initial float64) field.ID {
	return s.faces.Register(name, components, initial)
}

// CellData exposes the cell registry.
func (s *State) CellData() *field.Registry { return s.cells }

// FaceData exposes the face registry.
func (s *State) FaceData() *field.Registry { return s.faces }

// NumCells reports the size of the cell domain.
func (s *State) NumCells() int { return s.numCells }

// NumFaces reports the size of the face domain.
func (s *State) NumFaces() int { return s.numFaces }

// NumPhases reports the number of saturation components per cell.
func (s *State) NumPhases() int { return s.numPhases }

// Pressure is indexed by cell.
func (s *State) Pressure() []float64 { return s.cells.Get(PressureID) }

// Temperature is indexed by cell.
func (s *State) Temperature() []float64 { return s.cells.Get(TemperatureID) }

// Saturation is indexed by NumPhases()*cell + phase.
func (s *State) Saturation() []float64 { return s.cells.Get(SaturationID) }

// FacePressure is indexed by face.
func (s *State) FacePressure() []float64 { return s.faces.Get(FacePressureID) }

// FaceFlux is indexed by face.
func (s *State) FaceFlux() []float64 { return s.faces.Get(FaceFluxID) }

// Clone returns a deep copy of the state, extension fields included.
func (s *State) Clone() *State {
	return &State{
		numCells:  s.numCells,
		numFaces:  s.numFaces,
		numPhases: s.numPhases,
		cells:     s.cells.Clone(),
		faces:     s.faces.Clone(),
	}
}
