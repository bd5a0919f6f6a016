package state

import (
	"slices"
	"testing"
)

type gridStub struct{ cells, faces int }

func (g gridStub) NumberOfCells() int { return g.cells }
func (g gridStub) NumberOfFaces() int { return g.faces }

func TestInitSizesFields(t *testing.T) {
	cases := []struct{ cells, faces, phases int }{
		{0, 0, 2},
		{1, 4, 2},
		{7, 22, 3},
		{12, 31, 2},
	}
	for _, c := range cases {
		s := New()
		s.Init(c.cells, c.faces, c.phases)
		if len(s.Pressure()) != c.cells || len(s.Temperature()) != c.cells {
			t.Fatalf("%+v: pressure/temperature len %d/%d", c, len(s.Pressure()), len(s.Temperature()))
		}
		if len(s.Saturation()) != c.cells*c.phases {
			t.Fatalf("%+v: saturation len %d", c, len(s.Saturation()))
		}
		if len(s.FacePressure()) != c.faces || len(s.FaceFlux()) != c.faces {
			t.Fatalf("%+v: face field len %d/%d", c, len(s.FacePressure()), len(s.FaceFlux()))
		}
	}
}

func TestInitDefaults(t *testing.T) {
	s := New()
	s.Init(2, 3, 2)
	if !slices.Equal(s.Saturation(), []float64{0, 1, 0, 1}) {
		t.Fatalf("saturation = %v", s.Saturation())
	}
	for _, v := range s.Temperature() {
		if v != 293.15 {
			t.Fatalf("temperature = %f, expected 293.15", v)
		}
	}
	for _, v := range s.Pressure() {
		if v != 0 {
			t.Fatalf("pressure = %f, expected 0", v)
		}
	}
}

func TestInitThreePhaseSeedsOnlyPhaseOne(t *testing.T) {
	s := New()
	s.Init(2, 0, 3)
	if !slices.Equal(s.Saturation(), []float64{0, 1, 0, 0, 1, 0}) {
		t.Fatalf("saturation = %v", s.Saturation())
	}
}

func TestWellKnownNamesAndIDs(t *testing.T) {
	s := New()
	s.InitGrid(gridStub{cells: 3, faces: 10}, 2)
	if s.NumCells() != 3 || s.NumFaces() != 10 || s.NumPhases() != 2 {
		t.Fatalf("sizes %d/%d/%d", s.NumCells(), s.NumFaces(), s.NumPhases())
	}
	if !slices.Equal(s.CellData().Names(), []string{PressureName, TemperatureName, SaturationName}) {
		t.Fatalf("cell names = %v", s.CellData().Names())
	}
	if !slices.Equal(s.FaceData().Names(), []string{FacePressureName, FaceFluxName}) {
		t.Fatalf("face names = %v", s.FaceData().Names())
	}
	if id, _ := s.CellData().Lookup(SaturationName); id != SaturationID {
		t.Fatalf("saturation id = %d", id)
	}
}

func TestReinitIsDestructive(t *testing.T) {
	s := New()
	s.Init(2, 2, 2)
	s.Pressure()[0] = 100
	extra := s.RegisterCellData("EXTRA", 1, 0)
	if extra != 3 {
		t.Fatalf("extension id = %d, expected 3", extra)
	}

	s.Init(4, 5, 2)
	if s.CellData().Len() != 3 {
		t.Fatalf("reinit kept %d cell fields", s.CellData().Len())
	}
	if s.Pressure()[0] != 0 || len(s.Pressure()) != 4 {
		t.Fatalf("pressure not reset: %v", s.Pressure())
	}
}

func TestExtensionFieldsFollowWellKnown(t *testing.T) {
	s := New()
	s.Init(3, 4, 2)
	c := s.RegisterCellData("POROSITY", 1, 0.25)
	f := s.RegisterFaceData("TRANS", 2, 1)
	if c != 3 || f != 2 {
		t.Fatalf("extension ids %d/%d", c, f)
	}
	if len(s.FaceData().Get(f)) != 8 {
		t.Fatalf("face extension len %d", len(s.FaceData().Get(f)))
	}
}

func TestMustMatchPanicsOnOrderChange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on id mismatch")
		}
	}()
	mustMatch(1, PressureID, PressureName)
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	s.Init(2, 3, 2)
	c := s.Clone()
	s.Pressure()[1] = 5
	if c.Pressure()[1] != 0 {
		t.Fatal("clone shares pressure storage")
	}
	if !c.Equals(New().withInit(2, 3, 2), 0) {
		t.Fatal("clone differs from fresh state")
	}
}

func (s *State) withInit(cells, faces, phases int) *State {
	s.Init(cells, faces, phases)
	return s
}
