package app

import (
	"fmt"
	"strconv"

	"porestate/internal/core"
	"porestate/internal/state"
)

// CheckViewable rejects grids that have no pixels to draw.
func CheckViewable(g *core.CartesianGrid) error {
	if g.W <= 0 || g.H <= 0 {
		return fmt.Errorf("cannot view a %dx%d grid", g.W, g.H)
	}
	return nil
}

// View selects one component of a cell field for display.
type View struct {
	Label  string
	Field  string
	Offset int
}

// Views lists the displayable cell fields of s: pressure, temperature, one
// view per saturation phase, then every extension field's first component.
func Views(s *state.State) []View {
	views := []View{
		{Label: "pressure", Field: state.PressureName},
		{Label: "temperature", Field: state.TemperatureName},
	}
	for p := 0; p < s.NumPhases(); p++ {
		views = append(views, View{
			Label:  "saturation phase " + strconv.Itoa(p),
			Field:  state.SaturationName,
			Offset: p,
		})
	}
	cells := s.CellData()
	for _, name := range cells.Names()[state.SaturationID+1:] {
		views = append(views, View{Label: name, Field: name})
	}
	return views
}

// Values returns the backing array of the view's field and its stride.
func (v View) Values(s *state.State) ([]float64, int, bool) {
	id, ok := s.CellData().Lookup(v.Field)
	if !ok {
		return nil, 0, false
	}
	return s.CellData().Get(id), s.CellData().Components(id), true
}
