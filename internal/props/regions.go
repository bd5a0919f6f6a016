package props

import (
	"fmt"

	"porestate/internal/core"
)

// Regions assigns each cell a rock type with its own end points.
type Regions struct {
	regionOf []int
	table    []Endpoints
}

// NewRegions returns a model where cell c uses table[regionOf[c]].
func NewRegions(regionOf []int, table []Endpoints) (*Regions, error) {
	for i, ep := range table {
		if err := ep.Validate(); err != nil {
			return nil, fmt.Errorf("region %d: %w", i, err)
		}
	}
	for c, r := range regionOf {
		if r < 0 || r >= len(table) {
			return nil, fmt.Errorf("cell %d: region %d out of range [0,%d)", c, r, len(table))
		}
	}
	return &Regions{regionOf: regionOf, table: table}, nil
}

// Bands splits the grid into n vertical bands of near-equal width and
// returns the band of every cell.
func Bands(g *core.CartesianGrid, n int) []int {
	regionOf := make([]int, g.NumberOfCells())
	if n <= 0 || g.W == 0 {
		return regionOf
	}
	for c := range regionOf {
		x, _ := g.Coords(c)
		regionOf[c] = x * n / g.W
	}
	return regionOf
}

// Name returns the model identifier.
func (r *Regions) Name() string { return "regions" }

// Region returns the rock type of a cell.
func (r *Regions) Region(cell int) int { return r.regionOf[cell] }

// SatRange fills the bounds of every requested cell from its region.
func (r *Regions) SatRange(cells []int, smin, smax []float64) {
	np := stride(cells, smin)
	for i, c := range cells {
		r.table[r.regionOf[c]].write(smin, smax, np*i, np)
	}
}

// Parameters reports one group per region.
func (r *Regions) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{{
		Name:   "Layout",
		Params: []core.Parameter{intParam("regions", "Regions", len(r.table))},
	}}
	for i, ep := range r.table {
		groups = append(groups, core.ParameterGroup{
			Name: fmt.Sprintf("Region %d", i),
			Params: []core.Parameter{
				floatParam("swc", "Connate saturation", ep.Swc),
				floatParam("sor", "Residual saturation", ep.Sor),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

func init() {
	core.Register("regions", func(g *core.CartesianGrid, cfg map[string]string) (core.PropertyModel, error) {
		swc, err := parseFloatList(cfg["swc"])
		if err != nil {
			return nil, fmt.Errorf("regions model: parse swc: %w", err)
		}
		sor, err := parseFloatList(cfg["sor"])
		if err != nil {
			return nil, fmt.Errorf("regions model: parse sor: %w", err)
		}
		if len(swc) == 0 || len(swc) != len(sor) {
			return nil, fmt.Errorf("regions model: need matching swc and sor lists, got %d and %d", len(swc), len(sor))
		}
		table := make([]Endpoints, len(swc))
		for i := range swc {
			table[i] = Endpoints{Swc: swc[i], Sor: sor[i]}
		}
		return NewRegions(Bands(g, len(table)), table)
	})
}
