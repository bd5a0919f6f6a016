package props

import (
	"fmt"

	"porestate/internal/core"
)

// Basic applies the same end points to every cell.
type Basic struct {
	ep Endpoints
}

// NewBasic returns a uniform property model.
func NewBasic(ep Endpoints) (*Basic, error) {
	if err := ep.Validate(); err != nil {
		return nil, err
	}
	return &Basic{ep: ep}, nil
}

// Name returns the model identifier.
func (b *Basic) Name() string { return "basic" }

// SatRange fills the bounds of every requested cell.
func (b *Basic) SatRange(cells []int, smin, smax []float64) {
	np := stride(cells, smin)
	for i := range cells {
		b.ep.write(smin, smax, np*i, np)
	}
}

// Parameters reports the end points.
func (b *Basic) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "End points",
		Params: []core.Parameter{
			floatParam("swc", "Connate saturation", b.ep.Swc),
			floatParam("sor", "Residual saturation", b.ep.Sor),
		},
	}}}
}

func init() {
	core.Register("basic", func(_ *core.CartesianGrid, cfg map[string]string) (core.PropertyModel, error) {
		swc, err := parseFloat(cfg, "swc", 0)
		if err != nil {
			return nil, fmt.Errorf("basic model: %w", err)
		}
		sor, err := parseFloat(cfg, "sor", 0)
		if err != nil {
			return nil, fmt.Errorf("basic model: %w", err)
		}
		return NewBasic(Endpoints{Swc: swc, Sor: sor})
	})
}
