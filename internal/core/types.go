package core

// PropertyModel reports saturation bounds for grid cells. For cells[i] and
// phase p, bounds are written to smin[np*i+p] and smax[np*i+p] with
// np = len(smin)/len(cells).
type PropertyModel interface {
	Name() string
	SatRange(cells []int, smin, smax []float64)
	Parameters() ParameterSnapshot
}

// Factory constructs a PropertyModel for a grid from a string map of
// model-specific options.
type Factory func(g *CartesianGrid, cfg map[string]string) (PropertyModel, error)

var models = map[string]Factory{}

// Register adds a property model factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	models[name] = f
}

// Models exposes the registry of available property model factories.
func Models() map[string]Factory {
	return models
}
