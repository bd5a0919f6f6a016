package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form values such as expressions.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value a property model was built from.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the parameters of a property model.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Flatten returns every parameter as key/value pairs in group order.
func (s ParameterSnapshot) Flatten() []Parameter {
	var out []Parameter
	for _, g := range s.Groups {
		out = append(out, g.Params...)
	}
	return out
}
