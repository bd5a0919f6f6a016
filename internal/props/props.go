// Package props provides property models that report per-cell saturation
// end points. Models register themselves with core.Register on import.
package props

import (
	"fmt"
	"strconv"
	"strings"

	"porestate/internal/core"
)

// Endpoints are the two-phase saturation end points of a rock type.
type Endpoints struct {
	// Swc is the connate (irreducible) saturation of phase 0.
	Swc float64
	// Sor is the residual saturation of phase 1.
	Sor float64
}

// Validate checks that both end points are in [0, 1] and leave a mobile range.
// NaN is never in range.
func (e Endpoints) Validate() error {
	if !(e.Swc >= 0 && e.Swc <= 1 && e.Sor >= 0 && e.Sor <= 1) {
		return fmt.Errorf("end points swc=%g sor=%g outside [0,1]", e.Swc, e.Sor)
	}
	if e.Swc+e.Sor > 1 {
		return fmt.Errorf("end points swc=%g sor=%g leave no mobile range", e.Swc, e.Sor)
	}
	return nil
}

// write fills the bounds of one cell at offset base. Phases beyond the first
// two are unconstrained.
func (e Endpoints) write(smin, smax []float64, base, np int) {
	smin[base] = e.Swc
	smax[base] = 1 - e.Sor
	smin[base+1] = e.Sor
	smax[base+1] = 1 - e.Swc
	for p := 2; p < np; p++ {
		smin[base+p] = 0
		smax[base+p] = 1
	}
}

func stride(cells []int, smin []float64) int {
	if len(cells) == 0 {
		return 0
	}
	return len(smin) / len(cells)
}

func parseFloat(cfg map[string]string, key string, def float64) (float64, error) {
	v, ok := cfg[key]
	if !ok {
		return def, nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func parseFloatList(v string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
