package props

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"porestate/internal/core"
)

// Expr derives phase-0 bounds from expressions over the cell position. The
// expressions see x, y, cell, w and h as numbers. Bounds are evaluated once
// for every cell of the grid.
type Expr struct {
	minSrc, maxSrc string
	smin, smax     []float64
}

// NewExpr compiles and evaluates both expressions over g.
func NewExpr(g *core.CartesianGrid, minSrc, maxSrc string) (*Expr, error) {
	minProg, err := compileBound(minSrc)
	if err != nil {
		return nil, fmt.Errorf("compile min: %w", err)
	}
	maxProg, err := compileBound(maxSrc)
	if err != nil {
		return nil, fmt.Errorf("compile max: %w", err)
	}

	n := g.NumberOfCells()
	e := &Expr{minSrc: minSrc, maxSrc: maxSrc, smin: make([]float64, n), smax: make([]float64, n)}
	for c := 0; c < n; c++ {
		env := cellEnv(g, c)
		lo, err := runBound(minProg, env)
		if err != nil {
			return nil, fmt.Errorf("cell %d: min: %w", c, err)
		}
		hi, err := runBound(maxProg, env)
		if err != nil {
			return nil, fmt.Errorf("cell %d: max: %w", c, err)
		}
		if !(lo >= 0 && hi <= 1 && lo <= hi) {
			return nil, fmt.Errorf("cell %d: bounds [%g, %g] not within [0,1]", c, lo, hi)
		}
		e.smin[c] = lo
		e.smax[c] = hi
	}
	return e, nil
}

func cellEnv(g *core.CartesianGrid, cell int) map[string]any {
	x, y := g.Coords(cell)
	return map[string]any{
		"x":    float64(x),
		"y":    float64(y),
		"cell": float64(cell),
		"w":    float64(g.W),
		"h":    float64(g.H),
	}
}

func compileBound(src string) (*vm.Program, error) {
	if src == "" {
		return nil, fmt.Errorf("expression must not be empty")
	}
	return expr.Compile(src,
		expr.Env(map[string]any{"x": 0.0, "y": 0.0, "cell": 0.0, "w": 0.0, "h": 0.0}),
		expr.AsFloat64(),
	)
}

func runBound(program *vm.Program, env map[string]any) (float64, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return 0, err
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("expression returned %T", out)
	}
	return v, nil
}

// Name returns the model identifier.
func (e *Expr) Name() string { return "expr" }

// SatRange writes the precomputed phase-0 bounds and their complements for
// phase 1. Further phases are unconstrained.
func (e *Expr) SatRange(cells []int, smin, smax []float64) {
	np := stride(cells, smin)
	for i, c := range cells {
		base := np * i
		smin[base] = e.smin[c]
		smax[base] = e.smax[c]
		smin[base+1] = 1 - e.smax[c]
		smax[base+1] = 1 - e.smin[c]
		for p := 2; p < np; p++ {
			smin[base+p] = 0
			smax[base+p] = 1
		}
	}
}

// Parameters reports the source expressions.
func (e *Expr) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Expressions",
		Params: []core.Parameter{
			stringParam("swmin", "Phase 0 minimum", e.minSrc),
			stringParam("swmax", "Phase 0 maximum", e.maxSrc),
		},
	}}}
}

func init() {
	core.Register("expr", func(g *core.CartesianGrid, cfg map[string]string) (core.PropertyModel, error) {
		m, err := NewExpr(g, cfg["swmin"], cfg["swmax"])
		if err != nil {
			return nil, fmt.Errorf("expr model: %w", err)
		}
		return m, nil
	})
}
