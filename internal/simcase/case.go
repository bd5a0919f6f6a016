// Package simcase assembles a grid, a property model and a state from a
// case configuration.
package simcase

import (
	"fmt"

	"porestate/internal/config"
	"porestate/internal/core"
	"porestate/internal/state"
)

// Case is a built simulation case.
type Case struct {
	Config config.Config
	Grid   *core.CartesianGrid
	Model  core.PropertyModel

	// State is the base view of the state; for black-oil cases it is the
	// embedded State of Blackoil.
	State    *state.State
	Blackoil *state.Blackoil
}

// Build constructs the grid and property model, then initializes the state.
// Saturation is not seeded; call Seed.
func Build(cfg config.Config) (*Case, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	factory, ok := core.Models()[cfg.Model]
	if !ok {
		return nil, fmt.Errorf("%w: unknown property model %q", config.ErrInvalid, cfg.Model)
	}
	grid := core.NewCartesianGrid(cfg.Width, cfg.Height)
	model, err := factory(grid, cfg.ModelParams)
	if err != nil {
		return nil, fmt.Errorf("build property model: %w", err)
	}

	c := &Case{Config: cfg, Grid: grid, Model: model}
	if cfg.Blackoil {
		c.Blackoil = state.NewBlackoil()
		c.State = &c.Blackoil.State
	} else {
		c.State = state.New()
	}
	c.Init()
	return c, nil
}

// Init (re)initializes the state over the grid, discarding all values.
func (c *Case) Init() {
	if c.Blackoil != nil {
		c.Blackoil.InitGrid(c.Grid, c.Config.Phases)
		return
	}
	c.State.InitGrid(c.Grid, c.Config.Phases)
}

// Cells returns the cells to seed: the configured list, or every cell.
func (c *Case) Cells() []int {
	if len(c.Config.Cells) > 0 {
		return c.Config.Cells
	}
	return c.Grid.AllCells()
}

// Seed applies the configured extremal saturation and returns the number of
// seeded cells.
func (c *Case) Seed() int {
	cells := c.Cells()
	c.State.SetFirstSat(cells, c.Model, c.Config.Extremal)
	return len(cells)
}

// Mismatches compares two cases field by field with the given tolerance.
// Black-oil fields are included when both cases carry them.
func (c *Case) Mismatches(other *Case, epsilon float64) []string {
	if c.Blackoil != nil && other.Blackoil != nil {
		return c.Blackoil.Mismatches(other.Blackoil, epsilon)
	}
	return c.State.Mismatches(other.State, epsilon)
}
