package simcase

import (
	"errors"
	"slices"
	"testing"

	"porestate/internal/config"
	_ "porestate/internal/props"
	"porestate/internal/state"
)

func TestBuildAndSeed(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 3, 2
	cfg.Extremal = state.MaxSat
	cfg.ModelParams = map[string]string{"swc": "0.1", "sor": "0.3"}

	c, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if c.Blackoil != nil {
		t.Fatal("plain case built a black-oil state")
	}
	if n := c.Seed(); n != 6 {
		t.Fatalf("seeded %d cells", n)
	}
	sat := c.State.Saturation()
	for cell := 0; cell < 6; cell++ {
		if !state.VectorApproxEqual(sat[2*cell:2*cell+2], []float64{0.7, 0.3}, 1e-12) {
			t.Fatalf("cell %d saturation %v", cell, sat[2*cell:2*cell+2])
		}
	}
}

func TestSeedSubsetAndCompare(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 2, 2
	cfg.Blackoil = true
	cfg.Cells = []int{2}

	a, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	a.Seed()
	if got := a.Mismatches(b, 1e-9); !slices.Equal(got, []string{state.SaturationName}) {
		t.Fatalf("mismatches = %v", got)
	}
	b.Seed()
	if got := a.Mismatches(b, 0); len(got) != 0 {
		t.Fatalf("mismatches after seeding both = %v", got)
	}
	a.Blackoil.Rv()[0] = 1
	if got := a.Mismatches(b, 0); !slices.Equal(got, []string{state.RvName}) {
		t.Fatalf("mismatches = %v", got)
	}

	a.Init()
	if a.Blackoil.Rv()[0] != 0 || a.State.Saturation()[4] != 0 {
		t.Fatal("Init did not reset the state")
	}
}

func TestBuildUnknownModel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Model = "nope"
	if _, err := Build(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v", err)
	}
}
