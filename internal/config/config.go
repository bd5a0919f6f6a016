// Package config describes a simulation case: grid, phases and the
// saturation initialisation to apply.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"porestate/internal/state"
)

// ErrInvalid marks configuration values that fail validation.
var ErrInvalid = errors.New("invalid config")

// Config controls how a state is built and seeded.
type Config struct {
	Width  int
	Height int

	Phases   int
	Blackoil bool

	Model    string
	Extremal state.ExtremalSat
	// Cells lists the cells to seed. Empty means every cell.
	Cells []int

	Epsilon float64

	ModelParams map[string]string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       32,
		Height:      16,
		Phases:      2,
		Model:       "basic",
		Extremal:    state.MinSat,
		Epsilon:     1e-8,
		ModelParams: map[string]string{"swc": "0.2", "sor": "0.2"},
	}
}

type fileConfig struct {
	Grid struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"grid"`
	Fluid struct {
		Phases   int  `toml:"phases"`
		Blackoil bool `toml:"blackoil"`
	} `toml:"fluid"`
	Init struct {
		Model    string `toml:"model"`
		Extremal string `toml:"extremal"`
		Cells    []int  `toml:"cells"`
	} `toml:"init"`
	Compare struct {
		Epsilon float64 `toml:"epsilon"`
	} `toml:"compare"`
	Model map[string]any `toml:"model"`
}

// Load reads a TOML case file. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load case %s: %w", path, err)
	}

	if meta.IsDefined("grid", "width") {
		cfg.Width = raw.Grid.Width
	}
	if meta.IsDefined("grid", "height") {
		cfg.Height = raw.Grid.Height
	}
	if meta.IsDefined("fluid", "phases") {
		cfg.Phases = raw.Fluid.Phases
	}
	if meta.IsDefined("fluid", "blackoil") {
		cfg.Blackoil = raw.Fluid.Blackoil
	}
	if meta.IsDefined("init", "model") {
		cfg.Model = strings.TrimSpace(raw.Init.Model)
	}
	if meta.IsDefined("init", "extremal") {
		es, err := ParseExtremal(raw.Init.Extremal)
		if err != nil {
			return Config{}, fmt.Errorf("load case %s: %w", path, err)
		}
		cfg.Extremal = es
	}
	if meta.IsDefined("init", "cells") {
		cfg.Cells = append([]int(nil), raw.Init.Cells...)
	}
	if meta.IsDefined("compare", "epsilon") {
		cfg.Epsilon = raw.Compare.Epsilon
	}
	if meta.IsDefined("model") {
		cfg.ModelParams = make(map[string]string, len(raw.Model))
		for k, v := range raw.Model {
			cfg.ModelParams[k] = stringify(v)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load case %s: %w", path, err)
	}
	return cfg, nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case []any:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = stringify(p)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}

// ParseExtremal accepts "min" or "max".
func ParseExtremal(v string) (state.ExtremalSat, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "min", "":
		return state.MinSat, nil
	case "max":
		return state.MaxSat, nil
	}
	return state.MinSat, fmt.Errorf("%w: extremal %q, expected min or max", ErrInvalid, v)
}

// FromMap applies flag-style key/value overrides on top of c. Keys prefixed
// with "model." go to the model parameters. Unparseable values are ignored.
func (c Config) FromMap(kv map[string]string) Config {
	if kv == nil {
		return c
	}
	params := make(map[string]string, len(c.ModelParams))
	for k, v := range c.ModelParams {
		params[k] = v
	}
	c.ModelParams = params

	if v, ok := kv["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := kv["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := kv["phases"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Phases = parsed
		}
	}
	if v, ok := kv["blackoil"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Blackoil = parsed
		}
	}
	if v, ok := kv["model"]; ok && v != "" {
		c.Model = v
	}
	if v, ok := kv["extremal"]; ok {
		if es, err := ParseExtremal(v); err == nil {
			c.Extremal = es
		}
	}
	if v, ok := kv["epsilon"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Epsilon = parsed
		}
	}
	for k, v := range kv {
		if key, ok := strings.CutPrefix(k, "model."); ok && key != "" {
			c.ModelParams[key] = v
		}
	}
	return c
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Phases < 2 {
		return fmt.Errorf("%w: phases = %d, need at least 2", ErrInvalid, c.Phases)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: no property model", ErrInvalid)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon = %g", ErrInvalid, c.Epsilon)
	}
	total := c.Width * c.Height
	for _, cell := range c.Cells {
		if cell < 0 || cell >= total {
			return fmt.Errorf("%w: cell %d outside grid of %d cells", ErrInvalid, cell, total)
		}
	}
	return nil
}
