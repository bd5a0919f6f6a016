package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"porestate/internal/config"
	"porestate/internal/field"
	"porestate/internal/observability"
	_ "porestate/internal/props"
	"porestate/internal/simcase"
	"porestate/pkg/core"
)

var errMismatch = errors.New("states differ")

type options struct {
	configPath  string
	comparePath string
	overrides   map[string]string
	perturb     float64
	seed        int64
	metricsPath string
	verbose     bool
}

func parseFlags(args []string) (options, error) {
	opts := options{overrides: map[string]string{}}
	fs := flag.NewFlagSet("stateinit", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "TOML case file (defaults when empty)")
	fs.StringVar(&opts.comparePath, "compare", "", "second case to compare against")
	fs.Float64Var(&opts.perturb, "perturb", 0, "relative noise applied to every cell field of a clone before comparing")
	fs.Int64Var(&opts.seed, "seed", 42, "seed for -perturb")
	fs.StringVar(&opts.metricsPath, "metrics", "", "write prometheus metrics to this textfile")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.Func("set", "override a case setting, key=value (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		opts.overrides[key] = value
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func loadConfig(path string, overrides map[string]string) (config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg = cfg.FromMap(overrides)
	return cfg, cfg.Validate()
}

func buildSeeded(path string, overrides map[string]string, metrics *observability.Metrics) (*simcase.Case, error) {
	cfg, err := loadConfig(path, overrides)
	if err != nil {
		return nil, err
	}
	c, err := simcase.Build(cfg)
	if err != nil {
		return nil, err
	}
	metrics.IncrementInitializations()
	metrics.AddSeededCells(c.Seed())
	return c, nil
}

func run(args []string, log zerolog.Logger, metrics *observability.Metrics) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	c, err := buildSeeded(opts.configPath, opts.overrides, metrics)
	if err != nil {
		return err
	}
	cfg := c.Config
	log.Info().
		Int("cells", c.State.NumCells()).
		Int("faces", c.State.NumFaces()).
		Int("phases", c.State.NumPhases()).
		Bool("blackoil", cfg.Blackoil).
		Str("model", c.Model.Name()).
		Str("extremal", cfg.Extremal.String()).
		Msg("state initialized")
	for _, p := range c.Model.Parameters().Flatten() {
		log.Debug().Str("key", p.Key).Str("value", p.Value).Msg("model parameter")
	}
	summarize(log, "cell", c.State.CellData())
	summarize(log, "face", c.State.FaceData())

	var compareErr error
	if opts.comparePath != "" {
		other, err := buildSeeded(opts.comparePath, opts.overrides, metrics)
		if err != nil {
			return fmt.Errorf("compare case: %w", err)
		}
		compareErr = report(log, metrics, "case", c.Mismatches(other, cfg.Epsilon))
	}
	if opts.perturb > 0 {
		clone := c.State.Clone()
		rng := core.NewRNG(opts.seed)
		cells := clone.CellData()
		for i := 0; i < cells.Len(); i++ {
			rng.Perturb(cells.Get(field.ID(i)), opts.perturb)
		}
		if err := report(log, metrics, "perturbed", c.State.Mismatches(clone, cfg.Epsilon)); err != nil && compareErr == nil {
			compareErr = err
		}
	}

	if opts.metricsPath != "" {
		if err := metrics.WriteTextfile(opts.metricsPath); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return compareErr
}

func report(log zerolog.Logger, metrics *observability.Metrics, against string, mismatches []string) error {
	metrics.ObserveComparison(len(mismatches) == 0)
	if len(mismatches) == 0 {
		log.Info().Str("against", against).Msg("states equal")
		return nil
	}
	log.Warn().Str("against", against).Strs("fields", mismatches).Msg("states differ")
	return fmt.Errorf("%w: %s", errMismatch, strings.Join(mismatches, ", "))
}

func summarize(log zerolog.Logger, domain string, reg *field.Registry) {
	for i := 0; i < reg.Len(); i++ {
		id := field.ID(i)
		lo, hi, mean := stats(reg.Get(id))
		log.Info().
			Str("domain", domain).
			Str("field", reg.Name(id)).
			Int("components", reg.Components(id)).
			Float64("min", lo).
			Float64("max", hi).
			Float64("mean", mean).
			Msg("field summary")
	}
}

func stats(values []float64) (lo, hi, mean float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	lo, hi = values[0], values[0]
	sum := 0.0
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
		sum += v
	}
	return lo, hi, sum / float64(len(values))
}

func main() {
	log := observability.InitLogger("stateinit", false)
	err := run(os.Args[1:], log, observability.NewMetrics())
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, errMismatch):
		os.Exit(1)
	default:
		log.Error().Err(err).Msg("stateinit failed")
		os.Exit(2)
	}
}
