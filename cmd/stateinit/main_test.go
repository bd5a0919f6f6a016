package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"porestate/internal/observability"
)

func writeCase(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCompareEqualCases(t *testing.T) {
	a := writeCase(t, "a.toml", "[grid]\nwidth = 4\nheight = 3\n")
	b := writeCase(t, "b.toml", "[grid]\nwidth = 4\nheight = 3\n")
	metrics := observability.NewMetrics()
	prom := filepath.Join(t.TempDir(), "out.prom")

	err := run([]string{"-config", a, "-compare", b, "-metrics", prom}, zerolog.New(io.Discard), metrics)
	if err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(metrics.SeededCells); got != 24 {
		t.Fatalf("seeded cells = %g", got)
	}
	if got := testutil.ToFloat64(metrics.Comparisons.WithLabelValues("equal")); got != 1 {
		t.Fatalf("equal comparisons = %g", got)
	}
	if _, err := os.Stat(prom); err != nil {
		t.Fatalf("metrics file: %v", err)
	}
}

func TestRunCompareDifferentExtremal(t *testing.T) {
	a := writeCase(t, "a.toml", "[init]\nextremal = \"min\"\n")
	err := run([]string{"-config", a, "-compare", a, "-set", "extremal=max"}, zerolog.New(io.Discard), observability.NewMetrics())
	if err != nil {
		t.Fatalf("overrides apply to both cases, expected equal: %v", err)
	}

	b := writeCase(t, "b.toml", "[init]\nextremal = \"max\"\n")
	err = run([]string{"-config", a, "-compare", b}, zerolog.New(io.Discard), observability.NewMetrics())
	if !errors.Is(err, errMismatch) || !strings.Contains(err.Error(), "SATURATION") {
		t.Fatalf("err = %v", err)
	}
}

func TestRunPerturbed(t *testing.T) {
	log := zerolog.New(io.Discard)
	if err := run([]string{"-perturb", "1e-12", "-set", "epsilon=1e-8"}, log, observability.NewMetrics()); err != nil {
		t.Fatalf("noise below tolerance: %v", err)
	}
	err := run([]string{"-perturb", "0.1", "-set", "epsilon=1e-8"}, log, observability.NewMetrics())
	if !errors.Is(err, errMismatch) || !strings.Contains(err.Error(), "TEMPERATURE") {
		t.Fatalf("err = %v", err)
	}
	if err := run([]string{"-set", "bogus"}, log, observability.NewMetrics()); err == nil {
		t.Fatal("expected flag error")
	}
}

func TestStats(t *testing.T) {
	lo, hi, mean := stats([]float64{2, -1, 5})
	if lo != -1 || hi != 5 || mean != 2 {
		t.Fatalf("stats = %g %g %g", lo, hi, mean)
	}
}
