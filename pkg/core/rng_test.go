package core

import (
	"math"
	"slices"
	"testing"
)

func TestPerturbDeterministicAndBounded(t *testing.T) {
	base := []float64{1, -2, 0, 300}
	a := append([]float64(nil), base...)
	b := append([]float64(nil), base...)
	NewRNG(5).Perturb(a, 0.01)
	NewRNG(5).Perturb(b, 0.01)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different perturbations")
	}
	for i := range base {
		if math.Abs(a[i]-base[i]) > 0.01*math.Abs(base[i]) {
			t.Fatalf("value %d moved from %g to %g", i, base[i], a[i])
		}
	}
	if a[2] != 0 {
		t.Fatal("zero was perturbed")
	}
}

func TestFloat64Range(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 = %g", v)
		}
	}
}
