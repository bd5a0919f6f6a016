// Package render turns per-cell field values into RGBA pixels.
package render

import (
	"image/color"
	"math"
)

// Ramp is the default blue-to-red heat map, low values first.
var Ramp = []color.RGBA{
	{R: 20, G: 40, B: 140, A: 255},
	{R: 40, G: 150, B: 220, A: 255},
	{R: 90, G: 200, B: 120, A: 255},
	{R: 240, G: 210, B: 60, A: 255},
	{R: 200, G: 50, B: 40, A: 255},
}

// Range returns the minimum and maximum of every stride-th value starting at
// offset. An empty selection yields (0, 0).
func Range(values []float64, stride, offset int) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := offset; i < len(values); i += stride {
		lo = math.Min(lo, values[i])
		hi = math.Max(hi, values[i])
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// rampColor linearly interpolates the ramp at t in [0, 1].
func rampColor(ramp []color.RGBA, t float64) color.RGBA {
	if len(ramp) == 1 {
		return ramp[0]
	}
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(ramp)-1)
	i := int(pos)
	if i >= len(ramp)-1 {
		return ramp[len(ramp)-1]
	}
	frac := pos - float64(i)
	a, b := ramp[i], ramp[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*frac))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// fillRampRGBA writes one pixel per element for every stride-th value
// starting at offset, mapping [lo, hi] onto the ramp. A flat range maps to
// the middle of the ramp. When the ramp is empty the buffer is cleared to
// transparent black.
func fillRampRGBA(buf []byte, values []float64, stride, offset int, lo, hi float64, ramp []color.RGBA) {
	n := len(buf) / 4
	if len(ramp) == 0 {
		clear(buf)
		return
	}
	span := hi - lo
	for px := 0; px < n; px++ {
		idx := px*stride + offset
		if idx >= len(values) {
			break
		}
		t := 0.5
		if span > 0 {
			t = (values[idx] - lo) / span
		}
		col := rampColor(ramp, t)
		base := px * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
