package render

import (
	"image/color"
	"testing"
)

func TestRangeStride(t *testing.T) {
	sat := []float64{0.2, 0.8, 0.5, 0.5, 0.9, 0.1}
	lo, hi := Range(sat, 2, 0)
	if lo != 0.2 || hi != 0.9 {
		t.Fatalf("phase 0 range [%g,%g]", lo, hi)
	}
	lo, hi = Range(sat, 2, 1)
	if lo != 0.1 || hi != 0.8 {
		t.Fatalf("phase 1 range [%g,%g]", lo, hi)
	}
	if lo, hi := Range(nil, 1, 0); lo != 0 || hi != 0 {
		t.Fatalf("empty range [%g,%g]", lo, hi)
	}
}

func TestFillRampEndpoints(t *testing.T) {
	ramp := []color.RGBA{{R: 0, A: 255}, {R: 200, A: 255}}
	buf := make([]byte, 3*4)
	fillRampRGBA(buf, []float64{1, 3, 2}, 1, 0, 1, 3, ramp)
	if buf[0] != 0 || buf[4] != 200 || buf[8] != 100 {
		t.Fatalf("red channel = %d %d %d", buf[0], buf[4], buf[8])
	}
	if buf[3] != 255 || buf[11] != 255 {
		t.Fatal("alpha not copied from ramp")
	}
}

func TestFillRampFlatUsesMiddle(t *testing.T) {
	ramp := []color.RGBA{{G: 0}, {G: 100}, {G: 200}}
	buf := make([]byte, 2*4)
	fillRampRGBA(buf, []float64{5, 0, 5, 0}, 2, 0, 5, 5, ramp)
	if buf[1] != 100 || buf[5] != 100 {
		t.Fatalf("green channel = %d %d", buf[1], buf[5])
	}
}

func TestFillRampEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	fillRampRGBA(buf, []float64{1}, 1, 0, 0, 1, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d", i, b)
		}
	}
}
