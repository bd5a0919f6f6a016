//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from one component of a cell field.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit maps component offset of values (stride components per cell) onto
// the ramp over [lo, hi] and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, values []float64, stride, offset int, lo, hi float64, ramp []color.RGBA, scale int) {
	if len(values) != gp.w*gp.h*stride {
		return
	}
	fillRampRGBA(gp.buf, values, stride, offset, lo, hi, ramp)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
