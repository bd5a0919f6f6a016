package core

// CartesianGrid is a W by H structured 2D grid. Cells are numbered in
// row-major order; faces are numbered x-faces first, then y-faces.
type CartesianGrid struct {
	W, H int
}

// NewCartesianGrid returns a grid with the given dimensions.
func NewCartesianGrid(w, h int) *CartesianGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &CartesianGrid{W: w, H: h}
}

// NumberOfCells returns W*H.
func (g *CartesianGrid) NumberOfCells() int { return g.W * g.H }

// NumberOfFaces counts the (W+1)*H faces normal to x and the W*(H+1) faces
// normal to y.
func (g *CartesianGrid) NumberOfFaces() int {
	if g.W == 0 || g.H == 0 {
		return 0
	}
	return (g.W+1)*g.H + g.W*(g.H+1)
}

// Index returns the cell index for coordinates (x, y).
func (g *CartesianGrid) Index(x, y int) int { return y*g.W + x }

// Coords is the inverse of Index.
func (g *CartesianGrid) Coords(cell int) (int, int) { return cell % g.W, cell / g.W }

// AllCells lists every cell index in order.
func (g *CartesianGrid) AllCells() []int {
	cells := make([]int, g.NumberOfCells())
	for i := range cells {
		cells[i] = i
	}
	return cells
}
