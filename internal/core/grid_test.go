package core

import (
	"slices"
	"testing"
)

func TestCartesianGridCounts(t *testing.T) {
	g := NewCartesianGrid(3, 2)
	if g.NumberOfCells() != 6 {
		t.Fatalf("cells = %d, expected 6", g.NumberOfCells())
	}
	// 4*2 x-faces + 3*3 y-faces
	if g.NumberOfFaces() != 17 {
		t.Fatalf("faces = %d, expected 17", g.NumberOfFaces())
	}
	if NewCartesianGrid(0, 5).NumberOfFaces() != 0 {
		t.Fatal("empty grid must have no faces")
	}
}

func TestIndexCoordsRoundTrip(t *testing.T) {
	g := NewCartesianGrid(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cx, cy := g.Coords(g.Index(x, y))
			if cx != x || cy != y {
				t.Fatalf("(%d,%d) -> %d -> (%d,%d)", x, y, g.Index(x, y), cx, cy)
			}
		}
	}
	if !slices.Equal(NewCartesianGrid(2, 2).AllCells(), []int{0, 1, 2, 3}) {
		t.Fatal("AllCells not sequential")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Models())
	Register("", func(*CartesianGrid, map[string]string) (PropertyModel, error) { return nil, nil })
	Register("nil-factory", nil)
	if len(Models()) != before {
		t.Fatal("invalid registrations were stored")
	}
}
