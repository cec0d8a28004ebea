package document

import (
	"math"
	"testing"

	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/template"
)

func TestCellRect(t *testing.T) {
	tmpl, err := template.Lookup("avery5160")
	if err != nil {
		t.Fatal(err)
	}

	r := CellRect(tmpl, 0, 0)
	if r.X != tmpl.MarginLeft*72 || r.Y != tmpl.MarginTop*72 {
		t.Errorf("cell (0,0) origin = (%g, %g)pt", r.X, r.Y)
	}
	if r.W != 2.625*72 || r.H != 72 {
		t.Errorf("cell size = %gx%gpt, want %gx72", r.W, r.H, 2.625*72)
	}

	r2 := CellRect(tmpl, 1, 2)
	wantX := (tmpl.MarginLeft + tmpl.Width + tmpl.GapX) * 72
	wantY := (tmpl.MarginTop + 2*tmpl.Height) * 72
	if math.Abs(r2.X-wantX) > 1e-9 || math.Abs(r2.Y-wantY) > 1e-9 {
		t.Errorf("cell (1,2) origin = (%g, %g)pt, want (%g, %g)", r2.X, r2.Y, wantX, wantY)
	}
}

func TestCellsStayOnLetterPage(t *testing.T) {
	const pageW, pageH = 612.0, 792.0 // US Letter in points
	for _, tmpl := range template.All() {
		last := CellRect(tmpl, tmpl.Cols-1, tmpl.Rows-1)
		if last.X+last.W > pageW+1e-6 {
			t.Errorf("%s: last column ends at %.1fpt, page is %.0fpt wide", tmpl.Key, last.X+last.W, pageW)
		}
		if last.Y+last.H > pageH+1e-6 {
			t.Errorf("%s: last row ends at %.1fpt, page is %.0fpt tall", tmpl.Key, last.Y+last.H, pageH)
		}
	}
}

func TestZoneRect(t *testing.T) {
	cell := Rect{X: 100, Y: 50, W: 200, H: 100}
	z := layout.Zone{Top: 10, Left: 5, Width: 90, Height: 40}

	r := ZoneRect(cell, z)
	if r.X != 110 || r.Y != 60 {
		t.Errorf("zone origin = (%g, %g), want (110, 60)", r.X, r.Y)
	}
	if r.W != 180 || r.H != 40 {
		t.Errorf("zone size = %gx%g, want 180x40", r.W, r.H)
	}
}

func TestGridPos(t *testing.T) {
	tmpl, _ := template.Lookup("avery5160") // 3 columns
	tests := []struct {
		index    int
		col, row int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 2, 0},
		{3, 0, 1},
		{29, 2, 9},
	}
	for _, tt := range tests {
		col, row := GridPos(tmpl, tt.index)
		if col != tt.col || row != tt.row {
			t.Errorf("GridPos(%d) = (%d, %d), want (%d, %d)", tt.index, col, row, tt.col, tt.row)
		}
	}
}
