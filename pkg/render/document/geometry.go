package document

import (
	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/template"
	"github.com/meridianpm/labelpress/pkg/label/units"
)

// Rect is an axis-aligned rectangle in print points, origin at the page's
// top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CellRect returns the page rectangle of the label at grid position
// (col, row) for the given sheet template.
func CellRect(t template.Template, col, row int) Rect {
	x, y := t.CellOrigin(col, row)
	return Rect{
		X: units.InchToPt(x),
		Y: units.InchToPt(y),
		W: units.InchToPt(t.Width),
		H: units.InchToPt(t.Height),
	}
}

// ZoneRect places a layout zone inside a label cell. Zone percentages are
// of the cell size, so every cell re-derives its rectangles from the one
// shared layout.
func ZoneRect(cell Rect, z layout.Zone) Rect {
	return Rect{
		X: cell.X + z.Left/100*cell.W,
		Y: cell.Y + z.Top/100*cell.H,
		W: z.Width / 100 * cell.W,
		H: z.Height / 100 * cell.H,
	}
}

// GridPos converts a recipient's index within a page into grid
// coordinates, filling left to right then top to bottom.
func GridPos(t template.Template, indexOnPage int) (col, row int) {
	return indexOnPage % t.Cols, indexOnPage / t.Cols
}
