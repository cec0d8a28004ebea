// Package template holds the fixed catalog of physical label-sheet
// specifications. Templates are read-only reference data: a sheet's grid,
// margins, and per-label size in inches, keyed by the vendor part number
// users know them by.
package template

import (
	"fmt"
	"sort"

	"github.com/meridianpm/labelpress/pkg/label"
)

// Template describes one label sheet: the per-label size and the grid that
// tiles a US Letter page with it. All measurements are in inches.
type Template struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	MarginTop  float64 `json:"margin_top"`
	MarginLeft float64 `json:"margin_left"`
	GapX       float64 `json:"gap_x"`
	GapY       float64 `json:"gap_y"`
}

// Dimensions returns the per-label size for the layout engine.
func (t Template) Dimensions() label.Dimensions {
	return label.Dimensions{Width: t.Width, Height: t.Height}
}

// PerPage returns how many labels fit on one sheet.
func (t Template) PerPage() int { return t.Cols * t.Rows }

// CellOrigin returns the top-left corner of the label at the given grid
// position, in inches from the page's top-left corner.
func (t Template) CellOrigin(col, row int) (x, y float64) {
	x = t.MarginLeft + float64(col)*(t.Width+t.GapX)
	y = t.MarginTop + float64(row)*(t.Height+t.GapY)
	return x, y
}

// catalog is the fixed set of supported sheets.
var catalog = map[string]Template{
	"avery5160": {
		Key: "avery5160", Name: "Avery 5160 Address Labels (30/sheet)",
		Width: 2.625, Height: 1.0, Cols: 3, Rows: 10,
		MarginTop: 0.5, MarginLeft: 0.1875, GapX: 0.125, GapY: 0,
	},
	"avery5161": {
		Key: "avery5161", Name: "Avery 5161 Address Labels (20/sheet)",
		Width: 4.0, Height: 1.0, Cols: 2, Rows: 10,
		MarginTop: 0.5, MarginLeft: 0.15625, GapX: 0.1875, GapY: 0,
	},
	"avery5163": {
		Key: "avery5163", Name: "Avery 5163 Shipping Labels (10/sheet)",
		Width: 4.0, Height: 2.0, Cols: 2, Rows: 5,
		MarginTop: 0.5, MarginLeft: 0.15625, GapX: 0.1875, GapY: 0,
	},
	"avery5167": {
		Key: "avery5167", Name: "Avery 5167 Return Address Labels (80/sheet)",
		Width: 1.75, Height: 0.5, Cols: 4, Rows: 20,
		MarginTop: 0.5, MarginLeft: 0.28125, GapX: 0.28125, GapY: 0,
	},
	"shipping6": {
		Key: "shipping6", Name: "Generic Shipping Labels (6/sheet)",
		Width: 4.0, Height: 3.333, Cols: 2, Rows: 3,
		MarginTop: 0.5, MarginLeft: 0.15625, GapX: 0.1875, GapY: 0.0835,
	},
}

// Default is the catalog key used when the caller does not pick a sheet.
const Default = "avery5160"

// Lookup returns the template for key. Unknown keys return an error
// listing the supported catalog.
func Lookup(key string) (Template, error) {
	t, ok := catalog[key]
	if !ok {
		return Template{}, fmt.Errorf("unknown label template: %s (supported: %s)", key, keyList())
	}
	return t, nil
}

// All returns the catalog sorted by key.
func All() []Template {
	out := make([]Template, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func keyList() string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += k
	}
	return s
}
