package template

import (
	"math"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tmpl, err := Lookup("avery5160")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if tmpl.Width != 2.625 || tmpl.Height != 1.0 {
		t.Errorf("avery5160 = %gx%g, want 2.625x1", tmpl.Width, tmpl.Height)
	}
	if tmpl.PerPage() != 30 {
		t.Errorf("PerPage() = %d, want 30", tmpl.PerPage())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("avery9999")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "avery5160") {
		t.Errorf("error %q should list the supported catalog", err)
	}
}

func TestDefaultExists(t *testing.T) {
	if _, err := Lookup(Default); err != nil {
		t.Fatalf("default template missing from catalog: %v", err)
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) < 5 {
		t.Fatalf("got %d templates, want at least 5", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Key >= all[i].Key {
			t.Errorf("catalog not sorted: %q before %q", all[i-1].Key, all[i].Key)
		}
	}
}

func TestCellOrigin(t *testing.T) {
	tmpl, _ := Lookup("avery5160")

	x, y := tmpl.CellOrigin(0, 0)
	if x != tmpl.MarginLeft || y != tmpl.MarginTop {
		t.Errorf("origin (0,0) = (%g, %g), want margins (%g, %g)", x, y, tmpl.MarginLeft, tmpl.MarginTop)
	}

	x1, _ := tmpl.CellOrigin(1, 0)
	if want := tmpl.MarginLeft + tmpl.Width + tmpl.GapX; math.Abs(x1-want) > 1e-9 {
		t.Errorf("column 1 x = %g, want %g", x1, want)
	}

	_, y1 := tmpl.CellOrigin(0, 1)
	if want := tmpl.MarginTop + tmpl.Height + tmpl.GapY; math.Abs(y1-want) > 1e-9 {
		t.Errorf("row 1 y = %g, want %g", y1, want)
	}
}

func TestGridsFitLetterPage(t *testing.T) {
	const pageW, pageH = 8.5, 11.0
	for _, tmpl := range All() {
		right := tmpl.MarginLeft + float64(tmpl.Cols)*tmpl.Width + float64(tmpl.Cols-1)*tmpl.GapX
		bottom := tmpl.MarginTop + float64(tmpl.Rows)*tmpl.Height + float64(tmpl.Rows-1)*tmpl.GapY
		if right > pageW+1e-9 {
			t.Errorf("%s: grid right edge %.3f\" exceeds page width", tmpl.Key, right)
		}
		if bottom > pageH+1e-9 {
			t.Errorf("%s: grid bottom edge %.3f\" exceeds page height", tmpl.Key, bottom)
		}
	}
}
