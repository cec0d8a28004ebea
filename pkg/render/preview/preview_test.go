package preview

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/units"
	"github.com/meridianpm/labelpress/pkg/render/document"
)

var testDims = label.Dimensions{Width: 2.625, Height: 1.0}

func testLayout() layout.Layout {
	o := layout.DefaultOptions()
	o.ShowFromAddress = true
	o.ShowBranding = true
	return layout.Calculate(testDims, o, 3, 0)
}

func testData() label.Data {
	return label.Data{
		Contact:  "Dr. A. Patel",
		Address1: "12 Main St",
		City:     "Dayton",
		State:    "OH",
		Zip:      "45402",
	}
}

func TestRenderFrameGeometry(t *testing.T) {
	f := Render(testDims, testLayout())

	if f.Width != 252 {
		t.Errorf("width = %g, want 252 (2.625in at 96dpi)", f.Width)
	}
	if f.Height != 96 {
		t.Errorf("height = %g, want 96", f.Height)
	}
	if f.Scale != 1.0 {
		t.Errorf("scale = %g, want 1", f.Scale)
	}
	if len(f.Boxes) == 0 {
		t.Fatal("no boxes")
	}
	for _, b := range f.Boxes {
		if b.X < 0 || b.Y < 0 || b.X+b.Width > f.Width+1e-9 {
			t.Errorf("%s box (%g,%g %gx%g) leaves the label", b.Type, b.X, b.Y, b.Width, b.Height)
		}
	}
}

func TestRenderScales(t *testing.T) {
	one := Render(testDims, testLayout())
	two := Render(testDims, testLayout(), WithScale(2))

	if two.Width != 2*one.Width {
		t.Errorf("width at 2x = %g, want %g", two.Width, 2*one.Width)
	}
	for i := range one.Boxes {
		if math.Abs(two.Boxes[i].X-2*one.Boxes[i].X) > 1e-9 {
			t.Errorf("box %d x did not scale: %g vs %g", i, two.Boxes[i].X, one.Boxes[i].X)
		}
		if two.Boxes[i].FontSize != 2*one.Boxes[i].FontSize {
			t.Errorf("box %d font did not scale", i)
		}
	}
}

func TestRenderContentLines(t *testing.T) {
	from := label.Address{Name: "Meridian Physical Therapy", Address1: "410 Commerce Dr", City: "Dayton", State: "OH", Zip: "45402"}
	f := Render(testDims, testLayout(),
		WithData(testData()),
		WithFromAddress(from),
		WithBranding("meridianpt.example.com"))

	byType := map[string]Box{}
	for _, b := range f.Boxes {
		byType[b.Type] = b
	}

	if got := byType["from"].Lines; len(got) != 3 {
		t.Errorf("from lines = %d, want 3", len(got))
	}
	// The empty address2 slot is dropped at render time.
	if got := byType["to"].Lines; len(got) != 3 {
		t.Errorf("to lines = %d, want 3 non-empty", len(got))
	}
	if got := byType["branding"].Lines; len(got) != 1 || got[0] != "meridianpt.example.com" {
		t.Errorf("branding lines = %v", got)
	}
}

func TestRenderCaptionFirst(t *testing.T) {
	o := layout.DefaultOptions()
	o.ShowToLabel = true
	l := layout.Calculate(testDims, o, 0, 0)

	f := Render(testDims, l, WithData(testData()))
	for _, b := range f.Boxes {
		if b.Type == "to" {
			if len(b.Lines) == 0 || b.Lines[0] != "To:" {
				t.Errorf("to lines = %v, want caption first", b.Lines)
			}
			return
		}
	}
	t.Fatal("no destination box")
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testDims, testLayout(), WithData(testData()))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if f.Width != 252 {
		t.Errorf("width = %g after round trip", f.Width)
	}
}

func TestRenderSVGWellFormed(t *testing.T) {
	svg := string(RenderSVG(testDims, testLayout(), WithData(testData())))
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output is not a single svg element")
	}
	if !strings.Contains(svg, "Dr. A. Patel") {
		t.Error("svg missing recipient text")
	}
	if strings.Count(svg, "<rect") < 2 {
		t.Error("svg should draw the outline and the zone boxes")
	}
}

func TestRenderSVGEscapes(t *testing.T) {
	d := testData()
	d.Contact = `Smith & Jones <PC>`
	svg := string(RenderSVG(testDims, testLayout(), WithData(d)))
	if strings.Contains(svg, "<PC>") {
		t.Error("svg output not escaped")
	}
	if !strings.Contains(svg, "&amp;") {
		t.Error("ampersand not escaped")
	}
}

// TestMatchesDocumentGeometry pins the two renderers to the same geometry:
// a preview box at scale 1 converted to points must land on the document
// renderer's zone rectangle for the same layout.
func TestMatchesDocumentGeometry(t *testing.T) {
	l := testLayout()
	f := Render(testDims, l)

	cell := document.Rect{
		X: 0, Y: 0,
		W: units.InchToPt(testDims.Width),
		H: units.InchToPt(testDims.Height),
	}

	for i, z := range l.Zones {
		box := f.Boxes[i]
		rect := document.ZoneRect(cell, z)

		if got, want := units.PxToPt(box.X), rect.X; relDiff(got, want) > 0.005 {
			t.Errorf("%s x: preview %gpt vs document %gpt", z.Type, got, want)
		}
		if got, want := units.PxToPt(box.Y), rect.Y; relDiff(got, want) > 0.005 {
			t.Errorf("%s y: preview %gpt vs document %gpt", z.Type, got, want)
		}
		if got, want := units.PxToPt(box.Width), rect.W; relDiff(got, want) > 0.005 {
			t.Errorf("%s width: preview %gpt vs document %gpt", z.Type, got, want)
		}
		if got, want := units.PxToPt(box.Height), rect.H; relDiff(got, want) > 0.005 {
			t.Errorf("%s height: preview %gpt vs document %gpt", z.Type, got, want)
		}
	}
}

// relDiff is the relative difference, treating near-zero pairs as equal.
func relDiff(a, b float64) float64 {
	if math.Abs(a) < 1e-9 && math.Abs(b) < 1e-9 {
		return 0
	}
	den := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) / den
}
