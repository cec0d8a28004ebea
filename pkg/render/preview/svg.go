package preview

import (
	"bytes"
	"fmt"

	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/layout"
)

// Zone outline colors, one per zone type, muted enough to read text over.
var zoneColors = map[string]string{
	"logo":     "#8ecae6",
	"from":     "#bde0a2",
	"to":       "#ffd6a5",
	"branding": "#d8c7eb",
}

// RenderSVG renders the preview frame as a standalone SVG document: the
// label outline, one tinted rectangle per zone, and the zone's text lines.
// It is meant for visual checks and documentation, not pixel-exact
// typography; the browser picks the actual glyph widths.
func RenderSVG(dims label.Dimensions, l layout.Layout, opts ...Option) []byte {
	f := Render(dims, l, opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white" stroke="#999" stroke-width="1"/>`+"\n",
		f.Width, f.Height)

	for _, b := range f.Boxes {
		color := zoneColors[b.Type]
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.35" stroke="%s"/>`+"\n",
			b.X, b.Y, b.Width, b.Height, color, color)
		renderBoxText(&buf, b)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderBoxText emits one <text> element per line, anchored per the box
// alignment. The first line may be a caption set at its own size.
func renderBoxText(buf *bytes.Buffer, b Box) {
	anchor, x := "start", b.X+2
	switch b.Align {
	case "center":
		anchor, x = "middle", b.X+b.Width/2
	case "right":
		anchor, x = "end", b.X+b.Width-2
	}

	y := b.Y + b.LineHeight*0.8
	for _, line := range b.Lines {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="%s" font-family="Helvetica, Arial, sans-serif">%s</text>`+"\n",
			x, y, b.FontSize, anchor, escapeXML(line))
		y += b.LineHeight
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
