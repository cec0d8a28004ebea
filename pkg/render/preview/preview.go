// Package preview turns a computed layout into positioned screen-pixel
// boxes for on-screen display.
//
// The preview renderer and the document renderer consume the same
// layout.Layout; this one converts zone percentages into pixels at a
// caller-chosen screen scale and leaves drawing to the UI layer. The boxes
// can be exported as JSON (the primary interchange format for the web UI)
// or as a simple standalone SVG for visual checks.
package preview

import (
	"encoding/json"

	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/units"
)

// Box is one positioned content region in screen pixels.
type Box struct {
	Type       string   `json:"type"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	FontSize   float64  `json:"font_size"`
	LineHeight float64  `json:"line_height"`
	Align      string   `json:"align"`
	Lines      []string `json:"lines,omitempty"`
}

// Frame is the full preview: the label outline plus its content boxes.
type Frame struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Scale       float64 `json:"scale"`
	TwoZone     bool    `json:"two_zone"`
	HasOverflow bool    `json:"has_overflow"`
	Description string  `json:"description"`
	Boxes       []Box   `json:"boxes"`
}

// Option configures preview rendering.
type Option func(*renderer)

type renderer struct {
	scale    float64
	data     label.Data
	hasData  bool
	from     label.Address
	hasFrom  bool
	branding string
}

// WithScale sets screen pixels per reference pixel (default 1.0, i.e. the
// preview is shown at the engine's reference DPI).
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithData fills the destination box with one recipient's address lines.
// Empty lines keep their slots so the preview matches the print geometry.
func WithData(d label.Data) Option {
	return func(r *renderer) { r.data = d; r.hasData = true }
}

// WithFromAddress fills the return-address box.
func WithFromAddress(a label.Address) Option {
	return func(r *renderer) { r.from = a; r.hasFrom = true }
}

// WithBranding sets the branding footer text.
func WithBranding(text string) Option {
	return func(r *renderer) { r.branding = text }
}

// Render converts the layout into a screen-pixel frame. It is pure: the
// same layout and options produce the same frame.
func Render(dims label.Dimensions, l layout.Layout, opts ...Option) Frame {
	r := renderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}

	w := units.InchToPx(dims.Width) * r.scale
	h := units.InchToPx(dims.Height) * r.scale

	f := Frame{
		Width:       w,
		Height:      h,
		Scale:       r.scale,
		TwoZone:     l.TwoZone,
		HasOverflow: l.HasOverflow,
		Description: l.Description,
		Boxes:       make([]Box, 0, len(l.Zones)),
	}

	for _, z := range l.Zones {
		if !z.Visible {
			continue
		}
		b := Box{
			Type:       z.Type.String(),
			X:          z.Left / 100 * w,
			Y:          z.Top / 100 * h,
			Width:      z.Width / 100 * w,
			Height:     z.Height / 100 * h,
			FontSize:   z.FontSize * r.scale,
			LineHeight: z.LineHeight * r.scale,
			Align:      z.Align.String(),
			Lines:      r.lines(z),
		}
		f.Boxes = append(f.Boxes, b)
	}
	return f
}

// lines resolves the text content for a zone. Empty destination lines are
// dropped here, at render time; the layout already reserved their slots.
func (r renderer) lines(z layout.Zone) []string {
	var out []string
	if z.Caption != "" {
		out = append(out, z.Caption)
	}
	switch z.Type {
	case layout.ZoneFrom:
		if r.hasFrom {
			out = append(out, r.from.Lines()...)
		}
	case layout.ZoneTo:
		if r.hasData {
			for _, l := range r.data.Lines() {
				if l != "" {
					out = append(out, l)
				}
			}
		}
	case layout.ZoneBranding:
		if r.branding != "" {
			out = append(out, r.branding)
		}
	}
	return out
}

// RenderJSON renders the frame as pretty-printed JSON for UI consumers.
func RenderJSON(dims label.Dimensions, l layout.Layout, opts ...Option) ([]byte, error) {
	f := Render(dims, l, opts...)
	return json.MarshalIndent(f, "", "  ")
}
