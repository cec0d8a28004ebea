package layout

import "encoding/json"

// ZoneType identifies which category of content a zone holds.
type ZoneType int

const (
	ZoneLogo ZoneType = iota
	ZoneFrom
	ZoneTo
	ZoneBranding
)

// String returns the zone type name used in JSON output and descriptions.
func (t ZoneType) String() string {
	switch t {
	case ZoneLogo:
		return "logo"
	case ZoneFrom:
		return "from"
	case ZoneTo:
		return "to"
	default:
		return "branding"
	}
}

// Zone is one rectangular region of a label. Top, Left, Width, and Height
// are percentages of the label's height and width respectively, so a zone
// is unit-agnostic until a renderer converts it. FontSize and LineHeight
// are in reference pixels (see the units package).
type Zone struct {
	Type       ZoneType
	Top        float64
	Left       float64
	Width      float64
	Height     float64
	FontSize   float64
	LineHeight float64
	Align      Alignment
	Visible    bool

	// Caption is the "From:"/"To:" heading drawn above the zone's lines,
	// empty when the caption is disabled. CaptionSize is its font size in
	// reference pixels; the engine reserved the extra line when it is set.
	Caption     string
	CaptionSize float64
}

// Bottom returns Top + Height.
func (z Zone) Bottom() float64 { return z.Top + z.Height }

type jsonZone struct {
	Type        string  `json:"type"`
	Top         float64 `json:"top"`
	Left        float64 `json:"left"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	FontSize    float64 `json:"font_size"`
	LineHeight  float64 `json:"line_height"`
	Align       string  `json:"align"`
	Visible     bool    `json:"visible"`
	Caption     string  `json:"caption,omitempty"`
	CaptionSize float64 `json:"caption_size,omitempty"`
}

// MarshalJSON emits the zone with string names for its enums so the output
// is readable by UI consumers.
func (z Zone) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonZone{
		Type:        z.Type.String(),
		Top:         z.Top,
		Left:        z.Left,
		Width:       z.Width,
		Height:      z.Height,
		FontSize:    z.FontSize,
		LineHeight:  z.LineHeight,
		Align:       z.Align.String(),
		Visible:     z.Visible,
		Caption:     z.Caption,
		CaptionSize: z.CaptionSize,
	})
}

// Layout is the computed placement for one label geometry. It is produced
// fresh by [Calculate] and never mutated afterwards; recompute when
// dimensions, options, or line counts change.
type Layout struct {
	Zones []Zone `json:"zones"`

	// TwoZone reports whether the stacked (logo-over-addresses) layout
	// was used.
	TwoZone bool `json:"two_zone"`

	// TotalContentHeight is the stacked height of all reserved content in
	// reference pixels, including padding.
	TotalContentHeight float64 `json:"total_content_height"`

	// LabelHeightPx is the label height in reference pixels.
	LabelHeightPx float64 `json:"label_height_px"`

	// HasOverflow reports that content is taller than the label even after
	// auto-adjustment. It is a diagnostic, not an error; rendering proceeds.
	HasOverflow bool `json:"has_overflow"`

	// AdjustPasses is how many logo-shrink passes ran (0 to 4).
	AdjustPasses int `json:"adjust_passes"`

	// EffectiveLogoScale is the logo multiplier actually applied after
	// clamping and auto-adjustment.
	EffectiveLogoScale float64 `json:"effective_logo_scale,omitempty"`

	// Description is a human-readable summary of the resolved flow,
	// including auto-adjustment and overflow notes.
	Description string `json:"description"`
}

// Zone returns the zone of the given type, if the layout placed one.
func (l Layout) Zone(t ZoneType) (Zone, bool) {
	for _, z := range l.Zones {
		if z.Type == t {
			return z, true
		}
	}
	return Zone{}, false
}
