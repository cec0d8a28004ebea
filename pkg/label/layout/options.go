package layout

import "fmt"

// LineSpacing selects the line-height multiplier applied to every font size.
type LineSpacing int

const (
	SpacingCompact LineSpacing = iota
	SpacingNormal
	SpacingRelaxed
)

// Multiplier returns the line-height factor for the spacing setting.
func (s LineSpacing) Multiplier() float64 {
	switch s {
	case SpacingCompact:
		return 1.15
	case SpacingRelaxed:
		return 1.55
	default:
		return 1.35
	}
}

// String returns the spacing name used in flags and config files.
func (s LineSpacing) String() string {
	switch s {
	case SpacingCompact:
		return "compact"
	case SpacingRelaxed:
		return "relaxed"
	default:
		return "normal"
	}
}

// ParseLineSpacing parses a spacing name. It returns an error for anything
// other than "compact", "normal", or "relaxed".
func ParseLineSpacing(s string) (LineSpacing, error) {
	switch s {
	case "compact":
		return SpacingCompact, nil
	case "normal":
		return SpacingNormal, nil
	case "relaxed":
		return SpacingRelaxed, nil
	default:
		return SpacingNormal, fmt.Errorf("invalid line spacing: %s (must be 'compact', 'normal', or 'relaxed')", s)
	}
}

// Alignment is the horizontal text alignment within a zone.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name used in flags and config files.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment parses an alignment name.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("invalid alignment: %s (must be 'left', 'center', or 'right')", s)
	}
}

// FromPosition picks which top corner the return address occupies.
type FromPosition int

const (
	FromTopLeft FromPosition = iota
	FromTopRight
)

// String returns the position name used in flags and config files.
func (p FromPosition) String() string {
	if p == FromTopRight {
		return "top-right"
	}
	return "top-left"
}

// ParseFromPosition parses a return-address position name.
func ParseFromPosition(s string) (FromPosition, error) {
	switch s {
	case "top-left":
		return FromTopLeft, nil
	case "top-right":
		return FromTopRight, nil
	default:
		return FromTopLeft, fmt.Errorf("invalid from position: %s (must be 'top-left' or 'top-right')", s)
	}
}

// Mode selects how the label is partitioned vertically.
type Mode int

const (
	// ModeAuto decides from the label dimensions: labels at least 240
	// reference pixels tall with a logo get the stacked layout.
	ModeAuto Mode = iota
	// ModeStacked forces the two-zone layout (dedicated logo region above
	// a combined address region).
	ModeStacked
	// ModeSplit forces the single-flow layout regardless of size.
	ModeSplit
)

// String returns the mode name used in flags and config files.
func (m Mode) String() string {
	switch m {
	case ModeStacked:
		return "stacked"
	case ModeSplit:
		return "split"
	default:
		return "auto"
	}
}

// ParseMode parses a layout mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto":
		return ModeAuto, nil
	case "stacked":
		return ModeStacked, nil
	case "split":
		return ModeSplit, nil
	default:
		return ModeAuto, fmt.Errorf("invalid layout mode: %s (must be 'auto', 'stacked', or 'split')", s)
	}
}

// Documented bounds for the scale multipliers. Values outside these ranges
// are silently clamped, never rejected.
const (
	MinLogoScale = 0.25
	MaxLogoScale = 2.5

	MinFontScale = 0.5
	MaxFontScale = 2.0

	MinFromFontScale = 0.5
	MaxFromFontScale = 1.5
)

// Options is the full set of knobs a caller can turn. The zero value is not
// useful; start from [DefaultOptions].
type Options struct {
	ShowLogo        bool `json:"show_logo"`
	ShowFromAddress bool `json:"show_from_address"`
	ShowToLabel     bool `json:"show_to_label"`
	ShowFromLabel   bool `json:"show_from_label"`
	ShowBranding    bool `json:"show_branding"`

	// Scale multipliers, clamped to their documented ranges on use.
	LogoScale     float64 `json:"logo_scale"`
	FontScale     float64 `json:"font_scale"`
	FromFontScale float64 `json:"from_font_scale"`

	Spacing      LineSpacing  `json:"spacing"`
	ToAlign      Alignment    `json:"to_align"`
	FromPosition FromPosition `json:"from_position"`
	Mode         Mode         `json:"mode"`
}

// DefaultOptions returns the neutral configuration: destination address
// only, unit multipliers, normal spacing, automatic mode.
func DefaultOptions() Options {
	return Options{
		LogoScale:     1.0,
		FontScale:     1.0,
		FromFontScale: 1.0,
		Spacing:       SpacingNormal,
		ToAlign:       AlignLeft,
		FromPosition:  FromTopLeft,
		Mode:          ModeAuto,
	}
}

// Clamped returns a copy with every multiplier forced into its documented
// range. Out-of-range input is a configuration nuisance, not an error.
func (o Options) Clamped() Options {
	o.LogoScale = clamp(o.LogoScale, MinLogoScale, MaxLogoScale)
	o.FontScale = clamp(o.FontScale, MinFontScale, MaxFontScale)
	o.FromFontScale = clamp(o.FromFontScale, MinFromFontScale, MaxFromFontScale)
	return o
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
