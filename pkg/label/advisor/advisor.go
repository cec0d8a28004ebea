// Package advisor suggests starting layout options for a label size.
//
// The advisor is a pure heuristic feeding defaults into the layout engine;
// it is never required for correctness and every branch has a fallback, so
// [Suggest] cannot fail. Callers are free to override any part of the
// suggestion before calling layout.Calculate.
//
// Suggestion runs in three sequential phases, each a pure transform of the
// previous result: category selection from a fixed decision table keyed by
// height and aspect-ratio buckets, content-aware sizing offsets, and
// conflict resolution for known bad combinations. Each applied rule
// records a line of reasoning so the CLI and the HTTP service can show why
// the advisor chose what it chose.
package advisor

import (
	"fmt"

	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/units"
)

// Position is a corner slot the advisor reasons about. It is richer than
// the engine's FromPosition: the advisor may park the return address at
// the bottom, which the engine expresses as a top-left zone with a shaved
// font multiplier (see Suggestion.Options).
type Position int

const (
	TopLeft Position = iota
	TopCenter
	TopRight
	BottomLeft
)

// String returns the position name used in reasoning output.
func (p Position) String() string {
	switch p {
	case TopCenter:
		return "top-center"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return "top-left"
	}
}

// Suggestion is the advisor's output: ready-to-use engine options plus the
// positional intent and the reasoning trail behind it.
type Suggestion struct {
	Options      layout.Options `json:"options"`
	LogoPosition Position       `json:"-"`
	FromPosition Position       `json:"-"`

	// Reasoning lists one line per applied rule, in application order.
	Reasoning []string `json:"reasoning"`
}

// Height buckets in reference pixels.
const (
	largeMinHeightPx = 180.0
	smallMaxHeightPx = 115.0

	// Labels shorter than this drop the "From:"/"To:" captions entirely.
	captionMinHeightPx = 90.0

	// Labels shorter than this get an extra size reduction in phase 2.
	tinyHeightPx = 80.0
)

// Aspect-ratio buckets (width / height).
const (
	compactMaxAspect = 1.5
	wideMinAspect    = 2.5
)

// Label areas (reference px²) above which the advisor grows the content to
// use the room.
const (
	generousAreaPx = 30000.0
	roomyAreaPx    = 25000.0
)

type heightBucket int

const (
	heightSmall heightBucket = iota
	heightMedium
	heightLarge
)

type aspectBucket int

const (
	aspectCompact aspectBucket = iota
	aspectBalanced
	aspectWide
)

// candidate is one row of the phase-1 decision table.
type candidate struct {
	logoPos       Position
	fromPos       Position
	logoScale     float64
	fontScale     float64
	showFromLabel bool
	showToLabel   bool
}

// decisionTable maps (height bucket, aspect bucket) to a starting
// combination. Every cell is populated; there is no fallback path.
var decisionTable = map[heightBucket]map[aspectBucket]candidate{
	heightSmall: {
		aspectCompact:  {TopCenter, TopLeft, 0.70, 0.90, false, false},
		aspectBalanced: {TopLeft, TopLeft, 0.75, 0.95, false, false},
		aspectWide:     {TopLeft, TopRight, 0.80, 1.00, false, false},
	},
	heightMedium: {
		aspectCompact:  {TopCenter, TopLeft, 0.90, 1.00, false, true},
		aspectBalanced: {TopCenter, TopLeft, 1.00, 1.00, true, true},
		aspectWide:     {TopLeft, TopRight, 1.10, 1.05, true, true},
	},
	heightLarge: {
		aspectCompact:  {TopCenter, TopLeft, 1.00, 1.05, true, true},
		aspectBalanced: {TopCenter, TopLeft, 1.15, 1.10, true, true},
		aspectWide:     {TopLeft, TopRight, 1.20, 1.10, true, true},
	},
}

// Suggest proposes layout options for the given label. hasLogo and
// hasFromAddress say whether the practice wants its logo and return
// address on the labels; fromLines is the return address's line count
// (used to judge content density, zero is fine).
func Suggest(dims label.Dimensions, hasLogo, hasFromAddress bool, fromLines int) Suggestion {
	heightPx := units.InchToPx(dims.Height)
	widthPx := units.InchToPx(dims.Width)

	s := phase1(heightPx, dims.AspectRatio(), hasLogo, hasFromAddress)
	s = phase2(s, heightPx, widthPx, hasLogo, fromLines)
	s = phase3(s, dims, heightPx)

	s.Options.ShowLogo = hasLogo
	s.Options.ShowFromAddress = hasFromAddress
	s.Options.Mode = layout.ModeAuto
	s.Options.Spacing = layout.SpacingNormal
	s.Options.FromFontScale = 1.0
	if s.FromPosition == TopRight {
		s.Options.FromPosition = layout.FromTopRight
	} else {
		s.Options.FromPosition = layout.FromTopLeft
	}
	if s.LogoPosition == TopCenter {
		s.Options.ToAlign = layout.AlignCenter
	}
	return s
}

// phase1 classifies the label and picks the starting combination from the
// decision table, then applies the content-presence overrides.
func phase1(heightPx, aspect float64, hasLogo, hasFromAddress bool) Suggestion {
	hb := heightMedium
	switch {
	case heightPx >= largeMinHeightPx:
		hb = heightLarge
	case heightPx < smallMaxHeightPx:
		hb = heightSmall
	}

	ab := aspectBalanced
	switch {
	case aspect < compactMaxAspect:
		ab = aspectCompact
	case aspect >= wideMinAspect:
		ab = aspectWide
	}

	c := decisionTable[hb][ab]
	s := Suggestion{
		LogoPosition: c.logoPos,
		FromPosition: c.fromPos,
		Options: layout.Options{
			LogoScale:     c.logoScale,
			FontScale:     c.fontScale,
			ShowFromLabel: c.showFromLabel,
			ShowToLabel:   c.showToLabel,
		},
	}
	s.note("%s label with %s proportions: logo %s, return address %s",
		heightName(hb), aspectName(ab), c.logoPos, c.fromPos)

	if !hasLogo {
		s.FromPosition = TopLeft
		s.note("no logo requested: return address pinned top-left")
	}
	if !hasFromAddress {
		s.LogoPosition = TopCenter
		s.note("no return address: logo centered")
	}
	return s
}

// phase2 nudges the size multipliers by a signed offset derived from
// content density and unused area, then clamps them to the advisor's
// conservative ranges.
func phase2(s Suggestion, heightPx, widthPx float64, hasLogo bool, fromLines int) Suggestion {
	offset := 0.0

	if hasLogo && fromLines > 2 {
		offset -= 0.15
		s.note("dense content (logo plus %d return lines): sizes reduced", fromLines)
	}

	area := heightPx * widthPx
	switch {
	case area > generousAreaPx:
		offset += 0.2
		s.note("generous label area: sizes increased")
	case area > roomyAreaPx && !hasLogo:
		offset += 0.1
		s.note("roomy label without logo: sizes increased")
	}

	if heightPx < tinyHeightPx {
		offset -= 0.1
		s.note("very short label: sizes reduced")
	}

	s.Options.LogoScale = clamp(s.Options.LogoScale+offset, 0.6, 1.4)
	s.Options.FontScale = clamp(s.Options.FontScale+offset/2, 0.8, 1.2)
	return s
}

// phase3 resolves known bad combinations. Every rule that fires leaves a
// reasoning line behind.
func phase3(s Suggestion, dims label.Dimensions, heightPx float64) Suggestion {
	if s.LogoPosition == TopCenter && s.FromPosition == TopLeft && dims.Width < 3.0 {
		s.FromPosition = BottomLeft
		s.note("centered logo would crowd the return address on a label under 3in wide: return address moved to bottom-left")
	}

	if s.LogoPosition == s.FromPosition {
		if s.FromPosition == TopLeft {
			s.FromPosition = TopRight
		} else {
			s.FromPosition = TopLeft
		}
		s.note("logo and return address shared the %s corner: return address moved to %s", s.LogoPosition, s.FromPosition)
	}

	if heightPx < captionMinHeightPx && (s.Options.ShowFromLabel || s.Options.ShowToLabel) {
		s.Options.ShowFromLabel = false
		s.Options.ShowToLabel = false
		s.note("label under %.0f reference px tall: From:/To: captions dropped to save height", captionMinHeightPx)
	}

	if s.FromPosition == BottomLeft {
		s.Options.FontScale = clamp(s.Options.FontScale-0.05, 0.8, 1.2)
		s.note("bottom return address: font trimmed to leave branding room")
	}
	return s
}

func (s *Suggestion) note(format string, args ...any) {
	s.Reasoning = append(s.Reasoning, fmt.Sprintf(format, args...))
}

func heightName(h heightBucket) string {
	switch h {
	case heightSmall:
		return "small"
	case heightLarge:
		return "large"
	default:
		return "medium"
	}
}

func aspectName(a aspectBucket) string {
	switch a {
	case aspectCompact:
		return "compact"
	case aspectWide:
		return "wide"
	default:
		return "balanced"
	}
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
