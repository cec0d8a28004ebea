package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/units"
)

// Geometry policy constants. All vertical percentages are of label height,
// horizontal percentages of label width.
const (
	// padPct is the breathing room reserved at the top and bottom edges.
	padPct = 3.0

	// sidePadPct is the breathing room at the left and right edges.
	sidePadPct = 2.0

	// twoZoneMinHeightPx is the reference-pixel height at or above which
	// ModeAuto picks the stacked layout (when a logo is shown).
	twoZoneMinHeightPx = 240.0

	// Nominal logo zone heights as a percentage of label height, before
	// the logo multiplier is applied. The stacked layout gives the logo a
	// dedicated band; without a return address the destination gets the
	// rest, so the logo band can grow.
	twoZoneLogoPct      = 30.0
	twoZoneLogoPctSolo  = 38.0
	standardLogoPct     = 18.0
	standardLogoPctSolo = 25.0

	// Derived font-size factors relative to the bucketed base size.
	fromFontFactor    = 0.8
	captionFontFactor = 0.7
	brandFontFactor   = 0.6

	// Auto-adjustment: each pass shrinks the logo by this factor, up to
	// maxAdjustPasses passes. 0.75^4 leaves roughly 32% of the requested
	// size, a 68% reduction ceiling.
	logoShrink      = 0.75
	maxAdjustPasses = 4
)

// Calculate solves the zone placement for one label geometry. It is pure
// and deterministic: the same dimensions, options, and line counts always
// produce the same Layout, so calls may run concurrently without
// coordination.
//
// fromLines is the number of return-address lines the caller intends to
// draw (capped at label.MaxFromLines). toLines is the nominal destination
// line count to reserve; zero or negative falls back to
// label.NominalToLines. The engine reserves the nominal envelope even when
// some lines are empty, which keeps a batch of heterogeneous recipients
// vertically aligned.
//
// Dimensions must be positive; validating them is the caller's job.
//
// When the reserved content is taller than the label and a logo is shown,
// Calculate reruns itself with the logo multiplier shrunk by 25% per pass,
// up to four passes. Only the logo shrinks; font sizes and spacing are
// left alone so text stays legible. If the content still does not fit the
// layout is returned with HasOverflow set and a warning in Description.
func Calculate(dims label.Dimensions, opts Options, fromLines, toLines int) Layout {
	opts = opts.Clamped()

	if fromLines > label.MaxFromLines {
		fromLines = label.MaxFromLines
	}
	if fromLines < 0 {
		fromLines = 0
	}
	if toLines <= 0 {
		toLines = label.NominalToLines
	}

	heightPx := units.InchToPx(dims.Height)

	twoZone := false
	switch opts.Mode {
	case ModeStacked:
		twoZone = true
	case ModeSplit:
		twoZone = false
	case ModeAuto:
		twoZone = heightPx >= twoZoneMinHeightPx && opts.ShowLogo
	}

	var result Layout
	for pass := 0; pass <= maxAdjustPasses; pass++ {
		effLogo := clamp(opts.LogoScale*math.Pow(logoShrink, float64(pass)), MinLogoScale, MaxLogoScale)
		result = solve(heightPx, opts, twoZone, effLogo, fromLines, toLines)
		result.AdjustPasses = pass
		result.EffectiveLogoScale = effLogo
		if !result.HasOverflow || !opts.ShowLogo {
			break
		}
	}

	result.Description = describe(result, opts)
	return result
}

// solve computes a single candidate placement with a fixed effective logo
// multiplier. It never loops; Calculate drives the adjustment passes.
func solve(heightPx float64, opts Options, twoZone bool, effLogo float64, fromLines, toLines int) Layout {
	base := baseFontSize(heightPx)
	lineMult := opts.Spacing.Multiplier()

	toFont := base * opts.FontScale
	fromFont := base * fromFontFactor * opts.FromFontScale
	captionFont := base * captionFontFactor * opts.FontScale
	brandFont := base * brandFontFactor

	toLH := toFont * lineMult
	fromLH := fromFont * lineMult
	captionLH := captionFont * lineMult
	brandLH := brandFont * lineMult

	padPx := heightPx * padPct / 100

	logoPx := 0.0
	if opts.ShowLogo {
		nominal := standardLogoPct
		switch {
		case twoZone && !opts.ShowFromAddress:
			nominal = twoZoneLogoPctSolo
		case twoZone:
			nominal = twoZoneLogoPct
		case !opts.ShowFromAddress:
			nominal = standardLogoPctSolo
		}
		logoPx = heightPx * nominal / 100 * effLogo
	}

	fromPx := 0.0
	if opts.ShowFromAddress && fromLines > 0 {
		fromPx = float64(fromLines) * fromLH
		if opts.ShowFromLabel {
			fromPx += captionLH
		}
	}

	toPx := float64(toLines) * toLH
	if opts.ShowToLabel {
		toPx += captionLH
	}

	brandPx := 0.0
	if opts.ShowBranding {
		brandPx = brandLH
	}

	pct := func(px float64) float64 { return px / heightPx * 100 }

	l := Layout{
		LabelHeightPx:      heightPx,
		TwoZone:            twoZone,
		TotalContentHeight: 2*padPx + logoPx + fromPx + toPx + brandPx,
	}
	l.HasOverflow = l.TotalContentHeight > heightPx

	y := pct(padPx)

	if logoPx > 0 {
		l.Zones = append(l.Zones, Zone{
			Type:    ZoneLogo,
			Top:     y,
			Left:    sidePadPct,
			Width:   100 - 2*sidePadPct,
			Height:  pct(logoPx),
			Align:   AlignCenter,
			Visible: true,
		})
		y += pct(logoPx)
	}

	if fromPx > 0 {
		// The return address takes one horizontal half; the destination
		// may overlap it horizontally but never vertically.
		const halfWidth = 50 - sidePadPct
		left, align := sidePadPct, AlignLeft
		if opts.FromPosition == FromTopRight {
			left, align = 50.0, AlignRight
		}
		z := Zone{
			Type:       ZoneFrom,
			Top:        y,
			Left:       left,
			Width:      halfWidth,
			Height:     pct(fromPx),
			FontSize:   fromFont,
			LineHeight: fromLH,
			Align:      align,
			Visible:    true,
		}
		if opts.ShowFromLabel {
			z.Caption, z.CaptionSize = "From:", captionFont
		}
		l.Zones = append(l.Zones, z)
		y += pct(fromPx)
	}

	// The destination gets whatever vertical room remains above the
	// branding footer, its content centered in that band.
	remTop := y
	remBottom := 100 - pct(padPx) - pct(brandPx)
	remaining := remBottom - remTop
	toHeight := pct(toPx)
	toTop := remTop
	if toHeight < remaining {
		toTop = remTop + (remaining-toHeight)/2
	}
	toZone := Zone{
		Type:       ZoneTo,
		Top:        toTop,
		Left:       sidePadPct,
		Width:      100 - 2*sidePadPct,
		Height:     toHeight,
		FontSize:   toFont,
		LineHeight: toLH,
		Align:      opts.ToAlign,
		Visible:    true,
	}
	if opts.ShowToLabel {
		toZone.Caption, toZone.CaptionSize = "To:", captionFont
	}
	l.Zones = append(l.Zones, toZone)

	if brandPx > 0 {
		l.Zones = append(l.Zones, Zone{
			Type:       ZoneBranding,
			Top:        remBottom,
			Left:       sidePadPct,
			Width:      100 - 2*sidePadPct,
			Height:     pct(brandPx),
			FontSize:   brandFont,
			LineHeight: brandLH,
			Align:      AlignCenter,
			Visible:    true,
		})
	}

	return l
}

// baseFontSize buckets the label height into a starting font size in
// reference pixels. Multipliers scale from here.
func baseFontSize(heightPx float64) float64 {
	switch {
	case heightPx < 80:
		return 8
	case heightPx < 120:
		return 10
	case heightPx < 180:
		return 12
	case heightPx < 260:
		return 14
	case heightPx < 350:
		return 16
	default:
		return 18
	}
}

// describe renders the resolved flow as a short human-readable summary,
// e.g. "Stacked layout: Logo → From → To (centered)". Auto-adjustment and
// overflow notes are appended when they apply.
func describe(l Layout, opts Options) string {
	var parts []string
	if _, ok := l.Zone(ZoneLogo); ok {
		parts = append(parts, "Logo")
	}
	if _, ok := l.Zone(ZoneFrom); ok {
		parts = append(parts, fmt.Sprintf("From (%s)", opts.FromPosition))
	}
	parts = append(parts, fmt.Sprintf("To (%s)", alignWord(opts.ToAlign)))
	if _, ok := l.Zone(ZoneBranding); ok {
		parts = append(parts, "Branding")
	}

	mode := "Standard layout"
	if l.TwoZone {
		mode = "Stacked layout"
	}
	desc := mode + ": " + strings.Join(parts, " → ")

	if l.AdjustPasses > 0 {
		reduction := (1 - math.Pow(logoShrink, float64(l.AdjustPasses))) * 100
		desc += fmt.Sprintf(" — logo reduced %.0f%% to fit", reduction)
	}
	if l.HasOverflow {
		desc += " — warning: content overflows label"
	}
	return desc
}

func alignWord(a Alignment) string {
	switch a {
	case AlignCenter:
		return "centered"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}
