package document

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/signintech/gopdf"

	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/layout"
	"github.com/meridianpm/labelpress/pkg/label/template"
	"github.com/meridianpm/labelpress/pkg/label/units"
)

const fontName = "label"

// Option configures a Renderer.
type Option func(*Renderer)

// WithFromAddress sets the return address drawn in the from zone.
func WithFromAddress(a label.Address) Option {
	return func(r *Renderer) { r.from = a; r.hasFrom = true }
}

// WithBranding sets the branding footer text.
func WithBranding(text string) Option {
	return func(r *Renderer) { r.branding = text }
}

// WithLogo sets the logo descriptor placed in the logo zone. Descriptors
// in unrecognized formats are skipped per label at render time.
func WithLogo(l Logo) Option {
	return func(r *Renderer) { r.logo = l; r.hasLogo = true }
}

// WithLogger sets the logger used for per-label skip diagnostics.
// Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// Renderer paginates recipient batches onto US Letter label sheets. One
// renderer produces one PDF document; create a fresh one per export.
// Independent renderers share no state and may run concurrently.
type Renderer struct {
	pdf      *gopdf.GoPdf
	from     label.Address
	hasFrom  bool
	branding string
	logo     Logo
	hasLogo  bool
	logger   *log.Logger
}

// NewRenderer creates a PDF renderer drawing with the TTF font at
// fontPath. The page is always US Letter in points; label positions come
// from the sheet template at render time.
func NewRenderer(fontPath string, opts ...Option) (*Renderer, error) {
	p := &gopdf.GoPdf{}
	p.Start(gopdf.Config{
		PageSize: *gopdf.PageSizeLetter,
		Unit:     gopdf.UnitPT,
	})

	if err := p.AddTTFFont(fontName, fontPath); err != nil {
		return nil, fmt.Errorf("load font %s: %w", fontPath, err)
	}

	r := &Renderer{pdf: p, logger: log.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render lays the recipients onto sheet pages. The layout is computed once
// by the caller for the (template, options) combination and shared by
// every cell. An empty batch produces a single blank page so the document
// stays valid.
func (r *Renderer) Render(t template.Template, l layout.Layout, recipients []label.Data) error {
	if len(recipients) == 0 {
		r.pdf.AddPage()
		return nil
	}

	perPage := t.PerPage()
	for i, rec := range recipients {
		if i%perPage == 0 {
			r.pdf.AddPage()
		}
		col, row := GridPos(t, i%perPage)
		if err := r.drawCell(CellRect(t, col, row), l, rec); err != nil {
			return fmt.Errorf("label %d: %w", i+1, err)
		}
	}
	return nil
}

// Bytes returns the finished PDF document.
func (r *Renderer) Bytes() []byte {
	return r.pdf.GetBytesPdf()
}

// WriteFile writes the finished PDF to path.
func (r *Renderer) WriteFile(path string) error {
	return r.pdf.WritePdf(path)
}

// drawCell draws one label's zones into its page rectangle.
func (r *Renderer) drawCell(cell Rect, l layout.Layout, rec label.Data) error {
	for _, z := range l.Zones {
		if !z.Visible {
			continue
		}
		rect := ZoneRect(cell, z)

		switch z.Type {
		case layout.ZoneLogo:
			r.drawLogo(rect)
		case layout.ZoneFrom:
			if r.hasFrom {
				if err := r.drawLines(rect, z, r.from.Lines()); err != nil {
					return err
				}
			}
		case layout.ZoneTo:
			if err := r.drawLines(rect, z, nonEmpty(rec.Lines())); err != nil {
				return err
			}
		case layout.ZoneBranding:
			if r.branding != "" {
				if err := r.drawLines(rect, z, []string{r.branding}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// drawLines draws the zone caption (if any) and the text lines top to
// bottom, truncating each to the zone width. Line positions advance by the
// layout's line height converted to points, so the printed geometry tracks
// the preview exactly.
func (r *Renderer) drawLines(rect Rect, z layout.Zone, lines []string) error {
	y := rect.Y

	if z.Caption != "" {
		captionPt := units.PxToPt(z.CaptionSize)
		if err := r.pdf.SetFont(fontName, "", captionPt); err != nil {
			return err
		}
		r.drawAligned(rect, y, z, z.Caption)
		y += captionPt * lineRatio(z)
	}

	fontPt := units.PxToPt(z.FontSize)
	linePt := units.PxToPt(z.LineHeight)
	if err := r.pdf.SetFont(fontName, "", fontPt); err != nil {
		return err
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		txt := Truncate(line, rect.W, r.measure)
		r.drawAligned(rect, y, z, txt)
		y += linePt
	}
	return nil
}

// drawAligned positions one line inside the zone per its alignment and
// draws it at the current font.
func (r *Renderer) drawAligned(rect Rect, y float64, z layout.Zone, text string) {
	if text == "" {
		return
	}
	x := rect.X
	switch z.Align {
	case layout.AlignCenter:
		x = rect.X + (rect.W-r.measure(text))/2
	case layout.AlignRight:
		x = rect.X + rect.W - r.measure(text)
	}
	if x < rect.X {
		x = rect.X
	}

	r.pdf.SetX(x)
	r.pdf.SetY(y)
	if err := r.pdf.Cell(nil, text); err != nil {
		r.logger.Warn("draw text", "text", text, "err", err)
	}
}

// drawLogo embeds the logo raster fitted to the zone rectangle. Anything
// that cannot be embedded is logged and skipped; the rest of the label
// renders normally.
func (r *Renderer) drawLogo(rect Rect) {
	if !r.hasLogo {
		return
	}
	if !r.logo.Embeddable() {
		r.logger.Warn("skipping logo: unrecognized format", "format", r.logo.Format)
		return
	}

	holder, err := gopdf.ImageHolderByBytes(r.logo.Data)
	if err != nil {
		r.logger.Warn("skipping logo: unreadable image data", "err", err)
		return
	}
	if err := r.pdf.ImageByHolder(holder, rect.X, rect.Y, &gopdf.Rect{W: rect.W, H: rect.H}); err != nil {
		r.logger.Warn("skipping logo: embed failed", "err", err)
	}
}

// measure reports the width of text at the current font, in points.
func (r *Renderer) measure(text string) float64 {
	w, err := r.pdf.MeasureTextWidth(text)
	if err != nil {
		return 0
	}
	return w
}

// lineRatio is the zone's line-height to font-size ratio, used to advance
// past the caption line at the caption's own size.
func lineRatio(z layout.Zone) float64 {
	if z.FontSize == 0 {
		return 1.35
	}
	return z.LineHeight / z.FontSize
}

// nonEmpty filters the nominal destination lines down to the ones that
// carry text. Zone geometry stays put; only the drawn lines change.
func nonEmpty(lines [label.NominalToLines]string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
