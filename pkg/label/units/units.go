// Package units defines the shared measurement constants for the label
// layout engine and its renderers.
//
// The layout engine works in "reference pixels": label dimensions in inches
// are converted to pixels at a fixed [RefDPI] before any geometry is
// computed. Both renderers start from the same reference scale and apply
// their own conversion (screen pixels keep the scale, print points use
// [PtPerPx]). Keeping the constant in one place is what makes the preview
// and the printed document land every zone at the identical relative
// position.
package units

// RefDPI is the reference resolution, in pixels per inch, used by the
// layout engine as its internal working scale.
const RefDPI = 96.0

// PtPerInch is the number of PostScript points per inch.
const PtPerInch = 72.0

// PtPerPx converts reference pixels to print points.
const PtPerPx = PtPerInch / RefDPI

// InchToPx converts a length in inches to reference pixels.
func InchToPx(in float64) float64 { return in * RefDPI }

// InchToPt converts a length in inches to print points.
func InchToPt(in float64) float64 { return in * PtPerInch }

// PxToPt converts reference pixels to print points.
func PxToPt(px float64) float64 { return px * PtPerPx }

// PtToPx converts print points to reference pixels.
func PtToPx(pt float64) float64 { return pt / PtPerPx }
