package document

// MeasureFunc reports the rendered width of a string in the renderer's
// output units. The PDF renderer backs this with gopdf's font metrics;
// tests substitute a fixed-width stand-in.
type MeasureFunc func(string) float64

const ellipsis = "…"

// Truncate shortens text until measure(text) fits maxWidth, appending an
// ellipsis when anything was removed. Text is never wrapped; labels have
// no room for a second line that the layout did not reserve.
//
// The loop removes one trailing rune at a time so multi-byte characters
// survive. If even a single rune plus the ellipsis cannot fit, the result
// is the bare ellipsis (or the empty string when maxWidth is tiny).
func Truncate(text string, maxWidth float64, measure MeasureFunc) string {
	if text == "" || measure(text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}

	if measure(ellipsis) <= maxWidth {
		return ellipsis
	}
	return ""
}
