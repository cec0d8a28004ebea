package document

import "strings"

// Logo is a ready-to-embed raster descriptor supplied by the surrounding
// application's logo provider. The renderer does not decode the raster; it
// hands the bytes to the PDF writer as-is.
type Logo struct {
	// Format is the raster format tag, e.g. "png" or "jpeg".
	Format string
	// Data is the encoded image.
	Data []byte
}

// rasterFormats are the format tags the PDF writer can embed.
var rasterFormats = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
}

// Embeddable reports whether the descriptor carries data in a recognized
// raster format. Unrecognized descriptors are skipped at render time, not
// rejected up front.
func (l Logo) Embeddable() bool {
	return len(l.Data) > 0 && rasterFormats[strings.ToLower(l.Format)]
}
