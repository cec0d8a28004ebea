// Package recipients supplies the label batches to render.
//
// The renderers only consume []label.Data; where that data comes from is
// this package's concern. Two providers are included: a JSON file provider
// for the CLI and a MongoDB provider reading address documents from the
// surrounding practice-management database. CSV import does not live here;
// the application layer owns that pipeline.
package recipients

import (
	"context"

	"github.com/meridianpm/labelpress/pkg/label"
)

// Provider supplies one batch of recipients.
type Provider interface {
	List(ctx context.Context) ([]label.Data, error)
}

// filter drops records with no printable content so a trailing blank row
// in an export does not consume a label.
func filter(in []label.Data) []label.Data {
	out := make([]label.Data, 0, len(in))
	for _, d := range in {
		if !d.IsEmpty() {
			out = append(out, d)
		}
	}
	return out
}
