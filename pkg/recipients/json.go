package recipients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/meridianpm/labelpress/pkg/label"
)

// batch is the JSON file shape: a "recipients" array of address records.
type batch struct {
	Recipients []label.Data `json:"recipients"`
}

// ReadJSON decodes a recipient batch from r.
//
// The input must be a JSON object with a "recipients" array:
//
//	{
//	  "recipients": [
//	    {"contact": "Dr. A. Patel", "address1": "12 Main St",
//	     "city": "Dayton", "state": "OH", "zip": "45402"}
//	  ]
//	}
//
// Records with no printable content are dropped. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) ([]label.Data, error) {
	var b batch
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return filter(b.Recipients), nil
}

// ImportJSON reads a recipient batch from the file at path.
func ImportJSON(path string) ([]label.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	recs, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// WriteJSON encodes a recipient batch to w, pretty-printed.
func WriteJSON(w io.Writer, recs []label.Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(batch{Recipients: recs})
}

// FileProvider is a Provider reading from a JSON file on every call.
type FileProvider struct {
	Path string
}

// List reads the batch from the file.
func (p FileProvider) List(ctx context.Context) ([]label.Data, error) {
	return ImportJSON(p.Path)
}

var _ Provider = FileProvider{}
