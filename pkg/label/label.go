// Package label defines the data types shared by the layout engine and the
// renderers: physical label dimensions and per-recipient address data.
package label

import "strings"

// Dimensions is the physical size of a single label in inches.
// Both values must be positive; callers validate before handing dimensions
// to the layout engine.
type Dimensions struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Valid reports whether both dimensions are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// AspectRatio returns width divided by height.
func (d Dimensions) AspectRatio() float64 {
	if d.Height == 0 {
		return 0
	}
	return d.Width / d.Height
}

// Data holds one recipient's address. Fields may be empty; empty lines are
// skipped at render time while the layout keeps its nominal line envelope,
// so labels in a batch with uneven data stay vertically aligned.
type Data struct {
	Contact  string `json:"contact" bson:"contact"`
	Address1 string `json:"address1" bson:"address1"`
	Address2 string `json:"address2,omitempty" bson:"address2,omitempty"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state" bson:"state"`
	Zip      string `json:"zip" bson:"zip"`
}

// NominalToLines is the number of destination lines every layout reserves
// space for, whether or not the recipient fills them all.
const NominalToLines = 4

// Lines returns the destination address as its nominal four lines:
// contact, address1, address2, and the city/state/zip line. Lines the
// recipient does not fill come back as empty strings so the caller can
// skip them while preserving slot positions.
func (d Data) Lines() [NominalToLines]string {
	return [NominalToLines]string{
		d.Contact,
		d.Address1,
		d.Address2,
		d.CityLine(),
	}
}

// CityLine formats the "City, ST 12345" line, omitting whatever parts are
// missing.
func (d Data) CityLine() string {
	var b strings.Builder
	if d.City != "" {
		b.WriteString(d.City)
	}
	if d.State != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.State)
	}
	if d.Zip != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(d.Zip)
	}
	return b.String()
}

// IsEmpty reports whether the record carries no printable content at all.
func (d Data) IsEmpty() bool {
	return d.Contact == "" && d.Address1 == "" && d.Address2 == "" &&
		d.City == "" && d.State == "" && d.Zip == ""
}

// Address is the return (from) address printed in the corner of each label.
type Address struct {
	Name     string `json:"name" toml:"name"`
	Address1 string `json:"address1" toml:"address1"`
	Address2 string `json:"address2,omitempty" toml:"address2"`
	City     string `json:"city" toml:"city"`
	State    string `json:"state" toml:"state"`
	Zip      string `json:"zip" toml:"zip"`
}

// MaxFromLines is the number of return-address lines a label will display;
// anything beyond is dropped.
const MaxFromLines = 3

// Lines returns the return address collapsed to at most [MaxFromLines]
// non-empty lines: name, street, city line. A second street line is folded
// into the first with a comma so nothing silently disappears.
func (a Address) Lines() []string {
	street := a.Address1
	if a.Address2 != "" {
		if street != "" {
			street += ", " + a.Address2
		} else {
			street = a.Address2
		}
	}
	city := Data{City: a.City, State: a.State, Zip: a.Zip}.CityLine()

	lines := make([]string, 0, MaxFromLines)
	for _, l := range []string{a.Name, street, city} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
