package layout

import "encoding/json"

// The option enums travel as their string names in JSON so UI payloads
// read naturally ("spacing": "compact"). Unknown names are decode errors,
// not silent fallbacks.

// MarshalJSON encodes the spacing as its name.
func (s LineSpacing) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// UnmarshalJSON decodes a spacing name.
func (s *LineSpacing) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	v, err := ParseLineSpacing(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON encodes the alignment as its name.
func (a Alignment) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

// UnmarshalJSON decodes an alignment name.
func (a *Alignment) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	v, err := ParseAlignment(name)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalJSON encodes the position as its name.
func (p FromPosition) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

// UnmarshalJSON decodes a position name.
func (p *FromPosition) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	v, err := ParseFromPosition(name)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalJSON encodes the mode as its name.
func (m Mode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

// UnmarshalJSON decodes a mode name.
func (m *Mode) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	v, err := ParseMode(name)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
