package layout

import (
	"encoding/json"
	"testing"
)

func TestSpacingMultiplier(t *testing.T) {
	tests := []struct {
		s    LineSpacing
		want float64
	}{
		{SpacingCompact, 1.15},
		{SpacingNormal, 1.35},
		{SpacingRelaxed, 1.55},
	}
	for _, tt := range tests {
		if got := tt.s.Multiplier(); got != tt.want {
			t.Errorf("%s.Multiplier() = %g, want %g", tt.s, got, tt.want)
		}
	}
}

func TestParseRejectsUnknownNames(t *testing.T) {
	if _, err := ParseLineSpacing("loose"); err == nil {
		t.Error("ParseLineSpacing accepted an unknown name")
	}
	if _, err := ParseAlignment("justify"); err == nil {
		t.Error("ParseAlignment accepted an unknown name")
	}
	if _, err := ParseFromPosition("bottom-left"); err == nil {
		t.Error("ParseFromPosition accepted an unknown name")
	}
	if _, err := ParseMode("manual"); err == nil {
		t.Error("ParseMode accepted an unknown name")
	}
}

func TestClamped(t *testing.T) {
	o := DefaultOptions()
	o.LogoScale = 100
	o.FontScale = 0
	o.FromFontScale = -3

	c := o.Clamped()
	if c.LogoScale != MaxLogoScale {
		t.Errorf("LogoScale = %g, want %g", c.LogoScale, MaxLogoScale)
	}
	if c.FontScale != MinFontScale {
		t.Errorf("FontScale = %g, want %g", c.FontScale, MinFontScale)
	}
	if c.FromFontScale != MinFromFontScale {
		t.Errorf("FromFontScale = %g, want %g", c.FromFontScale, MinFromFontScale)
	}

	// In-range values pass through untouched.
	if d := DefaultOptions().Clamped(); d != DefaultOptions() {
		t.Error("Clamped() changed in-range defaults")
	}
}

func TestOptionsJSONNames(t *testing.T) {
	o := DefaultOptions()
	o.Spacing = SpacingRelaxed
	o.ToAlign = AlignCenter
	o.Mode = ModeStacked

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["spacing"] != "relaxed" {
		t.Errorf("spacing encoded as %v, want the name", m["spacing"])
	}
	if m["to_align"] != "center" {
		t.Errorf("to_align encoded as %v", m["to_align"])
	}
	if m["mode"] != "stacked" {
		t.Errorf("mode encoded as %v", m["mode"])
	}

	var back Options
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal into Options: %v", err)
	}
	if back != o {
		t.Errorf("round trip changed options: %+v vs %+v", back, o)
	}
}

func TestOptionsJSONRejectsUnknownEnum(t *testing.T) {
	var o Options
	err := json.Unmarshal([]byte(`{"spacing": "extra-loose"}`), &o)
	if err == nil {
		t.Error("unknown spacing name should fail to decode")
	}
}
