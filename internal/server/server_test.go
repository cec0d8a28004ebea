package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meridianpm/labelpress/pkg/label"
)

func testServer() *Server {
	return New(Config{
		From: label.Address{
			Name:     "Meridian Physical Therapy",
			Address1: "410 Commerce Dr",
			City:     "Dayton",
			State:    "OH",
			Zip:      "45402",
		},
		Branding: "meridianpt.example.com",
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Job-ID") == "" {
		t.Error("expected X-Job-ID header")
	}
}

func TestTemplatesEndpoint(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodGet, "/v1/templates", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Default   string `json:"default"`
		Templates []struct {
			Key string `json:"key"`
		} `json:"templates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Default != "avery5160" {
		t.Errorf("default = %q, want avery5160", body.Default)
	}
	if len(body.Templates) < 5 {
		t.Errorf("got %d templates, want at least 5", len(body.Templates))
	}
}

func TestLayoutEndpoint(t *testing.T) {
	body := `{"dimensions": {"width": 2.625, "height": 1.0}, "to_lines": 4}`
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/v1/layout", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var l struct {
		TwoZone bool `json:"two_zone"`
		Zones   []struct {
			Type string `json:"type"`
		} `json:"zones"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l.TwoZone {
		t.Error("1in-tall label should not be two-zone")
	}
	found := false
	for _, z := range l.Zones {
		if z.Type == "to" {
			found = true
		}
	}
	if !found {
		t.Error("layout missing destination zone")
	}
}

func TestLayoutEndpointByTemplate(t *testing.T) {
	body := `{"template": "avery5163", "options": {"show_logo": true, "logo_scale": 1.0, "font_scale": 1.0, "from_font_scale": 1.0, "spacing": "normal", "to_align": "left", "from_position": "top-left", "mode": "auto"}}`
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/v1/layout", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestLayoutEndpointRejectsBadDimensions(t *testing.T) {
	body := `{"dimensions": {"width": -1, "height": 1}}`
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/v1/layout", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var e errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Code != "INVALID_DIMENSIONS" {
		t.Errorf("code = %q, want INVALID_DIMENSIONS", e.Code)
	}
}

func TestLayoutEndpointRejectsUnknownSpacing(t *testing.T) {
	body := `{"dimensions": {"width": 2, "height": 1}, "options": {"spacing": "extra-loose"}}`
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/v1/layout", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLayoutEndpointUnknownTemplate(t *testing.T) {
	body := `{"template": "avery9999"}`
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/v1/layout", body)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSuggestEndpoint(t *testing.T) {
	body := `{"dimensions": {"width": 4.0, "height": 2.0}, "has_logo": true, "has_from_address": true, "from_lines": 3}`
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/v1/suggest", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var s struct {
		LogoPosition string   `json:"logo_position"`
		FromPosition string   `json:"from_position"`
		Reasoning    []string `json:"reasoning"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.LogoPosition == "" || s.FromPosition == "" {
		t.Error("suggestion missing positions")
	}
	if len(s.Reasoning) == 0 {
		t.Error("suggestion missing reasoning")
	}
}

func TestPreviewEndpoint(t *testing.T) {
	body := `{
		"template": "avery5160",
		"options": {
			"show_from_address": true, "show_branding": true,
			"logo_scale": 1.0, "font_scale": 1.0, "from_font_scale": 1.0,
			"spacing": "normal", "to_align": "left",
			"from_position": "top-left", "mode": "auto"
		},
		"scale": 2.0,
		"recipient": {"contact": "Dr. A. Patel", "address1": "12 Main St", "city": "Dayton", "state": "OH", "zip": "45402"}
	}`
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/v1/preview", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var f struct {
		Width float64 `json:"width"`
		Scale float64 `json:"scale"`
		Boxes []struct {
			Type  string   `json:"type"`
			Lines []string `json:"lines"`
		} `json:"boxes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f.Scale != 2.0 {
		t.Errorf("scale = %g, want 2.0", f.Scale)
	}
	// 2.625in * 96px/in * 2.0
	if want := 2.625 * 96 * 2; f.Width != want {
		t.Errorf("width = %g, want %g", f.Width, want)
	}
	for _, b := range f.Boxes {
		if b.Type == "to" && len(b.Lines) == 0 {
			t.Error("destination box has no lines despite recipient data")
		}
	}
}

func TestRenderEndpointUnknownTemplate(t *testing.T) {
	body := `{"template": "nope", "recipients": []}`
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/v1/render", body)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestBadJSONRejected(t *testing.T) {
	rec := doJSON(t, testServer().Handler(), http.MethodPost, "/v1/layout", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
