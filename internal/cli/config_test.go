package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meridianpm/labelpress/pkg/label/template"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
template = "avery5163"
font = "/fonts/DejaVuSans.ttf"
branding = "meridianpt.example.com"

[from]
name = "Meridian Physical Therapy"
address1 = "410 Commerce Dr"
city = "Dayton"
state = "OH"
zip = "45402"

[cache]
redis = "localhost:6379"

[mongo]
uri = "mongodb://localhost:27017"
database = "practice"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Template != "avery5163" {
		t.Errorf("Template = %q", cfg.Template)
	}
	if cfg.From.Name != "Meridian Physical Therapy" {
		t.Errorf("From.Name = %q", cfg.From.Name)
	}
	if cfg.Cache.Redis != "localhost:6379" {
		t.Errorf("Cache.Redis = %q", cfg.Cache.Redis)
	}
	if cfg.Mongo.Database != "practice" {
		t.Errorf("Mongo.Database = %q", cfg.Mongo.Database)
	}
}

func TestLoadConfigDefaultsTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`branding = "x"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Template != template.Default {
		t.Errorf("Template = %q, want the catalog default", cfg.Template)
	}
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicit missing config should fail")
	}
}

func TestLoadLogo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Logo: path}
	data, format, err := cfg.loadLogo()
	if err != nil {
		t.Fatalf("loadLogo: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if len(data) != 4 {
		t.Errorf("data length = %d", len(data))
	}

	empty := Config{}
	if data, _, err := empty.loadLogo(); err != nil || data != nil {
		t.Errorf("unset logo = %v, %v", data, err)
	}
}
