package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/meridianpm/labelpress/pkg/label"
	"github.com/meridianpm/labelpress/pkg/label/template"
	"github.com/meridianpm/labelpress/pkg/recipients"
)

// Config is the practice profile loaded from a TOML file. Everything is
// optional; zero values fall back to built-in defaults, and commands
// override individual fields with flags.
//
// Example:
//
//	template = "avery5160"
//	font = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
//	branding = "meridianpt.example.com"
//	logo = "assets/logo.png"
//
//	[from]
//	name = "Meridian Physical Therapy"
//	address1 = "410 Commerce Dr"
//	city = "Dayton"
//	state = "OH"
//	zip = "45402"
//
//	[cache]
//	dir = "/var/cache/labelpress"
//	redis = "localhost:6379"
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
//	database = "practice"
//	collection = "referral_sources"
type Config struct {
	// Template is the default sheet template key.
	Template string `toml:"template"`

	// Font is the TTF font file used for PDF output.
	Font string `toml:"font"`

	// Branding is the footer text printed on each label, empty to omit.
	Branding string `toml:"branding"`

	// Logo is the path to the practice logo raster (png or jpg).
	Logo string `toml:"logo"`

	// From is the practice's return address.
	From label.Address `toml:"from"`

	Cache CacheConfig            `toml:"cache"`
	Mongo recipients.MongoConfig `toml:"mongo"`
}

// CacheConfig selects the artifact cache backend. Redis wins over Dir
// when both are set.
type CacheConfig struct {
	Dir   string `toml:"dir"`
	Redis string `toml:"redis"`
}

// configPath returns the default config file location
// (~/.config/labelpress/config.toml, honoring XDG_CONFIG_HOME).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file is not an error; a missing
// explicit file is.
func loadConfig(path string) (Config, error) {
	cfg := Config{Template: template.Default}

	explicit := path != ""
	if !explicit {
		path = configPath()
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.Template == "" {
		cfg.Template = template.Default
	}
	return cfg, nil
}

// loadLogo reads the configured logo file and tags its format from the
// extension. An unset path returns an empty descriptor.
func (c Config) loadLogo() (data []byte, format string, err error) {
	if c.Logo == "" {
		return nil, "", nil
	}
	data, err = os.ReadFile(c.Logo)
	if err != nil {
		return nil, "", fmt.Errorf("read logo %s: %w", c.Logo, err)
	}
	ext := filepath.Ext(c.Logo)
	if len(ext) > 1 {
		format = ext[1:]
	}
	return data, format, nil
}
