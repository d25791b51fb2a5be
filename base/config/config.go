package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/safing/taxglobe/base/log"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "config.yaml"

// Config is the taxglobe configuration file.
type Config struct {
	Dataset      string     `yaml:"dataset"`
	Sources      Sources    `yaml:"sources"`
	Data         Data       `yaml:"data"`
	Render       Render     `yaml:"render"`
	Animation    Animation  `yaml:"animation"`
	Overrides    []Override `yaml:"overrides"`
	Skip         []string   `yaml:"skip"`
	Log          Log        `yaml:"log"`
	DatasetsFile string     `yaml:"datasets_file"`
	// MetricsFile receives run metrics in the prometheus text format.
	MetricsFile string `yaml:"metrics_file"`
}

// Source describes one geometry source.
type Source struct {
	Path       string   `yaml:"path"`
	DissolveBy string   `yaml:"dissolve_by"`
	CodeFields []string `yaml:"code_fields"`
	NameField  string   `yaml:"name_field"`
	Layer      string   `yaml:"layer"`
}

// Sources holds the geometry sources.
type Sources struct {
	Primary        Source `yaml:"primary"`
	Fallback       Source `yaml:"fallback"`
	Islands        Source `yaml:"islands"`
	SovereignField string `yaml:"sovereign_field"`
	SplitSovereign string `yaml:"split_sovereign"`
	AdminField     string `yaml:"admin_field"`
}

// Override replaces a country with rows of the split-out sovereign.
type Override struct {
	Code  string `yaml:"code"`
	Name  string `yaml:"name"`
	Admin string `yaml:"admin"`
}

// Data describes the attribute table.
type Data struct {
	Path       string `yaml:"path"`
	Sheet      string `yaml:"sheet"`
	CodeColumn string `yaml:"code_column"`
	NameColumn string `yaml:"name_column"`
	Strict     bool   `yaml:"strict"`
}

// Render configures still images.
type Render struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin float64 `yaml:"margin"`
	// Focus is a country code, region or continent to center the view on.
	Focus  string  `yaml:"focus"`
	Lon    float64 `yaml:"lon"`
	Lat    float64 `yaml:"lat"`
	Roll   float64 `yaml:"roll"`
	Legend bool    `yaml:"legend"`
	Labels bool    `yaml:"labels"`
	// Output defaults to <dataset>_globe.png.
	Output string `yaml:"output"`
}

// Animation configures rotating globes.
type Animation struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Frames      int     `yaml:"frames"`
	Delay       int     `yaml:"delay"`
	Supersample int     `yaml:"supersample"`
	Lat         float64 `yaml:"lat"`
	// Output defaults to <dataset>_globe.gif.
	Output string `yaml:"output"`
}

// Log configures logging.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dataset: "WealthTax",
		Sources: Sources{
			Primary: Source{
				Path:       "data/naturalearth_lowres.geojson",
				DissolveBy: "name",
				CodeFields: []string{"iso_a3", "adm0_a3"},
			},
			Fallback: Source{
				Path:       "map_units/ne_10m_admin_0_map_units.shp",
				DissolveBy: "SOVEREIGNT",
				CodeFields: []string{"ISO_A3", "ADM0_A3"},
			},
			Islands: Source{
				Path:       "map_islands",
				DissolveBy: "COUNTRY",
				CodeFields: []string{"GID_0"},
			},
			SovereignField: "SOVEREIGNT",
			SplitSovereign: "China",
			AdminField:     "ADMIN",
		},
		Data: Data{
			Path:       "tax_globe_data.xlsx",
			CodeColumn: "ISO",
			NameColumn: "Jurisdiction",
		},
		Render: Render{
			Width:  1200,
			Height: 900,
			Margin: 20,
			Legend: true,
		},
		Animation: Animation{
			Width:       800,
			Height:      600,
			Frames:      120,
			Delay:       10,
			Supersample: 2,
		},
		Overrides: []Override{
			{Code: "CHN", Name: "China", Admin: "China"},
			{Code: "HKG", Name: "Hong Kong", Admin: "Hong Kong S.A.R."},
			{Code: "MAC", Name: "Macau", Admin: "Macao S.A.R"},
		},
		Skip: []string{"GUF"},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debugf("config: %s not found, using defaults", path)
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data into cfg and validates the result. Fields missing in
// data keep their current value.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Marshal returns the configuration as YAML.
func (cfg *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}
