// Package config loads mojifix settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/reoring/mojifix"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".mojifix.yaml"

// Config holds all mojifix settings.
type Config struct {
	// JSON driver: "gojson" or "encoding/json".
	Driver string `yaml:"driver"`

	// Indent used when writing repaired documents; empty means compact.
	Indent string `yaml:"indent"`

	// Suffix appended to the input name when no output path is given.
	OutputSuffix string `yaml:"output_suffix"`

	// Files scanned concurrently by `mojifix scan` (0 = GOMAXPROCS).
	Jobs int `yaml:"jobs"`

	Report ReportConfig `yaml:"report"`
	Load   LoadConfig   `yaml:"load"`
	Repair RepairConfig `yaml:"repair"`
}

// ReportConfig configures the human-readable fix report.
type ReportConfig struct {
	MaxExamples  int    `yaml:"max_examples"`
	PreviewWidth int    `yaml:"preview_width"` // display columns
	Color        string `yaml:"color"`         // auto, on, off
}

// LoadConfig configures the document loader.
type LoadConfig struct {
	MaxDepth      int    `yaml:"max_depth"`
	MaxBytes      int64  `yaml:"max_bytes"`
	DuplicateKeys string `yaml:"duplicate_keys"` // ignore, warn, error
}

// RepairConfig configures the string repairer.
type RepairConfig struct {
	// Extra single-character markers added to the default mojibake set.
	ExtraMarkers []string `yaml:"extra_markers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Driver:       "gojson",
		Indent:       "  ",
		OutputSuffix: "_fixed",
		Report: ReportConfig{
			MaxExamples:  10,
			PreviewWidth: 100,
			Color:        "auto",
		},
		Load: LoadConfig{
			DuplicateKeys: "ignore",
		},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// An empty path falls back to DefaultFile; a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MOJIFIX_DRIVER"); v != "" {
		c.Driver = v
	}
	if v := os.Getenv("MOJIFIX_COLOR"); v != "" {
		c.Report.Color = v
	}
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	var errs []error
	switch c.Driver {
	case "", "gojson", "encoding/json":
	default:
		errs = append(errs, fmt.Errorf("driver: unknown value %q", c.Driver))
	}
	switch c.Report.Color {
	case "", "auto", "on", "off":
	default:
		errs = append(errs, fmt.Errorf("report.color: unknown value %q", c.Report.Color))
	}
	if c.Report.MaxExamples < 0 {
		errs = append(errs, errors.New("report.max_examples: must not be negative"))
	}
	if c.Report.PreviewWidth < 0 {
		errs = append(errs, errors.New("report.preview_width: must not be negative"))
	}
	if c.Jobs < 0 {
		errs = append(errs, errors.New("jobs: must not be negative"))
	}
	if c.Load.MaxDepth < 0 || c.Load.MaxBytes < 0 {
		errs = append(errs, errors.New("load: limits must not be negative"))
	}
	if _, ok := mojifix.ParseSeverity(c.Load.DuplicateKeys); !ok {
		errs = append(errs, fmt.Errorf("load.duplicate_keys: unknown value %q", c.Load.DuplicateKeys))
	}
	if _, err := c.markers(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadOpt projects the load section onto loader options.
func (c *Config) LoadOpt() mojifix.LoadOpt {
	sev, _ := mojifix.ParseSeverity(c.Load.DuplicateKeys)
	return mojifix.LoadOpt{
		Strictness: mojifix.Strictness{OnDuplicateKey: sev},
		MaxDepth:   c.Load.MaxDepth,
		MaxBytes:   c.Load.MaxBytes,
	}
}

// Repairer builds a repairer with the configured extra markers.
func (c *Config) Repairer() (*mojifix.Repairer, error) {
	rs, err := c.markers()
	if err != nil {
		return nil, err
	}
	return mojifix.NewRepairer(mojifix.WithMarkers(rs...)), nil
}

func (c *Config) markers() ([]rune, error) {
	var rs []rune
	for _, m := range c.Repair.ExtraMarkers {
		if utf8.RuneCountInString(m) != 1 {
			return nil, fmt.Errorf("repair.extra_markers: %q is not a single character", m)
		}
		r, _ := utf8.DecodeRuneInString(m)
		rs = append(rs, r)
	}
	return rs, nil
}
